package typemap

import (
	"fmt"
	"slices"
	"strings"
)

// StringerBox is the box of the printable presets. It renders through the
// String method of the hidden value.
type StringerBox struct {
	value  AnyPtr
	render func() string
}

func (b StringerBox) Unwrap() AnyPtr {
	return b.value
}

// String renders the hidden value as it is now.
func (b StringerBox) String() string {
	return b.render()
}

func stringerBoxOf[V fmt.Stringer](ptr *V) StringerBox {
	return StringerBox{
		value:  ptr,
		render: func() string { return (*ptr).String() },
	}
}

// StringerInsert stores value under the key type K in a printable map. It
// works like Insert otherwise. Value types without a String method are
// rejected during compile time.
func StringerInsert[K KeyFor[V], V fmt.Stringer](m *StringerMap, value V) (prev V, ok bool) {
	return insert[K](m, value, stringerBoxOf[V])
}

// StringerEntryOf returns the entry for the key type K in a printable map.
func StringerEntryOf[K KeyFor[V], V fmt.Stringer](m *StringerMap) Entry[V, StringerBox] {
	return entryOf[K](m, stringerBoxOf[V])
}

// printableBox matches the box types that render themselves.
type printableBox interface {
	Box
	fmt.Stringer
}

// String renders a printable map. Entries are sorted by key type name, so
// the rendering is deterministic. Rendering a map of a preset without the
// printable capability does not compile.
func String[E printableBox](m *Map[E]) string {
	entries := make([]string, 0, len(m.data))
	for key, box := range m.data {
		entries = append(entries, fmt.Sprintf("%s: %s", key, box))
	}

	slices.Sort(entries)
	return "typemap.Map{" + strings.Join(entries, ", ") + "}"
}
