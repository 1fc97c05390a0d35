package typemap

import "reflect"

// Cloner is the capability bound of the cloneable presets. Clone must
// return a copy that is value-equal to the receiver at the time of the
// call and shares no mutable state with it.
type Cloner[V any] interface {
	Clone() V
}

// CloneBox is the box of the cloneable presets. It can duplicate itself,
// producing a box of the same kind whose hidden value is a clone of the
// original's.
type CloneBox struct {
	value AnyPtr
	clone func() CloneBox
}

func (b CloneBox) Unwrap() AnyPtr {
	return b.value
}

// Clone duplicates the box. The hidden value is cloned as it is now, so
// mutations done through Get beforehand are carried into the copy.
func (b CloneBox) Clone() CloneBox {
	return b.clone()
}

func cloneBoxOf[V Cloner[V]](ptr *V) CloneBox {
	return CloneBox{
		value: ptr,
		clone: func() CloneBox {
			value := (*ptr).Clone()
			return cloneBoxOf(&value)
		},
	}
}

// CloneInsert stores value under the key type K in a cloneable map. It
// works like Insert otherwise. Value types without a Clone method are
// rejected during compile time.
func CloneInsert[K KeyFor[V], V Cloner[V]](m *CloneMap, value V) (prev V, ok bool) {
	return insert[K](m, value, cloneBoxOf[V])
}

// CloneEntryOf returns the entry for the key type K in a cloneable map.
func CloneEntryOf[K KeyFor[V], V Cloner[V]](m *CloneMap) Entry[V, CloneBox] {
	return entryOf[K](m, cloneBoxOf[V])
}

// cloneableBox matches the box types that can duplicate themselves.
type cloneableBox[E any] interface {
	Box
	Clone() E
}

// Clone duplicates the map. Every value is cloned through its box, so the
// copy shares no mutable state with the original. Cloning a map of a
// preset without the clone capability does not compile.
func Clone[E cloneableBox[E]](m *Map[E]) *Map[E] {
	copied := Custom[E]()
	if len(m.data) == 0 {
		return copied
	}

	copied.data = make(map[reflect.Type]E, len(m.data))
	for key, box := range m.data {
		copied.data[key] = box.Clone()
	}

	return copied
}
