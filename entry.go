package typemap

import (
	"fmt"
	"reflect"
)

// Entry is a view onto the slot of a single key type, for in-place
// manipulation. Obtain one through EntryOf or the entry function of the
// map's preset.
//
// An entry is a short lived view. It reads the map it was created from, and
// mutating that map through anything but the entry while holding it is a
// misuse; entry operations on a slot that was emptied behind the view's
// back panic.
type Entry[V any, E Box] struct {
	m     *Map[E]
	key   reflect.Type
	embed func(*V) E
}

// EntryOf returns the entry for the key type K in a plain map.
func EntryOf[K KeyFor[V], V any](m *TypeMap) Entry[V, AnyBox] {
	return entryOf[K](m, anyBoxOf[V])
}

func entryOf[K KeyFor[V], V any, E Box](m *Map[E], embed func(*V) E) Entry[V, E] {
	return Entry[V, E]{
		m:     m,
		key:   keyTypeOf[K](),
		embed: embed,
	}
}

// Occupied returns the occupied view of the entry if the slot currently
// holds a value.
func (e Entry[V, E]) Occupied() (OccupiedEntry[V, E], bool) {
	if _, ok := e.m.data[e.key]; !ok {
		return OccupiedEntry[V, E]{}, false
	}

	return OccupiedEntry[V, E]{entry: e}, true
}

// Vacant returns the vacant view of the entry if the slot is empty.
func (e Entry[V, E]) Vacant() (VacantEntry[V, E], bool) {
	if _, ok := e.m.data[e.key]; ok {
		return VacantEntry[V, E]{}, false
	}

	return VacantEntry[V, E]{entry: e}, true
}

// OrInsert returns a pointer to the slot's value, first inserting value if
// the slot is empty.
func (e Entry[V, E]) OrInsert(value V) *V {
	return e.OrInsertWith(func() V { return value })
}

// OrInsertWith returns a pointer to the slot's value. If the slot is
// empty, produce is called and its result inserted; produce does not run
// otherwise.
func (e Entry[V, E]) OrInsertWith(produce func() V) *V {
	if box, ok := e.m.data[e.key]; ok {
		return box.Unwrap().(*V)
	}

	value := produce()
	e.m.swap(e.key, e.embed(&value))
	return &value
}

// OccupiedEntry is a view onto a slot that holds a value.
type OccupiedEntry[V any, E Box] struct {
	entry Entry[V, E]
}

// Get returns a pointer to the slot's value. The pointer stays valid until
// the slot is replaced or removed.
func (e OccupiedEntry[V, E]) Get() *V {
	box, ok := e.entry.m.data[e.entry.key]
	if !ok {
		panic(fmt.Sprintf("entry for key type %s is no longer occupied", e.entry.key))
	}

	return box.Unwrap().(*V)
}

// Insert replaces the slot's value and returns the previous one.
func (e OccupiedEntry[V, E]) Insert(value V) V {
	prev := *e.Get()
	e.entry.m.swap(e.entry.key, e.entry.embed(&value))
	return prev
}

// Remove takes the value out of the map, consuming the entry.
func (e OccupiedEntry[V, E]) Remove() V {
	box, ok := e.entry.m.take(e.entry.key)
	if !ok {
		panic(fmt.Sprintf("entry for key type %s is no longer occupied", e.entry.key))
	}

	return *box.Unwrap().(*V)
}

// VacantEntry is a view onto an empty slot.
type VacantEntry[V any, E Box] struct {
	entry Entry[V, E]
}

// Insert stores value in the slot and returns a pointer to it, consuming
// the entry.
func (e VacantEntry[V, E]) Insert(value V) *V {
	e.entry.m.swap(e.entry.key, e.entry.embed(&value))
	return &value
}
