// Package typemap implements a map keyed by types.
//
// A Map holds at most one value per key type. The value type of a key is
// fixed once, by declaring the key as a struct embedding Key:
//
//	type windowSize struct{ typemap.Key[Size] }
//
// Operations take the key type as a type argument and derive the value type
// from that declaration, so a slot can never be read at the wrong type:
//
//	m := typemap.New()
//	typemap.Insert[windowSize](m, Size{Width: 800, Height: 600})
//	size, ok := typemap.Get[windowSize](m)
package typemap

import "reflect"

// Map is a container keyed by types, holding at most one value per key
// type. The type parameter selects the erased box stored values are
// packaged into, and with it the capabilities every value must have. See
// the presets TypeMap, CloneMap and StringerMap for the common choices.
//
// The zero value is an empty map ready for use; storage is allocated on
// the first write.
//
// A Map is a single owner structure. It holds no locks and must not be
// mutated concurrently; synchronization, if needed, is the caller's.
type Map[E Box] struct {
	noCopy noCopy
	data   map[reflect.Type]E
}

// New creates an empty TypeMap, the preset without capability bounds.
func New() *TypeMap {
	return &TypeMap{}
}

// Custom creates an empty Map for any box type. Use this for the non
// default presets, where there is no argument to infer the box type from:
//
//	m := typemap.Custom[typemap.CloneBox]()
func Custom[E Box]() *Map[E] {
	return &Map[E]{}
}

// Len returns the number of values stored in the map.
func (m *Map[E]) Len() int {
	return len(m.data)
}

// IsEmpty returns true if the map contains no values.
func (m *Map[E]) IsEmpty() bool {
	return len(m.data) == 0
}

// Clear removes all values from the map.
func (m *Map[E]) Clear() {
	clear(m.data)
}

// Raw returns the underlying storage of the map.
//
// The returned map is shared with the Map, not a copy. Callers may inspect
// boxes and delete entries. They must not store a box under a type that
// does not match the hidden value type of that box: reads rely on the two
// agreeing and will panic later if they do not. The returned map must not
// be retained across a call to Clear.
func (m *Map[E]) Raw() map[reflect.Type]E {
	m.ensure()
	return m.data
}

func (m *Map[E]) ensure() {
	if m.data == nil {
		m.data = map[reflect.Type]E{}
	}
}

// swap stores box under key and returns the box it replaced, if any.
func (m *Map[E]) swap(key reflect.Type, box E) (E, bool) {
	m.ensure()

	prev, ok := m.data[key]
	m.data[key] = box
	return prev, ok
}

func (m *Map[E]) take(key reflect.Type) (E, bool) {
	box, ok := m.data[key]
	if ok {
		delete(m.data, key)
	}

	return box, ok
}

// Get returns a pointer to the value stored under the key type K, if any.
// The pointer stays valid until the slot is replaced or removed; mutating
// through it mutates the value in the map.
func Get[K KeyFor[V], V any, E Box](m *Map[E]) (*V, bool) {
	box, ok := m.data[keyTypeOf[K]()]
	if !ok {
		return nil, false
	}

	return box.Unwrap().(*V), true
}

// Contains reports whether the map holds a value for the key type K.
func Contains[K KeyFor[V], V any, E Box](m *Map[E]) bool {
	_, ok := m.data[keyTypeOf[K]()]
	return ok
}

// Remove takes the value stored under the key type K out of the map and
// returns it. ok is false if there was no value.
func Remove[K KeyFor[V], V any, E Box](m *Map[E]) (value V, ok bool) {
	box, ok := m.take(keyTypeOf[K]())
	if !ok {
		return value, false
	}

	return *box.Unwrap().(*V), true
}

// Insert stores value under the key type K. If the map already held a
// value for K, that previous value is returned and ok is true.
func Insert[K KeyFor[V], V any](m *TypeMap, value V) (prev V, ok bool) {
	return insert[K](m, value, anyBoxOf[V])
}

// insert is the write path shared by all presets. embed packages the heap
// cell holding the value into the preset's box.
func insert[K KeyFor[V], V any, E Box](m *Map[E], value V, embed func(*V) E) (prev V, ok bool) {
	box, ok := m.swap(keyTypeOf[K](), embed(&value))
	if !ok {
		return prev, false
	}

	return *box.Unwrap().(*V), true
}

func keyTypeOf[K any]() reflect.Type {
	return reflect.TypeOf((*K)(nil)).Elem()
}
