package typemap

import "reflect"

// Key declares the value type of a key type. A key type is a struct used
// only as a compile time tag; embedding Key binds it to its value type:
//
//	type playerScore struct{ typemap.Key[int] }
//
// Every key type names exactly one value type, so an insert and a get can
// never disagree about the type stored in a slot.
//
// Key types must be pure tags: nothing but the embedded Key, no further
// fields. They are never stored and never instantiated by the map.
type Key[V any] struct{}

// ValueType returns the reflect type of the value type bound to this key.
func (Key[V]) ValueType() reflect.Type {
	return reflect.TypeOf((*V)(nil)).Elem()
}

// KeyFor matches the key types declared for the value type V, i.e. the
// structs embedding Key[V] and nothing else. Constraining K by KeyFor[V]
// is what lets the compiler derive V from an explicitly named K, so call
// sites pass the key type only:
//
//	score, ok := typemap.Get[playerScore](m)
type KeyFor[V any] interface {
	~struct{ Key[V] }
}

// ValidateKey verifies that K is declared as a key type:
//
//	type windowSize struct {
//	   typemap.Key[Size]
//	}
//
//	var _ = ValidateKey[windowSize]()
//
// This identifies mistakes in the key declaration during compile time.
func ValidateKey[K KeyFor[V], V any]() struct{} {
	return struct{}{}
}
