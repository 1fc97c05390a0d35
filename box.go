package typemap

// AnyPtr is an erased pointer to a value stored in a Map. Its dynamic type
// is *V, with V the value type of the slot the pointer came from.
type AnyPtr any

// Box is the contract of the erased cells a Map stores its values in.
//
// A box owns a single heap cell; Unwrap returns the pointer to that cell.
// The dynamic type of the pointer is fixed when the box is created and
// matches the value type declared for the key the box is stored under.
// That agreement is what allows readers to cast the pointer back without
// inspecting it first.
type Box interface {
	Unwrap() AnyPtr
}

// AnyBox is the box of the plain presets. It admits any value type and
// carries no further capability.
type AnyBox struct {
	value AnyPtr
}

func (b AnyBox) Unwrap() AnyPtr {
	return b.value
}

func anyBoxOf[V any](ptr *V) AnyBox {
	return AnyBox{value: ptr}
}
