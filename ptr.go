package openrtb

// ToPtr returns a pointer to v. It is a convenience for populating the
// optional (pointer-typed) fields of the protocol objects inline.
func ToPtr[T any](v T) *T {
	return &v
}

// Clone returns a pointer to a shallow copy of *v, or nil if v is nil.
func Clone[T any](v *T) *T {
	if v == nil {
		return nil
	}

	clone := *v
	return &clone
}

// ValueOrDefault dereferences v, substituting the zero value when v is nil.
func ValueOrDefault[T any](v *T) T {
	if v != nil {
		return *v
	}

	var def T
	return def
}
