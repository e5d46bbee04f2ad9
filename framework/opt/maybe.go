// Package opt provides a minimal optional-value type.
package opt

// Maybe holds a value of type V, or nothing. The zero value is the empty
// state, so an uninitialized Maybe reads as undefined.
type Maybe[V any] struct {
	defined bool
	value   V
}

// Some returns a Maybe holding the given value.
func Some[V any](value V) Maybe[V] {
	return Maybe[V]{defined: true, value: value}
}

// None returns an empty Maybe.
func None[V any]() Maybe[V] { return Maybe[V]{} }

// FromPtr treats a nil pointer as None and a non-nil pointer as Some of the
// value it points to. It is the bridge from optional YAML fields, which
// decode as pointers, to Maybe.
func FromPtr[V any](ptr *V) Maybe[V] {
	if ptr == nil {
		return None[V]()
	}
	return Some(*ptr)
}

// IsDefined reports whether a value is present.
func (m Maybe[V]) IsDefined() bool { return m.defined }

// Value returns the held value, or the zero value of V if none is present.
func (m Maybe[V]) Value() V { return m.value }

// OrElse returns the held value if present, and the fallback otherwise.
func (m Maybe[V]) OrElse(fallback V) V {
	if m.defined {
		return m.value
	}
	return fallback
}
