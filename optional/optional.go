// Package optional provides tri-state parameter values and the builder used to
// assemble nested request objects from them.
//
// A Value is absent until a caller binds it. Binding the null literal leaves it
// without a value but marks it as bound, so "was this supplied" and "what was
// supplied" are answered separately. Only present values populate a request.
package optional

import "fmt"

type state uint8

const (
	absent state = iota
	null
	present
)

// Value is an optional parameter value. The zero Value is absent.
type Value[T any] struct {
	v T
	s state
}

// Of returns a present Value holding v.
func Of[T any](v T) Value[T] {
	return Value[T]{v: v, s: present}
}

// Null returns a Value that was bound explicitly to null.
func Null[T any]() Value[T] {
	return Value[T]{s: null}
}

// IsPresent reports whether the value carries data.
func (v Value[T]) IsPresent() bool { return v.s == present }

// IsNull reports whether the value was bound explicitly to null.
func (v Value[T]) IsNull() bool { return v.s == null }

// IsBound reports whether the value was supplied at all, including as null.
func (v Value[T]) IsBound() bool { return v.s != absent }

// Get returns the held value and whether it is present.
func (v Value[T]) Get() (T, bool) {
	return v.v, v.s == present
}

// Or returns the held value, or fallback when it is not present.
func (v Value[T]) Or(fallback T) T {
	if v.s == present {
		return v.v
	}
	return fallback
}

// Ptr returns a pointer to a copy of the held value, or nil when not present.
// SDK request shapes use nil pointers for omitted members.
func (v Value[T]) Ptr() *T {
	if v.s != present {
		return nil
	}
	x := v.v
	return &x
}

func (v Value[T]) String() string {
	switch v.s {
	case present:
		return fmt.Sprint(v.v)
	case null:
		return "$null"
	default:
		return ""
	}
}
