// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate

// Optional holds either a value or nothing.
// The zero value is absent. Optional never allocates.
type Optional[T any] struct {
	present bool
	value   T
}

// Some creates a present Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{present: true, value: v}
}

// None creates an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// IsPresent returns true if the Optional holds a value.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// Get returns the value and true, or zero and false.
func (o Optional[T]) Get() (T, bool) {
	if o.present {
		return o.value, true
	}
	var zero T
	return zero, false
}

// Value returns the held value. Panics if the Optional is absent.
func (o Optional[T]) Value() T {
	if !o.present {
		panic("delegate: optional value absent")
	}
	return o.value
}

// OrElse returns the held value, or v if absent.
func (o Optional[T]) OrElse(v T) T {
	if o.present {
		return o.value
	}
	return v
}

// MatchOptional calls onSome with the value if present, onNone otherwise.
func MatchOptional[T, U any](o Optional[T], onNone func() U, onSome func(T) U) U {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}

// MapOptional applies f to the held value.
func MapOptional[T, U any](o Optional[T], f func(T) U) Optional[U] {
	if o.present {
		return Some(f(o.value))
	}
	return Optional[U]{}
}
