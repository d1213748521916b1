// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the fuzzdec library.

// Package decutils contains the shared support types for the decoder engines:
// the Option result type used by the partial engine and the sentinel errors
// raised by the harness layer.
package decutils

// Option holds either a decoded value (Some) or nothing (None). It is the
// result channel of the partial decoder engine: None signals that the input
// was rejected for the grammar rule, which is a normal outcome, not an error.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

// None returns the absent value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the value is absent.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Value returns the contained value, or the zero value when absent.
func (o Option[T]) Value() T {
	return o.value
}

// ValueOr returns the contained value, or fallback when absent.
func (o Option[T]) ValueOr(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// MapOption applies f inside Some and propagates None unchanged.
func MapOption[A any, B any](o Option[A], f func(A) B) Option[B] {
	if o.IsNone() {
		return None[B]()
	}
	return Some(f(o.value))
}
