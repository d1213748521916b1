// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the fuzzdec library.

// Package partial implements the partial decoder engine: a decode fails with
// None when the input is insufficient or a predicate is unmet, and
// composition short-circuits on failure. None is a first-class expected
// outcome used for structural validation; nothing in this engine panics.
//
// A failing step reports its own entry offset: a primitive that returns None
// leaves the cursor where it started, and combinators pass a failure through
// unchanged. A composite that fails mid-chain therefore reports the cursor
// position reached by its successful prefix.
package partial

import (
	"encoding/binary"

	"github.com/pk910/fuzzdec/decutils"
)

// Decoder consumes bytes from buf starting at pos and returns the new cursor
// position together with the optionally decoded value. On None the returned
// position equals the entry position of the failing step, so no partial
// consumption leaks out of a failure.
type Decoder[T any] func(buf []byte, pos int) (int, decutils.Option[T])

// Byte decodes a single byte, failing at end of buffer.
func Byte() Decoder[byte] {
	return func(buf []byte, pos int) (int, decutils.Option[byte]) {
		if pos < len(buf) {
			return pos + 1, decutils.Some(buf[pos])
		}
		return pos, decutils.None[byte]()
	}
}

// Bool decodes a byte and maps it to true iff its value is odd.
func Bool() Decoder[bool] {
	return Map(Byte(), func(b byte) bool {
		return b%2 == 1
	})
}

// Int32 decodes a 4-byte little-endian signed integer. It requires all four
// bytes to be present; there are no padded short reads in this engine.
func Int32() Decoder[int32] {
	return func(buf []byte, pos int) (int, decutils.Option[int32]) {
		if pos+4 > len(buf) {
			return pos, decutils.None[int32]()
		}
		val := int32(binary.LittleEndian.Uint32(buf[pos:]))
		return pos + 4, decutils.Some(val)
	}
}

// Char decodes a printable ASCII byte. It succeeds iff the raw byte is
// already in [32,126] and consumes the byte only on success.
func Char() Decoder[byte] {
	return func(buf []byte, pos int) (int, decutils.Option[byte]) {
		if pos < len(buf) && buf[pos] >= 32 && buf[pos] <= 126 {
			return pos + 1, decutils.Some(buf[pos])
		}
		return pos, decutils.None[byte]()
	}
}

// Bytes decodes a fixed-size byte sequence, failing without consumption when
// fewer than n bytes remain. The returned slice is a copy.
func Bytes(n int) Decoder[[]byte] {
	return func(buf []byte, pos int) (int, decutils.Option[[]byte]) {
		if pos+n > len(buf) {
			return pos, decutils.None[[]byte]()
		}
		out := make([]byte, n)
		copy(out, buf[pos:pos+n])
		return pos + n, decutils.Some(out)
	}
}

// Pure returns value without consuming input; the identity for Bind.
func Pure[T any](value T) Decoder[T] {
	return func(buf []byte, pos int) (int, decutils.Option[T]) {
		return pos, decutils.Some(value)
	}
}

// Fail rejects unconditionally without consuming input; the zero element.
func Fail[T any]() Decoder[T] {
	return func(buf []byte, pos int) (int, decutils.Option[T]) {
		return pos, decutils.None[T]()
	}
}

// Map applies f inside Some, keeping the resulting cursor; None propagates
// unchanged.
func Map[A any, B any](d Decoder[A], f func(A) B) Decoder[B] {
	return func(buf []byte, pos int) (int, decutils.Option[B]) {
		next, res := d(buf, pos)
		if res.IsNone() {
			return next, decutils.None[B]()
		}
		return next, decutils.Some(f(res.Value()))
	}
}

// Bind sequences two decodes. On Some it continues with f(value) at the
// advanced cursor; on None it short-circuits without invoking f, passing the
// failing step's result through unchanged.
func Bind[A any, B any](d Decoder[A], f func(A) Decoder[B]) Decoder[B] {
	return func(buf []byte, pos int) (int, decutils.Option[B]) {
		next, res := d(buf, pos)
		if res.IsNone() {
			return next, decutils.None[B]()
		}
		return f(res.Value())(buf, next)
	}
}

// Repeat decodes n consecutive values with d, short-circuiting on the first
// failing element.
func Repeat[T any](n int, d Decoder[T]) Decoder[[]T] {
	return func(buf []byte, pos int) (int, decutils.Option[[]T]) {
		out := make([]T, n)
		for i := 0; i < n; i++ {
			next, res := d(buf, pos)
			if res.IsNone() {
				return next, decutils.None[[]T]()
			}
			out[i] = res.Value()
			pos = next
		}
		return pos, decutils.Some(out)
	}
}

// Run drives d over buf from offset 0 and returns the optional value,
// discarding the final cursor.
func Run[T any](d Decoder[T], buf []byte) decutils.Option[T] {
	_, res := d(buf, 0)
	return res
}
