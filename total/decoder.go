// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the fuzzdec library.

// Package total implements the total decoder engine: every decode returns a
// value for any buffer and any valid offset, substituting zero defaults when
// the input is exhausted. It has no failure channel by design, so arbitrary
// fuzz-mutated byte strings always decode into a structure and reach the
// application logic behind the decoder.
//
// A decoder is a pure function over its (buf, pos) arguments. The buffer is
// never mutated and the cursor never moves backward or past len(buf), so
// composed decoders are reentrant and safe to run from multiple fuzz workers
// without coordination.
package total

import "encoding/binary"

// Decoder consumes bytes from buf starting at pos and returns the decoded
// value together with the new cursor position.
type Decoder[T any] func(buf []byte, pos int) (T, int)

// Byte decodes a single byte. At end of buffer it returns the zero default
// and leaves the cursor in place, so repeated calls past the end keep
// returning zero without runaway consumption.
func Byte() Decoder[byte] {
	return func(buf []byte, pos int) (byte, int) {
		if pos < len(buf) {
			return buf[pos], pos + 1
		}
		return 0, pos
	}
}

// Bool decodes a byte and maps it to true iff its value is odd.
func Bool() Decoder[bool] {
	return Map(Byte(), func(b byte) bool {
		return b%2 == 1
	})
}

// Int32 decodes a 4-byte little-endian signed integer. Near the end of the
// buffer it copies the remaining bytes into a zeroed scratch buffer and
// advances by the number of real bytes consumed (0-4). Unlike Byte, the
// cursor does advance on short reads; this asymmetry is intentional.
func Int32() Decoder[int32] {
	return func(buf []byte, pos int) (int32, int) {
		var scratch [4]byte
		n := copy(scratch[:], buf[pos:])
		val := int32(binary.LittleEndian.Uint32(scratch[:]))
		return val, pos + n
	}
}

// Char decodes a byte and maps it into the printable ASCII range [32,126]
// by wraparound, so it succeeds even for non-printable input.
func Char() Decoder[byte] {
	return Map(Byte(), func(b byte) byte {
		return 32 + b%95
	})
}

// Bytes decodes a fixed-size byte sequence via repeated Byte decodes.
// Past the end of the buffer the remaining elements are zero defaults.
func Bytes(n int) Decoder[[]byte] {
	return Repeat(n, Byte())
}

// Pure returns value without consuming input; the identity for Bind.
func Pure[T any](value T) Decoder[T] {
	return func(buf []byte, pos int) (T, int) {
		return value, pos
	}
}

// Map applies f to the decoded value, keeping the resulting cursor.
func Map[A any, B any](d Decoder[A], f func(A) B) Decoder[B] {
	return func(buf []byte, pos int) (B, int) {
		val, next := d(buf, pos)
		return f(val), next
	}
}

// Bind sequences two decodes: it runs d, feeds the value to f to obtain the
// continuation decoder, and runs that at the advanced cursor. All multi-field
// decoders are built by chaining Bind.
func Bind[A any, B any](d Decoder[A], f func(A) Decoder[B]) Decoder[B] {
	return func(buf []byte, pos int) (B, int) {
		val, next := d(buf, pos)
		return f(val)(buf, next)
	}
}

// Repeat decodes n consecutive values with d.
func Repeat[T any](n int, d Decoder[T]) Decoder[[]T] {
	return func(buf []byte, pos int) ([]T, int) {
		out := make([]T, n)
		for i := 0; i < n; i++ {
			out[i], pos = d(buf, pos)
		}
		return out, pos
	}
}

// Run drives d over buf from offset 0 and returns the decoded value,
// discarding the final cursor.
func Run[T any](d Decoder[T], buf []byte) T {
	val, _ := d(buf, 0)
	return val
}
