// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the fuzzdec library.

// Package grammar provides composite decoders built purely from the engine
// primitives and combinators. Composites never touch the buffer or cursor
// directly, so they inherit the offset discipline of the engine they are
// built on: the total variants pad with zero defaults, the partial variants
// reject.
package grammar

import (
	"github.com/pk910/fuzzdec/partial"
	"github.com/pk910/fuzzdec/total"
)

// Header is the worked multi-field record example: a validity flag, a
// little-endian length and a printable tag character.
type Header struct {
	Valid  bool
	Length int32
	Tag    byte
}

// HeaderTotal decodes a Header under the total engine. Missing fields come
// back as zero defaults.
func HeaderTotal() total.Decoder[Header] {
	return total.Bind(total.Bool(), func(valid bool) total.Decoder[Header] {
		return total.Bind(total.Int32(), func(length int32) total.Decoder[Header] {
			return total.Map(total.Char(), func(tag byte) Header {
				return Header{Valid: valid, Length: length, Tag: tag}
			})
		})
	})
}

// HeaderPartial decodes a Header under the partial engine, rejecting
// truncated input and non-printable tags.
func HeaderPartial() partial.Decoder[Header] {
	return partial.Bind(partial.Bool(), func(valid bool) partial.Decoder[Header] {
		return partial.Bind(partial.Int32(), func(length int32) partial.Decoder[Header] {
			return partial.Map(partial.Char(), func(tag byte) Header {
				return Header{Valid: valid, Length: length, Tag: tag}
			})
		})
	})
}

// FixedBytesTotal decodes exactly n bytes, zero-padded past the end of the
// buffer.
func FixedBytesTotal(n int) total.Decoder[[]byte] {
	return total.Bytes(n)
}

// FixedBytesPartial decodes exactly n bytes, rejecting shorter buffers.
func FixedBytesPartial(n int) partial.Decoder[[]byte] {
	return partial.Bytes(n)
}

// MagicWord decodes len(word) bytes and requires them to spell word exactly,
// rejecting otherwise. The predicate lives in the continuation, so a
// mismatch reports the cursor after the consumed prefix.
func MagicWord(word string) partial.Decoder[string] {
	return partial.Bind(partial.Bytes(len(word)), func(got []byte) partial.Decoder[string] {
		if string(got) != word {
			return partial.Fail[string]()
		}
		return partial.Pure(word)
	})
}

// LengthPrefixed decodes a little-endian int32 length followed by that many
// bytes, rejecting negative lengths and lengths above max.
func LengthPrefixed(max int32) partial.Decoder[[]byte] {
	return partial.Bind(partial.Int32(), func(n int32) partial.Decoder[[]byte] {
		if n < 0 || n > max {
			return partial.Fail[[]byte]()
		}
		return partial.Bytes(int(n))
	})
}
