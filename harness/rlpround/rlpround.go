// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the fuzzdec library.

// Package rlpround is a fuzz harness for an RLP codec. The codec itself
// (github.com/ethereum/go-ethereum/rlp) is an opaque collaborator: the
// harness feeds it adversarial bytes and generated values and checks for
// faults and roundtrip mismatches, it does not reimplement the grammar.
package rlpround

import (
	"bytes"
	"fmt"
	"io"
	"reflect"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/pk910/fuzzdec/decutils"
)

// Envelope is the structured sample type for roundtrip checks. The field mix
// covers the codec's scalar, byte-string, string and nested-list paths.
type Envelope struct {
	Flag     bool
	Count    uint64
	Tag      []byte
	Name     string
	Children []Leaf
}

type Leaf struct {
	Kind  uint32
	Value []byte
}

// Walk structurally scans data as a single RLP value with a nesting depth
// cap, returning an error for malformed input, leftover bytes or exceeded
// depth. It never panics for any input; panics escaping Walk are codec bugs.
func Walk(data []byte, depthCap int) error {
	s := rlp.NewStream(bytes.NewReader(data), uint64(len(data)))
	if err := walkValue(s, depthCap); err != nil {
		// empty or truncated input is reported through one sentinel
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return decutils.ErrUnexpectedEOF
		}
		return err
	}

	// exactly one top-level value
	if _, _, err := s.Kind(); err != io.EOF {
		return decutils.ErrTrailingBytes
	}
	return nil
}

func walkValue(s *rlp.Stream, depth int) error {
	if depth <= 0 {
		return decutils.ErrDepthLimit
	}

	kind, _, err := s.Kind()
	if err != nil {
		return err
	}

	switch kind {
	case rlp.List:
		if _, err := s.List(); err != nil {
			return err
		}
		for {
			err := walkValue(s, depth-1)
			if err == rlp.EOL {
				break
			}
			if err != nil {
				return err
			}
		}
		return s.ListEnd()
	default:
		_, err := s.Bytes()
		return err
	}
}

// RoundTrip encodes original, decodes the bytes into a fresh value of the
// same type and re-encodes it, reporting any stage error or encode mismatch.
func RoundTrip(original interface{}) error {
	encoded, err := rlp.EncodeToBytes(original)
	if err != nil {
		return err
	}

	originalType := reflect.TypeOf(original)
	if originalType.Kind() == reflect.Ptr {
		originalType = originalType.Elem()
	}
	decoded := reflect.New(originalType).Interface()

	if err := rlp.DecodeBytes(encoded, decoded); err != nil {
		return err
	}

	reencoded, err := rlp.EncodeToBytes(decoded)
	if err != nil {
		return err
	}

	if !bytes.Equal(encoded, reencoded) {
		return fmt.Errorf("encode mismatch: %x != %x", encoded, reencoded)
	}
	return nil
}
