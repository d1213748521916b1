// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the fuzzdec library.

package fuzzdec_test

import (
	"bytes"
	"testing"

	. "github.com/pk910/fuzzdec"
)

func TestMutatorDeterminism(t *testing.T) {
	seed := int64(42)
	data := []byte("banana banana banana")

	m1 := NewMutator(seed)
	m2 := NewMutator(seed)
	for i := 0; i < 50; i++ {
		a := m1.Mutate(data)
		b := m2.Mutate(data)
		if !bytes.Equal(a, b) {
			t.Fatalf("mutation %v diverged: %x != %x", i, a, b)
		}
	}
}

func TestMutatorKeepsInput(t *testing.T) {
	m := NewMutator(7)
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	orig := append([]byte(nil), data...)

	for i := 0; i < 100; i++ {
		m.Mutate(data)
		if !bytes.Equal(data, orig) {
			t.Fatalf("mutation %v modified the input buffer", i)
		}
	}
}

func TestMutatorBuffer(t *testing.T) {
	m := NewMutator(7)
	for i := 0; i < 100; i++ {
		if buf := m.Buffer(32); len(buf) > 32 {
			t.Fatalf("got buffer length %v, wanted <= 32", len(buf))
		}
	}
}

func TestMutatorEmptyInput(t *testing.T) {
	m := NewMutator(7)
	m.SetEdgeProbability(0.5)
	m.AddWords("banana")

	// must not panic for empty input under any mutation
	for i := 0; i < 200; i++ {
		m.Mutate(nil)
	}
}

func TestMutatorWordSplice(t *testing.T) {
	m := NewMutator(7)
	m.SetEdgeProbability(1) // edge mutations only
	m.AddWords("banana")

	found := false
	data := make([]byte, 32)
	for i := 0; i < 500 && !found; i++ {
		found = bytes.Contains(m.Mutate(data), []byte("banana"))
	}
	if !found {
		t.Errorf("word splice never produced the magic word")
	}
}
