// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the fuzzdec library.

package fuzzdec

import (
	"encoding/binary"
	"math/rand"
	"time"
)

var interesting32 = []int32{-2147483648, -32769, -129, -1, 0, 1, 16, 127, 128, 255, 256, 32767, 65535, 65536, 2147483647}

// Mutator produces adversarial byte buffers for harness fuzz tests, widening
// native-fuzzing coverage with structure-aware mutations the engine's own
// mutator does not know about (truncation at field widths, magic word
// splices, interesting little-endian integers).
type Mutator struct {
	r        *rand.Rand
	edgeProb float64 // probability of picking an edge case mutation
	words    []string
}

// NewMutator creates a new mutator with optional seed. A mutator is
// deterministic per seed.
func NewMutator(seed int64) *Mutator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Mutator{
		r:        rand.New(rand.NewSource(seed)),
		edgeProb: 0.1,
	}
}

// SetEdgeProbability sets the probability of edge case mutations.
func (m *Mutator) SetEdgeProbability(prob float64) {
	m.edgeProb = prob
}

// AddWords registers magic words to splice into mutated buffers.
func (m *Mutator) AddWords(words ...string) {
	m.words = append(m.words, words...)
}

// Buffer returns a fresh random buffer of length up to maxLen.
func (m *Mutator) Buffer(maxLen int) []byte {
	length := m.r.Intn(maxLen + 1)
	buf := make([]byte, length)
	m.r.Read(buf)
	return buf
}

// Mutate returns a mutated copy of data. The input is never modified.
func (m *Mutator) Mutate(data []byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)

	if m.shouldMutateEdgeCase() {
		switch m.r.Intn(3) {
		case 0:
			return m.truncate(out)
		case 1:
			return m.spliceWord(out)
		default:
			return m.overwriteInteresting(out)
		}
	}

	switch m.r.Intn(5) {
	case 0:
		return m.bitFlip(out)
	case 1:
		return m.truncate(out)
	case 2:
		return m.duplicateRange(out)
	case 3:
		return m.insertRandom(out)
	default:
		return m.overwriteInteresting(out)
	}
}

func (m *Mutator) bitFlip(data []byte) []byte {
	if len(data) == 0 {
		return data
	}
	pos := m.r.Intn(len(data))
	data[pos] ^= 1 << uint(m.r.Intn(8))
	return data
}

// truncate cuts preferentially at the primitive field widths (1 and 4 bytes)
// to exercise the engines' exhaustion and rejection paths.
func (m *Mutator) truncate(data []byte) []byte {
	if len(data) == 0 {
		return data
	}
	var cut int
	switch m.r.Intn(3) {
	case 0:
		cut = 1
	case 1:
		cut = 4
	default:
		cut = m.r.Intn(len(data)) + 1
	}
	if cut > len(data) {
		cut = len(data)
	}
	return data[:len(data)-cut]
}

func (m *Mutator) duplicateRange(data []byte) []byte {
	if len(data) == 0 {
		return data
	}
	start := m.r.Intn(len(data))
	length := m.r.Intn(len(data)-start) + 1
	out := make([]byte, 0, len(data)+length)
	out = append(out, data[:start+length]...)
	out = append(out, data[start:start+length]...)
	out = append(out, data[start+length:]...)
	return out
}

func (m *Mutator) insertRandom(data []byte) []byte {
	insert := make([]byte, m.r.Intn(8)+1)
	m.r.Read(insert)
	pos := 0
	if len(data) > 0 {
		pos = m.r.Intn(len(data) + 1)
	}
	out := make([]byte, 0, len(data)+len(insert))
	out = append(out, data[:pos]...)
	out = append(out, insert...)
	out = append(out, data[pos:]...)
	return out
}

func (m *Mutator) overwriteInteresting(data []byte) []byte {
	if len(data) < 4 {
		return data
	}
	pos := m.r.Intn(len(data) - 3)
	val := interesting32[m.r.Intn(len(interesting32))]
	binary.LittleEndian.PutUint32(data[pos:], uint32(val))
	return data
}

func (m *Mutator) spliceWord(data []byte) []byte {
	if len(m.words) == 0 {
		return m.bitFlip(data)
	}
	word := []byte(m.words[m.r.Intn(len(m.words))])
	if len(data) < len(word) {
		return append(data[:0:0], word...)
	}
	pos := m.r.Intn(len(data) - len(word) + 1)
	copy(data[pos:], word)
	return data
}

func (m *Mutator) shouldMutateEdgeCase() bool {
	return m.r.Float64() < m.edgeProb
}
