// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the fuzzdec library.

package fuzzdec

import (
	"sync"

	"github.com/zeebo/blake3"
)

// Corpus is an in-memory trial collection deduplicated by BLAKE3 digest of
// the trial bytes. It is safe for concurrent use by multiple fuzz workers.
type Corpus struct {
	mtx     sync.Mutex
	entries map[[32]byte][]byte
	order   [][32]byte
}

func NewCorpus() *Corpus {
	return &Corpus{
		entries: map[[32]byte][]byte{},
	}
}

// Add offers a trial to the corpus and reports whether it was new.
func (c *Corpus) Add(data []byte) bool {
	digest := blake3.Sum256(data)

	c.mtx.Lock()
	defer c.mtx.Unlock()

	if _, exists := c.entries[digest]; exists {
		return false
	}

	entry := make([]byte, len(data))
	copy(entry, data)
	c.entries[digest] = entry
	c.order = append(c.order, digest)
	return true
}

func (c *Corpus) Len() int {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return len(c.entries)
}

// Entries returns copies of all trials in insertion order.
func (c *Corpus) Entries() [][]byte {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	out := make([][]byte, 0, len(c.order))
	for _, digest := range c.order {
		entry := c.entries[digest]
		cpy := make([]byte, len(entry))
		copy(cpy, entry)
		out = append(out, cpy)
	}
	return out
}
