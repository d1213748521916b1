// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the fuzzdec library.

// Package evmscan is a fuzz harness that scans raw bytes as EVM-style
// bytecode, emulating the instruction decoding part of an interpreter: opcode
// iteration, PUSH1-PUSH32 immediate handling and JUMPDEST collection. It is
// not an EVM; there is no execution, gas or state.
//
// The scan is built on the partial decoder engine and inherits its offset
// discipline, so it never reads past the end of the code. The caller-imposed
// iteration cap bounds worst-case work on adversarial input.
package evmscan

import (
	"strings"

	"github.com/ethereum/go-ethereum/core/vm"
	"github.com/holiman/uint256"

	"github.com/pk910/fuzzdec/decutils"
	"github.com/pk910/fuzzdec/partial"
)

// Instruction is one decoded opcode. Push carries the immediate value for
// PUSH1-PUSH32, zero-padded when the code ends inside the immediate.
type Instruction struct {
	Offset    int
	Op        vm.OpCode
	Push      *uint256.Int
	Truncated bool
}

// Result summarizes one scan.
type Result struct {
	Instructions []Instruction
	OpCount      int
	PushCount    int
	JumpDests    []int
	Undefined    int
	Truncated    bool
}

// Scanner scans bytecode with a fixed iteration cap. A cap of 0 disables the
// bound. The zero value is not usable; use NewScanner.
type Scanner struct {
	iterationCap int
	keepListing  bool
}

type ScannerOption func(*Scanner)

// WithListing retains the full instruction listing in scan results. Off by
// default to keep per-trial allocations flat.
func WithListing() ScannerOption {
	return func(s *Scanner) {
		s.keepListing = true
	}
}

func NewScanner(iterationCap int, opts ...ScannerOption) *Scanner {
	s := &Scanner{
		iterationCap: iterationCap,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan decodes code from offset 0 until the end of the buffer or the
// iteration cap. Running past the cap returns decutils.ErrIterationCap as a
// clean rejection together with the partial result.
func (s *Scanner) Scan(code []byte) (*Result, error) {
	byteDec := partial.Byte()
	result := &Result{}
	pos := 0

	for iter := 0; ; iter++ {
		if s.iterationCap > 0 && iter >= s.iterationCap {
			return result, decutils.ErrIterationCap
		}

		opOffset := pos
		next, res := byteDec(code, pos)
		if res.IsNone() {
			// end of code
			return result, nil
		}
		pos = next

		op := vm.OpCode(res.Value())
		ins := Instruction{
			Offset: opOffset,
			Op:     op,
		}

		switch {
		case op.IsPush():
			width := int(op - vm.PUSH1 + 1)
			immNext, imm := partial.Bytes(width)(code, pos)
			if imm.IsNone() {
				// code ends inside the immediate; interpreters treat the
				// missing bytes as zeros
				padded := make([]byte, width)
				copy(padded, code[pos:])
				ins.Push = new(uint256.Int).SetBytes(padded)
				ins.Truncated = true
				result.Truncated = true
				pos = len(code)
			} else {
				ins.Push = new(uint256.Int).SetBytes(imm.Value())
				pos = immNext
			}
			result.PushCount++
		case op == vm.JUMPDEST:
			result.JumpDests = append(result.JumpDests, opOffset)
		case strings.Contains(op.String(), "not defined"):
			// vm.OpCode exposes undefined opcodes only through String()
			result.Undefined++
		}

		result.OpCount++
		if s.keepListing {
			result.Instructions = append(result.Instructions, ins)
		}
	}
}
