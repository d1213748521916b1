// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the fuzzdec library.

package evmscan

import (
	"testing"

	"github.com/ethereum/go-ethereum/core/vm"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	fuzzdec "github.com/pk910/fuzzdec"
	"github.com/pk910/fuzzdec/decutils"
)

func TestScanSimpleProgram(t *testing.T) {
	// PUSH1 0x80; JUMPDEST; STOP
	code := []byte{0x60, 0x80, 0x5b, 0x00}

	result, err := NewScanner(0, WithListing()).Scan(code)
	require.NoError(t, err)

	require.Equal(t, 3, result.OpCount)
	require.Equal(t, 1, result.PushCount)
	require.Equal(t, []int{2}, result.JumpDests)
	require.False(t, result.Truncated)

	require.Len(t, result.Instructions, 3)
	require.Equal(t, vm.PUSH1, result.Instructions[0].Op)
	require.Equal(t, uint256.NewInt(0x80), result.Instructions[0].Push)
	require.Equal(t, vm.JUMPDEST, result.Instructions[1].Op)
	require.Equal(t, vm.STOP, result.Instructions[2].Op)
}

func TestScanTruncatedPush(t *testing.T) {
	// PUSH32 with a single immediate byte; the missing bytes read as zeros
	code := []byte{0x7f, 0x01}

	result, err := NewScanner(0, WithListing()).Scan(code)
	require.NoError(t, err)

	require.True(t, result.Truncated)
	require.Equal(t, 1, result.OpCount)

	expected := new(uint256.Int).Lsh(uint256.NewInt(1), 248)
	require.Equal(t, expected, result.Instructions[0].Push)
	require.True(t, result.Instructions[0].Truncated)
}

func TestScanUndefinedOpcodes(t *testing.T) {
	code := []byte{0x0c, 0x0d, 0x00}

	result, err := NewScanner(0).Scan(code)
	require.NoError(t, err)
	require.Equal(t, 2, result.Undefined)
	require.Equal(t, 3, result.OpCount)
}

func TestScanIterationCap(t *testing.T) {
	code := make([]byte, 64) // all STOP

	result, err := NewScanner(8).Scan(code)
	require.ErrorIs(t, err, decutils.ErrIterationCap)
	require.Equal(t, 8, result.OpCount)

	// cap 0 disables the bound
	result, err = NewScanner(0).Scan(code)
	require.NoError(t, err)
	require.Equal(t, 64, result.OpCount)
}

func TestScanEmptyCode(t *testing.T) {
	result, err := NewScanner(0).Scan(nil)
	require.NoError(t, err)
	require.Equal(t, 0, result.OpCount)
}

// FuzzScan treats any fault out of the scanner as a finding; malformed
// bytecode must come back as a value or a clean rejection.
func FuzzScan(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x60, 0x80, 0x5b, 0x00})
	f.Add([]byte{0x7f, 0x01})

	f.Fuzz(func(t *testing.T, data []byte) {
		driver := fuzzdec.NewDriver(fuzzdec.WithIterationCap(4096))
		scanner := NewScanner(driver.IterationCap())

		res := driver.RunTrial(func(data []byte) error {
			result, err := scanner.Scan(data)
			if err != nil {
				return err
			}
			if result.OpCount > len(data) {
				t.Errorf("op count %v exceeds code size %v", result.OpCount, len(data))
			}
			return nil
		}, data)

		if res.Outcome == fuzzdec.OutcomeFinding {
			t.Errorf("scan of %x raised: %v", data, res.Err)
		}
	})
}

// FuzzScanMutated drives seeded mutation chains over a valid program.
func FuzzScanMutated(f *testing.F) {
	f.Add(int64(1))
	f.Add(int64(42))

	f.Fuzz(func(t *testing.T, seed int64) {
		mutator := fuzzdec.NewMutator(seed)
		scanner := NewScanner(fuzzdec.DefaultIterationCap)
		driver := fuzzdec.NewDriver()

		trial := []byte{0x60, 0x80, 0x5b, 0x60, 0x00, 0x00}
		for i := 0; i < 32; i++ {
			res := driver.RunTrial(func(data []byte) error {
				_, err := scanner.Scan(data)
				return err
			}, trial)

			if res.Outcome == fuzzdec.OutcomeFinding {
				t.Errorf("mutated scan of %x raised: %v", trial, res.Err)
			}
			trial = mutator.Mutate(trial)
		}
	})
}
