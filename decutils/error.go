// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the fuzzdec library.

package decutils

import "fmt"

var (
	ErrUnexpectedEOF = fmt.Errorf("unexpected end of input")
	ErrIterationCap  = fmt.Errorf("iteration cap exceeded")
	ErrDepthLimit    = fmt.Errorf("nesting depth limit exceeded")
	ErrTrailingBytes = fmt.Errorf("trailing bytes after value")
)
