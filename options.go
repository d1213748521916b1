// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the fuzzdec library.

package fuzzdec

// DefaultIterationCap bounds the work of composite scanners when no explicit
// cap is configured.
const DefaultIterationCap = 4096

type DriverOption func(*DriverOptions)

type DriverOptions struct {
	IterationCap int
	Verbose      bool
	LogCb        func(format string, args ...any)
	Rules        []ClassifierRule
	Corpus       *Corpus
}

// WithIterationCap sets the iteration cap handed to composite scanners.
// A cap of 0 disables the bound.
func WithIterationCap(cap int) DriverOption {
	return func(opts *DriverOptions) {
		opts.IterationCap = cap
	}
}

func WithVerbose() DriverOption {
	return func(opts *DriverOptions) {
		opts.Verbose = true
	}
}

func WithLogCb(logCb func(format string, args ...any)) DriverOption {
	return func(opts *DriverOptions) {
		opts.LogCb = logCb
	}
}

// WithExpectedFaults declares fault kinds that are expected outcomes of
// malformed input rather than findings.
func WithExpectedFaults(rules ...ClassifierRule) DriverOption {
	return func(opts *DriverOptions) {
		opts.Rules = append(opts.Rules, rules...)
	}
}

// WithCorpus attaches a corpus; every trial is offered to it for dedup.
func WithCorpus(corpus *Corpus) DriverOption {
	return func(opts *DriverOptions) {
		opts.Corpus = corpus
	}
}
