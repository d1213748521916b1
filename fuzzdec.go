// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the fuzzdec library.

// Package fuzzdec provides the fuzz driver on top of the decoder combinator
// engines in the total and partial subpackages. The driver feeds adversarial
// byte buffers into a target built from composed decoders, recovers any fault
// the target raises, and classifies the outcome: a produced value, a clean
// malformed-input rejection, a pre-declared expected fault, or a finding the
// surrounding fuzzing engine should record.
//
// The decoder core itself never raises for malformed input, which is what
// makes this classification decidable: every fault that surfaces here comes
// from application logic built on top of the decoders.
//
// Example usage:
//
//	driver := fuzzdec.NewDriver(
//	    fuzzdec.WithIterationCap(4096),
//	    fuzzdec.WithExpectedFaults(fuzzdec.ClassifierRule{
//	        Name:  "bounds",
//	        Match: "kind == 'panic' && fault =~ 'out of range'",
//	    }),
//	)
//
//	res := driver.RunTrial(func(data []byte) error {
//	    if partial.Run(grammar.MagicWord("banana"), data).IsNone() {
//	        return fmt.Errorf("no magic word")
//	    }
//	    return nil
//	}, trialBytes)
//
//	if res.Outcome == fuzzdec.OutcomeFinding {
//	    // report to the fuzzing engine
//	}
package fuzzdec

import (
	"fmt"
)

// Target is the application logic under test for one trial. A nil return
// means the target produced a value; a non-nil error is a clean rejection of
// malformed input. Anything the target panics with is a fault.
type Target func(data []byte) error

// Outcome classifies the result of a single trial.
type Outcome int

const (
	// OutcomeValue: the target completed and produced a value.
	OutcomeValue Outcome = iota
	// OutcomeRejected: the target returned an error, rejecting the input
	// cleanly for its grammar.
	OutcomeRejected
	// OutcomeExpectedFault: the target raised a fault matching one of the
	// pre-declared expected fault rules.
	OutcomeExpectedFault
	// OutcomeFinding: the target raised a fault no rule accounts for; a
	// candidate bug the fuzzing engine should record.
	OutcomeFinding
)

func (o Outcome) String() string {
	switch o {
	case OutcomeValue:
		return "value"
	case OutcomeRejected:
		return "rejected"
	case OutcomeExpectedFault:
		return "expected-fault"
	case OutcomeFinding:
		return "finding"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// TrialResult describes the classified outcome of one trial.
type TrialResult struct {
	Outcome Outcome
	Err     error  // rejection error or fault description
	Rule    string // name of the matching expected-fault rule, if any
	Novel   bool   // trial bytes were new to the corpus
}

// Driver runs fuzz trials. It is constructed once, holds the classification
// rules and any configuration, and is invoked per trial via RunTrial with no
// hidden globals in the trial path. A Driver is safe for concurrent use by
// multiple fuzz workers.
type Driver struct {
	classifier   *Classifier
	corpus       *Corpus
	iterationCap int
	verbose      bool
	logCb        func(format string, args ...any)
}

// NewDriver creates a driver from the given options.
func NewDriver(opts ...DriverOption) *Driver {
	options := &DriverOptions{
		IterationCap: DefaultIterationCap,
	}
	for _, opt := range opts {
		opt(options)
	}

	return &Driver{
		classifier:   NewClassifier(options.Rules),
		corpus:       options.Corpus,
		iterationCap: options.IterationCap,
		verbose:      options.Verbose,
		logCb:        options.LogCb,
	}
}

// IterationCap returns the external iteration cap composite scanners built on
// top of the core should impose to bound worst-case decoding work. The cap is
// a property of those composites, not of the decoder core.
func (d *Driver) IterationCap() int {
	return d.iterationCap
}

// Corpus returns the driver's corpus, or nil when none is configured.
func (d *Driver) Corpus() *Corpus {
	return d.corpus
}

// RunTrial feeds data to target and classifies the outcome. Faults raised by
// the target are recovered and matched against the expected-fault rules;
// everything else is reported as a finding.
func (d *Driver) RunTrial(target Target, data []byte) (result *TrialResult) {
	result = &TrialResult{}
	if d.corpus != nil {
		result.Novel = d.corpus.Add(data)
	}

	defer func() {
		if r := recover(); r != nil {
			fault := fmt.Sprintf("%v", r)
			result.Err = fmt.Errorf("fault: %s", fault)
			if rule := d.classifier.Match("panic", fault); rule != "" {
				result.Outcome = OutcomeExpectedFault
				result.Rule = rule
				d.logf("trial fault matched rule %q: %s", rule, fault)
			} else {
				result.Outcome = OutcomeFinding
				d.logf("trial finding: %s", fault)
			}
		}
	}()

	if err := target(data); err != nil {
		result.Outcome = OutcomeRejected
		result.Err = err
		return result
	}

	result.Outcome = OutcomeValue
	return result
}

func (d *Driver) logf(format string, args ...any) {
	if !d.verbose {
		return
	}
	if d.logCb != nil {
		d.logCb(format, args...)
	} else {
		fmt.Printf(format+"\n", args...)
	}
}
