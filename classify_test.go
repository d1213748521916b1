// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the fuzzdec library.

package fuzzdec_test

import (
	"testing"

	. "github.com/pk910/fuzzdec"
)

var classifierTestMatrix = []struct {
	name     string
	rules    []ClassifierRule
	kind     string
	fault    string
	expected string
}{
	{
		"regex match",
		[]ClassifierRule{{Name: "bounds", Match: "fault =~ 'out of range'"}},
		"panic", "runtime error: index out of range [4] with length 3",
		"bounds",
	},
	{
		"kind mismatch",
		[]ClassifierRule{{Name: "bounds", Match: "kind == 'error' && fault =~ 'out of range'"}},
		"panic", "runtime error: index out of range",
		"",
	},
	{
		"first matching rule wins",
		[]ClassifierRule{
			{Name: "overflow", Match: "fault =~ 'overflow'"},
			{Name: "any", Match: "true"},
		},
		"panic", "runtime error: integer overflow",
		"overflow",
	},
	{
		"no rules",
		nil,
		"panic", "anything",
		"",
	},
	{
		"unparsable rule never matches",
		[]ClassifierRule{{Name: "broken", Match: "fault =~ ("}},
		"panic", "anything",
		"",
	},
}

func TestClassifierMatch(t *testing.T) {
	for _, test := range classifierTestMatrix {
		t.Run(test.name, func(t *testing.T) {
			classifier := NewClassifier(test.rules)
			if got := classifier.Match(test.kind, test.fault); got != test.expected {
				t.Errorf("got %q, wanted %q", got, test.expected)
			}
		})
	}
}

func TestClassifierCache(t *testing.T) {
	classifier := NewClassifier([]ClassifierRule{{Name: "any", Match: "true"}})

	// repeated matches reuse the compiled expression
	for i := 0; i < 3; i++ {
		if got := classifier.Match("panic", "x"); got != "any" {
			t.Fatalf("match %v: got %q, wanted any", i, got)
		}
	}

	// an unparsable expression is cached as non-matching and stays that way
	broken := NewClassifier([]ClassifierRule{{Name: "broken", Match: "fault =~ ("}})
	for i := 0; i < 3; i++ {
		if got := broken.Match("panic", "x"); got != "" {
			t.Fatalf("match %v: got %q, wanted no match", i, got)
		}
	}
}
