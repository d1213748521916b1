// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the fuzzdec library.

package fuzzdec

import (
	"sync"

	"github.com/casbin/govaluate"
)

// ClassifierRule declares a fault kind as expected. Match is a govaluate
// expression over the parameters "kind" (currently always "panic") and
// "fault" (the recovered fault message), e.g.
//
//	kind == 'panic' && fault =~ 'index out of range'
type ClassifierRule struct {
	Name  string
	Match string
}

// Classifier matches fault descriptions against a fixed set of rules.
// Compiled expressions are cached per rule; a rule whose expression does not
// parse is cached as nil and never matches.
type Classifier struct {
	rules []ClassifierRule

	cacheMtx sync.Mutex
	cache    map[string]*govaluate.EvaluableExpression
}

func NewClassifier(rules []ClassifierRule) *Classifier {
	return &Classifier{
		rules: rules,
		cache: map[string]*govaluate.EvaluableExpression{},
	}
}

// Match returns the name of the first rule matching the fault, or the empty
// string when no rule matches.
func (c *Classifier) Match(kind, fault string) string {
	params := map[string]interface{}{
		"kind":  kind,
		"fault": fault,
	}

	for _, rule := range c.rules {
		expression := c.getExpression(rule.Match)
		if expression == nil {
			continue
		}

		result, err := expression.Evaluate(params)
		if err != nil {
			continue
		}
		if matched, ok := result.(bool); ok && matched {
			return rule.Name
		}
	}

	return ""
}

func (c *Classifier) getExpression(match string) *govaluate.EvaluableExpression {
	c.cacheMtx.Lock()
	defer c.cacheMtx.Unlock()

	if expression, cached := c.cache[match]; cached {
		return expression
	}

	expression, err := govaluate.NewEvaluableExpression(match)
	if err != nil {
		expression = nil
	}

	c.cache[match] = expression
	return expression
}
