//
// Copyright 2020, 2021 Kenneth J. Gibson
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package cnpp models combinatorial number-placement puzzles: cells holding
// either a committed symbol or a set of remaining candidates, groups of
// cells that must each contain every symbol exactly once, and the puzzle
// that owns them.
package cnpp

// A Cell holds either a committed Symbol or a non-empty set of candidates
// still considered possible. A Cell never holds both. If candidate removal
// drives the candidate set to empty with no committed value, the Cell is
// conflicted: no completion of the puzzle is possible through it.
type Cell[Symbol comparable] struct {
	value      Symbol
	hasValue   bool
	candidates map[Symbol]struct{}
}

// NewSolvedCell returns a Cell already committed to value.
func NewSolvedCell[Symbol comparable](value Symbol) *Cell[Symbol] {
	return &Cell[Symbol]{value: value, hasValue: true}
}

// NewUnsolvedCell returns a Cell with the given candidate set. The caller
// must supply at least one candidate; a single-candidate set is immediately
// solvable on the next Value() call.
func NewUnsolvedCell[Symbol comparable](candidates ...Symbol) *Cell[Symbol] {
	c := &Cell[Symbol]{candidates: make(map[Symbol]struct{}, len(candidates))}
	for _, s := range candidates {
		c.candidates[s] = struct{}{}
	}
	return c
}

// Value returns the committed symbol, if any. If no value is committed but
// exactly one candidate remains, that candidate is promoted to committed
// and returned; this read may therefore mutate the cell (lazy commit). The
// bool result reports whether a value was found, so callers never need to
// treat a symbol's zero value as an "empty" sentinel.
func (c *Cell[Symbol]) Value() (Symbol, bool) {
	if c.hasValue {
		return c.value, true
	}
	if len(c.candidates) == 1 {
		for s := range c.candidates {
			c.value = s
			c.hasValue = true
			c.candidates = nil
			break
		}
		return c.value, true
	}
	var zero Symbol
	return zero, false
}

// Candidates returns a snapshot copy of the candidate set. A solved cell
// reports an empty set.
func (c *Cell[Symbol]) Candidates() map[Symbol]struct{} {
	out := make(map[Symbol]struct{}, len(c.candidates))
	for s := range c.candidates {
		out[s] = struct{}{}
	}
	return out
}

// SetValue commits s to the cell and clears its candidate set. Calling
// SetValue a second time with a different value than one already committed
// is a programmer error and panics; calling it again with the same value is
// a no-op.
func (c *Cell[Symbol]) SetValue(s Symbol) {
	if c.hasValue {
		if c.value == s {
			return
		}
		panic("cnpp: cell already committed to a different value")
	}
	c.value = s
	c.hasValue = true
	c.candidates = nil
}

// RemoveCandidate removes s from the candidate set if present, reporting
// whether a change occurred. It has no effect on a solved cell.
func (c *Cell[Symbol]) RemoveCandidate(s Symbol) bool {
	if c.hasValue {
		return false
	}
	if _, ok := c.candidates[s]; !ok {
		return false
	}
	delete(c.candidates, s)
	return true
}

// RemoveCandidates removes every symbol in ss from the candidate set,
// reporting whether at least one removal occurred.
func (c *Cell[Symbol]) RemoveCandidates(ss map[Symbol]struct{}) bool {
	changed := false
	for s := range ss {
		if c.RemoveCandidate(s) {
			changed = true
		}
	}
	return changed
}

// IntersectCandidates removes every candidate not present in keep,
// reporting whether at least one removal occurred.
func (c *Cell[Symbol]) IntersectCandidates(keep map[Symbol]struct{}) bool {
	if c.hasValue {
		return false
	}
	changed := false
	for s := range c.candidates {
		if _, ok := keep[s]; !ok {
			delete(c.candidates, s)
			changed = true
		}
	}
	return changed
}

// Conflicted reports whether the cell has no committed value and no
// remaining candidates: a transient state that signals unsatisfiability.
func (c *Cell[Symbol]) Conflicted() bool {
	return !c.hasValue && len(c.candidates) == 0
}

// clone returns an independent deep copy of the cell.
func (c *Cell[Symbol]) clone() *Cell[Symbol] {
	n := &Cell[Symbol]{value: c.value, hasValue: c.hasValue}
	if c.candidates != nil {
		n.candidates = make(map[Symbol]struct{}, len(c.candidates))
		for s := range c.candidates {
			n.candidates[s] = struct{}{}
		}
	}
	return n
}
