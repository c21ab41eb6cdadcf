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

// Package solver drives a Puzzle to a solution: it runs the five
// strategies to a fixpoint under a group scheduler, then falls back to
// recursive backtracking on the most-constrained cell when propagation
// stalls.
package solver

import (
	"fmt"
	"sort"

	"golang.org/x/exp/slices"

	"github.com/kenjgibson/cnpp-solver/internal/cnpp"
	"github.com/kenjgibson/cnpp-solver/internal/cnpp/schedule"
	"github.com/kenjgibson/cnpp-solver/internal/cnpp/strategy"
)

// SymbolOrder reports whether a sorts before b. It is used to make the
// guessed symbol during backtracking deterministic across runs. A nil
// SymbolOrder falls back to ordering by each symbol's %v text, which is
// deterministic (if not necessarily meaningful) for any comparable Symbol.
type SymbolOrder[Symbol any] func(a, b Symbol) bool

func defaultOrder[Symbol any](a, b Symbol) bool {
	return fmt.Sprintf("%v", a) < fmt.Sprintf("%v", b)
}

// Solve solves puzzle without mutating it: it deep-clones the input,
// applies strategies S1-S5 to a fixpoint under a group scheduler, and
// falls back to recursive backtracking on the most-constrained cell when
// propagation stalls. It returns an independently owned result puzzle and
// its final state.
func Solve[Location comparable, Symbol comparable](puzzle *cnpp.Puzzle[Location, Symbol], order SymbolOrder[Symbol]) (*cnpp.Puzzle[Location, Symbol], cnpp.State) {
	if order == nil {
		order = defaultOrder[Symbol]
	}

	work := puzzle.DeepClone()
	propagate(work)

	switch st := work.State(); st {
	case cnpp.Solved, cnpp.Conflict:
		return work, st
	default:
		return backtrack(work, order)
	}
}

// propagate runs the strategies to a fixpoint, driven by a group
// scheduler: it repeatedly pops the most urgent group, runs S1-S5 in order
// against it, and re-prioritizes every group touched by the changed cells.
func propagate[Location comparable, Symbol comparable](p *cnpp.Puzzle[Location, Symbol]) {
	groups := p.Groups()
	q := schedule.NewQueue[*cnpp.Group[Location, Symbol]]()
	for _, g := range groups {
		q.Insert(g, 0)
	}

	for p.State() == cnpp.Unsolved && q.Len() > 0 {
		g, ok := q.PopMin()
		if !ok {
			break
		}
		if len(g.UnsolvedCells()) == 0 {
			continue
		}

		delta := applyStrategies(p, g)
		for loc := range delta {
			for _, h := range p.GroupsOf(loc) {
				q.Upsert(h, -1)
			}
		}
	}
}

// applyStrategies runs S1-S5 against g in the prescribed order, returning
// the first non-empty changed-cell set.
func applyStrategies[Location comparable, Symbol comparable](p *cnpp.Puzzle[Location, Symbol], g *cnpp.Group[Location, Symbol]) map[Location]struct{} {
	if delta := strategy.ErasePencilMarkings(p); len(delta) > 0 {
		return delta
	}
	if delta := strategy.LastRemainingCell(g); len(delta) > 0 {
		return delta
	}
	if delta := strategy.NakedConjugates(g); len(delta) > 0 {
		return delta
	}
	if delta := strategy.HiddenConjugates(g); len(delta) > 0 {
		return delta
	}
	if delta := strategy.Intersections(p, g); len(delta) > 0 {
		return delta
	}
	return nil
}

// backtrack implements spec §4.5 step 5: propagation has stalled with the
// puzzle still unsolved. It guesses a value for the most-constrained cell
// and recurses, rolling the guess back and trying again on conflict.
func backtrack[Location comparable, Symbol comparable](p *cnpp.Puzzle[Location, Symbol], order SymbolOrder[Symbol]) (*cnpp.Puzzle[Location, Symbol], cnpp.State) {
	loc, ok := mostConstrainedCell(p)
	if !ok {
		// no unsolved cell found: State() should already have reported
		// Solved or Conflict, so this path should not occur.
		return p, p.State()
	}
	cell, _ := p.CellAt(loc)
	candidates := orderedCandidates(cell.Candidates(), order)

	for _, guess := range candidates {
		branch := p.DeepClone()
		branchCell, _ := branch.CellAt(loc)
		branchCell.SetValue(guess)

		result, state := Solve(branch, order)
		if state == cnpp.Solved {
			return result, state
		}
		// Conflict (or, defensively, Unsolved treated as Conflict): this
		// guess cannot lead anywhere, so rule it out on the pre-guess
		// puzzle and try the next candidate.
		cell.RemoveCandidate(guess)
	}
	return p, cnpp.Conflict
}

// mostConstrainedCell returns the location of the unsolved cell with the
// fewest candidates, ties broken by the puzzle's construction order.
func mostConstrainedCell[Location comparable, Symbol comparable](p *cnpp.Puzzle[Location, Symbol]) (Location, bool) {
	var (
		best    Location
		bestLen = -1
		found   bool
	)
	for _, loc := range p.Locations() {
		cell, _ := p.CellAt(loc)
		if _, ok := cell.Value(); ok {
			continue
		}
		n := len(cell.Candidates())
		if !found || n < bestLen {
			best, bestLen, found = loc, n, true
		}
	}
	return best, found
}

// orderedCandidates returns the candidates of a cell in a deterministic
// order, smallest-by-order first.
func orderedCandidates[Symbol comparable](candidates map[Symbol]struct{}, order SymbolOrder[Symbol]) []Symbol {
	out := make([]Symbol, 0, len(candidates))
	for s := range candidates {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return order(out[i], out[j]) })
	return slices.Clone(out)
}
