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

package strategy

import "github.com/kenjgibson/cnpp-solver/internal/cnpp"

// ErasePencilMarkings implements S1: for every solved cell, removes its
// value from the candidate sets of every cell sharing a group with it.
// Unlike the other four strategies, this one runs puzzle-wide rather than
// on a single group, because a removal can collapse a cell to a single
// candidate, which must itself be cross-hatched against its own groups
// before the strategy can be considered at fixpoint.
func ErasePencilMarkings[L comparable, S comparable](p *cnpp.Puzzle[L, S]) map[L]struct{} {
	changed := make(map[L]struct{})
	queued := make(map[L]bool)
	var frontier []L

	for _, loc := range p.Locations() {
		c, _ := p.CellAt(loc)
		if _, ok := c.Value(); ok {
			frontier = append(frontier, loc)
			queued[loc] = true
		}
	}

	for len(frontier) > 0 {
		loc := frontier[0]
		frontier = frontier[1:]
		c, _ := p.CellAt(loc)
		v, ok := c.Value()
		if !ok {
			continue
		}
		for _, g := range p.GroupsOf(loc) {
			for _, other := range g.UnsolvedCells() {
				if other == c {
					continue
				}
				if !other.RemoveCandidate(v) {
					continue
				}
				oloc, found := g.LocationOf(other)
				if !found {
					continue
				}
				changed[oloc] = struct{}{}
				if _, nowSolved := other.Value(); nowSolved && !queued[oloc] {
					queued[oloc] = true
					frontier = append(frontier, oloc)
				}
			}
		}
	}
	return changed
}

// LastRemainingCell implements S2 (the "hidden single" rule): within a
// group, any symbol already carried by a solved cell is stripped from every
// unsolved cell's candidates, and any symbol whose candidate map lists
// exactly one unsolved cell is committed to that cell.
func LastRemainingCell[L comparable, S comparable](g *cnpp.Group[L, S]) map[L]struct{} {
	changed := make(map[L]struct{})

	solvedValues := make(map[S]struct{})
	for _, c := range g.SolvedCells() {
		v, _ := c.Value()
		solvedValues[v] = struct{}{}
	}

	cm := g.CandidateMap()
	for _, s := range sortedKeys(cm) {
		cells := cm[s]
		if _, alreadySolved := solvedValues[s]; alreadySolved {
			for _, c := range cells {
				if c.RemoveCandidate(s) {
					if loc, ok := g.LocationOf(c); ok {
						changed[loc] = struct{}{}
					}
				}
			}
			continue
		}
		if len(cells) == 1 {
			c := cells[0]
			c.SetValue(s)
			if loc, ok := g.LocationOf(c); ok {
				changed[loc] = struct{}{}
			}
		}
	}
	return changed
}

// NakedConjugates implements S3: for k from 2 up to half the group size, if
// some k unsolved cells' candidates union to exactly k symbols, those
// symbols are removed from every other unsolved cell in the group. It
// returns as soon as any cell changes, since the set of candidate cells it
// is iterating over is now stale.
func NakedConjugates[L comparable, S comparable](g *cnpp.Group[L, S]) map[L]struct{} {
	changed := make(map[L]struct{})
	maxK := len(g.Cells()) / 2

	for k := 2; k <= maxK; k++ {
		unsolved := g.UnsolvedCells()
		var candidates []*cnpp.Cell[S]
		for _, c := range unsolved {
			if len(c.Candidates()) <= k {
				candidates = append(candidates, c)
			}
		}
		if len(candidates) < k {
			continue
		}

		for _, combo := range combinations(candidates, k) {
			union := make(map[S]struct{})
			for _, c := range combo {
				for s := range c.Candidates() {
					union[s] = struct{}{}
				}
			}
			if len(union) != k {
				continue
			}

			inCombo := make(map[*cnpp.Cell[S]]struct{}, k)
			for _, c := range combo {
				inCombo[c] = struct{}{}
			}
			for _, other := range unsolved {
				if _, in := inCombo[other]; in {
					continue
				}
				if other.RemoveCandidates(union) {
					if loc, ok := g.LocationOf(other); ok {
						changed[loc] = struct{}{}
					}
				}
			}
			if len(changed) > 0 {
				return changed
			}
		}
	}
	return changed
}

// HiddenConjugates implements S4: for k from 2 up to half the group size,
// if some k symbols' unsolved-cell sets union to exactly k cells, those
// cells' candidates are intersected down to just those k symbols. Like
// NakedConjugates, it returns as soon as any cell changes.
func HiddenConjugates[L comparable, S comparable](g *cnpp.Group[L, S]) map[L]struct{} {
	changed := make(map[L]struct{})
	maxK := len(g.Cells()) / 2

	for k := 2; k <= maxK; k++ {
		cm := g.CandidateMap()
		var symbols []S
		for _, s := range sortedKeys(cm) {
			if len(cm[s]) <= k {
				symbols = append(symbols, s)
			}
		}
		if len(symbols) < k {
			continue
		}

		for _, combo := range combinations(symbols, k) {
			cellSet := make(map[*cnpp.Cell[S]]struct{})
			for _, s := range combo {
				for _, c := range cm[s] {
					cellSet[c] = struct{}{}
				}
			}
			if len(cellSet) != k {
				continue
			}

			keep := make(map[S]struct{}, k)
			for _, s := range combo {
				keep[s] = struct{}{}
			}
			for c := range cellSet {
				if c.IntersectCandidates(keep) {
					if loc, ok := g.LocationOf(c); ok {
						changed[loc] = struct{}{}
					}
				}
			}
			if len(changed) > 0 {
				return changed
			}
		}
	}
	return changed
}

// Intersections implements S5 (locked candidates / pointing & claiming):
// for each symbol v whose candidate locations within g are entirely
// contained in some other group h that shares cells with g, v cannot occur
// anywhere in h outside of that shared cell set, so it is removed from the
// rest of h.
func Intersections[L comparable, S comparable](p *cnpp.Puzzle[L, S], g *cnpp.Group[L, S]) map[L]struct{} {
	changed := make(map[L]struct{})
	others := intersectingGroups(p, g)
	cm := g.CandidateMap()

	for _, v := range sortedKeys(cm) {
		locatedIn := cm[v]
		pSet := make(map[*cnpp.Cell[S]]struct{}, len(locatedIn))
		for _, c := range locatedIn {
			pSet[c] = struct{}{}
		}

		for _, h := range others {
			if !allInGroup(g, pSet, h) {
				continue
			}
			for _, c := range h.UnsolvedCells() {
				if _, inP := pSet[c]; inP {
					continue
				}
				if c.RemoveCandidate(v) {
					if loc, ok := h.LocationOf(c); ok {
						changed[loc] = struct{}{}
					}
				}
			}
		}
	}
	return changed
}

// intersectingGroups returns every group that shares at least one cell with
// g, other than g itself.
func intersectingGroups[L comparable, S comparable](p *cnpp.Puzzle[L, S], g *cnpp.Group[L, S]) []*cnpp.Group[L, S] {
	seen := make(map[*cnpp.Group[L, S]]struct{})
	var out []*cnpp.Group[L, S]
	for _, loc := range g.Locations() {
		for _, h := range p.GroupsOf(loc) {
			if h == g {
				continue
			}
			if _, dup := seen[h]; dup {
				continue
			}
			seen[h] = struct{}{}
			out = append(out, h)
		}
	}
	return out
}

// allInGroup reports whether every cell in cells (all members of owner) is
// also a member of h.
func allInGroup[L comparable, S comparable](owner *cnpp.Group[L, S], cells map[*cnpp.Cell[S]]struct{}, h *cnpp.Group[L, S]) bool {
	for c := range cells {
		loc, ok := owner.LocationOf(c)
		if !ok || !h.Contains(loc) {
			return false
		}
	}
	return true
}
