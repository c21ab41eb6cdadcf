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

package cnpp

// A Group is a fixed set of cells that must together contain every symbol
// of the puzzle's alphabet exactly once. Two groups with identical
// membership (e.g. a row and column that happen to coincide) are still
// distinct entities; Group identity is the pointer itself.
type Group[Location comparable, Symbol comparable] struct {
	id    GroupID
	locs  []Location
	cells []*Cell[Symbol]
	byLoc map[Location]*Cell[Symbol]
}

// A GroupID names a group for diagnostics; it carries no behavior.
type GroupID struct {
	Kind  string
	Index int
}

func newGroup[Location comparable, Symbol comparable](id GroupID, locs []Location, cells []*Cell[Symbol]) *Group[Location, Symbol] {
	g := &Group[Location, Symbol]{
		id:    id,
		locs:  append([]Location(nil), locs...),
		cells: append([]*Cell[Symbol](nil), cells...),
		byLoc: make(map[Location]*Cell[Symbol], len(locs)),
	}
	for i, loc := range locs {
		g.byLoc[loc] = cells[i]
	}
	return g
}

// ID returns the group's diagnostic identifier.
func (g *Group[Location, Symbol]) ID() GroupID { return g.id }

// Cells returns every cell in the group, in construction order.
func (g *Group[Location, Symbol]) Cells() []*Cell[Symbol] {
	return append([]*Cell[Symbol](nil), g.cells...)
}

// Locations returns the location of every cell in the group, in the same
// order as Cells.
func (g *Group[Location, Symbol]) Locations() []Location {
	return append([]Location(nil), g.locs...)
}

// Contains reports whether loc names a cell of this group.
func (g *Group[Location, Symbol]) Contains(loc Location) bool {
	_, ok := g.byLoc[loc]
	return ok
}

// LocationOf returns the location of c within this group, if c is a member.
func (g *Group[Location, Symbol]) LocationOf(c *Cell[Symbol]) (Location, bool) {
	for i, cc := range g.cells {
		if cc == c {
			return g.locs[i], true
		}
	}
	var zero Location
	return zero, false
}

// SolvedCells returns the cells in the group that currently hold a
// committed value.
func (g *Group[Location, Symbol]) SolvedCells() []*Cell[Symbol] {
	var out []*Cell[Symbol]
	for _, c := range g.cells {
		if _, ok := c.Value(); ok {
			out = append(out, c)
		}
	}
	return out
}

// UnsolvedCells returns the cells in the group that do not currently hold a
// committed value.
func (g *Group[Location, Symbol]) UnsolvedCells() []*Cell[Symbol] {
	var out []*Cell[Symbol]
	for _, c := range g.cells {
		if _, ok := c.Value(); !ok {
			out = append(out, c)
		}
	}
	return out
}

// CandidateMap builds, on demand, a map from each symbol appearing in any
// unsolved cell's candidates to the set of unsolved cells holding it.
func (g *Group[Location, Symbol]) CandidateMap() map[Symbol][]*Cell[Symbol] {
	m := make(map[Symbol][]*Cell[Symbol])
	for _, c := range g.UnsolvedCells() {
		for s := range c.Candidates() {
			m[s] = append(m[s], c)
		}
	}
	return m
}

// HasConflict reports whether two solved cells in the group share a value,
// per the Group invariant in spec §3.
func (g *Group[Location, Symbol]) HasConflict() bool {
	seen := make(map[Symbol]struct{}, len(g.cells))
	for _, c := range g.SolvedCells() {
		v, _ := c.Value()
		if _, dup := seen[v]; dup {
			return true
		}
		seen[v] = struct{}{}
	}
	return false
}

// cloneWithCells returns a clone of the group that references the given
// (already-cloned) cells, found by matching locations.
func (g *Group[Location, Symbol]) cloneWithCells(byLoc map[Location]*Cell[Symbol]) *Group[Location, Symbol] {
	cells := make([]*Cell[Symbol], len(g.locs))
	for i, loc := range g.locs {
		cells[i] = byLoc[loc]
	}
	return newGroup(g.id, g.locs, cells)
}
