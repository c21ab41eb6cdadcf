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

import "fmt"

// State is the overall solvability state of a Puzzle.
type State int

const (
	// Solved means every cell is committed and no group has a conflict.
	Solved State = iota
	// Unsolved means at least one cell still has more than one candidate
	// and no conflict has been detected yet.
	Unsolved
	// Conflict means no completion of the puzzle is possible: either some
	// cell is conflicted (no value, no candidates) or some group has two
	// solved cells sharing a value.
	Conflict
)

func (s State) String() string {
	switch s {
	case Solved:
		return "Solved"
	case Unsolved:
		return "Unsolved"
	case Conflict:
		return "Conflict"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// A CellSpec describes one cell to be built into a Puzzle: either a
// committed Value, or a set of Candidates if Value is not set. Exactly one
// of Solved or len(Candidates) > 0 should hold; NewPuzzle treats an entry
// with neither as an error.
type CellSpec[Location comparable, Symbol comparable] struct {
	Location   Location
	Solved     bool
	Value      Symbol
	Candidates []Symbol
}

// A GroupSpec names a group (for diagnostics) and lists the locations of
// its member cells. Every location must appear in at least one GroupSpec
// passed to NewPuzzle, and locations may be repeated across different
// GroupSpecs (e.g. a cell belongs to a row, a column, and a box).
type GroupSpec[Location comparable] struct {
	ID        GroupID
	Locations []Location
}

// Puzzle owns every cell and group of a CNPP instance, plus two indices:
// cell location -> cell, and cell location -> the groups containing it.
type Puzzle[Location comparable, Symbol comparable] struct {
	cells    map[Location]*Cell[Symbol]
	order    []Location // stable iteration order, construction order
	groups   []*Group[Location, Symbol]
	groupsOf map[Location][]*Group[Location, Symbol]
}

// NewPuzzle builds a Puzzle from cell specifications and the groups that
// constrain them. It returns a structural error (see errors.go) if any
// group has fewer than two cells, if a cell's spec is neither solved nor
// given at least one candidate, or if a cell location is duplicated within
// the cells slice.
func NewPuzzle[Location comparable, Symbol comparable](cells []CellSpec[Location, Symbol], groupSpecs []GroupSpec[Location]) (*Puzzle[Location, Symbol], error) {
	p := &Puzzle[Location, Symbol]{
		cells:    make(map[Location]*Cell[Symbol], len(cells)),
		order:    make([]Location, 0, len(cells)),
		groupsOf: make(map[Location][]*Group[Location, Symbol]),
	}

	for _, spec := range cells {
		if _, dup := p.cells[spec.Location]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateLocation, spec.Location)
		}
		var c *Cell[Symbol]
		if spec.Solved {
			c = NewSolvedCell(spec.Value)
		} else {
			if len(spec.Candidates) == 0 {
				return nil, fmt.Errorf("%w: %v", ErrEmptyCandidates, spec.Location)
			}
			c = NewUnsolvedCell(spec.Candidates...)
		}
		p.cells[spec.Location] = c
		p.order = append(p.order, spec.Location)
	}

	for _, gs := range groupSpecs {
		if len(gs.Locations) < 2 {
			return nil, fmt.Errorf("%w: %v", ErrEmptyGroup, gs.ID)
		}
		seen := make(map[Location]struct{}, len(gs.Locations))
		groupCells := make([]*Cell[Symbol], len(gs.Locations))
		for i, loc := range gs.Locations {
			if _, dup := seen[loc]; dup {
				return nil, fmt.Errorf("%w: %v in group %v", ErrDuplicateLocation, loc, gs.ID)
			}
			seen[loc] = struct{}{}
			c, ok := p.cells[loc]
			if !ok {
				return nil, fmt.Errorf("cnpp: group %v references unknown location %v", gs.ID, loc)
			}
			groupCells[i] = c
		}
		g := newGroup(gs.ID, gs.Locations, groupCells)
		p.groups = append(p.groups, g)
		for _, loc := range gs.Locations {
			p.groupsOf[loc] = append(p.groupsOf[loc], g)
		}
	}

	return p, nil
}

// Groups returns every group in the puzzle, in construction order.
func (p *Puzzle[Location, Symbol]) Groups() []*Group[Location, Symbol] {
	return append([]*Group[Location, Symbol](nil), p.groups...)
}

// GroupsOf returns the groups containing the cell at loc. Lookup is O(1),
// backed by an index built at construction time.
func (p *Puzzle[Location, Symbol]) GroupsOf(loc Location) []*Group[Location, Symbol] {
	return append([]*Group[Location, Symbol](nil), p.groupsOf[loc]...)
}

// CellAt returns the cell at loc, if any.
func (p *Puzzle[Location, Symbol]) CellAt(loc Location) (*Cell[Symbol], bool) {
	c, ok := p.cells[loc]
	return c, ok
}

// Locations returns every cell location in the puzzle, in construction
// order.
func (p *Puzzle[Location, Symbol]) Locations() []Location {
	return append([]Location(nil), p.order...)
}

// State computes the puzzle's overall solvability state:
//  1. any conflicted cell -> Conflict
//  2. any group whose solved cells repeat a value -> Conflict
//  3. else, any group with an unsolved cell -> Unsolved
//  4. else -> Solved
// A duplicate committed value within a group is a conflict regardless of
// whether that group still has unsolved cells elsewhere, so every group is
// checked for HasConflict unconditionally.
func (p *Puzzle[Location, Symbol]) State() State {
	for _, loc := range p.order {
		if p.cells[loc].Conflicted() {
			return Conflict
		}
	}
	sawUnsolved := false
	for _, g := range p.groups {
		if g.HasConflict() {
			return Conflict
		}
		if len(g.UnsolvedCells()) > 0 {
			sawUnsolved = true
		}
	}
	if sawUnsolved {
		return Unsolved
	}
	return Solved
}

// DeepClone returns an independent copy of the puzzle: cells and groups are
// cloned and relinked so that mutating the clone never affects the
// original, while CellAt(loc) identifies corresponding cells between the
// two.
func (p *Puzzle[Location, Symbol]) DeepClone() *Puzzle[Location, Symbol] {
	clone := &Puzzle[Location, Symbol]{
		cells:    make(map[Location]*Cell[Symbol], len(p.cells)),
		order:    append([]Location(nil), p.order...),
		groupsOf: make(map[Location][]*Group[Location, Symbol]),
	}
	for loc, c := range p.cells {
		clone.cells[loc] = c.clone()
	}
	clone.groups = make([]*Group[Location, Symbol], len(p.groups))
	for i, g := range p.groups {
		clone.groups[i] = g.cloneWithCells(clone.cells)
	}
	for _, g := range clone.groups {
		for _, loc := range g.locs {
			clone.groupsOf[loc] = append(clone.groupsOf[loc], g)
		}
	}
	return clone
}
