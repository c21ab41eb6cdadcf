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

import "testing"

// a tiny 2x2 Latin-square-like puzzle used across core tests: two rows,
// two columns, alphabet {1, 2}.
func newTinyPuzzle(t *testing.T) *Puzzle[[2]int, int] {
	t.Helper()
	cells := []CellSpec[[2]int, int]{
		{Location: [2]int{0, 0}, Candidates: []int{1, 2}},
		{Location: [2]int{0, 1}, Candidates: []int{1, 2}},
		{Location: [2]int{1, 0}, Candidates: []int{1, 2}},
		{Location: [2]int{1, 1}, Candidates: []int{1, 2}},
	}
	groups := []GroupSpec[[2]int]{
		{ID: GroupID{Kind: "row", Index: 0}, Locations: []([2]int){{0, 0}, {0, 1}}},
		{ID: GroupID{Kind: "row", Index: 1}, Locations: []([2]int){{1, 0}, {1, 1}}},
		{ID: GroupID{Kind: "col", Index: 0}, Locations: []([2]int){{0, 0}, {1, 0}}},
		{ID: GroupID{Kind: "col", Index: 1}, Locations: []([2]int){{0, 1}, {1, 1}}},
	}
	p, err := NewPuzzle(cells, groups)
	if err != nil {
		t.Fatalf("NewPuzzle failed: %v", err)
	}
	return p
}

func TestPuzzleGroupsOfIsComplete(t *testing.T) {
	p := newTinyPuzzle(t)
	groups := p.GroupsOf([2]int{0, 0})
	if len(groups) != 2 {
		t.Fatalf("expected cell (0,0) to belong to 2 groups, got %d", len(groups))
	}
}

func TestPuzzleStateUnsolvedInitially(t *testing.T) {
	p := newTinyPuzzle(t)
	if got := p.State(); got != Unsolved {
		t.Fatalf("State() = %v; want Unsolved", got)
	}
}

func TestPuzzleStateSolved(t *testing.T) {
	cells := []CellSpec[[2]int, int]{
		{Location: [2]int{0, 0}, Solved: true, Value: 1},
		{Location: [2]int{0, 1}, Solved: true, Value: 2},
		{Location: [2]int{1, 0}, Solved: true, Value: 2},
		{Location: [2]int{1, 1}, Solved: true, Value: 1},
	}
	groups := []GroupSpec[[2]int]{
		{ID: GroupID{Kind: "row", Index: 0}, Locations: []([2]int){{0, 0}, {0, 1}}},
		{ID: GroupID{Kind: "row", Index: 1}, Locations: []([2]int){{1, 0}, {1, 1}}},
	}
	p, err := NewPuzzle(cells, groups)
	if err != nil {
		t.Fatalf("NewPuzzle failed: %v", err)
	}
	if got := p.State(); got != Solved {
		t.Fatalf("State() = %v; want Solved", got)
	}
}

func TestPuzzleStateConflictFromDuplicateValue(t *testing.T) {
	cells := []CellSpec[[2]int, int]{
		{Location: [2]int{0, 0}, Solved: true, Value: 1},
		{Location: [2]int{0, 1}, Solved: true, Value: 1},
	}
	groups := []GroupSpec[[2]int]{
		{ID: GroupID{Kind: "row", Index: 0}, Locations: []([2]int){{0, 0}, {0, 1}}},
	}
	p, err := NewPuzzle(cells, groups)
	if err != nil {
		t.Fatalf("NewPuzzle failed: %v", err)
	}
	if got := p.State(); got != Conflict {
		t.Fatalf("State() = %v; want Conflict", got)
	}
}

func TestPuzzleStateConflictFromDuplicateValueWithUnsolvedCellsPresent(t *testing.T) {
	// the group still has an unsolved cell, but two of its solved cells
	// already share a value: this must be Conflict immediately, not
	// Unsolved pending the third cell's eventual resolution.
	cells := []CellSpec[[2]int, int]{
		{Location: [2]int{0, 0}, Solved: true, Value: 1},
		{Location: [2]int{0, 1}, Solved: true, Value: 1},
		{Location: [2]int{0, 2}, Candidates: []int{1, 2}},
	}
	groups := []GroupSpec[[2]int]{
		{ID: GroupID{Kind: "row", Index: 0}, Locations: []([2]int){{0, 0}, {0, 1}, {0, 2}}},
	}
	p, err := NewPuzzle(cells, groups)
	if err != nil {
		t.Fatalf("NewPuzzle failed: %v", err)
	}
	if got := p.State(); got != Conflict {
		t.Fatalf("State() = %v; want Conflict", got)
	}
}

func TestPuzzleStateConflictFromConflictedCell(t *testing.T) {
	p := newTinyPuzzle(t)
	c, _ := p.CellAt([2]int{0, 0})
	c.RemoveCandidate(1)
	c.RemoveCandidate(2)
	if got := p.State(); got != Conflict {
		t.Fatalf("State() = %v; want Conflict", got)
	}
}

func TestPuzzleDeepCloneIndependence(t *testing.T) {
	p := newTinyPuzzle(t)
	clone := p.DeepClone()

	cloneCell, _ := clone.CellAt([2]int{0, 0})
	cloneCell.SetValue(1)

	origCell, _ := p.CellAt([2]int{0, 0})
	if _, ok := origCell.Value(); ok {
		t.Fatalf("mutating clone's cell mutated the original puzzle")
	}

	// corresponding groups in the clone must see the update.
	for _, g := range clone.GroupsOf([2]int{0, 0}) {
		found := false
		for _, c := range g.Cells() {
			if c == cloneCell {
				found = true
			}
		}
		if !found {
			t.Fatalf("clone's group does not reference the clone's cell")
		}
	}
}

func TestNewPuzzleRejectsSmallGroup(t *testing.T) {
	cells := []CellSpec[int, int]{
		{Location: 0, Candidates: []int{1, 2}},
	}
	groups := []GroupSpec[int]{
		{ID: GroupID{Kind: "row", Index: 0}, Locations: []int{0}},
	}
	if _, err := NewPuzzle(cells, groups); err == nil {
		t.Fatalf("expected error for group with fewer than two cells")
	}
}

func TestNewPuzzleRejectsEmptyCandidates(t *testing.T) {
	cells := []CellSpec[int, int]{
		{Location: 0},
		{Location: 1, Candidates: []int{1}},
	}
	groups := []GroupSpec[int]{
		{ID: GroupID{Kind: "row", Index: 0}, Locations: []int{0, 1}},
	}
	if _, err := NewPuzzle(cells, groups); err == nil {
		t.Fatalf("expected error for cell with neither a value nor candidates")
	}
}

func TestNewPuzzleRejectsDuplicateLocation(t *testing.T) {
	cells := []CellSpec[int, int]{
		{Location: 0, Candidates: []int{1, 2}},
		{Location: 0, Candidates: []int{1, 2}},
	}
	if _, err := NewPuzzle(cells, nil); err == nil {
		t.Fatalf("expected error for duplicate cell location")
	}
}
