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

func TestGroupCandidateMap(t *testing.T) {
	// CandidateMap reflects each unsolved cell's raw candidate set as-is;
	// it performs no solved-value pruning itself (that is LastRemainingCell
	// and ErasePencilMarkings' job), so a stale candidate equal to a solved
	// cell's value still shows up here.
	cells := []CellSpec[int, int]{
		{Location: 0, Candidates: []int{1, 2}},
		{Location: 1, Candidates: []int{2, 3}},
		{Location: 2, Solved: true, Value: 3},
	}
	groups := []GroupSpec[int]{
		{ID: GroupID{Kind: "g", Index: 0}, Locations: []int{0, 1, 2}},
	}
	p, err := NewPuzzle(cells, groups)
	if err != nil {
		t.Fatalf("NewPuzzle: %v", err)
	}
	g := p.Groups()[0]
	cm := g.CandidateMap()
	if len(cm[1]) != 1 {
		t.Fatalf("expected 1 unsolved cell listing candidate 1, got %d", len(cm[1]))
	}
	if len(cm[2]) != 2 {
		t.Fatalf("expected 2 unsolved cells listing candidate 2, got %d", len(cm[2]))
	}
	if len(cm[3]) != 1 {
		t.Fatalf("expected 1 unsolved cell still listing the stale candidate 3, got %d", len(cm[3]))
	}
}

func TestGroupSolvedAndUnsolvedCells(t *testing.T) {
	cells := []CellSpec[int, int]{
		{Location: 0, Solved: true, Value: 1},
		{Location: 1, Candidates: []int{2, 3}},
	}
	groups := []GroupSpec[int]{
		{ID: GroupID{Kind: "g", Index: 0}, Locations: []int{0, 1}},
	}
	p, err := NewPuzzle(cells, groups)
	if err != nil {
		t.Fatalf("NewPuzzle: %v", err)
	}
	g := p.Groups()[0]
	if len(g.SolvedCells()) != 1 {
		t.Fatalf("expected 1 solved cell")
	}
	if len(g.UnsolvedCells()) != 1 {
		t.Fatalf("expected 1 unsolved cell")
	}
}

func TestGroupHasConflict(t *testing.T) {
	cells := []CellSpec[int, int]{
		{Location: 0, Solved: true, Value: 1},
		{Location: 1, Solved: true, Value: 1},
	}
	groups := []GroupSpec[int]{
		{ID: GroupID{Kind: "g", Index: 0}, Locations: []int{0, 1}},
	}
	p, err := NewPuzzle(cells, groups)
	if err != nil {
		t.Fatalf("NewPuzzle: %v", err)
	}
	if !p.Groups()[0].HasConflict() {
		t.Fatalf("expected group with duplicate solved values to report a conflict")
	}
}
