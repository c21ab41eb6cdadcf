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

//
// Package sudoku is a thin 9x9 adapter over the generic CNPP model: it
// builds a Puzzle whose Location is a (row, col) pair and whose Symbol is
// an int in 1..9, wires up the 27 row/column/box groups, and renders a
// Puzzle back out as a plain-text grid.
//
package sudoku

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kenjgibson/cnpp-solver/internal/cnpp"
)

// GridSize is the width and height of a Sudoku grid.
const GridSize = 9

// BoxSize is the width and height of a Sudoku box.
const BoxSize = 3

// MinVal and MaxVal bound the legal committed values and pencil-mark
// digits of a cell.
const (
	MinVal = 1
	MaxVal = 9
)

// Blank denotes an empty cell in a Grid.
const Blank = 0

// Location identifies a cell by its 0-based row and column.
type Location struct {
	Row int
	Col int
}

// Grid is the 9x9 array of cell specifiers accepted by NewFromGrid. A cell
// value of Blank is empty; 1..9 commits the cell; any integer whose decimal
// representation has more than one digit is interpreted as an explicit
// candidate set built from those digits (so 135 means candidates {1,3,5}).
type Grid [GridSize][GridSize]int

// NewFromGrid builds a Puzzle from a 9x9 Grid, wiring up the 9 rows, 9
// columns and 9 boxes as groups. The Grid type is always 9x9, so the shape
// needs no check; it returns a structural error if a committed value or a
// candidate digit lies outside 1..9 (so a 0 digit inside a multi-digit
// candidate set is rejected).
func NewFromGrid(g Grid) (*cnpp.Puzzle[Location, int], error) {
	var cells []cnpp.CellSpec[Location, int]

	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			loc := Location{Row: row, Col: col}
			spec, err := cellSpec(loc, g[row][col])
			if err != nil {
				return nil, err
			}
			cells = append(cells, spec)
		}
	}

	return cnpp.NewPuzzle(cells, groupSpecs())
}

// cellSpec converts one Grid entry into a CellSpec, per the encoding
// documented on Grid.
func cellSpec(loc Location, value int) (cnpp.CellSpec[Location, int], error) {
	if value == Blank {
		return cnpp.CellSpec[Location, int]{Location: loc, Candidates: fullCandidates()}, nil
	}

	digits := strconv.Itoa(value)
	if len(digits) == 1 {
		if value < MinVal || value > MaxVal {
			return cnpp.CellSpec[Location, int]{}, fmt.Errorf("sudoku: value %d at %v out of range 1..9", value, loc)
		}
		return cnpp.CellSpec[Location, int]{Location: loc, Solved: true, Value: value}, nil
	}

	candidates := make([]int, 0, len(digits))
	for _, r := range digits {
		d := int(r - '0')
		if d < MinVal || d > MaxVal {
			return cnpp.CellSpec[Location, int]{}, fmt.Errorf("sudoku: candidate digit %d at %v out of range 1..9", d, loc)
		}
		candidates = append(candidates, d)
	}
	return cnpp.CellSpec[Location, int]{Location: loc, Candidates: candidates}, nil
}

func fullCandidates() []int {
	out := make([]int, 0, GridSize)
	for v := MinVal; v <= MaxVal; v++ {
		out = append(out, v)
	}
	return out
}

// NewFromString builds a Puzzle from a row-major string of 81 digit
// characters, one per cell; '0' denotes an empty cell. Every character that
// is not a digit (whitespace included) is ignored, so both a bare
// 81-character string and a space/newline-formatted one are accepted.
func NewFromString(s string) (*cnpp.Puzzle[Location, int], error) {
	digits := make([]rune, 0, GridSize*GridSize)
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) != GridSize*GridSize {
		return nil, fmt.Errorf("sudoku: expected 81 digits, got %d", len(digits))
	}

	var g Grid
	for i, r := range digits {
		g[i/GridSize][i%GridSize] = int(r - '0')
	}
	return NewFromGrid(g)
}

// groupSpecs builds the 9 row, 9 column and 9 box GroupSpecs.
func groupSpecs() []cnpp.GroupSpec[Location] {
	specs := make([]cnpp.GroupSpec[Location], 0, GridSize*3)

	for row := 0; row < GridSize; row++ {
		var locs []Location
		for col := 0; col < GridSize; col++ {
			locs = append(locs, Location{Row: row, Col: col})
		}
		specs = append(specs, cnpp.GroupSpec[Location]{ID: cnpp.GroupID{Kind: "row", Index: row}, Locations: locs})
	}
	for col := 0; col < GridSize; col++ {
		var locs []Location
		for row := 0; row < GridSize; row++ {
			locs = append(locs, Location{Row: row, Col: col})
		}
		specs = append(specs, cnpp.GroupSpec[Location]{ID: cnpp.GroupID{Kind: "col", Index: col}, Locations: locs})
	}
	for boxRow := 0; boxRow < GridSize/BoxSize; boxRow++ {
		for boxCol := 0; boxCol < GridSize/BoxSize; boxCol++ {
			var locs []Location
			for dr := 0; dr < BoxSize; dr++ {
				for dc := 0; dc < BoxSize; dc++ {
					locs = append(locs, Location{Row: boxRow*BoxSize + dr, Col: boxCol*BoxSize + dc})
				}
			}
			specs = append(specs, cnpp.GroupSpec[Location]{
				ID:        cnpp.GroupID{Kind: "box", Index: boxRow*(GridSize/BoxSize) + boxCol},
				Locations: locs,
			})
		}
	}
	return specs
}

// Render returns a multiline rendering of p: one row per line, 9
// space-separated tokens per row, solved cells as their digit and unsolved
// cells as "?".
func Render(p *cnpp.Puzzle[Location, int]) string {
	var b strings.Builder
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			c, ok := p.CellAt(Location{Row: row, Col: col})
			if !ok {
				b.WriteByte('?')
				continue
			}
			if v, solved := c.Value(); solved {
				b.WriteString(strconv.Itoa(v))
			} else {
				b.WriteByte('?')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ToGrid reads p back out as a Grid, with unsolved cells rendered as Blank.
// It is the inverse of NewFromGrid for solved puzzles, and is used by
// cmd/sudokuserver to build its JSON response.
func ToGrid(p *cnpp.Puzzle[Location, int]) Grid {
	var g Grid
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			c, ok := p.CellAt(Location{Row: row, Col: col})
			if !ok {
				continue
			}
			if v, solved := c.Value(); solved {
				g[row][col] = v
			}
		}
	}
	return g
}
