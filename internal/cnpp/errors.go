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

import "errors"

// Structural construction errors. These are programmer errors detected
// while building a Puzzle and are returned, never panicked, so adapter
// code can report a precise diagnostic to its own caller.
var (
	// ErrEmptyGroup is returned when a group is constructed with fewer
	// than two cells.
	ErrEmptyGroup = errors.New("cnpp: group must contain at least two cells")

	// ErrDuplicateLocation is returned when a group or puzzle is given
	// the same cell location twice.
	ErrDuplicateLocation = errors.New("cnpp: duplicate cell location")

	// ErrEmptyCandidates is returned when an unsolved cell is constructed
	// with no candidates at all.
	ErrEmptyCandidates = errors.New("cnpp: unsolved cell must have at least one candidate")
)
