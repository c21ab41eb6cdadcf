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
// Main function for cloud-hosted sudoku solver microservice. Accepts a
// JSON-encoded sudoku grid (JsonGrid) via an HTTP POST, solves it through
// the generic CNPP model, and returns a solved JsonGrid, or a status
// explaining why it could not be solved.
//

package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kenjgibson/cnpp-solver/internal/cnpp/solver"
	"github.com/kenjgibson/cnpp-solver/internal/sudoku"
)

// JsonGrid is the wire format accepted by POST /sudoku/solve and returned
// in the response: Solution carries the puzzle both ways (as given on
// request, as solved on response), and Status reports the outcome.
type JsonGrid struct {
	Solution sudoku.Grid `json:"solution"`
	Status   string      `json:"status"`
}

func main() {
	addr := flag.String("addr", "localhost:8000", "address to listen on")
	flag.Parse()

	r := newRouter()
	log.Printf("sudokuserver listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, r))
}

// newRouter builds the gin engine serving the solver API.
func newRouter() *gin.Engine {
	r := gin.Default()
	r.GET("/healthz", healthHandler)
	r.POST("/sudoku/solve", solveHandler)
	return r
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func solveHandler(c *gin.Context) {
	var jGrid JsonGrid
	if err := c.ShouldBindJSON(&jGrid); err != nil {
		log.Printf("can't decode JSON: %v", err)
		c.JSON(http.StatusBadRequest, JsonGrid{Status: "bad request: " + err.Error()})
		return
	}

	puzzle, err := sudoku.NewFromGrid(jGrid.Solution)
	if err != nil {
		log.Printf("invalid puzzle: %v", err)
		c.JSON(http.StatusBadRequest, JsonGrid{Solution: jGrid.Solution, Status: "invalid: " + err.Error()})
		return
	}

	result, state := solver.Solve[sudoku.Location, int](puzzle, intOrder)
	c.JSON(http.StatusOK, JsonGrid{Solution: sudoku.ToGrid(result), Status: state.String()})
}

func intOrder(a, b int) bool { return a < b }
