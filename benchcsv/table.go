// Copyright 2016 Evolved Binary Ltd. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchcsv reads CSV result files written by the JMH
// microbenchmark harness into in-memory tables.
//
// A JMH CSV file has a header row naming at least the "Benchmark",
// "Score" and "Score Error (99.9%)" columns, plus one column per
// benchmark parameter labelled "Param: <name>". The harness writes
// nine report lines per sample; only the first carries the sample
// data, so loading keeps every ninth row and discards the rest.
//
// All cells are kept as strings. Higher-level packages coerce scores
// and parameter values where they consume them.
package benchcsv

// Column labels every result file must carry.
const (
	BenchmarkCol  = "Benchmark"
	ScoreCol      = "Score"
	ScoreErrorCol = "Score Error (99.9%)"
)

// A Table is an ordered set of result rows sharing one header.
//
// Tables are read-only after construction. The filter stages build
// new Tables that share row storage with their input rather than
// mutating it.
type Table struct {
	// Cols is the header, in file order.
	Cols []string

	// Rows holds one slice per row, each of len(Cols).
	Rows [][]string

	// colPos maps from column label to index in Cols. It is
	// built on first lookup.
	colPos map[string]int
}

// NewTable returns an empty Table with the given header.
func NewTable(cols []string) *Table {
	return &Table{Cols: cols}
}

// Len returns the number of rows in t.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Append adds a row to t. The row must have len(t.Cols) cells.
func (t *Table) Append(row []string) {
	t.Rows = append(t.Rows, row)
}

// ColIndex returns the position of the column with the given label
// and whether it exists.
func (t *Table) ColIndex(label string) (int, bool) {
	if t.colPos == nil {
		t.colPos = make(map[string]int, len(t.Cols))
		for i, c := range t.Cols {
			t.colPos[c] = i
		}
	}
	i, ok := t.colPos[label]
	return i, ok
}

// Value returns the cell at the given row in the column with the
// given label, or "" if the column does not exist.
func (t *Table) Value(row int, label string) string {
	i, ok := t.ColIndex(label)
	if !ok {
		return ""
	}
	return t.Rows[row][i]
}
