// Copyright 2016 Evolved Binary Ltd. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchgroup

import (
	"math"
	"strconv"
	"strings"

	"github.com/evolvedbinary/jmhplot/benchcsv"
)

// A Point is one measurement: the primary parameter value it was
// taken at, the reported score and the reported score error.
type Point struct {
	Value, Score, Error float64
}

// A ResultSet holds the points collected for one secondary-value
// combination, bucketed by benchmark. Benchmarks keep their
// first-seen order, which becomes the chart legend order; points
// within a bucket keep row encounter order.
type ResultSet struct {
	benches []string
	points  map[string][]Point
}

// Benchmarks returns the benchmark names in first-seen order.
func (s *ResultSet) Benchmarks() []string {
	return s.benches
}

// Points returns the points for the named benchmark in encounter
// order.
func (s *ResultSet) Points(bench string) []Point {
	return s.points[bench]
}

func (s *ResultSet) add(bench string, p Point) {
	if _, ok := s.points[bench]; !ok {
		s.benches = append(s.benches, bench)
	}
	s.points[bench] = append(s.points[bench], p)
}

// A Grouping maps each distinct secondary-value tuple in a table to
// the result set collected for it. It is built once per run, handed
// to the renderer, and discarded.
type Grouping struct {
	keys [][]string
	sets map[string]*ResultSet
}

// Group folds the rows of t into a Grouping.
//
// Rows are visited in table order. Each row's key is its values in
// the secondary columns, read in split.Secondary order; within the
// key's result set the row appends one Point to its benchmark's
// bucket. Nothing is sorted: groups and buckets appear in first-seen
// order and points in row order.
//
// Score, score error and the primary value are coerced to float64;
// a cell that does not parse becomes NaN and is left for the
// renderer to skip.
func Group(t *benchcsv.Table, split ParamSplit) *Grouping {
	g := &Grouping{sets: make(map[string]*ResultSet)}
	for i := range t.Rows {
		vals := make([]string, len(split.Secondary))
		for j, p := range split.Secondary {
			vals[j] = t.Value(i, p.Col)
		}
		set := g.set(vals)

		set.add(t.Value(i, benchcsv.BenchmarkCol), Point{
			Value: number(t.Value(i, split.Primary.Col)),
			Score: number(t.Value(i, benchcsv.ScoreCol)),
			Error: number(t.Value(i, benchcsv.ScoreErrorCol)),
		})
	}
	return g
}

// Len returns the number of distinct secondary-value tuples.
func (g *Grouping) Len() int {
	return len(g.keys)
}

// Keys returns the secondary-value tuples in first-seen order.
func (g *Grouping) Keys() [][]string {
	return g.keys
}

// Get returns the result set for the given tuple, or nil.
func (g *Grouping) Get(key []string) *ResultSet {
	return g.sets[keyString(key)]
}

// set returns the result set for key, creating it on first sight.
func (g *Grouping) set(key []string) *ResultSet {
	ks := keyString(key)
	s, ok := g.sets[ks]
	if !ok {
		s = &ResultSet{points: make(map[string][]Point)}
		g.sets[ks] = s
		g.keys = append(g.keys, key)
	}
	return s
}

func keyString(key []string) string {
	return strings.Join(key, "\x1f")
}

func number(cell string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
