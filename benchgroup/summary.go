// Copyright 2016 Evolved Binary Ltd. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchgroup

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
)

// A Summary reports basic statistics over one benchmark's scores
// within a result set, for the optional text report.
type Summary struct {
	Benchmark string

	// N is the number of points; NOutliers of them were discarded
	// from the statistics by the interquartile range rule.
	N, NOutliers int

	Mean, Min, Max float64
}

// Summarize computes a Summary per benchmark bucket of s, in legend
// order. Points with a NaN score are outliers by definition.
func Summarize(s *ResultSet) []Summary {
	sums := make([]Summary, 0, len(s.benches))
	for _, bench := range s.benches {
		pts := s.points[bench]
		scores := make([]float64, 0, len(pts))
		for _, p := range pts {
			if !math.IsNaN(p.Score) {
				scores = append(scores, p.Score)
			}
		}

		// Discard outliers by the interquartile range rule.
		sort.Float64s(scores)
		sample := stats.Sample{Xs: scores, Sorted: true}
		q1, q3 := sample.Quantile(0.25), sample.Quantile(0.75)
		lo, hi := q1-1.5*(q3-q1), q3+1.5*(q3-q1)
		var kept []float64
		for _, v := range scores {
			if lo <= v && v <= hi {
				kept = append(kept, v)
			}
		}

		sum := Summary{Benchmark: bench, N: len(pts), NOutliers: len(pts) - len(kept)}
		keptSample := stats.Sample{Xs: kept, Sorted: true}
		sum.Min, sum.Max = keptSample.Bounds()
		sum.Mean = keptSample.Mean()
		sums = append(sums, sum)
	}
	return sums
}
