// Copyright 2016 Evolved Binary Ltd. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchgroup

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/evolvedbinary/jmhplot/benchcsv"
)

// patternStart is the character class a benchmark filter substring
// must start with. Only the leading character is checked; the rest of
// the substring passes through unvalidated. That laxity is historical
// behavior that callers rely on, so it is kept.
var patternStart = regexp.MustCompile(`^[A-Za-z0-9_+-]`)

// FilterBenchmarks returns a table with the rows of t whose benchmark
// name contains at least one of the comma-separated substrings in
// patterns, case-sensitively, anywhere in the name. An empty patterns
// string keeps every row and returns t unchanged.
//
// FilterBenchmarks fails with cause InvalidBenchmarkPattern when a
// substring's first character is outside [A-Za-z0-9_+-].
func FilterBenchmarks(t *benchcsv.Table, patterns string) (*benchcsv.Table, error) {
	if patterns == "" {
		return t, nil
	}

	subs := strings.Split(patterns, ",")
	for _, sub := range subs {
		if !patternStart.MatchString(sub) {
			return nil, benchcsv.Errorf(benchcsv.InvalidBenchmarkPattern,
				"the benchmark pattern %s has non-alphanumeric characters", sub)
		}
	}

	out := benchcsv.NewTable(t.Cols)
	for i, row := range t.Rows {
		name := t.Value(i, benchcsv.BenchmarkCol)
		for _, sub := range subs {
			if strings.Contains(name, sub) {
				out.Append(row)
				break
			}
		}
	}
	return out, nil
}

// FilterRange returns a table with the rows of t whose primary
// parameter value, coerced to an integer, lies in the inclusive range
// described by selectRange.
//
// The range has the form "low<high" with either side optional: "10<"
// keeps values from 10 up, "<4097" keeps values up to 4097. A string
// without exactly one "<" is not a range at all and t is returned
// unchanged; this permissive default is historical behavior, not an
// error. A row whose primary value does not parse as an integer lies
// in no range and is dropped.
//
// FilterRange fails with cause InvalidRange when a non-empty side is
// not an integer or when low exceeds high.
func FilterRange(t *benchcsv.Table, primary Param, selectRange string) (*benchcsv.Table, error) {
	fromTo := strings.Split(selectRange, "<")
	if len(fromTo) != 2 {
		return t, nil
	}

	low, high := int64(math.MinInt64), int64(math.MaxInt64)
	var err error
	if fromTo[0] != "" {
		low, err = strconv.ParseInt(fromTo[0], 10, 64)
	}
	if err == nil && fromTo[1] != "" {
		high, err = strconv.ParseInt(fromTo[1], 10, 64)
	}
	if err != nil || low > high {
		return nil, benchcsv.Errorf(benchcsv.InvalidRange,
			"the range %v is not valid", fromTo)
	}

	out := benchcsv.NewTable(t.Cols)
	for i, row := range t.Rows {
		v, err := strconv.ParseInt(strings.TrimSpace(t.Value(i, primary.Col)), 10, 64)
		if err != nil {
			continue
		}
		if low <= v && v <= high {
			out.Append(row)
		}
	}
	return out, nil
}
