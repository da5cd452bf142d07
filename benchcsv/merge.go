// Copyright 2016 Evolved Binary Ltd. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import "strings"

// Merge inner-joins two tables on their shared columns.
//
// The result carries left's columns followed by right's columns that
// left lacks. A left row appears once for each right row whose values
// in every shared column match it, in left row order, then right row
// order. Rows with no match on the other side are dropped, so sources
// with disjoint keys merge to an empty table.
func Merge(left, right *Table) *Table {
	var shared []string
	for _, c := range left.Cols {
		if _, ok := right.ColIndex(c); ok {
			shared = append(shared, c)
		}
	}
	var rightOnly []string
	for _, c := range right.Cols {
		if _, ok := left.ColIndex(c); !ok {
			rightOnly = append(rightOnly, c)
		}
	}

	cols := make([]string, 0, len(left.Cols)+len(rightOnly))
	cols = append(cols, left.Cols...)
	cols = append(cols, rightOnly...)
	out := NewTable(cols)

	// Index right rows by their shared-column tuple.
	byKey := make(map[string][]int, right.Len())
	for i := range right.Rows {
		k := joinKey(right, i, shared)
		byKey[k] = append(byKey[k], i)
	}

	for i := range left.Rows {
		k := joinKey(left, i, shared)
		for _, j := range byKey[k] {
			row := make([]string, 0, len(cols))
			row = append(row, left.Rows[i]...)
			for _, c := range rightOnly {
				row = append(row, right.Value(j, c))
			}
			out.Append(row)
		}
	}
	return out
}

// joinKey builds a comparable key from a row's values in the given
// columns, separated by a byte that does not occur in harness output.
func joinKey(t *Table, row int, cols []string) string {
	var b strings.Builder
	for _, c := range cols {
		b.WriteString(t.Value(row, c))
		b.WriteByte('\x1f')
	}
	return b.String()
}
