// Copyright 2016 Evolved Binary Ltd. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchgroup folds loaded result tables into chart-ready
// series: it discovers benchmark parameters, splits them into one
// X-axis parameter and the grouping parameters, filters rows, and
// groups (value, score, error) points by parameter combination and
// benchmark.
package benchgroup

import (
	"strings"

	"github.com/evolvedbinary/jmhplot/benchcsv"
)

// paramMarker is the prefix part of a parameter column label,
// e.g. "Param: valueSize".
const paramMarker = "Param"

// A Param pairs a parameter name with the column label it was
// extracted from.
type Param struct {
	Name, Col string
}

// A ParamMap maps parameter names to their column labels, ordered by
// column position in the source table. The order is what fixes the
// positional meaning of a grouping key, so it must not change
// between extraction and grouping within one run.
type ParamMap struct {
	names []string
	cols  map[string]string
}

// ExtractParams scans t's header for parameter columns. A column
// qualifies when its label splits on ":" into exactly two non-empty
// parts and the first, trimmed, equals "Param"; the second part,
// trimmed, is the parameter name.
//
// An empty map is valid: the table simply has no parameters.
func ExtractParams(t *benchcsv.Table) *ParamMap {
	m := &ParamMap{cols: make(map[string]string)}
	for _, label := range t.Cols {
		fields := strings.Split(label, ":")
		if len(fields) != 2 || strings.TrimSpace(fields[0]) != paramMarker {
			continue
		}
		name := strings.TrimSpace(fields[1])
		if name == "" {
			continue
		}
		if _, ok := m.cols[name]; !ok {
			m.names = append(m.names, name)
		}
		m.cols[name] = label
	}
	return m
}

// Len returns the number of parameters in m.
func (m *ParamMap) Len() int {
	return len(m.names)
}

// Has reports whether m contains a parameter with the given name.
func (m *ParamMap) Has(name string) bool {
	_, ok := m.cols[name]
	return ok
}

// Col returns the column label for the named parameter.
func (m *ParamMap) Col(name string) (string, bool) {
	col, ok := m.cols[name]
	return col, ok
}

// Names returns the parameter names in column order.
func (m *ParamMap) Names() []string {
	return append([]string(nil), m.names...)
}

// A ParamSplit partitions a parameter set into the single primary
// parameter, varied along the X axis, and the ordered secondary
// parameters whose distinct value combinations each produce one
// chart.
type ParamSplit struct {
	Primary   Param
	Secondary []Param
}

// SecondaryNames returns the secondary parameter names in key order.
func (s ParamSplit) SecondaryNames() []string {
	names := make([]string, len(s.Secondary))
	for i, p := range s.Secondary {
		names[i] = p.Name
	}
	return names
}

// Split moves the named parameter out of params as the primary
// parameter and the ordered rest as the secondary parameters.
//
// Split consumes params: the split owns its entries afterwards and
// the map is left empty, so a caller cannot accidentally derive two
// splits from one extraction.
//
// Split fails with cause MissingPrimaryParameter if the name is not
// in params.
func Split(params *ParamMap, primary string) (ParamSplit, error) {
	col, ok := params.cols[primary]
	if !ok {
		return ParamSplit{}, benchcsv.Errorf(benchcsv.MissingPrimaryParameter,
			"missing %s in params %v", primary, params.names)
	}

	split := ParamSplit{Primary: Param{primary, col}}
	for _, name := range params.names {
		if name == primary {
			continue
		}
		split.Secondary = append(split.Secondary, Param{name, params.cols[name]})
	}

	params.names = nil
	params.cols = nil
	return split, nil
}
