// Copyright 2016 Evolved Binary Ltd. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchgroup

import (
	"reflect"
	"strings"
	"testing"

	"github.com/evolvedbinary/jmhplot/benchcsv"
)

func mkTable(t *testing.T, header string, rows ...string) *benchcsv.Table {
	t.Helper()
	tab := benchcsv.NewTable(strings.Split(header, ","))
	for _, r := range rows {
		cells := strings.Split(r, ",")
		if len(cells) != len(tab.Cols) {
			t.Fatalf("test row %q has %d cells, header has %d", r, len(cells), len(tab.Cols))
		}
		tab.Append(cells)
	}
	return tab
}

func checkCause(t *testing.T, err error, want benchcsv.ErrorCause) {
	t.Helper()
	if err == nil {
		t.Fatalf("got nil error, want cause %v", want)
	}
	got, ok := benchcsv.Cause(err)
	if !ok || got != want {
		t.Fatalf("got error %q (cause %v, %v), want cause %v", err, got, ok, want)
	}
}

func TestExtractParams(t *testing.T) {
	tab := benchcsv.NewTable([]string{
		"Benchmark",
		"Score",
		"Param: valueSize", // parameter
		"Param:checksum",   // parameter, name needs trimming only on marker side
		"Param:",           // no name
		"Mode: thrpt",      // wrong marker
		"Param: a: b",      // three fields
		" Param : direct ", // marker and name both trimmed
	})

	params := ExtractParams(tab)
	want := []string{"valueSize", "checksum", "direct"}
	if got := params.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("got params %v, want %v", got, want)
	}
	if col, _ := params.Col("direct"); col != " Param : direct " {
		t.Errorf("got column %q, want original label", col)
	}
}

func TestExtractParamsEmpty(t *testing.T) {
	params := ExtractParams(benchcsv.NewTable([]string{"Benchmark", "Score"}))
	if params.Len() != 0 {
		t.Errorf("got %d params, want 0", params.Len())
	}
}

func TestSplit(t *testing.T) {
	tab := mkTable(t, "Benchmark,Param: valueSize,Param: checksum,Param: direct")
	params := ExtractParams(tab)

	split, err := Split(params, "valueSize")
	if err != nil {
		t.Fatal(err)
	}
	if split.Primary != (Param{"valueSize", "Param: valueSize"}) {
		t.Errorf("got primary %v", split.Primary)
	}
	wantSecondary := []Param{
		{"checksum", "Param: checksum"},
		{"direct", "Param: direct"},
	}
	if !reflect.DeepEqual(split.Secondary, wantSecondary) {
		t.Errorf("got secondary %v, want %v", split.Secondary, wantSecondary)
	}
}

func TestSplitConsumesParams(t *testing.T) {
	params := ExtractParams(mkTable(t, "Param: valueSize,Param: checksum"))
	if _, err := Split(params, "valueSize"); err != nil {
		t.Fatal(err)
	}
	if params.Has("valueSize") {
		t.Error("params still has valueSize after the split")
	}
	if params.Len() != 0 {
		t.Errorf("params still has %d entries after the split", params.Len())
	}
	// A second split of the consumed map must fail, not silently
	// produce an empty split.
	_, err := Split(params, "checksum")
	checkCause(t, err, benchcsv.MissingPrimaryParameter)
}

func TestSplitMissingPrimary(t *testing.T) {
	params := ExtractParams(mkTable(t, "Param: checksum"))
	_, err := Split(params, "valueSize")
	checkCause(t, err, benchcsv.MissingPrimaryParameter)
}
