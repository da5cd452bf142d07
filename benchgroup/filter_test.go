// Copyright 2016 Evolved Binary Ltd. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchgroup

import (
	"reflect"
	"testing"

	"github.com/evolvedbinary/jmhplot/benchcsv"
)

const filterHeader = "Benchmark,Score,Score Error (99.9%),Param: valueSize"

func filterTable(t *testing.T) *benchcsv.Table {
	return mkTable(t, filterHeader,
		"BenchGetDirect,100,1,10",
		"BenchGetByteArray,200,2,20",
		"BenchGetUnsafe,300,3,4097",
		"BenchPutCritical,400,4,64",
	)
}

func benchNames(t *testing.T, tab *benchcsv.Table) []string {
	t.Helper()
	var names []string
	for i := 0; i < tab.Len(); i++ {
		names = append(names, tab.Value(i, benchcsv.BenchmarkCol))
	}
	return names
}

func TestFilterBenchmarks(t *testing.T) {
	check := func(t *testing.T, patterns string, want ...string) {
		t.Helper()
		got, err := FilterBenchmarks(filterTable(t), patterns)
		if err != nil {
			t.Fatal(err)
		}
		if names := benchNames(t, got); !reflect.DeepEqual(names, want) {
			t.Errorf("%q: got %v, want %v", patterns, names, want)
		}
	}

	t.Run("single", func(t *testing.T) {
		check(t, "Direct", "BenchGetDirect")
	})
	t.Run("orCombined", func(t *testing.T) {
		check(t, "Direct,Byte", "BenchGetDirect", "BenchGetByteArray")
	})
	t.Run("infixAnywhere", func(t *testing.T) {
		check(t, "Get", "BenchGetDirect", "BenchGetByteArray", "BenchGetUnsafe")
	})
	t.Run("caseSensitive", func(t *testing.T) {
		check(t, "direct")
	})
	t.Run("noMatches", func(t *testing.T) {
		check(t, "Blob")
	})
}

func TestFilterBenchmarksNoOp(t *testing.T) {
	tab := filterTable(t)
	got, err := FilterBenchmarks(tab, "")
	if err != nil {
		t.Fatal(err)
	}
	if got != tab {
		t.Error("empty pattern did not pass the table through unchanged")
	}
}

func TestFilterBenchmarksValidation(t *testing.T) {
	t.Run("badLeadingChar", func(t *testing.T) {
		_, err := FilterBenchmarks(filterTable(t), "Direct,*yte")
		checkCause(t, err, benchcsv.InvalidBenchmarkPattern)
	})
	t.Run("emptySubstring", func(t *testing.T) {
		_, err := FilterBenchmarks(filterTable(t), "Direct,")
		checkCause(t, err, benchcsv.InvalidBenchmarkPattern)
	})
	// Only the leading character is validated: a substring that
	// goes bad after the first character is accepted and simply
	// matches nothing as an infix.
	t.Run("laxAfterFirstChar", func(t *testing.T) {
		got, err := FilterBenchmarks(filterTable(t), "D*rect")
		if err != nil {
			t.Fatal(err)
		}
		if got.Len() != 0 {
			t.Errorf("got %d rows, want 0", got.Len())
		}
	})
}

func TestFilterRange(t *testing.T) {
	primary := Param{"valueSize", "Param: valueSize"}

	check := func(t *testing.T, rangeStr string, want ...string) {
		t.Helper()
		got, err := FilterRange(filterTable(t), primary, rangeStr)
		if err != nil {
			t.Fatal(err)
		}
		if names := benchNames(t, got); !reflect.DeepEqual(names, want) {
			t.Errorf("%q: got %v, want %v", rangeStr, names, want)
		}
	}

	t.Run("bothBounds", func(t *testing.T) {
		check(t, "10<20", "BenchGetDirect", "BenchGetByteArray")
	})
	t.Run("inclusive", func(t *testing.T) {
		check(t, "20<64", "BenchGetByteArray", "BenchPutCritical")
	})
	t.Run("upperOnly", func(t *testing.T) {
		check(t, "<20", "BenchGetDirect", "BenchGetByteArray")
	})
	t.Run("lowerOnly", func(t *testing.T) {
		check(t, "64<", "BenchGetUnsafe", "BenchPutCritical")
	})
	t.Run("unbounded", func(t *testing.T) {
		check(t, "<", "BenchGetDirect", "BenchGetByteArray", "BenchGetUnsafe", "BenchPutCritical")
	})
}

func TestFilterRangeNoOp(t *testing.T) {
	primary := Param{"valueSize", "Param: valueSize"}
	// No "<" or more than one "<" is not a range: the table
	// passes through unchanged rather than failing.
	for _, rangeStr := range []string{"", "abc", "10", "1<2<3"} {
		tab := filterTable(t)
		got, err := FilterRange(tab, primary, rangeStr)
		if err != nil {
			t.Fatal(err)
		}
		if got != tab {
			t.Errorf("%q: table was not passed through unchanged", rangeStr)
		}
	}
}

func TestFilterRangeInvalid(t *testing.T) {
	primary := Param{"valueSize", "Param: valueSize"}
	for _, rangeStr := range []string{"20<10", "a<10", "10<b", "1.5<2"} {
		_, err := FilterRange(filterTable(t), primary, rangeStr)
		checkCause(t, err, benchcsv.InvalidRange)
	}
}

func TestFilterRangeNonIntegerValue(t *testing.T) {
	tab := mkTable(t, filterHeader,
		"BenchGetDirect,100,1,10",
		"BenchGetMapped,200,2,n/a",
	)
	got, err := FilterRange(tab, Param{"valueSize", "Param: valueSize"}, "<4097")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"BenchGetDirect"}
	if names := benchNames(t, got); !reflect.DeepEqual(names, want) {
		t.Errorf("got %v, want %v", names, want)
	}
}
