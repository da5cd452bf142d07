// Copyright 2016 Evolved Binary Ltd. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// sampleStride is the number of report lines JMH writes per sample.
// Only the first of each group is the data line.
const sampleStride = 9

// LoadPath reads the result file at path, or every *.csv file under
// it if path is a directory, and returns one merged Table.
//
// Each source file is decimated to its data lines and its benchmark
// names are normalized to their trailing dot-segment before merging.
// Multiple sources combine by inner join on their shared columns, in
// sorted path order.
//
// LoadPath fails with cause NoInputFiles if path does not exist or
// names no CSV files, and with cause EmptyResult if the merged table
// has zero rows.
func LoadPath(path string) (*Table, error) {
	files, err := findFiles(path)
	if err != nil {
		return nil, err
	}

	var merged *Table
	for _, file := range files {
		t, err := readFile(file)
		if err != nil {
			return nil, err
		}
		if merged == nil {
			merged = t
		} else {
			merged = Merge(merged, t)
		}
	}
	if merged.Len() == 0 {
		return nil, Errorf(EmptyResult, "0 results were read from the file(s) at %s", path)
	}
	return merged, nil
}

func findFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, Errorf(NoInputFiles, "the file path %s does not exist", path)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(p), ".csv") {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	if len(files) == 0 {
		return nil, Errorf(NoInputFiles, "no csv file(s) found at %s", path)
	}
	sort.Strings(files)
	return files, nil
}

// readFile reads one CSV result file, keeping only the data line of
// each sample group and normalizing benchmark names.
func readFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err == io.EOF {
		return nil, Errorf(NoInputFiles, "%s: missing header row", path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	t := NewTable(header)
	benchIdx := -1
	for i, c := range header {
		if c == BenchmarkCol {
			benchIdx = i
		}
	}
	for _, col := range []string{BenchmarkCol, ScoreCol, ScoreErrorCol} {
		if _, ok := t.ColIndex(col); !ok {
			return nil, Errorf(NoInputFiles, "%s: missing required column %q", path, col)
		}
	}

	for row := 0; ; row++ {
		cells, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		if row%sampleStride != 0 {
			continue
		}
		cells[benchIdx] = shortName(cells[benchIdx])
		t.Append(cells)
	}
	return t, nil
}

// shortName returns the trailing dot-delimited segment of a fully
// qualified benchmark name.
func shortName(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}
