// Copyright 2016 Evolved Binary Ltd. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jmhplot turns CSV result files written by the JMH
// microbenchmark harness into charts.
//
// The pipeline is a single synchronous pass: load and merge the
// input files, filter rows by benchmark name, discover the parameter
// columns and split off the X-axis parameter, filter rows by
// parameter range, group the remaining rows by secondary-parameter
// combination, and render one chart per combination. The first stage
// to find a violated precondition aborts the run with a
// benchcsv.Error; nothing is retried and no partial artifacts are
// reported.
package jmhplot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/evolvedbinary/jmhplot/benchchart"
	"github.com/evolvedbinary/jmhplot/benchcsv"
	"github.com/evolvedbinary/jmhplot/benchgroup"
)

// stampLayout formats the run timestamp that seeds artifact names.
const stampLayout = "2006-01-02T15-04-05"

// A Config describes one processing run.
type Config struct {
	// Path is the result file, or a directory searched
	// recursively for *.csv result files.
	Path string

	// PrimaryParam is the name of the parameter varied along the
	// X axis. Every other parameter becomes a grouping parameter.
	PrimaryParam string

	// Benchmarks optionally restricts the run to benchmarks whose
	// name contains one of these comma-separated substrings.
	Benchmarks string

	// Range optionally restricts the run to rows whose primary
	// value lies in this "low<high" range.
	Range string

	// OutDir is where charts are written. Empty means next to the
	// input: Path itself if it is a directory, else its parent.
	OutDir string

	// Title is appended to every chart title.
	Title string

	// HTMLIndex writes an HTML page listing the run's charts.
	HTMLIndex bool

	// Summary, if non-nil, receives a per-group text summary of
	// the scores that went into each chart.
	Summary io.Writer
}

// Run executes one processing run. Failures of the run itself are
// reported as *benchcsv.Error; anything else is an I/O error.
func Run(cfg Config) error {
	// One timestamp per run: every artifact of the run shares it.
	stamp := time.Now().Format(stampLayout)

	grouping, split, err := aggregate(cfg)
	if err != nil {
		return err
	}

	outDir := cfg.OutDir
	if outDir == "" {
		outDir = chartDir(cfg.Path)
	}

	files, err := benchchart.RenderAll(split, grouping, outDir, cfg.Title, stamp)
	if err != nil {
		return err
	}

	if cfg.HTMLIndex {
		entries := make([]benchchart.IndexEntry, len(files))
		for i, key := range grouping.Keys() {
			entries[i] = benchchart.IndexEntry{
				Key:  keyCaption(split, key),
				File: files[i],
			}
		}
		if _, err := benchchart.WriteIndex(outDir, stamp, cfg.Title, entries); err != nil {
			return err
		}
	}

	if cfg.Summary != nil {
		writeSummary(cfg.Summary, split, grouping)
	}
	return nil
}

// aggregate runs every stage up to, and including, grouping.
//
// The benchmark filter runs before parameter extraction because it
// only needs the benchmark column; the range filter runs after the
// split because it needs the primary parameter's column label. After
// loading and after each filter the same emptiness postcondition is
// checked: a stage that leaves zero rows aborts the run.
func aggregate(cfg Config) (*benchgroup.Grouping, benchgroup.ParamSplit, error) {
	var none benchgroup.ParamSplit

	t, err := benchcsv.LoadPath(cfg.Path)
	if err != nil {
		return nil, none, err
	}

	t, err = benchgroup.FilterBenchmarks(t, cfg.Benchmarks)
	if err != nil {
		return nil, none, err
	}
	if t.Len() == 0 {
		return nil, none, benchcsv.Errorf(benchcsv.EmptyResult,
			"0 results after filtering benchmarks %s", cfg.Benchmarks)
	}

	split, err := benchgroup.Split(benchgroup.ExtractParams(t), cfg.PrimaryParam)
	if err != nil {
		return nil, none, err
	}

	t, err = benchgroup.FilterRange(t, split.Primary, cfg.Range)
	if err != nil {
		return nil, none, err
	}
	if t.Len() == 0 {
		return nil, none, benchcsv.Errorf(benchcsv.EmptyResult,
			"0 results after filtering range %s", cfg.Range)
	}

	return benchgroup.Group(t, split), split, nil
}

// chartDir derives the default output directory from the input path.
func chartDir(path string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return path
	}
	return filepath.Dir(path)
}

func keyCaption(split benchgroup.ParamSplit, key []string) string {
	return fmt.Sprintf("(%s)=(%s)",
		strings.Join(split.SecondaryNames(), ", "), strings.Join(key, ", "))
}

// writeSummary prints per-benchmark score statistics for every group.
func writeSummary(w io.Writer, split benchgroup.ParamSplit, g *benchgroup.Grouping) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, key := range g.Keys() {
		fmt.Fprintf(tw, "%s\n", keyCaption(split, key))
		fmt.Fprintf(tw, "benchmark\tn\tmean\tmin\tmax\n")
		for _, s := range benchgroup.Summarize(g.Get(key)) {
			fmt.Fprintf(tw, "%s\t%d\t%.6g\t%.6g\t%.6g\n",
				s.Benchmark, s.N, s.Mean, s.Min, s.Max)
		}
		fmt.Fprintf(tw, "\n")
	}
	tw.Flush()
}
