// Copyright 2016 Evolved Binary Ltd. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Jmhplot charts JMH benchmark results from CSV result files
// (SampleTime mode only).
//
// Usage:
//
//	jmhplot [-param name] [-benchmarks list] [-range low<high] [-o dir] [-title text] [-summary] [-html] path
//
// Path names a CSV result file, or a directory that is searched
// recursively for *.csv result files. One chart is written per
// combination of the parameter values not on the X axis.
//
// For example, to chart the getBytes benchmarks of a run against the
// valueSize parameter, restricted to sizes up to 4096:
//
//	jmhplot -param valueSize -benchmarks Direct,Byte -range "<4097" results/
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/evolvedbinary/jmhplot"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: jmhplot [options] path\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	os.Exit(2)
}

var (
	flagParam      = flag.String("param", "valueSize", "benchmark `parameter` for the X axis of the charts")
	flagBenchmarks = flag.String("benchmarks", "", "comma-separated `substrings` selecting the benchmarks to chart")
	flagRange      = flag.String("range", "", "`range` of primary parameter values to chart, as low<high with either side optional")
	flagOut        = flag.String("o", "", "write charts to `dir` (default: alongside the input)")
	flagTitle      = flag.String("title", "", "`text` appended to every chart title")
	flagSummary    = flag.Bool("summary", false, "print per-chart score statistics")
	flagHTML       = flag.Bool("html", false, "also write an HTML index of the charts")
)

func main() {
	log.SetPrefix("jmhplot: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
	}

	cfg := jmhplot.Config{
		Path:         flag.Arg(0),
		PrimaryParam: *flagParam,
		Benchmarks:   *flagBenchmarks,
		Range:        *flagRange,
		OutDir:       *flagOut,
		Title:        *flagTitle,
		HTMLIndex:    *flagHTML,
	}
	if *flagSummary {
		cfg.Summary = os.Stdout
	}

	if err := jmhplot.Run(cfg); err != nil {
		log.Fatal(err)
	}
}
