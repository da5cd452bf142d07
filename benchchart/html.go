// Copyright 2016 Evolved Binary Ltd. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/safehtml/template"
)

// An IndexEntry names one rendered chart for the HTML index.
type IndexEntry struct {
	// Key is the secondary-value combination the chart was
	// rendered for, already joined for display.
	Key string

	// File is the chart file name, relative to the index.
	File string
}

var indexTmpl = template.Must(template.New("index").ParseFromTrustedTemplate(template.MakeTrustedTemplate(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
figure { margin: 2em 0; }
img { max-width: 100%; border: 1px solid #ccc; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{range .Charts}}<figure>
<figcaption>{{.Key}}</figcaption>
<img src="{{.File}}" alt="{{.Key}}">
</figure>
{{end}}</body>
</html>
`)))

// WriteIndex writes an HTML page into dir listing every chart of one
// run, named index_<stamp>.html, and returns its path.
func WriteIndex(dir, stamp, title string, entries []IndexEntry) (string, error) {
	if strings.TrimSpace(title) == "" {
		title = "Benchmark results " + stamp
	}
	path := filepath.Join(dir, "index_"+stamp+".html")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	data := struct {
		Title  string
		Charts []IndexEntry
	}{title, entries}
	if err := indexTmpl.Execute(f, data); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}
