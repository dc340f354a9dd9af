// Copyright 2019 The Compensated Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/parser"
	"go/printer"
	"go/token"
	"os"
	"path/filepath"
	"text/template"
)

// Vector is a typed vector package template
type Vector struct {
	input   string // the file containing the template
	output  string // the output file
	Package string // the name of the package
	Type    string // the element type
}

// Execute runs the template
func (v *Vector) Execute(root string) error {
	input, err := os.ReadFile(filepath.Join(root, v.input))
	if err != nil {
		return err
	}
	tmpl, err := template.New(v.Package).Parse(string(input))
	if err != nil {
		return err
	}
	buffer := bytes.Buffer{}
	err = tmpl.Execute(&buffer, v)
	if err != nil {
		return err
	}

	name := filepath.Join(root, v.output)
	fileSet := token.NewFileSet()
	code, err := parser.ParseFile(fileSet, name, buffer.Bytes(), parser.ParseComments)
	if err != nil {
		return fmt.Errorf("%v: %v", name, err)
	}

	output, err := os.Create(name)
	if err != nil {
		return err
	}
	defer output.Close()

	formatter := printer.Config{Mode: printer.TabIndent | printer.UseSpaces, Tabwidth: 8}
	err = formatter.Fprint(output, fileSet, code)
	if err != nil {
		return fmt.Errorf("%v: %v", name, err)
	}
	return nil
}

var (
	// Root is the module root
	Root = flag.String("root", ".", "the module root")
)

func main() {
	flag.Parse()

	vectors := []Vector{
		{
			input:   "vector.t",
			output:  "f64/vector.go",
			Package: "f64",
			Type:    "float64",
		},
		{
			input:   "vector.t",
			output:  "f32/vector.go",
			Package: "f32",
			Type:    "float32",
		},
	}
	for _, vector := range vectors {
		if err := vector.Execute(*Root); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
