// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset reads the observations of one experiment arm from a
// tabular file.
//
// A file holds a header row naming each attribute followed by one row
// per observation. CSV files and XLSX workbooks are supported. Values
// are taken as they are: an empty or malformed cell in a numerical
// column is an error, not a missing value.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrNoColumn is returned when a table has no column with the
// requested name.
var ErrNoColumn = errors.New("no such column")

// A Table is the parsed contents of an arm file.
type Table struct {
	// Name identifies the source of the table in errors, usually
	// its file name and, for workbooks, its sheet.
	Name string

	Header []string
	Rows   [][]string
}

// Open reads the table in the named file. The format is chosen by the
// file's extension. sheet selects a worksheet of an XLSX workbook; if
// it is empty, the first sheet is read. sheet must be empty for CSV
// files.
func Open(path, sheet string) (*Table, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".xlsx" && sheet != "" {
		return nil, fmt.Errorf("%s: sheet %q requested from a %s file", path, sheet, ext)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch ext {
	case ".csv":
		return ReadCSV(f, path)
	case ".xlsx":
		return ReadXLSX(f, path, sheet)
	}
	return nil, fmt.Errorf("%s: unsupported file type %q", path, ext)
}

// ReadCSV parses a CSV table from r. Every record must have as many
// fields as the header.
func ReadCSV(r io.Reader, name string) (*Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return newTable(name, records)
}

// ReadXLSX parses a worksheet of an XLSX workbook from r. If sheet is
// empty, the first sheet is read.
func ReadXLSX(r io.Reader, name, sheet string) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%s: workbook has no sheets", name)
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return newTable(name+"["+sheet+"]", rows)
}

func newTable(name string, rows [][]string) (*Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: missing header row", name)
	}
	t := &Table{Name: name, Rows: rows[1:]}
	for _, h := range rows[0] {
		t.Header = append(t.Header, strings.TrimSpace(h))
	}
	return t, nil
}

// index returns the position of the named column.
func (t *Table) index(column string) (int, error) {
	for i, h := range t.Header {
		if h == column {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%s: column %q: %w", t.Name, column, ErrNoColumn)
}

// Strings returns the cells of the named column. Spreadsheet rows
// may omit trailing empty cells; those read as "".
func (t *Table) Strings(column string) ([]string, error) {
	i, err := t.index(column)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(t.Rows))
	for r, row := range t.Rows {
		if i < len(row) {
			out[r] = row[i]
		}
	}
	return out, nil
}

// Float64s returns the cells of the named column parsed as numbers.
func (t *Table) Float64s(column string) ([]float64, error) {
	cells, err := t.Strings(column)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(cells))
	for r, c := range cells {
		x, err := strconv.ParseFloat(strings.TrimSpace(c), 64)
		if err != nil {
			// Row numbers count the header as row 1.
			return nil, fmt.Errorf("%s: column %q row %d: %w", t.Name, column, r+2, err)
		}
		out[r] = x
	}
	return out, nil
}
