// SPDX-License-Identifier: MIT
// Package: snngraph/internal/tableio
//
// tableio.go — delimited-text neighbor tables in, edge lists out.

// Package tableio reads neighbor tables from delimited text (one row per
// point, one identifier per field) and writes edge lists as
// "from<sep>to<sep>weight" records.
package tableio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/snngraph/core"
	"github.com/katalvlaran/snngraph/neighbors"
)

// ErrParse indicates a field that is not a number.
var ErrParse = errors.New("tableio: unparsable field")

// Format describes the text layout shared by input and output.
type Format struct {
	// Comma is the field separator; zero means ','.
	Comma rune

	// Header skips the first input record and writes "from,to,weight" first.
	Header bool

	// IndexBase is subtracted from input identifiers and added back on output.
	IndexBase int
}

func (f Format) comma() rune {
	if f.Comma == 0 {
		return ','
	}
	return f.Comma
}

// ReadTable parses r into a neighbor table. Identifiers may be written as
// integers or as integral floats ("3", "3.0", "3e0").
//
// Errors: ErrParse, neighbors validation errors, csv syntax errors.
func ReadTable(r io.Reader, f Format) (*neighbors.Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = f.comma()
	cr.FieldsPerRecord = -1 // ragged rows are reported by neighbors
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var rows [][]float64
	for line := 0; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("tableio: %w", err)
		}
		if line == 0 && f.Header {
			continue
		}

		row := make([]float64, len(rec))
		for c, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				ln, col := cr.FieldPos(c)
				return nil, fmt.Errorf("tableio: line %d col %d: %q: %w", ln, col, field, ErrParse)
			}
			row[c] = v
		}
		rows = append(rows, row)
	}

	return neighbors.FromFloat64(rows, neighbors.WithIndexBase(f.IndexBase))
}

// WriteEdges writes one record per edge in list order. Weights use the
// shortest representation that round-trips.
func WriteEdges(w io.Writer, l *core.EdgeList, f Format) error {
	cw := csv.NewWriter(w)
	cw.Comma = f.comma()

	if f.Header {
		if err := cw.Write([]string{"from", "to", "weight"}); err != nil {
			return fmt.Errorf("tableio: %w", err)
		}
	}
	rec := make([]string, 3)
	for p := 0; p < l.Len(); p++ {
		u, v, wt := l.Edge(p)
		rec[0] = strconv.Itoa(u + f.IndexBase)
		rec[1] = strconv.Itoa(v + f.IndexBase)
		rec[2] = strconv.FormatFloat(wt, 'g', -1, 64)
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("tableio: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("tableio: %w", err)
	}

	return nil
}
