// Package source reads item records from the inventory sheet export.
package source

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"tableflip.dev/ihic/pkg/item"
)

const bom = "\uFEFF"

// Reader streams records from a CSV whose first row is the header.
type Reader struct {
	csv    *csv.Reader
	header []string
}

// NewReader reads the header row from r. Empty input yields a reader with no
// header whose Next reports io.EOF.
func NewReader(r io.Reader) (*Reader, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			// An empty file, e.g. one truncated mid-save, holds no records.
			return &Reader{csv: cr}, nil
		}
		return nil, fmt.Errorf("source: read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], bom)
	}
	return &Reader{csv: cr, header: header}, nil
}

// Header returns the column names in file order.
func (r *Reader) Header() []string {
	return r.header
}

// Next returns the following record, or io.EOF once the input is exhausted.
// Short rows leave their trailing fields absent; extra cells are dropped.
func (r *Reader) Next() (item.Record, error) {
	row, err := r.csv.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("source: read record: %w", err)
	}
	rec := make(item.Record, len(r.header))
	for i, name := range r.header {
		if i >= len(row) {
			break
		}
		rec[name] = row[i]
	}
	return rec, nil
}

// ReadAll collects every record of r in order. It stops early when ctx is
// cancelled.
func ReadAll(ctx context.Context, r io.Reader) ([]item.Record, error) {
	rd, err := NewReader(r)
	if err != nil {
		return nil, err
	}
	var out []item.Record
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := rd.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
}

// ReadFile opens path and collects its records.
func ReadFile(ctx context.Context, path string) ([]item.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("source: open %s: %w", path, err)
	}
	defer f.Close()
	return ReadAll(ctx, f)
}
