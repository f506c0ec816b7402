package frame

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/stevedore-data/stevedore/lib/csvwriter"
	"github.com/stevedore-data/stevedore/lib/typing"
	"github.com/stevedore-data/stevedore/lib/typing/values"
)

const defaultIndexName = "index"

type Column struct {
	Name string
	Kind typing.KindDetails
}

// Frame is an in-memory table: ordered columns plus row-major values.
// Mutating operations such as column renames apply in place.
type Frame struct {
	indexName string
	columns   []Column
	rows      [][]any
}

func New(columns []Column) *Frame {
	return &Frame{columns: columns}
}

// FromRecords builds a frame out of raw delimited records, where the first record is
// the header. Values are coerced into integers, floats, booleans and timestamps where
// they parse as such, empty fields become nil, and column kinds are then inferred.
func FromRecords(records [][]string) (*Frame, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("missing header record")
	}

	columns := make([]Column, len(records[0]))
	for i, name := range records[0] {
		columns[i] = Column{Name: name, Kind: typing.Invalid}
	}

	f := New(columns)
	for _, record := range records[1:] {
		row := make([]any, len(record))
		for i, value := range record {
			row[i] = parseRecordValue(value)
		}

		if err := f.AddRow(row); err != nil {
			return nil, err
		}
	}

	f.InferKinds()
	return f, nil
}

func parseRecordValue(value string) any {
	if value == "" {
		return nil
	}

	if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
		return parsed
	}

	if parsed, err := strconv.ParseFloat(value, 64); err == nil {
		return parsed
	}

	if strings.EqualFold(value, "true") {
		return true
	}

	if strings.EqualFold(value, "false") {
		return false
	}

	if ts, err := typing.ParseDateTime(value); err == nil {
		return ts
	}

	return value
}

// IndexName returns the name the row index column takes when one is emitted.
func (f *Frame) IndexName() string {
	if f.indexName == "" {
		return defaultIndexName
	}

	return f.indexName
}

func (f *Frame) SetIndexName(name string) {
	f.indexName = name
}

func (f *Frame) Columns() []Column {
	return slices.Clone(f.columns)
}

func (f *Frame) ColumnNames() []string {
	names := make([]string, len(f.columns))
	for i, col := range f.columns {
		names[i] = col.Name
	}

	return names
}

func (f *Frame) SetColumnName(idx int, name string) {
	f.columns[idx].Name = name
}

func (f *Frame) AddRow(row []any) error {
	if len(row) != len(f.columns) {
		return fmt.Errorf("row has %d values, expected %d", len(row), len(f.columns))
	}

	f.rows = append(f.rows, row)
	return nil
}

func (f *Frame) Rows() [][]any {
	return f.rows
}

func (f *Frame) NumRows() int {
	return len(f.rows)
}

// InferKinds fills in column kinds that are still unset by inspecting the first
// non-nil value in each column. Columns holding only nils stay unset.
func (f *Frame) InferKinds() {
	for colIdx := range f.columns {
		if f.columns[colIdx].Kind.Kind != typing.Invalid.Kind {
			continue
		}

		for _, row := range f.rows {
			if row[colIdx] == nil {
				continue
			}

			f.columns[colIdx].Kind = typing.KindForValue(row[colIdx])
			break
		}
	}
}

// WriteDelimited writes the frame as delimited text with a leading header record.
// When includeIndex is set, the row ordinal is emitted first under IndexName.
// nil values become empty fields.
func (f *Frame) WriteDelimited(writer *csvwriter.Writer, includeIndex bool) error {
	header := f.ColumnNames()
	if includeIndex {
		header = append([]string{f.IndexName()}, header...)
	}

	if err := writer.Write(header); err != nil {
		return err
	}

	for rowIdx, row := range f.rows {
		record := make([]string, 0, len(row)+1)
		if includeIndex {
			record = append(record, strconv.Itoa(rowIdx))
		}

		for colIdx, value := range row {
			if value == nil {
				record = append(record, "")
				continue
			}

			castedValue, err := values.ToString(value, f.columns[colIdx].Kind)
			if err != nil {
				return fmt.Errorf("failed to cast column %q: %w", f.columns[colIdx].Name, err)
			}

			record = append(record, castedValue)
		}

		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return writer.Flush()
}
