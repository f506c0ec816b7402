package csvwriter

import (
	"encoding/csv"
	"io"
)

// Writer emits delimited rows to an underlying writer. Fields containing the
// delimiter, a quote or a newline are quoted with double quotes per RFC 4180,
// which is what Redshift's CSV mode expects.
type Writer struct {
	writer *csv.Writer
}

func New(w io.Writer, delimiter rune) *Writer {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = delimiter
	return &Writer{writer: csvWriter}
}

func (w *Writer) Write(row []string) error {
	return w.writer.Write(row)
}

func (w *Writer) Flush() error {
	w.writer.Flush()
	return w.writer.Error()
}
