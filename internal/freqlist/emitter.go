package freqlist

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/heartmarshall/ruscorpora-csv/internal/domain"
)

// Emitter writes NgramRecords as CSV rows: no header, only the non-empty
// fields, quoting only where RFC 4180 requires it.
type Emitter struct {
	w *csv.Writer
}

// NewEmitter creates an Emitter writing to w. Records end with "\n", or
// "\r\n" when crlf is set.
func NewEmitter(w io.Writer, crlf bool) *Emitter {
	cw := csv.NewWriter(w)
	cw.UseCRLF = crlf
	return &Emitter{w: cw}
}

// Emit writes one record. Output is buffered; call Flush when done.
func (e *Emitter) Emit(rec domain.NgramRecord) error {
	if err := e.w.Write(rec.Fields()); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}

// Flush writes any buffered records to the underlying writer.
func (e *Emitter) Flush() error {
	e.w.Flush()
	if err := e.w.Error(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}
