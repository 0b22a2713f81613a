package customcsv

import (
	"bufio"
	"errors"
	"io"
)

var (
	errNilWriter      = errors.New("customcsv: writer is nil")
	errWriterNoTarget = errors.New("customcsv: writer destination cannot be nil")
)

// Writer emits CSV rows with configurable delimiter, quote character, and
// line terminator. A field is quoted only when it contains the delimiter,
// the quote character, a line feed, or a carriage return; embedded quote
// characters are doubled. Configuration is fixed for the writer's lifetime;
// no other state is kept across Write calls beyond the sticky first error.
type Writer struct {
	dst *bufio.Writer

	// Comma is the field delimiter. Default is ','.
	Comma byte
	// Quote is the quote character. Default is '"'.
	Quote byte
	// Terminator ends each row. Default is "\n"; use "\r\n" for CRLF output.
	Terminator string

	err error
}

// NewWriter creates a new Writer with internal buffering tuned for bulk writes.
func NewWriter(w io.Writer) *Writer {
	if w == nil {
		panic(errWriterNoTarget.Error())
	}
	return &Writer{
		dst:        bufio.NewWriterSize(w, defaultBufferSize),
		Comma:      ',',
		Quote:      '"',
		Terminator: "\n",
	}
}

// Reset updates the underlying writer while preserving the configuration.
func (w *Writer) Reset(dst io.Writer) {
	if w == nil {
		panic(errNilWriter.Error())
	}
	if dst == nil {
		panic(errWriterNoTarget.Error())
	}
	if w.dst == nil {
		w.dst = bufio.NewWriterSize(dst, defaultBufferSize)
	} else {
		w.dst.Reset(dst)
	}
	w.err = nil
}

// Write emits a single CSV row: each field escaped independently, fields
// joined with the delimiter, the terminator appended.
func (w *Writer) Write(record []string) error {
	if w == nil {
		return errNilWriter
	}
	if w.dst == nil {
		return errWriterNoTarget
	}
	if w.err != nil {
		return w.err
	}

	comma := w.Comma
	if comma == 0 {
		comma = ','
	}
	quote := w.Quote
	if quote == 0 {
		quote = '"'
	}
	terminator := w.Terminator
	if terminator == "" {
		terminator = "\n"
	}

	for i := range record {
		if i > 0 {
			if err := w.dst.WriteByte(comma); err != nil {
				w.err = err
				return err
			}
		}
		if err := w.writeField(record[i], comma, quote); err != nil {
			w.err = err
			return err
		}
	}

	if _, err := w.dst.WriteString(terminator); err != nil {
		w.err = err
		return err
	}
	return nil
}

// WriteAll writes multiple rows in order, stopping at the first error. It is
// equivalent to repeated Write calls.
func (w *Writer) WriteAll(records [][]string) error {
	if w == nil {
		return errNilWriter
	}
	for _, record := range records {
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes pending buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if w == nil {
		return errNilWriter
	}
	if w.dst == nil {
		return errWriterNoTarget
	}
	if w.err != nil {
		return w.err
	}
	if err := w.dst.Flush(); err != nil {
		w.err = err
		return err
	}
	return nil
}

// Error reports the first error encountered by the writer.
func (w *Writer) Error() error {
	if w == nil {
		return errNilWriter
	}
	return w.err
}

func (w *Writer) writeField(field string, comma, quote byte) error {
	if !fieldNeedsQuote(field, comma, quote) {
		_, err := w.dst.WriteString(field)
		return err
	}
	if err := w.dst.WriteByte(quote); err != nil {
		return err
	}

	start := 0
	for i := 0; i < len(field); i++ {
		if field[i] == quote {
			if start < i {
				if _, err := w.dst.WriteString(field[start:i]); err != nil {
					return err
				}
			}
			if _, err := w.dst.Write([]byte{quote, quote}); err != nil {
				return err
			}
			start = i + 1
		}
	}
	if start < len(field) {
		if _, err := w.dst.WriteString(field[start:]); err != nil {
			return err
		}
	}
	if err := w.dst.WriteByte(quote); err != nil {
		return err
	}
	return nil
}

func fieldNeedsQuote(field string, comma, quote byte) bool {
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case quote, comma, '\n', '\r':
			return true
		}
	}
	return false
}
