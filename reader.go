package customcsv

import (
	"io"
	"iter"
)

const defaultBufferSize = 1 << 10 // 1024 bytes

// Reader parses CSV rows from a character stream, one row per Read call.
//
// Parsing is lenient: malformed quoting is never an error. A quote character
// appearing after field text has accumulated is treated as an ordinary
// character, a stream ending inside a quoted field implicitly closes it, and
// a closed quoted region may be followed by further unquoted characters that
// accumulate into the same field.
type Reader struct {
	src io.Reader

	// Comma is the field delimiter. Default is ','.
	Comma byte
	// Quote is the quote character. Default is '"'.
	Quote byte

	buf    []byte
	bufPos int
	bufLen int
	bufErr error

	pushback    byte
	hasPushback bool
	finished    bool
}

// NewReader creates a Reader that consumes CSV data from r, panicking if r is
// nil. The returned Reader owns a one-character pushback buffer and is not
// restartable: each row permanently consumes input.
func NewReader(r io.Reader) *Reader {
	if r == nil {
		panic("customcsv: reader source cannot be nil")
	}

	return &Reader{
		src:   r,
		Comma: ',',
		Quote: '"',
		buf:   make([]byte, defaultBufferSize),
	}
}

// Read parses the next CSV row from the underlying stream. It returns the
// field values, or io.EOF once no more rows remain. End of input is never a
// failure: a stream ending mid-field still yields that final row, while a
// stream ending exactly at a row boundary yields no trailing empty row.
// I/O errors from the source propagate unchanged.
func (r *Reader) Read() ([]string, error) {
	if r == nil || r.src == nil {
		return nil, io.EOF
	}
	if r.finished {
		return nil, io.EOF
	}

	comma := r.Comma
	if comma == 0 {
		comma = ','
	}
	quote := r.Quote
	if quote == 0 {
		quote = '"'
	}

	var (
		row      []string
		field    []byte
		inQuotes bool
	)

	for {
		c, err := r.readByte()
		if err != nil {
			if err != io.EOF {
				return nil, err
			}
			// End of stream. An open quoted field is implicitly closed.
			if len(field) > 0 || len(row) > 0 {
				return append(row, string(field)), nil
			}
			r.finished = true
			return nil, io.EOF
		}

		if inQuotes {
			if c != quote {
				// Any character inside quotes, line breaks included, is field text.
				field = append(field, c)
				continue
			}
			next, err := r.readByte()
			if err != nil {
				if err != io.EOF {
					return nil, err
				}
				// Closing quote at end of stream.
				inQuotes = false
				continue
			}
			if next == quote {
				// Doubled quote is one literal quote character.
				field = append(field, quote)
				continue
			}
			// Closing quote; the following character is reprocessed normally.
			inQuotes = false
			r.unreadByte(next)
			continue
		}

		switch c {
		case comma:
			row = append(row, string(field))
			field = field[:0]
		case '\n':
			return append(row, string(field)), nil
		case '\r':
			// Consume the '\n' of a CRLF pair; a lone CR ends the row too.
			next, err := r.readByte()
			if err != nil && err != io.EOF {
				return nil, err
			}
			if err == nil && next != '\n' {
				r.unreadByte(next)
			}
			return append(row, string(field)), nil
		case quote:
			if len(field) == 0 {
				// A quote opens a quoted region only at the start of a field.
				inQuotes = true
			} else {
				field = append(field, c)
			}
		default:
			field = append(field, c)
		}
	}
}

// ReadAll exhausts the reader, repeatedly calling Read to collect rows until
// io.EOF and returning the accumulated rows plus the first non-EOF error
// encountered.
func (r *Reader) ReadAll() (rows [][]string, err error) {
	for {
		row, err := r.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}

// All returns an iterator over the remaining rows. The sequence is lazy and
// single-pass: ranging over it consumes the reader. An I/O error is yielded
// as (nil, err) and ends the sequence; io.EOF simply ends it.
func (r *Reader) All() iter.Seq2[[]string, error] {
	return func(yield func([]string, error) bool) {
		for {
			row, err := r.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(row, nil) {
				return
			}
		}
	}
}

// readByte returns the next character, draining the pushback slot first and
// refilling the working buffer from the source as needed. Once the source is
// exhausted the error is sticky, so io.EOF repeats on every later call.
func (r *Reader) readByte() (byte, error) {
	if r.hasPushback {
		r.hasPushback = false
		return r.pushback, nil
	}

	for {
		if r.bufPos < r.bufLen {
			b := r.buf[r.bufPos]
			r.bufPos++
			return b, nil
		}
		if r.bufErr != nil {
			return 0, r.bufErr
		}

		n, err := r.src.Read(r.buf)
		r.bufPos = 0
		r.bufLen = n
		r.bufErr = err
	}
}

// unreadByte pushes b back so the next readByte returns it again. The slot
// holds at most one character; the parser never needs more lookahead.
func (r *Reader) unreadByte(b byte) {
	r.pushback = b
	r.hasPushback = true
}
