// Package fasta reads and writes FASTA records.  A record is a '>' header line
// holding the record name, followed by the sequence:
//
// >read1/1
// ACGTACGAGGACGCG
//
// The writer emits each sequence on a single line.  The reader accepts
// sequences wrapped over several lines.  Names are kept verbatim, including
// anything after the first space, and may repeat.
package fasta

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	maxLineSize = 1024 * 1024 * 300 // 300 MB
)

// Record is a single named sequence.
type Record struct {
	Name string
	Seq  string
}

// Writer writes FASTA records.
type Writer struct {
	w   *bufio.Writer
	n   int
	err error
}

// NewWriter constructs a new FASTA writer that writes records to w.  Flush
// must be called after the last record.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteSeq writes one record as ">name\nseq\n".  Once a write fails, every
// later call returns the same error.
func (w *Writer) WriteSeq(name, seq string) error {
	if w.err != nil {
		return w.err
	}
	w.put(">")
	w.put(name)
	w.put("\n")
	w.put(seq)
	w.put("\n")
	if w.err == nil {
		w.n++
	}
	return w.err
}

func (w *Writer) put(s string) {
	if w.err == nil {
		_, w.err = w.w.WriteString(s)
	}
}

// NumRecords returns the number of records written so far.
func (w *Writer) NumRecords() int { return w.n }

// Flush writes buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.w.Flush()
	return w.err
}

// ReadAll parses every record in r, in order of appearance.
func ReadAll(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, maxLineSize)
	var (
		recs []Record
		seq  strings.Builder
		cur  *Record
	)
	flush := func() {
		if cur != nil {
			cur.Seq = seq.String()
			recs = append(recs, *cur)
			seq.Reset()
		}
	}
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' { // Start a new sequence.
			flush()
			cur = &Record{Name: line[1:]}
			continue
		}
		if cur == nil {
			return nil, errors.Errorf("malformed FASTA file: sequence before first header")
		}
		seq.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "couldn't read FASTA data")
	}
	flush()
	return recs, nil
}
