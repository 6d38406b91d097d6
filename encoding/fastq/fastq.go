// Package fastq reads and writes four-line FASTQ records.
package fastq

import (
	"bufio"
	"errors"
	"io"
)

var (
	// ErrShort is returned when a truncated FASTQ file is encountered.
	ErrShort = errors.New("short FASTQ file")
	// ErrInvalid is returned when an invalid FASTQ file is encountered.
	ErrInvalid = errors.New("invalid FASTQ file")
)

// A Read is a FASTQ read, comprising an ID, sequence, line 3
// ("unknown"), and a quality string. ID includes the leading '@' and Unk the
// leading '+'.
type Read struct {
	ID, Seq, Unk, Qual string
}

// Writer is a FASTQ file writer.
type Writer struct {
	w   *bufio.Writer
	n   int
	err error
}

// NewWriter constructs a new FASTQ writer that writes reads to the
// underlying writer w.  Flush must be called after the last read.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write writes the read r in FASTQ format.
// An error is returned if the write failed.
func (w *Writer) Write(r *Read) error {
	w.writeln(r.ID)
	w.writeln(r.Seq)
	w.writeln(r.Unk)
	w.writeln(r.Qual)
	if w.err == nil {
		w.n++
	}
	return w.err
}

func (w *Writer) writeln(line string) {
	if w.err != nil {
		return
	}
	if _, w.err = w.w.WriteString(line); w.err == nil {
		w.err = w.w.WriteByte('\n')
	}
}

// NumReads returns the number of reads written so far.
func (w *Writer) NumReads() int { return w.n }

// Flush writes buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.w.Flush()
	return w.err
}

var errEOF = errors.New("eof")

// Scanner provides a convenient interface for reading FASTQ read
// data. Scanners are not threadsafe.
//
// Scanner requires ID lines to begin with "@" and line 3 to begin with "+",
// but does not perform further validation.
type Scanner struct {
	b   *bufio.Scanner
	err error
}

// NewScanner constructs a new Scanner that reads raw FASTQ data from the
// provided reader.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{b: bufio.NewScanner(r)}
}

// Scan the next read into the provided read. Scan returns a boolean
// indicating whether the scan succeeded. Once Scan returns false, it
// never returns true again. Upon completion, the user should check
// the Err method to determine whether scanning stopped because of an
// error or because the end of the stream was reached.
func (f *Scanner) Scan(read *Read) bool {
	if f.err != nil {
		return false
	}
	if !f.b.Scan() {
		if f.err = f.b.Err(); f.err == nil {
			f.err = errEOF
		}
		return false
	}
	id := f.b.Text()
	if len(id) == 0 || id[0] != '@' {
		f.err = ErrInvalid
		return false
	}
	read.ID = id
	if !f.scan() {
		return false
	}
	read.Seq = f.b.Text()
	if !f.scan() {
		return false
	}
	unk := f.b.Text()
	if len(unk) == 0 || unk[0] != '+' {
		f.err = ErrInvalid
		return false
	}
	read.Unk = unk
	if !f.scan() {
		return false
	}
	read.Qual = f.b.Text()
	return true
}

func (f *Scanner) scan() bool {
	ok := f.b.Scan()
	if !ok {
		if f.err = f.b.Err(); f.err == nil {
			f.err = ErrShort
		}
	}
	return ok
}

// Err returns the scanning error, if any.
func (f *Scanner) Err() error {
	if f.err == errEOF {
		return nil
	}
	return f.err
}
