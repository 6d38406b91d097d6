// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package bam

import (
	"context"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/hts/bam"
	"github.com/grailbio/hts/sam"
)

// Writer writes records to a BAM file. It passes records through unchanged,
// so the header must contain every reference the records point to.
//
// Thread compatible.
type Writer struct {
	out file.File
	w   *bam.Writer
	n   int
}

// NewWriter creates a BAM file at path and writes the header to it.
func NewWriter(ctx context.Context, path string, header *sam.Header) (*Writer, error) {
	out, err := file.Create(ctx, path)
	if err != nil {
		return nil, errors.E(err, "create", path)
	}
	w, err := bam.NewWriter(out.Writer(ctx), header, 1)
	if err != nil {
		_ = out.Close(ctx)
		return nil, errors.E(err, "bam header", path)
	}
	return &Writer{out: out, w: w}, nil
}

// Write appends r to the file.
func (w *Writer) Write(r *sam.Record) error {
	w.n++
	return w.w.Write(r)
}

// NumRecords returns the number of records written so far.
func (w *Writer) NumRecords() int { return w.n }

// Close flushes the BAM stream and closes the underlying file. It must be
// called exactly once.
func (w *Writer) Close(ctx context.Context) error {
	err := w.w.Close()
	if e := w.out.Close(ctx); e != nil && err == nil {
		err = e
	}
	return err
}
