package main

import (
	"context"
	"io"
	"path/filepath"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/hts/sam"
	"github.com/klauspost/compress/gzip"
	gbam "github.com/yimsea/BreaKmer/encoding/bam"
	"github.com/yimsea/BreaKmer/encoding/fasta"
	"github.com/yimsea/BreaKmer/encoding/fastq"
	"github.com/yimsea/BreaKmer/svreads"
)

// outFile is a created file, optionally gzip-compressed.
type outFile struct {
	f  file.File
	gz *gzip.Writer
	w  io.Writer
}

func createOutput(ctx context.Context, path string, compress bool) (*outFile, error) {
	if compress {
		path += ".gz"
	}
	f, err := file.Create(ctx, path)
	if err != nil {
		return nil, errors.E(err, "create", path)
	}
	o := &outFile{f: f, w: f.Writer(ctx)}
	if compress {
		o.gz = gzip.NewWriter(o.w)
		o.w = o.gz
	}
	return o, nil
}

func (o *outFile) Close(ctx context.Context) error {
	var err errors.Once
	if o.gz != nil {
		err.Set(o.gz.Close())
	}
	err.Set(o.f.Close(ctx))
	return err.Err()
}

// regionOutputs holds the output files of one region.
type regionOutputs struct {
	dir, label string
	compress   bool

	seqFile, readFile *outFile
	seqs              *fasta.Writer
	reads             *fastq.Writer
	alns              *gbam.Writer
}

func (r *regionOutputs) path(suffix string) string {
	return filepath.Join(r.dir, r.label+suffix)
}

// newRegionOutputs creates the FASTA and FASTQ files of a region, and its
// BAM file if header is non-nil.
func newRegionOutputs(ctx context.Context, dir, label string, compress bool, header *sam.Header) (*regionOutputs, error) {
	r := &regionOutputs{dir: dir, label: label, compress: compress}
	var err error
	if r.seqFile, err = createOutput(ctx, r.path(".sv_clipped.fa"), compress); err != nil {
		return nil, err
	}
	r.seqs = fasta.NewWriter(r.seqFile.w)
	if r.readFile, err = createOutput(ctx, r.path(".sv_reads.fastq"), compress); err != nil {
		r.seqFile.Close(ctx) // nolint: errcheck
		return nil, err
	}
	r.reads = fastq.NewWriter(r.readFile.w)
	if header != nil {
		if r.alns, err = gbam.NewWriter(ctx, r.path(".sv_reads.bam"), header); err != nil {
			r.seqFile.Close(ctx)  // nolint: errcheck
			r.readFile.Close(ctx) // nolint: errcheck
			return nil, err
		}
	}
	return r, nil
}

func (r *regionOutputs) outputs() svreads.Outputs {
	out := svreads.Outputs{Seqs: r.seqs, Reads: r.reads}
	if r.alns != nil {
		out.Alignments = r.alns
	}
	return out
}

// writeSignals writes the signal summary of res next to the other outputs.
func (r *regionOutputs) writeSignals(ctx context.Context, res *svreads.Result) error {
	out, err := createOutput(ctx, r.path(".signals.tsv"), false)
	if err != nil {
		return err
	}
	if err := svreads.WriteSignals(out.w, res); err != nil {
		out.Close(ctx) // nolint: errcheck
		return errors.E(err, "write signals", r.label)
	}
	return out.Close(ctx)
}

// Close flushes and closes every file.
func (r *regionOutputs) Close(ctx context.Context) error {
	var err errors.Once
	err.Set(r.seqs.Flush())
	err.Set(r.seqFile.Close(ctx))
	err.Set(r.reads.Flush())
	err.Set(r.readFile.Close(ctx))
	if r.alns != nil {
		err.Set(r.alns.Close(ctx))
	}
	return err.Err()
}
