package svreads

import (
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/yimsea/BreaKmer/encoding/fastq"
)

// FastqRead quality-trims r with minQual and formats it as a FASTQ record named
// "<name>/<1|2>_<0|1>", the last digit being the indel-only flag.  It returns
// false if trimming leaves fewer than minLen bases.
func FastqRead(r Read, indelOnly bool, minQual, minLen int) (fastq.Read, bool) {
	trimmed, ok := TrimRead(r, minQual, minLen)
	if !ok {
		return fastq.Read{}, false
	}
	flag := "_0"
	if indelOnly {
		flag = "_1"
	}
	return fastq.Read{
		ID:   "@" + trimmed.PairName() + flag,
		Seq:  trimmed.Seq,
		Unk:  "+",
		Qual: trimmed.Qual,
	}, true
}

// Emit writes the candidates out and closes the alignment source.
//
// Kept unmapped reads become candidates without fragments, and their full
// sequence goes to seqs under the bare read name.  Then, for every candidate
// in selection order, the record is passed to alns (if non-nil), the
// quality-trimmed read goes to reads, and the buffered fragments go to seqs
// under the pair-qualified name.  A candidate that quality trimming rejects is
// left out of reads only.
//
// The source is closed on every return path. Emit must be called at most
// once.
func (t *Tracker) Emit(seqs SequenceSink, reads ReadSink, alns AlignmentSink, kmerSize int) (err error) {
	if t.emitted || t.closed {
		return errors.E(errors.Invalid, "svreads: Emit called twice or after Close")
	}
	t.emitted = true
	defer func() {
		if e := t.Close(); e != nil && err == nil {
			err = sourceUnavailable("close", e)
		}
	}()

	for _, name := range t.unmappedKeep {
		r, ok := t.unmapped[name]
		if !ok {
			continue
		}
		t.addCandidate(r.PairName(), &Candidate{Read: r})
		if err := seqs.WriteSeq(r.Name, r.Seq); err != nil {
			return errors.E(err, "svreads: write sequence", r.Name)
		}
	}

	for _, name := range t.svOrder {
		c := t.sv[name]
		if alns != nil && c.Read.Record() != nil {
			if err := alns.Write(c.Read.Record()); err != nil {
				return errors.E(err, "svreads: write alignment", name)
			}
		}
		if fq, ok := FastqRead(c.Read, c.IndelOnly, t.opts.EmitTrimQual, kmerSize); ok {
			if err := reads.Write(&fq); err != nil {
				return errors.E(err, "svreads: write read", name)
			}
		} else {
			t.stats.Degenerate++
			log.Debug.Printf("svreads: %s: dropped from reads by quality trimming", name)
		}
		for _, frag := range c.Buffered {
			if err := seqs.WriteSeq(name, frag); err != nil {
				return errors.E(err, "svreads: write fragment", name)
			}
		}
	}
	for i := range t.valid {
		t.valid[i].state = Emitted
	}
	return nil
}
