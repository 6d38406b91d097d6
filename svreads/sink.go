package svreads

import (
	"github.com/grailbio/hts/sam"
	"github.com/yimsea/BreaKmer/encoding/fastq"
)

// SequenceSink receives FASTA records. Implemented by *fasta.Writer.
type SequenceSink interface {
	WriteSeq(name, seq string) error
}

// ReadSink receives FASTQ records. Implemented by *fastq.Writer.
type ReadSink interface {
	Write(r *fastq.Read) error
}

// AlignmentSink receives the records of emitted reads unchanged. Implemented
// by *bam.Writer.
type AlignmentSink interface {
	Write(r *sam.Record) error
}
