package svreads

import (
	"bytes"
	"strings"
	"testing"

	"github.com/grailbio/hts/sam"
	"github.com/grailbio/testutil/assert"
	"github.com/yimsea/BreaKmer/encoding/fasta"
	"github.com/yimsea/BreaKmer/encoding/fastq"
)

var (
	chr1, _   = sam.NewReference("chr1", "", "", 10000, nil, nil)
	chr2, _   = sam.NewReference("chr2", "", "", 10000, nil, nil)
	header, _ = sam.NewHeader(nil, []*sam.Reference{chr1, chr2})
)

const (
	// Flag combinations used in the tests below.
	r1F = sam.Paired | sam.ProperPair | sam.MateReverse | sam.Read1 // 99
	r2R = sam.Paired | sam.ProperPair | sam.Reverse | sam.Read2     // 147
	r1R = sam.Paired | sam.ProperPair | sam.Reverse | sam.Read1     // 83
	r2F = sam.Paired | sam.ProperPair | sam.MateReverse | sam.Read2 // 163
)

func cigar(ops ...interface{}) sam.Cigar {
	var c sam.Cigar
	for i := 0; i < len(ops); i += 2 {
		c = append(c, sam.NewCigarOp(ops[i].(sam.CigarOpType), ops[i+1].(int)))
	}
	return c
}

// newRecord creates a record with mapq 60 whose bases all have quality q
// (raw Phred, not ASCII).
func newRecord(name string, ref *sam.Reference, pos int, flags sam.Flags, mateRef *sam.Reference, matePos, tlen int,
	c sam.Cigar, seq string, q byte) *sam.Record {
	r := sam.GetFromFreePool()
	r.Name = name
	r.Ref = ref
	r.Pos = pos
	r.Flags = flags
	r.MapQ = 60
	r.MateRef = mateRef
	r.MatePos = matePos
	r.TempLen = tlen
	r.Cigar = c
	r.Seq = sam.NewSeq([]byte(seq))
	r.Qual = bytes.Repeat([]byte{q}, len(seq))
	return r
}

// newTestRead converts rec to a Read, failing the test if rec is malformed.
func newTestRead(t *testing.T, rec *sam.Record) Read {
	r, err := NewRead(rec)
	assert.NoError(t, err)
	return r
}

// recordingSinks captures everything Emit writes.
type recordingSinks struct {
	seqBuf, readBuf bytes.Buffer
	seqs            *fasta.Writer
	reads           *fastq.Writer
	alns            []*sam.Record
}

func newRecordingSinks() *recordingSinks {
	s := &recordingSinks{}
	s.seqs = fasta.NewWriter(&s.seqBuf)
	s.reads = fastq.NewWriter(&s.readBuf)
	return s
}

func (s *recordingSinks) Write(r *sam.Record) error {
	s.alns = append(s.alns, r)
	return nil
}

func (s *recordingSinks) outputs() Outputs {
	return Outputs{Seqs: s.seqs, Reads: s.reads, Alignments: s}
}

// parsedSeqs flushes the sequence sink and parses its contents.
func (s *recordingSinks) parsedSeqs(t *testing.T) []fasta.Record {
	assert.NoError(t, s.seqs.Flush())
	recs, err := fasta.ReadAll(strings.NewReader(s.seqBuf.String()))
	assert.NoError(t, err)
	return recs
}

// parsedReads flushes the read sink and parses its contents.
func (s *recordingSinks) parsedReads(t *testing.T) []fastq.Read {
	assert.NoError(t, s.reads.Flush())
	var (
		reads []fastq.Read
		r     fastq.Read
	)
	sc := fastq.NewScanner(strings.NewReader(s.readBuf.String()))
	for sc.Scan(&r) {
		reads = append(reads, r)
	}
	assert.NoError(t, sc.Err())
	return reads
}
