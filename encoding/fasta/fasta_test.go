package fasta_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
	"github.com/yimsea/BreaKmer/encoding/fasta"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := fasta.NewWriter(&buf)
	assert.NoError(t, w.WriteSeq("r1/1", "ACGT"))
	assert.NoError(t, w.WriteSeq("r2", ""))
	assert.NoError(t, w.Flush())
	expect.EQ(t, buf.String(), ">r1/1\nACGT\n>r2\n\n")
	expect.EQ(t, w.NumRecords(), 2)
}

func TestReadAll(t *testing.T) {
	recs, err := fasta.ReadAll(strings.NewReader(">a\nAC\nGT\n\n>b extra\nTT\n>a\nG\n"))
	assert.NoError(t, err)
	expect.EQ(t, recs, []fasta.Record{
		{Name: "a", Seq: "ACGT"},
		{Name: "b extra", Seq: "TT"},
		{Name: "a", Seq: "G"},
	})

	_, err = fasta.ReadAll(strings.NewReader("ACGT\n>a\nA\n"))
	expect.NotNil(t, err)
}

func TestRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := fasta.NewWriter(&buf)
	assert.NoError(t, w.WriteSeq("x/2", "ACGTTGCA"))
	assert.NoError(t, w.Flush())
	recs, err := fasta.ReadAll(&buf)
	assert.NoError(t, err)
	expect.EQ(t, recs, []fasta.Record{{Name: "x/2", Seq: "ACGTTGCA"}})
}
