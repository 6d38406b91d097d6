package bam_test

import (
	"testing"

	"github.com/grailbio/hts/sam"
	"github.com/grailbio/testutil/expect"
	"github.com/yimsea/BreaKmer/encoding/bam"
)

func TestShard(t *testing.T) {
	ref1, err := sam.NewReference("chr1", "", "", 100, nil, nil)
	expect.NoError(t, err)
	_, err = sam.NewHeader(nil, []*sam.Reference{ref1})
	expect.NoError(t, err)

	s := bam.NewShard(ref1, 20, 90)
	expect.EQ(t, s.ClampedStart(), 20)
	expect.EQ(t, s.ClampedEnd(), 90)
	expect.EQ(t, s.String(), "chr1[0]:20-90")

	s = bam.NewShard(ref1, -5, 150)
	expect.EQ(t, s.ClampedStart(), 0)
	expect.EQ(t, s.ClampedEnd(), 100)
}

func TestMateIsUnmapped(t *testing.T) {
	ref1, err := sam.NewReference("chr1", "", "", 100, nil, nil)
	expect.NoError(t, err)
	// References get an ID once added to a header.
	_, err = sam.NewHeader(nil, []*sam.Reference{ref1})
	expect.NoError(t, err)
	r := &sam.Record{Flags: sam.Paired | sam.Read1, MateRef: ref1}
	expect.False(t, bam.MateIsUnmapped(r))
	expect.True(t, bam.IsRead1(r))

	r.Flags |= sam.MateUnmapped
	expect.True(t, bam.MateIsUnmapped(r))

	r = &sam.Record{Flags: sam.Paired | sam.Read2}
	expect.True(t, bam.MateIsUnmapped(r))
	expect.False(t, bam.IsRead1(r))
}
