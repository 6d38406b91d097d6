package bamprovider

import (
	"github.com/grailbio/hts/sam"
	gbam "github.com/yimsea/BreaKmer/encoding/bam"
)

// fakeProvider serves records from memory. It is meant for unittests and for
// callers that already hold the records of a region.
type fakeProvider struct {
	header *sam.Header
	recs   []*sam.Record
	closed int
}

type fakeIterator struct {
	recs  []*sam.Record
	rec   *sam.Record
	shard gbam.Shard
}

// NewFakeProvider creates a provider that returns "header" in response to a
// GetHeader() call, and the subset of recs overlapping a shard from
// NewIterator. Recs must be sorted by coordinate.
func NewFakeProvider(header *sam.Header, recs []*sam.Record) Provider {
	return &fakeProvider{header: header, recs: recs}
}

// CloseCount returns the number of times Close was called on a provider
// created by NewFakeProvider, or -1 for any other provider.
func CloseCount(p Provider) int {
	if f, ok := p.(*fakeProvider); ok {
		return f.closed
	}
	return -1
}

// GetHeader implements the Provider interface. It returns the header passed to
// the constructor.
func (b *fakeProvider) GetHeader() (*sam.Header, error) {
	return b.header, nil
}

// Close implements the Provider interface.
func (b *fakeProvider) Close() error {
	b.closed++
	return nil
}

// Mate implements the Provider interface.
func (b *fakeProvider) Mate(r *sam.Record) (*sam.Record, error) {
	return findMate(b, r)
}

// NewIterator implements the Provider interface.
func (b *fakeProvider) NewIterator(shard gbam.Shard) Iterator {
	return &fakeIterator{recs: b.recs, shard: shard}
}

// Err implements the Iterator interface.
func (i *fakeIterator) Err() error {
	return nil
}

// Close implements the Iterator interface.
func (i *fakeIterator) Close() error {
	return nil
}

// Scan implements the Iterator interface.
func (i *fakeIterator) Scan() bool {
	for len(i.recs) > 0 {
		i.rec = i.recs[0]
		i.recs = i.recs[1:]
		if overlapsShard(&i.shard, i.rec) {
			return true
		}
	}
	return false
}

// Record implements the Iterator interface.
func (i *fakeIterator) Record() *sam.Record {
	// Return a copy so that the code under test cannot alter the
	// original test input data.
	copy := sam.GetFromFreePool()
	*copy = *i.rec
	return copy
}
