package bamprovider

import (
	"github.com/grailbio/hts/sam"
	gbam "github.com/yimsea/BreaKmer/encoding/bam"
)

// ProviderOpts defines options for NewProvider.
type ProviderOpts struct {
	// Index specifies the name of the BAM index file. If Index=="", it defaults
	// to path + ".bai".
	Index string
}

// Provider allows reading records of a BAM file by region. Thread compatible.
type Provider interface {
	// GetHeader returns the header for the provided BAM data.  The callee
	// must not modify the returned header object.
	//
	// REQUIRES: Close has not been called.
	GetHeader() (*sam.Header, error)

	// NewIterator returns an iterator over records that overlap the shard.
	//
	// REQUIRES: Close has not been called.
	NewIterator(shard gbam.Shard) Iterator

	// Mate fetches the mate of r, located at <r.MateRef, r.MatePos>. It returns
	// an error if the mate cannot be found.
	//
	// REQUIRES: Close has not been called.
	Mate(r *sam.Record) (*sam.Record, error)

	// Close must be called exactly once. It returns any error encountered
	// by the provider, or any iterator created by the provider.
	//
	// REQUIRES: All the iterators created by NewIterator have been closed.
	Close() error
}

// Iterator iterates over sam.Records in a particular genomic range, in
// coordinate order. Thread compatible.
type Iterator interface {
	// Scan returns where there are any records remaining in the iterator,
	// and if so, advances the iterator to the next record. If the iterator
	// reaches the end of its range, Scan() returns false.  If an error
	// occurs, Scan() returns false and the error can be retrieved by
	// calling Err().
	//
	// REQUIRES: Close has not been called.
	Scan() bool

	// Record returns the current record in the iterator. This must be
	// called only after a call to Scan() returns true.
	//
	// REQUIRES: Close has not been called.
	Record() *sam.Record

	// Err returns the error encoutered during iteration, or nil if no error
	// occurred.  An io.EOF error will be translated to nil.
	Err() error

	// Close must be called exactly once. It returns the value of Err().
	Close() error
}

// NewProvider creates a Provider for the BAM file at path. The file is opened
// lazily; errors surface from GetHeader, NewIterator and Close.
func NewProvider(path string, optList ...ProviderOpts) Provider {
	opts := ProviderOpts{}
	for _, o := range optList {
		if o.Index != "" {
			opts.Index = o.Index
		}
	}
	return &BAMProvider{Path: path, Index: opts.Index}
}

// overlapsShard checks whether r overlaps the range of the shard. An
// unmapped read placed next to its mate occupies a single base at Pos.
func overlapsShard(shard *gbam.Shard, r *sam.Record) bool {
	if r.Ref == nil || shard.Ref == nil || r.Ref.ID() != shard.Ref.ID() {
		return false
	}
	end := r.End()
	if end <= r.Pos {
		end = r.Pos + 1
	}
	return r.Pos < shard.ClampedEnd() && end > shard.ClampedStart()
}
