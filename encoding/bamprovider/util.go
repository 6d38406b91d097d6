package bamprovider

import (
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/hts/sam"
	gbam "github.com/yimsea/BreaKmer/encoding/bam"
)

// RefByName finds a sam.Reference with the given name. It returns nil if a
// reference is not found.
func RefByName(h *sam.Header, refName string) *sam.Reference {
	for _, ref := range h.Refs() {
		if ref.Name() == refName {
			return ref
		}
	}
	return nil
}

// RefName returns the name of the reference with the given ID, or "*" if the
// ID is out of range.
func RefName(h *sam.Header, refID int) string {
	refs := h.Refs()
	if refID < 0 || refID >= len(refs) {
		return "*"
	}
	return refs[refID].Name()
}

// NewRefIterator creates an iterator for half-open range [refName:start,
// limit). Start and limit are both base zero.  The iterator will yield
// reads that overlap the given range.
func NewRefIterator(p Provider, refName string, start, limit int) Iterator {
	h, err := p.GetHeader()
	if err != nil {
		return NewErrorIterator(err)
	}
	ref := RefByName(h, refName)
	if ref == nil {
		return NewErrorIterator(fmt.Errorf("bamprovider.NewRefIterator: reference '%s' not found", refName))
	}
	return p.NewIterator(gbam.NewShard(ref, start, limit))
}

// findMate scans the base at <r.MateRef, r.MatePos> for the primary alignment
// that shares r's name and sits in the other read-in-pair slot.
func findMate(p Provider, r *sam.Record) (*sam.Record, error) {
	if r.MateRef == nil {
		return nil, errors.E(errors.NotExist, "bamprovider: mate of", r.Name, "is unmapped")
	}
	iter := p.NewIterator(gbam.NewShard(r.MateRef, r.MatePos, r.MatePos+1))
	var mate *sam.Record
	for iter.Scan() {
		c := iter.Record()
		if c.Name != r.Name || c.Pos != r.MatePos {
			continue
		}
		if c.Flags&(sam.Secondary|sam.Supplementary) != 0 {
			continue
		}
		if gbam.IsRead1(c) == gbam.IsRead1(r) {
			continue
		}
		mate = c
		break
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	if mate == nil {
		return nil, errors.E(errors.NotExist, fmt.Sprintf("bamprovider: mate of %s not found at %s:%d", r.Name, r.MateRef.Name(), r.MatePos))
	}
	return mate, nil
}

// errorIterator yields no records. Err and Close report the error that
// prevented iteration from starting.
type errorIterator struct{ err error }

// NewErrorIterator creates an Iterator that yields no record and returns "err"
// in Err and Close.
func NewErrorIterator(err error) Iterator { return &errorIterator{err: err} }

func (i *errorIterator) Scan() bool          { return false }
func (i *errorIterator) Record() *sam.Record { panic("errorIterator.Record: no record") }
func (i *errorIterator) Err() error          { return i.err }
func (i *errorIterator) Close() error        { return i.err }
