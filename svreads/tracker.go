// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package svreads

import (
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/hts/sam"
	"github.com/yimsea/BreaKmer/encoding/bamprovider"
)

// AlignmentSource is the part of bamprovider.Provider a Tracker needs once the
// region's records are being ingested.
type AlignmentSource interface {
	// GetHeader returns the header of the source, which names its
	// references.
	GetHeader() (*sam.Header, error)
	// Mate fetches the mate of r. It returns an errors.NotExist error if the
	// mate is absent from the file.
	Mate(r *sam.Record) (*sam.Record, error)
	// Close releases the source.
	Close() error
}

// ReadState is the processing state of a read stored in a Tracker.
type ReadState int

const (
	// Unseen is the state of a read not yet ingested.
	Unseen ReadState = iota
	// Valid reads have been stored.
	Valid
	// Classified reads have had their pair index and discordant-pair
	// bookkeeping updated.
	Classified
	// ClipEvaluated reads have been through clip extraction.
	ClipEvaluated
	// Emitted reads have been written out or dropped.
	Emitted
)

var readStateNames = [...]string{"unseen", "valid", "classified", "clip-evaluated", "emitted"}

// String implements fmt.Stringer.
func (s ReadState) String() string {
	if s < 0 || int(s) >= len(readStateNames) {
		return fmt.Sprintf("ReadState(%d)", int(s))
	}
	return readStateNames[s]
}

// validRead is an entry of the tracker's read arena.
type validRead struct {
	read         Read
	properMap    bool
	overlapReads bool
	state        ReadState
}

// DiscordantPair is the position of a discordant read and of its mate.
type DiscordantPair struct {
	Pos, MatePos int
}

// Signal records a same-reference pair whose orientation suggests an
// inversion or a tandem duplication.
type Signal struct {
	LowPos, HighPos int
	// LowForward and HighForward report the strand of the read at LowPos and
	// HighPos.
	LowForward, HighForward bool
	Name                    string
}

// Candidate is a read selected for emission.
type Candidate struct {
	Read Read
	// Clipped holds the clipped fragments, Buffered the same fragments
	// extended inward by KmerSize bases. Both are nil for unmapped reads.
	Clipped, Buffered []string
	// ClipCoords is the refined clip interval, or nil for unmapped reads.
	ClipCoords *[2]int
	IndelOnly  bool
}

// Stats counts the records a Tracker has seen.
type Stats struct {
	// Records is the number of records passed to Ingest.
	Records int
	// Duplicates counts duplicate and QC-failed records.
	Duplicates int
	// Unmapped counts records that are themselves unmapped.
	Unmapped int
	// Malformed counts records skipped because of missing or inconsistent
	// fields.
	Malformed int
	// MissingMates counts discordant reads whose mate record was not found.
	MissingMates int
	// NoCigar counts stored reads that were skipped by clip extraction.
	NoCigar int
	// Degenerate counts candidates dropped from the reads sink by quality
	// trimming.
	Degenerate int
}

// Tracker collects the structural-variant evidence of one region.
//
// Reads are stored once, in an append-only arena; the pair index refers to
// them by position.  Thread compatible.
type Tracker struct {
	src    AlignmentSource
	header *sam.Header
	opts   Opts

	pairIndex map[string]*[2]int
	valid     []validRead

	disc         map[string][]DiscordantPair
	inv, td      []Signal
	other        []Signal
	unmapped     map[string]Read
	unmappedKeep []string
	keepSet      map[string]bool

	sv      map[string]*Candidate
	svOrder []string

	stats    Stats
	emitted  bool
	closed   bool
	closeErr error
}

// NewTracker creates a tracker that owns src.
func NewTracker(src AlignmentSource, opts Opts) *Tracker {
	return &Tracker{
		src:       src,
		opts:      opts,
		pairIndex: map[string]*[2]int{},
		disc:      map[string][]DiscordantPair{},
		unmapped:  map[string]Read{},
		keepSet:   map[string]bool{},
		sv:        map[string]*Candidate{},
	}
}

// Ingest adds one record of the region.
//
// Duplicate and QC-failed records are counted and skipped.  Unmapped records
// are kept aside by name, for emission if their mate turns out to be
// uniquely mapped in the region.  Every other record is stored and its pair
// is classified.  A malformed record is counted and skipped; Ingest returns
// a MalformedRecord error for it, which callers may ignore.
func (t *Tracker) Ingest(rec *sam.Record) error {
	t.stats.Records++
	r, err := NewRead(rec)
	if err != nil {
		t.stats.Malformed++
		log.Debug.Printf("svreads: skipping record: %v", err)
		return err
	}
	skip := false
	if r.IsDuplicate() {
		t.stats.Duplicates++
		skip = true
	}
	if r.IsUnmapped() {
		t.stats.Unmapped++
		t.unmapped[r.Name] = r
		skip = true
	}
	if skip {
		return nil
	}

	properMap, overlapReads := PairMetadata(r)
	slots, indexed := t.pairIndex[r.Name]
	if !indexed && !r.MateUnmapped {
		if err := t.detectDiscordant(r); err != nil {
			return err
		}
	}
	t.valid = append(t.valid, validRead{
		read:         r,
		properMap:    properMap,
		overlapReads: overlapReads,
		state:        Valid,
	})
	idx := len(t.valid) - 1
	if !indexed && !r.MateUnmapped {
		slots = &[2]int{-1, -1}
		t.pairIndex[r.Name] = slots
		indexed = true
	}
	if indexed {
		slots[r.readInPair()] = idx
	}
	t.valid[idx].state = Classified
	return nil
}

// chromName returns the name of reference refID in the source's header.
func (t *Tracker) chromName(refID int) (string, error) {
	if t.header == nil {
		h, err := t.src.GetHeader()
		if err != nil {
			return "", sourceUnavailable("header", err)
		}
		t.header = h
	}
	return bamprovider.RefName(t.header, refID), nil
}

// detectDiscordant records the pair of r as discordant if the mates lie on
// different references or far apart, and records an inversion or
// tandem-duplication signal for first reads whose mate is on the same
// reference.
func (t *Tracker) detectDiscordant(r Read) error {
	if r.MapQ <= 0 || r.MateUnmapped {
		return nil
	}
	diffRefs := r.MateRefID != -1 && r.RefID != r.MateRefID
	largeInsert := abs(r.TempLen) >= t.opts.DiscordantInsertSize
	if diffRefs || largeInsert {
		mate, err := t.src.Mate(r.Record())
		switch {
		case err == nil:
			if mate.MapQ > 0 {
				chrom, err := t.chromName(r.MateRefID)
				if err != nil {
					return err
				}
				t.disc[chrom] = append(t.disc[chrom], DiscordantPair{Pos: r.Pos, MatePos: r.MatePos})
			}
		case errors.Is(errors.NotExist, err):
			t.stats.MissingMates++
			log.Debug.Printf("svreads: %s: %v", r.Name, err)
		default:
			return sourceUnavailable("mate of "+r.Name, err)
		}
	}

	if r.RefID != r.MateRefID || !r.IsRead1() {
		return nil
	}
	sig := Signal{Name: r.Name}
	var list *[]Signal
	rev, mateRev := r.IsReverse(), r.IsMateReverse()
	switch {
	case rev && mateRev:
		sig.LowPos, sig.HighPos = min(r.Pos, r.MatePos), max(r.Pos, r.MatePos)
		list = &t.inv
	case !rev && !mateRev:
		sig.LowPos, sig.HighPos = min(r.Pos, r.MatePos), max(r.Pos, r.MatePos)
		sig.LowForward, sig.HighForward = true, true
		list = &t.inv
	case rev && !mateRev && r.Pos < r.MatePos:
		sig.LowPos, sig.HighPos = r.Pos, r.MatePos
		sig.HighForward = true
		list = &t.td
	case !rev && mateRev && r.MatePos < r.Pos:
		sig.LowPos, sig.HighPos = r.MatePos, r.Pos
		sig.LowForward = true
		list = &t.td
	default:
		return nil
	}
	*list = append(*list, sig)
	t.other = append(t.other, sig)
	return nil
}

// Discordant returns the discordant pairs, keyed by the mate's reference name.
func (t *Tracker) Discordant() map[string][]DiscordantPair { return t.disc }

// Inversions returns the inversion signals.
func (t *Tracker) Inversions() []Signal { return t.inv }

// TandemDups returns the tandem-duplication signals.
func (t *Tracker) TandemDups() []Signal { return t.td }

// Other returns every signal, inversion or tandem duplication, in the order
// they were found.
func (t *Tracker) Other() []Signal { return t.other }

// UnmappedKeep returns the names of unmapped reads whose mate is uniquely
// mapped within the region.
func (t *Tracker) UnmappedKeep() []string { return t.unmappedKeep }

// NumValid returns the number of stored reads.
func (t *Tracker) NumValid() int { return len(t.valid) }

// State returns the state of the i'th stored read.
func (t *Tracker) State(i int) ReadState {
	if i < 0 || i >= len(t.valid) {
		return Unseen
	}
	return t.valid[i].state
}

// Stats returns the record counters.
func (t *Tracker) Stats() Stats { return t.stats }

// Candidates returns the candidates, keyed by pair-qualified read name, in
// the order they were selected.
func (t *Tracker) Candidates() []*Candidate {
	c := make([]*Candidate, len(t.svOrder))
	for i, name := range t.svOrder {
		c[i] = t.sv[name]
	}
	return c
}

// Candidate returns the candidate for a pair-qualified read name.
func (t *Tracker) Candidate(pairName string) (*Candidate, bool) {
	c, ok := t.sv[pairName]
	return c, ok
}

// ClearCandidates drops the candidates once they have been emitted.
func (t *Tracker) ClearCandidates() {
	t.sv = map[string]*Candidate{}
	t.svOrder = nil
}

func (t *Tracker) addCandidate(pairName string, c *Candidate) {
	if _, ok := t.sv[pairName]; !ok {
		t.svOrder = append(t.svOrder, pairName)
	}
	t.sv[pairName] = c
}

// Close releases the alignment source.  Close may be called any number of
// times, and after Emit; the source is closed once.
func (t *Tracker) Close() error {
	if !t.closed {
		t.closed = true
		t.closeErr = t.src.Close()
	}
	return t.closeErr
}
