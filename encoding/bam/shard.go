// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package bam

import (
	"fmt"

	"github.com/grailbio/hts/sam"
)

// Shard represents a half-open, 0-based genomic interval [Start, End) on a
// single reference.  An iterator for a shard returns the reads that overlap
// [ClampedStart, ClampedEnd).
type Shard struct {
	Ref   *sam.Reference
	Start int
	End   int
}

// NewShard creates a shard covering [start, end) on ref.
func NewShard(ref *sam.Reference, start, end int) Shard {
	return Shard{Ref: ref, Start: start, End: end}
}

// ClampedStart returns Start, or 0 if Start is negative.
func (s *Shard) ClampedStart() int {
	if s.Start < 0 {
		return 0
	}
	return s.Start
}

// ClampedEnd returns End, limited to the reference length when it is known.
func (s *Shard) ClampedEnd() int {
	if s.Ref != nil && s.Ref.Len() > 0 && s.End > s.Ref.Len() {
		return s.Ref.Len()
	}
	return s.End
}

// String returns a debug string for s.
func (s *Shard) String() string {
	return fmt.Sprintf("%s[%d]:%d-%d", s.Ref.Name(), s.Ref.ID(), s.ClampedStart(), s.ClampedEnd())
}
