package svreads

import (
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
)

// EvaluateClips is the second pass over the stored reads.  It extracts the
// clipped fragments of every read with a cigar, and marks for emission the
// unmapped mates of reads that start within [regionStart, regionEnd] and are
// uniquely mapped.
//
// EvaluateClips may be called more than once before Emit; a later call
// reproduces the candidates of the first one.
func (t *Tracker) EvaluateClips(kmerSize, regionStart, regionEnd int) error {
	if t.emitted {
		return errors.E(errors.Invalid, "svreads: EvaluateClips called after Emit")
	}
	for i := range t.valid {
		e := &t.valid[i]
		r := e.read
		if len(r.Cigar) > 0 {
			start, end, _ := TrimRange(r.Qual, t.opts.ClipTrimQual)
			t.extractClip(i, ClipCoords(r), [2]int{start, end}, kmerSize)
		} else if e.state < ClipEvaluated {
			t.stats.NoCigar++
			log.Debug.Printf("svreads: %s: no cigar, skipping clip extraction", r.Name)
		}
		e.state = ClipEvaluated

		if r.Pos >= regionStart && r.Pos <= regionEnd && r.MapQ > 0 && r.MateUnmapped {
			t.keepUnmapped(r.Name)
		}
	}
	return nil
}

func (t *Tracker) keepUnmapped(name string) {
	if !t.keepSet[name] {
		t.keepSet[name] = true
		t.unmappedKeep = append(t.unmappedKeep, name)
	}
}

// extractClip selects the clipped fragments of the idx'th stored read.  clip
// is the aligned interval of the read and goodQual the interval left after
// quality trimming.
//
// Nothing is extracted if the aligned interval contains the good-quality
// interval.  A read clipped at both ends keeps both fragments.  A read clipped
// at one end keeps that fragment unless the read overlaps its mate and the
// fragment is found mirrored in the mate sequence; see ResolvePairOverlap.
func (t *Tracker) extractClip(idx int, clip, goodQual [2]int, kmerSize int) {
	e := &t.valid[idx]
	r := e.read
	if clip[0] <= goodQual[0] && clip[1] >= goodQual[1] {
		return
	}

	var (
		newCoords [2]int
		add       [2]bool
		indelOnly = false
	)
	startClip := clip[0] > 0
	endClip := clip[1] < len(r.Qual)
	switch {
	case startClip && endClip:
		add = [2]bool{true, true}
	case startClip:
		add[0] = true
		newCoords = [2]int{0, clip[0]}
		if e.overlapReads && r.IsReverse() {
			if mateSeq, ok := t.mateSeq(r); ok {
				add[0] = ResolvePairOverlap(mateSeq, r, newCoords, TrimBack, t.opts.OverlapShrinkLimit)
			}
		}
		if e.properMap {
			indelOnly = r.IsReverse()
		}
	case endClip:
		newCoords = [2]int{clip[1], r.Len()}
		add[1] = true
		if e.overlapReads && !r.IsReverse() {
			if mateSeq, ok := t.mateSeq(r); ok {
				add[1] = ResolvePairOverlap(mateSeq, r, newCoords, TrimFront, t.opts.OverlapShrinkLimit)
			}
		}
		if e.properMap {
			// A read clipped only at its end is never indel-only: the flag
			// starts false and is only ever and-ed here.
			indelOnly = indelOnly && !r.IsReverse()
		}
	}
	if !add[0] && !add[1] {
		return
	}

	c := &Candidate{Read: r, ClipCoords: &newCoords, IndelOnly: indelOnly}
	if add[0] {
		c.Buffered = append(c.Buffered, subseq(r.Seq, 0, clip[0]+kmerSize))
		c.Clipped = append(c.Clipped, subseq(r.Seq, 0, clip[0]))
	}
	if add[1] {
		c.Buffered = append(c.Buffered, subseq(r.Seq, clip[1]-kmerSize, r.Len()))
		c.Clipped = append(c.Clipped, subseq(r.Seq, clip[1], r.Len()))
	}
	t.addCandidate(r.PairName(), c)
}

// mateSeq returns the sequence of the stored mate of r.
func (t *Tracker) mateSeq(r Read) (string, bool) {
	slots, ok := t.pairIndex[r.Name]
	if !ok {
		return "", false
	}
	m := slots[1-r.readInPair()]
	if m < 0 {
		return "", false
	}
	return t.valid[m].read.Seq, true
}

// subseq returns s[start:end] with both bounds clamped to [0, len(s)].
func subseq(s string, start, end int) string {
	start = max(0, min(start, len(s)))
	end = max(start, min(end, len(s)))
	return s[start:end]
}
