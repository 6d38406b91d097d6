package svreads

import "strings"

// TrimDirection selects the end a clipped fragment is shortened from when it
// is tested against the mate sequence.
type TrimDirection int

const (
	// TrimFront removes bases from the start of the fragment. The fragment
	// is expected at the start of the mate.
	TrimFront TrimDirection = iota
	// TrimBack removes bases from the end of the fragment. The fragment is
	// expected at the end of the mate.
	TrimBack
)

// String implements fmt.Stringer.
func (d TrimDirection) String() string {
	if d == TrimBack {
		return "back"
	}
	return "front"
}

// ResolvePairOverlap decides whether the fragment r.Seq[coords[0]:coords[1]]
// is breakpoint evidence rather than a side effect of the two reads of a pair
// overlapping each other.  It returns true if the fragment should be kept.
//
// When the insert is shorter than the read, the reads overlap by
// construction: the fragment is dropped if the overlap excess
// |len - (|insert|+1)| is at least as long as the fragment.
//
// Otherwise the fragment is shortened one base at a time, from the end given
// by dir, for as long as it is not found at its anchor in mateSeq (offset 0
// for TrimFront, the last len(fragment) bases for TrimBack).  The fragment is
// kept if this runs it down to nothing or runs maxShrink times; it is dropped
// if it lands on its anchor first.
func ResolvePairOverlap(mateSeq string, r Read, coords [2]int, dir TrimDirection, maxShrink int) bool {
	clipSeq := r.Seq[coords[0]:coords[1]]
	clipLen := coords[1] - coords[0]

	if insert := abs(r.TempLen); insert < r.Len() {
		return abs(r.Len()-(insert+1)) < clipLen
	}
	n := 0
	for offAnchor(dir, mateSeq, clipSeq) && n < maxShrink && len(clipSeq) > 0 {
		if dir == TrimBack {
			clipSeq = clipSeq[:len(clipSeq)-1]
		} else {
			clipSeq = clipSeq[1:]
		}
		n++
	}
	return len(clipSeq) == 0 || n == maxShrink
}

// offAnchor returns true unless the first occurrence of frag in mate is at
// the anchor position for dir.
func offAnchor(dir TrimDirection, mate, frag string) bool {
	if dir == TrimBack {
		return strings.Index(mate, frag) != len(mate)-len(frag)
	}
	return strings.Index(mate, frag) != 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
