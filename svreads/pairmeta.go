package svreads

import "github.com/grailbio/hts/sam"

// Flag combinations of the four reads of a correctly oriented Illumina
// paired-end library: reverse read 1 and 2, forward read 1 and 2.
const (
	flagReverseRead1 = sam.Paired | sam.ProperPair | sam.Reverse | sam.Read1     // 83
	flagReverseRead2 = sam.Paired | sam.ProperPair | sam.Reverse | sam.Read2     // 147
	flagForwardRead1 = sam.Paired | sam.ProperPair | sam.MateReverse | sam.Read1 // 99
	flagForwardRead2 = sam.Paired | sam.ProperPair | sam.MateReverse | sam.Read2 // 163
)

// PairMetadata reports whether r belongs to a properly oriented pair, and if
// so whether its insert is short enough (< 2*len) for the two reads to
// overlap.  A reverse-strand read must have a negative insert and a
// forward-strand read a positive one.
func PairMetadata(r Read) (properMap, overlapReads bool) {
	switch r.Flags {
	case flagReverseRead1, flagReverseRead2:
		properMap = r.TempLen < 0
	case flagForwardRead1, flagForwardRead2:
		properMap = r.TempLen > 0
	}
	if properMap {
		overlapReads = abs(r.TempLen) < 2*r.Len()
	}
	return
}
