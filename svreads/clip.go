package svreads

import "github.com/grailbio/hts/sam"

// ClipCoords returns the interval [start, end) of r's sequence that the
// aligner did not soft-clip.
//
// Every operation except deletions and soft clips extends end by its length.
// A leading soft clip of length n sets start = end = n.  A trailing soft clip
// adds nothing, so end stops short of the read length.  A read without a cigar
// is treated as fully aligned.
//
// The read is clipped at its start if start > 0 and at its end if
// end < r.Len().
func ClipCoords(r Read) [2]int {
	if len(r.Cigar) == 0 {
		return [2]int{0, len(r.Qual)}
	}
	var coords [2]int
	for i, op := range r.Cigar {
		switch op.Type() {
		case sam.CigarSoftClipped:
			if i == 0 {
				coords[0] = op.Len()
				coords[1] += op.Len()
			}
		case sam.CigarDeletion:
		default:
			coords[1] += op.Len()
		}
	}
	return coords
}
