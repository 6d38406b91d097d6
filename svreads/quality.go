package svreads

// FindFirstGood returns the index of the first base of qual whose Phred value
// is at least minQual, or len(qual) if there is none.
func FindFirstGood(qual string, minQual int) int {
	for i := 0; i < len(qual); i++ {
		if int(qual[i])-phredOffset >= minQual {
			return i
		}
	}
	return len(qual)
}

// findLastGood is FindFirstGood scanning from the end of qual. It returns the
// number of bad bases at the end of qual.
func findLastGood(qual string, minQual int) int {
	n := 0
	for i := len(qual) - 1; i >= 0; i-- {
		if int(qual[i])-phredOffset >= minQual {
			break
		}
		n++
	}
	return n
}

// TrimRange returns the interval [start, end) of qual left after removing
// low-quality bases from both ends, and its length.  It returns (0, 0, 0) if
// no base reaches minQual.
func TrimRange(qual string, minQual int) (start, end, length int) {
	start = FindFirstGood(qual, minQual)
	if start == len(qual) {
		return 0, 0, 0
	}
	end = len(qual) - findLastGood(qual, minQual)
	return start, end, end - start
}

// TrimRead returns a copy of r with low-quality bases removed from both ends
// of Seq and Qual.  It returns false if no base reaches minQual, or if fewer
// than minLen bases remain.  r itself is unchanged.
func TrimRead(r Read, minQual, minLen int) (Read, bool) {
	start, end, length := TrimRange(r.Qual, minQual)
	if length == 0 || length < minLen {
		return Read{}, false
	}
	r.Seq = r.Seq[start:end]
	r.Qual = r.Qual[start:end]
	return r, true
}
