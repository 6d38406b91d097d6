package interval

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PosType is the integer type used to represent genomic positions.  BAM
// positions are limited to int32.
type PosType = int32

const posTypeMax = math.MaxInt32

// Entry represents a single named interval, with 0-based coordinates.
type Entry struct {
	ChrName string
	Start0  PosType
	End     PosType
	// Name labels the region in logs and output file names. It is derived
	// from the coordinates when empty.
	Name string
}

// Label returns e.Name, or "<chr>_<start0>_<end>" when e is unnamed.
func (e Entry) Label() string {
	if e.Name != "" {
		return e.Name
	}
	return fmt.Sprintf("%s_%d_%d", e.ChrName, e.Start0, e.End)
}

// String returns e in 1-based region-string form.
func (e Entry) String() string {
	return fmt.Sprintf("%s:%d-%d", e.ChrName, e.Start0+1, e.End)
}

// Len returns the number of bases covered by e.
func (e Entry) Len() int {
	return int(e.End - e.Start0)
}

// ParseRegionString parses a region string of one of the forms
//   [contig ID]:[1-based first pos]-[last pos]
//   [contig ID]:[1-based pos]
//   [contig ID]
// returning a contig ID and 0-based interval boundaries.  The interval
// [0, posTypeMax - 1] is returned if there is no positional restriction.
// Thousands separators in positions ("1,000") are accepted.
func ParseRegionString(region string) (result Entry, err error) {
	if len(region) == 0 {
		err = fmt.Errorf("interval.ParseRegionString: empty region string")
		return
	}
	colonPos := strings.LastIndexByte(region, ':')
	if colonPos == -1 {
		result.ChrName = region
		result.End = posTypeMax - 1
		return
	}
	if colonPos == 0 {
		err = fmt.Errorf("interval.ParseRegionString: empty contig ID")
		return
	}
	result.ChrName = region[:colonPos]
	rangeStr := strings.Replace(region[colonPos+1:], ",", "", -1)
	dashPos := strings.IndexByte(rangeStr, '-')
	if dashPos == -1 {
		var pos1 int64
		if pos1, err = strconv.ParseInt(rangeStr, 10, 32); err != nil {
			return
		}
		if pos1 <= 0 {
			err = fmt.Errorf("interval.ParseRegionString: position %v in region string out of range", rangeStr)
			return
		}
		result.Start0 = PosType(pos1 - 1)
		result.End = PosType(pos1)
		return
	}
	var start1, end int
	if start1, err = strconv.Atoi(rangeStr[:dashPos]); err != nil {
		return
	}
	if start1 <= 0 {
		err = fmt.Errorf("interval.ParseRegionString: position %v in region string out of range", rangeStr[:dashPos])
		return
	}
	if end, err = strconv.Atoi(rangeStr[dashPos+1:]); err != nil {
		return
	}
	if end < start1 || end >= posTypeMax {
		err = fmt.Errorf("interval.ParseRegionString: invalid range string %v", rangeStr)
		return
	}
	result.Start0 = PosType(start1 - 1)
	result.End = PosType(end)
	return
}
