package svreads

import (
	"github.com/grailbio/hts/sam"
	gbam "github.com/yimsea/BreaKmer/encoding/bam"
)

// phredOffset is the ASCII offset of the quality strings held by Read.
const phredOffset = 33

// Read is a value copy of the fields of an alignment that read classification
// looks at.  Seq and Qual are strings, so trimming a Read produces a new Read
// and never alters another holder's copy or the source record.
type Read struct {
	Name string
	Seq  string
	// Qual holds Phred+33 encoded base qualities, one per base of Seq.
	Qual    string
	Flags   sam.Flags
	MapQ    int
	RefID   int
	Pos     int
	TempLen int
	Cigar   sam.Cigar

	MateRefID int
	MatePos   int
	// MateUnmapped is true if the mate-unmapped flag is set or the record has
	// no mate reference.
	MateUnmapped bool

	rec *sam.Record
}

// NewRead copies rec into a Read.  It returns a MalformedRecord error if rec
// has no sequence or no qualities, or if the qualities or the cigar disagree
// with the sequence length.
func NewRead(rec *sam.Record) (Read, error) {
	if rec.Seq.Length == 0 {
		return Read{}, malformedRecord(rec.Name, "no sequence")
	}
	if len(rec.Qual) == 0 || rec.Qual[0] == 0xff {
		return Read{}, malformedRecord(rec.Name, "no base qualities")
	}
	if len(rec.Qual) != rec.Seq.Length {
		return Read{}, malformedRecord(rec.Name, "%d bases but %d qualities", rec.Seq.Length, len(rec.Qual))
	}
	if _, qlen := rec.Cigar.Lengths(); len(rec.Cigar) > 0 && qlen != rec.Seq.Length {
		return Read{}, malformedRecord(rec.Name, "%d bases but cigar %v spans %d", rec.Seq.Length, rec.Cigar, qlen)
	}
	qual := make([]byte, len(rec.Qual))
	for i, q := range rec.Qual {
		qual[i] = q + phredOffset
	}
	return Read{
		Name:         rec.Name,
		Seq:          string(rec.Seq.Expand()),
		Qual:         string(qual),
		Flags:        rec.Flags,
		MapQ:         int(rec.MapQ),
		RefID:        rec.Ref.ID(),
		Pos:          rec.Pos,
		TempLen:      rec.TempLen,
		Cigar:        rec.Cigar,
		MateRefID:    rec.MateRef.ID(),
		MatePos:      rec.MatePos,
		MateUnmapped: gbam.MateIsUnmapped(rec),
		rec:          rec,
	}, nil
}

// Record returns the record r was copied from, or nil if r was built
// directly.
func (r Read) Record() *sam.Record { return r.rec }

// Len returns the number of bases in the read.
func (r Read) Len() int { return len(r.Seq) }

// IsReverse returns true if the read is aligned to the reverse strand.
func (r Read) IsReverse() bool { return r.Flags&sam.Reverse != 0 }

// IsMateReverse returns true if the mate is aligned to the reverse strand.
func (r Read) IsMateReverse() bool { return r.Flags&sam.MateReverse != 0 }

// IsRead1 returns true for the first read of a pair.
func (r Read) IsRead1() bool { return r.Flags&sam.Read1 != 0 }

// IsUnmapped returns true if the read itself is unmapped.
func (r Read) IsUnmapped() bool { return r.Flags&sam.Unmapped != 0 }

// IsDuplicate returns true for PCR/optical duplicates and reads failing
// vendor quality checks.
func (r Read) IsDuplicate() bool { return r.Flags&(sam.Duplicate|sam.QCFail) != 0 }

// readInPair returns the pair-index slot of the read: 0 for read 1, 1 for
// read 2.
func (r Read) readInPair() int {
	if r.IsRead1() {
		return 0
	}
	return 1
}

// PairName returns the read name suffixed with "/1" or "/2".
func (r Read) PairName() string {
	if r.Flags&sam.Read2 != 0 {
		return r.Name + "/2"
	}
	return r.Name + "/1"
}
