package bam

import "github.com/grailbio/hts/sam"

// MateIsUnmapped returns true if the mate-unmapped flag is set, or if the
// record carries no mate reference at all (RNEXT == '*').
func MateIsUnmapped(record *sam.Record) bool {
	return (record.Flags&sam.MateUnmapped) != 0 || record.MateRef.ID() == -1
}

// IsRead1 returns true if record is the first read of its pair.
func IsRead1(record *sam.Record) bool {
	return (record.Flags & sam.Read1) != 0
}
