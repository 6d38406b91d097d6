package svreads

import (
	"io"
	"sort"

	"github.com/grailbio/base/tsv"
)

// SignalRow is one line of the signal summary written by WriteSignals.
type SignalRow struct {
	Region string `tsv:"region"`
	Kind   string `tsv:"kind"`
	// Chrom is the mate reference of a discordant pair; empty for
	// same-reference signals.
	Chrom      string `tsv:"chrom"`
	Low        int    `tsv:"low"`
	High       int    `tsv:"high"`
	LowStrand  string `tsv:"low_strand"`
	HighStrand string `tsv:"high_strand"`
	Name       string `tsv:"name"`
}

func strand(forward bool) string {
	if forward {
		return "+"
	}
	return "-"
}

// SignalRows flattens the signals of res.  Inversions come first, then
// tandem duplications, then discordant pairs sorted by mate reference.
func SignalRows(res *Result) []SignalRow {
	label := res.Region.Label()
	var rows []SignalRow
	addSignals := func(kind string, sigs []Signal) {
		for _, s := range sigs {
			rows = append(rows, SignalRow{
				Region:     label,
				Kind:       kind,
				Low:        s.LowPos,
				High:       s.HighPos,
				LowStrand:  strand(s.LowForward),
				HighStrand: strand(s.HighForward),
				Name:       s.Name,
			})
		}
	}
	addSignals("inv", res.Inversions)
	addSignals("td", res.TandemDups)

	chroms := make([]string, 0, len(res.Discordant))
	for chrom := range res.Discordant {
		chroms = append(chroms, chrom)
	}
	sort.Strings(chroms)
	for _, chrom := range chroms {
		for _, d := range res.Discordant[chrom] {
			rows = append(rows, SignalRow{
				Region:     label,
				Kind:       "disc",
				Chrom:      chrom,
				Low:        d.Pos,
				High:       d.MatePos,
				LowStrand:  ".",
				HighStrand: ".",
			})
		}
	}
	return rows
}

// WriteSignals writes SignalRows(res) to w as TSV.
func WriteSignals(w io.Writer, res *Result) error {
	tw := tsv.NewRowWriter(w)
	for _, row := range SignalRows(res) {
		if err := tw.Write(&row); err != nil {
			return err
		}
	}
	return tw.Flush()
}
