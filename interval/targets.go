package interval

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/tsv"
)

// targetRow is one line of a targets file.
type targetRow struct {
	Chrom string
	Start int
	End   int
	Name  string
}

// NewTargets reads a targets file: tab-separated <chrom, 0-based start, end,
// name> rows, with '#' comment lines.  Rows are returned in file order.
func NewTargets(r io.Reader) ([]Entry, error) {
	scanner := tsv.NewReader(bufio.NewReaderSize(r, 64<<10))
	scanner.Comment = '#'
	var (
		entries []Entry
		row     targetRow
	)
	for line := 1; ; line++ {
		if err := scanner.Read(&row); err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("interval.NewTargets: line %d: %v", line, err)
		}
		if row.Start < 0 || row.End < row.Start || row.End >= posTypeMax {
			return nil, fmt.Errorf("interval.NewTargets: line %d: invalid interval [%d, %d)", line, row.Start, row.End)
		}
		entries = append(entries, Entry{
			ChrName: row.Chrom,
			Start0:  PosType(row.Start),
			End:     PosType(row.End),
			Name:    row.Name,
		})
	}
	return entries, nil
}

// NewTargetsFromPath reads a targets file from path.  A compressed file
// (e.g. ".gz") is decompressed transparently.
func NewTargetsFromPath(ctx context.Context, path string) (entries []Entry, err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if e := in.Close(ctx); e != nil && err == nil {
			err = e
		}
	}()
	var r io.Reader = in.Reader(ctx)
	if u, _ := compress.NewReaderPath(r, in.Name()); u != nil {
		r = u
	}
	return NewTargets(r)
}
