package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/hts/bam"
	"github.com/grailbio/hts/sam"
	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
	"github.com/klauspost/compress/gzip"
	gbam "github.com/yimsea/BreaKmer/encoding/bam"
	"github.com/yimsea/BreaKmer/encoding/fasta"
	"github.com/yimsea/BreaKmer/encoding/fastq"
	"github.com/yimsea/BreaKmer/interval"
	"github.com/yimsea/BreaKmer/svreads"
)

var (
	chr1, _   = sam.NewReference("chr1", "", "", 10000, nil, nil)
	header, _ = sam.NewHeader(nil, []*sam.Reference{chr1})
	seq30     = strings.Repeat("ACGTTGCA", 3) + "ACGTTG"
	tailed    = strings.Repeat("A", 20) + "GTGTGTGTGT"
)

func newRecord(name string, pos int, flags sam.Flags, matePos, tlen int, cigar sam.Cigar, seq string) *sam.Record {
	r := sam.GetFromFreePool()
	r.Name = name
	r.Ref = chr1
	r.Pos = pos
	r.Flags = flags
	r.MapQ = 60
	r.MateRef = chr1
	r.MatePos = matePos
	r.TempLen = tlen
	r.Cigar = cigar
	r.Seq = sam.NewSeq([]byte(seq))
	r.Qual = bytes.Repeat([]byte{30}, len(seq))
	return r
}

// writeTestBAM writes a clipped read, its mate, and a read with an unmapped
// mate, to dir/in.bam, and indexes it.
func writeTestBAM(t *testing.T, dir string) string {
	recs := []*sam.Record{
		newRecord("r", 100, sam.Paired|sam.ProperPair|sam.MateReverse|sam.Read1, 115, 45,
			sam.Cigar{sam.NewCigarOp(sam.CigarMatch, 20), sam.NewCigarOp(sam.CigarSoftClipped, 10)}, tailed),
		newRecord("r", 115, sam.Paired|sam.ProperPair|sam.Reverse|sam.Read2, 100, -45,
			sam.Cigar{sam.NewCigarOp(sam.CigarMatch, 30)}, strings.Repeat("C", 30)),
		newRecord("u", 120, sam.Paired|sam.MateUnmapped|sam.Read1, 120, 0,
			sam.Cigar{sam.NewCigarOp(sam.CigarMatch, 30)}, seq30),
		newRecord("u", 120, sam.Paired|sam.Unmapped|sam.Read2, 120, 0, nil, seq30),
	}
	ctx := vcontext.Background()
	path := filepath.Join(dir, "in.bam")
	w, err := gbam.NewWriter(ctx, path, header)
	assert.NoError(t, err)
	for _, r := range recs {
		assert.NoError(t, w.Write(r))
	}
	assert.NoError(t, w.Close(ctx))

	in, err := os.Open(path)
	assert.NoError(t, err)
	defer in.Close() // nolint: errcheck
	br, err := bam.NewReader(in, 1)
	assert.NoError(t, err)
	var index bam.Index
	for {
		r, err := br.Read()
		if err == io.EOF {
			break
		}
		assert.NoError(t, err)
		assert.NoError(t, index.Add(r, br.LastChunk()))
	}
	out, err := os.Create(path + ".bai")
	assert.NoError(t, err)
	assert.NoError(t, bam.WriteIndex(out, &index))
	assert.NoError(t, out.Close())
	return path
}

func readFile(t *testing.T, path string) io.Reader {
	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	var r io.Reader = bytes.NewReader(data)
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(r)
		assert.NoError(t, err)
		r = gz
	}
	return r
}

func checkOutputs(t *testing.T, dir, label, suffix string) {
	seqs, err := fasta.ReadAll(readFile(t, filepath.Join(dir, label+".sv_clipped.fa"+suffix)))
	assert.NoError(t, err)
	expect.EQ(t, seqs, []fasta.Record{{Name: "u", Seq: seq30}, {Name: "r/1", Seq: tailed[15:]}})

	var (
		ids []string
		r   fastq.Read
	)
	sc := fastq.NewScanner(readFile(t, filepath.Join(dir, label+".sv_reads.fastq"+suffix)))
	for sc.Scan(&r) {
		ids = append(ids, r.ID)
	}
	assert.NoError(t, sc.Err())
	expect.EQ(t, ids, []string{"@r/1_0", "@u/2_0"})

	_, err = os.Stat(filepath.Join(dir, label+".signals.tsv"))
	expect.NoError(t, err)
}

func testOpts(bamPath, outDir string, regions ...interval.Entry) *runOpts {
	opts := svreads.DefaultOpts
	opts.KmerSize = 5
	return &runOpts{
		bamPath:     bamPath,
		outDir:      outDir,
		regions:     regions,
		parallelism: 2,
		opts:        opts,
	}
}

func TestRun(t *testing.T) {
	dir, cleanup := testutil.TempDir(t, "", "")
	defer testutil.NoCleanupOnError(t, cleanup, dir)
	bamPath := writeTestBAM(t, dir)

	o := testOpts(bamPath, dir,
		interval.Entry{ChrName: "chr1", Start0: 0, End: 1000, Name: "tgtA"},
		interval.Entry{ChrName: "chrZ", Start0: 0, End: 100, Name: "bad"},
		interval.Entry{ChrName: "chr1", Start0: 5000, End: 6000})
	o.svBAM = true
	results, err := run(vcontext.Background(), o)
	expect.NotNil(t, err)
	assert.EQ(t, len(results), 3)
	expect.EQ(t, results[0].Candidates, 2)
	expect.EQ(t, results[2].Stats.Records, 0)
	checkOutputs(t, dir, "tgtA", "")

	in, err := os.Open(filepath.Join(dir, "tgtA.sv_reads.bam"))
	assert.NoError(t, err)
	defer in.Close() // nolint: errcheck
	br, err := bam.NewReader(in, 1)
	assert.NoError(t, err)
	n := 0
	for {
		_, err := br.Read()
		if err == io.EOF {
			break
		}
		assert.NoError(t, err)
		n++
	}
	expect.EQ(t, n, 2)

	_, err = os.Stat(filepath.Join(dir, "chr1_5000_6000.sv_clipped.fa"))
	expect.NoError(t, err)
}

func TestRunCompressed(t *testing.T) {
	dir, cleanup := testutil.TempDir(t, "", "")
	defer testutil.NoCleanupOnError(t, cleanup, dir)
	bamPath := writeTestBAM(t, dir)

	targets := filepath.Join(dir, "targets.bed")
	assert.NoError(t, os.WriteFile(targets, []byte("# chrom start end name\nchr1\t0\t1000\ttgtA\n"), 0644))
	regions, err := parseRegions(vcontext.Background(), "", targets)
	assert.NoError(t, err)

	o := testOpts(bamPath, dir, regions...)
	o.compress = true
	_, err = run(vcontext.Background(), o)
	assert.NoError(t, err)
	checkOutputs(t, dir, "tgtA", ".gz")
}

func TestParseRegions(t *testing.T) {
	ctx := vcontext.Background()
	_, err := parseRegions(ctx, "", "")
	expect.NotNil(t, err)
	_, err = parseRegions(ctx, "chr1:1-10", "targets.bed")
	expect.NotNil(t, err)

	regions, err := parseRegions(ctx, "chr1:1-100, chr2:5-10,", "")
	assert.NoError(t, err)
	expect.EQ(t, regions, []interval.Entry{
		{ChrName: "chr1", Start0: 0, End: 100},
		{ChrName: "chr2", Start0: 4, End: 10},
	})
}
