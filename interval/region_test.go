package interval_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
	"github.com/yimsea/BreaKmer/interval"
)

func TestParseRegionString(t *testing.T) {
	tests := []struct {
		region string
		want   interval.Entry
	}{
		{"chr1", interval.Entry{ChrName: "chr1", Start0: 0, End: 2147483646}},
		{"chr1:100", interval.Entry{ChrName: "chr1", Start0: 99, End: 100}},
		{"chr1:100-200", interval.Entry{ChrName: "chr1", Start0: 99, End: 200}},
		{"chr7:1,000-2,000", interval.Entry{ChrName: "chr7", Start0: 999, End: 2000}},
		{"HLA-A*01:01:1-10", interval.Entry{ChrName: "HLA-A*01:01", Start0: 0, End: 10}},
	}
	for _, test := range tests {
		got, err := interval.ParseRegionString(test.region)
		assert.NoError(t, err, test.region)
		expect.EQ(t, got, test.want, test.region)
	}
	for _, bad := range []string{"", ":1-2", "chr1:0", "chr1:10-5", "chr1:a-b"} {
		_, err := interval.ParseRegionString(bad)
		expect.NotNil(t, err, bad)
	}
}

func TestEntryLabel(t *testing.T) {
	e := interval.Entry{ChrName: "chr2", Start0: 10, End: 20}
	expect.EQ(t, e.Label(), "chr2_10_20")
	expect.EQ(t, e.String(), "chr2:11-20")
	expect.EQ(t, e.Len(), 10)
	e.Name = "KMT2A"
	expect.EQ(t, e.Label(), "KMT2A")
}

func TestNewTargets(t *testing.T) {
	data := "# comment\nchr1\t100\t200\tGENE1\nchr2\t0\t50\tGENE2\n"
	got, err := interval.NewTargets(strings.NewReader(data))
	assert.NoError(t, err)
	expect.EQ(t, got, []interval.Entry{
		{ChrName: "chr1", Start0: 100, End: 200, Name: "GENE1"},
		{ChrName: "chr2", Start0: 0, End: 50, Name: "GENE2"},
	})

	_, err = interval.NewTargets(strings.NewReader("chr1\t200\t100\tX\n"))
	expect.NotNil(t, err)
}

func TestNewTargetsFromPath(t *testing.T) {
	tmpdir, cleanup := testutil.TempDir(t, "", "")
	defer testutil.NoCleanupOnError(t, cleanup, tmpdir)

	ctx := vcontext.Background()
	path := filepath.Join(tmpdir, "targets.bed")
	out, err := file.Create(ctx, path)
	assert.NoError(t, err)
	_, err = out.Writer(ctx).Write([]byte("chr3\t5\t15\tT1\n"))
	assert.NoError(t, err)
	assert.NoError(t, out.Close(ctx))
	got, err := interval.NewTargetsFromPath(ctx, path)
	assert.NoError(t, err)
	expect.EQ(t, got, []interval.Entry{{ChrName: "chr3", Start0: 5, End: 15, Name: "T1"}})

	_, err = interval.NewTargetsFromPath(ctx, filepath.Join(tmpdir, "missing.bed"))
	expect.NotNil(t, err)
}
