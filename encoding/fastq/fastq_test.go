package fastq

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fq = `@read1/1_0
ATACAGGCCTGANCCACTGTGCCCAG
+
AAAAAEEEEEEE#EEAEEEEEEEEEE
@read2/2_1
CTCAACTCTGAGNCAGACAGAAATAC
+
AAAAAEEEEEEE#EEEEEEEEEEEEE
`

func scanAll(s string) ([]Read, error) {
	scan := NewScanner(strings.NewReader(s))
	var (
		r     Read
		reads []Read
	)
	for scan.Scan(&r) {
		reads = append(reads, r)
	}
	return reads, scan.Err()
}

func TestScan(t *testing.T) {
	reads, err := scanAll(fq)
	require.NoError(t, err)
	require.Len(t, reads, 2)
	assert.Equal(t, Read{
		ID:   "@read1/1_0",
		Seq:  "ATACAGGCCTGANCCACTGTGCCCAG",
		Unk:  "+",
		Qual: "AAAAAEEEEEEE#EEAEEEEEEEEEE",
	}, reads[0])
	assert.Equal(t, "@read2/2_1", reads[1].ID)
}

func TestScanErrors(t *testing.T) {
	lines := strings.Split(fq, "\n")
	for n := 1; n < 4; n++ {
		_, err := scanAll(strings.Join(lines[:n], "\n"))
		assert.Equal(t, ErrShort, err, "n=%d", n)
	}
	_, err := scanAll("read1\nACGT\n+\nIIII\n")
	assert.Equal(t, ErrInvalid, err)
	_, err = scanAll("@read1\nACGT\n-\nIIII\n")
	assert.Equal(t, ErrInvalid, err)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.Write(&Read{ID: "@r/1_0", Seq: "ACGT", Unk: "+", Qual: "IIII"}))
	require.NoError(t, w.Flush())
	assert.Equal(t, "@r/1_0\nACGT\n+\nIIII\n", buf.String())
	assert.Equal(t, 1, w.NumReads())
}
