package svreads

import (
	"github.com/grailbio/base/log"
	"github.com/yimsea/BreaKmer/encoding/bamprovider"
	"github.com/yimsea/BreaKmer/interval"
)

// Outputs bundles the sinks of one region.  Alignments may be nil.
type Outputs struct {
	Seqs       SequenceSink
	Reads      ReadSink
	Alignments AlignmentSink
}

// Result summarizes a processed region.
type Result struct {
	Region     interval.Entry
	Stats      Stats
	Valid      int
	Candidates int
	// UnmappedKept is the number of unmapped reads selected for emission.
	UnmappedKept int
	Discordant   map[string][]DiscordantPair
	Inversions   []Signal
	TandemDups   []Signal
	Other        []Signal
}

// Collect reads every record overlapping region from provider into a new
// Tracker.  The Tracker owns provider.  On error, provider is closed and no
// Tracker is returned.  A region without records yields an empty Tracker.
func Collect(provider bamprovider.Provider, region interval.Entry, opts Opts) (*Tracker, error) {
	t := NewTracker(provider, opts)
	if _, err := provider.GetHeader(); err != nil {
		t.Close() // nolint: errcheck
		return nil, sourceUnavailable(region.String(), err)
	}
	iter := bamprovider.NewRefIterator(provider, region.ChrName, int(region.Start0), int(region.End))
	for iter.Scan() {
		if err := t.Ingest(iter.Record()); err != nil && !IsMalformedRecord(err) {
			iter.Close() // nolint: errcheck
			t.Close()    // nolint: errcheck
			return nil, err
		}
	}
	if err := iter.Close(); err != nil {
		t.Close() // nolint: errcheck
		return nil, sourceUnavailable(region.String(), err)
	}
	return t, nil
}

// ProcessRegion runs Collect, EvaluateClips and Emit on region, and closes
// provider on every path.
func ProcessRegion(provider bamprovider.Provider, region interval.Entry, opts Opts, out Outputs) (Result, error) {
	res := Result{Region: region}
	t, err := Collect(provider, region, opts)
	if err != nil {
		return res, err
	}
	if err := t.EvaluateClips(opts.KmerSize, int(region.Start0), int(region.End)); err != nil {
		t.Close() // nolint: errcheck
		return res, err
	}
	err = t.Emit(out.Seqs, out.Reads, out.Alignments, opts.KmerSize)
	res.Stats = t.Stats()
	res.Valid = t.NumValid()
	res.Candidates = len(t.svOrder)
	res.UnmappedKept = len(t.unmappedKeep)
	res.Discordant = t.Discordant()
	res.Inversions = t.Inversions()
	res.TandemDups = t.TandemDups()
	res.Other = t.Other()
	t.ClearCandidates()
	log.Debug.Printf("svreads: %v: %d records, %d valid, %d candidates, %d unmapped kept, %d malformed",
		region, res.Stats.Records, res.Valid, res.Candidates, res.UnmappedKept, res.Stats.Malformed)
	return res, err
}
