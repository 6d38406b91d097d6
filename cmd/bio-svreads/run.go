package main

import (
	"context"
	"runtime"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"
	"github.com/grailbio/hts/sam"
	"github.com/yimsea/BreaKmer/encoding/bamprovider"
	"github.com/yimsea/BreaKmer/interval"
	"github.com/yimsea/BreaKmer/svreads"
)

// runOpts configures a run over a set of regions.
type runOpts struct {
	bamPath   string
	indexPath string
	outDir    string
	regions   []interval.Entry
	// svBAM enables the per-region BAM of candidate alignments.
	svBAM       bool
	compress    bool
	parallelism int
	opts        svreads.Opts
}

// parseRegions returns the regions named by a comma-separated list of region
// strings, or the entries of a targets BED file.  Exactly one of them must be
// set.
func parseRegions(ctx context.Context, regionList, targetsPath string) ([]interval.Entry, error) {
	if (regionList == "") == (targetsPath == "") {
		return nil, errors.E(errors.Invalid, "exactly one of -region and -targets must be set")
	}
	if targetsPath != "" {
		return interval.NewTargetsFromPath(ctx, targetsPath)
	}
	var regions []interval.Entry
	for _, s := range strings.Split(regionList, ",") {
		if s = strings.TrimSpace(s); s == "" {
			continue
		}
		e, err := interval.ParseRegionString(s)
		if err != nil {
			return nil, err
		}
		regions = append(regions, e)
	}
	return regions, nil
}

// processRegion extracts the reads of one region with its own provider.
func processRegion(ctx context.Context, o *runOpts, region interval.Entry) (svreads.Result, error) {
	provider := bamprovider.NewProvider(o.bamPath, bamprovider.ProviderOpts{Index: o.indexPath})
	var header *sam.Header
	if o.svBAM {
		var err error
		if header, err = provider.GetHeader(); err != nil {
			provider.Close() // nolint: errcheck
			return svreads.Result{Region: region}, errors.E(errors.Unavailable, o.bamPath, err)
		}
	}
	out, err := newRegionOutputs(ctx, o.outDir, region.Label(), o.compress, header)
	if err != nil {
		provider.Close() // nolint: errcheck
		return svreads.Result{Region: region}, err
	}
	res, err := svreads.ProcessRegion(provider, region, o.opts, out.outputs())
	if e := out.Close(ctx); e != nil && err == nil {
		err = e
	}
	if err != nil {
		return res, err
	}
	return res, out.writeSignals(ctx, &res)
}

// run processes every region.  A failed region does not stop the others;
// run returns the first failure once all regions are done.
func run(ctx context.Context, o *runOpts) ([]svreads.Result, error) {
	parallelism := o.parallelism
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	if parallelism > len(o.regions) {
		parallelism = len(o.regions)
	}
	log.Printf("bio-svreads: processing %d regions of %s, parallelism %d", len(o.regions), o.bamPath, parallelism)
	results := make([]svreads.Result, len(o.regions))
	var failed errors.Once
	_ = traverse.Each(parallelism, func(jobIdx int) error {
		startIdx := (jobIdx * len(o.regions)) / parallelism
		endIdx := ((jobIdx + 1) * len(o.regions)) / parallelism
		for i := startIdx; i < endIdx; i++ {
			region := o.regions[i]
			res, err := processRegion(ctx, o, region)
			results[i] = res
			if err != nil {
				log.Error.Printf("bio-svreads: %v (%s): %v", region, region.Label(), err)
				failed.Set(errors.E(err, "region", region.String()))
				continue
			}
			log.Printf("bio-svreads: %v (%s): %d records, %d malformed, %d candidates, %d unmapped kept, %d discordant refs, %d inversions, %d tandem dups",
				region, region.Label(), res.Stats.Records, res.Stats.Malformed, res.Candidates, res.UnmappedKept,
				len(res.Discordant), len(res.Inversions), len(res.TandemDups))
		}
		return nil
	})
	return results, failed.Err()
}
