// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/yimsea/BreaKmer/svreads"
)

var (
	bamPath      = flag.String("bam", "", "Input BAM path; must be coordinate sorted and indexed")
	indexPath    = flag.String("index", "", "Input BAM index path. Defaults to bampath + .bai")
	region       = flag.String("region", "", "Comma-separated regions, each formatted as <contig>:<1-based first pos>-<last pos>, <contig>:<1-based pos>, or <contig>; this xor -targets required")
	targets      = flag.String("targets", "", "Targets BED path (chrom, start, end, name), optionally gzipped; this xor -region required")
	outDir       = flag.String("out-dir", ".", "Output directory")
	kmerSize     = flag.Int("kmer-size", svreads.DefaultOpts.KmerSize, "Bases added to each clipped fragment, and minimum trimmed read length")
	clipTrimQual = flag.Int("clip-trim-qual", svreads.DefaultOpts.ClipTrimQual, "Minimum base quality when locating soft clips")
	emitTrimQual = flag.Int("emit-trim-qual", svreads.DefaultOpts.EmitTrimQual, "Minimum base quality of emitted reads")
	discInsert   = flag.Int("discordant-insert-size", svreads.DefaultOpts.DiscordantInsertSize, "Absolute insert size from which a same-reference pair is discordant")
	shrinkLimit  = flag.Int("overlap-shrink-limit", svreads.DefaultOpts.OverlapShrinkLimit, "Number of bases a clip is shortened by when it is looked up in the overlapping mate")
	svBAM        = flag.Bool("sv-bam", false, "Also write the candidate alignments of each region to a BAM file")
	compress     = flag.Bool("compress", false, "Gzip the FASTA and FASTQ outputs")
	parallelism  = flag.Int("parallelism", 0, "Maximum number of regions processed at once; 0 = runtime.NumCPU()")
)

func usage() {
	fmt.Printf("Usage: %s -bam path {-region regions | -targets path} [OPTIONS]\n", os.Args[0])
	fmt.Printf("Options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	shutdown := grail.Init()
	defer shutdown()

	if *bamPath == "" {
		log.Fatalf("-bam is required")
	}
	if flag.NArg() > 0 {
		log.Fatalf("unexpected positional arguments: %v", flag.Args())
	}
	ctx := vcontext.Background()
	regions, err := parseRegions(ctx, *region, *targets)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if scheme, _, _ := file.ParsePath(*outDir); scheme == "" {
		// Local output directory.
		if err := os.MkdirAll(*outDir, 0755); err != nil {
			log.Fatalf("%v", err)
		}
	}
	o := runOpts{
		bamPath:     *bamPath,
		indexPath:   *indexPath,
		outDir:      *outDir,
		regions:     regions,
		svBAM:       *svBAM,
		compress:    *compress,
		parallelism: *parallelism,
		opts: svreads.Opts{
			KmerSize:             *kmerSize,
			ClipTrimQual:         *clipTrimQual,
			EmitTrimQual:         *emitTrimQual,
			DiscordantInsertSize: *discInsert,
			OverlapShrinkLimit:   *shrinkLimit,
		},
	}
	results, err := run(ctx, &o)
	var total svreads.Stats
	candidates := 0
	for _, r := range results {
		total.Records += r.Stats.Records
		total.Malformed += r.Stats.Malformed
		candidates += r.Candidates
	}
	log.Printf("bio-svreads: %d regions, %d records, %d malformed, %d candidates",
		len(results), total.Records, total.Malformed, candidates)
	if err != nil {
		log.Fatalf("%v", err)
	}
	log.Debug.Printf("exiting")
}
