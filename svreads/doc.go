// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

/*
Package svreads classifies the alignments of a genomic region and extracts the
reads and read fragments that carry evidence of structural variation, for a
later assembly stage.

Evidence comes in three forms:

  - Soft-clipped alignments. The clipped bases, and the clipped bases extended
    inward by a kmer of aligned context ("buffered" fragments), are emitted as
    FASTA records.
  - Discordant pairs: mates on different references or with a large insert,
    and same-reference pairs whose orientation suggests an inversion or a
    tandem duplication. These are recorded as signals.
  - Unmapped reads whose mate is uniquely mapped inside the region.

A Tracker processes one region. Its lifecycle is strictly

	Ingest (once per record) -> EvaluateClips -> Emit

and every read stored in it moves through the states Valid, Classified,
ClipEvaluated and Emitted in that order. The Tracker owns the alignment source
it was created with and closes it exactly once, in Emit or Close.

Trackers share nothing. Regions are processed in parallel by giving each its
own Tracker and its own bamprovider.Provider; see ProcessRegion.
*/
package svreads
