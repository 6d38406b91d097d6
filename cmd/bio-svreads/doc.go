/*
bio-svreads collects the reads that support structural variants in target
regions of a coordinate-sorted, indexed BAM file.

For each region it writes, under -out-dir:

  <label>.sv_clipped.fa   soft-clipped fragments, extended inward by
                          -kmer-size bases, and the sequences of unmapped
                          reads whose mate maps uniquely in the region
  <label>.sv_reads.fastq  the quality-trimmed candidate reads
  <label>.signals.tsv     discordant pairs, inversion and tandem
                          duplication signals
  <label>.sv_reads.bam    the candidate alignments (with -sv-bam)

The FASTA and FASTQ outputs get a ".gz" suffix with -compress.

Regions come from -region (comma separated) or from a -targets BED file
whose fourth column names the region.  Regions are processed in parallel,
each with its own BAM reader; a region that fails is logged and the others
still complete.
*/
package main
