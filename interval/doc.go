/*Package interval describes the genomic regions that structural-variant read
  extraction runs on.  A region is either parsed from a samtools-style region
  string or read from a targets file, a BED-like TSV of
  <chrom, start, end, name> rows.  Coordinates are 0-based and half-open, as
  in BED.
*/
package interval
