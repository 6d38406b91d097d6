// Package bamprovider provides utilities for reading alignments in a genomic
// region of a coordinate-sorted, indexed BAM file.
//
// The Provider is an interface for fetching the records of a region and the
// mate of a given record. Each Provider owns its file handles; callers that
// process regions in parallel create one Provider per region.
package bamprovider
