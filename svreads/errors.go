package svreads

import (
	"fmt"

	"github.com/grailbio/base/errors"
)

// Failure classes. Errors returned by this package carry one of the
// following grailbio/base/errors kinds:
//
//   errors.Unavailable: the alignment file or its index is missing or
//     unreadable (SourceUnavailable). Fatal for the region.
//   errors.Invalid: a single record lacks an expected field
//     (MalformedRecord). The record is skipped; the region continues.
//
// A read whose qualities are all below the trim threshold is not an error: it
// is reported by the bool result of TrimRead. A region without reads is not an
// error either.

// IsSourceUnavailable returns true if err reports a missing or unreadable
// alignment source.
func IsSourceUnavailable(err error) bool {
	return err != nil && errors.Is(errors.Unavailable, err)
}

// IsMalformedRecord returns true if err reports a record that was skipped
// because a field was missing or inconsistent.
func IsMalformedRecord(err error) bool {
	return err != nil && errors.Is(errors.Invalid, err)
}

func sourceUnavailable(what string, err error) error {
	return errors.E(errors.Unavailable, "svreads: alignment source", what, err)
}

func malformedRecord(name, format string, args ...interface{}) error {
	return errors.E(errors.Invalid, fmt.Sprintf("svreads: malformed record %s: ", name)+fmt.Sprintf(format, args...))
}
