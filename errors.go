package sandhisplit

import "errors"

// ErrUnknownEncoding is returned when a caller names an encoding scheme
// that is not one of the supported scheme identifiers.
var ErrUnknownEncoding = errors.New("sandhisplit: unknown input encoding")

// ErrMalformedRule is returned at rule-table construction time when an
// expansion string does not match the required "L_R" shape.
var ErrMalformedRule = errors.New("sandhisplit: malformed sandhi rule expansion")

// ErrNotFound is the sentinel error returned, with a nil slice, by the
// morphological facade when the oracle has no analysis for the given
// surface form (or no analysis passes WordMatches' filters). It is not an
// error in the splitter, merely a pruned candidate.
var ErrNotFound = errors.New("sandhisplit: no morphological analysis found")
