package resolve

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports a query that matched no item.
	ErrNotFound = errors.New("item not found")
	// ErrAmbiguous reports a query that did not narrow to one item.
	ErrAmbiguous = errors.New("ambiguous query")
)

// AmbiguousError carries the candidate counts for a query that did
// not resolve to exactly one item.
type AmbiguousError struct {
	Query           string
	IdentCandidates int
	NameCandidates  int
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("%v: %d identifiers and %d names starting with %q",
		ErrAmbiguous, e.IdentCandidates, e.NameCandidates, e.Query)
}

func (e *AmbiguousError) Unwrap() error {
	return ErrAmbiguous
}
