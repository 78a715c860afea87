package bref

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPlayerNotFound is returned when no player in the index comes
// reasonably close to the requested name.
var ErrPlayerNotFound = errors.New("player not found")

// AmbiguousNameError is returned when more than one player matches the
// requested name equally well. Resolution never guesses between them.
type AmbiguousNameError struct {
	Name       string
	Candidates []string
}

func (e *AmbiguousNameError) Error() string {
	return fmt.Sprintf(
		"ambiguous player name %q: candidates %s",
		e.Name, strings.Join(e.Candidates, ", "),
	)
}

// ParseError is returned when a fetched page does not contain the
// structure the scraper expects, e.g. the shooting table is missing or
// the site layout changed.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "parse: " + e.Reason
}

// NetworkError wraps a transport failure. Fetches are never retried
// internally, the caller decides whether to try again.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("fetch %s: %s", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
