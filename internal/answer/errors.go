package answer

import (
	"errors"
	"fmt"
	"strings"
)

// Every failure in this package is recoverable at the query boundary: the
// caller gets a structured error it can render, never a fatal condition.
var (
	// ErrMissingRoute means the question needs a route number and has none
	ErrMissingRoute = errors.New(`please include a route number (e.g., "route 5")`)

	// ErrMissingTime means the question has a route but neither a time nor a
	// first/last keyword, so no departure query can be formed
	ErrMissingTime = errors.New(`please include a time (e.g., "around 7:30 am") or ask for the first/last departure`)

	// ErrMalformedRequest means a transfer question is missing its from/to clause
	ErrMalformedRequest = errors.New("I need both origin and destination (from X to Y)")
)

// maxAmbiguousCandidates caps the names carried by an AmbiguousStopError
const maxAmbiguousCandidates = 5

// AmbiguousStopError reports that a stop phrase matched more than one stop.
// Candidates holds at most maxAmbiguousCandidates names in stop-name order;
// the resolver never guesses between them.
type AmbiguousStopError struct {
	Role       string // "origin", "destination" or "stop"
	Phrase     string
	Route      string // optional route restriction in effect
	Candidates []string
}

func (e *AmbiguousStopError) Error() string {
	names := strings.Join(e.Candidates, ", ")
	if e.Route != "" {
		return fmt.Sprintf("multiple stops on route %s match %q: %s", e.Route, e.Phrase, names)
	}
	return fmt.Sprintf("multiple %s stops match %q: %s", e.Role, e.Phrase, names)
}

// StopNotFoundError reports that no stop matched across all resolution tiers,
// or that a stop identifier is absent from the store.
type StopNotFoundError struct {
	Role   string
	Phrase string
	Route  string
}

func (e *StopNotFoundError) Error() string {
	if e.Route != "" {
		return fmt.Sprintf("no %s stop matching %q found on route %s", e.Role, e.Phrase, e.Route)
	}
	return fmt.Sprintf("no %s stop matching %q found", e.Role, e.Phrase)
}
