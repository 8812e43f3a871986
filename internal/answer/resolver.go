package answer

import (
	"context"
	"strings"

	"github.com/Rabelo83/rts-backend.schedules.agent/gtfsdb"
	"github.com/Rabelo83/rts-backend.schedules.agent/internal/config"
)

// StopResolver turns free-text stop references into exactly one canonical
// stop, or a structured ambiguity/not-found failure. Resolution runs an
// ordered chain of strategies and stops at the first tier that yields any
// match: configured aliases, then exact substring against stop names, then
// the fuzzy all-tokens index.
type StopResolver struct {
	store   *gtfsdb.Client
	aliases []config.AliasEntry
}

func NewStopResolver(store *gtfsdb.Client, aliases []config.AliasEntry) *StopResolver {
	return &StopResolver{store: store, aliases: aliases}
}

// matchFunc is one resolution tier: zero candidates fall through to the next
// tier, one resolves, several are an ambiguity failure.
type matchFunc func(ctx context.Context, phrase, routeShortName string) ([]gtfsdb.StopCandidate, error)

// Resolve resolves a stop reference. aliasText is the text scanned for
// configured aliases (for departure questions this is the whole question, for
// transfer questions the extracted from/to phrase); phrase feeds the substring
// and fuzzy tiers. role labels errors for the caller ("origin",
// "destination", "stop").
func (r *StopResolver) Resolve(ctx context.Context, aliasText, phrase, routeShortName, role string) (gtfsdb.StopCandidate, error) {
	tiers := []matchFunc{
		func(ctx context.Context, _, _ string) ([]gtfsdb.StopCandidate, error) {
			return r.aliasMatches(aliasText), nil
		},
		r.store.FindStopsByName,
		r.store.FindStopsFuzzy,
	}

	for _, tier := range tiers {
		candidates, err := tier(ctx, phrase, routeShortName)
		if err != nil {
			return gtfsdb.StopCandidate{}, err
		}
		switch len(candidates) {
		case 0:
			continue
		case 1:
			return candidates[0], nil
		default:
			names := make([]string, 0, maxAmbiguousCandidates)
			for _, c := range candidates {
				if len(names) == maxAmbiguousCandidates {
					break
				}
				names = append(names, c.Name)
			}
			return gtfsdb.StopCandidate{}, &AmbiguousStopError{
				Role:       role,
				Phrase:     phrase,
				Route:      routeShortName,
				Candidates: names,
			}
		}
	}

	return gtfsdb.StopCandidate{}, &StopNotFoundError{Role: role, Phrase: phrase, Route: routeShortName}
}

// aliasMatches checks whether any configured alias appears as a substring of
// the normalized text. Aliases are checked in configuration order and the
// first match wins, so at most one candidate is ever returned.
func (r *StopResolver) aliasMatches(text string) []gtfsdb.StopCandidate {
	norm := gtfsdb.NormalizeText(text)
	if norm == "" {
		return nil
	}
	for _, entry := range r.aliases {
		alias := gtfsdb.NormalizeText(entry.Alias)
		if alias != "" && strings.Contains(norm, alias) {
			return []gtfsdb.StopCandidate{{PaddedID: entry.StopIDPadded, Name: entry.StopName}}
		}
	}
	return nil
}
