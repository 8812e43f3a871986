package answer

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/Rabelo83/rts-backend.schedules.agent/gtfsdb"
	"github.com/Rabelo83/rts-backend.schedules.agent/internal/logging"
)

// firstLegScanLimit bounds the number of origin departures examined per
// search. This is a deliberate approximation, not an optimality guarantee: a
// destination reachable only via the 121st-or-later qualifying departure will
// be missed. It keeps worst-case latency predictable on dense schedules.
const firstLegScanLimit = 120

// DefaultJourneyLimit is the number of itineraries returned when the caller
// does not ask for a specific count.
const DefaultJourneyLimit = 3

// JourneyPlanner computes the fastest one-transfer itineraries between two
// resolved stops. It only reads from the store; concurrent searches against
// the same snapshot need no coordination.
type JourneyPlanner struct {
	store  *gtfsdb.Client
	logger *slog.Logger
}

func NewJourneyPlanner(store *gtfsdb.Client, logger *slog.Logger) *JourneyPlanner {
	return &JourneyPlanner{store: store, logger: logger}
}

// FastestOneTransfer searches for up to limit one-transfer itineraries from
// fromPaddedID to toPaddedID on the given date, departing at or after floor.
// The result is sorted by final arrival time; ties keep enumeration order
// (origin departure ascending, then downstream discovery order) so repeated
// searches return identical output. A limit of zero or less returns an empty
// result without error.
func (p *JourneyPlanner) FastestOneTransfer(ctx context.Context, date, floor, fromPaddedID, toPaddedID string, limit int) (ItinerariesResult, error) {
	started := time.Now()

	fromStop, err := p.store.GetStopByPaddedID(ctx, fromPaddedID)
	if errors.Is(err, gtfsdb.ErrNotFound) {
		return ItinerariesResult{}, &StopNotFoundError{Role: "origin", Phrase: fromPaddedID}
	}
	if err != nil {
		return ItinerariesResult{}, err
	}

	toStop, err := p.store.GetStopByPaddedID(ctx, toPaddedID)
	if errors.Is(err, gtfsdb.ErrNotFound) {
		return ItinerariesResult{}, &StopNotFoundError{Role: "destination", Phrase: toPaddedID}
	}
	if err != nil {
		return ItinerariesResult{}, err
	}

	result := ItinerariesResult{
		FromName: fromStop.Name,
		ToName:   toStop.Name,
		Date:     date,
		Options:  []Itinerary{},
	}
	if limit <= 0 {
		return result, nil
	}

	// Stops from which the destination is reachable on some active trip
	// without a further transfer. Computed once from the destination's trip
	// membership, independent of any first leg; a transfer stop stays
	// eligible even if no first-leg candidate visits it. Intentional
	// pruning, preserved as-is.
	transferStops, err := p.store.TransferStopIDs(ctx, date, toStop.ID)
	if err != nil {
		return ItinerariesResult{}, err
	}

	firstLegs, err := p.store.FirstLegCandidates(ctx, date, fromStop.ID, floor, firstLegScanLimit)
	if err != nil {
		return ItinerariesResult{}, err
	}

	transferIDs := make([]string, 0, len(transferStops))
	for id := range transferStops {
		transferIDs = append(transferIDs, id)
	}
	transferNames, err := p.store.StopNamesByID(ctx, transferIDs)
	if err != nil {
		return ItinerariesResult{}, err
	}

	var candidates []Itinerary
	for _, leg := range firstLegs {
		downstream, err := p.store.TripStopsAfter(ctx, leg.TripID, leg.StopSequence)
		if err != nil {
			return ItinerariesResult{}, err
		}

		for _, ds := range downstream {
			if !transferStops[ds.StopID] {
				continue
			}

			conn, err := p.store.EarliestConnection(ctx, date, ds.StopID, toStop.ID, ds.ArrivalTime)
			if err != nil {
				return ItinerariesResult{}, err
			}
			if conn == nil {
				continue
			}

			name := transferNames[ds.StopID]
			if name == "" {
				name = ds.StopID
			}
			candidates = append(candidates, Itinerary{
				FirstRoute:       leg.RouteShortName,
				FirstHeadsign:    leg.Headsign,
				FirstDepart:      leg.DepartureTime,
				TransferStopID:   ds.StopID,
				TransferStopName: name,
				TransferArrive:   ds.ArrivalTime,
				SecondRoute:      conn.RouteShortName,
				SecondHeadsign:   conn.Headsign,
				SecondDepart:     conn.DepartureTime,
				FinalArrive:      conn.ArrivalTime,
			})
		}
	}

	// Stable sort keeps enumeration order among equal arrival times, then
	// duplicates by (first depart, transfer stop, second depart) collapse to
	// the first occurrence.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].FinalArrive < candidates[j].FinalArrive
	})

	seen := make(map[[3]string]bool, len(candidates))
	for _, it := range candidates {
		key := [3]string{it.FirstDepart, it.TransferStopID, it.SecondDepart}
		if seen[key] {
			continue
		}
		seen[key] = true
		result.Options = append(result.Options, it)
		if len(result.Options) == limit {
			break
		}
	}

	logging.LogOperation(p.logger, "journey_search",
		slog.String("date", date),
		slog.String("from", fromPaddedID),
		slog.String("to", toPaddedID),
		slog.Int("first_legs", len(firstLegs)),
		slog.Int("options", len(result.Options)),
		slog.Duration("duration", time.Since(started)),
	)

	return result, nil
}
