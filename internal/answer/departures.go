package answer

import (
	"context"

	"github.com/Rabelo83/rts-backend.schedules.agent/gtfsdb"
)

// DepartureQueries answers first/last/next-departure questions for a
// (route, stop, date) scope.
type DepartureQueries struct {
	store *gtfsdb.Client
}

func NewDepartureQueries(store *gtfsdb.Client) *DepartureQueries {
	return &DepartureQueries{store: store}
}

// Boundary returns the first or last active departure of the route at the
// stop on the date. Departure stays nil when the route does not serve the
// stop that day, which callers must surface as an explicit absence.
func (d *DepartureQueries) Boundary(ctx context.Context, kind Kind, routeShortName string, stop gtfsdb.StopCandidate, date string) (DepartureBoundResult, error) {
	result := DepartureBoundResult{
		Kind:     kind,
		Route:    routeShortName,
		StopName: stop.Name,
		Date:     date,
	}

	var departure string
	var found bool
	var err error
	if kind == FirstDeparture {
		departure, found, err = d.store.FirstDeparture(ctx, routeShortName, stop.PaddedID, date)
	} else {
		departure, found, err = d.store.LastDeparture(ctx, routeShortName, stop.PaddedID, date)
	}
	if err != nil {
		return result, err
	}
	if found {
		result.Departure = &departure
	}
	return result, nil
}

// NextPerDirection returns the next departure of the route at the stop for
// each distinct headsign, at or after the floor time.
func (d *DepartureQueries) NextPerDirection(ctx context.Context, routeShortName string, stop gtfsdb.StopCandidate, date, floor string) (NextDeparturesResult, error) {
	result := NextDeparturesResult{
		Route:      routeShortName,
		StopName:   stop.Name,
		Date:       date,
		After:      floor,
		Departures: []DirectionTime{},
	}

	rows, err := d.store.NextDeparturesPerHeadsign(ctx, routeShortName, stop.PaddedID, date, floor)
	if err != nil {
		return result, err
	}
	for _, row := range rows {
		result.Departures = append(result.Departures, DirectionTime{
			Departure: row.DepartureTime,
			Headsign:  row.Headsign,
		})
	}
	return result, nil
}
