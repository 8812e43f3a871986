package gtfsdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// FirstDeparture returns the earliest active-service departure time for the
// route at the stop on the given date. The second return value is false when
// the route does not serve the stop that day.
func (c *Client) FirstDeparture(ctx context.Context, routeShortName, stopPaddedID, date string) (string, bool, error) {
	return c.boundaryDeparture(ctx, routeShortName, stopPaddedID, date, "MIN")
}

// LastDeparture returns the latest active-service departure time for the
// route at the stop on the given date.
func (c *Client) LastDeparture(ctx context.Context, routeShortName, stopPaddedID, date string) (string, bool, error) {
	return c.boundaryDeparture(ctx, routeShortName, stopPaddedID, date, "MAX")
}

func (c *Client) boundaryDeparture(ctx context.Context, routeShortName, stopPaddedID, date, agg string) (string, bool, error) {
	prefix, err := activeServicesPrefix(date)
	if err != nil {
		return "", false, err
	}

	query := prefix + fmt.Sprintf(`
		SELECT %s(st.departure_time)
		FROM stops s
		JOIN stop_times st ON st.stop_id = s.stop_id
		JOIN trips t ON t.trip_id = st.trip_id
		JOIN routes r ON r.route_id = t.route_id
		JOIN active_services a ON a.service_id = t.service_id
		WHERE r.route_short_name = :route
		  AND s.stop_id_padded = :stop;
	`, agg)

	var result sql.NullString
	err = c.DB.QueryRowContext(ctx, query,
		sql.Named("date", date),
		sql.Named("route", routeShortName),
		sql.Named("stop", stopPaddedID),
	).Scan(&result)
	if err != nil {
		return "", false, fmt.Errorf("error querying %s departure: %w", agg, err)
	}
	if !result.Valid {
		return "", false, nil
	}
	return result.String, true, nil
}

// NextDeparturesPerHeadsign returns, for each distinct headsign of the route
// at the stop, the earliest active-service departure at or after the floor
// time, ordered by departure time. One row per direction, not just the single
// next bus overall.
func (c *Client) NextDeparturesPerHeadsign(ctx context.Context, routeShortName, stopPaddedID, date, floor string) ([]DirectionDeparture, error) {
	prefix, err := activeServicesPrefix(date)
	if err != nil {
		return nil, err
	}

	query := prefix + `,
	ranked AS (
		SELECT st.departure_time, t.trip_headsign,
		       ROW_NUMBER() OVER (PARTITION BY t.trip_headsign ORDER BY st.departure_time) AS rn
		FROM stops s
		JOIN stop_times st ON st.stop_id = s.stop_id
		JOIN trips t ON t.trip_id = st.trip_id
		JOIN routes r ON r.route_id = t.route_id
		JOIN active_services a ON a.service_id = t.service_id
		WHERE r.route_short_name = :route
		  AND s.stop_id_padded = :stop
		  AND st.departure_time >= :floor
	)
	SELECT departure_time, trip_headsign
	FROM ranked
	WHERE rn = 1
	ORDER BY departure_time;
	`

	rows, err := c.DB.QueryContext(ctx, query,
		sql.Named("date", date),
		sql.Named("route", routeShortName),
		sql.Named("stop", stopPaddedID),
		sql.Named("floor", floor),
	)
	if err != nil {
		return nil, fmt.Errorf("error querying next departures: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	var departures []DirectionDeparture
	for rows.Next() {
		var d DirectionDeparture
		var headsign sql.NullString
		if err := rows.Scan(&d.DepartureTime, &headsign); err != nil {
			return nil, fmt.Errorf("error scanning departure: %w", err)
		}
		d.Headsign = headsign.String
		departures = append(departures, d)
	}
	return departures, rows.Err()
}

// TransferStopIDs computes the feasible-transfer-stop set for a destination:
// every stop that appears on some active trip at an earlier sequence position
// than the destination. The set is derived from the destination's trip
// membership alone, independent of any particular first leg; that makes it an
// over-approximation used for pruning, which is deliberate.
func (c *Client) TransferStopIDs(ctx context.Context, date, toStopID string) (map[string]bool, error) {
	prefix, err := activeServicesPrefix(date)
	if err != nil {
		return nil, err
	}

	query := prefix + `
	SELECT DISTINCT st_from.stop_id
	FROM stop_times st_from
	JOIN stop_times st_to ON st_to.trip_id = st_from.trip_id
	JOIN trips t ON t.trip_id = st_from.trip_id
	JOIN active_services a ON a.service_id = t.service_id
	WHERE st_to.stop_id = :to_stop
	  AND st_from.stop_sequence < st_to.stop_sequence;
	`

	rows, err := c.DB.QueryContext(ctx, query,
		sql.Named("date", date),
		sql.Named("to_stop", toStopID),
	)
	if err != nil {
		return nil, fmt.Errorf("error querying transfer stops: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	stopIDs := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning transfer stop: %w", err)
		}
		stopIDs[id] = true
	}
	return stopIDs, rows.Err()
}

// FirstLegCandidates enumerates active boarding opportunities at the origin
// with departure time at or after the floor, earliest first, capped to limit.
func (c *Client) FirstLegCandidates(ctx context.Context, date, fromStopID, floor string, limit int) ([]FirstLegCandidate, error) {
	prefix, err := activeServicesPrefix(date)
	if err != nil {
		return nil, err
	}

	query := prefix + `
	SELECT st.trip_id, st.departure_time, st.stop_sequence,
	       r.route_short_name, t.trip_headsign
	FROM stop_times st
	JOIN trips t ON t.trip_id = st.trip_id
	JOIN routes r ON r.route_id = t.route_id
	JOIN active_services a ON a.service_id = t.service_id
	WHERE st.stop_id = :from_stop
	  AND st.departure_time >= :floor
	ORDER BY st.departure_time
	LIMIT :limit;
	`

	rows, err := c.DB.QueryContext(ctx, query,
		sql.Named("date", date),
		sql.Named("from_stop", fromStopID),
		sql.Named("floor", floor),
		sql.Named("limit", limit),
	)
	if err != nil {
		return nil, fmt.Errorf("error querying first-leg candidates: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	var candidates []FirstLegCandidate
	for rows.Next() {
		var fc FirstLegCandidate
		var headsign sql.NullString
		if err := rows.Scan(&fc.TripID, &fc.DepartureTime, &fc.StopSequence, &fc.RouteShortName, &headsign); err != nil {
			return nil, fmt.Errorf("error scanning first-leg candidate: %w", err)
		}
		fc.Headsign = headsign.String
		candidates = append(candidates, fc)
	}
	return candidates, rows.Err()
}

// TripStopsAfter returns the stop-time events of a trip strictly after the
// given sequence position, in sequence order.
func (c *Client) TripStopsAfter(ctx context.Context, tripID string, seq int) ([]TripStop, error) {
	rows, err := c.DB.QueryContext(ctx, `
		SELECT stop_id, arrival_time, stop_sequence
		FROM stop_times
		WHERE trip_id = ? AND stop_sequence > ?
		ORDER BY stop_sequence;
	`, tripID, seq)
	if err != nil {
		return nil, fmt.Errorf("error querying trip stops: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	var stops []TripStop
	for rows.Next() {
		var ts TripStop
		if err := rows.Scan(&ts.StopID, &ts.ArrivalTime, &ts.StopSequence); err != nil {
			return nil, fmt.Errorf("error scanning trip stop: %w", err)
		}
		stops = append(stops, ts)
	}
	return stops, rows.Err()
}

// EarliestConnection finds the single earliest-arriving active trip that
// departs the transfer stop at or after minDepart and reaches the destination
// at a strictly later sequence position. Returns nil when no such trip runs.
func (c *Client) EarliestConnection(ctx context.Context, date, transferStopID, toStopID, minDepart string) (*Connection, error) {
	prefix, err := activeServicesPrefix(date)
	if err != nil {
		return nil, err
	}

	query := prefix + `
	SELECT st_from.departure_time, st_to.arrival_time,
	       r.route_short_name, t.trip_headsign
	FROM stop_times st_from
	JOIN stop_times st_to ON st_to.trip_id = st_from.trip_id
	JOIN trips t ON t.trip_id = st_from.trip_id
	JOIN routes r ON r.route_id = t.route_id
	JOIN active_services a ON a.service_id = t.service_id
	WHERE st_from.stop_id = :transfer_stop
	  AND st_to.stop_id = :to_stop
	  AND st_from.stop_sequence < st_to.stop_sequence
	  AND st_from.departure_time >= :min_depart
	ORDER BY st_to.arrival_time
	LIMIT 1;
	`

	var conn Connection
	var headsign sql.NullString
	err = c.DB.QueryRowContext(ctx, query,
		sql.Named("date", date),
		sql.Named("transfer_stop", transferStopID),
		sql.Named("to_stop", toStopID),
		sql.Named("min_depart", minDepart),
	).Scan(&conn.DepartureTime, &conn.ArrivalTime, &conn.RouteShortName, &headsign)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error querying connection: %w", err)
	}
	conn.Headsign = headsign.String
	return &conn, nil
}
