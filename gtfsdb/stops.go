package gtfsdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by lookup queries when no row matches
var ErrNotFound = errors.New("not found")

// GetStopByPaddedID looks up a single stop by its rider-facing padded id
func (c *Client) GetStopByPaddedID(ctx context.Context, paddedID string) (Stop, error) {
	var stop Stop
	err := c.DB.QueryRowContext(ctx, `
		SELECT stop_id, stop_id_padded, stop_name
		FROM stops
		WHERE stop_id_padded = ?;
	`, paddedID).Scan(&stop.ID, &stop.PaddedID, &stop.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return Stop{}, ErrNotFound
	}
	if err != nil {
		return Stop{}, fmt.Errorf("error querying stop %q: %w", paddedID, err)
	}
	return stop, nil
}

// FindStopsByName returns stops whose name contains the phrase, ordered by
// stop name. SQLite LIKE ignores ASCII case, which is the behavior we want
// for rider-typed phrases. A non-empty routeShortName restricts the result to
// stops actually served by that route.
func (c *Client) FindStopsByName(ctx context.Context, phrase, routeShortName string) ([]StopCandidate, error) {
	like := "%" + phrase + "%"

	var rows *sql.Rows
	var err error
	if routeShortName != "" {
		rows, err = c.DB.QueryContext(ctx, `
			SELECT DISTINCT s.stop_id_padded, s.stop_name
			FROM stops s
			JOIN stop_times st ON st.stop_id = s.stop_id
			JOIN trips t ON t.trip_id = st.trip_id
			JOIN routes r ON r.route_id = t.route_id
			WHERE r.route_short_name = ?
			  AND s.stop_name LIKE ?
			ORDER BY s.stop_name;
		`, routeShortName, like)
	} else {
		rows, err = c.DB.QueryContext(ctx, `
			SELECT stop_id_padded, stop_name
			FROM stops
			WHERE stop_name LIKE ?
			ORDER BY stop_name;
		`, like)
	}
	if err != nil {
		return nil, fmt.Errorf("error querying stops by name: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	return scanStopCandidates(rows)
}

// FindStopsFuzzy matches the phrase against the normalized-name index,
// requiring every token to appear in order. Returns stops ordered by name.
func (c *Client) FindStopsFuzzy(ctx context.Context, phrase, routeShortName string) ([]StopCandidate, error) {
	pattern := FuzzyPattern(phrase)
	if pattern == "" {
		return nil, nil
	}

	var rows *sql.Rows
	var err error
	if routeShortName != "" {
		rows, err = c.DB.QueryContext(ctx, `
			SELECT DISTINCT s.stop_id_padded, s.stop_name
			FROM fuzzy_lookup f
			JOIN stops s ON s.stop_id = f.entity_id
			JOIN stop_times st ON st.stop_id = s.stop_id
			JOIN trips t ON t.trip_id = st.trip_id
			JOIN routes r ON r.route_id = t.route_id
			WHERE f.entity_type = 'stop'
			  AND f.normalized LIKE ?
			  AND r.route_short_name = ?
			ORDER BY s.stop_name;
		`, pattern, routeShortName)
	} else {
		rows, err = c.DB.QueryContext(ctx, `
			SELECT DISTINCT s.stop_id_padded, s.stop_name
			FROM fuzzy_lookup f
			JOIN stops s ON s.stop_id = f.entity_id
			WHERE f.entity_type = 'stop'
			  AND f.normalized LIKE ?
			ORDER BY s.stop_name;
		`, pattern)
	}
	if err != nil {
		return nil, fmt.Errorf("error querying fuzzy index: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	return scanStopCandidates(rows)
}

// StopNamesByID resolves display names for a set of native stop ids
func (c *Client) StopNamesByID(ctx context.Context, stopIDs []string) (map[string]string, error) {
	names := make(map[string]string, len(stopIDs))
	if len(stopIDs) == 0 {
		return names, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(stopIDs)), ",")
	args := make([]any, len(stopIDs))
	for i, id := range stopIDs {
		args[i] = id
	}

	rows, err := c.DB.QueryContext(ctx,
		"SELECT stop_id, stop_name FROM stops WHERE stop_id IN ("+placeholders+");", args...)
	if err != nil {
		return nil, fmt.Errorf("error querying stop names: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("error scanning stop name: %w", err)
		}
		names[id] = name
	}
	return names, rows.Err()
}

func scanStopCandidates(rows *sql.Rows) ([]StopCandidate, error) {
	var candidates []StopCandidate
	for rows.Next() {
		var sc StopCandidate
		if err := rows.Scan(&sc.PaddedID, &sc.Name); err != nil {
			return nil, fmt.Errorf("error scanning stop candidate: %w", err)
		}
		candidates = append(candidates, sc)
	}
	return candidates, rows.Err()
}
