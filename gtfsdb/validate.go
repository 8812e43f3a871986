package gtfsdb

import (
	"context"
	"fmt"
)

// ValidationReport summarizes the integrity of a loaded snapshot
type ValidationReport struct {
	TableCounts       map[string]int64
	OrphanedStopTimes int64 // stop_times referencing a missing trip or stop
	UncoveredTrips    int64 // trips whose service id has no calendar row
	UnindexedStops    int64 // stops missing from the fuzzy index
}

// OK reports whether the snapshot has no integrity findings
func (r ValidationReport) OK() bool {
	return r.OrphanedStopTimes == 0 && r.UncoveredTrips == 0 && r.UnindexedStops == 0
}

// TableCounts returns the row count of every schedule table
func (c *Client) TableCounts(ctx context.Context) (map[string]int64, error) {
	tables := []string{"routes", "stops", "trips", "stop_times", "calendar", "calendar_dates", "fuzzy_lookup"}

	counts := make(map[string]int64, len(tables))
	for _, table := range tables {
		var n int64
		// table names come from the fixed list above, never from input
		err := c.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table+";").Scan(&n)
		if err != nil {
			return nil, fmt.Errorf("error counting %s: %w", table, err)
		}
		counts[table] = n
	}
	return counts, nil
}

// Validate checks the loaded snapshot for referential problems that would
// make answering queries unreliable.
func (c *Client) Validate(ctx context.Context) (ValidationReport, error) {
	report := ValidationReport{}

	counts, err := c.TableCounts(ctx)
	if err != nil {
		return report, err
	}
	report.TableCounts = counts

	err = c.DB.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM stop_times st
		LEFT JOIN trips t ON t.trip_id = st.trip_id
		LEFT JOIN stops s ON s.stop_id = st.stop_id
		WHERE t.trip_id IS NULL OR s.stop_id IS NULL;
	`).Scan(&report.OrphanedStopTimes)
	if err != nil {
		return report, fmt.Errorf("error counting orphaned stop times: %w", err)
	}

	err = c.DB.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM trips t
		LEFT JOIN calendar c ON c.service_id = t.service_id
		LEFT JOIN calendar_dates cd ON cd.service_id = t.service_id
		WHERE c.service_id IS NULL AND cd.service_id IS NULL;
	`).Scan(&report.UncoveredTrips)
	if err != nil {
		return report, fmt.Errorf("error counting uncovered trips: %w", err)
	}

	err = c.DB.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM stops s
		LEFT JOIN fuzzy_lookup f ON f.entity_type = 'stop' AND f.entity_id = s.stop_id
		WHERE f.entity_id IS NULL;
	`).Scan(&report.UnindexedStops)
	if err != nil {
		return report, fmt.Errorf("error counting unindexed stops: %w", err)
	}

	return report, nil
}
