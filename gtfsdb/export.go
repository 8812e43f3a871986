package gtfsdb

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
)

// ExportStopsSummary writes a CSV of every stop with the route short names
// serving it, one row per stop, ordered by padded id. Intended for offline
// review of the loaded snapshot.
func (c *Client) ExportStopsSummary(ctx context.Context, w io.Writer) error {
	rows, err := c.DB.QueryContext(ctx, `
		SELECT s.stop_id_padded, s.stop_name,
		       COALESCE(GROUP_CONCAT(DISTINCT r.route_short_name), '')
		FROM stops s
		LEFT JOIN stop_times st ON st.stop_id = s.stop_id
		LEFT JOIN trips t ON t.trip_id = st.trip_id
		LEFT JOIN routes r ON r.route_id = t.route_id
		GROUP BY s.stop_id, s.stop_id_padded, s.stop_name
		ORDER BY s.stop_id_padded;
	`)
	if err != nil {
		return fmt.Errorf("error querying stops summary: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"stop_id_padded", "stop_name", "routes"}); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}

	for rows.Next() {
		var paddedID, name, routes string
		if err := rows.Scan(&paddedID, &name, &routes); err != nil {
			return fmt.Errorf("error scanning stop summary: %w", err)
		}
		if err := cw.Write([]string{paddedID, name, routes}); err != nil {
			return fmt.Errorf("error writing CSV row: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}
