package gtfsdb

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// activeServicesCTE selects the service ids running on :date: services whose
// validity window contains the date and whose weekly bit for the date's
// weekday is set, plus services added by an exception for that exact date,
// minus services removed by one. Exceptions override the weekly pattern for
// the single date only.
//
// The weekday column is interpolated from a fixed switch, never from input.
const activeServicesCTE = `
	WITH active_services AS (
		SELECT c.service_id
		FROM calendar c
		WHERE :date BETWEEN c.start_date AND c.end_date
		  AND c.%s = 1
		UNION
		SELECT service_id FROM calendar_dates
		WHERE date = :date AND exception_type = 1
		EXCEPT
		SELECT service_id FROM calendar_dates
		WHERE date = :date AND exception_type = 2
	)
`

// weekdayColumn maps a YYYY-MM-DD date to its calendar table column name
func weekdayColumn(date string) (string, error) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", fmt.Errorf("invalid service date %q: %w", date, err)
	}
	switch d.Weekday() {
	case time.Monday:
		return "monday", nil
	case time.Tuesday:
		return "tuesday", nil
	case time.Wednesday:
		return "wednesday", nil
	case time.Thursday:
		return "thursday", nil
	case time.Friday:
		return "friday", nil
	case time.Saturday:
		return "saturday", nil
	default:
		return "sunday", nil
	}
}

// activeServicesPrefix renders the CTE for the given date, ready to prepend
// to a query that joins against active_services.
func activeServicesPrefix(date string) (string, error) {
	col, err := weekdayColumn(date)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(activeServicesCTE, col), nil
}

// ActiveServiceIDs computes the set of service ids active on the given date.
// The result is recomputed on every call; nothing is cached between dates.
func (c *Client) ActiveServiceIDs(ctx context.Context, date string) ([]string, error) {
	prefix, err := activeServicesPrefix(date)
	if err != nil {
		return nil, err
	}

	rows, err := c.DB.QueryContext(ctx,
		prefix+"SELECT service_id FROM active_services ORDER BY service_id;",
		sql.Named("date", date))
	if err != nil {
		return nil, fmt.Errorf("error querying active services: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning service id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
