package gtfsdb

import (
	"context"
	"fmt"
)

// InsertRoutes adds routes to the database in a single transaction
func (c *Client) InsertRoutes(ctx context.Context, routes []Route) error {
	tx, err := c.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO routes (
			route_id, route_short_name, route_long_name
		) VALUES (?, ?, ?);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, route := range routes {
		_, err := stmt.ExecContext(ctx, route.ID, route.ShortName, route.LongName)
		if err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error inserting route: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// InsertStops adds stops to the database in a single transaction
func (c *Client) InsertStops(ctx context.Context, stops []Stop) error {
	tx, err := c.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO stops (
			stop_id, stop_id_padded, stop_name
		) VALUES (?, ?, ?);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, stop := range stops {
		_, err := stmt.ExecContext(ctx, stop.ID, stop.PaddedID, stop.Name)
		if err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error inserting stop: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// InsertCalendars adds weekly service patterns to the database
func (c *Client) InsertCalendars(ctx context.Context, calendars []Calendar) error {
	tx, err := c.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO calendar (
			service_id, monday, tuesday, wednesday, thursday,
			friday, saturday, sunday, start_date, end_date
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, cal := range calendars {
		_, err := stmt.ExecContext(ctx,
			cal.ServiceID, cal.Monday, cal.Tuesday, cal.Wednesday, cal.Thursday,
			cal.Friday, cal.Saturday, cal.Sunday, cal.StartDate, cal.EndDate,
		)
		if err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error inserting calendar: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// InsertCalendarDates adds per-date service exceptions to the database
func (c *Client) InsertCalendarDates(ctx context.Context, dates []CalendarDate) error {
	tx, err := c.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO calendar_dates (
			service_id, date, exception_type
		) VALUES (?, ?, ?);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, d := range dates {
		_, err := stmt.ExecContext(ctx, d.ServiceID, d.Date, d.ExceptionType)
		if err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error inserting calendar date: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// InsertTrips adds trips to the database in a single transaction
func (c *Client) InsertTrips(ctx context.Context, trips []Trip) error {
	tx, err := c.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO trips (
			trip_id, route_id, service_id, trip_headsign
		) VALUES (?, ?, ?, ?);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, trip := range trips {
		_, err := stmt.ExecContext(ctx, trip.ID, trip.RouteID, trip.ServiceID, trip.Headsign)
		if err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error inserting trip: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// InsertStopTimes adds stop-time events to the database in a single transaction
func (c *Client) InsertStopTimes(ctx context.Context, stopTimes []StopTime) error {
	tx, err := c.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO stop_times (
			trip_id, stop_id, stop_sequence, arrival_time, departure_time
		) VALUES (?, ?, ?, ?, ?);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, st := range stopTimes {
		_, err := stmt.ExecContext(ctx,
			st.TripID, st.StopID, st.StopSequence, st.ArrivalTime, st.DepartureTime,
		)
		if err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error inserting stop time: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}
