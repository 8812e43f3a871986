package gtfsdb

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jamespfennell/gtfs"
)

// processAndStoreGTFSData parses a static GTFS zip and loads the schedule
// tables, then builds the fuzzy-name index over the loaded rows.
func (c *Client) processAndStoreGTFSData(ctx context.Context, b []byte) error {
	startTime := time.Now()
	defer func() {
		c.importRuntime = time.Since(startTime)

		if c.config.verbose {
			log.Println("Importing GTFS data took", c.importRuntime.String())
		}
	}()

	staticData, err := gtfs.ParseStatic(b, gtfs.ParseStaticOptions{})
	if err != nil {
		return fmt.Errorf("error parsing static GTFS data: %w", err)
	}

	if c.config.verbose {
		fmt.Printf("retrieved static data (warnings: %d)\n", len(staticData.Warnings))
	}

	var routes []Route
	for _, r := range staticData.Routes {
		routes = append(routes, Route{
			ID:        r.Id,
			ShortName: r.ShortName,
			LongName:  r.LongName,
		})
	}
	if err := c.InsertRoutes(ctx, routes); err != nil {
		return fmt.Errorf("error inserting routes: %w", err)
	}

	var stops []Stop
	for _, s := range staticData.Stops {
		stops = append(stops, Stop{
			ID:       s.Id,
			PaddedID: PadStopID(s.Id),
			Name:     s.Name,
		})
	}
	if err := c.InsertStops(ctx, stops); err != nil {
		return fmt.Errorf("error inserting stops: %w", err)
	}

	var calendars []Calendar
	var exceptions []CalendarDate
	for _, s := range staticData.Services {
		calendars = append(calendars, Calendar{
			ServiceID: s.Id,
			Monday:    boolToInt(s.Monday),
			Tuesday:   boolToInt(s.Tuesday),
			Wednesday: boolToInt(s.Wednesday),
			Thursday:  boolToInt(s.Thursday),
			Friday:    boolToInt(s.Friday),
			Saturday:  boolToInt(s.Saturday),
			Sunday:    boolToInt(s.Sunday),
			StartDate: s.StartDate.Format("2006-01-02"),
			EndDate:   s.EndDate.Format("2006-01-02"),
		})
		for _, d := range s.AddedDates {
			exceptions = append(exceptions, CalendarDate{
				ServiceID:     s.Id,
				Date:          d.Format("2006-01-02"),
				ExceptionType: ExceptionAdd,
			})
		}
		for _, d := range s.RemovedDates {
			exceptions = append(exceptions, CalendarDate{
				ServiceID:     s.Id,
				Date:          d.Format("2006-01-02"),
				ExceptionType: ExceptionRemove,
			})
		}
	}
	if err := c.InsertCalendars(ctx, calendars); err != nil {
		return fmt.Errorf("error inserting calendars: %w", err)
	}
	if err := c.InsertCalendarDates(ctx, exceptions); err != nil {
		return fmt.Errorf("error inserting calendar dates: %w", err)
	}

	var trips []Trip
	var stopTimes []StopTime
	for _, t := range staticData.Trips {
		trips = append(trips, Trip{
			ID:        t.ID,
			RouteID:   t.Route.Id,
			ServiceID: t.Service.Id,
			Headsign:  t.Headsign,
		})
		for _, st := range t.StopTimes {
			stopTimes = append(stopTimes, StopTime{
				TripID:        t.ID,
				StopID:        st.Stop.Id,
				StopSequence:  st.StopSequence,
				ArrivalTime:   FormatScheduleTime(st.ArrivalTime),
				DepartureTime: FormatScheduleTime(st.DepartureTime),
			})
		}
	}
	if err := c.InsertTrips(ctx, trips); err != nil {
		return fmt.Errorf("error inserting trips: %w", err)
	}
	if err := c.InsertStopTimes(ctx, stopTimes); err != nil {
		return fmt.Errorf("error inserting stop times: %w", err)
	}

	if err := c.BuildFuzzyIndex(ctx); err != nil {
		return fmt.Errorf("error building fuzzy index: %w", err)
	}

	if c.config.verbose {
		counts, err := c.TableCounts(ctx)
		if err != nil {
			return fmt.Errorf("error counting tables: %w", err)
		}
		for k, v := range counts {
			fmt.Printf("%s: %d\n", k, v)
		}
	}

	return nil
}

// FormatScheduleTime renders a stop-time offset as a zero-padded HH:MM:SS
// string. Hours exceed 24 for stop times after midnight, which keeps them
// ordered after evening times on the same service day.
func FormatScheduleTime(d time.Duration) string {
	total := int(d / time.Second)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// PadStopID zero-fills numeric stop ids to four characters to match the
// rider-facing ids printed on stop signage. Non-numeric ids pass through.
func PadStopID(id string) string {
	if id == "" {
		return id
	}
	for _, ch := range id {
		if ch < '0' || ch > '9' {
			return id
		}
	}
	for len(id) < 4 {
		id = "0" + id
	}
	return id
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
