package gtfsdb

// Stop represents a transit stop in the schedule snapshot. PaddedID is the
// rider-facing identifier: numeric stop ids zero-filled to four characters,
// non-numeric ids carried through unchanged.
type Stop struct {
	ID       string // stop_id
	PaddedID string // stop_id_padded
	Name     string // stop_name
}

// StopCandidate is a resolver match: just enough of a stop to identify it to
// a rider or to a downstream query.
type StopCandidate struct {
	PaddedID string
	Name     string
}

// Route represents a transit route in the schedule snapshot
type Route struct {
	ID        string // route_id
	ShortName string // route_short_name
	LongName  string // route_long_name
}

// Trip represents one scheduled run of a route
type Trip struct {
	ID        string // trip_id
	RouteID   string // route_id
	ServiceID string // service_id
	Headsign  string // trip_headsign
}

// StopTime represents a vehicle arrival/departure at a specific stop.
// Times are zero-padded HH:MM:SS wall-clock strings and may exceed 24:00:00
// for trips running past midnight; zero-padding makes lexicographic order
// equal temporal order.
type StopTime struct {
	TripID        string // trip_id
	StopID        string // stop_id
	StopSequence  int    // stop_sequence
	ArrivalTime   string // arrival_time
	DepartureTime string // departure_time
}

// Calendar represents the weekly service pattern for a service id.
// Dates are YYYY-MM-DD.
type Calendar struct {
	ServiceID string // service_id
	Monday    int    // monday
	Tuesday   int    // tuesday
	Wednesday int    // wednesday
	Thursday  int    // thursday
	Friday    int    // friday
	Saturday  int    // saturday
	Sunday    int    // sunday
	StartDate string // start_date (YYYY-MM-DD)
	EndDate   string // end_date (YYYY-MM-DD)
}

// Calendar exception types, per GTFS calendar_dates.txt.
const (
	ExceptionAdd    = 1
	ExceptionRemove = 2
)

// CalendarDate overrides the weekly pattern of a service for a single date
type CalendarDate struct {
	ServiceID     string // service_id
	Date          string // date (YYYY-MM-DD)
	ExceptionType int    // exception_type: 1 = added, 2 = removed
}

// FuzzyEntry is one row of the normalized-name lookup index used for fuzzy
// matching of stop names, route names and headsigns.
type FuzzyEntry struct {
	EntityType  string // "stop", "route" or "headsign"
	EntityID    string // native id of the entity, empty for headsigns
	DisplayName string
	Normalized  string
}

// FirstLegCandidate is a boarding opportunity at the origin stop: an active
// stop-time event with everything the journey search needs about the trip.
type FirstLegCandidate struct {
	TripID         string
	DepartureTime  string
	StopSequence   int
	RouteShortName string
	Headsign       string
}

// TripStop is one downstream stop-time event within a single trip
type TripStop struct {
	StopID       string
	ArrivalTime  string
	StopSequence int
}

// Connection is the earliest second leg from a transfer stop to the
// destination: departure from the transfer stop and arrival at the destination
type Connection struct {
	DepartureTime  string
	ArrivalTime    string
	RouteShortName string
	Headsign       string
}

// DirectionDeparture is the next departure for one distinct headsign
type DirectionDeparture struct {
	DepartureTime string
	Headsign      string
}
