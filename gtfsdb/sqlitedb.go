package gtfsdb

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/Rabelo83/rts-backend.schedules.agent/internal/appconf"
)

// InitDB creates a new SQLite database with the schedule tables and indexes
func InitDB(config Config) (*sql.DB, error) {
	if config.Env == appconf.Test && config.DBPath != ":memory:" {
		log.Fatal("DB is being created in a file.", config.DBPath)
	}

	db, err := sql.Open("sqlite", config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// An in-memory database exists per connection; a second pooled
	// connection would see an empty schema.
	if config.DBPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	_, err = db.Exec("PRAGMA foreign_keys = ON;")
	if err != nil {
		return nil, fmt.Errorf("error enabling foreign keys: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}

	createTables(tx)

	_, err = tx.Exec(`
		CREATE INDEX IF NOT EXISTS idx_stops_stop_id_padded ON stops(stop_id_padded);
		CREATE INDEX IF NOT EXISTS idx_trips_route_id ON trips(route_id);
		CREATE INDEX IF NOT EXISTS idx_trips_service_id ON trips(service_id);
		CREATE INDEX IF NOT EXISTS idx_stop_times_trip_id ON stop_times(trip_id);
		CREATE INDEX IF NOT EXISTS idx_stop_times_stop_id ON stop_times(stop_id);
		CREATE INDEX IF NOT EXISTS idx_calendar_dates_service_id ON calendar_dates(service_id);
		CREATE INDEX IF NOT EXISTS idx_calendar_dates_date ON calendar_dates(date);
		CREATE INDEX IF NOT EXISTS idx_fuzzy_lookup_normalized ON fuzzy_lookup(normalized);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return nil, fmt.Errorf("error creating indexes: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}

	return db, nil
}

func createTables(tx *sql.Tx) {
	createRoutesTable(tx)
	createStopsTable(tx)
	createCalendarTable(tx)
	createCalendarDatesTable(tx)
	createTripsTable(tx)
	createStopTimesTable(tx)
	createFuzzyLookupTable(tx)
}

// createTable creates a table in the database
func createTable(tx *sql.Tx, tableName string, createStmt string) {
	_, err := tx.Exec(createStmt)
	if err != nil {
		log.Fatalf("Error creating table %s: %v", tableName, err)
	}
}

func createRoutesTable(tx *sql.Tx) {
	createTable(tx, "routes", `
		CREATE TABLE IF NOT EXISTS routes (
			route_id TEXT PRIMARY KEY,
			route_short_name TEXT,
			route_long_name TEXT
		);`)
}

func createStopsTable(tx *sql.Tx) {
	createTable(tx, "stops", `
		CREATE TABLE IF NOT EXISTS stops (
			stop_id TEXT PRIMARY KEY,
			stop_id_padded TEXT NOT NULL,
			stop_name TEXT NOT NULL
		);`)
}

func createCalendarTable(tx *sql.Tx) {
	createTable(tx, "calendar", `
		CREATE TABLE IF NOT EXISTS calendar (
			service_id TEXT PRIMARY KEY,
			monday INTEGER NOT NULL,
			tuesday INTEGER NOT NULL,
			wednesday INTEGER NOT NULL,
			thursday INTEGER NOT NULL,
			friday INTEGER NOT NULL,
			saturday INTEGER NOT NULL,
			sunday INTEGER NOT NULL,
			start_date TEXT NOT NULL,
			end_date TEXT NOT NULL
		);`)
}

func createCalendarDatesTable(tx *sql.Tx) {
	createTable(tx, "calendar_dates", `
		CREATE TABLE IF NOT EXISTS calendar_dates (
			service_id TEXT NOT NULL,
			date TEXT NOT NULL,
			exception_type INTEGER NOT NULL,
			PRIMARY KEY (service_id, date)
		);`)
}

func createTripsTable(tx *sql.Tx) {
	createTable(tx, "trips", `
		CREATE TABLE IF NOT EXISTS trips (
			trip_id TEXT PRIMARY KEY,
			route_id TEXT NOT NULL,
			service_id TEXT NOT NULL,
			trip_headsign TEXT,
			FOREIGN KEY (route_id) REFERENCES routes(route_id)
		);`)
}

func createStopTimesTable(tx *sql.Tx) {
	createTable(tx, "stop_times", `
		CREATE TABLE IF NOT EXISTS stop_times (
			trip_id TEXT NOT NULL,
			stop_id TEXT NOT NULL,
			stop_sequence INTEGER NOT NULL,
			arrival_time TEXT NOT NULL,
			departure_time TEXT NOT NULL,
			PRIMARY KEY (trip_id, stop_sequence),
			FOREIGN KEY (trip_id) REFERENCES trips(trip_id),
			FOREIGN KEY (stop_id) REFERENCES stops(stop_id)
		);`)
}

func createFuzzyLookupTable(tx *sql.Tx) {
	createTable(tx, "fuzzy_lookup", `
		CREATE TABLE IF NOT EXISTS fuzzy_lookup (
			entity_type TEXT NOT NULL,
			entity_id TEXT,
			display_name TEXT NOT NULL,
			normalized TEXT NOT NULL
		);`)
}
