package gtfsdb

import (
	"context"
	"fmt"
	"strings"
	"unicode"
)

// NormalizeText lowercases, replaces every non-alphanumeric, non-space rune
// with a space, and collapses runs of whitespace. The same normalization is
// applied when the fuzzy index is built and when it is queried, so the two
// sides always agree on token boundaries.
func NormalizeText(text string) string {
	var b strings.Builder
	for _, ch := range strings.ToLower(strings.TrimSpace(text)) {
		if unicode.IsLetter(ch) || unicode.IsDigit(ch) || unicode.IsSpace(ch) {
			b.WriteRune(ch)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// FuzzyPattern builds the LIKE pattern that requires every token of the
// normalized phrase to appear in order, with arbitrary text between and
// around them. Returns "" when the phrase normalizes to nothing.
func FuzzyPattern(text string) string {
	norm := NormalizeText(text)
	if norm == "" {
		return ""
	}
	return "%" + strings.Join(strings.Fields(norm), "%") + "%"
}

// BuildFuzzyIndex rebuilds the normalized-name lookup table from the loaded
// stops, routes and trip headsigns. Run once at import time; the answering
// side only reads it.
func (c *Client) BuildFuzzyIndex(ctx context.Context) error {
	tx, err := c.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM fuzzy_lookup;"); err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error clearing fuzzy index: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO fuzzy_lookup (entity_type, entity_id, display_name, normalized)
		VALUES (?, ?, ?, ?);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	insert := func(entityType, entityID, displayName string) error {
		if displayName == "" {
			return nil
		}
		_, err := stmt.ExecContext(ctx, entityType, entityID, displayName, NormalizeText(displayName))
		return err
	}

	stopRows, err := tx.QueryContext(ctx, "SELECT stop_id, stop_name FROM stops;")
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error reading stops: %w", err)
	}
	var stopEntries [][2]string
	for stopRows.Next() {
		var id, name string
		if err := stopRows.Scan(&id, &name); err != nil {
			stopRows.Close() // nolint:errcheck
			tx.Rollback()    // nolint:errcheck
			return fmt.Errorf("error scanning stop: %w", err)
		}
		stopEntries = append(stopEntries, [2]string{id, name})
	}
	stopRows.Close() // nolint:errcheck
	for _, e := range stopEntries {
		if err := insert("stop", e[0], e[1]); err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error indexing stop: %w", err)
		}
	}

	routeRows, err := tx.QueryContext(ctx, "SELECT route_id, route_short_name, route_long_name FROM routes;")
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error reading routes: %w", err)
	}
	var routeEntries [][3]string
	for routeRows.Next() {
		var id, short, long string
		if err := routeRows.Scan(&id, &short, &long); err != nil {
			routeRows.Close() // nolint:errcheck
			tx.Rollback()     // nolint:errcheck
			return fmt.Errorf("error scanning route: %w", err)
		}
		routeEntries = append(routeEntries, [3]string{id, short, long})
	}
	routeRows.Close() // nolint:errcheck
	for _, e := range routeEntries {
		if err := insert("route", e[0], e[1]); err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error indexing route: %w", err)
		}
		if err := insert("route", e[0], e[2]); err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error indexing route: %w", err)
		}
	}

	headsignRows, err := tx.QueryContext(ctx,
		"SELECT DISTINCT trip_headsign FROM trips WHERE trip_headsign IS NOT NULL AND trip_headsign != '';")
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error reading headsigns: %w", err)
	}
	var headsigns []string
	for headsignRows.Next() {
		var h string
		if err := headsignRows.Scan(&h); err != nil {
			headsignRows.Close() // nolint:errcheck
			tx.Rollback()        // nolint:errcheck
			return fmt.Errorf("error scanning headsign: %w", err)
		}
		headsigns = append(headsigns, h)
	}
	headsignRows.Close() // nolint:errcheck
	for _, h := range headsigns {
		if err := insert("headsign", "", h); err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error indexing headsign: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}
