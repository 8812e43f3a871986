package answer

import (
	"fmt"
	"strings"
)

// RenderText converts a Result into rider-facing text lines. This is the only
// place the CLI shapes output; the HTTP boundary serializes the Result as-is.
func RenderText(result Result) string {
	switch r := result.(type) {
	case ItinerariesResult:
		lines := []string{fmt.Sprintf("Fastest options from %s to %s:", r.FromName, r.ToName)}
		if len(r.Options) == 0 {
			lines = append(lines, "No options found.")
		}
		for i, it := range r.Options {
			lines = append(lines, fmt.Sprintf("%d) %s %s %s -> %s %s; %s %s %s -> %s",
				i+1, it.FirstRoute, it.FirstHeadsign, it.FirstDepart,
				it.TransferStopName, it.TransferArrive,
				it.SecondRoute, it.SecondHeadsign, it.SecondDepart, it.FinalArrive))
		}
		return strings.Join(lines, "\n")

	case DepartureBoundResult:
		label := "First"
		if r.Kind == LastDeparture {
			label = "Last"
		}
		if r.Departure == nil {
			return fmt.Sprintf("%s departure for route %s from %s on %s: no service", label, r.Route, r.StopName, r.Date)
		}
		return fmt.Sprintf("%s departure for route %s from %s on %s: %s", label, r.Route, r.StopName, r.Date, *r.Departure)

	case NextDeparturesResult:
		lines := []string{fmt.Sprintf("Next departures for route %s from %s on %s after %s:",
			r.Route, r.StopName, r.Date, r.After)}
		if len(r.Departures) == 0 {
			lines = append(lines, "No departures found.")
		}
		for _, d := range r.Departures {
			lines = append(lines, fmt.Sprintf("- %s (%s)", d.Departure, d.Headsign))
		}
		return strings.Join(lines, "\n")

	default:
		return fmt.Sprintf("%v", result)
	}
}
