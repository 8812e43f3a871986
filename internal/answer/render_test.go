package answer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Rabelo83/rts-backend.schedules.agent/internal/answer"
)

func TestRenderItineraries(t *testing.T) {
	result := answer.ItinerariesResult{
		FromName: "Main Street Station",
		ToName:   "University Commons",
		Date:     "2026-01-31",
		Options: []answer.Itinerary{{
			FirstRoute:       "5",
			FirstHeadsign:    "Downtown",
			FirstDepart:      "14:55:00",
			TransferStopID:   "800",
			TransferStopName: "Transfer Center",
			TransferArrive:   "15:25:00",
			SecondRoute:      "10",
			SecondHeadsign:   "University",
			SecondDepart:     "15:30:00",
			FinalArrive:      "15:50:00",
		}},
	}

	text := answer.RenderText(result)
	assert.Contains(t, text, "Fastest options from Main Street Station to University Commons:")
	assert.Contains(t, text, "1) 5 Downtown 14:55:00 -> Transfer Center 15:25:00; 10 University 15:30:00 -> 15:50:00")

	empty := answer.ItinerariesResult{FromName: "A", ToName: "B"}
	assert.Contains(t, answer.RenderText(empty), "No options found.")
}

func TestRenderDepartureBound(t *testing.T) {
	departure := "22:00:00"
	result := answer.DepartureBoundResult{
		Kind:      answer.LastDeparture,
		Route:     "5",
		StopName:  "Main Street Station",
		Date:      "2026-01-30",
		Departure: &departure,
	}
	assert.Equal(t,
		"Last departure for route 5 from Main Street Station on 2026-01-30: 22:00:00",
		answer.RenderText(result))

	result.Kind = answer.FirstDeparture
	result.Departure = nil
	assert.Equal(t,
		"First departure for route 5 from Main Street Station on 2026-01-30: no service",
		answer.RenderText(result))
}

func TestRenderNextDepartures(t *testing.T) {
	result := answer.NextDeparturesResult{
		Route:    "5",
		StopName: "Main Street Station",
		Date:     "2026-01-30",
		After:    "07:15:00",
		Departures: []answer.DirectionTime{
			{Departure: "07:30:00", Headsign: "Airport"},
			{Departure: "08:00:00", Headsign: "Downtown"},
		},
	}

	text := answer.RenderText(result)
	assert.Contains(t, text, "Next departures for route 5 from Main Street Station on 2026-01-30 after 07:15:00:")
	assert.Contains(t, text, "- 07:30:00 (Airport)")
	assert.Contains(t, text, "- 08:00:00 (Downtown)")

	result.Departures = nil
	assert.Contains(t, answer.RenderText(result), "No departures found.")
}
