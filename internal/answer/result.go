package answer

// Kind identifies the request kind extracted from a question
type Kind int

const (
	Unrecognized Kind = iota
	FastestTransfer
	FirstDeparture
	LastDeparture
	NextDeparture
)

func (k Kind) String() string {
	switch k {
	case FastestTransfer:
		return "fastest_transfer"
	case FirstDeparture:
		return "first_departure"
	case LastDeparture:
		return "last_departure"
	case NextDeparture:
		return "next_departure"
	default:
		return "unrecognized"
	}
}

// Result is the closed set of answer payloads. Presentation layers switch on
// the concrete type; the marker method keeps the set closed to this package.
type Result interface {
	isResult()
}

// Itinerary is a one-transfer journey: two trips joined at a transfer stop
type Itinerary struct {
	FirstRoute       string `json:"first_route"`
	FirstHeadsign    string `json:"first_headsign"`
	FirstDepart      string `json:"first_depart"`
	TransferStopID   string `json:"transfer_stop_id"`
	TransferStopName string `json:"transfer_stop_name"`
	TransferArrive   string `json:"transfer_arrive"`
	SecondRoute      string `json:"second_route"`
	SecondHeadsign   string `json:"second_headsign"`
	SecondDepart     string `json:"second_depart"`
	FinalArrive      string `json:"final_arrive"`
}

// ItinerariesResult carries the ranked one-transfer options for a journey
// question. Options are sorted by final arrival time ascending and may be
// empty when no connection exists.
type ItinerariesResult struct {
	FromName string      `json:"from_name"`
	ToName   string      `json:"to_name"`
	Date     string      `json:"date"`
	Options  []Itinerary `json:"options"`
}

// DepartureBoundResult answers a first- or last-departure question.
// Departure is nil when the route does not serve the stop on that date.
type DepartureBoundResult struct {
	Kind      Kind    `json:"-"`
	Route     string  `json:"route"`
	StopName  string  `json:"stop"`
	Date      string  `json:"date"`
	Departure *string `json:"departure"`
}

// DirectionTime is the next departure for one distinct headsign
type DirectionTime struct {
	Departure string `json:"departure"`
	Headsign  string `json:"headsign"`
}

// NextDeparturesResult answers a next-departure question with one row per
// distinct direction, ordered by departure time ascending.
type NextDeparturesResult struct {
	Route      string          `json:"route"`
	StopName   string          `json:"stop"`
	Date       string          `json:"date"`
	After      string          `json:"after"`
	Departures []DirectionTime `json:"next_by_direction"`
}

func (ItinerariesResult) isResult()    {}
func (DepartureBoundResult) isResult() {}
func (NextDeparturesResult) isResult() {}
