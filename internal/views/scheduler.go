package views

import (
	"container/heap"

	"airline/internal/domain/models"
)

type flightEntry struct {
	flight models.FlightRoute
	index  int
}

// departureHeap is a min-heap on departure_time. index breaks ties so equal
// times come out in input order.
type departureHeap []flightEntry

func (h departureHeap) Len() int { return len(h) }

func (h departureHeap) Less(i, j int) bool {
	if h[i].flight.DepartureTime != h[j].flight.DepartureTime {
		return h[i].flight.DepartureTime < h[j].flight.DepartureTime
	}
	return h[i].index < h[j].index
}

func (h departureHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *departureHeap) Push(x any) { *h = append(*h, x.(flightEntry)) }

func (h *departureHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// ScheduleByDeparture heapifies the flights and extracts the minimum until
// empty, giving ascending departure_time order.
func ScheduleByDeparture(flights []models.FlightRoute) []models.FlightRoute {
	h := make(departureHeap, len(flights))
	for i, f := range flights {
		h[i] = flightEntry{flight: f, index: i}
	}
	heap.Init(&h)

	out := make([]models.FlightRoute, 0, len(flights))
	for h.Len() > 0 {
		out = append(out, heap.Pop(&h).(flightEntry).flight)
	}
	return out
}

// NextDeparture returns the earliest flight, the first one on ties, or nil.
func NextDeparture(flights []models.FlightRoute) *models.FlightRoute {
	if len(flights) == 0 {
		return nil
	}
	best := flights[0]
	for _, f := range flights[1:] {
		if f.DepartureTime < best.DepartureTime {
			best = f
		}
	}
	return &best
}
