package services

import (
	"context"

	"airline/internal/domain/models"
	"airline/internal/repositories"
	"airline/internal/views"
)

// SchedulerService lists flights in departure order through a min-heap.
type SchedulerService struct {
	Store      repositories.Store
	FetchLimit int
	RequestID  string
}

func (s SchedulerService) Heap(ctx context.Context) ([]models.FlightRoute, error) {
	flights, err := s.Store.Flights.List(ctx, fetchLimit(s.FetchLimit))
	if err != nil {
		return nil, storeErr(err)
	}
	return views.ScheduleByDeparture(flights), nil
}
