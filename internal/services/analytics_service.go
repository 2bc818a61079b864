package services

import (
	"context"

	"airline/internal/domain/models"
	"airline/internal/repositories"
	"airline/internal/views"
)

type AnalyticsService struct {
	Store      repositories.Store
	FetchLimit int
	RequestID  string
}

// Summary reads counts and lists one after another; the result is not a
// consistent snapshot under concurrent writes.
func (s AnalyticsService) Summary(ctx context.Context) (models.Analytics, error) {
	limit := fetchLimit(s.FetchLimit)

	airports, err := s.Store.Airports.Count(ctx)
	if err != nil {
		return models.Analytics{}, storeErr(err)
	}
	flightCount, err := s.Store.Flights.Count(ctx)
	if err != nil {
		return models.Analytics{}, storeErr(err)
	}
	passengers, err := s.Store.Passengers.List(ctx, limit)
	if err != nil {
		return models.Analytics{}, storeErr(err)
	}
	flights, err := s.Store.Flights.List(ctx, limit)
	if err != nil {
		return models.Analytics{}, storeErr(err)
	}
	return views.Summarize(int(airports), int(flightCount), passengers, flights), nil
}
