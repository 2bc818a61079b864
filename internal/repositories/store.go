package repositories

import (
	"context"
	"errors"

	"airline/internal/domain/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// AirportRepository stores airports keyed by code.
type AirportRepository interface {
	Insert(ctx context.Context, a models.Airport) error
	InsertMany(ctx context.Context, as []models.Airport) error
	FindByCode(ctx context.Context, code string) (models.Airport, error)
	List(ctx context.Context, limit int) ([]models.Airport, error)
	DeleteByCode(ctx context.Context, code string) (int64, error)
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
}

// FlightRepository stores flight routes keyed by flight_id.
type FlightRepository interface {
	Insert(ctx context.Context, f models.FlightRoute) error
	InsertMany(ctx context.Context, fs []models.FlightRoute) error
	FindByID(ctx context.Context, flightID string) (models.FlightRoute, error)
	List(ctx context.Context, limit int) ([]models.FlightRoute, error)
	DeleteByID(ctx context.Context, flightID string) (int64, error)
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
	// IncrementBooked adds delta to booked_seats without reading it first.
	IncrementBooked(ctx context.Context, flightID string, delta int) error
	SetBooked(ctx context.Context, flightID string, booked int) error
}

// PassengerRepository stores passengers keyed by ticket_id.
type PassengerRepository interface {
	Insert(ctx context.Context, p models.Passenger) error
	InsertMany(ctx context.Context, ps []models.Passenger) error
	FindByTicket(ctx context.Context, ticketID string) (models.Passenger, error)
	List(ctx context.Context, limit int) ([]models.Passenger, error)
	SetStatus(ctx context.Context, ticketID string, status models.PassengerStatus) error
	DeleteAll(ctx context.Context) error
}

// BoardingQueueRepository stores per-flight queue items with an explicit
// position. Reads by flight are ordered by position.
type BoardingQueueRepository interface {
	Insert(ctx context.Context, item models.BoardingQueueItem) error
	InsertMany(ctx context.Context, items []models.BoardingQueueItem) error
	ListByFlight(ctx context.Context, flightID string, limit int) ([]models.BoardingQueueItem, error)
	List(ctx context.Context, limit int) ([]models.BoardingQueueItem, error)
	CountByFlight(ctx context.Context, flightID string) (int64, error)
	// Front returns the item with the smallest position for the flight.
	Front(ctx context.Context, flightID string) (models.BoardingQueueItem, error)
	Delete(ctx context.Context, item models.BoardingQueueItem) error
	SetPosition(ctx context.Context, item models.BoardingQueueItem, position int) error
	DeleteByTicket(ctx context.Context, ticketID string) (int64, error)
	DeleteAll(ctx context.Context) error
}

// CancellationRepository stores the cancellation log. Reads are ordered most
// recent first.
type CancellationRepository interface {
	Insert(ctx context.Context, item models.CancellationItem) error
	InsertMany(ctx context.Context, items []models.CancellationItem) error
	Latest(ctx context.Context) (models.CancellationItem, error)
	ListRecent(ctx context.Context, limit int) ([]models.CancellationItem, error)
	Delete(ctx context.Context, item models.CancellationItem) error
	DeleteAll(ctx context.Context) error
}

// Store groups the five collections. It is passed by value into services.
type Store struct {
	Airports      AirportRepository
	Flights       FlightRepository
	Passengers    PassengerRepository
	Boarding      BoardingQueueRepository
	Cancellations CancellationRepository
}

// WipeAll empties every collection, one collection at a time.
func (s Store) WipeAll(ctx context.Context) error {
	steps := []func(context.Context) error{
		s.Airports.DeleteAll,
		s.Flights.DeleteAll,
		s.Passengers.DeleteAll,
		s.Boarding.DeleteAll,
		s.Cancellations.DeleteAll,
	}
	for _, step := range steps {
		if err := step(ctx); err != nil {
			return err
		}
	}
	return nil
}
