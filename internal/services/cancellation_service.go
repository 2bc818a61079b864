package services

import (
	"context"
	"errors"

	"airline/internal/domain"
	"airline/internal/domain/models"
	"airline/internal/repositories"
	"airline/internal/utils"
)

// CancellationService is a LIFO stack over the timestamped cancellation log.
type CancellationService struct {
	Store      repositories.Store
	FetchLimit int
	RequestID  string
}

// Push cancels a ticket: log entry, status, queue removal, seat release.
// The steps are independent writes and are not rolled back on failure.
func (s CancellationService) Push(ctx context.Context, ticketID string) (models.CancellationItem, error) {
	p, err := s.Store.Passengers.FindByTicket(ctx, ticketID)
	if err != nil {
		return models.CancellationItem{}, lookupErr(err, "passenger", "Passenger not found")
	}
	if p.Status == models.StatusCancelled {
		return models.CancellationItem{}, domain.ConflictError{Resource: "cancellation", Msg: "Ticket already cancelled"}
	}

	item := models.CancellationItem{
		TicketID:      ticketID,
		PassengerName: p.Name,
		FlightID:      p.FlightID,
		Timestamp:     utils.TimestampNow(),
	}
	if err := s.Store.Cancellations.Insert(ctx, item); err != nil {
		return models.CancellationItem{}, storeErr(err)
	}
	if err := s.Store.Passengers.SetStatus(ctx, ticketID, models.StatusCancelled); err != nil {
		return models.CancellationItem{}, storeErr(err)
	}

	removed, err := s.Store.Boarding.DeleteByTicket(ctx, ticketID)
	if err != nil {
		return models.CancellationItem{}, storeErr(err)
	}
	if removed > 0 {
		if err := renumberQueue(ctx, s.Store, p.FlightID, s.FetchLimit); err != nil {
			return models.CancellationItem{}, err
		}
	}

	flight, err := s.Store.Flights.FindByID(ctx, p.FlightID)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		// flight deleted after booking; nothing to release
	case err != nil:
		return models.CancellationItem{}, storeErr(err)
	case flight.BookedSeats > 0:
		if err := s.Store.Flights.IncrementBooked(ctx, p.FlightID, -1); err != nil {
			return models.CancellationItem{}, storeErr(err)
		}
	}

	utils.LogEvent(s.RequestID, "cancellation", "push", "ticket_id="+ticketID+" flight_id="+p.FlightID)
	return item, nil
}

// Pop removes the most recent log entry. Passenger and flight state stay as
// Push left them.
func (s CancellationService) Pop(ctx context.Context) (models.CancellationItem, error) {
	latest, err := s.Store.Cancellations.Latest(ctx)
	if err != nil {
		return models.CancellationItem{}, lookupErr(err, "cancellation", "No cancellations found")
	}
	if err := s.Store.Cancellations.Delete(ctx, latest); err != nil {
		return models.CancellationItem{}, storeErr(err)
	}
	utils.LogEvent(s.RequestID, "cancellation", "pop", "ticket_id="+latest.TicketID)
	return latest, nil
}

func (s CancellationService) List(ctx context.Context) ([]models.CancellationItem, error) {
	items, err := s.Store.Cancellations.ListRecent(ctx, fetchLimit(s.FetchLimit))
	return items, storeErr(err)
}
