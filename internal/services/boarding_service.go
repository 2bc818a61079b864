package services

import (
	"context"
	"fmt"

	"airline/internal/domain"
	"airline/internal/domain/models"
	"airline/internal/repositories"
	"airline/internal/utils"
)

// BoardingService runs the per-flight FIFO boarding queue. Positions are
// zero-based and kept dense by renumbering after every removal.
type BoardingService struct {
	Store      repositories.Store
	FetchLimit int
	RequestID  string
}

// Enqueue appends ticketID to the flight's queue and returns its position.
func (s BoardingService) Enqueue(ctx context.Context, flightID, ticketID string) (int, error) {
	p, err := s.Store.Passengers.FindByTicket(ctx, ticketID)
	if err != nil {
		return 0, lookupErr(err, "passenger", "Passenger not found")
	}
	if p.FlightID != flightID {
		return 0, domain.ConflictError{Resource: "boarding_queue", Msg: "Passenger flight mismatch"}
	}
	if p.Status == models.StatusBoarded {
		return 0, domain.ConflictError{Resource: "boarding_queue", Msg: "Passenger already boarded"}
	}

	// count-then-insert: a concurrent enqueue may take the same position
	n, err := s.Store.Boarding.CountByFlight(ctx, flightID)
	if err != nil {
		return 0, storeErr(err)
	}
	item := models.BoardingQueueItem{
		TicketID:      ticketID,
		PassengerName: p.Name,
		FlightID:      flightID,
		Position:      int(n),
	}
	if err := s.Store.Boarding.Insert(ctx, item); err != nil {
		return 0, storeErr(err)
	}

	utils.LogEvent(s.RequestID, "boarding", "enqueue", fmt.Sprintf("flight_id=%s ticket_id=%s position=%d", flightID, ticketID, item.Position))
	return item.Position, nil
}

// Dequeue boards the passenger at the front of the queue.
func (s BoardingService) Dequeue(ctx context.Context, flightID string) (models.BoardingQueueItem, error) {
	front, err := s.Store.Boarding.Front(ctx, flightID)
	if err != nil {
		return models.BoardingQueueItem{}, lookupErr(err, "boarding_queue", "Queue is empty")
	}
	if err := s.Store.Boarding.Delete(ctx, front); err != nil {
		return models.BoardingQueueItem{}, storeErr(err)
	}
	if err := s.Store.Passengers.SetStatus(ctx, front.TicketID, models.StatusBoarded); err != nil {
		return models.BoardingQueueItem{}, storeErr(err)
	}
	if err := renumberQueue(ctx, s.Store, flightID, s.FetchLimit); err != nil {
		return models.BoardingQueueItem{}, err
	}

	utils.LogEvent(s.RequestID, "boarding", "dequeue", "flight_id="+flightID+" ticket_id="+front.TicketID)
	return front, nil
}

func (s BoardingService) List(ctx context.Context, flightID string) ([]models.BoardingQueueItem, error) {
	items, err := s.Store.Boarding.ListByFlight(ctx, flightID, fetchLimit(s.FetchLimit))
	return items, storeErr(err)
}
