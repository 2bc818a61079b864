package services

import (
	"bytes"
	"context"
	"testing"

	"airline/internal/domain"
	"airline/internal/domain/models"
)

func TestDocsServiceBoardingPass(t *testing.T) {
	loader := func(_ context.Context, ticketID string) (boardingPassData, error) {
		return boardingPassData{
			Passenger: models.Passenger{
				TicketID:   ticketID,
				Name:       "Tester",
				Passport:   "P0000001",
				FlightID:   "AI101",
				SeatNumber: "1A",
				Status:     models.StatusPending,
			},
			Flight: &models.FlightRoute{
				FlightID:        "AI101",
				SourceCode:      "DEL",
				DestinationCode: "BOM",
				DepartureTime:   "08:00",
				TotalSeats:      180,
				BookedSeats:     2,
			},
			Position: 0,
		}, nil
	}

	svc := DocsService{Loader: loader}

	pdf, filename, err := svc.BoardingPass(context.Background(), "TKTABC12345")
	if err != nil {
		t.Fatalf("BoardingPass returned error: %v", err)
	}
	if len(pdf) == 0 || filename == "" {
		t.Fatalf("BoardingPass returned empty data")
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
	if filename != "BOARDING_PASS_TKTABC12345.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestDocsServiceRejectsCancelledTicket(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t)
	if _, err := (CancellationService{Store: store}).Push(ctx, "TKTABC12345"); err != nil {
		t.Fatalf("push: %v", err)
	}

	_, _, err := DocsService{Store: store}.BoardingPass(ctx, "TKTABC12345")
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict for cancelled ticket, got %v", err)
	}

	_, _, err = DocsService{Store: store}.BoardingPass(ctx, "TKTNOPE0000")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDocsServiceLoadsQueuePosition(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t)
	boarding := BoardingService{Store: store}
	if _, err := boarding.Enqueue(ctx, "AI101", "TKTABC12345"); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	if _, err := boarding.Enqueue(ctx, "AI101", "TKTDEF67890"); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	data, err := DocsService{Store: store}.load(ctx, "TKTDEF67890")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if data.Position != 1 || data.Flight == nil || data.Flight.DepartureTime != "08:00" {
		t.Fatalf("unexpected data: %+v", data)
	}
}
