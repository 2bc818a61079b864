package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"airline/internal/domain"
	"airline/internal/domain/models"
	"airline/internal/repositories"
	"airline/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders a one-page boarding pass PDF per ticket.
type DocsService struct {
	Store      repositories.Store
	FetchLimit int
	RequestID  string
	Loader     func(ctx context.Context, ticketID string) (boardingPassData, error)
}

type boardingPassData struct {
	Passenger models.Passenger
	// Flight is nil when the route was deleted after booking.
	Flight *models.FlightRoute
	// Position is -1 when the ticket is not queued.
	Position int
}

// BoardingPass returns PDF bytes and a download filename.
func (s DocsService) BoardingPass(ctx context.Context, ticketID string) ([]byte, string, error) {
	data, err := s.load(ctx, ticketID)
	if err != nil {
		return nil, "", err
	}
	if data.Passenger.Status == models.StatusCancelled {
		return nil, "", domain.ConflictError{Resource: "passenger", Msg: "Ticket is cancelled"}
	}
	utils.LogEvent(s.RequestID, "docs", "boarding_pass", "ticket_id="+ticketID)
	return buildBoardingPassPDF(data)
}

func (s DocsService) load(ctx context.Context, ticketID string) (boardingPassData, error) {
	if s.Loader != nil {
		return s.Loader(ctx, ticketID)
	}

	p, err := s.Store.Passengers.FindByTicket(ctx, ticketID)
	if err != nil {
		return boardingPassData{}, lookupErr(err, "passenger", "Passenger not found")
	}
	data := boardingPassData{Passenger: p, Position: -1}

	flight, err := s.Store.Flights.FindByID(ctx, p.FlightID)
	switch {
	case err == nil:
		data.Flight = &flight
	case !errors.Is(err, repositories.ErrNotFound):
		return boardingPassData{}, storeErr(err)
	}

	queue, err := s.Store.Boarding.ListByFlight(ctx, p.FlightID, fetchLimit(s.FetchLimit))
	if err != nil {
		return boardingPassData{}, storeErr(err)
	}
	for _, item := range queue {
		if item.TicketID == ticketID {
			data.Position = item.Position
			break
		}
	}
	return data, nil
}

func buildBoardingPassPDF(d boardingPassData) ([]byte, string, error) {
	pdf := gofpdf.New("L", "mm", "A5", "")
	pdf.SetTitle("Boarding Pass", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOARDING PASS")
	pdf.Ln(12)

	route, departs, seats := "-", "-", "-"
	if d.Flight != nil {
		route = fmt.Sprintf("%s -> %s", d.Flight.SourceCode, d.Flight.DestinationCode)
		departs = d.Flight.DepartureTime
		seats = fmt.Sprintf("%d / %d", d.Flight.BookedSeats, d.Flight.TotalSeats)
	}
	queue := "not queued"
	if d.Position >= 0 {
		queue = fmt.Sprintf("#%d", d.Position+1)
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Passenger   : %s", safe(d.Passenger.Name, "-")),
		fmt.Sprintf("Passport    : %s", safe(d.Passenger.Passport, "-")),
		fmt.Sprintf("Ticket      : %s", d.Passenger.TicketID),
		fmt.Sprintf("Flight      : %s", safe(d.Passenger.FlightID, "-")),
		fmt.Sprintf("Route       : %s", route),
		fmt.Sprintf("Departure   : %s", departs),
		fmt.Sprintf("Seat        : %s", safe(d.Passenger.SeatNumber, "-")),
		fmt.Sprintf("Status      : %s", d.Passenger.Status),
		fmt.Sprintf("Queue       : %s", queue),
		fmt.Sprintf("Load        : %s", seats),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, "Issued "+utils.TimestampNow()+". Valid for one passenger on the flight shown.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("BOARDING_PASS_%s.pdf", safeFilenamePart(d.Passenger.TicketID))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
