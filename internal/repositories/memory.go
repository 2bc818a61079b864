package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"airline/internal/domain/models"
)

// memoryDB keeps each collection as an insertion-ordered slice. The mutex
// guards single calls only, like a database guards single statements.
type memoryDB struct {
	mu            sync.Mutex
	seq           int64
	airports      []models.Airport
	flights       []models.FlightRoute
	passengers    []models.Passenger
	queue         []models.BoardingQueueItem
	cancellations []models.CancellationItem
}

// NewMemoryStore returns a Store backed by process memory.
func NewMemoryStore() Store {
	db := &memoryDB{}
	return Store{
		Airports:      memAirports{db},
		Flights:       memFlights{db},
		Passengers:    memPassengers{db},
		Boarding:      memBoarding{db},
		Cancellations: memCancellations{db},
	}
}

func (db *memoryDB) nextSeq() int64 {
	db.seq++
	return db.seq
}

func capped[T any](items []T, limit int) []T {
	n := len(items)
	if limit > 0 && n > limit {
		n = limit
	}
	out := make([]T, n)
	copy(out, items[:n])
	return out
}

// --- airports ---

type memAirports struct{ db *memoryDB }

func (r memAirports) Insert(_ context.Context, a models.Airport) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, cur := range r.db.airports {
		if cur.Code == a.Code {
			return fmt.Errorf("airport %s: %w", a.Code, ErrDuplicate)
		}
	}
	r.db.airports = append(r.db.airports, a)
	return nil
}

func (r memAirports) InsertMany(ctx context.Context, as []models.Airport) error {
	for _, a := range as {
		if err := r.Insert(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

func (r memAirports) FindByCode(_ context.Context, code string) (models.Airport, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, a := range r.db.airports {
		if a.Code == code {
			return a, nil
		}
	}
	return models.Airport{}, fmt.Errorf("airport %s: %w", code, ErrNotFound)
}

func (r memAirports) List(_ context.Context, limit int) ([]models.Airport, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return capped(r.db.airports, limit), nil
}

func (r memAirports) DeleteByCode(_ context.Context, code string) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for i, a := range r.db.airports {
		if a.Code == code {
			r.db.airports = append(r.db.airports[:i], r.db.airports[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r memAirports) Count(context.Context) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return int64(len(r.db.airports)), nil
}

func (r memAirports) DeleteAll(context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.airports = nil
	return nil
}

// --- flights ---

type memFlights struct{ db *memoryDB }

func (r memFlights) Insert(_ context.Context, f models.FlightRoute) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, cur := range r.db.flights {
		if cur.FlightID == f.FlightID {
			return fmt.Errorf("flight %s: %w", f.FlightID, ErrDuplicate)
		}
	}
	r.db.flights = append(r.db.flights, f)
	return nil
}

func (r memFlights) InsertMany(ctx context.Context, fs []models.FlightRoute) error {
	for _, f := range fs {
		if err := r.Insert(ctx, f); err != nil {
			return err
		}
	}
	return nil
}

func (r memFlights) FindByID(_ context.Context, flightID string) (models.FlightRoute, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, f := range r.db.flights {
		if f.FlightID == flightID {
			return f, nil
		}
	}
	return models.FlightRoute{}, fmt.Errorf("flight %s: %w", flightID, ErrNotFound)
}

func (r memFlights) List(_ context.Context, limit int) ([]models.FlightRoute, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return capped(r.db.flights, limit), nil
}

func (r memFlights) DeleteByID(_ context.Context, flightID string) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for i, f := range r.db.flights {
		if f.FlightID == flightID {
			r.db.flights = append(r.db.flights[:i], r.db.flights[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r memFlights) Count(context.Context) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return int64(len(r.db.flights)), nil
}

func (r memFlights) DeleteAll(context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.flights = nil
	return nil
}

func (r memFlights) IncrementBooked(_ context.Context, flightID string, delta int) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for i := range r.db.flights {
		if r.db.flights[i].FlightID == flightID {
			r.db.flights[i].BookedSeats += delta
			return nil
		}
	}
	return nil
}

func (r memFlights) SetBooked(_ context.Context, flightID string, booked int) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for i := range r.db.flights {
		if r.db.flights[i].FlightID == flightID {
			r.db.flights[i].BookedSeats = booked
			return nil
		}
	}
	return nil
}

// --- passengers ---

type memPassengers struct{ db *memoryDB }

func (r memPassengers) Insert(_ context.Context, p models.Passenger) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, cur := range r.db.passengers {
		if cur.TicketID == p.TicketID {
			return fmt.Errorf("passenger %s: %w", p.TicketID, ErrDuplicate)
		}
	}
	r.db.passengers = append(r.db.passengers, p)
	return nil
}

func (r memPassengers) InsertMany(ctx context.Context, ps []models.Passenger) error {
	for _, p := range ps {
		if err := r.Insert(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (r memPassengers) FindByTicket(_ context.Context, ticketID string) (models.Passenger, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, p := range r.db.passengers {
		if p.TicketID == ticketID {
			return p, nil
		}
	}
	return models.Passenger{}, fmt.Errorf("passenger %s: %w", ticketID, ErrNotFound)
}

func (r memPassengers) List(_ context.Context, limit int) ([]models.Passenger, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return capped(r.db.passengers, limit), nil
}

func (r memPassengers) SetStatus(_ context.Context, ticketID string, status models.PassengerStatus) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for i := range r.db.passengers {
		if r.db.passengers[i].TicketID == ticketID {
			r.db.passengers[i].Status = status
			return nil
		}
	}
	return nil
}

func (r memPassengers) DeleteAll(context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.passengers = nil
	return nil
}

// --- boarding queue ---

type memBoarding struct{ db *memoryDB }

func (r memBoarding) Insert(_ context.Context, item models.BoardingQueueItem) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	item.Seq = r.db.nextSeq()
	r.db.queue = append(r.db.queue, item)
	return nil
}

func (r memBoarding) InsertMany(ctx context.Context, items []models.BoardingQueueItem) error {
	for _, item := range items {
		if err := r.Insert(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

// byFlight must be called with the lock held.
func (r memBoarding) byFlight(flightID string) []models.BoardingQueueItem {
	out := []models.BoardingQueueItem{}
	for _, item := range r.db.queue {
		if item.FlightID == flightID {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].Seq < out[j].Seq
	})
	return out
}

func (r memBoarding) ListByFlight(_ context.Context, flightID string, limit int) ([]models.BoardingQueueItem, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return capped(r.byFlight(flightID), limit), nil
}

func (r memBoarding) List(_ context.Context, limit int) ([]models.BoardingQueueItem, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return capped(r.db.queue, limit), nil
}

func (r memBoarding) CountByFlight(_ context.Context, flightID string) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var n int64
	for _, item := range r.db.queue {
		if item.FlightID == flightID {
			n++
		}
	}
	return n, nil
}

func (r memBoarding) Front(_ context.Context, flightID string) (models.BoardingQueueItem, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	items := r.byFlight(flightID)
	if len(items) == 0 {
		return models.BoardingQueueItem{}, fmt.Errorf("boarding queue %s: %w", flightID, ErrNotFound)
	}
	return items[0], nil
}

func (r memBoarding) Delete(_ context.Context, item models.BoardingQueueItem) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for i, cur := range r.db.queue {
		if cur.Seq == item.Seq {
			r.db.queue = append(r.db.queue[:i], r.db.queue[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r memBoarding) SetPosition(_ context.Context, item models.BoardingQueueItem, position int) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for i := range r.db.queue {
		if r.db.queue[i].Seq == item.Seq {
			r.db.queue[i].Position = position
			return nil
		}
	}
	return nil
}

func (r memBoarding) DeleteByTicket(_ context.Context, ticketID string) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	kept := r.db.queue[:0]
	var removed int64
	for _, item := range r.db.queue {
		if item.TicketID == ticketID {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	r.db.queue = kept
	return removed, nil
}

func (r memBoarding) DeleteAll(context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.queue = nil
	return nil
}

// --- cancellations ---

type memCancellations struct{ db *memoryDB }

func (r memCancellations) Insert(_ context.Context, item models.CancellationItem) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	item.Seq = r.db.nextSeq()
	r.db.cancellations = append(r.db.cancellations, item)
	return nil
}

func (r memCancellations) InsertMany(ctx context.Context, items []models.CancellationItem) error {
	for _, item := range items {
		if err := r.Insert(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

// recent must be called with the lock held.
func (r memCancellations) recent() []models.CancellationItem {
	out := make([]models.CancellationItem, len(r.db.cancellations))
	copy(out, r.db.cancellations)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Timestamp != out[j].Timestamp {
			return out[i].Timestamp > out[j].Timestamp
		}
		return out[i].Seq > out[j].Seq
	})
	return out
}

func (r memCancellations) Latest(context.Context) (models.CancellationItem, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	items := r.recent()
	if len(items) == 0 {
		return models.CancellationItem{}, fmt.Errorf("cancellations: %w", ErrNotFound)
	}
	return items[0], nil
}

func (r memCancellations) ListRecent(_ context.Context, limit int) ([]models.CancellationItem, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return capped(r.recent(), limit), nil
}

func (r memCancellations) Delete(_ context.Context, item models.CancellationItem) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for i, cur := range r.db.cancellations {
		if cur.Seq == item.Seq {
			r.db.cancellations = append(r.db.cancellations[:i], r.db.cancellations[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r memCancellations) DeleteAll(context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.cancellations = nil
	return nil
}
