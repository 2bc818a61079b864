package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"airline/internal/domain"
	"airline/internal/domain/models"
	"airline/internal/repositories"
	"airline/internal/utils"
	"airline/internal/validation"

	"github.com/google/uuid"
)

// SystemService seeds, wipes, exports and imports the whole dataset. None of
// these run in a transaction; a failure part way leaves what was written.
type SystemService struct {
	Store      repositories.Store
	FetchLimit int
	RequestID  string
}

// Initialize wipes every collection and loads SampleData. booked_seats of each
// seeded flight is set to the number of seeded passengers on it.
func (s SystemService) Initialize(ctx context.Context) error {
	data := SampleData()
	if err := s.Store.WipeAll(ctx); err != nil {
		return storeErr(err)
	}
	if err := s.load(ctx, data); err != nil {
		return err
	}

	booked := map[string]int{}
	for _, p := range data.Passengers {
		booked[p.FlightID]++
	}
	flightIDs := make([]string, 0, len(booked))
	for id := range booked {
		flightIDs = append(flightIDs, id)
	}
	sort.Strings(flightIDs)
	for _, id := range flightIDs {
		if err := s.Store.Flights.SetBooked(ctx, id, booked[id]); err != nil {
			return storeErr(err)
		}
	}

	utils.LogEvent(s.RequestID, "system", "initialize", fmt.Sprintf("airports=%d flights=%d passengers=%d",
		len(data.Airports), len(data.Flights), len(data.Passengers)))
	return nil
}

func (s SystemService) Reset(ctx context.Context) error {
	if err := s.Store.WipeAll(ctx); err != nil {
		return storeErr(err)
	}
	utils.LogEvent(s.RequestID, "system", "reset", "all collections wiped")
	return nil
}

// Export reads all five collections, each capped by the fetch limit.
func (s SystemService) Export(ctx context.Context) (models.Snapshot, error) {
	limit := fetchLimit(s.FetchLimit)
	var (
		snap models.Snapshot
		err  error
	)
	if snap.Airports, err = s.Store.Airports.List(ctx, limit); err != nil {
		return models.Snapshot{}, storeErr(err)
	}
	if snap.Flights, err = s.Store.Flights.List(ctx, limit); err != nil {
		return models.Snapshot{}, storeErr(err)
	}
	if snap.Passengers, err = s.Store.Passengers.List(ctx, limit); err != nil {
		return models.Snapshot{}, storeErr(err)
	}
	if snap.BoardingQueue, err = s.Store.Boarding.List(ctx, limit); err != nil {
		return models.Snapshot{}, storeErr(err)
	}
	if snap.Cancellations, err = s.Store.Cancellations.ListRecent(ctx, limit); err != nil {
		return models.Snapshot{}, storeErr(err)
	}
	utils.LogEvent(s.RequestID, "system", "export", fmt.Sprintf("airports=%d flights=%d passengers=%d",
		len(snap.Airports), len(snap.Flights), len(snap.Passengers)))
	return snap, nil
}

// Import validates snap, wipes the store and writes snap in its place.
// Missing airport and flight ids are generated.
func (s SystemService) Import(ctx context.Context, snap models.Snapshot) error {
	if err := validation.Struct(snap); err != nil {
		return err
	}
	if err := checkUniqueKeys(snap); err != nil {
		return err
	}
	for i := range snap.Airports {
		if snap.Airports[i].ID == "" {
			snap.Airports[i].ID = uuid.NewString()
		}
	}
	for i := range snap.Flights {
		if snap.Flights[i].ID == "" {
			snap.Flights[i].ID = uuid.NewString()
		}
	}
	// the log is exported newest first; store it oldest first
	cancellations := make([]models.CancellationItem, len(snap.Cancellations))
	for i, item := range snap.Cancellations {
		cancellations[len(cancellations)-1-i] = item
	}
	sort.SliceStable(cancellations, func(i, j int) bool {
		return cancellations[i].Timestamp < cancellations[j].Timestamp
	})
	snap.Cancellations = cancellations

	if err := s.Store.WipeAll(ctx); err != nil {
		return storeErr(err)
	}
	if err := s.load(ctx, snap); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "system", "import", fmt.Sprintf("airports=%d flights=%d passengers=%d queue=%d cancellations=%d",
		len(snap.Airports), len(snap.Flights), len(snap.Passengers), len(snap.BoardingQueue), len(snap.Cancellations)))
	return nil
}

func (s SystemService) load(ctx context.Context, snap models.Snapshot) error {
	steps := []struct {
		name string
		run  func() error
	}{
		{"airports", func() error { return s.Store.Airports.InsertMany(ctx, snap.Airports) }},
		{"flights", func() error { return s.Store.Flights.InsertMany(ctx, snap.Flights) }},
		{"passengers", func() error { return s.Store.Passengers.InsertMany(ctx, snap.Passengers) }},
		{"boarding_queue", func() error { return s.Store.Boarding.InsertMany(ctx, snap.BoardingQueue) }},
		{"cancellations", func() error { return s.Store.Cancellations.InsertMany(ctx, snap.Cancellations) }},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			if errors.Is(err, repositories.ErrDuplicate) {
				return domain.ConflictError{Resource: step.name, Msg: "duplicate key in " + step.name, Err: err}
			}
			return storeErr(fmt.Errorf("load %s: %w", step.name, err))
		}
	}
	return nil
}

// checkUniqueKeys rejects a snapshot that would fail half way through load.
func checkUniqueKeys(snap models.Snapshot) error {
	keys := map[string][]string{}
	for _, a := range snap.Airports {
		keys["airports"] = append(keys["airports"], a.Code)
	}
	for _, f := range snap.Flights {
		keys["flights"] = append(keys["flights"], f.FlightID)
	}
	for _, p := range snap.Passengers {
		keys["passengers"] = append(keys["passengers"], p.TicketID)
	}
	for _, name := range []string{"airports", "flights", "passengers"} {
		seen := map[string]bool{}
		for _, k := range keys[name] {
			if seen[k] {
				return domain.ConflictError{Resource: name, Msg: fmt.Sprintf("duplicate key %q in %s", k, name)}
			}
			seen[k] = true
		}
	}
	return nil
}
