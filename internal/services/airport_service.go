package services

import (
	"context"
	"errors"

	"airline/internal/domain"
	"airline/internal/domain/models"
	"airline/internal/repositories"
	"airline/internal/utils"
	"airline/internal/validation"

	"github.com/google/uuid"
)

// AirportService manages graph vertices.
type AirportService struct {
	Store      repositories.Store
	FetchLimit int
	RequestID  string
}

func (s AirportService) Create(ctx context.Context, in models.AirportCreate) (models.Airport, error) {
	in.Code = utils.TrimOrEmpty(in.Code)
	in.Name = utils.TrimOrEmpty(in.Name)
	in.City = utils.TrimOrEmpty(in.City)
	if err := validation.Struct(in); err != nil {
		return models.Airport{}, err
	}

	if _, err := s.Store.Airports.FindByCode(ctx, in.Code); err == nil {
		return models.Airport{}, domain.ConflictError{Resource: "airport", Msg: "Airport code already exists"}
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return models.Airport{}, storeErr(err)
	}

	airport := models.Airport{
		ID:   uuid.NewString(),
		Code: in.Code,
		Name: in.Name,
		City: in.City,
	}
	if err := s.Store.Airports.Insert(ctx, airport); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return models.Airport{}, domain.ConflictError{Resource: "airport", Msg: "Airport code already exists", Err: err}
		}
		return models.Airport{}, storeErr(err)
	}

	utils.LogEvent(s.RequestID, "airport", "create", "code="+airport.Code)
	return airport, nil
}

func (s AirportService) List(ctx context.Context) ([]models.Airport, error) {
	airports, err := s.Store.Airports.List(ctx, fetchLimit(s.FetchLimit))
	return airports, storeErr(err)
}

// Delete removes one airport. Flights that reference it are left in place.
func (s AirportService) Delete(ctx context.Context, code string) error {
	n, err := s.Store.Airports.DeleteByCode(ctx, code)
	if err != nil {
		return storeErr(err)
	}
	if n == 0 {
		return domain.NotFoundError{Resource: "airport", Msg: "Airport not found"}
	}
	utils.LogEvent(s.RequestID, "airport", "delete", "code="+code)
	return nil
}
