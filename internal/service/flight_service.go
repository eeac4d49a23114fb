package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Antonybyrt/ready-to-fly/internal/domain"
	"github.com/Antonybyrt/ready-to-fly/internal/repository"
)

type FlightService struct {
	flightRepo repository.FlightRepository
}

// FlightInput is the client-supplied part of a flight. There is deliberately
// no owner field: the owner always comes from the resolved session identity.
type FlightInput struct {
	DepartureID  int64     `json:"departure_id" validate:"required"`
	ArrivalID    int64     `json:"arrival_id" validate:"required"`
	Duration     float64   `json:"duration" validate:"required,gt=0"`
	StartDate    time.Time `json:"start_date" validate:"required"`
	EndDate      time.Time `json:"end_date" validate:"required"`
	Appreciation *string   `json:"appreciation"`
}

func NewFlightService(flightRepo repository.FlightRepository) *FlightService {
	return &FlightService{flightRepo: flightRepo}
}

// Create persists a new flight owned by userID. Airport ids are checked by
// the database's foreign keys, not re-validated here.
func (s *FlightService) Create(ctx context.Context, input FlightInput, userID int64) (*domain.Flight, error) {
	flight := &domain.Flight{
		DepartureID:  input.DepartureID,
		ArrivalID:    input.ArrivalID,
		Duration:     input.Duration,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Appreciation: input.Appreciation,
		UserID:       userID,
	}

	if err := s.flightRepo.Create(ctx, flight); err != nil {
		log.Printf("[FLIGHT] create failed: %v", err)
		return nil, err
	}

	return flight, nil
}

// GetByID returns a single enriched flight owned by userID.
func (s *FlightService) GetByID(ctx context.Context, id, userID int64) (*domain.FlightWithAirports, error) {
	flight, err := s.flightRepo.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Printf("[FLIGHT] get failed: %v", err)
		return nil, err
	}
	return flight, nil
}

// Update replaces the mutable fields of a flight owned by userID and returns
// the updated enriched row. A missing or foreign-owned id is ErrNotFound.
func (s *FlightService) Update(ctx context.Context, id int64, input FlightInput, userID int64) (*domain.FlightWithAirports, error) {
	flight := &domain.Flight{
		ID:           id,
		DepartureID:  input.DepartureID,
		ArrivalID:    input.ArrivalID,
		Duration:     input.Duration,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Appreciation: input.Appreciation,
		UserID:       userID,
	}

	if err := s.flightRepo.Update(ctx, flight); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Printf("[FLIGHT] update failed: %v", err)
		return nil, err
	}

	return s.GetByID(ctx, id, userID)
}

// Delete removes a flight owned by userID.
func (s *FlightService) Delete(ctx context.Context, id, userID int64) error {
	if err := s.flightRepo.DeleteByIDAndUser(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		log.Printf("[FLIGHT] delete failed: %v", err)
		return err
	}
	return nil
}

// ListMine returns the caller's flights, enriched with airports.
func (s *FlightService) ListMine(ctx context.Context, userID int64) ([]*domain.FlightWithAirports, error) {
	flights, err := s.flightRepo.ListByUser(ctx, userID)
	if err != nil {
		log.Printf("[FLIGHT] list mine failed: %v", err)
		return nil, err
	}
	return flights, nil
}

// ListAll returns every flight in the system. This read is intentionally not
// ownership-scoped: the dashboard aggregates across all users. Any valid
// session may call it.
func (s *FlightService) ListAll(ctx context.Context) ([]*domain.FlightWithAirports, error) {
	flights, err := s.flightRepo.ListAll(ctx)
	if err != nil {
		log.Printf("[FLIGHT] list all failed: %v", err)
		return nil, err
	}
	return flights, nil
}

// Count returns how many flights userID owns.
func (s *FlightService) Count(ctx context.Context, userID int64) (int, error) {
	count, err := s.flightRepo.CountByUser(ctx, userID)
	if err != nil {
		log.Printf("[FLIGHT] count failed: %v", err)
		return 0, err
	}
	return count, nil
}

// Stats returns the dashboard aggregates for the given year. Like ListAll it
// covers every user's flights.
func (s *FlightService) Stats(ctx context.Context, year int) (*domain.FlightStats, error) {
	stats, err := s.flightRepo.Stats(ctx, year)
	if err != nil {
		log.Printf("[FLIGHT] stats failed: %v", err)
		return nil, err
	}
	return stats, nil
}
