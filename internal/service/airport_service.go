package service

import (
	"context"
	"errors"
	"log"

	"github.com/Antonybyrt/ready-to-fly/internal/domain"
	"github.com/Antonybyrt/ready-to-fly/internal/repository"
)

type AirportService struct {
	airportRepo repository.AirportRepository
}

type AirportInput struct {
	Name      string `json:"name" validate:"required"`
	ShortForm string `json:"short_form" validate:"required,min=2,max=8"`
}

func NewAirportService(airportRepo repository.AirportRepository) *AirportService {
	return &AirportService{airportRepo: airportRepo}
}

// Create adds an airport to the shared reference set. Airports have no owner;
// authentication is the only gate.
func (s *AirportService) Create(ctx context.Context, input AirportInput) (*domain.Airport, error) {
	airport := &domain.Airport{
		Name:      input.Name,
		ShortForm: input.ShortForm,
	}

	if err := s.airportRepo.Create(ctx, airport); err != nil {
		log.Printf("[AIRPORT] create failed: %v", err)
		return nil, err
	}

	return airport, nil
}

func (s *AirportService) List(ctx context.Context) ([]*domain.Airport, error) {
	airports, err := s.airportRepo.List(ctx)
	if err != nil {
		log.Printf("[AIRPORT] list failed: %v", err)
		return nil, err
	}
	return airports, nil
}

func (s *AirportService) GetByID(ctx context.Context, id int64) (*domain.Airport, error) {
	airport, err := s.airportRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Printf("[AIRPORT] get failed: %v", err)
		return nil, err
	}
	return airport, nil
}

// Delete removes an airport. The database cascades the delete to every flight
// that references it, which is destructive and irreversible.
func (s *AirportService) Delete(ctx context.Context, id int64) error {
	if err := s.airportRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		log.Printf("[AIRPORT] delete failed: %v", err)
		return err
	}
	return nil
}
