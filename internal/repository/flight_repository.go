package repository

import (
	"context"

	"github.com/Antonybyrt/ready-to-fly/internal/domain"
)

// FlightRepository persists flights. Every mutation and single-row read is
// filtered by (id, user_id) in the query itself, so a foreign-owned row and a
// missing row both come back as ErrNotFound.
type FlightRepository interface {
	Create(ctx context.Context, flight *domain.Flight) error
	GetByIDAndUser(ctx context.Context, id, userID int64) (*domain.FlightWithAirports, error)
	ListAll(ctx context.Context) ([]*domain.FlightWithAirports, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.FlightWithAirports, error)
	Update(ctx context.Context, flight *domain.Flight) error
	DeleteByIDAndUser(ctx context.Context, id, userID int64) error
	CountByUser(ctx context.Context, userID int64) (int, error)
	Stats(ctx context.Context, year int) (*domain.FlightStats, error)
}
