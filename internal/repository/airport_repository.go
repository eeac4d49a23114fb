package repository

import (
	"context"

	"github.com/Antonybyrt/ready-to-fly/internal/domain"
)

type AirportRepository interface {
	Create(ctx context.Context, airport *domain.Airport) error
	List(ctx context.Context) ([]*domain.Airport, error)
	GetByID(ctx context.Context, id int64) (*domain.Airport, error)
	Delete(ctx context.Context, id int64) error
}
