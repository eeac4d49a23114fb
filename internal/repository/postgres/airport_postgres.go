package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Antonybyrt/ready-to-fly/internal/domain"
	"github.com/Antonybyrt/ready-to-fly/internal/repository"
)

type airportRepository struct {
	db *sqlx.DB
}

// NewAirportRepository creates a new PostgreSQL airport repository
func NewAirportRepository(db *sqlx.DB) repository.AirportRepository {
	return &airportRepository{db: db}
}

// Create inserts a new airport and fills in the generated id.
func (r *airportRepository) Create(ctx context.Context, airport *domain.Airport) error {
	query := `
		INSERT INTO airports (name, short_form)
		VALUES ($1, $2)
		RETURNING id`

	err := r.db.QueryRowxContext(ctx, query, airport.Name, airport.ShortForm).
		Scan(&airport.ID)
	if err != nil {
		return fmt.Errorf("failed to create airport: %w", err)
	}

	return nil
}

// List retrieves all airports
func (r *airportRepository) List(ctx context.Context) ([]*domain.Airport, error) {
	query := `SELECT id, name, short_form FROM airports ORDER BY name ASC`

	var airports []*domain.Airport
	err := r.db.SelectContext(ctx, &airports, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list airports: %w", err)
	}

	return airports, nil
}

// GetByID retrieves an airport by its ID
func (r *airportRepository) GetByID(ctx context.Context, id int64) (*domain.Airport, error) {
	query := `SELECT id, name, short_form FROM airports WHERE id = $1`

	var airport domain.Airport
	err := r.db.GetContext(ctx, &airport, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get airport by id: %w", err)
	}

	return &airport, nil
}

// Delete removes an airport. The schema cascades the delete to every flight
// referencing it as departure or arrival.
func (r *airportRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM airports WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete airport: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}
