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

// enrichedFlightColumns joins the departure and arrival airports onto each
// flight row; the aliases scan into FlightWithAirports' nested structs.
const enrichedFlightColumns = `
	f.id, f.departure_id, f.arrival_id, f.duration, f.start_date, f.end_date,
	f.appreciation, f.user_id,
	d.name AS "departure_airport.name",
	d.short_form AS "departure_airport.short_form",
	a.name AS "arrival_airport.name",
	a.short_form AS "arrival_airport.short_form"`

const enrichedFlightFrom = `
	FROM flights f
	JOIN airports d ON d.id = f.departure_id
	JOIN airports a ON a.id = f.arrival_id`

type flightRepository struct {
	db *sqlx.DB
}

// NewFlightRepository creates a new PostgreSQL flight repository
func NewFlightRepository(db *sqlx.DB) repository.FlightRepository {
	return &flightRepository{db: db}
}

// Create inserts a new flight and fills in the generated id. The caller is
// responsible for having set UserID from the session identity; referential
// validity of the airport ids is left to the foreign keys.
func (r *flightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	query := `
		INSERT INTO flights (departure_id, arrival_id, duration, start_date, end_date, appreciation, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	err := r.db.QueryRowxContext(ctx, query,
		flight.DepartureID,
		flight.ArrivalID,
		flight.Duration,
		flight.StartDate,
		flight.EndDate,
		flight.Appreciation,
		flight.UserID,
	).Scan(&flight.ID)
	if err != nil {
		return fmt.Errorf("failed to create flight: %w", err)
	}

	return nil
}

// GetByIDAndUser retrieves a single enriched flight, filtered by owner. A row
// owned by someone else is ErrNotFound, same as a missing row.
func (r *flightRepository) GetByIDAndUser(ctx context.Context, id, userID int64) (*domain.FlightWithAirports, error) {
	query := `SELECT` + enrichedFlightColumns + enrichedFlightFrom + `
	WHERE f.id = $1 AND f.user_id = $2`

	var flight domain.FlightWithAirports
	err := r.db.GetContext(ctx, &flight, query, id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get flight by id: %w", err)
	}

	return &flight, nil
}

// ListAll retrieves every flight regardless of owner. Used for dashboard
// aggregation only; access still requires a valid session.
func (r *flightRepository) ListAll(ctx context.Context) ([]*domain.FlightWithAirports, error) {
	query := `SELECT` + enrichedFlightColumns + enrichedFlightFrom + `
	ORDER BY f.start_date DESC`

	var flights []*domain.FlightWithAirports
	err := r.db.SelectContext(ctx, &flights, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list flights: %w", err)
	}

	return flights, nil
}

// ListByUser retrieves all flights owned by userID, enriched with airports.
func (r *flightRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.FlightWithAirports, error) {
	query := `SELECT` + enrichedFlightColumns + enrichedFlightFrom + `
	WHERE f.user_id = $1
	ORDER BY f.start_date DESC`

	var flights []*domain.FlightWithAirports
	err := r.db.SelectContext(ctx, &flights, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list flights by user: %w", err)
	}

	return flights, nil
}

// Update rewrites a flight's fields in a single statement filtered by
// (id, user_id). Zero rows affected means the row is missing or
// foreign-owned; both surface as ErrNotFound.
func (r *flightRepository) Update(ctx context.Context, flight *domain.Flight) error {
	query := `
		UPDATE flights
		SET departure_id = $1,
			arrival_id = $2,
			duration = $3,
			start_date = $4,
			end_date = $5,
			appreciation = $6
		WHERE id = $7 AND user_id = $8`

	result, err := r.db.ExecContext(ctx, query,
		flight.DepartureID,
		flight.ArrivalID,
		flight.Duration,
		flight.StartDate,
		flight.EndDate,
		flight.Appreciation,
		flight.ID,
		flight.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update flight: %w", err)
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

// DeleteByIDAndUser removes a flight, filtered by owner.
func (r *flightRepository) DeleteByIDAndUser(ctx context.Context, id, userID int64) error {
	query := `DELETE FROM flights WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete flight: %w", err)
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

// CountByUser counts the flights owned by userID.
func (r *flightRepository) CountByUser(ctx context.Context, userID int64) (int, error) {
	query := `SELECT COUNT(*) FROM flights WHERE user_id = $1`

	var count int
	err := r.db.GetContext(ctx, &count, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count flights: %w", err)
	}

	return count, nil
}

// Stats computes the dashboard aggregates over the unscoped flight set.
func (r *flightRepository) Stats(ctx context.Context, year int) (*domain.FlightStats, error) {
	stats := &domain.FlightStats{Year: year}

	totalsQuery := `
		SELECT COUNT(*) AS total_flights,
			   COALESCE(SUM(duration), 0) AS total_hours,
			   COUNT(*) FILTER (WHERE start_date > now()) AS upcoming_flights
		FROM flights`

	var totals struct {
		TotalFlights    int     `db:"total_flights"`
		TotalHours      float64 `db:"total_hours"`
		UpcomingFlights int     `db:"upcoming_flights"`
	}
	if err := r.db.GetContext(ctx, &totals, totalsQuery); err != nil {
		return nil, fmt.Errorf("failed to get flight totals: %w", err)
	}
	stats.TotalFlights = totals.TotalFlights
	stats.TotalHours = totals.TotalHours
	stats.UpcomingFlights = totals.UpcomingFlights

	monthlyQuery := `
		SELECT EXTRACT(MONTH FROM start_date)::int AS month, COUNT(*) AS count
		FROM flights
		WHERE EXTRACT(YEAR FROM start_date)::int = $1
		GROUP BY month`

	var monthly []struct {
		Month int `db:"month"`
		Count int `db:"count"`
	}
	if err := r.db.SelectContext(ctx, &monthly, monthlyQuery, year); err != nil {
		return nil, fmt.Errorf("failed to get monthly flight counts: %w", err)
	}
	for _, m := range monthly {
		if m.Month >= 1 && m.Month <= 12 {
			stats.Monthly[m.Month-1] = m.Count
		}
	}

	topQuery := `
		SELECT a.name, a.short_form, COUNT(*) AS count
		FROM flights f
		JOIN airports a ON a.id = f.arrival_id
		GROUP BY a.id, a.name, a.short_form
		ORDER BY count DESC, a.name ASC
		LIMIT 5`

	if err := r.db.SelectContext(ctx, &stats.TopDestinations, topQuery); err != nil {
		return nil, fmt.Errorf("failed to get top destinations: %w", err)
	}

	return stats, nil
}
