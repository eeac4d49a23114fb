package handler

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Antonybyrt/ready-to-fly/internal/domain"
	"github.com/Antonybyrt/ready-to-fly/internal/handler/middleware"
	"github.com/Antonybyrt/ready-to-fly/internal/repository"
	"github.com/Antonybyrt/ready-to-fly/internal/service"
	"github.com/Antonybyrt/ready-to-fly/pkg/hash"
	"github.com/Antonybyrt/ready-to-fly/pkg/validator"
)

// memStore is a single in-memory backend implementing every repository
// interface, enough to drive the full HTTP surface in tests.
type memStore struct {
	mu       sync.Mutex
	users    map[int64]*domain.User
	sessions map[string]*domain.Session
	flights  map[int64]*domain.Flight
	airports map[int64]*domain.Airport

	nextFlightID  int64
	nextAirportID int64
}

func newMemStore() *memStore {
	return &memStore{
		users:         make(map[int64]*domain.User),
		sessions:      make(map[string]*domain.Session),
		flights:       make(map[int64]*domain.Flight),
		airports:      make(map[int64]*domain.Airport),
		nextFlightID:  1,
		nextAirportID: 1,
	}
}

func (s *memStore) Create(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.ID = int64(len(s.users) + 1)
	s.users[user.ID] = user
	return nil
}

func (s *memStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (s *memStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

type memSessions struct{ store *memStore }

func (s memSessions) Create(ctx context.Context, session *domain.Session) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	session.CreatedAt = time.Now()
	s.store.sessions[session.Token] = session
	return nil
}

func (s memSessions) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if sess, ok := s.store.sessions[token]; ok {
		return sess, nil
	}
	return nil, repository.ErrNotFound
}

type memFlights struct{ store *memStore }

func (s memFlights) enrich(f *domain.Flight) *domain.FlightWithAirports {
	out := &domain.FlightWithAirports{Flight: *f}
	if a, ok := s.store.airports[f.DepartureID]; ok {
		out.DepartureAirport = domain.AirportRef{Name: a.Name, ShortForm: a.ShortForm}
	}
	if a, ok := s.store.airports[f.ArrivalID]; ok {
		out.ArrivalAirport = domain.AirportRef{Name: a.Name, ShortForm: a.ShortForm}
	}
	return out
}

func (s memFlights) Create(ctx context.Context, flight *domain.Flight) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	flight.ID = s.store.nextFlightID
	s.store.nextFlightID++
	stored := *flight
	s.store.flights[flight.ID] = &stored
	return nil
}

func (s memFlights) GetByIDAndUser(ctx context.Context, id, userID int64) (*domain.FlightWithAirports, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	f, ok := s.store.flights[id]
	if !ok || f.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return s.enrich(f), nil
}

func (s memFlights) ListAll(ctx context.Context) ([]*domain.FlightWithAirports, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	var out []*domain.FlightWithAirports
	for _, f := range s.store.flights {
		out = append(out, s.enrich(f))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s memFlights) ListByUser(ctx context.Context, userID int64) ([]*domain.FlightWithAirports, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	var out []*domain.FlightWithAirports
	for _, f := range s.store.flights {
		if f.UserID == userID {
			out = append(out, s.enrich(f))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s memFlights) Update(ctx context.Context, flight *domain.Flight) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	existing, ok := s.store.flights[flight.ID]
	if !ok || existing.UserID != flight.UserID {
		return repository.ErrNotFound
	}
	stored := *flight
	s.store.flights[flight.ID] = &stored
	return nil
}

func (s memFlights) DeleteByIDAndUser(ctx context.Context, id, userID int64) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	existing, ok := s.store.flights[id]
	if !ok || existing.UserID != userID {
		return repository.ErrNotFound
	}
	delete(s.store.flights, id)
	return nil
}

func (s memFlights) CountByUser(ctx context.Context, userID int64) (int, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	count := 0
	for _, f := range s.store.flights {
		if f.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (s memFlights) Stats(ctx context.Context, year int) (*domain.FlightStats, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	stats := &domain.FlightStats{Year: year}
	now := time.Now()
	for _, f := range s.store.flights {
		stats.TotalFlights++
		stats.TotalHours += f.Duration
		if f.StartDate.After(now) {
			stats.UpcomingFlights++
		}
		if f.StartDate.Year() == year {
			stats.Monthly[int(f.StartDate.Month())-1]++
		}
	}
	return stats, nil
}

type memAirports struct{ store *memStore }

func (s memAirports) Create(ctx context.Context, airport *domain.Airport) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	airport.ID = s.store.nextAirportID
	s.store.nextAirportID++
	stored := *airport
	s.store.airports[airport.ID] = &stored
	return nil
}

func (s memAirports) List(ctx context.Context) ([]*domain.Airport, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	var out []*domain.Airport
	for _, a := range s.store.airports {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s memAirports) GetByID(ctx context.Context, id int64) (*domain.Airport, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if a, ok := s.store.airports[id]; ok {
		return a, nil
	}
	return nil, repository.ErrNotFound
}

func (s memAirports) Delete(ctx context.Context, id int64) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, ok := s.store.airports[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.store.airports, id)
	// Mirror the schema's cascade.
	for fid, f := range s.store.flights {
		if f.DepartureID == id || f.ArrivalID == id {
			delete(s.store.flights, fid)
		}
	}
	return nil
}

// newTestApp wires the full HTTP surface over the in-memory store, seeding
// two users and two airports.
func newTestApp(t *testing.T) (*fiber.App, *memStore) {
	t.Helper()

	store := newMemStore()
	for _, u := range []*domain.User{
		{Email: "a@example.com", PasswordHash: hash.HashPassword("password-a"), FirstName: "Alice"},
		{Email: "b@example.com", PasswordHash: hash.HashPassword("password-b"), FirstName: "Bob"},
	} {
		if err := store.Create(context.Background(), u); err != nil {
			t.Fatalf("seeding user: %v", err)
		}
	}
	for _, a := range []*domain.Airport{
		{Name: "Charles de Gaulle", ShortForm: "CDG"},
		{Name: "Haneda", ShortForm: "HND"},
	} {
		if err := (memAirports{store}).Create(context.Background(), a); err != nil {
			t.Fatalf("seeding airport: %v", err)
		}
	}

	validate := validator.NewValidator()
	authService := service.NewAuthService(store, memSessions{store})
	flightService := service.NewFlightService(memFlights{store})
	airportService := service.NewAirportService(memAirports{store})

	app := fiber.New()
	app.Use(middleware.RecoveryMiddleware())

	SetupRoutes(
		app,
		NewAuthHandler(authService, validate),
		NewFlightHandler(flightService, validate),
		NewAirportHandler(airportService, validate),
		NewHealthHandler(nil),
		middleware.AuthMiddleware(memSessions{store}),
	)

	return app, store
}
