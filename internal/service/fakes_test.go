package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/Antonybyrt/ready-to-fly/internal/domain"
	"github.com/Antonybyrt/ready-to-fly/internal/repository"
)

// errStore simulates a backend failure in any fake.
var errStore = errors.New("store unavailable")

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[int64]*domain.User
	fail  bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*domain.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errStore
	}
	user.ID = int64(len(r.users) + 1)
	user.CreatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return nil, errStore
	}
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return nil, errStore
	}
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
	fail     bool
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*domain.Session)}
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errStore
	}
	session.CreatedAt = time.Now()
	r.sessions[session.Token] = session
	return nil
}

func (r *fakeSessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return nil, errStore
	}
	session, ok := r.sessions[token]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return session, nil
}

type fakeFlightRepo struct {
	mu       sync.Mutex
	flights  map[int64]*domain.Flight
	airports map[int64]*domain.Airport
	nextID   int64
	fail     bool
}

func newFakeFlightRepo(airports map[int64]*domain.Airport) *fakeFlightRepo {
	return &fakeFlightRepo{
		flights:  make(map[int64]*domain.Flight),
		airports: airports,
		nextID:   1,
	}
}

func (r *fakeFlightRepo) enrich(f *domain.Flight) *domain.FlightWithAirports {
	out := &domain.FlightWithAirports{Flight: *f}
	if a, ok := r.airports[f.DepartureID]; ok {
		out.DepartureAirport = domain.AirportRef{Name: a.Name, ShortForm: a.ShortForm}
	}
	if a, ok := r.airports[f.ArrivalID]; ok {
		out.ArrivalAirport = domain.AirportRef{Name: a.Name, ShortForm: a.ShortForm}
	}
	return out
}

func (r *fakeFlightRepo) Create(ctx context.Context, flight *domain.Flight) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errStore
	}
	flight.ID = r.nextID
	r.nextID++
	stored := *flight
	r.flights[flight.ID] = &stored
	return nil
}

func (r *fakeFlightRepo) GetByIDAndUser(ctx context.Context, id, userID int64) (*domain.FlightWithAirports, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return nil, errStore
	}
	flight, ok := r.flights[id]
	if !ok || flight.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return r.enrich(flight), nil
}

func (r *fakeFlightRepo) ListAll(ctx context.Context) ([]*domain.FlightWithAirports, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return nil, errStore
	}
	var out []*domain.FlightWithAirports
	for _, f := range r.flights {
		out = append(out, r.enrich(f))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeFlightRepo) ListByUser(ctx context.Context, userID int64) ([]*domain.FlightWithAirports, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return nil, errStore
	}
	var out []*domain.FlightWithAirports
	for _, f := range r.flights {
		if f.UserID == userID {
			out = append(out, r.enrich(f))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeFlightRepo) Update(ctx context.Context, flight *domain.Flight) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errStore
	}
	existing, ok := r.flights[flight.ID]
	if !ok || existing.UserID != flight.UserID {
		return repository.ErrNotFound
	}
	stored := *flight
	r.flights[flight.ID] = &stored
	return nil
}

func (r *fakeFlightRepo) DeleteByIDAndUser(ctx context.Context, id, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errStore
	}
	existing, ok := r.flights[id]
	if !ok || existing.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.flights, id)
	return nil
}

func (r *fakeFlightRepo) CountByUser(ctx context.Context, userID int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return 0, errStore
	}
	count := 0
	for _, f := range r.flights {
		if f.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *fakeFlightRepo) Stats(ctx context.Context, year int) (*domain.FlightStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return nil, errStore
	}
	stats := &domain.FlightStats{Year: year}
	now := time.Now()
	for _, f := range r.flights {
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

type fakeAirportRepo struct {
	mu       sync.Mutex
	airports map[int64]*domain.Airport
	nextID   int64
	fail     bool
}

func newFakeAirportRepo() *fakeAirportRepo {
	return &fakeAirportRepo{airports: make(map[int64]*domain.Airport), nextID: 1}
}

func (r *fakeAirportRepo) Create(ctx context.Context, airport *domain.Airport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errStore
	}
	airport.ID = r.nextID
	r.nextID++
	stored := *airport
	r.airports[airport.ID] = &stored
	return nil
}

func (r *fakeAirportRepo) List(ctx context.Context) ([]*domain.Airport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return nil, errStore
	}
	var out []*domain.Airport
	for _, a := range r.airports {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeAirportRepo) GetByID(ctx context.Context, id int64) (*domain.Airport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return nil, errStore
	}
	airport, ok := r.airports[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return airport, nil
}

func (r *fakeAirportRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errStore
	}
	if _, ok := r.airports[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.airports, id)
	return nil
}
