package services

import (
	"context"
	"fmt"
	"sync"

	"booking-api/domain"
	"booking-api/events"
	"booking-api/repositories"
)

// ============================================
// MOCKS de los repositorios para los tests
// ============================================

type mockUserRepository struct {
	users map[string]*domain.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[string]*domain.User)}
}

func (m *mockUserRepository) Create(_ context.Context, user *domain.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return repositories.ErrDuplicateKey
		}
	}
	user.ID = fmt.Sprintf("user-%d", len(m.users)+1)
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *mockUserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *user
	return &cp, nil
}

func (m *mockUserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

type mockPlaceRepository struct {
	places map[string]*domain.Place
	order  []string
	gets   int
}

func newMockPlaceRepository() *mockPlaceRepository {
	return &mockPlaceRepository{places: make(map[string]*domain.Place)}
}

func (m *mockPlaceRepository) Create(_ context.Context, place *domain.Place) error {
	place.ID = fmt.Sprintf("place-%d", len(m.places)+1)
	cp := *place
	m.places[place.ID] = &cp
	m.order = append(m.order, place.ID)
	return nil
}

func (m *mockPlaceRepository) GetByID(_ context.Context, id string) (*domain.Place, error) {
	m.gets++
	place, ok := m.places[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *place
	return &cp, nil
}

func (m *mockPlaceRepository) GetByOwner(_ context.Context, ownerID string) ([]domain.Place, error) {
	var out []domain.Place
	for _, id := range m.order {
		if m.places[id].Owner == ownerID {
			out = append(out, *m.places[id])
		}
	}
	return out, nil
}

func (m *mockPlaceRepository) GetAll(_ context.Context) ([]domain.Place, error) {
	var out []domain.Place
	for _, id := range m.order {
		out = append(out, *m.places[id])
	}
	return out, nil
}

func (m *mockPlaceRepository) Update(_ context.Context, place *domain.Place) error {
	if _, ok := m.places[place.ID]; !ok {
		return repositories.ErrNotFound
	}
	cp := *place
	m.places[place.ID] = &cp
	return nil
}

type mockBookingRepository struct {
	bookings []domain.Booking
	places   *mockPlaceRepository
}

func newMockBookingRepository(places *mockPlaceRepository) *mockBookingRepository {
	return &mockBookingRepository{places: places}
}

func (m *mockBookingRepository) Create(_ context.Context, booking *domain.Booking) error {
	booking.ID = fmt.Sprintf("booking-%d", len(m.bookings)+1)
	m.bookings = append(m.bookings, *booking)
	return nil
}

func (m *mockBookingRepository) GetByUserWithPlace(ctx context.Context, userID string) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range m.bookings {
		if b.UserID != userID {
			continue
		}
		if p, err := m.places.GetByID(ctx, b.PlaceID); err == nil {
			b.Place = p
		}
		out = append(out, b)
	}
	return out, nil
}

// recordingPublisher guarda los eventos publicados
type recordingPublisher struct {
	mu       sync.Mutex
	messages []events.PlaceMessage
	err      error
}

func (p *recordingPublisher) Publish(_ context.Context, msg events.PlaceMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

// gatedPlaceRepository frena el primer GetByID después de leer,
// hasta que el test cierre release
type gatedPlaceRepository struct {
	*mockPlaceRepository
	reading chan struct{}
	release chan struct{}
	once    sync.Once
}

func newGatedPlaceRepository(repo *mockPlaceRepository) *gatedPlaceRepository {
	return &gatedPlaceRepository{
		mockPlaceRepository: repo,
		reading:             make(chan struct{}),
		release:             make(chan struct{}),
	}
}

func (g *gatedPlaceRepository) GetByID(ctx context.Context, id string) (*domain.Place, error) {
	place, err := g.mockPlaceRepository.GetByID(ctx, id)

	first := false
	g.once.Do(func() { first = true })
	if first {
		close(g.reading)
		<-g.release
	}
	return place, err
}
