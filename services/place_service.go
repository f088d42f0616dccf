package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"booking-api/domain"
	"booking-api/dto"
	"booking-api/events"
	"booking-api/repositories"
)

var (
	ErrPlaceNotFound = errors.New("place not found")
	ErrForbidden     = errors.New("forbidden")
)

// PlaceService define las operaciones sobre places
type PlaceService interface {
	CreatePlace(ctx context.Context, ownerID string, req dto.CreatePlaceRequest) (*domain.Place, error)
	GetUserPlaces(ctx context.Context, ownerID string) ([]domain.Place, error)
	GetPlace(ctx context.Context, id string) (*domain.Place, error)
	UpdatePlace(ctx context.Context, userID string, req dto.UpdatePlaceRequest) error
	GetAllPlaces(ctx context.Context) ([]domain.Place, error)
}

type placeService struct {
	repo      repositories.PlaceRepository
	cache     repositories.PlaceCache
	publisher events.Publisher

	// generations cuenta las invalidaciones por place. Una lectura solo
	// llena la caché si no hubo un update mientras leía de la base
	mu          sync.Mutex
	generations map[string]uint64
}

func NewPlaceService(repo repositories.PlaceRepository, cache repositories.PlaceCache, publisher events.Publisher) PlaceService {
	return &placeService{
		repo:        repo,
		cache:       cache,
		publisher:   publisher,
		generations: make(map[string]uint64),
	}
}

// CreatePlace crea el place con el usuario autenticado como owner
func (s *placeService) CreatePlace(ctx context.Context, ownerID string, req dto.CreatePlaceRequest) (*domain.Place, error) {
	place := &domain.Place{
		Owner:       ownerID,
		Title:       req.Title,
		Address:     req.Address,
		Photos:      req.AddedPhotos,
		Description: req.Description,
		Perks:       req.Perks,
		ExtraInfo:   req.ExtraInfo,
		CheckIn:     req.CheckIn,
		CheckOut:    req.CheckOut,
		MaxGuests:   req.MaxGuests,
		Price:       req.Price,
	}

	if err := s.repo.Create(ctx, place); err != nil {
		return nil, fmt.Errorf("create place: %w", err)
	}

	publish(ctx, s.publisher, events.PlaceMessage{Action: events.ActionCreate, PlaceID: place.ID})
	return place, nil
}

func (s *placeService) GetUserPlaces(ctx context.Context, ownerID string) ([]domain.Place, error) {
	return s.repo.GetByOwner(ctx, ownerID)
}

// GetPlace busca primero en la caché y después en la base
func (s *placeService) GetPlace(ctx context.Context, id string) (*domain.Place, error) {
	if place, ok := s.cache.Get(id); ok {
		return place, nil
	}

	gen := s.generation(id)
	place, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPlaceNotFound
		}
		return nil, err
	}

	s.fillCache(place, gen)
	return place, nil
}

// UpdatePlace aplica los cambios solo si el usuario es el owner del place
func (s *placeService) UpdatePlace(ctx context.Context, userID string, req dto.UpdatePlaceRequest) error {
	// 1. Leer siempre de la base, nunca de la caché
	place, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPlaceNotFound
		}
		return err
	}

	// 2. Verificar que sea el dueño
	if !place.IsOwnedBy(userID) {
		return ErrForbidden
	}

	// 3. Aplicar los campos presentes y guardar
	req.ApplyTo(place)
	if err := s.repo.Update(ctx, place); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPlaceNotFound
		}
		return fmt.Errorf("update place: %w", err)
	}

	s.invalidate(place.ID)
	publish(ctx, s.publisher, events.PlaceMessage{Action: events.ActionUpdate, PlaceID: place.ID})
	return nil
}

// GetAllPlaces devuelve la colección completa, sin paginar
func (s *placeService) GetAllPlaces(ctx context.Context) ([]domain.Place, error) {
	return s.repo.GetAll(ctx)
}

func (s *placeService) generation(id string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generations[id]
}

// fillCache guarda el place leído solo si nadie lo invalidó desde gen
func (s *placeService) fillCache(place *domain.Place, gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generations[place.ID] != gen {
		return
	}
	s.cache.Set(place)
}

func (s *placeService) invalidate(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generations[id]++
	s.cache.Delete(id)
}
