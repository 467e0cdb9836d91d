package room

import (
	"context"
	"errors"
	"time"
)

// Service defines business logic related to rooms.
type Service interface {
	// Define creates the room if it does not exist, otherwise overwrites its
	// category and nightly price in place. The returned bool reports whether
	// the room was created (true) or updated (false).
	Define(ctx context.Context, number int, category Category, pricePerNight int) (*Room, bool, error)
	GetByNumber(ctx context.Context, number int) (*Room, error)
	ListNewestFirst(ctx context.Context) ([]*Room, error)
}

type service struct {
	repo Repository
}

// NewService creates a new room Service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Define(ctx context.Context, number int, category Category, pricePerNight int) (*Room, bool, error) {
	existing, err := s.repo.GetByNumber(ctx, number)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return nil, false, err
		}
		r := &Room{
			Number:        number,
			Category:      category,
			PricePerNight: pricePerNight,
			CreatedAt:     time.Now().UTC(),
		}
		if err := s.repo.Create(ctx, r); err != nil {
			return nil, false, err
		}
		return r, true, nil
	}

	existing.Category = category
	existing.PricePerNight = pricePerNight
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (s *service) GetByNumber(ctx context.Context, number int) (*Room, error) {
	return s.repo.GetByNumber(ctx, number)
}

func (s *service) ListNewestFirst(ctx context.Context) ([]*Room, error) {
	return s.repo.ListNewestFirst(ctx)
}
