package user

import (
	"context"
	"errors"
	"time"
)

// Service defines business logic related to users.
type Service interface {
	// Define creates the user if it does not exist, otherwise overwrites its
	// balance. The returned bool reports whether the user was created (true)
	// or updated (false).
	Define(ctx context.Context, id int, balance int) (*User, bool, error)
	GetByID(ctx context.Context, id int) (*User, error)
	// Debit subtracts amount from the user's balance. Solvency is the
	// caller's concern; Debit applies the charge unconditionally.
	Debit(ctx context.Context, id int, amount int) (*User, error)
	ListNewestFirst(ctx context.Context) ([]*User, error)
}

type service struct {
	repo Repository
}

// NewService creates a new user Service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Define(ctx context.Context, id int, balance int) (*User, bool, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return nil, false, err
		}
		u := &User{
			ID:        id,
			Balance:   balance,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.repo.Create(ctx, u); err != nil {
			return nil, false, err
		}
		return u, true, nil
	}

	existing.Balance = balance
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Debit(ctx context.Context, id int, amount int) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Balance -= amount
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) ListNewestFirst(ctx context.Context) ([]*User, error) {
	return s.repo.ListNewestFirst(ctx)
}
