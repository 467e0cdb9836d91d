package user

import (
	"context"
)

// Repository defines methods for accessing user data.
type Repository interface {
	GetByID(ctx context.Context, id int) (*User, error)
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	ListNewestFirst(ctx context.Context) ([]*User, error)
}

// memoryRepository keeps users in process memory, slice for creation order
// and map for lookup, both over the same pointers. Not safe for concurrent use.
type memoryRepository struct {
	users []*User
	byID  map[int]*User
}

// NewMemoryRepository creates an empty in-memory user Repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		byID: make(map[int]*User),
	}
}

func (m *memoryRepository) GetByID(_ context.Context, id int) (*User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return u, nil
}

func (m *memoryRepository) Create(_ context.Context, u *User) error {
	if _, ok := m.byID[u.ID]; ok {
		return ErrAlreadyExists
	}
	m.users = append(m.users, u)
	m.byID[u.ID] = u
	return nil
}

func (m *memoryRepository) Update(_ context.Context, u *User) error {
	stored, ok := m.byID[u.ID]
	if !ok {
		return ErrNotFound
	}
	stored.Balance = u.Balance
	return nil
}

func (m *memoryRepository) ListNewestFirst(_ context.Context) ([]*User, error) {
	out := make([]*User, 0, len(m.users))
	for i := len(m.users) - 1; i >= 0; i-- {
		out = append(out, m.users[i])
	}
	return out, nil
}
