package room

import (
	"context"
)

// Repository defines methods for accessing room data.
type Repository interface {
	GetByNumber(ctx context.Context, number int) (*Room, error)
	Create(ctx context.Context, r *Room) error
	Update(ctx context.Context, r *Room) error
	ListNewestFirst(ctx context.Context) ([]*Room, error)
}

// memoryRepository keeps rooms in process memory. Creation order is tracked
// by the slice; the map is only a lookup index over the same pointers.
// Not safe for concurrent use.
type memoryRepository struct {
	rooms    []*Room
	byNumber map[int]*Room
}

// NewMemoryRepository creates an empty in-memory room Repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		byNumber: make(map[int]*Room),
	}
}

func (m *memoryRepository) GetByNumber(_ context.Context, number int) (*Room, error) {
	r, ok := m.byNumber[number]
	if !ok {
		return nil, ErrNotFound
	}
	return r, nil
}

func (m *memoryRepository) Create(_ context.Context, r *Room) error {
	if _, ok := m.byNumber[r.Number]; ok {
		return ErrAlreadyExists
	}
	m.rooms = append(m.rooms, r)
	m.byNumber[r.Number] = r
	return nil
}

func (m *memoryRepository) Update(_ context.Context, r *Room) error {
	stored, ok := m.byNumber[r.Number]
	if !ok {
		return ErrNotFound
	}
	stored.Category = r.Category
	stored.PricePerNight = r.PricePerNight
	return nil
}

func (m *memoryRepository) ListNewestFirst(_ context.Context) ([]*Room, error) {
	out := make([]*Room, 0, len(m.rooms))
	for i := len(m.rooms) - 1; i >= 0; i-- {
		out = append(out, m.rooms[i])
	}
	return out, nil
}
