package booking

import (
	"context"
	"time"
)

// Repository defines methods for accessing the booking ledger.
type Repository interface {
	// Create appends the booking to the global ledger and to the per-room
	// and per-user views. All three hold the same *Booking value.
	Create(ctx context.Context, b *Booking) error
	ListNewestFirst(ctx context.Context) ([]*Booking, error)
	ListByRoom(ctx context.Context, roomNumber int) ([]*Booking, error)
	ListByUser(ctx context.Context, userID int) ([]*Booking, error)

	// FindOverlap returns the first existing booking on the room whose
	// [CheckIn, CheckOut) range overlaps the given half-open range, or nil
	// if the room is free.
	FindOverlap(ctx context.Context, roomNumber int, checkIn, checkOut time.Time) (*Booking, error)
}

// memoryRepository keeps the ledger in process memory. The byRoom and byUser
// maps index the same *Booking values as the ledger slice; bookings are
// stored once and viewed three ways. Not safe for concurrent use.
type memoryRepository struct {
	ledger []*Booking
	byRoom map[int][]*Booking
	byUser map[int][]*Booking
}

// NewMemoryRepository creates an empty in-memory booking Repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		byRoom: make(map[int][]*Booking),
		byUser: make(map[int][]*Booking),
	}
}

func (m *memoryRepository) Create(_ context.Context, b *Booking) error {
	m.ledger = append(m.ledger, b)
	m.byRoom[b.RoomNumber] = append(m.byRoom[b.RoomNumber], b)
	m.byUser[b.UserID] = append(m.byUser[b.UserID], b)
	return nil
}

func (m *memoryRepository) ListNewestFirst(_ context.Context) ([]*Booking, error) {
	out := make([]*Booking, 0, len(m.ledger))
	for i := len(m.ledger) - 1; i >= 0; i-- {
		out = append(out, m.ledger[i])
	}
	return out, nil
}

func (m *memoryRepository) ListByRoom(_ context.Context, roomNumber int) ([]*Booking, error) {
	return m.byRoom[roomNumber], nil
}

func (m *memoryRepository) ListByUser(_ context.Context, userID int) ([]*Booking, error) {
	return m.byUser[userID], nil
}

func (m *memoryRepository) FindOverlap(_ context.Context, roomNumber int, checkIn, checkOut time.Time) (*Booking, error) {
	for _, b := range m.byRoom[roomNumber] {
		// Half-open intervals [a,b) and [c,d) overlap iff a < d && c < b,
		// so a stay ending on a date does not block one starting that date.
		if checkIn.Before(b.CheckOut) && b.CheckIn.Before(checkOut) {
			return b, nil
		}
	}
	return nil, nil
}
