package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/nekogravitycat/hotel-booking/internal/room"
	"github.com/nekogravitycat/hotel-booking/internal/user"
)

// BookRequest carries the parameters of a booking attempt. CheckIn is
// inclusive, CheckOut exclusive, both at day granularity.
type BookRequest struct {
	UserID     int
	RoomNumber int
	CheckIn    time.Time
	CheckOut   time.Time
}

type Service interface {
	Book(ctx context.Context, req BookRequest) (*Booking, error)
	ListNewestFirst(ctx context.Context) ([]*Booking, error)
	ListByRoom(ctx context.Context, roomNumber int) ([]*Booking, error)
	ListByUser(ctx context.Context, userID int) ([]*Booking, error)
}

type service struct {
	repo        Repository
	userService user.Service
	roomService room.Service
}

func NewService(repo Repository, userService user.Service, roomService room.Service) Service {
	return &service{
		repo:        repo,
		userService: userService,
		roomService: roomService,
	}
}

// Book validates the request and, only if every check passes, commits the
// reservation: it snapshots the room's current category/price and the user's
// balance, debits the user, and records the booking. Checks run in a fixed
// order and short-circuit; a failed attempt mutates no state at all.
func (s *service) Book(ctx context.Context, req BookRequest) (*Booking, error) {
	// 1. Validate user
	u, err := s.userService.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// 2. Validate room
	r, err := s.roomService.GetByNumber(ctx, req.RoomNumber)
	if err != nil {
		if errors.Is(err, room.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	// 3. Validate date presence
	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return nil, ErrDatesRequired
	}

	// 4. Validate date ordering
	if !req.CheckIn.Before(req.CheckOut) {
		return nil, ErrInvalidDateRange
	}

	// 5. Minimum stay. Implied by the ordering check at day granularity but
	// verified independently.
	nights := nightsBetween(req.CheckIn, req.CheckOut)
	if nights < 1 {
		return nil, ErrStayTooShort
	}

	// 6. Affordability, against the room's current price
	totalCost := nights * r.PricePerNight
	if u.Balance < totalCost {
		return nil, &InsufficientBalanceError{
			Required:  totalCost,
			Available: u.Balance,
		}
	}

	// 7. Availability
	conflict, err := s.repo.FindOverlap(ctx, r.Number, req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}
	if conflict != nil {
		return nil, &UnavailableError{
			RoomNumber:    r.Number,
			CheckIn:       req.CheckIn,
			CheckOut:      req.CheckOut,
			ConflictStart: conflict.CheckIn,
			ConflictEnd:   conflict.CheckOut,
		}
	}

	// 8. Commit
	b := &Booking{
		ID:                uuid.NewString(),
		UserID:            u.ID,
		RoomNumber:        r.Number,
		CategoryAtBooking: r.Category,
		PriceAtBooking:    r.PricePerNight,
		CheckIn:           req.CheckIn,
		CheckOut:          req.CheckOut,
		Nights:            nights,
		TotalCost:         totalCost,
		BalanceAtBooking:  u.Balance,
		CreatedAt:         time.Now().UTC(),
	}
	if _, err := s.userService.Debit(ctx, u.ID, totalCost); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) ListNewestFirst(ctx context.Context) ([]*Booking, error) {
	return s.repo.ListNewestFirst(ctx)
}

func (s *service) ListByRoom(ctx context.Context, roomNumber int) ([]*Booking, error) {
	return s.repo.ListByRoom(ctx, roomNumber)
}

func (s *service) ListByUser(ctx context.Context, userID int) ([]*Booking, error) {
	return s.repo.ListByUser(ctx, userID)
}

// nightsBetween counts whole days between two day-granularity dates.
func nightsBetween(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn) / (24 * time.Hour))
}
