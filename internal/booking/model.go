package booking

import (
	"fmt"
	"time"

	"github.com/nekogravitycat/hotel-booking/internal/pkg/apperror"
	"github.com/nekogravitycat/hotel-booking/internal/room"
)

var (
	ErrUserNotFound        = apperror.New("user_not_found", "user does not exist")
	ErrRoomNotFound        = apperror.New("room_not_found", "room does not exist")
	ErrDatesRequired       = apperror.New("dates_required", "dates cannot be null")
	ErrInvalidDateRange    = apperror.New("invalid_date_range", "check-in must be before check-out")
	ErrStayTooShort        = apperror.New("stay_too_short", "stay must be at least one night")
	ErrInsufficientBalance = apperror.New("insufficient_balance", "insufficient balance")
	ErrRoomUnavailable     = apperror.New("room_unavailable", "room is not available for the requested range")
)

// InsufficientBalanceError reports the shortfall on a rejected booking.
// It matches ErrInsufficientBalance under errors.Is.
type InsufficientBalanceError struct {
	Required  int
	Available int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: required %d, available %d", e.Required, e.Available)
}

func (e *InsufficientBalanceError) Unwrap() error {
	return ErrInsufficientBalance
}

// UnavailableError reports the existing booking that conflicts with the
// requested range. It matches ErrRoomUnavailable under errors.Is.
type UnavailableError struct {
	RoomNumber    int
	CheckIn       time.Time
	CheckOut      time.Time
	ConflictStart time.Time
	ConflictEnd   time.Time
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("room %d is not available from %s to %s",
		e.RoomNumber,
		e.CheckIn.Format(time.DateOnly),
		e.CheckOut.Format(time.DateOnly))
}

func (e *UnavailableError) Unwrap() error {
	return ErrRoomUnavailable
}

// Booking is an immutable snapshot of a successful reservation. Category and
// price are copied from the room at booking time so later room redefinitions
// never rewrite history; BalanceAtBooking is the user's balance immediately
// before the cost was deducted.
type Booking struct {
	ID                string // UUID reference code
	UserID            int
	RoomNumber        int
	CategoryAtBooking room.Category
	PriceAtBooking    int
	CheckIn           time.Time // inclusive
	CheckOut          time.Time // exclusive
	Nights            int
	TotalCost         int
	BalanceAtBooking  int
	CreatedAt         time.Time
}
