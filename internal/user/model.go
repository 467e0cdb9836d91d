package user

import (
	"time"

	"github.com/nekogravitycat/hotel-booking/internal/pkg/apperror"
)

var (
	ErrNotFound      = apperror.New("user_not_found", "user does not exist")
	ErrAlreadyExists = apperror.New("user_exists", "user already exists")
)

// User represents a guest account. Balance is the operator-set amount of
// funds available for bookings; it is intentionally unvalidated and may be
// set to any value, negative included.
type User struct {
	ID        int
	Balance   int
	CreatedAt time.Time
}
