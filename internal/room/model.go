package room

import (
	"fmt"
	"strings"
	"time"

	"github.com/nekogravitycat/hotel-booking/internal/pkg/apperror"
)

var (
	ErrNotFound      = apperror.New("room_not_found", "room does not exist")
	ErrAlreadyExists = apperror.New("room_exists", "room already exists")
)

// Category is the closed set of room categories offered by the hotel.
type Category string

const (
	CategoryStandard Category = "STANDARD"
	CategoryJunior   Category = "JUNIOR"
	CategorySuite    Category = "SUITE"
)

// ParseCategory converts a free-form string (e.g., from a scenario script)
// into a Category. Matching is case-insensitive.
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToUpper(strings.TrimSpace(s))) {
	case CategoryStandard:
		return CategoryStandard, nil
	case CategoryJunior:
		return CategoryJunior, nil
	case CategorySuite:
		return CategorySuite, nil
	}
	return "", apperror.New("invalid_category", fmt.Sprintf("unknown room category %q", s))
}

// Room represents a bookable hotel room. Number is the immutable identity;
// Category and PricePerNight may be redefined at any time without affecting
// bookings already taken against the room (those carry their own snapshot).
type Room struct {
	Number        int
	Category      Category
	PricePerNight int
	CreatedAt     time.Time
}
