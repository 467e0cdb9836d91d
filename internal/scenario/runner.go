package scenario

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nekogravitycat/hotel-booking/internal/booking"
	"github.com/nekogravitycat/hotel-booking/internal/room"
	"github.com/nekogravitycat/hotel-booking/internal/user"
)

// Runner executes a Script against the services. Booking failures are
// expected outcomes: they are logged and the run continues. Only malformed
// scripts (unknown op, bad category, unparseable date) abort the run.
type Runner struct {
	log            logrus.FieldLogger
	dateFormat     string
	roomService    room.Service
	userService    user.Service
	bookingService booking.Service
}

func NewRunner(log logrus.FieldLogger, dateFormat string, rooms room.Service, users user.Service, bookings booking.Service) *Runner {
	return &Runner{
		log:            log,
		dateFormat:     dateFormat,
		roomService:    rooms,
		userService:    users,
		bookingService: bookings,
	}
}

// Run executes every step of the script in order.
func (r *Runner) Run(ctx context.Context, script *Script) error {
	r.log.WithField("scenario", script.Name).Info("running scenario")
	for i, step := range script.Steps {
		if err := r.runStep(ctx, step); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
		}
	}
	return nil
}

func (r *Runner) runStep(ctx context.Context, step Step) error {
	switch step.Op {
	case OpSetRoom:
		return r.setRoom(ctx, step)
	case OpSetUser:
		return r.setUser(ctx, step)
	case OpBook:
		return r.book(ctx, step)
	}
	return fmt.Errorf("unknown op %q", step.Op)
}

func (r *Runner) setRoom(ctx context.Context, step Step) error {
	category, err := room.ParseCategory(step.Category)
	if err != nil {
		return err
	}
	rm, created, err := r.roomService.Define(ctx, step.Room, category, step.Price)
	if err != nil {
		return err
	}
	entry := r.log.WithFields(logrus.Fields{
		"room":        rm.Number,
		"category":    rm.Category,
		"price/night": rm.PricePerNight,
	})
	if created {
		entry.Info("created room")
	} else {
		entry.Info("updated room")
	}
	return nil
}

func (r *Runner) setUser(ctx context.Context, step Step) error {
	u, created, err := r.userService.Define(ctx, step.User, step.Balance)
	if err != nil {
		return err
	}
	entry := r.log.WithFields(logrus.Fields{
		"user":    u.ID,
		"balance": u.Balance,
	})
	if created {
		entry.Info("created user")
	} else {
		entry.Info("updated user")
	}
	return nil
}

func (r *Runner) book(ctx context.Context, step Step) error {
	checkIn, err := r.parseDate(step.CheckIn)
	if err != nil {
		return err
	}
	checkOut, err := r.parseDate(step.CheckOut)
	if err != nil {
		return err
	}

	entry := r.log.WithFields(logrus.Fields{
		"user": step.User,
		"room": step.Room,
		"from": step.CheckIn,
		"to":   step.CheckOut,
	})

	b, err := r.bookingService.Book(ctx, booking.BookRequest{
		UserID:     step.User,
		RoomNumber: step.Room,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	})
	if err != nil {
		entry.WithError(err).Warn("booking failed")
		return nil
	}

	entry.WithFields(logrus.Fields{
		"reference":  b.ID,
		"nights":     b.Nights,
		"total cost": b.TotalCost,
	}).Info("booking succeeded")
	return nil
}

// parseDate maps an empty script date to the zero time so the booking
// service can report it as an absent date.
func (r *Runner) parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(r.dateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}
