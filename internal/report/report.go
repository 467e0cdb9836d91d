// Package report renders the registry's current and historical state as
// plain text. It only reads from the services and never mutates state.
package report

import (
	"context"
	"fmt"
	"io"

	"github.com/nekogravitycat/hotel-booking/internal/booking"
	"github.com/nekogravitycat/hotel-booking/internal/room"
	"github.com/nekogravitycat/hotel-booking/internal/user"
)

// Reporter writes room, booking, and user listings to out, newest first.
type Reporter struct {
	out            io.Writer
	dateFormat     string
	roomService    room.Service
	userService    user.Service
	bookingService booking.Service
}

func NewReporter(out io.Writer, dateFormat string, rooms room.Service, users user.Service, bookings booking.Service) *Reporter {
	return &Reporter{
		out:            out,
		dateFormat:     dateFormat,
		roomService:    rooms,
		userService:    users,
		bookingService: bookings,
	}
}

// Rooms lists every room with its current category and nightly price.
func (r *Reporter) Rooms(ctx context.Context) error {
	rooms, err := r.roomService.ListNewestFirst(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, "=== Rooms (latest to oldest) ===")
	for _, rm := range rooms {
		fmt.Fprintf(r.out, "Room %d: category=%s, price/night=%d\n",
			rm.Number, rm.Category, rm.PricePerNight)
	}
	return nil
}

// Bookings lists every booking with the full snapshot captured at booking
// time, untouched by later room or user redefinitions.
func (r *Reporter) Bookings(ctx context.Context) error {
	bookings, err := r.bookingService.ListNewestFirst(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, "=== Bookings (latest to oldest) ===")
	for _, b := range bookings {
		fmt.Fprintf(r.out,
			"Booking %s: user=%d, room=%d, category at booking=%s, price at booking=%d, check-in=%s, check-out=%s, nights=%d, total cost=%d, balance at booking=%d\n",
			b.ID, b.UserID, b.RoomNumber, b.CategoryAtBooking, b.PriceAtBooking,
			b.CheckIn.Format(r.dateFormat), b.CheckOut.Format(r.dateFormat),
			b.Nights, b.TotalCost, b.BalanceAtBooking)
	}
	return nil
}

// Users lists every user with its current balance.
func (r *Reporter) Users(ctx context.Context) error {
	users, err := r.userService.ListNewestFirst(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, "=== Users (latest to oldest) ===")
	for _, u := range users {
		fmt.Fprintf(r.out, "User %d: balance=%d\n", u.ID, u.Balance)
	}
	return nil
}

// All prints the three listings in the reference order: rooms, bookings,
// then users, separated by blank lines.
func (r *Reporter) All(ctx context.Context) error {
	if err := r.Rooms(ctx); err != nil {
		return err
	}
	fmt.Fprintln(r.out)
	if err := r.Bookings(ctx); err != nil {
		return err
	}
	fmt.Fprintln(r.out)
	return r.Users(ctx)
}
