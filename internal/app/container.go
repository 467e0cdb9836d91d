package app

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/nekogravitycat/hotel-booking/internal/booking"
	"github.com/nekogravitycat/hotel-booking/internal/report"
	"github.com/nekogravitycat/hotel-booking/internal/room"
	"github.com/nekogravitycat/hotel-booking/internal/scenario"
	"github.com/nekogravitycat/hotel-booking/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	DateFormat string
	Out        io.Writer
	Logger     logrus.FieldLogger
}

// Container holds the initialized components that are needed externally.
type Container struct {
	RoomService    room.Service
	UserService    user.Service
	BookingService booking.Service
	Reporter       *report.Reporter
	Runner         *scenario.Runner
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// Room Module
	roomRepo := room.NewMemoryRepository()
	roomService := room.NewService(roomRepo)

	// User Module
	userRepo := user.NewMemoryRepository()
	userService := user.NewService(userRepo)

	// Booking Module
	bookingRepo := booking.NewMemoryRepository()
	bookingService := booking.NewService(bookingRepo, userService, roomService)

	// Reporting
	reporter := report.NewReporter(cfg.Out, cfg.DateFormat, roomService, userService, bookingService)

	// Scenario Runner
	runner := scenario.NewRunner(cfg.Logger, cfg.DateFormat, roomService, userService, bookingService)

	return &Container{
		RoomService:    roomService,
		UserService:    userService,
		BookingService: bookingService,
		Reporter:       reporter,
		Runner:         runner,
	}
}
