package booking

import (
	"context"

	"github.com/clippercuts/booking-api/internal/models"
)

type Repository interface {
	// -------- Reference data --------
	GetBarberByID(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	GetServiceByID(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// GetSchedule returns the barber's row for a day of week, or
	// gorm.ErrRecordNotFound when none exists (treated as not working).
	GetSchedule(
		ctx context.Context,
		barberID uint,
		dayOfWeek int,
	) (*models.BarberSchedule, error)

	GetSpecialDate(
		ctx context.Context,
		date string,
	) (*models.SpecialDate, error)

	// -------- Availability --------
	ListBookedTimes(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]string, error)

	// -------- Booking (create / conflict) --------

	// CreateBooking persists atomically with respect to the
	// (barber, date, time, non-cancelled) uniqueness condition and
	// returns a slot_taken business error when the slot is occupied.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (state change) --------
	GetBookingByID(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	MarkNotified(
		ctx context.Context,
		id uint,
	) error

	// -------- Listing --------
	ListBookingsForDate(
		ctx context.Context,
		date string,
		barberID uint,
		status string,
	) ([]models.Booking, error)

	ListBookingsForPeriod(
		ctx context.Context,
		from string,
		to string,
	) ([]models.Booking, error)
}
