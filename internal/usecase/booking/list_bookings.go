package booking

import (
	"context"
	"fmt"
	"time"

	domain "github.com/clippercuts/booking-api/internal/domain/booking"
	"github.com/clippercuts/booking-api/internal/httperr"
	"github.com/clippercuts/booking-api/internal/models"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

func (uc *ListBookings) ByDate(
	ctx context.Context,
	date string,
	barberID uint,
	status string,
) ([]models.Booking, error) {

	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeValidationFailed)
	}
	if status != "" && !domain.IsValidStatus(domain.Status(status)) {
		return nil, httperr.ErrBusiness(httperr.CodeValidationFailed)
	}

	return uc.repo.ListBookingsForDate(ctx, date, barberID, status)
}

func (uc *ListBookings) ByMonth(
	ctx context.Context,
	year int,
	month int,
) ([]models.Booking, error) {

	if year < 2000 || year > 2100 || month < 1 || month > 12 {
		return nil, httperr.ErrBusiness(httperr.CodeValidationFailed)
	}

	from := fmt.Sprintf("%04d-%02d-01", year, month)
	next := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	to := next.Format(domain.DateLayout)

	return uc.repo.ListBookingsForPeriod(ctx, from, to)
}
