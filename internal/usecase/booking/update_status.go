package booking

import (
	"context"
	"time"

	"github.com/clippercuts/booking-api/internal/cache"
	"github.com/clippercuts/booking-api/internal/config"
	domain "github.com/clippercuts/booking-api/internal/domain/booking"
	"github.com/clippercuts/booking-api/internal/httperr"
	"github.com/clippercuts/booking-api/internal/models"
	"github.com/clippercuts/booking-api/internal/timezone"
)

type UpdateBookingStatus struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
	cfg   *config.Config

	now func() time.Time
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	cache *cache.AvailabilityCache,
	cfg *config.Config,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:  repo,
		cache: cache,
		cfg:   cfg,
		now: func() time.Time {
			return timezone.NowIn(cfg.ShopTimezone)
		},
	}
}

// Execute moves a booking to the target status under the state machine:
// pending -> confirmed|cancelled, confirmed -> completed|cancelled.
// Staff only; customers never call this.
func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	bookingID uint,
	target domain.Status,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeBookingNotFound)
	}

	switch target {
	case domain.StatusConfirmed:
		err = domain.Confirm(b)
	case domain.StatusCompleted:
		err = domain.Complete(b, uc.now())
	case domain.StatusCancelled:
		err = domain.Cancel(b, uc.now())
	default:
		err = httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	if err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	// Cancelling frees the slot; drop any cached availability for that day.
	if target == domain.StatusCancelled {
		_ = uc.cache.Invalidate(ctx, b.BarberID, b.Date)
	}

	return b, nil
}
