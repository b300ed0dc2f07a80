package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/clippercuts/booking-api/internal/cache"
	domain "github.com/clippercuts/booking-api/internal/domain/booking"
)

type GetAvailability struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
}

func NewGetAvailability(repo domain.Repository, cache *cache.AvailabilityCache) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		cache: cache,
	}
}

// Execute resolves the open slots for (barber, date). The result is never an
// error for a closed shop or a non-working barber: those come back as an
// empty slot list with a reason.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	barberID uint,
	date time.Time,
) (*domain.Availability, error) {

	dateStr := date.Format(domain.DateLayout)

	if cached, err := uc.cache.Get(ctx, barberID, dateStr); err == nil && cached != nil {
		return cached, nil
	}

	av := &domain.Availability{
		BarberID: barberID,
		Date:     dateStr,
		Slots:    []string{},
	}

	// A barber with no schedule row for the weekday does not work that day.
	// Any other lookup failure propagates: offering slots on a failed check
	// would fail open.
	sched, err := uc.repo.GetSchedule(ctx, barberID, int(date.Weekday()))
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		av.Reason = domain.ReasonBarberNotWorking
		return av, nil
	}
	if !sched.IsAvailable {
		av.Reason = domain.ReasonBarberNotWorking
		return av, nil
	}

	sd, err := uc.repo.GetSpecialDate(ctx, dateStr)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err == nil && sd.IsClosed {
		av.Reason = domain.ReasonShopClosed
		return av, nil
	}

	bookedTimes, err := uc.repo.ListBookedTimes(ctx, barberID, dateStr)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]struct{}, len(bookedTimes))
	for _, t := range bookedTimes {
		taken[t] = struct{}{}
	}

	for _, slot := range domain.CanonicalSlots() {
		if _, ok := taken[slot]; !ok {
			av.Slots = append(av.Slots, slot)
		}
	}

	// Best effort; a failed cache write only costs the next caller a query.
	_ = uc.cache.Set(ctx, av)

	return av, nil
}
