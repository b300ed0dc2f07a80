package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clippercuts/booking-api/internal/cache"
	"github.com/clippercuts/booking-api/internal/config"
	domain "github.com/clippercuts/booking-api/internal/domain/booking"
	"github.com/clippercuts/booking-api/internal/httperr"
	"github.com/clippercuts/booking-api/internal/models"
	"github.com/clippercuts/booking-api/internal/notify"
	"github.com/clippercuts/booking-api/internal/timezone"
	"github.com/clippercuts/booking-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	BarberID  uint
	ServiceID uint

	Date  string // YYYY-MM-DD
	Time  string // HH:MM, canonical slot
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo       domain.Repository
	cache      *cache.AvailabilityCache
	dispatcher *notify.Dispatcher
	cfg        *config.Config

	now func() time.Time
}

func NewCreateBooking(
	repo domain.Repository,
	cache *cache.AvailabilityCache,
	dispatcher *notify.Dispatcher,
	cfg *config.Config,
) *CreateBooking {
	return &CreateBooking{
		repo:       repo,
		cache:      cache,
		dispatcher: dispatcher,
		cfg:        cfg,
		now: func() time.Time {
			return timezone.NowIn(cfg.ShopTimezone)
		},
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	name := strings.TrimSpace(in.CustomerName)
	email := strings.ToLower(strings.TrimSpace(in.CustomerEmail))
	phone := strings.TrimSpace(in.CustomerPhone)

	if name == "" || email == "" || phone == "" {
		return nil, httperr.ErrBusiness(httperr.CodeValidationFailed)
	}
	if !validators.IsEmailValid(email) {
		return nil, httperr.ErrBusiness(httperr.CodeValidationFailed)
	}
	if in.BarberID == 0 || in.ServiceID == 0 {
		return nil, httperr.ErrBusiness(httperr.CodeValidationFailed)
	}

	if !domain.IsCanonicalSlot(in.Time) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidSlot)
	}

	loc := timezone.Location(uc.cfg.ShopTimezone)

	date, err := time.ParseInLocation(domain.DateLayout, in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeValidationFailed)
	}

	slotStart, err := time.ParseInLocation(
		domain.DateLayout+" "+domain.TimeLayout,
		in.Date+" "+in.Time,
		loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeValidationFailed)
	}

	now := uc.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	if date.Before(today) {
		return nil, httperr.ErrBusiness(httperr.CodeDateInPast)
	}

	maxDate := today.AddDate(0, 0, uc.cfg.MaxAdvanceDays)
	if date.After(maxDate) {
		return nil, httperr.ErrBusiness(httperr.CodeTooFarAhead)
	}

	// Same-day slots need a minimum lead time so nobody books a cut that is
	// about to start.
	if date.Equal(today) {
		lead := time.Duration(uc.cfg.MinLeadMinutes) * time.Minute
		if slotStart.Before(now.Add(lead)) {
			return nil, httperr.ErrBusiness(httperr.CodeTooSoon)
		}
	}

	// Lookup failures other than a missing row propagate as storage errors;
	// a broken check must never let a submission through.
	barber, err := uc.repo.GetBarberByID(ctx, in.BarberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeBarberNotFound)
		}
		return nil, err
	}
	if !barber.Active {
		return nil, httperr.ErrBusiness(httperr.CodeBarberNotFound)
	}

	service, err := uc.repo.GetServiceByID(ctx, in.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
		}
		return nil, err
	}
	if !service.Active {
		return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}

	sched, err := uc.repo.GetSchedule(ctx, in.BarberID, int(date.Weekday()))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeBarberNotWorking)
		}
		return nil, err
	}
	if !sched.IsAvailable {
		return nil, httperr.ErrBusiness(httperr.CodeBarberNotWorking)
	}

	sd, err := uc.repo.GetSpecialDate(ctx, in.Date)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err == nil && sd.IsClosed {
		return nil, httperr.ErrBusiness(httperr.CodeShopClosed)
	}

	b := &models.Booking{
		Reference:     uuid.NewString(),
		CustomerName:  name,
		CustomerEmail: email,
		CustomerPhone: phone,
		BarberID:      in.BarberID,
		ServiceID:     in.ServiceID,
		Date:          in.Date,
		Time:          in.Time,
		Status:        string(domain.InitialStatus()),
		Notes:         strings.TrimSpace(in.Notes),
	}

	// The repository owns atomicity: exactly one of two racing submissions
	// for the same slot comes back without an error.
	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	_ = uc.cache.Invalidate(ctx, b.BarberID, b.Date)

	if uc.dispatcher != nil {
		uc.dispatcher.Dispatch(notify.Message{
			BookingID:     b.ID,
			Reference:     b.Reference,
			CustomerName:  b.CustomerName,
			CustomerEmail: b.CustomerEmail,
			Date:          b.Date,
			Time:          b.Time,
			ServiceTitle:  service.Title,
			ServicePrice:  service.Price,
			BarberName:    barber.Name,
			Notes:         b.Notes,
		})
	}

	return b, nil
}
