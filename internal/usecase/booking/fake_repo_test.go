package booking

import (
	"context"
	"sync"

	"gorm.io/gorm"

	domain "github.com/clippercuts/booking-api/internal/domain/booking"
	"github.com/clippercuts/booking-api/internal/httperr"
	"github.com/clippercuts/booking-api/internal/models"
)

// fakeRepo is an in-memory domain.Repository. CreateBooking holds the mutex
// for the whole check-and-insert, matching the atomicity the real store gets
// from its transaction and unique index.
type fakeRepo struct {
	mu sync.Mutex

	barbers      map[uint]*models.Barber
	services     map[uint]*models.Service
	schedules    map[uint]map[int]*models.BarberSchedule
	specialDates map[string]*models.SpecialDate

	bookings []*models.Booking
	nextID   uint

	// Injectable lookup failures for the storage-error paths.
	barberErr      error
	serviceErr     error
	scheduleErr    error
	specialDateErr error
}

// newFakeRepo seeds one active barber (ID 1) working every day and one
// active service (ID 1).
func newFakeRepo() *fakeRepo {
	r := &fakeRepo{
		barbers:      map[uint]*models.Barber{},
		services:     map[uint]*models.Service{},
		schedules:    map[uint]map[int]*models.BarberSchedule{},
		specialDates: map[string]*models.SpecialDate{},
		nextID:       1,
	}

	r.barbers[1] = &models.Barber{Name: "Andi", Active: true}
	r.barbers[1].ID = 1

	r.services[1] = &models.Service{Title: "Classic Cut", Price: 50000, DurationMin: 30, Active: true}
	r.services[1].ID = 1

	r.schedules[1] = map[int]*models.BarberSchedule{}
	for day := 0; day <= 6; day++ {
		r.schedules[1][day] = &models.BarberSchedule{BarberID: 1, DayOfWeek: day, IsAvailable: true}
	}

	return r
}

var _ domain.Repository = (*fakeRepo)(nil)

func (r *fakeRepo) GetBarberByID(_ context.Context, id uint) (*models.Barber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.barberErr != nil {
		return nil, r.barberErr
	}
	b, ok := r.barbers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return b, nil
}

func (r *fakeRepo) GetServiceByID(_ context.Context, id uint) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.serviceErr != nil {
		return nil, r.serviceErr
	}
	s, ok := r.services[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *fakeRepo) GetSchedule(_ context.Context, barberID uint, dayOfWeek int) (*models.BarberSchedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.scheduleErr != nil {
		return nil, r.scheduleErr
	}
	days, ok := r.schedules[barberID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	sched, ok := days[dayOfWeek]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return sched, nil
}

func (r *fakeRepo) GetSpecialDate(_ context.Context, date string) (*models.SpecialDate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.specialDateErr != nil {
		return nil, r.specialDateErr
	}
	sd, ok := r.specialDates[date]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return sd, nil
}

func (r *fakeRepo) ListBookedTimes(_ context.Context, barberID uint, date string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var times []string
	for _, b := range r.bookings {
		if b.BarberID == barberID && b.Date == date && domain.Occupies(domain.Status(b.Status)) {
			times = append(times, b.Time)
		}
	}
	return times, nil
}

func (r *fakeRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ex := range r.bookings {
		if ex.BarberID == b.BarberID && ex.Date == b.Date && ex.Time == b.Time &&
			domain.Occupies(domain.Status(ex.Status)) {
			return httperr.ErrBusiness(httperr.CodeSlotTaken)
		}
	}

	b.ID = r.nextID
	r.nextID++

	stored := *b
	r.bookings = append(r.bookings, &stored)
	return nil
}

func (r *fakeRepo) GetBookingByID(_ context.Context, id uint) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.bookings {
		if b.ID == id {
			cp := *b
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, ex := range r.bookings {
		if ex.ID == b.ID {
			cp := *b
			r.bookings[i] = &cp
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeRepo) MarkNotified(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.bookings {
		if b.ID == id {
			b.Notified = true
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeRepo) ListBookingsForDate(_ context.Context, date string, barberID uint, status string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Booking
	for _, b := range r.bookings {
		if b.Date != date {
			continue
		}
		if barberID != 0 && b.BarberID != barberID {
			continue
		}
		if status != "" && b.Status != status {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeRepo) ListBookingsForPeriod(_ context.Context, from, to string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Booking
	for _, b := range r.bookings {
		if b.Date >= from && b.Date < to {
			out = append(out, *b)
		}
	}
	return out, nil
}

// setStatus flips a stored booking's status directly, bypassing the state
// machine, for test setup.
func (r *fakeRepo) setStatus(id uint, status domain.Status) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.bookings {
		if b.ID == id {
			b.Status = string(status)
		}
	}
}
