package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clippercuts/booking-api/internal/cache"
	domain "github.com/clippercuts/booking-api/internal/domain/booking"
	"github.com/clippercuts/booking-api/internal/models"
	"github.com/clippercuts/booking-api/internal/timezone"
)

// Tuesday inside the booking window of the fixed test clock.
func testDate() time.Time {
	return time.Date(2026, 3, 3, 0, 0, 0, 0, timezone.Location("Asia/Jakarta"))
}

func TestGetAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("FullGridWhenNothingBooked", func(t *testing.T) {
		repo := newFakeRepo()
		uc := NewGetAvailability(repo, cache.NewAvailabilityCache(nil, 0))

		av, err := uc.Execute(ctx, 1, testDate())
		require.NoError(t, err)

		assert.Equal(t, uint(1), av.BarberID)
		assert.Equal(t, "2026-03-03", av.Date)
		assert.Empty(t, av.Reason)
		assert.Equal(t, domain.CanonicalSlots(), av.Slots)
	})

	t.Run("BookedSlotsExcluded", func(t *testing.T) {
		repo := newFakeRepo()
		uc := newCreateUC(repo)

		for _, slot := range []string{"10:00", "14:30"} {
			in := validInput()
			in.Time = slot
			_, err := uc.Execute(ctx, in)
			require.NoError(t, err)
		}

		avail := NewGetAvailability(repo, cache.NewAvailabilityCache(nil, 0))
		av, err := avail.Execute(ctx, 1, testDate())
		require.NoError(t, err)

		assert.Len(t, av.Slots, 16)
		assert.NotContains(t, av.Slots, "10:00")
		assert.NotContains(t, av.Slots, "14:30")
		assert.Contains(t, av.Slots, "09:00")
	})

	t.Run("CancelledBookingFreesSlot", func(t *testing.T) {
		repo := newFakeRepo()
		uc := newCreateUC(repo)

		b, err := uc.Execute(ctx, validInput())
		require.NoError(t, err)
		repo.setStatus(b.ID, domain.StatusCancelled)

		avail := NewGetAvailability(repo, cache.NewAvailabilityCache(nil, 0))
		av, err := avail.Execute(ctx, 1, testDate())
		require.NoError(t, err)

		assert.Contains(t, av.Slots, "10:00")
	})

	t.Run("NoScheduleRowMeansNotWorking", func(t *testing.T) {
		repo := newFakeRepo()
		delete(repo.schedules[1], int(time.Tuesday))
		uc := NewGetAvailability(repo, cache.NewAvailabilityCache(nil, 0))

		av, err := uc.Execute(ctx, 1, testDate())
		require.NoError(t, err)

		assert.Empty(t, av.Slots)
		assert.Equal(t, domain.ReasonBarberNotWorking, av.Reason)
	})

	t.Run("DayOffMeansNotWorking", func(t *testing.T) {
		repo := newFakeRepo()
		repo.schedules[1][int(time.Tuesday)].IsAvailable = false
		uc := NewGetAvailability(repo, cache.NewAvailabilityCache(nil, 0))

		av, err := uc.Execute(ctx, 1, testDate())
		require.NoError(t, err)

		assert.Empty(t, av.Slots)
		assert.Equal(t, domain.ReasonBarberNotWorking, av.Reason)
	})

	t.Run("UnknownBarberFailsClosed", func(t *testing.T) {
		repo := newFakeRepo()
		uc := NewGetAvailability(repo, cache.NewAvailabilityCache(nil, 0))

		av, err := uc.Execute(ctx, 42, testDate())
		require.NoError(t, err)

		assert.Empty(t, av.Slots)
		assert.Equal(t, domain.ReasonBarberNotWorking, av.Reason)
	})

	t.Run("SpecialDateClosed", func(t *testing.T) {
		repo := newFakeRepo()
		repo.specialDates["2026-03-03"] = &models.SpecialDate{Date: "2026-03-03", IsClosed: true}
		uc := NewGetAvailability(repo, cache.NewAvailabilityCache(nil, 0))

		av, err := uc.Execute(ctx, 1, testDate())
		require.NoError(t, err)

		assert.Empty(t, av.Slots)
		assert.Equal(t, domain.ReasonShopClosed, av.Reason)
	})

	t.Run("ScheduleLookupErrorPropagates", func(t *testing.T) {
		repo := newFakeRepo()
		repo.scheduleErr = errors.New("connection refused")
		uc := NewGetAvailability(repo, cache.NewAvailabilityCache(nil, 0))

		av, err := uc.Execute(ctx, 1, testDate())
		require.Error(t, err)
		assert.Nil(t, av)
	})

	t.Run("SpecialDateLookupErrorPropagates", func(t *testing.T) {
		// The date is actually closed, but the lookup fails. Offering the
		// full grid here would hand out slots the shop cannot honor.
		repo := newFakeRepo()
		repo.specialDates["2026-03-03"] = &models.SpecialDate{Date: "2026-03-03", IsClosed: true}
		repo.specialDateErr = errors.New("connection refused")
		uc := NewGetAvailability(repo, cache.NewAvailabilityCache(nil, 0))

		av, err := uc.Execute(ctx, 1, testDate())
		require.Error(t, err)
		assert.Nil(t, av)
	})

	t.Run("SpecialDateNotClosed", func(t *testing.T) {
		repo := newFakeRepo()
		repo.specialDates["2026-03-03"] = &models.SpecialDate{Date: "2026-03-03", IsClosed: false, Reason: "extended hours"}
		uc := NewGetAvailability(repo, cache.NewAvailabilityCache(nil, 0))

		av, err := uc.Execute(ctx, 1, testDate())
		require.NoError(t, err)

		assert.Len(t, av.Slots, 18)
	})
}

func TestGetAvailabilityCaching(t *testing.T) {
	ctx := context.Background()

	mr := miniredis.RunT(t)
	client := cache.NewRedisClient(mr.Addr(), "")
	avCache := cache.NewAvailabilityCache(client, 30*time.Second)

	repo := newFakeRepo()
	uc := NewGetAvailability(repo, avCache)

	first, err := uc.Execute(ctx, 1, testDate())
	require.NoError(t, err)
	require.Len(t, first.Slots, 18)

	// A booking written behind the cache is not visible until the entry
	// expires or gets invalidated.
	create := newCreateUC(repo)
	_, err = create.Execute(ctx, validInput())
	require.NoError(t, err)

	cached, err := uc.Execute(ctx, 1, testDate())
	require.NoError(t, err)
	assert.Len(t, cached.Slots, 18)

	require.NoError(t, avCache.Invalidate(ctx, 1, "2026-03-03"))

	fresh, err := uc.Execute(ctx, 1, testDate())
	require.NoError(t, err)
	assert.Len(t, fresh.Slots, 17)
	assert.NotContains(t, fresh.Slots, "10:00")
}
