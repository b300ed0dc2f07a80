package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clippercuts/booking-api/internal/cache"
	domain "github.com/clippercuts/booking-api/internal/domain/booking"
	"github.com/clippercuts/booking-api/internal/httperr"
	"github.com/clippercuts/booking-api/internal/models"
)

func newUpdateUC(repo *fakeRepo) *UpdateBookingStatus {
	uc := NewUpdateBookingStatus(repo, cache.NewAvailabilityCache(nil, 0), testConfig())
	uc.now = fixedNow
	return uc
}

func seedBooking(t *testing.T, repo *fakeRepo) *models.Booking {
	t.Helper()

	create := newCreateUC(repo)
	b, err := create.Execute(context.Background(), validInput())
	require.NoError(t, err)
	return b
}

func TestUpdateBookingStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("ConfirmPending", func(t *testing.T) {
		repo := newFakeRepo()
		b := seedBooking(t, repo)

		updated, err := newUpdateUC(repo).Execute(ctx, b.ID, domain.StatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusConfirmed), updated.Status)

		stored, err := repo.GetBookingByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusConfirmed), stored.Status)
	})

	t.Run("CompleteConfirmed", func(t *testing.T) {
		repo := newFakeRepo()
		b := seedBooking(t, repo)
		uc := newUpdateUC(repo)

		_, err := uc.Execute(ctx, b.ID, domain.StatusConfirmed)
		require.NoError(t, err)

		updated, err := uc.Execute(ctx, b.ID, domain.StatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCompleted), updated.Status)
		require.NotNil(t, updated.CompletedAt)
		assert.Equal(t, fixedNow(), *updated.CompletedAt)
	})

	t.Run("CompletePendingRejected", func(t *testing.T) {
		repo := newFakeRepo()
		b := seedBooking(t, repo)

		_, err := newUpdateUC(repo).Execute(ctx, b.ID, domain.StatusCompleted)
		require.Error(t, err)
		assert.Equal(t, httperr.CodeInvalidState, httperr.BusinessCode(err))
	})

	t.Run("CancelFreesSlot", func(t *testing.T) {
		repo := newFakeRepo()
		b := seedBooking(t, repo)

		updated, err := newUpdateUC(repo).Execute(ctx, b.ID, domain.StatusCancelled)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), updated.Status)
		require.NotNil(t, updated.CancelledAt)

		// The freed slot accepts a new submission.
		_, err = newCreateUC(repo).Execute(ctx, validInput())
		require.NoError(t, err)
	})

	t.Run("CancelCompletedRejected", func(t *testing.T) {
		repo := newFakeRepo()
		b := seedBooking(t, repo)
		uc := newUpdateUC(repo)

		_, err := uc.Execute(ctx, b.ID, domain.StatusConfirmed)
		require.NoError(t, err)
		_, err = uc.Execute(ctx, b.ID, domain.StatusCompleted)
		require.NoError(t, err)

		_, err = uc.Execute(ctx, b.ID, domain.StatusCancelled)
		require.Error(t, err)
		assert.Equal(t, httperr.CodeInvalidState, httperr.BusinessCode(err))
	})

	t.Run("PendingTargetRejected", func(t *testing.T) {
		repo := newFakeRepo()
		b := seedBooking(t, repo)

		_, err := newUpdateUC(repo).Execute(ctx, b.ID, domain.StatusPending)
		require.Error(t, err)
		assert.Equal(t, httperr.CodeInvalidState, httperr.BusinessCode(err))
	})

	t.Run("UnknownBooking", func(t *testing.T) {
		repo := newFakeRepo()

		_, err := newUpdateUC(repo).Execute(ctx, 404, domain.StatusConfirmed)
		require.Error(t, err)
		assert.Equal(t, httperr.CodeBookingNotFound, httperr.BusinessCode(err))
	})
}
