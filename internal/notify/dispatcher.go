package notify

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	domain "github.com/clippercuts/booking-api/internal/domain/booking"
	"github.com/clippercuts/booking-api/internal/metrics"
)

const sendTimeout = 15 * time.Second

// Dispatcher hands confirmation messages to a background worker. Dispatch
// never blocks the booking path: a full queue drops the message with a log
// line, and send failures never touch the booking's persisted state.
type Dispatcher struct {
	sender Sender
	repo   domain.Repository
	logger zerolog.Logger
	queue  chan Message
	done   chan struct{}
}

func NewDispatcher(sender Sender, repo domain.Repository, logger zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		repo:   repo,
		logger: logger,
		queue:  make(chan Message, 100),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for msg := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)

		if err := d.sender.Send(ctx, msg); err != nil {
			metrics.IncNotification("failed")
			d.logger.Error().
				Err(err).
				Uint("booking_id", msg.BookingID).
				Str("reference", msg.Reference).
				Msg("confirmation send failed")
			cancel()
			continue
		}

		metrics.IncNotification("sent")

		if err := d.repo.MarkNotified(ctx, msg.BookingID); err != nil {
			d.logger.Error().
				Err(err).
				Uint("booking_id", msg.BookingID).
				Msg("failed to flag booking as notified")
		}

		cancel()
	}
}

// Dispatch queues one message. At most one attempt is made per booking.
func (d *Dispatcher) Dispatch(msg Message) {
	select {
	case d.queue <- msg:
	default:
		// full queue: drop rather than block the booking response
		metrics.IncNotification("dropped")
		d.logger.Warn().
			Uint("booking_id", msg.BookingID).
			Msg("notification queue full, dropping confirmation")
	}
}

// Close stops accepting messages and waits for the worker to drain.
func (d *Dispatcher) Close() {
	close(d.queue)
	<-d.done
}
