package notify

import (
	"context"

	"github.com/rs/zerolog"
)

// LogSender stands in when no mail transport is configured: the confirmation
// is written to the log and counted as sent.
type LogSender struct {
	logger zerolog.Logger
}

func NewLogSender(logger zerolog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, msg Message) error {
	s.logger.Info().
		Str("to", msg.CustomerEmail).
		Str("reference", msg.Reference).
		Str("date", msg.Date).
		Str("time", msg.Time).
		Str("service", msg.ServiceTitle).
		Str("barber", msg.BarberName).
		Msg("mock confirmation email")
	return nil
}
