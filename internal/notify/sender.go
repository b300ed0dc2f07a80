package notify

import "context"

// Message carries everything the confirmation needs; it is assembled at
// dispatch time so the worker never goes back to the database for details.
type Message struct {
	BookingID uint
	Reference string

	CustomerName  string
	CustomerEmail string

	Date string
	Time string

	ServiceTitle string
	ServicePrice float64
	BarberName   string
	Notes        string
}

// Sender delivers one confirmation message. Transport is an implementation
// detail; failures are reported, never retried by the caller.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
