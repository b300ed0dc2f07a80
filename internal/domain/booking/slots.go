package booking

import "time"

// The shop offers a fixed grid of 30-minute slots between opening and the
// last bookable start time. Slots are wall-clock HH:MM strings.
const (
	SlotOpen        = "09:00"
	SlotLastStart   = "17:30"
	SlotStepMinutes = 30

	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var canonicalSlots = buildSlots()

func buildSlots() []string {
	open, _ := time.Parse(TimeLayout, SlotOpen)
	last, _ := time.Parse(TimeLayout, SlotLastStart)

	var slots []string
	for cur := open; !cur.After(last); cur = cur.Add(SlotStepMinutes * time.Minute) {
		slots = append(slots, cur.Format(TimeLayout))
	}
	return slots
}

// CanonicalSlots returns the full bookable grid in chronological order.
// The returned slice is a copy; callers may filter it in place.
func CanonicalSlots() []string {
	out := make([]string, len(canonicalSlots))
	copy(out, canonicalSlots)
	return out
}

func IsCanonicalSlot(t string) bool {
	for _, s := range canonicalSlots {
		if s == t {
			return true
		}
	}
	return false
}
