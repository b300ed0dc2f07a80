package booking

// Reasons an availability result carries zero slots without being an error.
const (
	ReasonBarberNotWorking = "barber_not_working"
	ReasonShopClosed       = "shop_closed"
)

type Availability struct {
	BarberID uint     `json:"barber_id"`
	Date     string   `json:"date"`
	Slots    []string `json:"slots"`
	Reason   string   `json:"reason,omitempty"`
}
