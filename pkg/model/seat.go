package model

type SeatStatus string

const (
	SeatFree     SeatStatus = "FREE"
	SeatReserved SeatStatus = "RESERVED"
	SeatSold     SeatStatus = "SOLD"
)

// Seat ids are unique across all events. Row and Number are 1-based; Price
// is a decimal string so no float rounding ever reaches a client.
type Seat struct {
	ID      int64      `json:"id"`
	EventID int64      `json:"event_id"`
	Row     int        `json:"row" validate:"min=1"`
	Number  int        `json:"number" validate:"min=1"`
	Status  SeatStatus `json:"status"`
	Price   string     `json:"price"`
}
