package model

// Event is immutable after creation; its seat inventory is generated in
// bulk by the store when the event is created.
type Event struct {
	ID       int64  `json:"id"`
	Title    string `json:"title" validate:"required,min=2,max=200"`
	External bool   `json:"external"`
	Seats    int    `json:"seats"`
}
