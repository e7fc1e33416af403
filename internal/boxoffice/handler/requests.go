package handler

type CreateEventRequest struct {
	Title    string `json:"title" validate:"required,min=2,max=200"`
	External bool   `json:"external"`
}

type CreateBookingRequest struct {
	EventID int64 `json:"event_id" validate:"required,min=1"`
}

type SelectSeatRequest struct {
	SeatID int64 `json:"seat_id" validate:"required,min=1"`
}

// AckResponse is the uniform acknowledgement for payment callbacks.
type AckResponse struct {
	Status string `json:"status"`
}
