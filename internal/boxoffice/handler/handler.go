package handler

import (
	"github.com/julienschmidt/httprouter"

	"tixbox/internal/boxoffice/store"
	"tixbox/internal/boxoffice/validator"
	"tixbox/internal/payments"
	"tixbox/pkg/logger"
)

// Handler is the thin HTTP wrapper around the booking store; it owns no
// state of its own and only maps wire requests to store calls and store
// errors to status codes.
type Handler struct {
	store     store.Store
	publisher payments.Publisher // nil when the async payment flow is disabled
	validator *validator.RequestValidator
	log       *logger.Logger
}

func New(s store.Store, publisher payments.Publisher, v *validator.RequestValidator, log *logger.Logger) *Handler {
	return &Handler{
		store:     s,
		publisher: publisher,
		validator: v,
		log:       log,
	}
}

func (h *Handler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/events", h.CreateEvent)
	router.GET("/api/v1/events", h.ListEvents)
	router.GET("/api/v1/events/:id/seats", h.ListSeats)

	router.POST("/api/v1/bookings", h.CreateBooking)
	router.GET("/api/v1/bookings", h.ListBookings)
	router.POST("/api/v1/bookings/:id/seats", h.SelectSeat)
	router.POST("/api/v1/bookings/:id/payment", h.InitiatePayment)
	router.DELETE("/api/v1/bookings/:id", h.CancelBooking)

	router.POST("/api/v1/seats/:id/release", h.ReleaseSeat)

	router.POST("/api/v1/payments/:id/confirm", h.ConfirmPayment)
	router.POST("/api/v1/payments/:id/fail", h.FailPayment)
}

func (h *Handler) logWriteError(op string, err error) {
	if err != nil {
		h.log.Error("failed to write response", "handler", op, "error", err)
	}
}
