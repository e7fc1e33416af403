package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	apperrors "tixbox/pkg/errors"
	httputil "tixbox/pkg/http"
)

func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logWriteError("CreateBooking", httputil.WriteError(w, apperrors.InvalidInput("invalid request body")))
		return
	}

	if err := h.validator.Validate(req); err != nil {
		h.logWriteError("CreateBooking", httputil.WriteError(w, apperrors.Validation("invalid booking payload", map[string]any{
			"error": err.Error(),
		})))
		return
	}

	booking, err := h.store.CreateBooking(r.Context(), req.EventID)
	if err != nil {
		h.logWriteError("CreateBooking", httputil.WriteError(w, err))
		return
	}

	h.logWriteError("CreateBooking", httputil.WriteCreated(w, booking))
}

func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	bookings, err := h.store.ListBookings(r.Context())
	if err != nil {
		h.logWriteError("ListBookings", httputil.WriteError(w, err))
		return
	}

	h.logWriteError("ListBookings", httputil.WriteSuccess(w, bookings))
}

func (h *Handler) SelectSeat(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req SelectSeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logWriteError("SelectSeat", httputil.WriteError(w, apperrors.InvalidInput("invalid request body")))
		return
	}

	if err := h.validator.Validate(req); err != nil {
		h.logWriteError("SelectSeat", httputil.WriteError(w, apperrors.Validation("invalid seat payload", map[string]any{
			"error": err.Error(),
		})))
		return
	}

	if err := h.store.SelectSeat(r.Context(), ps.ByName("id"), req.SeatID); err != nil {
		h.logWriteError("SelectSeat", httputil.WriteError(w, err))
		return
	}

	httputil.WriteNoContent(w)
}

func (h *Handler) ReleaseSeat(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	seatID, err := strconv.ParseInt(ps.ByName("id"), 10, 64)
	if err != nil {
		h.logWriteError("ReleaseSeat", httputil.WriteError(w, apperrors.InvalidInput("invalid seat id")))
		return
	}

	if err := h.store.ReleaseSeat(r.Context(), seatID); err != nil {
		h.logWriteError("ReleaseSeat", httputil.WriteError(w, err))
		return
	}

	httputil.WriteNoContent(w)
}

func (h *Handler) InitiatePayment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	booking, err := h.store.InitiatePayment(r.Context(), ps.ByName("id"))
	if err != nil {
		h.logWriteError("InitiatePayment", httputil.WriteError(w, err))
		return
	}

	if h.publisher != nil {
		// Delivery to the payment provider is at-least-once via the
		// outbound topic; a publish failure leaves the booking awaiting
		// payment and is surfaced operationally, not to the client.
		if err := h.publisher.PaymentRequested(r.Context(), booking); err != nil {
			h.log.Error("Failed to publish payment request",
				"booking_id", booking.ID,
				"error", err,
			)
		}
	}

	h.logWriteError("InitiatePayment", httputil.WriteSuccess(w, booking))
}

func (h *Handler) CancelBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.store.CancelBooking(r.Context(), ps.ByName("id")); err != nil {
		h.logWriteError("CancelBooking", httputil.WriteError(w, err))
		return
	}

	httputil.WriteNoContent(w)
}
