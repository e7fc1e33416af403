package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	httputil "tixbox/pkg/http"
)

// Payment callbacks always acknowledge: the payment processor cannot be
// asked to retry meaningfully, and the store absorbs duplicates and
// out-of-order deliveries.

func (h *Handler) ConfirmPayment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.store.ConfirmPayment(r.Context(), ps.ByName("id")); err != nil {
		h.log.Error("Confirm callback failed", "booking_id", ps.ByName("id"), "error", err)
	}
	h.logWriteError("ConfirmPayment", httputil.WriteSuccess(w, AckResponse{Status: "accepted"}))
}

func (h *Handler) FailPayment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.store.FailPayment(r.Context(), ps.ByName("id")); err != nil {
		h.log.Error("Failure callback failed", "booking_id", ps.ByName("id"), "error", err)
	}
	h.logWriteError("FailPayment", httputil.WriteSuccess(w, AckResponse{Status: "accepted"}))
}
