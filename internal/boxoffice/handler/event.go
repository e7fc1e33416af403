package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"tixbox/pkg/config"
	apperrors "tixbox/pkg/errors"
	httputil "tixbox/pkg/http"
)

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logWriteError("CreateEvent", httputil.WriteError(w, apperrors.InvalidInput("invalid request body")))
		return
	}

	if err := h.validator.Validate(req); err != nil {
		h.logWriteError("CreateEvent", httputil.WriteError(w, apperrors.Validation("invalid event payload", map[string]any{
			"error": err.Error(),
		})))
		return
	}

	event, err := h.store.CreateEvent(r.Context(), req.Title, req.External)
	if err != nil {
		h.logWriteError("CreateEvent", httputil.WriteError(w, err))
		return
	}

	h.logWriteError("CreateEvent", httputil.WriteCreated(w, event))
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, offset, err := httputil.ExtractLimitOffset(r)
	if err != nil {
		h.logWriteError("ListEvents", httputil.WriteError(w, err))
		return
	}

	events, total, err := h.store.ListEvents(r.Context(), r.URL.Query().Get("title"), limit, offset)
	if err != nil {
		h.logWriteError("ListEvents", httputil.WriteError(w, err))
		return
	}

	h.logWriteError("ListEvents", httputil.WritePaginated(w, events, total, limit, offset))
}

func (h *Handler) ListSeats(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID, err := strconv.ParseInt(ps.ByName("id"), 10, 64)
	if err != nil {
		h.logWriteError("ListSeats", httputil.WriteError(w, apperrors.InvalidInput("invalid event id")))
		return
	}

	page, pageSize, err := httputil.ExtractPage(r, config.DefaultSeatPageSize)
	if err != nil {
		h.logWriteError("ListSeats", httputil.WriteError(w, err))
		return
	}

	seats, total, err := h.store.ListSeats(r.Context(), eventID, page, pageSize)
	if err != nil {
		h.logWriteError("ListSeats", httputil.WriteError(w, err))
		return
	}

	h.logWriteError("ListSeats", httputil.WritePaginated(w, seats, total, pageSize, (page-1)*pageSize))
}
