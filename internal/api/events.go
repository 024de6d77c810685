package api

import (
	"alumni_portal/internal/identity"
	"alumni_portal/internal/services"
	"net/http"

	"go.uber.org/zap"
)

type eventHandler struct {
	events services.EventService
	logger *zap.SugaredLogger
}

func (h *eventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.List(r.Context(), identity.FromContext(r.Context()))
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	JSONResponse(w, http.StatusOK, events, h.logger)
}

func (h *eventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.EventInput
	if err := parseJSONBody(w, r, &input); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	event, err := h.events.Create(r.Context(), identity.FromContext(r.Context()), input)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	JSONResponse(w, http.StatusCreated, event, h.logger)
}

func (h *eventHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch services.EventPatch
	if err := parseJSONBody(w, r, &patch); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	event, err := h.events.Update(r.Context(), identity.FromContext(r.Context()), r.PathValue("id"), patch)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	JSONResponse(w, http.StatusOK, event, h.logger)
}

func (h *eventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.events.Delete(r.Context(), identity.FromContext(r.Context()), r.PathValue("id")); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
