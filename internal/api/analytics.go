package api

import (
	"alumni_portal/internal/identity"
	"alumni_portal/internal/services"
	"net/http"

	"go.uber.org/zap"
)

type analyticsHandler struct {
	analytics services.AnalyticsService
	logger    *zap.SugaredLogger
}

func (h *analyticsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.analytics.Dashboard(r.Context(), identity.FromContext(r.Context()))
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	JSONResponse(w, http.StatusOK, analytics, h.logger)
}
