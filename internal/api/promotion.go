package api

import (
	"alumni_portal/internal/apperrors"
	"alumni_portal/internal/identity"
	"alumni_portal/internal/services"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const notConfiguredMessage = "promotion job is not configured"

type promotionHandler struct {
	promotion  services.PromotionService
	serviceKey string
	logger     *zap.SugaredLogger
}

type promotionResponse struct {
	Promoted []string `json:"promoted"`
}

// NewPromotionRouter serves the promotion trigger. Callers authenticate with
// the service key as a bearer token.
func NewPromotionRouter(promotion services.PromotionService, serviceKey string, logger *zap.SugaredLogger) http.Handler {
	h := &promotionHandler{promotion: promotion, serviceKey: serviceKey, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /promotion-service/healthcheck", healthCheckHandler)
	mux.HandleFunc("POST /promotion/run", h.Run)

	return WithRecover(WithLogging(mux, logger), logger)
}

// Run handles POST /promotion/run
func (h *promotionHandler) Run(w http.ResponseWriter, r *http.Request) {
	if h.serviceKey == "" {
		h.logger.Errorw("promotion requested without a configured service key")
		ErrorResponse(w, http.StatusInternalServerError, notConfiguredMessage, h.logger)
		return
	}

	token, ok := bearerToken(r)
	if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(h.serviceKey)) != 1 {
		h.logger.Warnw("promotion requested with an invalid credential", "remote", r.RemoteAddr)
		ErrorResponse(w, http.StatusUnauthorized, apperrors.ErrUnauthenticated.Error(), h.logger)
		return
	}

	promoted, err := h.promotion.Run(r.Context(), identity.Service())
	if errors.Is(err, apperrors.ErrConfiguration) {
		ErrorResponse(w, http.StatusInternalServerError, notConfiguredMessage, h.logger)
		return
	} else if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	if promoted == nil {
		promoted = []string{}
	}

	JSONResponse(w, http.StatusOK, promotionResponse{Promoted: promoted}, h.logger)
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}
