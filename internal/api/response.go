package api

import (
	"alumni_portal/internal/apperrors"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

// JSONResponse writes data as a JSON body with the given status.
func JSONResponse(w http.ResponseWriter, statusCode int, data any, logger *zap.SugaredLogger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Errorw("failed to encode JSON response", "error", err)
	}
}

func ErrorResponse(w http.ResponseWriter, statusCode int, message string, logger *zap.SugaredLogger) {
	JSONResponse(w, statusCode, errorResponse{Error: message}, logger)
}

// writeError maps err onto its status. Errors outside the taxonomy are logged
// and reported with a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error, logger *zap.SugaredLogger) {
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Errorw("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}

	ErrorResponse(w, status, apperrors.PublicMessage(err), logger)
}

func parseJSONBody(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer body.Close()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return apperrors.MissingField("request body")
		}
		return apperrors.InvalidField("request body", "is not valid JSON")
	}

	return nil
}
