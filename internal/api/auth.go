package api

import (
	"alumni_portal/internal/services"
	"net/http"

	"go.uber.org/zap"
)

type authHandler struct {
	auth     services.AuthService
	sessions Sessions
	logger   *zap.SugaredLogger
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp handles POST /auth/sign-up
func (h *authHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req services.SignUpInput
	if err := parseJSONBody(w, r, &req); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	profile, err := h.auth.SignUp(r.Context(), req)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	if err = h.sessions.SignIn(r.Context(), profile.ID); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	JSONResponse(w, http.StatusCreated, profile, h.logger)
}

// SignIn handles POST /auth/sign-in
func (h *authHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := parseJSONBody(w, r, &req); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	profile, err := h.auth.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	if err = h.sessions.SignIn(r.Context(), profile.ID); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	JSONResponse(w, http.StatusOK, profile, h.logger)
}

// SignOut handles POST /auth/sign-out
func (h *authHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.SignOut(r.Context()); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
