package api

import (
	"alumni_portal/internal/apperrors"
	"alumni_portal/internal/db/repositories"
	"alumni_portal/internal/identity"
	"alumni_portal/internal/services"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

type profileHandler struct {
	profiles services.ProfileService
	logger   *zap.SugaredLogger
}

func (h *profileHandler) Me(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profiles.Me(r.Context(), identity.FromContext(r.Context()))
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	JSONResponse(w, http.StatusOK, profile, h.logger)
}

func (h *profileHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var patch services.ProfilePatch
	if err := parseJSONBody(w, r, &patch); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	profile, err := h.profiles.UpdateMe(r.Context(), identity.FromContext(r.Context()), patch)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	JSONResponse(w, http.StatusOK, profile, h.logger)
}

// Directory handles GET /profiles?q=&graduation_year=&verified=
func (h *profileHandler) Directory(w http.ResponseWriter, r *http.Request) {
	filter, err := parseProfileFilter(r)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	profiles, err := h.profiles.Directory(r.Context(), identity.FromContext(r.Context()), filter)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	JSONResponse(w, http.StatusOK, profiles, h.logger)
}

func (h *profileHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profiles.Get(r.Context(), identity.FromContext(r.Context()), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	JSONResponse(w, http.StatusOK, profile, h.logger)
}

func (h *profileHandler) AdminUpdate(w http.ResponseWriter, r *http.Request) {
	var patch services.AdminProfilePatch
	if err := parseJSONBody(w, r, &patch); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	profile, err := h.profiles.AdminUpdate(r.Context(), identity.FromContext(r.Context()), r.PathValue("id"), patch)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	JSONResponse(w, http.StatusOK, profile, h.logger)
}

func (h *profileHandler) AdminDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.profiles.AdminDelete(r.Context(), identity.FromContext(r.Context()), r.PathValue("id")); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseProfileFilter(r *http.Request) (repositories.ProfileFilter, error) {
	query := r.URL.Query()
	filter := repositories.ProfileFilter{Query: query.Get("q")}

	if value := query.Get("graduation_year"); value != "" {
		year, err := strconv.Atoi(value)
		if err != nil {
			return filter, apperrors.InvalidField("graduation_year", "must be a number")
		}
		filter.GraduationYear = &year
	}

	if value := query.Get("verified"); value != "" {
		verified, err := strconv.ParseBool(value)
		if err != nil {
			return filter, apperrors.InvalidField("verified", "must be true or false")
		}
		filter.Verified = &verified
	}

	return filter, nil
}
