package api

import (
	"alumni_portal/internal/apperrors"
	"alumni_portal/internal/identity"
	"alumni_portal/internal/realtime"
	"alumni_portal/internal/services"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultKeepAlive = 25 * time.Second

var feedCollections = []string{
	realtime.CollectionSuggestions,
	realtime.CollectionVotes,
	realtime.CollectionComments,
}

type suggestionHandler struct {
	suggestions services.SuggestionService
	changes     realtime.Subscriber
	keepAlive   time.Duration
	logger      *zap.SugaredLogger
}

type commentRequest struct {
	Content string `json:"content"`
}

type voteResponse struct {
	Voted bool `json:"voted"`
}

// List handles GET /suggestions
func (h *suggestionHandler) List(w http.ResponseWriter, r *http.Request) {
	feed, err := h.suggestions.Feed(r.Context(), identity.FromContext(r.Context()))
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	JSONResponse(w, http.StatusOK, feed, h.logger)
}

// Create handles POST /suggestions
func (h *suggestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller := identity.FromContext(r.Context())
	if caller == nil {
		writeError(w, r, apperrors.ErrUnauthenticated, h.logger)
		return
	}

	var input services.SuggestionInput
	if err := parseJSONBody(w, r, &input); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	summary, err := h.suggestions.Create(r.Context(), caller, input)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	JSONResponse(w, http.StatusCreated, summary, h.logger)
}

// CastVote handles POST /suggestions/{id}/votes
func (h *suggestionHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	result, err := h.suggestions.CastVote(r.Context(), identity.FromContext(r.Context()), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	JSONResponse(w, http.StatusOK, voteResponse{Voted: result.Voted()}, h.logger)
}

// AddComment handles POST /suggestions/{id}/comments
func (h *suggestionHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	caller := identity.FromContext(r.Context())
	if caller == nil {
		writeError(w, r, apperrors.ErrUnauthenticated, h.logger)
		return
	}

	var req commentRequest
	if err := parseJSONBody(w, r, &req); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	comment, err := h.suggestions.AddComment(r.Context(), caller, r.PathValue("id"), req.Content)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	JSONResponse(w, http.StatusCreated, comment, h.logger)
}

// Stream handles GET /suggestions/feed. It pushes the full aggregated feed on
// connect and again after any change to suggestions, votes or comments.
func (h *suggestionHandler) Stream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller := identity.FromContext(ctx)

	if caller == nil {
		writeError(w, r, apperrors.ErrUnauthenticated, h.logger)
		return
	}

	controller := http.NewResponseController(w)
	clientID := uuid.NewString()

	// one pending refresh absorbs a burst of changes
	refresh := make(chan struct{}, 1)
	notify := func(realtime.Change) {
		select {
		case refresh <- struct{}{}:
		default:
		}
	}

	unsubscribe := realtime.SubscribeMany(h.changes, feedCollections, notify)
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	if err := controller.Flush(); err != nil {
		h.logger.Errorw("feed stream cannot be flushed", "clientID", clientID, "error", err)
		return
	}

	h.logger.Infow("feed subscriber connected", "clientID", clientID, "profileID", caller.ProfileID)
	defer h.logger.Infow("feed subscriber disconnected", "clientID", clientID)

	keepAlive := h.keepAlive
	if keepAlive <= 0 {
		keepAlive = defaultKeepAlive
	}
	ticker := time.NewTicker(keepAlive)
	defer ticker.Stop()

	notify(realtime.Change{})

	stopping := shuttingDown(ctx)
	sequence := 1

	for {
		var err error

		select {
		case <-ctx.Done():
			return
		case <-stopping:
			h.logger.Infow("feed stream closed for shutdown", "clientID", clientID)
			return
		case <-refresh:
			err = h.pushFeed(w, r, caller, sequence)
			sequence++
		case <-ticker.C:
			_, err = fmt.Fprint(w, ": keep-alive\n\n")
		}

		if err == nil {
			err = controller.Flush()
		}

		if err != nil {
			h.logger.Infow("feed stream closed", "clientID", clientID, "error", err)
			return
		}
	}
}

func (h *suggestionHandler) pushFeed(w http.ResponseWriter, r *http.Request, caller *identity.Identity, sequence int) error {
	feed, err := h.suggestions.Feed(r.Context(), caller)
	if err != nil {
		h.logger.Errorw("failed to refresh feed", "error", err)
		return writeEvent(w, sequence, "error", errorResponse{Error: apperrors.PublicMessage(err)})
	}

	return writeEvent(w, sequence, "feed", feed)
}

func writeEvent(w http.ResponseWriter, id int, eventType string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "id: %d\nevent: %s\ndata: %s\n\n", id, eventType, payload)
	return err
}
