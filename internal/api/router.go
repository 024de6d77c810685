package api

import (
	"alumni_portal/internal/identity"
	"alumni_portal/internal/realtime"
	"alumni_portal/internal/services"
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Sessions resolves callers and starts or ends their sessions.
type Sessions interface {
	identity.Resolver
	SignIn(ctx context.Context, profileID string) error
	SignOut(ctx context.Context) error
}

type Dependencies struct {
	Auth        services.AuthService
	Profiles    services.ProfileService
	Suggestions services.SuggestionService
	Events      services.EventService
	Analytics   services.AnalyticsService
	Sessions    Sessions
	Changes     realtime.Subscriber
	Logger      *zap.SugaredLogger
	// KeepAlive is the interval of comment lines on idle feed streams.
	KeepAlive time.Duration
}

func NewRouter(d Dependencies) http.Handler {
	mux := http.NewServeMux()

	auth := &authHandler{auth: d.Auth, sessions: d.Sessions, logger: d.Logger}
	profiles := &profileHandler{profiles: d.Profiles, logger: d.Logger}
	suggestions := &suggestionHandler{suggestions: d.Suggestions, changes: d.Changes, keepAlive: d.KeepAlive, logger: d.Logger}
	events := &eventHandler{events: d.Events, logger: d.Logger}
	analytics := &analyticsHandler{analytics: d.Analytics, logger: d.Logger}

	mux.HandleFunc("GET /healthcheck", healthCheckHandler)

	mux.HandleFunc("POST /auth/sign-up", auth.SignUp)
	mux.HandleFunc("POST /auth/sign-in", auth.SignIn)
	mux.HandleFunc("POST /auth/sign-out", auth.SignOut)

	mux.HandleFunc("GET /profiles/me", profiles.Me)
	mux.HandleFunc("PATCH /profiles/me", profiles.UpdateMe)
	mux.HandleFunc("GET /profiles", profiles.Directory)
	mux.HandleFunc("GET /profiles/{id}", profiles.Get)
	mux.HandleFunc("PATCH /admin/profiles/{id}", profiles.AdminUpdate)
	mux.HandleFunc("DELETE /admin/profiles/{id}", profiles.AdminDelete)

	mux.HandleFunc("GET /suggestions", suggestions.List)
	mux.HandleFunc("GET /suggestions/feed", suggestions.Stream)
	mux.HandleFunc("POST /suggestions", suggestions.Create)
	mux.HandleFunc("POST /suggestions/{id}/votes", suggestions.CastVote)
	mux.HandleFunc("POST /suggestions/{id}/comments", suggestions.AddComment)

	mux.HandleFunc("GET /events", events.List)
	mux.HandleFunc("POST /events", events.Create)
	mux.HandleFunc("PATCH /events/{id}", events.Update)
	mux.HandleFunc("DELETE /events/{id}", events.Delete)

	mux.HandleFunc("GET /analytics", analytics.Dashboard)

	return WithRecover(WithLogging(WithIdentity(mux, d.Sessions, d.Logger), d.Logger), d.Logger)
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte("I'm alive"))
}
