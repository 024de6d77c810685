package api

import (
	"alumni_portal/internal/apperrors"
	"alumni_portal/internal/db/models"
	"alumni_portal/internal/db/repositories"
	"alumni_portal/internal/identity"
	"alumni_portal/internal/realtime"
	"alumni_portal/internal/services"
	mock_services "alumni_portal/internal/services/mocks"
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const suggestionID = "0b6f8f2e-2a53-4a61-9d35-3c1f6f1d2a10"

type fakeSessions struct {
	caller    *identity.Identity
	err       error
	signedIn  string
	signedOut bool
}

func (f *fakeSessions) Resolve(*http.Request) (*identity.Identity, error) {
	return f.caller, f.err
}

func (f *fakeSessions) SignIn(_ context.Context, profileID string) error {
	f.signedIn = profileID
	return nil
}

func (f *fakeSessions) SignOut(context.Context) error {
	f.signedOut = true
	return nil
}

type testAPI struct {
	handler     http.Handler
	sessions    *fakeSessions
	broker      *realtime.Broker
	auth        *mock_services.MockAuthService
	profiles    *mock_services.MockProfileService
	suggestions *mock_services.MockSuggestionService
	events      *mock_services.MockEventService
	analytics   *mock_services.MockAnalyticsService
}

func newTestAPI(t *testing.T, caller *identity.Identity) *testAPI {
	ctrl := gomock.NewController(t)

	a := &testAPI{
		sessions:    &fakeSessions{caller: caller},
		broker:      realtime.NewBroker(),
		auth:        mock_services.NewMockAuthService(ctrl),
		profiles:    mock_services.NewMockProfileService(ctrl),
		suggestions: mock_services.NewMockSuggestionService(ctrl),
		events:      mock_services.NewMockEventService(ctrl),
		analytics:   mock_services.NewMockAnalyticsService(ctrl),
	}

	a.handler = NewRouter(Dependencies{
		Auth:        a.auth,
		Profiles:    a.profiles,
		Suggestions: a.suggestions,
		Events:      a.events,
		Analytics:   a.analytics,
		Sessions:    a.sessions,
		Changes:     a.broker,
		Logger:      zap.NewNop().Sugar(),
		KeepAlive:   time.Hour,
	})

	return a
}

func (a *testAPI) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

var member = &identity.Identity{ProfileID: "5d0e4f5c-8c3b-4e0b-b2c6-2f7f2d9b6e01", Role: models.ProfileRoleMember}

func TestHealthCheck(t *testing.T) {
	a := newTestAPI(t, nil)

	rec := a.do(http.MethodGet, "/healthcheck", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "I'm alive", rec.Body.String())
}

func TestCastVote_Toggle(t *testing.T) {
	a := newTestAPI(t, member)

	gomock.InOrder(
		a.suggestions.EXPECT().CastVote(gomock.Any(), member, suggestionID).Return(services.VoteAdded, nil),
		a.suggestions.EXPECT().CastVote(gomock.Any(), member, suggestionID).Return(services.VoteRemoved, nil),
	)

	first := a.do(http.MethodPost, "/suggestions/"+suggestionID+"/votes", "")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.JSONEq(t, `{"voted":true}`, first.Body.String())

	second := a.do(http.MethodPost, "/suggestions/"+suggestionID+"/votes", "")
	assert.Equal(t, http.StatusOK, second.Code)
	assert.JSONEq(t, `{"voted":false}`, second.Body.String())
}

func TestCastVote_Unauthenticated(t *testing.T) {
	a := newTestAPI(t, nil)

	a.suggestions.EXPECT().CastVote(gomock.Any(), nil, suggestionID).Return(services.VoteRemoved, apperrors.ErrUnauthenticated)

	rec := a.do(http.MethodPost, "/suggestions/"+suggestionID+"/votes", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthenticated", decodeError(t, rec))
}

func TestCastVote_ConstraintViolation(t *testing.T) {
	a := newTestAPI(t, member)

	a.suggestions.EXPECT().CastVote(gomock.Any(), member, suggestionID).Return(services.VoteRemoved, apperrors.ErrConstraintViolation)

	rec := a.do(http.MethodPost, "/suggestions/"+suggestionID+"/votes", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAddComment(t *testing.T) {
	t.Run("anonymous callers are rejected before the service", func(t *testing.T) {
		a := newTestAPI(t, nil)

		rec := a.do(http.MethodPost, "/suggestions/"+suggestionID+"/comments", `{"content":"hi"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("empty content", func(t *testing.T) {
		a := newTestAPI(t, member)

		a.suggestions.EXPECT().AddComment(gomock.Any(), member, suggestionID, "  ").Return(nil, apperrors.ErrEmptyContent)

		rec := a.do(http.MethodPost, "/suggestions/"+suggestionID+"/comments", `{"content":"  "}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "content is empty", decodeError(t, rec))
	})

	t.Run("malformed body", func(t *testing.T) {
		a := newTestAPI(t, member)

		rec := a.do(http.MethodPost, "/suggestions/"+suggestionID+"/comments", `{"content":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("created", func(t *testing.T) {
		a := newTestAPI(t, member)

		a.suggestions.EXPECT().AddComment(gomock.Any(), member, suggestionID, "count me in").
			Return(&models.Comment{ID: "c1", Content: "count me in"}, nil)

		rec := a.do(http.MethodPost, "/suggestions/"+suggestionID+"/comments", `{"content":"count me in"}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":"c1"`)
	})
}

func TestListSuggestions(t *testing.T) {
	a := newTestAPI(t, member)

	a.suggestions.EXPECT().Feed(gomock.Any(), member).Return([]services.SuggestionSummary{
		{Suggestion: &models.Suggestion{ID: suggestionID, Title: "Picnic"}, VoteCount: 3, Comments: []*models.Comment{}},
	}, nil)

	rec := a.do(http.MethodGet, "/suggestions", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var feed []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &feed))
	require.Len(t, feed, 1)
	assert.Equal(t, "Picnic", feed[0]["title"])
	assert.Equal(t, float64(3), feed[0]["vote_count"])
}

func TestDirectory_QueryParameters(t *testing.T) {
	a := newTestAPI(t, member)

	year, verified := 2016, true
	a.profiles.EXPECT().Directory(gomock.Any(), member, repositories.ProfileFilter{Query: "acme", GraduationYear: &year, Verified: &verified}).
		Return([]*models.Profile{}, nil)

	rec := a.do(http.MethodGet, "/profiles?q=acme&graduation_year=2016&verified=true", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = a.do(http.MethodGet, "/profiles?graduation_year=soon", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignIn_StartsSession(t *testing.T) {
	a := newTestAPI(t, nil)

	a.auth.EXPECT().SignIn(gomock.Any(), "ada@alumni.example", "correct horse").
		Return(&models.Profile{ID: member.ProfileID, PasswordHash: "secret-hash"}, nil)

	rec := a.do(http.MethodPost, "/auth/sign-in", `{"email":"ada@alumni.example","password":"correct horse"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, member.ProfileID, a.sessions.signedIn)
	assert.NotContains(t, rec.Body.String(), "secret-hash")

	rec = a.do(http.MethodPost, "/auth/sign-out", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, a.sessions.signedOut)
}

func TestDeleteEvent_Forbidden(t *testing.T) {
	a := newTestAPI(t, member)

	a.events.EXPECT().Delete(gomock.Any(), member, "e1").Return(apperrors.ErrForbidden)

	rec := a.do(http.MethodDelete, "/events/e1", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestIdentityResolutionFailure(t *testing.T) {
	a := newTestAPI(t, nil)
	a.sessions.err = apperrors.ErrTransportFailure

	rec := a.do(http.MethodGet, "/analytics", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestUnknownErrorsAreHidden(t *testing.T) {
	a := newTestAPI(t, member)

	a.analytics.EXPECT().Dashboard(gomock.Any(), member).Return(nil, assert.AnError)

	rec := a.do(http.MethodGet, "/analytics", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal error", decodeError(t, rec))
}

func TestWithRecover(t *testing.T) {
	handler := WithRecover(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("nil map")
	}), zap.NewNop().Sugar())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal error", decodeError(t, rec))
}

type sseEvent struct {
	name string
	data string
}

func readEvent(t *testing.T, reader *bufio.Reader) sseEvent {
	t.Helper()

	var event sseEvent
	for {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)

		line = strings.TrimRight(line, "\n")
		switch {
		case line == "":
			if event.name != "" {
				return event
			}
		case strings.HasPrefix(line, ":"):
		case strings.HasPrefix(line, "event: "):
			event.name = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			event.data = strings.TrimPrefix(line, "data: ")
		}
	}
}

func TestStream_RefreshesOnChange(t *testing.T) {
	a := newTestAPI(t, member)

	var calls atomic.Int32
	a.suggestions.EXPECT().Feed(gomock.Any(), member).
		DoAndReturn(func(context.Context, *identity.Identity) ([]services.SuggestionSummary, error) {
			n := int(calls.Add(1))
			return []services.SuggestionSummary{
				{Suggestion: &models.Suggestion{ID: suggestionID}, VoteCount: n, Comments: []*models.Comment{}},
			}, nil
		}).
		MinTimes(2)

	server := httptest.NewServer(a.handler)
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/suggestions/feed", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)

	initial := readEvent(t, reader)
	assert.Equal(t, "feed", initial.name)
	assert.Contains(t, initial.data, `"vote_count":1`)

	a.broker.Publish(realtime.Change{Collection: realtime.CollectionVotes, Operation: realtime.OperationInsert, ID: "v1"})

	refreshed := readEvent(t, reader)
	assert.Equal(t, "feed", refreshed.name)
	assert.Contains(t, refreshed.data, `"vote_count":2`)

	cancel()
}

func TestStream_Unauthenticated(t *testing.T) {
	a := newTestAPI(t, nil)

	rec := a.do(http.MethodGet, "/suggestions/feed", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
