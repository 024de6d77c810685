package api

import (
	"alumni_portal/internal/apperrors"
	"alumni_portal/internal/identity"
	mock_services "alumni_portal/internal/services/mocks"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const serviceKey = "s3rv1ce-k3y"

func runPromotion(handler http.Handler, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/promotion/run", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestPromotionRun(t *testing.T) {
	tests := []struct {
		name          string
		serviceKey    string
		authorization string
		setup         func(m *mock_services.MockPromotionService)
		wantStatus    int
		wantBody      string
	}{
		{
			name:          "service key is not configured",
			serviceKey:    "",
			authorization: "Bearer anything",
			wantStatus:    http.StatusInternalServerError,
			wantBody:      `{"error":"promotion job is not configured"}`,
		},
		{
			name:          "wrong key",
			serviceKey:    serviceKey,
			authorization: "Bearer guess",
			wantStatus:    http.StatusUnauthorized,
			wantBody:      `{"error":"unauthenticated"}`,
		},
		{
			name:          "missing header",
			serviceKey:    serviceKey,
			authorization: "",
			wantStatus:    http.StatusUnauthorized,
			wantBody:      `{"error":"unauthenticated"}`,
		},
		{
			name:          "wrong scheme",
			serviceKey:    serviceKey,
			authorization: "Basic " + serviceKey,
			wantStatus:    http.StatusUnauthorized,
			wantBody:      `{"error":"unauthenticated"}`,
		},
		{
			name:          "promoted suggestions",
			serviceKey:    serviceKey,
			authorization: "Bearer " + serviceKey,
			setup: func(m *mock_services.MockPromotionService) {
				m.EXPECT().Run(gomock.Any(), identity.Service()).Return([]string{"s1", "s2"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"promoted":["s1","s2"]}`,
		},
		{
			name:          "nothing to promote",
			serviceKey:    serviceKey,
			authorization: "bearer " + serviceKey,
			setup: func(m *mock_services.MockPromotionService) {
				m.EXPECT().Run(gomock.Any(), identity.Service()).Return(nil, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"promoted":[]}`,
		},
		{
			name:          "invalid threshold",
			serviceKey:    serviceKey,
			authorization: "Bearer " + serviceKey,
			setup: func(m *mock_services.MockPromotionService) {
				m.EXPECT().Run(gomock.Any(), identity.Service()).
					Return(nil, fmt.Errorf("%w: threshold must be positive", apperrors.ErrConfiguration))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"promotion job is not configured"}`,
		},
		{
			name:          "storage unreachable",
			serviceKey:    serviceKey,
			authorization: "Bearer " + serviceKey,
			setup: func(m *mock_services.MockPromotionService) {
				m.EXPECT().Run(gomock.Any(), identity.Service()).Return(nil, apperrors.ErrTransportFailure)
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"error":"storage is unreachable"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			promotion := mock_services.NewMockPromotionService(ctrl)
			if tt.setup != nil {
				tt.setup(promotion)
			}

			handler := NewPromotionRouter(promotion, tt.serviceKey, zap.NewNop().Sugar())

			rec := runPromotion(handler, tt.authorization)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestPromotionHealthCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := NewPromotionRouter(mock_services.NewMockPromotionService(ctrl), serviceKey, zap.NewNop().Sugar())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/promotion-service/healthcheck", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "I'm alive", rec.Body.String())
}
