package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/ive-had-worse/internal/jwt"
	"github.com/stretchr/testify/assert"
)

func TestSessionMiddleware(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name             string
		header           string
		mockSetup        func(m *MockTokener)
		expectedStatus   int
		expectNextCalled bool
		expectSession    bool
	}{
		{
			name:             "NoHeader",
			mockSetup:        func(m *MockTokener) {},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
		{
			name:   "MalformedHeader",
			header: "Token abc",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", jwt.ErrInvalidHeader)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "InvalidToken",
			header: "Bearer sometoken",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				m.EXPECT().GetClaims(gomock.Any(), "sometoken").
					Return(nil, errors.New("invalid token"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "ValidToken",
			header: "Bearer validtoken",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				m.EXPECT().GetClaims(gomock.Any(), "validtoken").
					Return(&jwt.Claims{UserID: userID}, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
			expectSession:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockTokener := NewMockTokener(ctrl)
			tt.mockSetup(mockTokener)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				claims, ok := SessionFromContext(r.Context())
				assert.Equal(t, tt.expectSession, ok)
				if ok {
					assert.Equal(t, userID, claims.UserID)
				}
				w.WriteHeader(http.StatusOK)
			})

			handler := SessionMiddleware(mockTokener)(next)

			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			if rr.Code == http.StatusUnauthorized {
				assert.Equal(t, codeInvalidCredentials, decodeError(t, rr).Error)
			}
		})
	}
}

func TestLenientSessionMiddleware(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name          string
		header        string
		mockSetup     func(m *MockTokener)
		expectSession bool
	}{
		{
			name:      "NoHeader",
			mockSetup: func(m *MockTokener) {},
		},
		{
			name:   "MalformedHeader",
			header: "Token abc",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", jwt.ErrInvalidHeader)
			},
		},
		{
			name:   "ExpiredToken",
			header: "Bearer expired",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("expired", nil)
				m.EXPECT().GetClaims(gomock.Any(), "expired").
					Return(nil, jwt.ErrInvalidToken)
			},
		},
		{
			name:   "ValidToken",
			header: "Bearer validtoken",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				m.EXPECT().GetClaims(gomock.Any(), "validtoken").
					Return(&jwt.Claims{UserID: userID}, nil)
			},
			expectSession: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockTokener := NewMockTokener(ctrl)
			tt.mockSetup(mockTokener)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				claims, ok := SessionFromContext(r.Context())
				assert.Equal(t, tt.expectSession, ok)
				if ok {
					assert.Equal(t, userID, claims.UserID)
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()

			LenientSessionMiddleware(mockTokener)(next).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.True(t, nextCalled)
		})
	}
}
