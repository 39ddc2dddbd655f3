package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/modmarket/modmarket/internal/models"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{
		UserID:   uuid.New(),
		Username: "alice",
	}

	tests := []struct {
		name             string
		mockSetup        func(tokens *MockTokenExtractor, auth *MockUserAuthenticator)
		expectedStatus   int
		expectNextCalled bool
		expectUser       bool
	}{
		{
			name: "NoToken",
			mockSetup: func(tokens *MockTokenExtractor, auth *MockUserAuthenticator) {
				tokens.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name: "UnknownToken",
			mockSetup: func(tokens *MockTokenExtractor, auth *MockUserAuthenticator) {
				tokens.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				auth.EXPECT().Authenticate(gomock.Any(), "sometoken").
					Return(nil, nil)
			},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name: "AuthenticateError",
			mockSetup: func(tokens *MockTokenExtractor, auth *MockUserAuthenticator) {
				tokens.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				auth.EXPECT().Authenticate(gomock.Any(), "sometoken").
					Return(nil, errors.New("db down"))
			},
			expectedStatus:   http.StatusInternalServerError,
			expectNextCalled: false,
		},
		{
			name: "ValidToken",
			mockSetup: func(tokens *MockTokenExtractor, auth *MockUserAuthenticator) {
				tokens.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				auth.EXPECT().Authenticate(gomock.Any(), "validtoken").
					Return(user, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
			expectUser:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokens := NewMockTokenExtractor(ctrl)
			mockAuth := NewMockUserAuthenticator(ctrl)
			tt.mockSetup(mockTokens, mockAuth)

			// Wrap a next handler to check if it was called
			nextCalled := false
			var seenUser *models.UserDB
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				seenUser = GetUserFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(mockTokens, mockAuth)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			if tt.expectUser {
				assert.Equal(t, user, seenUser)
			}
		})
	}
}

func TestOptionalAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{
		UserID:   uuid.New(),
		Username: "bob",
	}

	tests := []struct {
		name       string
		mockSetup  func(tokens *MockTokenExtractor, auth *MockUserAuthenticator)
		expectUser bool
	}{
		{
			name: "NoToken",
			mockSetup: func(tokens *MockTokenExtractor, auth *MockUserAuthenticator) {
				tokens.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectUser: false,
		},
		{
			name: "UnknownToken",
			mockSetup: func(tokens *MockTokenExtractor, auth *MockUserAuthenticator) {
				tokens.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				auth.EXPECT().Authenticate(gomock.Any(), "sometoken").
					Return(nil, nil)
			},
			expectUser: false,
		},
		{
			name: "ValidToken",
			mockSetup: func(tokens *MockTokenExtractor, auth *MockUserAuthenticator) {
				tokens.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				auth.EXPECT().Authenticate(gomock.Any(), "validtoken").
					Return(user, nil)
			},
			expectUser: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokens := NewMockTokenExtractor(ctrl)
			mockAuth := NewMockUserAuthenticator(ctrl)
			tt.mockSetup(mockTokens, mockAuth)

			nextCalled := false
			var seenUser *models.UserDB
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				seenUser = GetUserFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			handler := OptionalAuthMiddleware(mockTokens, mockAuth)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			// Optional auth never rejects
			assert.Equal(t, http.StatusOK, rr.Code)
			assert.True(t, nextCalled)
			if tt.expectUser {
				assert.Equal(t, user, seenUser)
			} else {
				assert.Nil(t, seenUser)
			}
		})
	}
}

func TestGetUserFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, GetUserFromContext(req.Context()))
}
