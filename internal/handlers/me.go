package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/modmarket/modmarket/internal/logger"
	"github.com/modmarket/modmarket/internal/models"
)

// MeTokener defines only the methods needed by this handler.
type MeTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// ProfileReader defines the interface that the auth service must implement.
type ProfileReader interface {
	CurrentUser(ctx context.Context, tokenString string) (*models.Profile, error)
}

// MeResponse represents the identity of the authenticated caller
// swagger:model MeResponse
type MeResponse struct {
	// User identifier
	UserID string `json:"user_id"`

	// Username
	// default: john_doe
	Username string `json:"username"`

	// Whether the user may publish modules
	// default: false
	IsDeveloper bool `json:"is_developer"`

	// Account creation timestamp
	CreatedAt time.Time `json:"created_at"`
}

// MeErrorResponse represents an error response for identity lookup
// swagger:model MeErrorResponse
type MeErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewMeHandler returns an HTTP handler that resolves the session token to
// the calling user's profile.
// @Summary Current user
// @Description Returns the profile of the user owning the presented session token
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MeResponse "Authenticated user profile"
// @Failure 401 {object} handlers.MeErrorResponse "Missing, unknown, or expired token"
// @Failure 500 {object} handlers.MeErrorResponse "Internal server error"
// @Router /me [get]
// @Security BearerAuth
func NewMeHandler(
	profiles ProfileReader,
	tokenGetter MeTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MeErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		profile, err := profiles.CurrentUser(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to resolve current user", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(MeErrorResponse{
				Error: "Internal server error",
			})
			return
		}
		if profile == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MeErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MeResponse{
			UserID:      profile.UserID.String(),
			Username:    profile.Username,
			IsDeveloper: profile.IsDeveloper,
			CreatedAt:   profile.CreatedAt,
		})
	}
}
