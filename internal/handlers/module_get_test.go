package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/modmarket/modmarket/internal/models"
	"github.com/modmarket/modmarket/internal/services"
)

// withModuleID injects a chi route context carrying the {id} URL parameter.
func withModuleID(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func newTestModule(id uuid.UUID, owner *uuid.UUID) *models.ModuleDB {
	now := time.Now().UTC().Truncate(time.Second)
	return &models.ModuleDB{
		ModuleID:    id,
		Name:        "image-resizer",
		Description: "resizes images",
		Script:      "resize()",
		Inputs:      models.InputFields{{Name: "width", Label: "Width", Type: "number", Required: true}},
		RunCount:    7,
		OwnerID:     owner,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestGetModuleHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	moduleID := uuid.New()
	ownerID := uuid.New()

	tests := []struct {
		name         string
		urlID        string
		mockSetup    func(m *MockModuleGetter)
		expectedCode int
	}{
		{
			name:  "success",
			urlID: moduleID.String(),
			mockSetup: func(m *MockModuleGetter) {
				m.EXPECT().Get(gomock.Any(), moduleID).
					Return(newTestModule(moduleID, &ownerID), 3, nil)
			},
			expectedCode: 200,
		},
		{
			name:  "not found",
			urlID: moduleID.String(),
			mockSetup: func(m *MockModuleGetter) {
				m.EXPECT().Get(gomock.Any(), moduleID).
					Return(nil, 0, services.ErrModuleNotFound)
			},
			expectedCode: 404,
		},
		{
			name:         "malformed id",
			urlID:        "not-a-uuid",
			expectedCode: 404,
		},
		{
			name:  "internal server error",
			urlID: moduleID.String(),
			mockSetup: func(m *MockModuleGetter) {
				m.EXPECT().Get(gomock.Any(), moduleID).
					Return(nil, 0, errors.New("database failure"))
			},
			expectedCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockModuleGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewGetModuleHandler(mockSvc)

			req := withModuleID(httptest.NewRequest(http.MethodGet, "/modules/"+tt.urlID, nil), tt.urlID)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == 200 {
				var resp GetModuleResponse
				err := json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, moduleID.String(), resp.Module.ModuleID)
				assert.Equal(t, ownerID.String(), resp.Module.OwnerID)
				assert.Equal(t, 3, resp.InstallCount)
				assert.Equal(t, int64(7), resp.Module.RunCount)
			}
		})
	}
}
