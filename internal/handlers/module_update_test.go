package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/modmarket/modmarket/internal/middlewares"
	"github.com/modmarket/modmarket/internal/models"
	"github.com/modmarket/modmarket/internal/services"
)

func TestUpdateModuleHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	moduleID := uuid.New()
	owner := &models.UserDB{UserID: uuid.New(), Username: "dev", IsDeveloper: true}

	reqBody := UpdateModuleRequest{
		Name:   "image-resizer",
		Script: "resize_v2()",
	}

	tests := []struct {
		name         string
		actor        *models.UserDB
		mockErr      error
		expectedCode int
	}{
		{
			name:         "success",
			actor:        owner,
			mockErr:      nil,
			expectedCode: 200,
		},
		{
			name:         "unauthorized",
			actor:        nil,
			mockErr:      services.ErrUnauthorized,
			expectedCode: 401,
		},
		{
			name:         "forbidden",
			actor:        owner,
			mockErr:      services.ErrForbidden,
			expectedCode: 403,
		},
		{
			name:         "module not found",
			actor:        owner,
			mockErr:      services.ErrModuleNotFound,
			expectedCode: 404,
		},
		{
			name:         "empty script",
			actor:        owner,
			mockErr:      services.ErrEmptyScript,
			expectedCode: 400,
		},
		{
			name:         "internal server error",
			actor:        owner,
			mockErr:      errors.New("database failure"),
			expectedCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockModuleUpdater(ctrl)

			var updated *models.ModuleDB
			if tt.mockErr == nil {
				updated = newTestModule(moduleID, &owner.UserID)
			}
			mockSvc.EXPECT().
				Update(gomock.Any(), tt.actor, moduleID, reqBody.Name, reqBody.Description, reqBody.Script, reqBody.Inputs).
				Return(updated, tt.mockErr)

			handler := NewUpdateModuleHandler(mockSvc)

			bodyBytes, _ := json.Marshal(reqBody)
			req := httptest.NewRequest(http.MethodPut, "/modules/"+moduleID.String(), bytes.NewBuffer(bodyBytes))
			req = withModuleID(req, moduleID.String())
			if tt.actor != nil {
				req = req.WithContext(middlewares.SetUserToContext(req.Context(), tt.actor))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
