package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/modmarket/modmarket/internal/services"
)

func TestRunModuleHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	moduleID := uuid.New()

	tests := []struct {
		name         string
		urlID        string
		mockSetup    func(m *MockRunIncrementer)
		expectedCode int
	}{
		{
			name:  "success",
			urlID: moduleID.String(),
			mockSetup: func(m *MockRunIncrementer) {
				updated := newTestModule(moduleID, nil)
				updated.RunCount = 8
				m.EXPECT().IncrementRun(gomock.Any(), moduleID).
					Return(updated, nil)
			},
			expectedCode: 200,
		},
		{
			name:  "module not found",
			urlID: moduleID.String(),
			mockSetup: func(m *MockRunIncrementer) {
				m.EXPECT().IncrementRun(gomock.Any(), moduleID).
					Return(nil, services.ErrModuleNotFound)
			},
			expectedCode: 404,
		},
		{
			name:         "malformed id",
			urlID:        "nope",
			expectedCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRunIncrementer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRunModuleHandler(mockSvc)

			req := withModuleID(httptest.NewRequest(http.MethodPost, "/modules/"+tt.urlID+"/run", nil), tt.urlID)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == 200 {
				var resp RunModuleResponse
				err := json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, int64(8), resp.Module.RunCount)
			}
		})
	}
}

func TestRunModuleHandler_NoSessionRequired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	moduleID := uuid.New()

	mockSvc := NewMockRunIncrementer(ctrl)
	mockSvc.EXPECT().IncrementRun(gomock.Any(), moduleID).
		Return(newTestModule(moduleID, nil), nil)

	handler := NewRunModuleHandler(mockSvc)

	// No user in context: runs are recorded for anonymous callers too.
	req := withModuleID(httptest.NewRequest(http.MethodPost, "/modules/"+moduleID.String()+"/run", nil), moduleID.String())
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp RunModuleResponse
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, moduleID.String(), resp.Module.ModuleID)
}
