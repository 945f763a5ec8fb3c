package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/anjabuckley/wortwunder-backend/internal/models"
)

func TestListWordGroupsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLister := NewMockWordGroupLister(ctrl)

	tests := []struct {
		name           string
		setupMocks     func()
		expectedStatus int
		expectedLen    int
	}{
		{
			name: "successful list",
			setupMocks: func() {
				mockLister.EXPECT().
					ListWordGroups(gomock.Any()).
					Return([]models.WordGroupDB{
						{ID: 1, Name: "A1 - Beginner"},
						{ID: 2, Name: "A2 - Elementary"},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedLen:    2,
		},
		{
			name: "internal server error",
			setupMocks: func() {
				mockLister.EXPECT().
					ListWordGroups(gomock.Any()).
					Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()
			handler := NewListWordGroupsHandler(mockLister)

			req := httptest.NewRequest(http.MethodGet, "/api/word-groups", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedStatus == http.StatusOK {
				var got []models.WordGroupDB
				err := json.NewDecoder(rr.Body).Decode(&got)
				assert.NoError(t, err)
				assert.Len(t, got, tt.expectedLen)
			}
		})
	}
}
