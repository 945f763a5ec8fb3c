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

func TestListVocabularyHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLister := NewMockVocabularyLister(ctrl)

	groupID := int64(3)
	items := []models.VocabularyDB{
		{ID: 1, GermanWord: "Apfel", EnglishTranslation: "apple", Theme: "Food", CEFRLevel: "A1"},
		{ID: 2, GermanWord: "Haus", EnglishTranslation: "house", Theme: "Home", CEFRLevel: "A1"},
	}

	tests := []struct {
		name           string
		target         string
		setupMocks     func()
		expectedStatus int
		expectedLen    int
	}{
		{
			name:   "no filters",
			target: "/api/vocabulary",
			setupMocks: func() {
				mockLister.EXPECT().
					List(gomock.Any(), "", nil).
					Return(items, nil)
			},
			expectedStatus: http.StatusOK,
			expectedLen:    2,
		},
		{
			name:   "level filter",
			target: "/api/vocabulary?level=A1",
			setupMocks: func() {
				mockLister.EXPECT().
					List(gomock.Any(), "A1", nil).
					Return(items, nil)
			},
			expectedStatus: http.StatusOK,
			expectedLen:    2,
		},
		{
			name:   "word group filter",
			target: "/api/vocabulary?word_group_id=3",
			setupMocks: func() {
				mockLister.EXPECT().
					List(gomock.Any(), "", &groupID).
					Return(items[:1], nil)
			},
			expectedStatus: http.StatusOK,
			expectedLen:    1,
		},
		{
			name:           "invalid word group id",
			target:         "/api/vocabulary?word_group_id=abc",
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "empty catalog",
			target: "/api/vocabulary",
			setupMocks: func() {
				mockLister.EXPECT().
					List(gomock.Any(), "", nil).
					Return([]models.VocabularyDB{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedLen:    0,
		},
		{
			name:   "internal server error",
			target: "/api/vocabulary",
			setupMocks: func() {
				mockLister.EXPECT().
					List(gomock.Any(), "", nil).
					Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()
			handler := NewListVocabularyHandler(mockLister)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedStatus == http.StatusOK {
				var got []models.VocabularyDB
				err := json.NewDecoder(rr.Body).Decode(&got)
				assert.NoError(t, err)
				assert.Len(t, got, tt.expectedLen)
			}
		})
	}
}
