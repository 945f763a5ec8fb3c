package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/anjabuckley/wortwunder-backend/internal/jwt"
	"github.com/anjabuckley/wortwunder-backend/internal/middlewares"
	"github.com/anjabuckley/wortwunder-backend/internal/services"
)

func TestRecordStudySessionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecorder := NewMockStudySessionRecorder(ctrl)

	claims := &jwt.Claims{UserID: 1}

	tests := []struct {
		name                string
		claims              *jwt.Claims
		body                any
		rawBody             string
		setupMocks          func()
		expectedStatus      int
		expectedResponseKey string
	}{
		{
			name:   "successful record",
			claims: claims,
			body:   RecordStudySessionRequest{ActivityType: "flashcards"},
			setupMocks: func() {
				mockRecorder.EXPECT().
					Record(gomock.Any(), int64(1), "flashcards").
					Return(nil)
			},
			expectedStatus:      http.StatusCreated,
			expectedResponseKey: "message",
		},
		{
			name:   "missing activity type",
			claims: claims,
			body:   RecordStudySessionRequest{},
			setupMocks: func() {
				mockRecorder.EXPECT().
					Record(gomock.Any(), int64(1), "").
					Return(services.ErrMissingActivityType)
			},
			expectedStatus:      http.StatusBadRequest,
			expectedResponseKey: "error",
		},
		{
			name:                "anonymous request",
			claims:              nil,
			body:                RecordStudySessionRequest{ActivityType: "flashcards"},
			setupMocks:          func() {},
			expectedStatus:      http.StatusUnauthorized,
			expectedResponseKey: "error",
		},
		{
			name:                "invalid request body",
			claims:              claims,
			rawBody:             "not json",
			setupMocks:          func() {},
			expectedStatus:      http.StatusBadRequest,
			expectedResponseKey: "error",
		},
		{
			name:   "internal server error",
			claims: claims,
			body:   RecordStudySessionRequest{ActivityType: "flashcards"},
			setupMocks: func() {
				mockRecorder.EXPECT().
					Record(gomock.Any(), int64(1), "flashcards").
					Return(assert.AnError)
			},
			expectedStatus:      http.StatusInternalServerError,
			expectedResponseKey: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()
			handler := NewRecordStudySessionHandler(mockRecorder)

			var buf bytes.Buffer
			if tt.rawBody != "" {
				buf.WriteString(tt.rawBody)
			} else {
				err := json.NewEncoder(&buf).Encode(tt.body)
				assert.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/study-sessions", &buf)
			if tt.claims != nil {
				req = req.WithContext(middlewares.SetClaimsToContext(req.Context(), tt.claims))
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			var body map[string]interface{}
			err := json.NewDecoder(rr.Body).Decode(&body)
			assert.NoError(t, err)

			_, ok := body[tt.expectedResponseKey]
			assert.True(t, ok, "response should contain key %s", tt.expectedResponseKey)
		})
	}
}

func TestCountStudySessionsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCounter := NewMockStudySessionCounter(ctrl)

	claims := &jwt.Claims{UserID: 1}

	tests := []struct {
		name           string
		claims         *jwt.Claims
		setupMocks     func()
		expectedStatus int
		expectedCount  float64
	}{
		{
			name:   "successful count",
			claims: claims,
			setupMocks: func() {
				mockCounter.EXPECT().
					Count(gomock.Any(), int64(1)).
					Return(int64(5), nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  5,
		},
		{
			name:   "zero sessions",
			claims: claims,
			setupMocks: func() {
				mockCounter.EXPECT().
					Count(gomock.Any(), int64(1)).
					Return(int64(0), nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  0,
		},
		{
			name:           "anonymous request",
			claims:         nil,
			setupMocks:     func() {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "internal server error",
			claims: claims,
			setupMocks: func() {
				mockCounter.EXPECT().
					Count(gomock.Any(), int64(1)).
					Return(int64(0), assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()
			handler := NewCountStudySessionsHandler(mockCounter)

			req := httptest.NewRequest(http.MethodGet, "/api/study-sessions/count", nil)
			if tt.claims != nil {
				req = req.WithContext(middlewares.SetClaimsToContext(req.Context(), tt.claims))
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedStatus == http.StatusOK {
				var body map[string]interface{}
				err := json.NewDecoder(rr.Body).Decode(&body)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedCount, body["count"])
			}
		})
	}
}
