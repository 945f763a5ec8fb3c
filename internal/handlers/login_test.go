package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/anjabuckley/wortwunder-backend/internal/services"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoginer := NewMockLoginer(ctrl)

	tests := []struct {
		name                string
		body                any
		rawBody             string
		setupMocks          func()
		expectedStatus      int
		expectedResponseKey string
	}{
		{
			name: "successful login",
			body: LoginRequest{Username: "anja", Password: "secret123"},
			setupMocks: func() {
				mockLoginer.EXPECT().
					Login(gomock.Any(), "anja", "secret123").
					Return(int64(1), "token", nil)
			},
			expectedStatus:      http.StatusOK,
			expectedResponseKey: "token",
		},
		{
			name: "missing credentials",
			body: LoginRequest{Username: "anja"},
			setupMocks: func() {
				mockLoginer.EXPECT().
					Login(gomock.Any(), "anja", "").
					Return(int64(0), "", services.ErrMissingFields)
			},
			expectedStatus:      http.StatusBadRequest,
			expectedResponseKey: "error",
		},
		{
			name: "unknown username",
			body: LoginRequest{Username: "ghost", Password: "secret123"},
			setupMocks: func() {
				mockLoginer.EXPECT().
					Login(gomock.Any(), "ghost", "secret123").
					Return(int64(0), "", services.ErrInvalidCredentials)
			},
			expectedStatus:      http.StatusUnauthorized,
			expectedResponseKey: "error",
		},
		{
			name: "wrong password",
			body: LoginRequest{Username: "anja", Password: "wrong"},
			setupMocks: func() {
				mockLoginer.EXPECT().
					Login(gomock.Any(), "anja", "wrong").
					Return(int64(0), "", services.ErrInvalidCredentials)
			},
			expectedStatus:      http.StatusUnauthorized,
			expectedResponseKey: "error",
		},
		{
			name:                "invalid request body",
			rawBody:             "not json",
			setupMocks:          func() {},
			expectedStatus:      http.StatusBadRequest,
			expectedResponseKey: "error",
		},
		{
			name: "internal server error",
			body: LoginRequest{Username: "anja", Password: "secret123"},
			setupMocks: func() {
				mockLoginer.EXPECT().
					Login(gomock.Any(), "anja", "secret123").
					Return(int64(0), "", assert.AnError)
			},
			expectedStatus:      http.StatusInternalServerError,
			expectedResponseKey: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()
			handler := NewLoginHandler(mockLoginer)

			var buf bytes.Buffer
			if tt.rawBody != "" {
				buf.WriteString(tt.rawBody)
			} else {
				err := json.NewEncoder(&buf).Encode(tt.body)
				assert.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/login", &buf)
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

func TestLoginHandler_IdenticalFailureBodies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoginer := NewMockLoginer(ctrl)
	mockLoginer.EXPECT().
		Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(int64(0), "", services.ErrInvalidCredentials).
		Times(2)

	handler := NewLoginHandler(mockLoginer)

	bodies := make([]string, 0, 2)
	for _, reqBody := range []LoginRequest{
		{Username: "ghost", Password: "secret123"},
		{Username: "anja", Password: "wrong"},
	} {
		var buf bytes.Buffer
		err := json.NewEncoder(&buf).Encode(reqBody)
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/login", &buf)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		bodies = append(bodies, rr.Body.String())
	}

	assert.Equal(t, bodies[0], bodies[1], "unknown user and wrong password must be indistinguishable")
}
