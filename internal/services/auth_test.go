package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/anjabuckley/wortwunder-backend/internal/jwt"
	"github.com/anjabuckley/wortwunder-backend/internal/models"
	"github.com/anjabuckley/wortwunder-backend/internal/repositories"
	"github.com/anjabuckley/wortwunder-backend/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockIssuer := services.NewMockTokenIssuer(ctrl)
	mockRevoker := services.NewMockTokenRevoker(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockIssuer, mockRevoker)

	tests := []struct {
		name      string
		username  string
		email     string
		password  string
		saveID    int64
		saveErr   error
		issuerErr error
		wantID    int64
		wantErr   error
	}{
		{
			name:     "successful registration",
			username: "anja",
			email:    "a@x.com",
			password: "pw123",
			saveID:   1,
			wantID:   1,
		},
		{
			name:     "missing username",
			username: "",
			email:    "a@x.com",
			password: "pw123",
			wantErr:  services.ErrMissingFields,
		},
		{
			name:     "missing email",
			username: "anja",
			email:    "",
			password: "pw123",
			wantErr:  services.ErrMissingFields,
		},
		{
			name:     "missing password",
			username: "anja",
			email:    "a@x.com",
			password: "",
			wantErr:  services.ErrMissingFields,
		},
		{
			name:     "username or email taken",
			username: "anja",
			email:    "a@x.com",
			password: "pw123",
			saveErr:  repositories.ErrUniqueViolation,
			wantErr:  services.ErrUserAlreadyExists,
		},
		{
			name:     "writer error",
			username: "anja",
			email:    "a@x.com",
			password: "pw123",
			saveErr:  errors.New("db error"),
			wantErr:  errors.New("db error"),
		},
		{
			name:      "token error",
			username:  "anja",
			email:     "a@x.com",
			password:  "pw123",
			saveID:    1,
			issuerErr: errors.New("sign error"),
			wantErr:   errors.New("sign error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.username != "" && tt.email != "" && tt.password != "" {
				mockWriter.EXPECT().
					Save(gomock.Any(), tt.username, tt.email, gomock.Any()).
					Return(tt.saveID, tt.saveErr)

				if tt.saveErr == nil {
					mockIssuer.EXPECT().
						Generate(gomock.Any(), tt.saveID).
						Return("JWT_TOKEN", tt.issuerErr)
				}
			}

			id, token, err := svc.Register(context.Background(), tt.username, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
				assert.Equal(t, "JWT_TOKEN", token)
			}
		})
	}
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockIssuer := services.NewMockTokenIssuer(ctrl)
	mockRevoker := services.NewMockTokenRevoker(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockIssuer, mockRevoker)

	mockWriter.EXPECT().
		Save(gomock.Any(), "anja", "a@x.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, passwordHash string) (int64, error) {
			assert.NotEqual(t, "pw123", passwordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("pw123")))
			return 1, nil
		})
	mockIssuer.EXPECT().
		Generate(gomock.Any(), int64(1)).
		Return("JWT_TOKEN", nil)

	_, _, err := svc.Register(context.Background(), "anja", "a@x.com", "pw123")
	assert.NoError(t, err)
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockIssuer := services.NewMockTokenIssuer(ctrl)
	mockRevoker := services.NewMockTokenRevoker(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockIssuer, mockRevoker)

	password := "pw123"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	tests := []struct {
		name      string
		username  string
		loginPass string
		user      *models.UserDB
		readerErr error
		issuerErr error
		wantID    int64
		wantErr   error
	}{
		{
			name:      "successful login",
			username:  "anja",
			loginPass: password,
			user:      &models.UserDB{ID: 1, Username: "anja", PasswordHash: string(hashed)},
			wantID:    1,
		},
		{
			name:      "unknown username fails like wrong password",
			username:  "ghost",
			loginPass: password,
			user:      nil,
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "wrong password",
			username:  "anja",
			loginPass: "wrong",
			user:      &models.UserDB{ID: 1, Username: "anja", PasswordHash: string(hashed)},
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			username:  "anja",
			loginPass: password,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "token error",
			username:  "anja",
			loginPass: password,
			user:      &models.UserDB{ID: 1, Username: "anja", PasswordHash: string(hashed)},
			issuerErr: errors.New("sign error"),
			wantErr:   errors.New("sign error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.readerErr == nil && tt.loginPass == password {
				mockIssuer.EXPECT().
					Generate(gomock.Any(), tt.user.ID).
					Return("JWT_TOKEN", tt.issuerErr)
			}

			id, token, err := svc.Login(context.Background(), tt.username, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
				assert.Equal(t, "JWT_TOKEN", token)
			}
		})
	}
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := services.NewAuthService(
		services.NewMockUserReader(ctrl),
		services.NewMockUserWriter(ctrl),
		services.NewMockTokenIssuer(ctrl),
		services.NewMockTokenRevoker(ctrl),
	)

	_, _, err := svc.Login(context.Background(), "", "pw123")
	assert.ErrorIs(t, err, services.ErrMissingFields)

	_, _, err = svc.Login(context.Background(), "anja", "")
	assert.ErrorIs(t, err, services.ErrMissingFields)
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRevoker := services.NewMockTokenRevoker(ctrl)
	svc := services.NewAuthService(
		services.NewMockUserReader(ctrl),
		services.NewMockUserWriter(ctrl),
		services.NewMockTokenIssuer(ctrl),
		mockRevoker,
	)

	claims := &jwt.Claims{
		UserID: 1,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ID:        "token-id",
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	mockRevoker.EXPECT().
		Revoke(gomock.Any(), "token-id", gomock.Any()).
		Return(nil)

	err := svc.Logout(context.Background(), claims)
	assert.NoError(t, err)
}

func TestAuthService_Logout_RevokeError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRevoker := services.NewMockTokenRevoker(ctrl)
	svc := services.NewAuthService(
		services.NewMockUserReader(ctrl),
		services.NewMockUserWriter(ctrl),
		services.NewMockTokenIssuer(ctrl),
		mockRevoker,
	)

	claims := &jwt.Claims{
		UserID: 1,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ID:        "token-id",
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	mockRevoker.EXPECT().
		Revoke(gomock.Any(), "token-id", gomock.Any()).
		Return(errors.New("redis error"))

	err := svc.Logout(context.Background(), claims)
	assert.Error(t, err)
}

func TestAuthService_CurrentUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	svc := services.NewAuthService(
		mockReader,
		services.NewMockUserWriter(ctrl),
		services.NewMockTokenIssuer(ctrl),
		services.NewMockTokenRevoker(ctrl),
	)

	tests := []struct {
		name      string
		userID    int64
		user      *models.UserDB
		readerErr error
		wantErr   error
	}{
		{
			name:   "found",
			userID: 1,
			user:   &models.UserDB{ID: 1, Username: "anja", Email: "a@x.com"},
		},
		{
			name:    "not found",
			userID:  99,
			user:    nil,
			wantErr: services.ErrUserNotFound,
		},
		{
			name:      "reader error",
			userID:    1,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByID(gomock.Any(), tt.userID).
				Return(tt.user, tt.readerErr)

			user, err := svc.CurrentUser(context.Background(), tt.userID)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.user, user)
			}
		})
	}
}
