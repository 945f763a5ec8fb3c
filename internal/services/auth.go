package services

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/anjabuckley/wortwunder-backend/internal/jwt"
	"github.com/anjabuckley/wortwunder-backend/internal/logger"
	"github.com/anjabuckley/wortwunder-backend/internal/models"
	"github.com/anjabuckley/wortwunder-backend/internal/repositories"
)

// Error variables
var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string) (int64, error)
}

// TokenIssuer defines an interface for issuing session tokens.
type TokenIssuer interface {
	Generate(ctx context.Context, userID int64) (string, error)
}

// TokenRevoker defines an interface for revoking session tokens.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

// AuthService handles registration, login, logout and the current
// user lookup.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	issuer   TokenIssuer
	sessions TokenRevoker
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, issuer TokenIssuer, sessions TokenRevoker) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		issuer:   issuer,
		sessions: sessions,
	}
}

// Register creates a new user and logs them in, returning the new
// user's id and a session token. Registering is auto-login: the
// caller is authenticated as soon as the account exists.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) (int64, string, error) {
	if username == "" || email == "" || password == "" {
		return 0, "", ErrMissingFields
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return 0, "", err
	}

	userID, err := svc.writer.Save(ctx, username, email, string(hashedPassword))
	if err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			logger.Log.Errorw("user already exists", "username", username, "email", email)
			return 0, "", ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return 0, "", err
	}

	token, err := svc.issuer.Generate(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return 0, "", err
	}

	return userID, token, nil
}

// Login authenticates a user and returns the user's id and a session
// token. Unknown username and wrong password fail identically so the
// response cannot be used to enumerate usernames.
func (svc *AuthService) Login(ctx context.Context, username, password string) (int64, string, error) {
	if username == "" || password == "" {
		return 0, "", ErrMissingFields
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return 0, "", err
	}
	if user == nil {
		logger.Log.Errorw("login for unknown username", "username", username)
		return 0, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return 0, "", ErrInvalidCredentials
	}

	token, err := svc.issuer.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return 0, "", err
	}

	return user.ID, token, nil
}

// Logout revokes the session token carried by claims. The revocation
// lives until the token would have expired on its own.
func (svc *AuthService) Logout(ctx context.Context, claims *jwt.Claims) error {
	var ttl time.Duration
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}

	if err := svc.sessions.Revoke(ctx, claims.ID, ttl); err != nil {
		logger.Log.Errorw("failed to revoke token", "token_id", claims.ID, "err", err)
		return err
	}

	return nil
}

// CurrentUser returns the authenticated user's record.
func (svc *AuthService) CurrentUser(ctx context.Context, userID int64) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return user, nil
}
