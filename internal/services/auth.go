package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/modmarket/modmarket/internal/logger"
	"github.com/modmarket/modmarket/internal/metrics"
	"github.com/modmarket/modmarket/internal/models"
	"github.com/modmarket/modmarket/internal/repositories"
)

// Error variables
var (
	ErrCredentialsTooShort = errors.New("username and password must be at least 3 characters")
	ErrEmptyCredentials    = errors.New("username and password must not be empty")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrInvalidCredentials  = errors.New("invalid username or password")
)

// minCredentialLen applies to both username and password after trimming.
const minCredentialLen = 3

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error) // nil when absent, case-insensitive match
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)      // nil when absent
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user models.UserDB) error
}

// SessionReader defines read-only operations for sessions.
type SessionReader interface {
	GetByToken(ctx context.Context, token string) (*models.SessionDB, error) // nil when absent
}

// SessionWriter defines write operations for sessions.
type SessionWriter interface {
	Save(ctx context.Context, session models.SessionDB) error
}

// SessionCache caches immutable session rows until their own expiry.
type SessionCache interface {
	Get(ctx context.Context, token string) (*models.SessionDB, error) // nil, nil on miss
	Set(ctx context.Context, session models.SessionDB) error
}

// TokenIssuer issues and pre-validates session tokens.
type TokenIssuer interface {
	Generate(sessionID uuid.UUID, expiresAt time.Time) (string, error)
	Validate(tokenString string) error
}

// PasswordHasher derives deterministic salted password hashes.
type PasswordHasher interface {
	NewSalt() (string, error)
	Hash(password, salt string) string
}

// AuthService handles registration, login, and token-to-identity
// resolution. It is the sole gate for every mutating operation.
type AuthService struct {
	users        UserReader
	userWriter   UserWriter
	sessions     SessionReader
	sessionSaver SessionWriter
	cache        SessionCache
	tokens       TokenIssuer
	hasher       PasswordHasher
	sink         metrics.Sink
	sessionTTL   time.Duration
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	users UserReader,
	userWriter UserWriter,
	sessions SessionReader,
	sessionSaver SessionWriter,
	cache SessionCache,
	tokens TokenIssuer,
	hasher PasswordHasher,
	sink metrics.Sink,
	sessionTTL time.Duration,
) *AuthService {
	return &AuthService{
		users:        users,
		userWriter:   userWriter,
		sessions:     sessions,
		sessionSaver: sessionSaver,
		cache:        cache,
		tokens:       tokens,
		hasher:       hasher,
		sink:         sink,
		sessionTTL:   sessionTTL,
	}
}

// Register creates a new non-developer user and immediately issues a
// session token.
func (svc *AuthService) Register(ctx context.Context, username, password string) (*models.UserDB, string, error) {
	start := time.Now()

	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if utf8.RuneCountInString(username) < minCredentialLen || utf8.RuneCountInString(password) < minCredentialLen {
		svc.count("auth_register_total", "invalid_input")
		return nil, "", ErrCredentialsTooShort
	}

	existing, err := svc.users.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		svc.count("auth_register_total", "error")
		return nil, "", err
	}
	if existing != nil {
		svc.count("auth_register_total", "conflict")
		return nil, "", ErrUsernameTaken
	}

	salt, err := svc.hasher.NewSalt()
	if err != nil {
		logger.Log.Errorw("failed to derive salt", "err", err)
		svc.count("auth_register_total", "error")
		return nil, "", err
	}

	user := models.UserDB{
		UserID:       uuid.New(),
		Username:     username,
		PasswordHash: svc.hasher.Hash(password, salt),
		PasswordSalt: salt,
		IsDeveloper:  false,
		CreatedAt:    time.Now().UTC(),
	}

	if err := svc.userWriter.Save(ctx, user); err != nil {
		// Concurrent registration of the same username loses the race
		// against the unique index rather than against the pre-check.
		if errors.Is(err, repositories.ErrUniqueViolation) {
			svc.count("auth_register_total", "conflict")
			return nil, "", ErrUsernameTaken
		}
		logger.Log.Errorw("failed to save user", "err", err)
		svc.count("auth_register_total", "error")
		return nil, "", err
	}

	tokenString, err := svc.createSession(ctx, user.UserID)
	if err != nil {
		svc.count("auth_register_total", "error")
		return nil, "", err
	}

	svc.count("auth_register_total", "success")
	svc.observe("auth_register_duration_seconds", start, "success")
	return &user, tokenString, nil
}

// Login authenticates credentials and issues an additional session token.
// Unknown username and wrong password are indistinguishable to the caller.
func (svc *AuthService) Login(ctx context.Context, username, password string) (*models.UserDB, string, error) {
	start := time.Now()

	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		svc.count("auth_login_total", "invalid_input")
		return nil, "", ErrEmptyCredentials
	}

	user, err := svc.users.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		svc.count("auth_login_total", "error")
		return nil, "", err
	}
	if user == nil {
		svc.count("auth_login_total", "failure")
		return nil, "", ErrInvalidCredentials
	}

	computed := svc.hasher.Hash(password, user.PasswordSalt)
	if subtle.ConstantTimeCompare([]byte(computed), []byte(user.PasswordHash)) != 1 {
		svc.count("auth_login_total", "failure")
		return nil, "", ErrInvalidCredentials
	}

	tokenString, err := svc.createSession(ctx, user.UserID)
	if err != nil {
		svc.count("auth_login_total", "error")
		return nil, "", err
	}

	svc.count("auth_login_total", "success")
	svc.observe("auth_login_duration_seconds", start, "success")
	return user, tokenString, nil
}

// Authenticate resolves a bearer token to its owning user. It returns
// nil, nil when the token is unknown or the session has lapsed; session
// validity is re-checked on every call, never assumed.
func (svc *AuthService) Authenticate(ctx context.Context, tokenString string) (*models.UserDB, error) {
	if tokenString == "" {
		svc.count("auth_authenticate_total", "missing_token")
		return nil, nil
	}

	// Signature pre-filter: a forged token cannot match any issued session,
	// so reject it without touching the store.
	if err := svc.tokens.Validate(tokenString); err != nil {
		svc.count("auth_authenticate_total", "invalid_token")
		return nil, nil
	}

	session, err := svc.lookupSession(ctx, tokenString)
	if err != nil {
		svc.count("auth_authenticate_total", "error")
		return nil, err
	}
	if session == nil {
		svc.count("auth_authenticate_total", "unknown_token")
		return nil, nil
	}
	if !time.Now().Before(session.ExpiresAt) {
		svc.count("auth_authenticate_total", "expired")
		return nil, nil
	}

	user, err := svc.users.GetByID(ctx, session.UserID)
	if err != nil {
		logger.Log.Errorw("failed to load session user", "userID", session.UserID, "err", err)
		svc.count("auth_authenticate_total", "error")
		return nil, err
	}
	if user == nil {
		svc.count("auth_authenticate_total", "unknown_user")
		return nil, nil
	}

	svc.count("auth_authenticate_total", "success")
	return user, nil
}

// CurrentUser returns the identity projection for the token's owner, or
// nil when the token does not authenticate.
func (svc *AuthService) CurrentUser(ctx context.Context, tokenString string) (*models.Profile, error) {
	user, err := svc.Authenticate(ctx, tokenString)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	return &models.Profile{
		UserID:      user.UserID,
		Username:    user.Username,
		IsDeveloper: user.IsDeveloper,
		CreatedAt:   user.CreatedAt,
	}, nil
}

// createSession persists a fresh session and returns its token.
func (svc *AuthService) createSession(ctx context.Context, userID uuid.UUID) (string, error) {
	now := time.Now().UTC()
	session := models.SessionDB{
		SessionID: uuid.New(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(svc.sessionTTL),
	}

	tokenString, err := svc.tokens.Generate(session.SessionID, session.ExpiresAt)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "err", err)
		return "", err
	}
	session.Token = tokenString

	if err := svc.sessionSaver.Save(ctx, session); err != nil {
		logger.Log.Errorw("failed to save session", "err", err)
		return "", err
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, session); err != nil {
			logger.Log.Warnw("failed to cache session", "err", err)
		}
	}

	return tokenString, nil
}

// lookupSession reads through the cache to the store.
func (svc *AuthService) lookupSession(ctx context.Context, tokenString string) (*models.SessionDB, error) {
	if svc.cache != nil {
		session, err := svc.cache.Get(ctx, tokenString)
		if err != nil {
			logger.Log.Warnw("session cache read failed", "err", err)
		} else if session != nil {
			return session, nil
		}
	}

	session, err := svc.sessions.GetByToken(ctx, tokenString)
	if err != nil {
		logger.Log.Errorw("failed to get session", "err", err)
		return nil, err
	}
	if session != nil && svc.cache != nil {
		if err := svc.cache.Set(ctx, *session); err != nil {
			logger.Log.Warnw("failed to cache session", "err", err)
		}
	}

	return session, nil
}

func (svc *AuthService) count(name, outcome string) {
	if svc.sink != nil {
		svc.sink.Increment(name, map[string]string{"outcome": outcome})
	}
}

func (svc *AuthService) observe(name string, start time.Time, outcome string) {
	if svc.sink != nil {
		svc.sink.Observe(name, time.Since(start).Seconds(), map[string]string{"outcome": outcome})
	}
}
