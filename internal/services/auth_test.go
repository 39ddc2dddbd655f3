package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/modmarket/modmarket/internal/models"
	"github.com/modmarket/modmarket/internal/repositories"
	"github.com/modmarket/modmarket/internal/services"
)

func newAuthService(
	users *services.MockUserReader,
	userWriter *services.MockUserWriter,
	sessions *services.MockSessionReader,
	sessionSaver *services.MockSessionWriter,
	cache services.SessionCache,
	tokens *services.MockTokenIssuer,
	hasher *services.MockPasswordHasher,
) *services.AuthService {
	return services.NewAuthService(users, userWriter, sessions, sessionSaver, cache, tokens, hasher, nil, 30*24*time.Hour)
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		username  string
		password  string
		mockSetup func(users *services.MockUserReader, userWriter *services.MockUserWriter, sessionSaver *services.MockSessionWriter, tokens *services.MockTokenIssuer, hasher *services.MockPasswordHasher)
		wantErr   error
		wantToken string
	}{
		{
			name:     "successful registration",
			username: "alice",
			password: "pass123",
			mockSetup: func(users *services.MockUserReader, userWriter *services.MockUserWriter, sessionSaver *services.MockSessionWriter, tokens *services.MockTokenIssuer, hasher *services.MockPasswordHasher) {
				users.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
				hasher.EXPECT().NewSalt().Return("salt1", nil)
				hasher.EXPECT().Hash("pass123", "salt1").Return("hash1")
				userWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				tokens.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("tok1", nil)
				sessionSaver.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantToken: "tok1",
		},
		{
			name:     "surrounding whitespace is trimmed",
			username: "  alice  ",
			password: " pass123 ",
			mockSetup: func(users *services.MockUserReader, userWriter *services.MockUserWriter, sessionSaver *services.MockSessionWriter, tokens *services.MockTokenIssuer, hasher *services.MockPasswordHasher) {
				users.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
				hasher.EXPECT().NewSalt().Return("salt1", nil)
				hasher.EXPECT().Hash("pass123", "salt1").Return("hash1")
				userWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				tokens.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("tok1", nil)
				sessionSaver.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantToken: "tok1",
		},
		{
			name:     "username too short after trimming",
			username: "  ab  ",
			password: "pass123",
			wantErr:  services.ErrCredentialsTooShort,
		},
		{
			name:     "password too short",
			username: "alice",
			password: "ab",
			wantErr:  services.ErrCredentialsTooShort,
		},
		{
			name:     "username taken",
			username: "bob",
			password: "pass123",
			mockSetup: func(users *services.MockUserReader, userWriter *services.MockUserWriter, sessionSaver *services.MockSessionWriter, tokens *services.MockTokenIssuer, hasher *services.MockPasswordHasher) {
				users.EXPECT().GetByUsername(gomock.Any(), "bob").
					Return(&models.UserDB{UserID: uuid.New(), Username: "Bob"}, nil)
			},
			wantErr: services.ErrUsernameTaken,
		},
		{
			name:     "concurrent registration loses the unique index race",
			username: "carol",
			password: "pass123",
			mockSetup: func(users *services.MockUserReader, userWriter *services.MockUserWriter, sessionSaver *services.MockSessionWriter, tokens *services.MockTokenIssuer, hasher *services.MockPasswordHasher) {
				users.EXPECT().GetByUsername(gomock.Any(), "carol").Return(nil, nil)
				hasher.EXPECT().NewSalt().Return("salt1", nil)
				hasher.EXPECT().Hash("pass123", "salt1").Return("hash1")
				userWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(repositories.ErrUniqueViolation)
			},
			wantErr: services.ErrUsernameTaken,
		},
		{
			name:     "reader error",
			username: "eve",
			password: "pass123",
			mockSetup: func(users *services.MockUserReader, userWriter *services.MockUserWriter, sessionSaver *services.MockSessionWriter, tokens *services.MockTokenIssuer, hasher *services.MockPasswordHasher) {
				users.EXPECT().GetByUsername(gomock.Any(), "eve").Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := services.NewMockUserReader(ctrl)
			userWriter := services.NewMockUserWriter(ctrl)
			sessions := services.NewMockSessionReader(ctrl)
			sessionSaver := services.NewMockSessionWriter(ctrl)
			tokens := services.NewMockTokenIssuer(ctrl)
			hasher := services.NewMockPasswordHasher(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(users, userWriter, sessionSaver, tokens, hasher)
			}

			svc := newAuthService(users, userWriter, sessions, sessionSaver, nil, tokens, hasher)

			user, token, err := svc.Register(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
			assert.NotNil(t, user)
			assert.Equal(t, "alice", user.Username)
			assert.False(t, user.IsDeveloper)
			assert.Equal(t, "hash1", user.PasswordHash)
			assert.Equal(t, "salt1", user.PasswordSalt)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stored := &models.UserDB{
		UserID:       uuid.New(),
		Username:     "alice",
		PasswordHash: "hash1",
		PasswordSalt: "salt1",
	}

	tests := []struct {
		name      string
		username  string
		password  string
		mockSetup func(users *services.MockUserReader, sessionSaver *services.MockSessionWriter, tokens *services.MockTokenIssuer, hasher *services.MockPasswordHasher)
		wantErr   error
	}{
		{
			name:     "successful login",
			username: "alice",
			password: "pass123",
			mockSetup: func(users *services.MockUserReader, sessionSaver *services.MockSessionWriter, tokens *services.MockTokenIssuer, hasher *services.MockPasswordHasher) {
				users.EXPECT().GetByUsername(gomock.Any(), "alice").Return(stored, nil)
				hasher.EXPECT().Hash("pass123", "salt1").Return("hash1")
				tokens.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("tok1", nil)
				sessionSaver.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:     "empty credentials",
			username: "   ",
			password: "",
			wantErr:  services.ErrEmptyCredentials,
		},
		{
			name:     "unknown username",
			username: "nobody",
			password: "pass123",
			mockSetup: func(users *services.MockUserReader, sessionSaver *services.MockSessionWriter, tokens *services.MockTokenIssuer, hasher *services.MockPasswordHasher) {
				users.EXPECT().GetByUsername(gomock.Any(), "nobody").Return(nil, nil)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			username: "alice",
			password: "wrong",
			mockSetup: func(users *services.MockUserReader, sessionSaver *services.MockSessionWriter, tokens *services.MockTokenIssuer, hasher *services.MockPasswordHasher) {
				users.EXPECT().GetByUsername(gomock.Any(), "alice").Return(stored, nil)
				hasher.EXPECT().Hash("wrong", "salt1").Return("otherhash")
			},
			wantErr: services.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := services.NewMockUserReader(ctrl)
			userWriter := services.NewMockUserWriter(ctrl)
			sessions := services.NewMockSessionReader(ctrl)
			sessionSaver := services.NewMockSessionWriter(ctrl)
			tokens := services.NewMockTokenIssuer(ctrl)
			hasher := services.NewMockPasswordHasher(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(users, sessionSaver, tokens, hasher)
			}

			svc := newAuthService(users, userWriter, sessions, sessionSaver, nil, tokens, hasher)

			user, token, err := svc.Login(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
				assert.Empty(t, token)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "tok1", token)
			assert.Equal(t, stored, user)
		})
	}
}

// Unknown username and wrong password must be indistinguishable.
func TestAuthService_Login_UniformFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := services.NewMockUserReader(ctrl)
	tokens := services.NewMockTokenIssuer(ctrl)
	hasher := services.NewMockPasswordHasher(ctrl)
	svc := newAuthService(users, services.NewMockUserWriter(ctrl), services.NewMockSessionReader(ctrl), services.NewMockSessionWriter(ctrl), nil, tokens, hasher)

	users.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)
	_, _, errUnknown := svc.Login(context.Background(), "ghost", "pass123")

	users.EXPECT().GetByUsername(gomock.Any(), "alice").
		Return(&models.UserDB{Username: "alice", PasswordHash: "h", PasswordSalt: "s"}, nil)
	hasher.EXPECT().Hash("wrong", "s").Return("not-h")
	_, _, errWrong := svc.Login(context.Background(), "alice", "wrong")

	assert.Equal(t, errUnknown, errWrong)
}

func TestAuthService_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	stored := &models.UserDB{UserID: userID, Username: "alice"}

	validSession := &models.SessionDB{
		SessionID: uuid.New(),
		Token:     "tok1",
		UserID:    userID,
		CreatedAt: time.Now().Add(-time.Hour),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	expiredSession := &models.SessionDB{
		SessionID: uuid.New(),
		Token:     "tok2",
		UserID:    userID,
		CreatedAt: time.Now().Add(-2 * time.Hour),
		ExpiresAt: time.Now().Add(-time.Hour),
	}

	tests := []struct {
		name      string
		token     string
		mockSetup func(users *services.MockUserReader, sessions *services.MockSessionReader, tokens *services.MockTokenIssuer)
		wantUser  *models.UserDB
		wantErr   bool
	}{
		{
			name:  "empty token",
			token: "",
		},
		{
			name:  "forged token fails the signature pre-filter",
			token: "forged",
			mockSetup: func(users *services.MockUserReader, sessions *services.MockSessionReader, tokens *services.MockTokenIssuer) {
				tokens.EXPECT().Validate("forged").Return(errors.New("bad signature"))
			},
		},
		{
			name:  "unknown token",
			token: "tok0",
			mockSetup: func(users *services.MockUserReader, sessions *services.MockSessionReader, tokens *services.MockTokenIssuer) {
				tokens.EXPECT().Validate("tok0").Return(nil)
				sessions.EXPECT().GetByToken(gomock.Any(), "tok0").Return(nil, nil)
			},
		},
		{
			name:  "expired session",
			token: "tok2",
			mockSetup: func(users *services.MockUserReader, sessions *services.MockSessionReader, tokens *services.MockTokenIssuer) {
				tokens.EXPECT().Validate("tok2").Return(nil)
				sessions.EXPECT().GetByToken(gomock.Any(), "tok2").Return(expiredSession, nil)
			},
		},
		{
			name:  "valid session",
			token: "tok1",
			mockSetup: func(users *services.MockUserReader, sessions *services.MockSessionReader, tokens *services.MockTokenIssuer) {
				tokens.EXPECT().Validate("tok1").Return(nil)
				sessions.EXPECT().GetByToken(gomock.Any(), "tok1").Return(validSession, nil)
				users.EXPECT().GetByID(gomock.Any(), userID).Return(stored, nil)
			},
			wantUser: stored,
		},
		{
			name:  "session user deleted",
			token: "tok1",
			mockSetup: func(users *services.MockUserReader, sessions *services.MockSessionReader, tokens *services.MockTokenIssuer) {
				tokens.EXPECT().Validate("tok1").Return(nil)
				sessions.EXPECT().GetByToken(gomock.Any(), "tok1").Return(validSession, nil)
				users.EXPECT().GetByID(gomock.Any(), userID).Return(nil, nil)
			},
		},
		{
			name:  "store error propagates",
			token: "tok1",
			mockSetup: func(users *services.MockUserReader, sessions *services.MockSessionReader, tokens *services.MockTokenIssuer) {
				tokens.EXPECT().Validate("tok1").Return(nil)
				sessions.EXPECT().GetByToken(gomock.Any(), "tok1").Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := services.NewMockUserReader(ctrl)
			sessions := services.NewMockSessionReader(ctrl)
			tokens := services.NewMockTokenIssuer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(users, sessions, tokens)
			}

			svc := newAuthService(users, services.NewMockUserWriter(ctrl), sessions, services.NewMockSessionWriter(ctrl), nil, tokens, services.NewMockPasswordHasher(ctrl))

			user, err := svc.Authenticate(context.Background(), tt.token)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantUser, user)
		})
	}
}

func TestAuthService_Authenticate_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	session := &models.SessionDB{
		SessionID: uuid.New(),
		Token:     "tok1",
		UserID:    userID,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	users := services.NewMockUserReader(ctrl)
	sessions := services.NewMockSessionReader(ctrl)
	cache := services.NewMockSessionCache(ctrl)
	tokens := services.NewMockTokenIssuer(ctrl)

	tokens.EXPECT().Validate("tok1").Return(nil)
	// A cache hit never touches the session store.
	cache.EXPECT().Get(gomock.Any(), "tok1").Return(session, nil)
	users.EXPECT().GetByID(gomock.Any(), userID).Return(&models.UserDB{UserID: userID}, nil)

	svc := newAuthService(users, services.NewMockUserWriter(ctrl), sessions, services.NewMockSessionWriter(ctrl), cache, tokens, services.NewMockPasswordHasher(ctrl))

	user, err := svc.Authenticate(context.Background(), "tok1")
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, userID, user.UserID)
}

func TestAuthService_Authenticate_CacheMissFillsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	session := &models.SessionDB{
		SessionID: uuid.New(),
		Token:     "tok1",
		UserID:    userID,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	users := services.NewMockUserReader(ctrl)
	sessions := services.NewMockSessionReader(ctrl)
	cache := services.NewMockSessionCache(ctrl)
	tokens := services.NewMockTokenIssuer(ctrl)

	tokens.EXPECT().Validate("tok1").Return(nil)
	cache.EXPECT().Get(gomock.Any(), "tok1").Return(nil, nil)
	sessions.EXPECT().GetByToken(gomock.Any(), "tok1").Return(session, nil)
	cache.EXPECT().Set(gomock.Any(), *session).Return(nil)
	users.EXPECT().GetByID(gomock.Any(), userID).Return(&models.UserDB{UserID: userID}, nil)

	svc := newAuthService(users, services.NewMockUserWriter(ctrl), sessions, services.NewMockSessionWriter(ctrl), cache, tokens, services.NewMockPasswordHasher(ctrl))

	user, err := svc.Authenticate(context.Background(), "tok1")
	assert.NoError(t, err)
	assert.NotNil(t, user)
}

func TestAuthService_CurrentUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	createdAt := time.Now().UTC().Truncate(time.Second)
	session := &models.SessionDB{
		SessionID: uuid.New(),
		Token:     "tok1",
		UserID:    userID,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	users := services.NewMockUserReader(ctrl)
	sessions := services.NewMockSessionReader(ctrl)
	tokens := services.NewMockTokenIssuer(ctrl)

	tokens.EXPECT().Validate("tok1").Return(nil)
	sessions.EXPECT().GetByToken(gomock.Any(), "tok1").Return(session, nil)
	users.EXPECT().GetByID(gomock.Any(), userID).Return(&models.UserDB{
		UserID:       userID,
		Username:     "alice",
		PasswordHash: "secret-hash",
		IsDeveloper:  true,
		CreatedAt:    createdAt,
	}, nil)

	svc := newAuthService(users, services.NewMockUserWriter(ctrl), sessions, services.NewMockSessionWriter(ctrl), nil, tokens, services.NewMockPasswordHasher(ctrl))

	profile, err := svc.CurrentUser(context.Background(), "tok1")
	assert.NoError(t, err)
	assert.Equal(t, &models.Profile{
		UserID:      userID,
		Username:    "alice",
		IsDeveloper: true,
		CreatedAt:   createdAt,
	}, profile)

	// Unauthenticated token yields no profile and no error.
	tokens.EXPECT().Validate("nope").Return(errors.New("bad signature"))
	profile, err = svc.CurrentUser(context.Background(), "nope")
	assert.NoError(t, err)
	assert.Nil(t, profile)
}
