package services_test

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/ive-had-worse/internal/models"
	"github.com/sbilibin2017/ive-had-worse/internal/repositories"
	"github.com/sbilibin2017/ive-had-worse/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type accountMocks struct {
	reader   *services.MockUserReader
	writer   *services.MockUserWriter
	jwt      *services.MockJWTGenerator
	recorder *services.MockRecorder
	svc      *services.AccountService
}

func newAccountMocks(t *testing.T) *accountMocks {
	ctrl := gomock.NewController(t)
	m := &accountMocks{
		reader:   services.NewMockUserReader(ctrl),
		writer:   services.NewMockUserWriter(ctrl),
		jwt:      services.NewMockJWTGenerator(ctrl),
		recorder: services.NewMockRecorder(ctrl),
	}
	m.svc = services.NewAccountService(m.reader, m.writer, m.jwt,
		services.WithBcryptCost(bcrypt.MinCost),
		services.WithAccountRecorder(m.recorder),
	)
	return m
}

func hashOf(t *testing.T, password string) *string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	s := string(h)
	return &s
}

func strPtr(s string) *string {
	return &s
}

func TestAccountService_CreateAccount_Validation(t *testing.T) {
	m := newAccountMocks(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "empty email", email: "   ", password: "secret", wantErr: services.ErrInvalidEmail},
		{name: "malformed email", email: "not-an-email", password: "secret", wantErr: services.ErrInvalidEmail},
		{name: "empty password", email: "alice@example.com", password: "", wantErr: services.ErrPasswordRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := m.svc.CreateAccount(ctx, tt.email, tt.password, "")
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, session)
		})
	}
}

func TestAccountService_CreateAccount_NewUser(t *testing.T) {
	m := newAccountMocks(t)
	ctx := context.Background()
	userID := uuid.New()

	m.reader.EXPECT().GetByEmail(ctx, "alice@example.com").Return(nil, nil)
	m.writer.EXPECT().Save(ctx, "alice@example.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, email, hash string) (*models.UserDB, error) {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret")))
			return &models.UserDB{UserID: userID, Email: &email}, nil
		})
	m.recorder.EXPECT().RecordAccountCreated(false)
	m.jwt.EXPECT().Generate(ctx, userID, false).Return("token", nil)

	session, err := m.svc.CreateAccount(ctx, "  Alice@Example.COM ", "secret", "")
	require.NoError(t, err)
	assert.Equal(t, &models.Session{UserID: userID, IsTemp: false, Token: "token"}, session)
}

func TestAccountService_CreateAccount_PromotesTempUser(t *testing.T) {
	m := newAccountMocks(t)
	ctx := context.Background()
	tempID := uuid.New()

	m.reader.EXPECT().GetByEmail(ctx, "bob@example.com").Return(nil, nil)
	m.reader.EXPECT().GetByCookieID(ctx, "cookie-1").Return(&models.UserDB{UserID: tempID, IsTemp: true}, nil)
	m.writer.EXPECT().Promote(ctx, tempID, "bob@example.com", gomock.Any()).Return(nil)
	m.recorder.EXPECT().RecordAccountCreated(true)
	m.jwt.EXPECT().Generate(ctx, tempID, false).Return("token", nil)

	session, err := m.svc.CreateAccount(ctx, "bob@example.com", "secret", "cookie-1")
	require.NoError(t, err)
	assert.Equal(t, tempID, session.UserID)
	assert.False(t, session.IsTemp)
}

func TestAccountService_CreateAccount_EmailTaken(t *testing.T) {
	ctx := context.Background()
	owner := &models.UserDB{UserID: uuid.New(), Email: strPtr("carol@example.com")}

	t.Run("without cookie", func(t *testing.T) {
		m := newAccountMocks(t)
		m.reader.EXPECT().GetByEmail(ctx, "carol@example.com").Return(owner, nil)

		_, err := m.svc.CreateAccount(ctx, "carol@example.com", "secret", "")
		assert.ErrorIs(t, err, services.ErrEmailTaken)
	})

	t.Run("with cookie temp user", func(t *testing.T) {
		m := newAccountMocks(t)
		m.reader.EXPECT().GetByEmail(ctx, "carol@example.com").Return(owner, nil)
		m.reader.EXPECT().GetByCookieID(ctx, "cookie-2").Return(&models.UserDB{UserID: uuid.New(), IsTemp: true}, nil)

		_, err := m.svc.CreateAccount(ctx, "carol@example.com", "secret", "cookie-2")
		assert.ErrorIs(t, err, services.ErrEmailTaken)
	})

	t.Run("lost race on promote", func(t *testing.T) {
		m := newAccountMocks(t)
		tempID := uuid.New()
		m.reader.EXPECT().GetByEmail(ctx, "carol@example.com").Return(nil, nil)
		m.reader.EXPECT().GetByCookieID(ctx, "cookie-3").Return(&models.UserDB{UserID: tempID, IsTemp: true}, nil)
		m.writer.EXPECT().Promote(ctx, tempID, "carol@example.com", gomock.Any()).Return(repositories.ErrUniqueViolation)

		_, err := m.svc.CreateAccount(ctx, "carol@example.com", "secret", "cookie-3")
		assert.ErrorIs(t, err, services.ErrEmailTaken)
	})

	t.Run("lost race on insert", func(t *testing.T) {
		m := newAccountMocks(t)
		m.reader.EXPECT().GetByEmail(ctx, "carol@example.com").Return(nil, nil)
		m.writer.EXPECT().Save(ctx, "carol@example.com", gomock.Any()).Return(nil, repositories.ErrUniqueViolation)

		_, err := m.svc.CreateAccount(ctx, "carol@example.com", "secret", "")
		assert.ErrorIs(t, err, services.ErrEmailTaken)
	})
}

func TestAccountService_CreateAccount_CookieFallbacks(t *testing.T) {
	ctx := context.Background()

	t.Run("cookie of permanent user", func(t *testing.T) {
		m := newAccountMocks(t)
		newID := uuid.New()
		m.reader.EXPECT().GetByEmail(ctx, "dan@example.com").Return(nil, nil)
		m.reader.EXPECT().GetByCookieID(ctx, "cookie-4").Return(&models.UserDB{UserID: uuid.New(), IsTemp: false}, nil)
		m.writer.EXPECT().Save(ctx, "dan@example.com", gomock.Any()).Return(&models.UserDB{UserID: newID}, nil)
		m.recorder.EXPECT().RecordAccountCreated(false)
		m.jwt.EXPECT().Generate(ctx, newID, false).Return("token", nil)

		session, err := m.svc.CreateAccount(ctx, "dan@example.com", "secret", "cookie-4")
		require.NoError(t, err)
		assert.Equal(t, newID, session.UserID)
	})

	t.Run("temp user promoted concurrently", func(t *testing.T) {
		m := newAccountMocks(t)
		tempID, newID := uuid.New(), uuid.New()
		m.reader.EXPECT().GetByEmail(ctx, "erin@example.com").Return(nil, nil)
		m.reader.EXPECT().GetByCookieID(ctx, "cookie-5").Return(&models.UserDB{UserID: tempID, IsTemp: true}, nil)
		m.writer.EXPECT().Promote(ctx, tempID, "erin@example.com", gomock.Any()).Return(sql.ErrNoRows)
		m.writer.EXPECT().Save(ctx, "erin@example.com", gomock.Any()).Return(&models.UserDB{UserID: newID}, nil)
		m.recorder.EXPECT().RecordAccountCreated(false)
		m.jwt.EXPECT().Generate(ctx, newID, false).Return("token", nil)

		session, err := m.svc.CreateAccount(ctx, "erin@example.com", "secret", "cookie-5")
		require.NoError(t, err)
		assert.Equal(t, newID, session.UserID)
	})

	t.Run("unknown cookie", func(t *testing.T) {
		m := newAccountMocks(t)
		newID := uuid.New()
		m.reader.EXPECT().GetByEmail(ctx, "fay@example.com").Return(nil, nil)
		m.reader.EXPECT().GetByCookieID(ctx, "cookie-6").Return(nil, nil)
		m.writer.EXPECT().Save(ctx, "fay@example.com", gomock.Any()).Return(&models.UserDB{UserID: newID}, nil)
		m.recorder.EXPECT().RecordAccountCreated(false)
		m.jwt.EXPECT().Generate(ctx, newID, false).Return("token", nil)

		_, err := m.svc.CreateAccount(ctx, "fay@example.com", "secret", "cookie-6")
		assert.NoError(t, err)
	})
}

func TestAccountService_CreateAccount_RepositoryErrors(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("db error")

	t.Run("email lookup", func(t *testing.T) {
		m := newAccountMocks(t)
		m.reader.EXPECT().GetByEmail(ctx, "gus@example.com").Return(nil, dbErr)

		_, err := m.svc.CreateAccount(ctx, "gus@example.com", "secret", "")
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("save", func(t *testing.T) {
		m := newAccountMocks(t)
		m.reader.EXPECT().GetByEmail(ctx, "gus@example.com").Return(nil, nil)
		m.writer.EXPECT().Save(ctx, "gus@example.com", gomock.Any()).Return(nil, dbErr)

		_, err := m.svc.CreateAccount(ctx, "gus@example.com", "secret", "")
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestAccountService_Login(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Email: strPtr("hal@example.com"), PasswordHash: hashOf(t, "secret")}

	tests := []struct {
		name     string
		email    string
		password string
		user     *models.UserDB
		lookup   bool
		wantErr  error
	}{
		{name: "success", email: "HAL@example.com", password: "secret", user: user, lookup: true},
		{name: "missing password", email: "hal@example.com", wantErr: services.ErrPasswordRequired},
		{name: "unknown email", email: "nobody@example.com", password: "secret", lookup: true, wantErr: services.ErrInvalidCredentials},
		{name: "wrong password", email: "hal@example.com", password: "nope", user: user, lookup: true, wantErr: services.ErrInvalidCredentials},
		{
			name:     "passwordless user",
			email:    "hal@example.com",
			password: "secret",
			user:     &models.UserDB{UserID: userID, Email: strPtr("hal@example.com")},
			lookup:   true,
			wantErr:  services.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newAccountMocks(t)
			if tt.lookup {
				m.reader.EXPECT().GetByEmail(ctx, strings.ToLower(tt.email)).Return(tt.user, nil)
			}
			if tt.wantErr == nil {
				m.jwt.EXPECT().Generate(ctx, userID, false).Return("token", nil)
			}

			session, err := m.svc.Login(ctx, tt.email, tt.password, "")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, session)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "token", session.Token)
			assert.Equal(t, userID, session.UserID)
		})
	}
}

func TestAccountService_Login_Cookie(t *testing.T) {
	ctx := context.Background()

	t.Run("temporary user", func(t *testing.T) {
		m := newAccountMocks(t)
		tempID := uuid.New()
		m.writer.EXPECT().FindOrCreateTemp(ctx, "cookie-7").Return(&models.UserDB{UserID: tempID, IsTemp: true}, nil)
		m.jwt.EXPECT().Generate(ctx, tempID, true).Return("temp-token", nil)

		session, err := m.svc.Login(ctx, "", "", " cookie-7 ")
		require.NoError(t, err)
		assert.Equal(t, &models.Session{UserID: tempID, IsTemp: true, Token: "temp-token"}, session)
	})

	t.Run("promoted user", func(t *testing.T) {
		m := newAccountMocks(t)
		id := uuid.New()
		m.writer.EXPECT().FindOrCreateTemp(ctx, "cookie-8").Return(&models.UserDB{UserID: id, IsTemp: false}, nil)
		m.jwt.EXPECT().Generate(ctx, id, false).Return("token", nil)

		session, err := m.svc.Login(ctx, "", "", "cookie-8")
		require.NoError(t, err)
		assert.False(t, session.IsTemp)
	})

	t.Run("no credentials", func(t *testing.T) {
		m := newAccountMocks(t)
		_, err := m.svc.Login(ctx, " ", "secret", "")
		assert.ErrorIs(t, err, services.ErrInvalidRequest)
	})

	t.Run("token error", func(t *testing.T) {
		m := newAccountMocks(t)
		id := uuid.New()
		jwtErr := errors.New("jwt error")
		m.writer.EXPECT().FindOrCreateTemp(ctx, "cookie-9").Return(&models.UserDB{UserID: id, IsTemp: true}, nil)
		m.jwt.EXPECT().Generate(ctx, id, true).Return("", jwtErr)

		_, err := m.svc.Login(ctx, "", "", "cookie-9")
		assert.ErrorIs(t, err, jwtErr)
	})
}

func TestAccountService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	permanent := &models.UserDB{UserID: userID, Email: strPtr("ivy@example.com"), PasswordHash: hashOf(t, "old-secret")}

	tests := []struct {
		name    string
		current string
		next    string
		user    *models.UserDB
		lookup  bool
		update  bool
		wantErr error
	}{
		{name: "success", current: "old-secret", next: "new-secret", user: permanent, lookup: true, update: true},
		{name: "missing current", current: "", next: "new-secret", wantErr: services.ErrCurrentPasswordRequired},
		{name: "new too short", current: "old-secret", next: "12345", wantErr: services.ErrNewPasswordTooShort},
		{name: "unknown user", current: "old-secret", next: "new-secret", lookup: true, wantErr: services.ErrInvalidUser},
		{
			name:    "temporary user",
			current: "old-secret",
			next:    "new-secret",
			user:    &models.UserDB{UserID: userID, IsTemp: true},
			lookup:  true,
			wantErr: services.ErrInvalidUser,
		},
		{name: "wrong current", current: "guess", next: "new-secret", user: permanent, lookup: true, wantErr: services.ErrWrongPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newAccountMocks(t)
			if tt.lookup {
				m.reader.EXPECT().GetByID(ctx, userID).Return(tt.user, nil)
			}
			if tt.update {
				m.writer.EXPECT().UpdatePassword(ctx, userID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ uuid.UUID, hash string) error {
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(tt.next)))
						return nil
					})
			}

			err := m.svc.ChangePassword(ctx, userID, tt.current, tt.next)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
