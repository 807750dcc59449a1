package services

//go:generate mockgen -source=account.go -destination=mock_account.go -package=services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sbilibin2017/ive-had-worse/internal/logger"
	"github.com/sbilibin2017/ive-had-worse/internal/models"
	"github.com/sbilibin2017/ive-had-worse/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the minimum length of a new password.
const MinPasswordLength = 6

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByCookieID(ctx context.Context, cookieID string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email, passwordHash string) (*models.UserDB, error)
	FindOrCreateTemp(ctx context.Context, cookieID string) (*models.UserDB, error)
	Promote(ctx context.Context, userID uuid.UUID, email, passwordHash string) error
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
}

// JWTGenerator defines an interface for generating session tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, isTemp bool) (string, error)
}

// AccountService handles registration, login and password changes.
type AccountService struct {
	reader     UserReader
	writer     UserWriter
	jwt        JWTGenerator
	recorder   Recorder
	validate   *validator.Validate
	bcryptCost int
}

// AccountOption configures an AccountService.
type AccountOption func(*AccountService)

// WithBcryptCost sets the bcrypt cost used for new password hashes.
func WithBcryptCost(cost int) AccountOption {
	return func(s *AccountService) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			s.bcryptCost = cost
		}
	}
}

// WithAccountRecorder sets the metrics recorder.
func WithAccountRecorder(r Recorder) AccountOption {
	return func(s *AccountService) {
		s.recorder = recorderOrNoop(r)
	}
}

// NewAccountService creates a new AccountService instance.
func NewAccountService(reader UserReader, writer UserWriter, jwt JWTGenerator, opts ...AccountOption) *AccountService {
	svc := &AccountService{
		reader:     reader,
		writer:     writer,
		jwt:        jwt,
		recorder:   noopRecorder{},
		validate:   validator.New(),
		bcryptCost: 12,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// CreateAccount registers a permanent user. When cookieID belongs to a
// temporary user, that user is promoted instead of creating a new one.
func (svc *AccountService) CreateAccount(ctx context.Context, email, password, cookieID string) (*models.Session, error) {
	email = normalizeEmail(email)
	if err := svc.validate.Var(email, "required,email"); err != nil {
		return nil, ErrInvalidEmail
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	owner, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check email owner", "error", err)
		return nil, err
	}

	var temp *models.UserDB
	if cookieID = strings.TrimSpace(cookieID); cookieID != "" {
		temp, err = svc.reader.GetByCookieID(ctx, cookieID)
		if err != nil {
			logger.Log.Errorw("failed to get user by cookie", "error", err)
			return nil, err
		}
		if temp != nil && !temp.IsTemp {
			temp = nil
		}
	}

	if owner != nil && (temp == nil || owner.UserID != temp.UserID) {
		logger.Log.Infow("email already taken", "email", email)
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), svc.bcryptCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "error", err)
		return nil, err
	}

	userID, promoted, err := svc.saveAccount(ctx, temp, email, string(hash))
	if err != nil {
		return nil, err
	}
	svc.recorder.RecordAccountCreated(promoted)

	return svc.issue(ctx, userID, false)
}

func (svc *AccountService) saveAccount(ctx context.Context, temp *models.UserDB, email, hash string) (uuid.UUID, bool, error) {
	if temp != nil {
		err := svc.writer.Promote(ctx, temp.UserID, email, hash)
		switch {
		case err == nil:
			return temp.UserID, true, nil
		case errors.Is(err, repositories.ErrUniqueViolation):
			return uuid.Nil, false, ErrEmailTaken
		case !errors.Is(err, sql.ErrNoRows):
			logger.Log.Errorw("failed to promote user", "userID", temp.UserID, "error", err)
			return uuid.Nil, false, err
		}
		// Promoted concurrently; register a fresh user instead.
	}

	user, err := svc.writer.Save(ctx, email, hash)
	if errors.Is(err, repositories.ErrUniqueViolation) {
		return uuid.Nil, false, ErrEmailTaken
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "error", err)
		return uuid.Nil, false, err
	}
	return user.UserID, false, nil
}

// Login authenticates by email and password, or finds-or-creates the
// temporary user bound to cookieID when no email is given.
func (svc *AccountService) Login(ctx context.Context, email, password, cookieID string) (*models.Session, error) {
	email = normalizeEmail(email)
	cookieID = strings.TrimSpace(cookieID)

	switch {
	case email != "":
		if password == "" {
			return nil, ErrPasswordRequired
		}

		user, err := svc.reader.GetByEmail(ctx, email)
		if err != nil {
			logger.Log.Errorw("failed to get user", "error", err)
			return nil, err
		}
		if user == nil || !user.HasPassword() {
			logger.Log.Infow("login for unknown email", "email", email)
			return nil, ErrInvalidCredentials
		}
		if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
			logger.Log.Infow("invalid credentials", "userID", user.UserID)
			return nil, ErrInvalidCredentials
		}
		return svc.issue(ctx, user.UserID, user.IsTemp)

	case cookieID != "":
		user, err := svc.writer.FindOrCreateTemp(ctx, cookieID)
		if err != nil {
			logger.Log.Errorw("failed to find or create temp user", "error", err)
			return nil, err
		}
		return svc.issue(ctx, user.UserID, user.IsTemp)

	default:
		return nil, ErrInvalidRequest
	}
}

// ChangePassword replaces the password of a permanent user after checking
// the current one.
func (svc *AccountService) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	if currentPassword == "" {
		return ErrCurrentPasswordRequired
	}
	if utf8.RuneCountInString(newPassword) < MinPasswordLength {
		return ErrNewPasswordTooShort
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "error", err)
		return err
	}
	if user == nil || user.IsTemp || !user.HasPassword() {
		return ErrInvalidUser
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(currentPassword)); err != nil {
		logger.Log.Infow("wrong current password", "userID", userID)
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), svc.bcryptCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "error", err)
		return err
	}

	if err := svc.writer.UpdatePassword(ctx, userID, string(hash)); err != nil {
		logger.Log.Errorw("failed to update password", "userID", userID, "error", err)
		return err
	}
	return nil
}

func (svc *AccountService) issue(ctx context.Context, userID uuid.UUID, isTemp bool) (*models.Session, error) {
	token, err := svc.jwt.Generate(ctx, userID, isTemp)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "userID", userID, "error", err)
		return nil, err
	}
	return &models.Session{UserID: userID, IsTemp: isTemp, Token: token}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
