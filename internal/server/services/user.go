// Package services contains server-side business logic. UserService covers
// the account lifecycle: registration, login, token authentication, profile
// edits, password reset and deletion. DatasetService and ProjectService
// manage the datasets and training projects a user owns.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/backprop/server/internal/common"
	"github.com/backprop/server/internal/cryptox"
	"github.com/backprop/server/internal/dbx"
	"github.com/backprop/server/internal/logging"
	"github.com/backprop/server/internal/server/auth"
	"github.com/backprop/server/internal/server/mail"
	"github.com/backprop/server/internal/server/metrics"
	"github.com/backprop/server/internal/server/models"
	"github.com/backprop/server/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

const resetSubject = "Your backprop password was reset"

// EditUser describes a profile change. Username and Password only apply
// when their Changed flag is set; Email applies when not empty.
type EditUser struct {
	UsernameChanged bool
	Username        string
	PasswordChanged bool
	Password        string
	Email           string
}

type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	signer      *auth.Signer
	mailer      mail.Sender
	metrics     *metrics.Metrics
	log         logging.Logger
	now         func() time.Time
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, signer *auth.Signer, mailer mail.Sender, met *metrics.Metrics, log logging.Logger) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		signer:      signer,
		mailer:      mailer,
		metrics:     met,
		log:         log.With("module", "users"),
		now:         time.Now,
	}
}

// Register stores a new user and returns a token for its freshly minted id.
func (s *UserService) Register(ctx context.Context, username, email, password string) (string, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(email) == "" || password == "" {
		return "", common.ErrorValidation
	}

	salt, hash, err := hashPassword(password)
	if err != nil {
		s.log.Error(ctx, "salt generation failed", "error", err)
		return "", common.ErrorInternal
	}

	user := &models.User{
		ID:           uuid.NewString(),
		UserName:     username,
		Email:        email,
		Salt:         salt,
		PasswordHash: hash,
	}
	if _, err := s.repomanager.Users(s.db).Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return "", common.ErrorAlreadyExists
		}
		s.log.Error(ctx, "create user failed", "error", err)
		return "", common.ErrorInternal
	}

	s.log.Info(ctx, "user registered", "user_id", user.ID)
	return s.issue(ctx, user.ID)
}

// Login checks the password for email and returns a new token.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.metrics.LoginAttempt(metrics.ResultUserNotFound)
			return "", common.ErrUserNotFound
		}
		s.metrics.LoginAttempt(metrics.ResultInternalError)
		s.log.Error(ctx, "lookup user failed", "error", err)
		return "", common.ErrorInternal
	}

	if !cryptox.VerifyPassword(password, user.Salt, user.PasswordHash) {
		s.metrics.LoginAttempt(metrics.ResultWrongPassword)
		return "", common.ErrWrongPassword
	}

	s.metrics.LoginAttempt(metrics.ResultOK)
	return s.issue(ctx, user.ID)
}

// Authenticate verifies raw and returns the user id it was issued for.
// Malformed and wrongly signed tokens both yield common.ErrInvalidToken.
func (s *UserService) Authenticate(ctx context.Context, raw string) (string, error) {
	subject, err := s.signer.Verify(raw, s.now())
	switch {
	case err == nil:
		s.metrics.TokenVerified(metrics.ResultOK)
		return subject, nil
	case errors.Is(err, auth.ErrExpired):
		s.metrics.TokenVerified(metrics.ResultExpired)
		return "", common.ErrTokenExpired
	case errors.Is(err, auth.ErrBadSignature):
		s.metrics.TokenVerified(metrics.ResultBadSignature)
	default:
		s.metrics.TokenVerified(metrics.ResultMalformed)
	}

	s.log.Debug(ctx, "token rejected", "reason", err)
	return "", common.ErrInvalidToken
}

func (s *UserService) Get(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		return nil, s.lookupError(ctx, err)
	}
	return user, nil
}

// Edit applies e to the user in a single transaction.
func (s *UserService) Edit(ctx context.Context, userID string, e EditUser) error {
	if e.UsernameChanged && strings.TrimSpace(e.Username) == "" {
		return common.ErrorValidation
	}
	if e.PasswordChanged && e.Password == "" {
		return common.ErrorValidation
	}

	var salt, hash []byte
	if e.PasswordChanged {
		var err error
		if salt, hash, err = hashPassword(e.Password); err != nil {
			s.log.Error(ctx, "salt generation failed", "error", err)
			return common.ErrorInternal
		}
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)
		if e.UsernameChanged {
			if err := repo.UpdateUsername(ctx, userID, e.Username); err != nil {
				return err
			}
		}
		if e.PasswordChanged {
			if err := repo.UpdatePassword(ctx, userID, salt, hash); err != nil {
				return err
			}
		}
		if e.Email != "" {
			if err := repo.UpdateEmail(ctx, userID, e.Email); err != nil {
				return err
			}
		}
		return nil
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrorAlreadyExists):
		return common.ErrorAlreadyExists
	default:
		return s.lookupError(ctx, err)
	}
}

// ResetPassword replaces the password of the user registered under email
// with a random one and mails it to them. The mail goes out only after the
// new password is committed; a failed send leaves the new password stored
// and is reported so the caller can request another reset.
func (s *UserService) ResetPassword(ctx context.Context, email string) error {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		return s.lookupError(ctx, err)
	}

	password, err := common.TemporaryPassword()
	if err != nil {
		s.log.Error(ctx, "password generation failed", "error", err)
		return common.ErrorInternal
	}
	salt, hash, err := hashPassword(password)
	if err != nil {
		s.log.Error(ctx, "salt generation failed", "error", err)
		return common.ErrorInternal
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Users(tx).UpdatePassword(ctx, user.ID, salt, hash)
	})
	if err != nil {
		return s.lookupError(ctx, err)
	}

	body := fmt.Sprintf("Hello %s,\n\nyour temporary password is: %s\n\nPlease change it after logging in.\n", user.UserName, password)
	if err := s.mailer.Send(ctx, user.Email, resetSubject, body); err != nil {
		s.log.Error(ctx, "password reset stored but not mailed", "user_id", user.ID, "error", err)
		return common.ErrorInternal
	}

	s.log.Info(ctx, "password reset", "user_id", user.ID)
	return nil
}

// Delete removes the authenticated user. email must match the stored address.
func (s *UserService) Delete(ctx context.Context, userID, email string) error {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}
	if !strings.EqualFold(user.Email, email) {
		return common.ErrorUnauthorized
	}

	if err := s.repomanager.Users(s.db).Delete(ctx, userID); err != nil {
		return s.lookupError(ctx, err)
	}

	s.log.Info(ctx, "user deleted", "user_id", userID)
	return nil
}

func (s *UserService) issue(ctx context.Context, userID string) (string, error) {
	token, err := s.signer.Issue(userID, s.now())
	if err != nil {
		s.log.Error(ctx, "token issue failed", "error", err)
		return "", common.ErrorInternal
	}
	s.metrics.TokenIssued()
	return token, nil
}

func (s *UserService) lookupError(ctx context.Context, err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return common.ErrUserNotFound
	}
	s.log.Error(ctx, "user storage failed", "error", err)
	return common.ErrorInternal
}

func hashPassword(password string) (salt, hash []byte, err error) {
	salt, err = cryptox.GenerateSalt()
	if err != nil {
		return nil, nil, err
	}
	return salt, cryptox.DeriveKey(password, salt), nil
}
