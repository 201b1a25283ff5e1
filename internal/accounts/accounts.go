// Package accounts registers users and manages the login session.
//
// Accounts live under the "users" key and the session under "currentUser".
// Passwords are stored as salted argon2id hashes and the session carries a
// signed token so a tampered session record can be detected.
package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/phumgame/internal/auth"
	"github.com/dmitrijs2005/phumgame/internal/common"
	"github.com/dmitrijs2005/phumgame/internal/cryptox"
	"github.com/dmitrijs2005/phumgame/internal/logging"
	"github.com/dmitrijs2005/phumgame/internal/models"
	"github.com/dmitrijs2005/phumgame/internal/storage"
)

// Options tune a Service. Zero values fall back to defaults.
type Options struct {
	SessionSecret []byte
	SessionTTL    time.Duration
	HashParams    cryptox.Params
	Now           func() time.Time
}

// Service defines account and session operations.
//
// Contract:
//   - Register: validate and create an account; the email is unique
//     regardless of letter case.
//   - RegisterWithConfirmation: Register after checking the repeated password.
//   - Login: verify credentials and overwrite the current session.
//   - Logout: delete the current session.
//   - IsLoggedIn: a session record exists.
//   - CurrentSession: the stored session, or nil.
//   - VerifySession: the stored session, with its token checked.
type Service interface {
	Register(ctx context.Context, name, email, password string) (*models.Account, error)
	RegisterWithConfirmation(ctx context.Context, name, email, password, confirm string) (*models.Account, error)
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Logout(ctx context.Context) error
	IsLoggedIn(ctx context.Context) (bool, error)
	CurrentSession(ctx context.Context) (*models.Session, error)
	VerifySession(ctx context.Context) (*models.Session, error)
}

type accountService struct {
	store  storage.Store
	logger logging.Logger

	secret []byte
	ttl    time.Duration
	params cryptox.Params
	now    func() time.Time

	// hashed once so unknown emails cost the same as wrong passwords
	dummyHash string
}

func NewService(store storage.Store, logger logging.Logger, opts Options) Service {
	s := &accountService{
		store:  store,
		logger: logger,
		secret: opts.SessionSecret,
		ttl:    opts.SessionTTL,
		params: opts.HashParams,
		now:    opts.Now,
	}
	if s.ttl <= 0 {
		s.ttl = 24 * time.Hour
	}
	if s.params == (cryptox.Params{}) {
		s.params = cryptox.DefaultParams
	}
	if s.now == nil {
		s.now = time.Now
	}
	if len(s.secret) == 0 {
		// sessions then only verify within this process
		secret, err := common.MakeRandHexString(32)
		if err != nil {
			panic(err)
		}
		s.secret = []byte(secret)
	}
	s.dummyHash = cryptox.HashPassword(common.GenerateRandByteArray(16), s.params)
	return s
}

func (s *accountService) users(ctx context.Context) ([]models.Account, error) {
	users, err := storage.GetJSON[[]models.Account](ctx, s.store, common.KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	return users, nil
}

func (s *accountService) Register(ctx context.Context, name, email, password string) (*models.Account, error) {
	if err := validateRegistration(name, email, password); err != nil {
		return nil, err
	}

	users, err := s.users(ctx)
	if err != nil {
		return nil, err
	}

	email = normalizeEmail(email)
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return nil, ErrAccountExists
		}
	}

	acc := models.Account{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: cryptox.HashPassword([]byte(password), s.params),
		CreatedAt:    s.now().UTC(),
	}

	users = append(users, acc)
	if err := storage.SetJSON(ctx, s.store, common.KeyUsers, users); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "account registered", "user_id", acc.ID)
	return &acc, nil
}

func (s *accountService) RegisterWithConfirmation(ctx context.Context, name, email, password, confirm string) (*models.Account, error) {
	if err := validateRegistration(name, email, password); err != nil {
		return nil, err
	}
	if password != confirm {
		return nil, &ValidationError{Field: "confirm-password", Message: MsgPasswordMismatch}
	}
	return s.Register(ctx, name, email, password)
}

func (s *accountService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	if !ValidEmail(email) {
		return nil, &ValidationError{Field: "email", Message: MsgInvalidEmail}
	}
	if password == "" {
		return nil, &ValidationError{Field: "password", Message: MsgPasswordRequired}
	}

	users, err := s.users(ctx)
	if err != nil {
		return nil, err
	}

	email = normalizeEmail(email)
	var acc *models.Account
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			acc = &users[i]
			break
		}
	}

	hash := s.dummyHash
	if acc != nil {
		hash = acc.PasswordHash
	}
	ok, err := cryptox.VerifyPassword(hash, []byte(password))
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if acc == nil || !ok {
		s.logger.Warn(ctx, "login failed")
		return nil, ErrInvalidCredentials
	}

	now := s.now().UTC()
	token, err := auth.IssueSessionToken(acc.ID, acc.Email, s.secret, s.ttl, now)
	if err != nil {
		return nil, fmt.Errorf("issue session token: %w", err)
	}

	sess := models.Session{
		UserID:    acc.ID,
		Name:      acc.Name,
		Email:     acc.Email,
		LoginTime: now,
		Token:     token,
	}
	if err := storage.SetJSON(ctx, s.store, common.KeyCurrentUser, sess); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "login succeeded", "user_id", acc.ID)
	return &sess, nil
}

func (s *accountService) Logout(ctx context.Context) error {
	if err := s.store.Remove(ctx, common.KeyCurrentUser); err != nil {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

func (s *accountService) IsLoggedIn(ctx context.Context) (bool, error) {
	_, ok, err := s.store.Get(ctx, common.KeyCurrentUser)
	if err != nil {
		return false, fmt.Errorf("get session: %w", err)
	}
	return ok, nil
}

func (s *accountService) CurrentSession(ctx context.Context) (*models.Session, error) {
	sess, err := storage.GetJSON[*models.Session](ctx, s.store, common.KeyCurrentUser)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return sess, nil
}

// VerifySession returns common.ErrorUnauthorized when nobody is logged in,
// and the token error when the stored token is expired, forged or was
// issued to a different account.
func (s *accountService) VerifySession(ctx context.Context) (*models.Session, error) {
	sess, err := s.CurrentSession(ctx)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, common.ErrorUnauthorized
	}

	claims, err := auth.ParseSessionToken(sess.Token, s.secret)
	if err != nil {
		return nil, err
	}
	if claims.UserID != sess.UserID || !strings.EqualFold(claims.Email, sess.Email) {
		return nil, common.ErrInvalidToken
	}
	return sess, nil
}

// IsValidation reports whether err is a form validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, common.ErrorValidation)
}
