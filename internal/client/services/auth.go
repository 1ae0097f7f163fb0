// Package services contains the account core of the schoolplatform client:
// the AuthService that owns the user registry and the session snapshot.
//
// Every operation reads the whole registry, changes it in memory and writes
// the whole registry back. There is no locking between processes sharing a
// store; the last writer wins.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/schoolplatform/internal/client/auth"
	"github.com/dmitrijs2005/schoolplatform/internal/client/models"
	"github.com/dmitrijs2005/schoolplatform/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/schoolplatform/internal/common"
	"github.com/dmitrijs2005/schoolplatform/internal/cryptox"
	"github.com/dmitrijs2005/schoolplatform/internal/logging"
	"github.com/dmitrijs2005/schoolplatform/internal/metrics"
)

// AuthService defines the account operations offered to front-ends.
//
// Business failures are returned as *Error values; use errors.Is with the
// Err* sentinels or KindOf to tell them apart. GetCurrentUser returns
// (nil, nil) when nobody is signed in.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*models.PublicUser, error)
	Login(ctx context.Context, email, password string) (*models.PublicUser, error)
	Logout(ctx context.Context) error
	GetCurrentUser(ctx context.Context) (*models.PublicUser, error)
	UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (*models.PublicUser, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}

// Recorder receives the outcome of every operation.
type Recorder interface {
	ObserveOperation(op, outcome string, d time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) ObserveOperation(string, string, time.Duration) {}

type Option func(*authService)

// WithSessionCodec sets the encoding of the session snapshot. JSON by default.
func WithSessionCodec(c auth.SessionCodec) Option {
	return func(s *authService) { s.codec = c }
}

func WithLogger(l logging.Logger) Option {
	return func(s *authService) { s.log = l }
}

func WithRecorder(r Recorder) Option {
	return func(s *authService) { s.rec = r }
}

// WithClock replaces time.Now for createdAt stamps.
func WithClock(now func() time.Time) Option {
	return func(s *authService) { s.now = now }
}

// WithIDGenerator replaces the random UUID generator for new accounts.
func WithIDGenerator(gen func() string) Option {
	return func(s *authService) { s.newID = gen }
}

// authService is the AuthService backed by a key/value repository.
type authService struct {
	repo  metadata.Repository
	codec auth.SessionCodec
	log   logging.Logger
	rec   Recorder
	now   func() time.Time
	newID func() string
}

// NewAuthService constructs an AuthService over repo.
func NewAuthService(repo metadata.Repository, opts ...Option) AuthService {
	s := &authService{
		repo:  repo,
		codec: auth.JSONCodec{},
		log:   logging.Nop(),
		rec:   nopRecorder{},
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *authService) observe(op Op, start time.Time, errp *error) {
	outcome := metrics.OutcomeSuccess
	if err := *errp; err != nil {
		outcome = string(KindOf(err))
		if outcome == "" {
			outcome = metrics.OutcomeFailure
		}
	}
	s.rec.ObserveOperation(string(op), outcome, time.Since(start))
}

func (s *authService) Register(ctx context.Context, name, email, password string) (_ *models.PublicUser, err error) {
	defer s.observe(OpRegister, time.Now(), &err)

	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, persistenceError(OpRegister, err)
	}

	email = strings.ToLower(email)
	for _, u := range users {
		if strings.ToLower(u.Email) == email {
			s.log.Info(ctx, "registration rejected: duplicate email", "email", email)
			return nil, newError(OpRegister, KindDuplicateEmail)
		}
	}

	rec := models.UserRecord{
		PublicUser: models.PublicUser{
			ID:        s.newID(),
			Name:      strings.TrimSpace(name),
			Email:     email,
			CreatedAt: s.now().UTC(),
		},
		PasswordHash: cryptox.HashPassword(password),
	}

	users = append(users, rec)
	if err := s.saveUsers(ctx, users); err != nil {
		return nil, persistenceError(OpRegister, err)
	}

	s.log.Info(ctx, "user registered", "user_id", rec.ID, "email", rec.Email)

	u := rec.Public()
	return &u, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (_ *models.PublicUser, err error) {
	defer s.observe(OpLogin, time.Now(), &err)

	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, persistenceError(OpLogin, err)
	}

	email = strings.ToLower(email)
	hash := cryptox.HashPassword(password)

	var found *models.UserRecord
	for i := range users {
		// both conditions in one match so a wrong password looks like an unknown email
		if strings.ToLower(users[i].Email) == email && cryptox.EqualHashes(users[i].PasswordHash, hash) {
			found = &users[i]
			break
		}
	}

	if found == nil {
		s.log.Info(ctx, "login rejected", "email", email)
		return nil, newError(OpLogin, KindInvalidCredentials)
	}

	u := found.Public()
	if err := s.writeSession(ctx, u); err != nil {
		return nil, persistenceError(OpLogin, err)
	}

	s.log.Info(ctx, "user signed in", "user_id", u.ID)
	return &u, nil
}

func (s *authService) Logout(ctx context.Context) (err error) {
	defer s.observe(OpLogout, time.Now(), &err)

	if err := s.repo.Delete(ctx, common.CurrentUserKey); err != nil {
		return persistenceError(OpLogout, err)
	}

	s.log.Debug(ctx, "session cleared")
	return nil
}

func (s *authService) GetCurrentUser(ctx context.Context) (_ *models.PublicUser, err error) {
	defer s.observe(OpGetCurrentUser, time.Now(), &err)

	raw, err := s.repo.Get(ctx, common.CurrentUserKey)
	if err != nil {
		return nil, persistenceError(OpGetCurrentUser, err)
	}
	if raw == nil {
		return nil, nil
	}

	u, err := s.codec.Decode(raw)
	if err != nil {
		s.log.Warn(ctx, "ignoring unreadable session snapshot", "error", err)
		return nil, nil
	}

	return u, nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (_ *models.PublicUser, err error) {
	defer s.observe(OpUpdateProfile, time.Now(), &err)

	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, persistenceError(OpUpdateProfile, err)
	}

	idx := indexOf(users, userID)
	if idx < 0 {
		return nil, newError(OpUpdateProfile, KindUserNotFound)
	}

	if supplied(update.Email) {
		email := strings.ToLower(*update.Email)
		for _, u := range users {
			if u.ID != userID && strings.ToLower(u.Email) == email {
				s.log.Info(ctx, "profile update rejected: email taken", "user_id", userID, "email", email)
				return nil, newError(OpUpdateProfile, KindEmailTaken)
			}
		}
	}

	rec := users[idx]
	if supplied(update.Name) {
		rec.Name = strings.TrimSpace(*update.Name)
	}
	if supplied(update.Email) {
		rec.Email = strings.ToLower(*update.Email)
	}
	users[idx] = rec

	if err := s.saveUsers(ctx, users); err != nil {
		return nil, persistenceError(OpUpdateProfile, err)
	}

	u := rec.Public()
	if err := s.writeSession(ctx, u); err != nil {
		return nil, persistenceError(OpUpdateProfile, err)
	}

	s.log.Info(ctx, "profile updated", "user_id", u.ID)
	return &u, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) (err error) {
	defer s.observe(OpChangePassword, time.Now(), &err)

	users, err := s.loadUsers(ctx)
	if err != nil {
		return persistenceError(OpChangePassword, err)
	}

	idx := indexOf(users, userID)
	if idx < 0 {
		return newError(OpChangePassword, KindUserNotFound)
	}

	if !cryptox.EqualHashes(users[idx].PasswordHash, cryptox.HashPassword(currentPassword)) {
		s.log.Info(ctx, "password change rejected", "user_id", userID)
		return newError(OpChangePassword, KindIncorrectPassword)
	}

	users[idx].PasswordHash = cryptox.HashPassword(newPassword)
	if err := s.saveUsers(ctx, users); err != nil {
		return persistenceError(OpChangePassword, err)
	}

	s.log.Info(ctx, "password changed", "user_id", userID)
	return nil
}

func (s *authService) loadUsers(ctx context.Context) ([]models.UserRecord, error) {
	raw, err := s.repo.Get(ctx, common.UsersKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []models.UserRecord{}, nil
	}

	var users []models.UserRecord
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("decode user registry: %w", err)
	}
	return users, nil
}

func (s *authService) saveUsers(ctx context.Context, users []models.UserRecord) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode user registry: %w", err)
	}
	return s.repo.Set(ctx, common.UsersKey, raw)
}

func (s *authService) writeSession(ctx context.Context, u models.PublicUser) error {
	raw, err := s.codec.Encode(u)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return s.repo.Set(ctx, common.CurrentUserKey, raw)
}

func indexOf(users []models.UserRecord, id string) int {
	for i := range users {
		if users[i].ID == id {
			return i
		}
	}
	return -1
}

func supplied(v *string) bool {
	return v != nil && *v != ""
}
