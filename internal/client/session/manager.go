package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/schoolplatform/internal/client/models"
	"github.com/dmitrijs2005/schoolplatform/internal/client/services"
	"github.com/dmitrijs2005/schoolplatform/internal/common"
	"github.com/dmitrijs2005/schoolplatform/internal/logging"
)

// ErrNotLoggedIn is returned by operations that need a signed-in user.
var ErrNotLoggedIn = common.ErrNotLoggedIn

// Manager drives an AuthService and keeps the resulting State. It is safe
// for concurrent use; operations themselves are expected to be issued one at
// a time by a single front-end.
type Manager struct {
	svc services.AuthService
	log logging.Logger

	mu    sync.RWMutex
	state State
}

// NewManager restores the state from the stored session. A storage fault is
// logged and leaves the manager Anonymous.
func NewManager(ctx context.Context, svc services.AuthService, log logging.Logger) *Manager {
	m := &Manager{svc: svc, log: log}

	u, err := svc.GetCurrentUser(ctx)
	if err != nil {
		log.Warn(ctx, "session restore failed", "error", err)
	}
	m.state = Restore(u)

	return m
}

// State returns the current snapshot.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := m.state
	if s.User != nil {
		s.User = clone(s.User)
	}
	return s
}

func (m *Manager) apply(fn func(State) State) {
	m.mu.Lock()
	m.state = fn(m.state)
	m.mu.Unlock()
}

func (m *Manager) Login(ctx context.Context, email, password string) (*models.PublicUser, error) {
	m.apply(Begin)

	u, err := m.svc.Login(ctx, email, password)
	if err != nil {
		m.apply(Fail)
		return nil, err
	}

	m.apply(func(s State) State { return Succeed(s, u) })
	return u, nil
}

// Register creates the account and signs it in.
func (m *Manager) Register(ctx context.Context, name, email, password string) (*models.PublicUser, error) {
	m.apply(Begin)

	if _, err := m.svc.Register(ctx, name, email, password); err != nil {
		m.apply(Fail)
		return nil, err
	}

	u, err := m.svc.Login(ctx, email, password)
	if err != nil {
		m.apply(Fail)
		return nil, err
	}

	m.apply(func(s State) State { return Succeed(s, u) })
	return u, nil
}

// Logout clears the stored session. The state changes only when the store
// accepted the deletion.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.svc.Logout(ctx); err != nil {
		return err
	}
	m.apply(LogOut)
	return nil
}

// UpdateProfile updates the signed-in user.
func (m *Manager) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.PublicUser, error) {
	cur := m.State()
	if !cur.IsAuthenticated() {
		return nil, ErrNotLoggedIn
	}

	m.apply(Begin)

	u, err := m.svc.UpdateProfile(ctx, cur.User.ID, update)
	if err != nil {
		m.apply(Fail)
		return nil, err
	}

	m.apply(func(s State) State { return Replace(Settle(s), u) })
	return u, nil
}

// ChangePassword changes the password of the signed-in user.
func (m *Manager) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	cur := m.State()
	if !cur.IsAuthenticated() {
		return ErrNotLoggedIn
	}

	m.apply(Begin)

	err := m.svc.ChangePassword(ctx, cur.User.ID, currentPassword, newPassword)
	m.apply(Settle)

	return err
}
