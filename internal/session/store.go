package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Radek987976/hyperbare-manager/internal/clients/gmao"
	"github.com/Radek987976/hyperbare-manager/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=store.go -destination=../mocks/session.go -package=mocks

// AuthClient is the slice of the API client the store drives. The store
// never touches the transport directly; credential attachment happens in
// the round tripper.
type AuthClient interface {
	Login(ctx context.Context, email, password string) (gmao.AuthResponse, error)
	Register(ctx context.Context, req gmao.RegisterRequest) (gmao.AuthResponse, error)
}

// Storage is the persisted credential/user pair.
type Storage interface {
	Load() (string, entity.User, bool, error)
	Save(token string, user entity.User) error
	Clear() error
}

// Store is the single source of truth for the authenticated identity.
// Persistent storage is always written before the in-memory state, so an
// observer of the state sees a storage at least as new.
type Store struct {
	storage Storage
	auth    AuthClient

	mu    sync.RWMutex
	state entity.SessionState
	subs  []chan entity.SessionState

	loaded sync.Once
}

func New(storage Storage, auth AuthClient) *Store {
	return &Store{
		storage: storage,
		auth:    auth,
		state: entity.SessionState{
			Permissions: entity.PermissionsForRole(""),
			Loading:     true,
		},
	}
}

// Bootstrap rehydrates the session from persistent storage. It is called
// once at process start; Loading flips to false exactly once no matter
// how rehydration went. A stored pair that is half-present or corrupt is
// cleared by the storage layer and the process proceeds anonymously.
func (s *Store) Bootstrap(ctx context.Context) error {
	defer s.finishLoading()

	token, user, ok, err := s.storage.Load()
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	if !ok {
		return nil
	}

	if tokenExpired(token) {
		slog.InfoContext(ctx, "stored token already expired, clearing session", "user_id", user.ID)

		if err := s.storage.Clear(); err != nil {
			return fmt.Errorf("clear expired session: %w", err)
		}

		return nil
	}

	s.setUser(user)

	return nil
}

// Login exchanges credentials for a session. Storage is written first;
// on any failure the state is left untouched.
func (s *Store) Login(ctx context.Context, email, password string) (entity.User, error) {
	resp, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return entity.User{}, err
	}

	if err := s.storage.Save(resp.AccessToken, resp.User); err != nil {
		return entity.User{}, fmt.Errorf("persist session: %w", err)
	}

	s.setUser(resp.User)

	return resp.User, nil
}

// Register creates an account. When the server activates it immediately
// the call behaves exactly like a successful login; when approval is
// pending nothing is stored and the signal is returned to the caller.
func (s *Store) Register(ctx context.Context, req gmao.RegisterRequest) (entity.User, *entity.PendingRegistration, error) {
	resp, err := s.auth.Register(ctx, req)
	if err != nil {
		return entity.User{}, nil, err
	}

	if resp.PendingApproval {
		return entity.User{}, &entity.PendingRegistration{Message: resp.Message}, nil
	}

	if err := s.storage.Save(resp.AccessToken, resp.User); err != nil {
		return entity.User{}, nil, fmt.Errorf("persist session: %w", err)
	}

	s.setUser(resp.User)

	return resp.User, nil, nil
}

// Logout drops both the stored pair and the in-memory identity. Calling
// it twice is a no-op the second time.
func (s *Store) Logout() error {
	if err := s.storage.Clear(); err != nil {
		return err
	}

	s.reset()

	return nil
}

// Invalidate resets the in-memory identity after the transport swept the
// stored pair on a 401. Registered as the round tripper's auth-expired
// hook.
func (s *Store) Invalidate() {
	s.reset()
}

// Snapshot returns the current state by value; the User pointer is
// copied so subscribers cannot mutate the store through it.
func (s *Store) Snapshot() entity.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copyState(s.state)
}

// Subscribe returns a channel receiving a snapshot after every state
// change. Slow consumers miss intermediate states, never the final one.
func (s *Store) Subscribe() <-chan entity.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan entity.SessionState, 1)
	s.subs = append(s.subs, ch)

	return ch
}

func (s *Store) IsAuthenticated() bool { return s.Snapshot().User != nil }
func (s *Store) IsAdmin() bool         { return s.hasRole(entity.RoleAdmin) }
func (s *Store) IsTechnicien() bool    { return s.hasRole(entity.RoleTechnicien) }
func (s *Store) IsInvite() bool        { return s.hasRole(entity.RoleInvite) }

func (s *Store) CanCreate() bool      { return s.Snapshot().Permissions.CanCreate }
func (s *Store) CanModify() bool      { return s.Snapshot().Permissions.CanModify }
func (s *Store) CanDelete() bool      { return s.Snapshot().Permissions.CanDelete }
func (s *Store) CanExport() bool      { return s.Snapshot().Permissions.CanExport }
func (s *Store) CanManageUsers() bool { return s.Snapshot().Permissions.CanManageUsers }

func (s *Store) hasRole(role string) bool {
	state := s.Snapshot()
	return state.User != nil && state.User.Role == role
}

func (s *Store) setUser(user entity.User) {
	s.mu.Lock()

	u := user
	s.state.User = &u
	s.state.Permissions = entity.PermissionsForRole(user.Role)

	s.notifyLocked()
	s.mu.Unlock()
}

func (s *Store) reset() {
	s.mu.Lock()

	s.state.User = nil
	s.state.Permissions = entity.PermissionsForRole("")

	s.notifyLocked()
	s.mu.Unlock()
}

func (s *Store) finishLoading() {
	s.loaded.Do(func() {
		s.mu.Lock()
		s.state.Loading = false
		s.notifyLocked()
		s.mu.Unlock()
	})
}

func (s *Store) notifyLocked() {
	snapshot := copyState(s.state)

	for _, ch := range s.subs {
		select {
		case ch <- snapshot:
		default:
			// replace the stale pending snapshot with the current one
			select {
			case <-ch:
			default:
			}

			select {
			case ch <- snapshot:
			default:
			}
		}
	}
}

func copyState(state entity.SessionState) entity.SessionState {
	if state.User != nil {
		u := *state.User
		state.User = &u
	}

	return state
}

// The credential is opaque to the client, but when it happens to be a
// JWT with an exp already in the past there is no point trusting it
// until the first 401. Tokens that do not parse are kept as-is.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}

	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return time.Now().After(exp.Time)
}
