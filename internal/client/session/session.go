package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yurin-kami/packchann-client/internal/client/gateway"
	"github.com/yurin-kami/packchann-client/internal/client/models"
	"github.com/yurin-kami/packchann-client/internal/client/storage"
	"github.com/yurin-kami/packchann-client/internal/common"
	"github.com/yurin-kami/packchann-client/internal/logging"
)

// Fallback error texts used when the server reply carries no message.
const (
	loginFailedText    = "login failed"
	registerFailedText = "registration failed"
	updateFailedText   = "profile update failed"
)

// Session holds the authenticated identity and credentials for the current
// actor. Zero value is unusable; construct with New.
type Session struct {
	gw    gateway.Gateway
	store storage.Store
	log   logging.Logger

	user         *models.User
	accessToken  string
	refreshToken string
	loading      bool
	err          string

	observers []func()
}

// Snapshot is an immutable copy of the session state handed to consumers.
type Snapshot struct {
	User         *models.User
	AccessToken  string
	RefreshToken string
	Loading      bool
	Err          string
}

// IsAuthenticated holds exactly when both an access token and a user are present.
func (s Snapshot) IsAuthenticated() bool {
	return s.AccessToken != "" && s.User != nil
}

func (s Snapshot) IsAdmin() bool {
	return s.User.IsAdmin()
}

// Role returns the user's role, or the empty role when unauthenticated.
func (s Snapshot) Role() models.Role {
	if s.User == nil {
		return ""
	}
	return s.User.Role
}

func New(gw gateway.Gateway, store storage.Store, log logging.Logger) *Session {
	return &Session{gw: gw, store: store, log: log.With("component", "session")}
}

// Subscribe registers fn to run after every state change. Intended for the
// presentation layer only; fn must not call back into the session.
func (s *Session) Subscribe(fn func()) {
	s.observers = append(s.observers, fn)
}

func (s *Session) notify() {
	for _, fn := range s.observers {
		fn()
	}
}

func (s *Session) Snapshot() Snapshot {
	var u *models.User
	if s.user != nil {
		copied := *s.user
		u = &copied
	}
	return Snapshot{
		User:         u,
		AccessToken:  s.accessToken,
		RefreshToken: s.refreshToken,
		Loading:      s.loading,
		Err:          s.err,
	}
}

func (s *Session) User() *models.User    { return s.user }
func (s *Session) AccessToken() string   { return s.accessToken }
func (s *Session) RefreshToken() string  { return s.refreshToken }
func (s *Session) Loading() bool         { return s.loading }
func (s *Session) Err() string           { return s.err }
func (s *Session) IsAuthenticated() bool { return s.accessToken != "" && s.user != nil }
func (s *Session) IsAdmin() bool         { return s.user.IsAdmin() }

// begin marks the start of an operation: loading on, previous error cleared.
func (s *Session) begin() {
	s.loading = true
	s.err = ""
	s.notify()
}

// end clears loading on every exit path; deferred by each operation.
func (s *Session) end() {
	s.loading = false
	s.notify()
}

// Login authenticates against the server. On success the session fields are
// set together and persisted; on failure the prior session state is left
// unchanged and the error text is captured for display. The error is also
// returned so callers can branch explicitly.
func (s *Session) Login(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	s.begin()
	defer s.end()

	if err := models.Validate(req); err != nil {
		s.err = err.Error()
		return nil, err
	}

	res, err := s.gw.Login(ctx, req)
	if err != nil {
		s.err = gateway.ErrorMessage(err, loginFailedText)
		return nil, err
	}
	if err := s.establish(ctx, res); err != nil {
		s.err = loginFailedText
		return nil, err
	}
	s.log.Info("logged in", "user_id", s.user.UserID, "role", s.user.Role)
	return s.user, nil
}

// Register creates an account and, like Login, establishes a session from
// the server's response.
func (s *Session) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	s.begin()
	defer s.end()

	if err := models.Validate(req); err != nil {
		s.err = err.Error()
		return nil, err
	}

	res, err := s.gw.Register(ctx, req)
	if err != nil {
		s.err = gateway.ErrorMessage(err, registerFailedText)
		return nil, err
	}
	if err := s.establish(ctx, res); err != nil {
		s.err = registerFailedText
		return nil, err
	}
	s.log.Info("registered", "user_id", s.user.UserID)
	return s.user, nil
}

// establish replaces the session fields from a login/register response and
// persists the snapshot.
func (s *Session) establish(ctx context.Context, res *models.AuthResult) error {
	if res == nil || res.User == nil || res.AccessToken == "" {
		return fmt.Errorf("malformed auth response")
	}
	s.user = res.User
	s.accessToken = res.AccessToken
	s.refreshToken = res.RefreshToken
	s.gw.SetAccessToken(res.AccessToken)
	s.persist(ctx)
	return nil
}

// Logout clears all session fields and the stored snapshot. No network call.
func (s *Session) Logout(ctx context.Context) {
	s.user = nil
	s.accessToken = ""
	s.refreshToken = ""
	s.err = ""
	s.gw.SetAccessToken("")
	s.clearStorage(ctx)
	s.notify()
	s.log.Info("logged out")
}

// UpdateUser replaces the user field and re-persists. Tokens are untouched.
func (s *Session) UpdateUser(ctx context.Context, u *models.User) {
	s.user = u
	s.persist(ctx)
	s.notify()
}

// UpdateProfile sends changed profile fields to the server and, on success,
// adopts the returned user record.
func (s *Session) UpdateProfile(ctx context.Context, req models.UpdateUserRequest) (*models.User, error) {
	s.begin()
	defer s.end()

	if err := models.Validate(req); err != nil {
		s.err = err.Error()
		return nil, err
	}

	updated, err := s.gw.UpdateUserInfo(ctx, req)
	if err != nil {
		s.err = gateway.ErrorMessage(err, updateFailedText)
		return nil, err
	}
	if updated != nil {
		s.UpdateUser(ctx, updated)
	}
	return updated, nil
}

// LoadFromStorage restores a previously persisted session. The session only
// becomes authenticated when both the user record and the access token are
// present; otherwise it stays in the unauthenticated default. Called once at
// process start.
func (s *Session) LoadFromStorage(ctx context.Context) error {
	userRaw, err := s.store.Get(ctx, common.StorageKeyUser)
	if err != nil {
		return fmt.Errorf("failed to read stored session: %w", err)
	}
	tokenRaw, err := s.store.Get(ctx, common.StorageKeyAccessToken)
	if err != nil {
		return fmt.Errorf("failed to read stored session: %w", err)
	}
	if len(userRaw) == 0 || len(tokenRaw) == 0 {
		return common.ErrNoStoredSession
	}

	var u models.User
	if err := json.Unmarshal(userRaw, &u); err != nil {
		s.log.Warn("stored user record is corrupt, ignoring", "error", err)
		return common.ErrNoStoredSession
	}

	refreshRaw, err := s.store.Get(ctx, common.StorageKeyRefreshToken)
	if err != nil {
		return fmt.Errorf("failed to read stored session: %w", err)
	}

	s.user = &u
	s.accessToken = string(tokenRaw)
	s.refreshToken = string(refreshRaw)
	s.gw.SetAccessToken(s.accessToken)
	s.notify()
	s.log.Info("session restored", "user_id", u.UserID)
	return nil
}

// persist writes the three snapshot entries. Failures are logged; the
// in-memory session stays authoritative.
func (s *Session) persist(ctx context.Context) {
	if s.user == nil || s.accessToken == "" {
		return
	}
	userRaw, err := json.Marshal(s.user)
	if err != nil {
		s.log.Error("failed to encode user for storage", "error", err)
		return
	}
	if err := s.store.Set(ctx, common.StorageKeyUser, userRaw); err != nil {
		s.log.Error("failed to persist session", "error", err)
	}
	if err := s.store.Set(ctx, common.StorageKeyAccessToken, []byte(s.accessToken)); err != nil {
		s.log.Error("failed to persist session", "error", err)
	}
	if s.refreshToken != "" {
		if err := s.store.Set(ctx, common.StorageKeyRefreshToken, []byte(s.refreshToken)); err != nil {
			s.log.Error("failed to persist session", "error", err)
		}
	}
}

func (s *Session) clearStorage(ctx context.Context) {
	for _, key := range []string{common.StorageKeyUser, common.StorageKeyAccessToken, common.StorageKeyRefreshToken} {
		if err := s.store.Remove(ctx, key); err != nil {
			s.log.Error("failed to clear stored session", "key", key, "error", err)
		}
	}
}
