// Package session holds the process-wide authenticated identity and its credential, and
// keeps both in sync with durable storage.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/rental-console/internal/domain"
	"github.com/spec-kit/rental-console/internal/events"
	"github.com/spec-kit/rental-console/internal/persistence"
	apperrors "github.com/spec-kit/rental-console/pkg/util/errorutil"
)

// Durable storage keys.
const (
	KeyTokenName  = "tokenName"
	KeyTokenValue = "tokenValue"
	KeyUserInfo   = "userInfo"
)

// Reasons attached to EventSessionCleared.
const (
	ReasonLogout       = "logout"
	ReasonUnauthorized = "unauthorized"
)

// Credential is the header name/value pair attached to outgoing requests.
type Credential struct {
	Name  string
	Value string
}

// Summary is a read-only view of the session.
type Summary struct {
	Authenticated  bool           `json:"authenticated"`
	Admin          bool           `json:"admin"`
	CredentialName string         `json:"credential_name,omitempty"`
	Identity       *domain.UserVO `json:"identity,omitempty"`
}

// Option customizes a Store.
type Option func(*Store)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPublisher sets where session events are published.
func WithPublisher(p events.Publisher) Option {
	return func(s *Store) {
		if p != nil {
			s.publisher = p
		}
	}
}

// WithAdminUserType overrides the userType value that marks administrators.
func WithAdminUserType(userType string) Option {
	return func(s *Store) {
		if userType != "" {
			s.adminUserType = userType
		}
	}
}

// Store is the session. Reads never wait on storage I/O; writers are serialized so memory
// and storage see mutations in the same order. Events are published after the write lock
// is released, so handlers may call back into the store.
type Store struct {
	writeMu sync.Mutex

	mu              sync.RWMutex
	identity        *domain.UserVO
	credentialName  string
	credentialValue string

	kv            persistence.KeyValueStore
	logger        *zap.Logger
	publisher     events.Publisher
	adminUserType string
}

// NewStore builds the session over kv and restores whatever kv holds.
func NewStore(ctx context.Context, kv persistence.KeyValueStore, opts ...Option) *Store {
	s := &Store{
		kv:            kv,
		logger:        zap.NewNop(),
		publisher:     events.Nop(),
		adminUserType: domain.UserTypeAdmin,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Restore(ctx)
	return s
}

// SetIdentity records a logged-in user. When the payload carries a complete credential the
// pair replaces the current one. The identity is persisted without its credential. Memory
// is always updated; a storage failure is logged and returned.
func (s *Store) SetIdentity(ctx context.Context, user *domain.UserVO) error {
	if user == nil {
		return apperrors.NewValidationError("identity is required", nil)
	}

	s.writeMu.Lock()
	withCredential := user.Token.Complete()
	s.mu.Lock()
	s.identity = user.WithoutToken()
	if withCredential {
		s.credentialName = user.Token.TokenName
		s.credentialValue = user.Token.TokenValue
	}
	credName := s.credentialName
	admin := s.isAdminLocked()
	s.mu.Unlock()

	var errs []error
	if withCredential {
		if err := s.persistCredential(ctx, user.Token.TokenName, user.Token.TokenValue); err != nil {
			errs = append(errs, err)
		}
	}
	blob, err := json.Marshal(user.WithoutToken())
	if err != nil {
		errs = append(errs, fmt.Errorf("encode identity: %w", err))
	} else if err := s.kv.Set(ctx, KeyUserInfo, string(blob)); err != nil {
		errs = append(errs, fmt.Errorf("persist identity: %w", err))
	}
	s.writeMu.Unlock()

	s.publish(ctx, events.New(events.EventSessionEstablished, events.SessionEstablishedPayload{
		UserID:         int64(user.ID),
		DisplayName:    user.DisplayName(),
		CredentialName: credName,
		Admin:          admin,
	}))

	if err := errors.Join(errs...); err != nil {
		s.logger.Warn("session persisted partially", zap.Error(err))
		return err
	}
	return nil
}

// persistCredential writes both halves or, failing that, neither.
func (s *Store) persistCredential(ctx context.Context, name, value string) error {
	err := s.kv.Set(ctx, KeyTokenName, name)
	if err == nil {
		err = s.kv.Set(ctx, KeyTokenValue, value)
	}
	if err == nil {
		return nil
	}
	if delErr := s.kv.Delete(ctx, KeyTokenName, KeyTokenValue); delErr != nil {
		s.logger.Warn("failed to roll back credential keys", zap.Error(delErr))
	}
	return fmt.Errorf("persist credential: %w", err)
}

// Restore loads the session from storage. Only well-formed keys are applied: the credential
// needs both halves and a malformed identity is skipped. Restore never fails.
func (s *Store) Restore(ctx context.Context) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	name, hasName := s.read(ctx, KeyTokenName)
	value, hasValue := s.read(ctx, KeyTokenValue)
	blob, hasInfo := s.read(ctx, KeyUserInfo)

	var identity *domain.UserVO
	if hasInfo && blob != "" {
		var u domain.UserVO
		if err := json.Unmarshal([]byte(blob), &u); err != nil {
			s.logger.Error("failed to parse stored identity", zap.Error(err))
		} else {
			identity = u.WithoutToken()
		}
	}

	s.mu.Lock()
	if hasName && hasValue && name != "" && value != "" {
		s.credentialName = name
		s.credentialValue = value
	}
	if identity != nil {
		s.identity = identity
	}
	authenticated := s.credentialName != "" && s.credentialValue != ""
	restoredIdentity := s.identity != nil
	s.mu.Unlock()

	s.logger.Debug("session restored",
		zap.Bool("authenticated", authenticated),
		zap.Bool("identity", restoredIdentity))
}

func (s *Store) read(ctx context.Context, key string) (string, bool) {
	v, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		s.logger.Warn("failed to read session key", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return v, ok
}

// Clear empties the session and removes every durable key. Both logout and a rejected
// credential end up here.
func (s *Store) Clear(ctx context.Context, reason string) error {
	s.writeMu.Lock()

	s.mu.Lock()
	s.identity = nil
	s.credentialName = ""
	s.credentialValue = ""
	s.mu.Unlock()

	err := s.kv.Delete(ctx, KeyTokenName, KeyTokenValue, KeyUserInfo)
	if err != nil {
		s.logger.Warn("failed to remove session keys", zap.Error(err))
		err = fmt.Errorf("remove session keys: %w", err)
	}
	s.writeMu.Unlock()

	s.publish(ctx, events.New(events.EventSessionCleared, events.SessionClearedPayload{Reason: reason}))
	return err
}

// RotateCredential replaces the credential value under the current name. It is a no-op
// when there is no credential, when value is empty or when value is unchanged, and
// reports whether anything changed.
func (s *Store) RotateCredential(ctx context.Context, value string) (bool, error) {
	if value == "" {
		return false, nil
	}

	s.writeMu.Lock()
	s.mu.Lock()
	if s.credentialName == "" || s.credentialValue == "" || s.credentialValue == value {
		s.mu.Unlock()
		s.writeMu.Unlock()
		return false, nil
	}
	s.credentialValue = value
	name := s.credentialName
	s.mu.Unlock()

	var err error
	if setErr := s.kv.Set(ctx, KeyTokenValue, value); setErr != nil {
		s.logger.Warn("failed to persist rotated credential", zap.Error(setErr))
		err = fmt.Errorf("persist rotated credential: %w", setErr)
	}
	s.writeMu.Unlock()

	s.publish(ctx, events.New(events.EventCredentialRotated, events.CredentialRotatedPayload{CredentialName: name}))
	return true, err
}

// CurrentCredential returns the credential pair, if any.
func (s *Store) CurrentCredential() (Credential, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.credentialName == "" || s.credentialValue == "" {
		return Credential{}, false
	}
	return Credential{Name: s.credentialName, Value: s.credentialValue}, true
}

// IsAuthenticated reports whether a full credential is held.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.credentialName != "" && s.credentialValue != ""
}

// IsAdmin reports whether the identity is an administrator.
func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isAdminLocked()
}

func (s *Store) isAdminLocked() bool {
	return s.identity != nil && s.identity.UserType.String() == s.adminUserType
}

// Identity returns a copy of the current identity, or nil.
func (s *Store) Identity() *domain.UserVO {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity.Clone()
}

// PermissionCodes returns the identity's permission codes.
func (s *Store) PermissionCodes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	return slices.Clone(s.identity.PermissionCodes)
}

// Summary returns a consistent snapshot of the session.
func (s *Store) Summary() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	authenticated := s.credentialName != "" && s.credentialValue != ""
	out := Summary{
		Authenticated: authenticated,
		Admin:         s.isAdminLocked(),
		Identity:      s.identity.Clone(),
	}
	if authenticated {
		out.CredentialName = s.credentialName
	}
	return out
}

func (s *Store) publish(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("session event handler failed", zap.String("event", string(event.Type)), zap.Error(err))
	}
}
