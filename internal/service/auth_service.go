package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/rental-console/internal/auth"
	"github.com/spec-kit/rental-console/internal/domain"
	"github.com/spec-kit/rental-console/internal/gateway"
	"github.com/spec-kit/rental-console/internal/session"
	apperrors "github.com/spec-kit/rental-console/pkg/util/errorutil"
)

// SessionStore is the part of the session the auth flows drive.
type SessionStore interface {
	SetIdentity(ctx context.Context, user *domain.UserVO) error
	Clear(ctx context.Context, reason string) error
	CurrentCredential() (session.Credential, bool)
	Summary() session.Summary
}

// SessionState is the session summary plus what the credential says about itself.
type SessionState struct {
	session.Summary
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// AuthService coordinates login, registration, logout and identity refresh.
type AuthService struct {
	gateway gateway.AuthGateway
	session SessionStore
	logger  *zap.Logger
}

// AuthDependencies bundles what the auth service needs.
type AuthDependencies struct {
	Gateway gateway.AuthGateway
	Session SessionStore
	Logger  *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(deps AuthDependencies) *AuthService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		gateway: deps.Gateway,
		session: deps.Session,
		logger:  logger,
	}
}

// Login authenticates against the API and establishes the session from the response.
// A storage failure does not fail the login: the session lives in memory regardless.
func (s *AuthService) Login(ctx context.Context, account, password string) (*domain.UserVO, error) {
	account = strings.TrimSpace(account)
	if account == "" || password == "" {
		return nil, apperrors.NewValidationError("account and password are required", nil)
	}

	user, err := s.gateway.Login(ctx, domain.LoginRequest{UserAccount: account, UserPassword: password})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NewInvalidResponse(nil)
	}
	if !user.Token.Complete() {
		s.logger.Warn("login response carried no credential", zap.String("account", account))
	}
	if err := s.session.SetIdentity(ctx, user); err != nil {
		s.logger.Warn("session established but not fully persisted", zap.Error(err))
	}
	return user.WithoutToken(), nil
}

// Register creates an account. It does not log the new account in.
func (s *AuthService) Register(ctx context.Context, req domain.RegisterRequest) (int64, error) {
	req.UserAccount = strings.TrimSpace(req.UserAccount)
	details := map[string]any{}
	if req.UserAccount == "" {
		details["userAccount"] = "required"
	}
	if req.UserPassword == "" {
		details["userPassword"] = "required"
	}
	if req.CheckPassword != req.UserPassword {
		details["checkPassword"] = "does not match"
	}
	if len(details) > 0 {
		return 0, apperrors.NewValidationError("invalid registration", details)
	}
	return s.gateway.Register(ctx, req)
}

// Logout tells the API the session is over, then clears it locally whatever the API said.
func (s *AuthService) Logout(ctx context.Context) error {
	if _, ok := s.session.CurrentCredential(); ok {
		if err := s.gateway.Logout(ctx); err != nil {
			s.logger.Warn("server logout failed", zap.Error(err))
		}
		// a 401 from the logout call has already cleared the session
		if _, ok := s.session.CurrentCredential(); !ok {
			return nil
		}
	}
	return s.session.Clear(ctx, session.ReasonLogout)
}

// Refresh re-reads the current user and replaces the stored identity. The credential is
// kept unless the response carries a new one.
func (s *AuthService) Refresh(ctx context.Context) (*domain.UserVO, error) {
	if _, ok := s.session.CurrentCredential(); !ok {
		return nil, apperrors.NewUnauthorized("login required")
	}
	user, err := s.gateway.Current(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NewInvalidResponse(nil)
	}
	if err := s.session.SetIdentity(ctx, user); err != nil {
		s.logger.Warn("refreshed identity not fully persisted", zap.Error(err))
	}
	return user.WithoutToken(), nil
}

// State returns the session summary.
func (s *AuthService) State() SessionState {
	state := SessionState{Summary: s.session.Summary()}
	if cred, ok := s.session.CurrentCredential(); ok {
		if exp, ok := auth.CredentialExpiry(cred.Value); ok {
			state.ExpiresAt = &exp
		}
	}
	return state
}
