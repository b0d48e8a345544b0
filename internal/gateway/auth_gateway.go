package gateway

import (
	"context"
	"net/http"

	"github.com/spec-kit/rental-console/internal/apiclient"
	"github.com/spec-kit/rental-console/internal/domain"
)

// AuthGateway covers login, registration and the current-user lookup.
type AuthGateway interface {
	Login(ctx context.Context, req domain.LoginRequest) (*domain.UserVO, error)
	Register(ctx context.Context, req domain.RegisterRequest) (int64, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*domain.UserVO, error)
}

type authGateway struct {
	r apiclient.Requester
}

// NewAuthGateway builds the gateway.
func NewAuthGateway(r apiclient.Requester) AuthGateway {
	return &authGateway{r: r}
}

func (g *authGateway) Login(ctx context.Context, req domain.LoginRequest) (*domain.UserVO, error) {
	return apiclient.Do[*domain.UserVO](ctx, g.r, apiclient.Request{
		Method: http.MethodPost,
		Path:   "/user/login",
		Body:   req,
	})
}

func (g *authGateway) Register(ctx context.Context, req domain.RegisterRequest) (int64, error) {
	id, err := apiclient.Do[domain.FlexInt](ctx, g.r, apiclient.Request{
		Method: http.MethodPost,
		Path:   "/user/register",
		Body:   req,
	})
	return int64(id), err
}

func (g *authGateway) Logout(ctx context.Context) error {
	return apiclient.Exec(ctx, g.r, apiclient.Request{
		Method: http.MethodPost,
		Path:   "/user/logout",
	})
}

func (g *authGateway) Current(ctx context.Context) (*domain.UserVO, error) {
	return apiclient.Do[*domain.UserVO](ctx, g.r, apiclient.Request{
		Method: http.MethodGet,
		Path:   "/user/current",
	})
}
