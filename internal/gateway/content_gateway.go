package gateway

import (
	"context"
	"net/http"

	"github.com/spec-kit/rental-console/internal/apiclient"
	"github.com/spec-kit/rental-console/internal/domain"
)

// NewsGateway manages news articles. Its pages use the portal page shape.
type NewsGateway interface {
	Page(ctx context.Context, q domain.NewsQuery) (*domain.PortalPageResult[domain.NewsVO], error)
	Get(ctx context.Context, id int64) (*domain.NewsVO, error)
	Create(ctx context.Context, req domain.NewsCreateRequest) (*domain.NewsVO, error)
	Update(ctx context.Context, id int64, req domain.NewsUpdateRequest) (*domain.NewsVO, error)
	Delete(ctx context.Context, id int64) error
	BatchDelete(ctx context.Context, ids []int64) error
}

type newsGateway struct {
	resource[domain.NewsVO, domain.NewsQuery, domain.NewsCreateRequest, domain.NewsUpdateRequest]
}

// NewNewsGateway builds the gateway.
func NewNewsGateway(r apiclient.Requester) NewsGateway {
	return &newsGateway{newResource[domain.NewsVO, domain.NewsQuery, domain.NewsCreateRequest, domain.NewsUpdateRequest](r, "/content/news")}
}

func (g *newsGateway) Page(ctx context.Context, q domain.NewsQuery) (*domain.PortalPageResult[domain.NewsVO], error) {
	return apiclient.Do[*domain.PortalPageResult[domain.NewsVO]](ctx, g.r, apiclient.Request{
		Method: http.MethodGet,
		Path:   g.base,
		Query:  q,
	})
}

func (g *newsGateway) Get(ctx context.Context, id int64) (*domain.NewsVO, error) {
	return g.get(ctx, id)
}

func (g *newsGateway) Create(ctx context.Context, req domain.NewsCreateRequest) (*domain.NewsVO, error) {
	return g.create(ctx, req)
}

func (g *newsGateway) Update(ctx context.Context, id int64, req domain.NewsUpdateRequest) (*domain.NewsVO, error) {
	return g.update(ctx, id, req)
}

func (g *newsGateway) Delete(ctx context.Context, id int64) error {
	return g.delete(ctx, id)
}

func (g *newsGateway) BatchDelete(ctx context.Context, ids []int64) error {
	return apiclient.Exec(ctx, g.r, apiclient.Request{
		Method: http.MethodPost,
		Path:   g.base + "/batch-delete",
		Body:   domain.NewsBatchDeleteRequest{NewsIDs: ids},
	})
}

// DashboardGateway reads the admin overview.
type DashboardGateway interface {
	Overview(ctx context.Context) (*domain.DashboardStats, error)
}

type dashboardGateway struct {
	r apiclient.Requester
}

// NewDashboardGateway builds the gateway.
func NewDashboardGateway(r apiclient.Requester) DashboardGateway {
	return &dashboardGateway{r: r}
}

func (g *dashboardGateway) Overview(ctx context.Context) (*domain.DashboardStats, error) {
	return apiclient.Do[*domain.DashboardStats](ctx, g.r, apiclient.Request{
		Method: http.MethodGet,
		Path:   "/system/dashboard/overview",
	})
}
