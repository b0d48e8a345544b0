package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spec-kit/rental-console/internal/apiclient"
	"github.com/spec-kit/rental-console/internal/domain"
)

// PortalGateway is the customer-facing API: catalog metadata, car browsing, the
// customer's own orders and published news.
type PortalGateway interface {
	ListCities(ctx context.Context) ([]domain.BaseCityVO, error)
	ListBrands(ctx context.Context) ([]domain.CarBrandVO, error)
	ListTypes(ctx context.Context) ([]domain.CarTypeVO, error)

	PageCars(ctx context.Context, q domain.PortalCarQuery) (*domain.PortalPageResult[domain.CarInfoVO], error)
	GetCar(ctx context.Context, id int64) (*domain.CarInfoVO, error)

	CreateOrder(ctx context.Context, req domain.RentalOrderCreateRequest) (*domain.RentalOrderVO, error)
	PageOrders(ctx context.Context, q domain.PortalOrderQuery) (*domain.PortalPageResult[domain.RentalOrderVO], error)
	GetOrder(ctx context.Context, id int64) (*domain.RentalOrderDetailVO, error)
	CancelOrder(ctx context.Context, id int64, req domain.RentalOrderCancelRequest) (*domain.RentalOrderVO, error)
	PayOrder(ctx context.Context, id int64, req domain.RentalOrderPayRequest) (*domain.RentalOrderVO, error)

	PageNews(ctx context.Context, q domain.PortalNewsQuery) (*domain.PortalPageResult[domain.PortalNewsItem], error)
	GetNews(ctx context.Context, id int64) (*domain.PortalNewsItem, error)
}

type portalGateway struct {
	r apiclient.Requester
}

// NewPortalGateway builds the gateway.
func NewPortalGateway(r apiclient.Requester) PortalGateway {
	return &portalGateway{r: r}
}

func (g *portalGateway) ListCities(ctx context.Context) ([]domain.BaseCityVO, error) {
	return apiclient.Do[[]domain.BaseCityVO](ctx, g.r, apiclient.Request{Method: http.MethodGet, Path: "/portal/meta/cities"})
}

func (g *portalGateway) ListBrands(ctx context.Context) ([]domain.CarBrandVO, error) {
	return apiclient.Do[[]domain.CarBrandVO](ctx, g.r, apiclient.Request{Method: http.MethodGet, Path: "/portal/meta/brands"})
}

func (g *portalGateway) ListTypes(ctx context.Context) ([]domain.CarTypeVO, error) {
	return apiclient.Do[[]domain.CarTypeVO](ctx, g.r, apiclient.Request{Method: http.MethodGet, Path: "/portal/meta/types"})
}

func (g *portalGateway) PageCars(ctx context.Context, q domain.PortalCarQuery) (*domain.PortalPageResult[domain.CarInfoVO], error) {
	return apiclient.Do[*domain.PortalPageResult[domain.CarInfoVO]](ctx, g.r, apiclient.Request{
		Method: http.MethodGet,
		Path:   "/portal/cars",
		Query:  q,
	})
}

func (g *portalGateway) GetCar(ctx context.Context, id int64) (*domain.CarInfoVO, error) {
	return apiclient.Do[*domain.CarInfoVO](ctx, g.r, apiclient.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/portal/cars/%d", id),
	})
}

func (g *portalGateway) CreateOrder(ctx context.Context, req domain.RentalOrderCreateRequest) (*domain.RentalOrderVO, error) {
	return apiclient.Do[*domain.RentalOrderVO](ctx, g.r, apiclient.Request{
		Method: http.MethodPost,
		Path:   "/portal/orders",
		Body:   req,
	})
}

func (g *portalGateway) PageOrders(ctx context.Context, q domain.PortalOrderQuery) (*domain.PortalPageResult[domain.RentalOrderVO], error) {
	return apiclient.Do[*domain.PortalPageResult[domain.RentalOrderVO]](ctx, g.r, apiclient.Request{
		Method: http.MethodGet,
		Path:   "/portal/orders",
		Query:  q,
	})
}

func (g *portalGateway) GetOrder(ctx context.Context, id int64) (*domain.RentalOrderDetailVO, error) {
	return apiclient.Do[*domain.RentalOrderDetailVO](ctx, g.r, apiclient.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/portal/orders/%d", id),
	})
}

func (g *portalGateway) CancelOrder(ctx context.Context, id int64, req domain.RentalOrderCancelRequest) (*domain.RentalOrderVO, error) {
	return apiclient.Do[*domain.RentalOrderVO](ctx, g.r, apiclient.Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/portal/orders/%d/cancel", id),
		Body:   req,
	})
}

func (g *portalGateway) PayOrder(ctx context.Context, id int64, req domain.RentalOrderPayRequest) (*domain.RentalOrderVO, error) {
	return apiclient.Do[*domain.RentalOrderVO](ctx, g.r, apiclient.Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/portal/orders/%d/pay", id),
		Body:   req,
	})
}

func (g *portalGateway) PageNews(ctx context.Context, q domain.PortalNewsQuery) (*domain.PortalPageResult[domain.PortalNewsItem], error) {
	return apiclient.Do[*domain.PortalPageResult[domain.PortalNewsItem]](ctx, g.r, apiclient.Request{
		Method: http.MethodGet,
		Path:   "/portal/news",
		Query:  q,
	})
}

func (g *portalGateway) GetNews(ctx context.Context, id int64) (*domain.PortalNewsItem, error) {
	return apiclient.Do[*domain.PortalNewsItem](ctx, g.r, apiclient.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/portal/news/%d", id),
	})
}
