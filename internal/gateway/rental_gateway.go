package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spec-kit/rental-console/internal/apiclient"
	"github.com/spec-kit/rental-console/internal/domain"
)

// RentalOrderGateway is the back-office view of rental orders.
type RentalOrderGateway interface {
	Page(ctx context.Context, q domain.RentalOrderQuery) (*domain.PageResult[domain.RentalOrderVO], error)
	Get(ctx context.Context, id int64) (*domain.RentalOrderDetailVO, error)
	Update(ctx context.Context, id int64, req domain.RentalOrderUpdateRequest) (*domain.RentalOrderVO, error)
	Audit(ctx context.Context, id int64, req domain.RentalOrderAuditRequest) (*domain.RentalOrderVO, error)
}

type rentalOrderGateway struct {
	r apiclient.Requester
}

// NewRentalOrderGateway builds the gateway.
func NewRentalOrderGateway(r apiclient.Requester) RentalOrderGateway {
	return &rentalOrderGateway{r: r}
}

func (g *rentalOrderGateway) Page(ctx context.Context, q domain.RentalOrderQuery) (*domain.PageResult[domain.RentalOrderVO], error) {
	return apiclient.Do[*domain.PageResult[domain.RentalOrderVO]](ctx, g.r, apiclient.Request{
		Method: http.MethodGet,
		Path:   "/rental/orders",
		Query:  q,
	})
}

func (g *rentalOrderGateway) Get(ctx context.Context, id int64) (*domain.RentalOrderDetailVO, error) {
	return apiclient.Do[*domain.RentalOrderDetailVO](ctx, g.r, apiclient.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/rental/orders/%d", id),
	})
}

func (g *rentalOrderGateway) Update(ctx context.Context, id int64, req domain.RentalOrderUpdateRequest) (*domain.RentalOrderVO, error) {
	return apiclient.Do[*domain.RentalOrderVO](ctx, g.r, apiclient.Request{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("/rental/orders/%d", id),
		Body:   req,
	})
}

func (g *rentalOrderGateway) Audit(ctx context.Context, id int64, req domain.RentalOrderAuditRequest) (*domain.RentalOrderVO, error) {
	return apiclient.Do[*domain.RentalOrderVO](ctx, g.r, apiclient.Request{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("/rental/orders/%d/audit", id),
		Body:   req,
	})
}
