package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spec-kit/rental-console/internal/apiclient"
	"github.com/spec-kit/rental-console/internal/domain"
)

// CarGateway manages the vehicle catalog.
type CarGateway interface {
	Page(ctx context.Context, q domain.CarInfoQuery) (*domain.PageResult[domain.CarInfoVO], error)
	Get(ctx context.Context, id int64) (*domain.CarInfoVO, error)
	Create(ctx context.Context, req domain.CarInfoCreateRequest) (*domain.CarInfoVO, error)
	Update(ctx context.Context, id int64, req domain.CarInfoUpdateRequest) (*domain.CarInfoVO, error)
	Delete(ctx context.Context, id int64) error
	Audit(ctx context.Context, id int64, req domain.CarInfoAuditRequest) (*domain.CarInfoVO, error)
	UploadCover(ctx context.Context, file Upload) (*domain.StorageFileVO, error)
}

type carGateway struct {
	resource[domain.CarInfoVO, domain.CarInfoQuery, domain.CarInfoCreateRequest, domain.CarInfoUpdateRequest]
}

// NewCarGateway builds the gateway.
func NewCarGateway(r apiclient.Requester) CarGateway {
	return &carGateway{newResource[domain.CarInfoVO, domain.CarInfoQuery, domain.CarInfoCreateRequest, domain.CarInfoUpdateRequest](r, "/resource/cars")}
}

func (g *carGateway) Page(ctx context.Context, q domain.CarInfoQuery) (*domain.PageResult[domain.CarInfoVO], error) {
	return g.page(ctx, q)
}

func (g *carGateway) Get(ctx context.Context, id int64) (*domain.CarInfoVO, error) {
	return g.get(ctx, id)
}

func (g *carGateway) Create(ctx context.Context, req domain.CarInfoCreateRequest) (*domain.CarInfoVO, error) {
	return g.create(ctx, req)
}

func (g *carGateway) Update(ctx context.Context, id int64, req domain.CarInfoUpdateRequest) (*domain.CarInfoVO, error) {
	return g.update(ctx, id, req)
}

func (g *carGateway) Delete(ctx context.Context, id int64) error {
	return g.delete(ctx, id)
}

func (g *carGateway) Audit(ctx context.Context, id int64, req domain.CarInfoAuditRequest) (*domain.CarInfoVO, error) {
	return apiclient.Do[*domain.CarInfoVO](ctx, g.r, apiclient.Request{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("%s/audit", g.item(id)),
		Body:   req,
	})
}

func (g *carGateway) UploadCover(ctx context.Context, file Upload) (*domain.StorageFileVO, error) {
	return upload(ctx, g.r, "/resource/cars/cover/upload", file)
}

// BrandGateway manages car brands.
type BrandGateway interface {
	Page(ctx context.Context, q domain.CarBrandQuery) (*domain.PageResult[domain.CarBrandVO], error)
	Get(ctx context.Context, id int64) (*domain.CarBrandVO, error)
	Create(ctx context.Context, req domain.CarBrandCreateRequest) (*domain.CarBrandVO, error)
	Update(ctx context.Context, id int64, req domain.CarBrandUpdateRequest) (*domain.CarBrandVO, error)
	Delete(ctx context.Context, id int64) error
	UploadLogo(ctx context.Context, file Upload) (*domain.StorageFileVO, error)
}

type brandGateway struct {
	resource[domain.CarBrandVO, domain.CarBrandQuery, domain.CarBrandCreateRequest, domain.CarBrandUpdateRequest]
}

// NewBrandGateway builds the gateway.
func NewBrandGateway(r apiclient.Requester) BrandGateway {
	return &brandGateway{newResource[domain.CarBrandVO, domain.CarBrandQuery, domain.CarBrandCreateRequest, domain.CarBrandUpdateRequest](r, "/resource/brands")}
}

func (g *brandGateway) Page(ctx context.Context, q domain.CarBrandQuery) (*domain.PageResult[domain.CarBrandVO], error) {
	return g.page(ctx, q)
}

func (g *brandGateway) Get(ctx context.Context, id int64) (*domain.CarBrandVO, error) {
	return g.get(ctx, id)
}

func (g *brandGateway) Create(ctx context.Context, req domain.CarBrandCreateRequest) (*domain.CarBrandVO, error) {
	return g.create(ctx, req)
}

func (g *brandGateway) Update(ctx context.Context, id int64, req domain.CarBrandUpdateRequest) (*domain.CarBrandVO, error) {
	return g.update(ctx, id, req)
}

func (g *brandGateway) Delete(ctx context.Context, id int64) error {
	return g.delete(ctx, id)
}

func (g *brandGateway) UploadLogo(ctx context.Context, file Upload) (*domain.StorageFileVO, error) {
	return upload(ctx, g.r, "/resource/brands/logo/upload", file)
}

// TypeGateway manages car types.
type TypeGateway interface {
	Page(ctx context.Context, q domain.CarTypeQuery) (*domain.PageResult[domain.CarTypeVO], error)
	Get(ctx context.Context, id int64) (*domain.CarTypeVO, error)
	Create(ctx context.Context, req domain.CarTypeCreateRequest) (*domain.CarTypeVO, error)
	Update(ctx context.Context, id int64, req domain.CarTypeUpdateRequest) (*domain.CarTypeVO, error)
	Delete(ctx context.Context, id int64) error
}

type typeGateway struct {
	resource[domain.CarTypeVO, domain.CarTypeQuery, domain.CarTypeCreateRequest, domain.CarTypeUpdateRequest]
}

// NewTypeGateway builds the gateway.
func NewTypeGateway(r apiclient.Requester) TypeGateway {
	return &typeGateway{newResource[domain.CarTypeVO, domain.CarTypeQuery, domain.CarTypeCreateRequest, domain.CarTypeUpdateRequest](r, "/resource/types")}
}

func (g *typeGateway) Page(ctx context.Context, q domain.CarTypeQuery) (*domain.PageResult[domain.CarTypeVO], error) {
	return g.page(ctx, q)
}

func (g *typeGateway) Get(ctx context.Context, id int64) (*domain.CarTypeVO, error) {
	return g.get(ctx, id)
}

func (g *typeGateway) Create(ctx context.Context, req domain.CarTypeCreateRequest) (*domain.CarTypeVO, error) {
	return g.create(ctx, req)
}

func (g *typeGateway) Update(ctx context.Context, id int64, req domain.CarTypeUpdateRequest) (*domain.CarTypeVO, error) {
	return g.update(ctx, id, req)
}

func (g *typeGateway) Delete(ctx context.Context, id int64) error {
	return g.delete(ctx, id)
}

// CityGateway manages the cities cars are offered in.
type CityGateway interface {
	Page(ctx context.Context, q domain.CityQuery) (*domain.PageResult[domain.BaseCityVO], error)
	Get(ctx context.Context, id int64) (*domain.BaseCityVO, error)
	Create(ctx context.Context, req domain.CityCreateRequest) (*domain.BaseCityVO, error)
	Update(ctx context.Context, id int64, req domain.CityUpdateRequest) (*domain.BaseCityVO, error)
	Delete(ctx context.Context, id int64) error
}

type cityGateway struct {
	resource[domain.BaseCityVO, domain.CityQuery, domain.CityCreateRequest, domain.CityUpdateRequest]
}

// NewCityGateway builds the gateway.
func NewCityGateway(r apiclient.Requester) CityGateway {
	return &cityGateway{newResource[domain.BaseCityVO, domain.CityQuery, domain.CityCreateRequest, domain.CityUpdateRequest](r, "/resource/cities")}
}

func (g *cityGateway) Page(ctx context.Context, q domain.CityQuery) (*domain.PageResult[domain.BaseCityVO], error) {
	return g.page(ctx, q)
}

func (g *cityGateway) Get(ctx context.Context, id int64) (*domain.BaseCityVO, error) {
	return g.get(ctx, id)
}

func (g *cityGateway) Create(ctx context.Context, req domain.CityCreateRequest) (*domain.BaseCityVO, error) {
	return g.create(ctx, req)
}

func (g *cityGateway) Update(ctx context.Context, id int64, req domain.CityUpdateRequest) (*domain.BaseCityVO, error) {
	return g.update(ctx, id, req)
}

func (g *cityGateway) Delete(ctx context.Context, id int64) error {
	return g.delete(ctx, id)
}
