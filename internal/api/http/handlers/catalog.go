package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/rental-console/internal/auth"
	"github.com/spec-kit/rental-console/internal/gateway"
	apperrors "github.com/spec-kit/rental-console/pkg/util/errorutil"
)

// Permission codes the console checks before offering or running an action.
const (
	PermOrderAudit      = "rental:order:audit"
	PermOrderUpdate     = "rental:order:update"
	PermCarAudit        = "resource:car:audit"
	PermCarDelete       = "resource:car:delete"
	PermCarUpload       = "resource:car:upload"
	PermNewsDelete      = "content:news:delete"
	PermNewsBatchDelete = "content:news:batch-delete"
)

// Action names as listed on pages.
const (
	ActionOrderAudit        = "order.audit"
	ActionOrderUpdate       = "order.update"
	ActionCarAudit          = "car.audit"
	ActionCarDelete         = "car.delete"
	ActionCarUploadCover    = "car.upload_cover"
	ActionNewsDelete        = "news.delete"
	ActionNewsBatchDelete   = "news.batch_delete"
	ActionPortalOrderNew    = "portal_order.create"
	ActionPortalOrderCancel = "portal_order.cancel"
	ActionPortalOrderPay    = "portal_order.pay"
)

// actionRequirements maps each action to the permission it declares.
var actionRequirements = map[string]auth.Requirement{
	ActionOrderAudit:        auth.Permission(PermOrderAudit),
	ActionOrderUpdate:       auth.Permission(PermOrderUpdate),
	ActionCarAudit:          auth.Permission(PermCarAudit),
	ActionCarDelete:         auth.Permission(PermCarDelete),
	ActionCarUploadCover:    auth.Permission(PermCarUpload),
	ActionNewsDelete:        auth.Permission(PermNewsDelete),
	ActionNewsBatchDelete:   auth.AnyPermission(PermNewsDelete, PermNewsBatchDelete),
	ActionPortalOrderNew:    {},
	ActionPortalOrderCancel: {},
	ActionPortalOrderPay:    {},
}

// ActionRequirement returns the permission an action declares. Unknown actions declare
// nothing.
func ActionRequirement(name string) auth.Requirement {
	return actionRequirements[name]
}

// pageActions lists, per route name, the actions its view may offer.
var pageActions = map[string][]string{
	"orders":          {ActionOrderAudit, ActionOrderUpdate},
	"cars":            {ActionCarAudit, ActionCarDelete, ActionCarUploadCover},
	"contentNews":     {ActionNewsDelete, ActionNewsBatchDelete},
	"portalCarDetail": {ActionPortalOrderNew},
	"portalOrders":    {ActionPortalOrderCancel, ActionPortalOrderPay},
}

// visibleActions filters a page's actions down to those src may see.
func visibleActions(route string, src auth.PermissionSource) []string {
	out := []string{}
	for _, name := range pageActions[route] {
		if auth.CanRender(ActionRequirement(name), src) {
			out = append(out, name)
		}
	}
	return out
}

// Gateways bundles the API families the console reads and writes.
type Gateways struct {
	Portal    gateway.PortalGateway
	Cars      gateway.CarGateway
	Brands    gateway.BrandGateway
	Types     gateway.TypeGateway
	Cities    gateway.CityGateway
	Orders    gateway.RentalOrderGateway
	News      gateway.NewsGateway
	Dashboard gateway.DashboardGateway
	Community gateway.CommunityGateway
	System    gateway.SystemGateway
}

func idParam(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid id", map[string]any{name: c.Params(name)})
	}
	return id, nil
}

func optionalIDQuery(c *fiber.Ctx, name string) (int64, bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false, apperrors.NewValidationError("invalid id", map[string]any{name: raw})
	}
	return id, true, nil
}

func bindQuery(c *fiber.Ctx, out any) error {
	if err := c.QueryParser(out); err != nil {
		return apperrors.NewValidationError("invalid query", map[string]any{"query": err.Error()})
	}
	return nil
}

func bindBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	return nil
}
