package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/rental-console/internal/api/dto"
	"github.com/spec-kit/rental-console/internal/auth"
	"github.com/spec-kit/rental-console/internal/domain"
	"github.com/spec-kit/rental-console/internal/gateway"
	"github.com/spec-kit/rental-console/internal/service"
	apperrors "github.com/spec-kit/rental-console/pkg/util/errorutil"
)

// PageLoader fetches what a page shows.
type PageLoader func(c *fiber.Ctx) (any, error)

// PagesHandler renders the console's page routes. Pages are only served behind the route
// guard middleware.
type PagesHandler struct {
	gw       Gateways
	auth     *service.AuthService
	perms    auth.PermissionSource
	fileBase string
	loaders  map[string]PageLoader
}

// NewPagesHandler constructs handler.
func NewPagesHandler(gw Gateways, authService *service.AuthService, perms auth.PermissionSource, fileBase string) *PagesHandler {
	h := &PagesHandler{gw: gw, auth: authService, perms: perms, fileBase: fileBase}
	h.loaders = map[string]PageLoader{
		"portalCarsHome":        h.portalCars,
		"portalCars":            h.portalCars,
		"portalCarDetail":       h.portalCarDetail,
		"portalNews":            h.portalNews,
		"portalNewsDetail":      h.portalNewsDetail,
		"portalOrders":          h.portalOrders,
		"dashboard":             h.dashboard,
		"orders":                h.orders,
		"cars":                  h.cars,
		"brands":                h.brands,
		"types":                 h.types,
		"cities":                h.cities,
		"communityPosts":        h.communityPosts,
		"communityQuestions":    h.communityQuestions,
		"contentNews":           h.contentNews,
		"systemUsers":           h.systemUsers,
		"systemRoles":           h.systemRoles,
		"systemPermissions":     h.systemPermissions,
		"systemUserRoles":       h.systemUserRoles,
		"systemRolePermissions": h.systemRolePermissions,
	}
	return h
}

// Render serves one route. Routes without a loader render the session and actions only.
func (h *PagesHandler) Render(route auth.Route) fiber.Handler {
	load := h.loaders[route.Name]
	return func(c *fiber.Ctx) error {
		if _, ok := auth.DecisionFromContext(c); !ok {
			return apperrors.NewInternalError(fmt.Errorf("page %s served without route guard", route.Name))
		}
		var data any
		if load != nil {
			loaded, err := load(c)
			if err != nil {
				return err
			}
			data = loaded
		}
		return c.JSON(fiber.Map{"data": dto.PageView{
			Route:   route.Name,
			Path:    route.Path,
			Title:   route.Title,
			Session: h.auth.State(),
			Actions: visibleActions(route.Name, h.perms),
			Data:    data,
		}})
	}
}

func (h *PagesHandler) portalCars(c *fiber.Ctx) (any, error) {
	var q domain.PortalCarQuery
	if err := bindQuery(c, &q); err != nil {
		return nil, err
	}
	page, err := h.gw.Portal.PageCars(c.UserContext(), q)
	if err != nil || page == nil {
		return page, err
	}
	for i := range page.Records {
		h.resolveCar(&page.Records[i])
	}
	cities, err := h.gw.Portal.ListCities(c.UserContext())
	if err != nil {
		return nil, err
	}
	brands, err := h.gw.Portal.ListBrands(c.UserContext())
	if err != nil {
		return nil, err
	}
	types, err := h.gw.Portal.ListTypes(c.UserContext())
	if err != nil {
		return nil, err
	}
	for i := range brands {
		brands[i].LogoURL = gateway.ResolveFileURL(brands[i].LogoURL, h.fileBase)
	}
	return fiber.Map{
		"cars":      page,
		"page_size": page.EffectivePageSize(),
		"cities":    cities,
		"brands":    brands,
		"types":     types,
	}, nil
}

func (h *PagesHandler) portalCarDetail(c *fiber.Ctx) (any, error) {
	id, err := idParam(c, "id")
	if err != nil {
		return nil, err
	}
	car, err := h.gw.Portal.GetCar(c.UserContext(), id)
	if err != nil {
		return nil, err
	}
	h.resolveCar(car)
	return car, nil
}

func (h *PagesHandler) portalNews(c *fiber.Ctx) (any, error) {
	var q domain.PortalNewsQuery
	if err := bindQuery(c, &q); err != nil {
		return nil, err
	}
	page, err := h.gw.Portal.PageNews(c.UserContext(), q)
	if err != nil || page == nil {
		return page, err
	}
	for i := range page.Records {
		page.Records[i].CoverImage = gateway.ResolveFileURL(page.Records[i].CoverImage, h.fileBase)
	}
	return page, nil
}

func (h *PagesHandler) portalNewsDetail(c *fiber.Ctx) (any, error) {
	id, err := idParam(c, "id")
	if err != nil {
		return nil, err
	}
	item, err := h.gw.Portal.GetNews(c.UserContext(), id)
	if err != nil || item == nil {
		return item, err
	}
	item.CoverImage = gateway.ResolveFileURL(item.CoverImage, h.fileBase)
	return item, nil
}

func (h *PagesHandler) portalOrders(c *fiber.Ctx) (any, error) {
	var q domain.PortalOrderQuery
	if err := bindQuery(c, &q); err != nil {
		return nil, err
	}
	return h.gw.Portal.PageOrders(c.UserContext(), q)
}

func (h *PagesHandler) dashboard(c *fiber.Ctx) (any, error) {
	return h.gw.Dashboard.Overview(c.UserContext())
}

func (h *PagesHandler) orders(c *fiber.Ctx) (any, error) {
	if id, ok, err := optionalIDQuery(c, "orderId"); err != nil || ok {
		if err != nil {
			return nil, err
		}
		return h.gw.Orders.Get(c.UserContext(), id)
	}
	var q domain.RentalOrderQuery
	if err := bindQuery(c, &q); err != nil {
		return nil, err
	}
	return h.gw.Orders.Page(c.UserContext(), q)
}

func (h *PagesHandler) cars(c *fiber.Ctx) (any, error) {
	var q domain.CarInfoQuery
	if err := bindQuery(c, &q); err != nil {
		return nil, err
	}
	page, err := h.gw.Cars.Page(c.UserContext(), q)
	if err != nil || page == nil {
		return page, err
	}
	for i := range page.Records {
		h.resolveCar(&page.Records[i])
	}
	return page, nil
}

func (h *PagesHandler) brands(c *fiber.Ctx) (any, error) {
	var q domain.CarBrandQuery
	if err := bindQuery(c, &q); err != nil {
		return nil, err
	}
	page, err := h.gw.Brands.Page(c.UserContext(), q)
	if err != nil || page == nil {
		return page, err
	}
	for i := range page.Records {
		page.Records[i].LogoURL = gateway.ResolveFileURL(page.Records[i].LogoURL, h.fileBase)
	}
	return page, nil
}

func (h *PagesHandler) types(c *fiber.Ctx) (any, error) {
	var q domain.CarTypeQuery
	if err := bindQuery(c, &q); err != nil {
		return nil, err
	}
	return h.gw.Types.Page(c.UserContext(), q)
}

func (h *PagesHandler) cities(c *fiber.Ctx) (any, error) {
	var q domain.CityQuery
	if err := bindQuery(c, &q); err != nil {
		return nil, err
	}
	return h.gw.Cities.Page(c.UserContext(), q)
}

func (h *PagesHandler) communityPosts(c *fiber.Ctx) (any, error) {
	var q domain.CommunityQuery
	if err := bindQuery(c, &q); err != nil {
		return nil, err
	}
	return h.gw.Community.PagePosts(c.UserContext(), q)
}

func (h *PagesHandler) communityQuestions(c *fiber.Ctx) (any, error) {
	if id, ok, err := optionalIDQuery(c, "questionId"); err != nil || ok {
		if err != nil {
			return nil, err
		}
		question, err := h.gw.Community.GetQuestion(c.UserContext(), id)
		if err != nil {
			return nil, err
		}
		answers, err := h.gw.Community.ListAnswers(c.UserContext(), id)
		if err != nil {
			return nil, err
		}
		return fiber.Map{"question": question, "answers": answers}, nil
	}
	var q domain.CommunityQuery
	if err := bindQuery(c, &q); err != nil {
		return nil, err
	}
	return h.gw.Community.PageQuestions(c.UserContext(), q)
}

func (h *PagesHandler) contentNews(c *fiber.Ctx) (any, error) {
	var q domain.NewsQuery
	if err := bindQuery(c, &q); err != nil {
		return nil, err
	}
	page, err := h.gw.News.Page(c.UserContext(), q)
	if err != nil || page == nil {
		return page, err
	}
	for i := range page.Records {
		page.Records[i].CoverImage = gateway.ResolveFileURL(page.Records[i].CoverImage, h.fileBase)
	}
	return page, nil
}

func (h *PagesHandler) systemUsers(c *fiber.Ctx) (any, error) {
	var q domain.SystemUserQuery
	if err := bindQuery(c, &q); err != nil {
		return nil, err
	}
	return h.gw.System.PageUsers(c.UserContext(), q)
}

func (h *PagesHandler) systemRoles(c *fiber.Ctx) (any, error) {
	var q domain.RoleQuery
	if err := bindQuery(c, &q); err != nil {
		return nil, err
	}
	return h.gw.System.PageRoles(c.UserContext(), q)
}

func (h *PagesHandler) systemPermissions(c *fiber.Ctx) (any, error) {
	return h.gw.System.ListPermissions(c.UserContext())
}

func (h *PagesHandler) systemUserRoles(c *fiber.Ctx) (any, error) {
	var q domain.SystemUserQuery
	if err := bindQuery(c, &q); err != nil {
		return nil, err
	}
	users, err := h.gw.System.PageUsers(c.UserContext(), q)
	if err != nil {
		return nil, err
	}
	out := fiber.Map{"users": users}
	if id, ok, err := optionalIDQuery(c, "userId"); err != nil {
		return nil, err
	} else if ok {
		roles, err := h.gw.System.UserRoles(c.UserContext(), id)
		if err != nil {
			return nil, err
		}
		out["user_roles"] = roles
	}
	return out, nil
}

func (h *PagesHandler) systemRolePermissions(c *fiber.Ctx) (any, error) {
	var q domain.RoleQuery
	if err := bindQuery(c, &q); err != nil {
		return nil, err
	}
	roles, err := h.gw.System.PageRoles(c.UserContext(), q)
	if err != nil {
		return nil, err
	}
	out := fiber.Map{"roles": roles}
	if id, ok, err := optionalIDQuery(c, "roleId"); err != nil {
		return nil, err
	} else if ok {
		perms, err := h.gw.System.RolePermissions(c.UserContext(), id)
		if err != nil {
			return nil, err
		}
		out["role_permissions"] = perms
	}
	return out, nil
}

func (h *PagesHandler) resolveCar(car *domain.CarInfoVO) {
	if car != nil {
		car.CoverImage = gateway.ResolveFileURL(car.CoverImage, h.fileBase)
	}
}
