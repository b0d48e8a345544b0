package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/rental-console/internal/api/http/handlers"
	"github.com/spec-kit/rental-console/internal/auth"
)

// RouteTree declares every page of the console. Admin children inherit the admin flag.
var RouteTree = []auth.RouteNode{
	{
		Path: "/",
		Children: []auth.RouteNode{
			{Path: "", Name: "portalCarsHome", Title: "Car rental"},
			{Path: "cars", Name: "portalCars", Title: "Car rental"},
			{Path: "cars/:id", Name: "portalCarDetail", Title: "Car details"},
			{Path: "news", Name: "portalNews", Title: "News"},
			{Path: "news/:id", Name: "portalNewsDetail", Title: "News details"},
			{Path: "orders", Name: "portalOrders", Title: "My orders", Meta: auth.RouteRequirement{RequiresAuth: true}},
		},
	},
	{Path: "/login", Name: "login", Title: "Sign in"},
	{Path: "/register", Name: "register", Title: "Register"},
	{
		Path:     "/admin",
		Name:     "admin",
		Redirect: "/admin/dashboard",
		Meta:     auth.RouteRequirement{RequiresAuth: true, RequiresAdmin: true},
		Children: []auth.RouteNode{
			{Path: "dashboard", Name: "dashboard", Title: "Dashboard"},
			{Path: "orders", Name: "orders", Title: "Orders"},
			{Path: "resources/cars", Name: "cars", Title: "Cars"},
			{Path: "resources/brands", Name: "brands", Title: "Brands"},
			{Path: "resources/types", Name: "types", Title: "Car types"},
			{Path: "resources/cities", Name: "cities", Title: "Cities"},
			{Path: "community", Name: "community", Title: "Community", Redirect: "/admin/community/posts"},
			{Path: "community/posts", Name: "communityPosts", Title: "Posts"},
			{Path: "community/questions", Name: "communityQuestions", Title: "Questions"},
			{Path: "content/news", Name: "contentNews", Title: "News"},
			{Path: "system/users", Name: "systemUsers", Title: "Users"},
			{Path: "system/roles", Name: "systemRoles", Title: "Roles"},
			{Path: "system/permissions", Name: "systemPermissions", Title: "Permissions"},
			{Path: "system/user-roles", Name: "systemUserRoles", Title: "User roles"},
			{Path: "system/role-permissions", Name: "systemRolePermissions", Title: "Role permissions"},
		},
	},
}

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health        *handlers.HealthHandler
	Session       *handlers.SessionHandler
	Notifications *handlers.NotificationsHandler
	Pages         *handlers.PagesHandler
	Actions       *handlers.ActionsHandler
	Guard         *auth.Guard
	Permissions   auth.PermissionSource
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Session.Login)
	authGroup.Post("/register", cfg.Session.Register)
	authGroup.Post("/logout", cfg.Session.Logout)
	authGroup.Get("/session", cfg.Session.Session)
	authGroup.Post("/refresh", cfg.Session.Refresh)

	app.Get("/notifications", cfg.Notifications.List)

	registerActions(app.Group("/actions"), cfg)

	for _, route := range auth.Flatten(RouteTree) {
		guard := cfg.Guard.Middleware(route.Meta)
		if route.Redirect != "" {
			target := route.Redirect
			app.Get(route.Path, guard, func(c *fiber.Ctx) error {
				return c.Redirect(target, fiber.StatusFound)
			})
			continue
		}
		app.Get(route.Path, guard, cfg.Pages.Render(route))
	}
}

func registerActions(group fiber.Router, cfg RouteConfig) {
	admin := auth.RouteRequirement{RequiresAuth: true, RequiresAdmin: true}
	customer := auth.RouteRequirement{RequiresAuth: true}

	gated := func(name string) fiber.Handler {
		return auth.RequirePermission(handlers.ActionRequirement(name), cfg.Permissions)
	}

	adminGroup := group.Group("/admin", cfg.Guard.Enforce(admin))
	adminGroup.Post("/orders/:id/audit", gated(handlers.ActionOrderAudit), cfg.Actions.AuditOrder)
	adminGroup.Put("/orders/:id", gated(handlers.ActionOrderUpdate), cfg.Actions.UpdateOrder)
	adminGroup.Post("/cars/cover", gated(handlers.ActionCarUploadCover), cfg.Actions.UploadCarCover)
	adminGroup.Post("/cars/:id/audit", gated(handlers.ActionCarAudit), cfg.Actions.AuditCar)
	adminGroup.Delete("/cars/:id", gated(handlers.ActionCarDelete), cfg.Actions.DeleteCar)
	adminGroup.Post("/news/batch-delete", gated(handlers.ActionNewsBatchDelete), cfg.Actions.BatchDeleteNews)
	adminGroup.Delete("/news/:id", gated(handlers.ActionNewsDelete), cfg.Actions.DeleteNews)

	portal := group.Group("/portal", cfg.Guard.Enforce(customer))
	portal.Post("/orders", gated(handlers.ActionPortalOrderNew), cfg.Actions.CreatePortalOrder)
	portal.Post("/orders/:id/cancel", gated(handlers.ActionPortalOrderCancel), cfg.Actions.CancelPortalOrder)
	portal.Post("/orders/:id/pay", gated(handlers.ActionPortalOrderPay), cfg.Actions.PayPortalOrder)
}
