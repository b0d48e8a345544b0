package handlers

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/rental-console/internal/auth"
	"github.com/spec-kit/rental-console/internal/persistence"
	"github.com/spec-kit/rental-console/internal/service"
	"github.com/spec-kit/rental-console/internal/session"
)

func TestRenderRequiresGuard(t *testing.T) {
	store := session.NewStore(context.Background(), persistence.NewMemoryStore())
	authService := service.NewAuthService(service.AuthDependencies{Session: store})
	pages := NewPagesHandler(Gateways{}, authService, store, "")
	route := auth.Route{Path: "/login", Name: "login", Title: "Sign in"}

	app := fiber.New()
	app.Get("/guarded", auth.NewGuard(store, "", "").Middleware(route.Meta), pages.Render(route))
	app.Get("/unguarded", pages.Render(route))

	cases := []struct {
		path   string
		status int
	}{
		{path: "/guarded", status: fiber.StatusOK},
		{path: "/unguarded", status: fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, tc.path, nil), -1)
		if err != nil {
			t.Fatalf("%s: %v", tc.path, err)
		}
		if resp.StatusCode != tc.status {
			t.Fatalf("%s: status = %d, want %d", tc.path, resp.StatusCode, tc.status)
		}
	}
}
