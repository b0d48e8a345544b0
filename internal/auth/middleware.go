package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/rental-console/pkg/util/errorutil"
)

const decisionKey = "guard_decision"

// Middleware runs the guard before a page handler and redirects when the route is not open
// to the current session.
func (g *Guard) Middleware(req RouteRequirement) fiber.Handler {
	return func(c *fiber.Ctx) error {
		decision := g.Evaluate(req)
		if decision.Outcome != Proceed {
			return c.Redirect(decision.Target, fiber.StatusFound)
		}
		c.Locals(decisionKey, decision)
		return c.Next()
	}
}

// Enforce runs the guard before an action handler. Actions are API calls, so a refusal is
// an error rather than a redirect.
func (g *Guard) Enforce(req RouteRequirement) fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch g.Evaluate(req).Outcome {
		case RedirectLogin:
			return apperrors.NewUnauthorized("login required")
		case RedirectHome:
			return apperrors.NewForbidden("administrator required")
		}
		return c.Next()
	}
}

// RequirePermission rejects the request unless an element declaring req could be
// rendered for src.
func RequirePermission(req Requirement, src PermissionSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !CanRender(req, src) {
			return apperrors.NewForbidden("missing permission")
		}
		return c.Next()
	}
}

// DecisionFromContext returns the guard decision recorded for a page request.
func DecisionFromContext(c *fiber.Ctx) (Decision, bool) {
	val := c.Locals(decisionKey)
	if val == nil {
		return Decision{}, false
	}
	decision, ok := val.(Decision)
	return decision, ok
}
