package middleware

import "github.com/gofiber/fiber/v2"

// RequireAccountType returns a middleware that restricts a route to the given
// account type. Must run after JWTMiddleware.
func RequireAccountType(accountType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("accountType").(string)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized: account type not found!", nil)
		}

		if role != accountType {
			return JsonResponse(c, fiber.StatusForbidden, false, "This is a protected route for "+accountType+"s only!", nil)
		}

		return c.Next()
	}
}
