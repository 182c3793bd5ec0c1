package paymentValidator

import (
	"strconv"
	"uplearn/middleware"

	"github.com/gofiber/fiber/v2"
)

// CourseID validates the :id route parameter for payment capture
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(c.Params("id"), 10, 64)
		if err != nil || id == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide a valid course ID!", nil)
		}
		c.Locals("courseID", uint(id))
		return c.Next()
	}
}
