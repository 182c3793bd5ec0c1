package profileValidator

import (
	"strings"
	"uplearn/middleware"

	"github.com/gofiber/fiber/v2"
)

// UpdateProfile validator middleware
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Gender        string `json:"gender"`
			DateOfBirth   string `json:"dateOfBirth"`
			About         string `json:"about"`
			ContactNumber string `json:"contactNumber"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.ContactNumber) == "" {
			errors["contactNumber"] = "Contact number is required!"
		}
		if strings.TrimSpace(reqData.Gender) == "" {
			errors["gender"] = "Gender is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}
