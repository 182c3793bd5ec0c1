package paymentRoutes

import (
	paymentControllers "uplearn/controllers/payments"
	"uplearn/middleware"
	"uplearn/models"
	paymentValidators "uplearn/validators/payment"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App) {
	paymentGroup := app.Group("/payment")

	paymentGroup.Post("/capture/:id", middleware.JWTMiddleware, middleware.RequireAccountType(models.AccountTypeStudent),
		paymentValidators.CourseID(), paymentControllers.CapturePayment)

	// Gateway webhook; authenticated by its HMAC signature, not by JWT
	paymentGroup.Post("/webhook", paymentControllers.VerifyWebhook)
}
