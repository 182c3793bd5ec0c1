package authRoutes

import (
	authControllers "uplearn/controllers/auth"
	"uplearn/middleware"
	authValidators "uplearn/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/sendotp", authValidators.SendOTP(), authControllers.SendOTP)
	authGroup.Post("/signup", authValidators.Signup(), authControllers.Signup)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Post("/changepassword", middleware.JWTMiddleware, authValidators.ChangePassword(), authControllers.ChangePassword)
	authGroup.Post("/reset-password-token", authValidators.SendOTP(), authControllers.ResetPasswordToken)
	authGroup.Post("/reset-password", authValidators.ResetPassword(), authControllers.ResetPassword)
}
