// file: internals/features/users/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "hostelku_backend/internals/features/users/controller"
	"hostelku_backend/internals/middlewares"
)

// AuthPublicRoutes mounts register/login/refresh with their own tighter
// rate limits.
func AuthPublicRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewAuthController(db)

	auth := r.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), h.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), h.Login)
	auth.Post("/refresh", h.Refresh)
}

// AuthUserRoutes carries the endpoints any signed-in account can hit.
func AuthUserRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewAuthController(db)

	r.Get("/me", h.Me)
}

// AuthAdminRoutes carries owner-scope account management.
func AuthAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewAuthController(db)

	r.Post("/managers", h.CreateManager)
}
