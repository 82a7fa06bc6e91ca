// file: internals/features/visitors/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "hostelku_backend/internals/features/visitors/controller"
)

func VisitorAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewVisitorLogController(db)

	visitors := r.Group("/visitors")
	visitors.Get("/", h.List)
	visitors.Post("/", h.Create)
	visitors.Patch("/:id/checkout", h.CheckOut)
}
