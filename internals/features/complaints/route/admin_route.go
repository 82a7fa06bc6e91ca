// file: internals/features/complaints/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "hostelku_backend/internals/features/complaints/controller"
)

func ComplaintAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewComplaintController(db)

	complaints := r.Group("/complaints")
	complaints.Get("/", h.List)
	complaints.Post("/", h.Create)
	complaints.Patch("/:id", h.Update)
	complaints.Patch("/:id/resolve", h.Resolve)
}
