// file: internals/features/finance/billings/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "hostelku_backend/internals/features/finance/billings/controller"
)

func BillingAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewChargeHandler(db)

	charges := r.Group("/charges")
	charges.Get("/", h.List)
	charges.Post("/", h.Create)
	charges.Patch("/:id", h.Update)
	charges.Patch("/:id/status", h.MarkStatus)
}
