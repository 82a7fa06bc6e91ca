// file: internals/features/tenants/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "hostelku_backend/internals/features/tenants/controller"
)

// TenantAdminRoutes mounts tenant management + the journey view.
func TenantAdminRoutes(r fiber.Router, db *gorm.DB) {
	th := controller.NewTenantHandler(db)
	jh := controller.NewJourneyHandler(db)

	tenants := r.Group("/tenants")
	tenants.Get("/", th.List)
	tenants.Post("/", th.Create)
	tenants.Get("/:id", th.GetByID)
	tenants.Patch("/:id", th.Update)
	tenants.Post("/:id/verify", th.Verify)
	tenants.Post("/:id/block", th.Block)
	tenants.Post("/:id/transfer", th.Transfer)
	tenants.Get("/:id/journey", jh.Journey)
}
