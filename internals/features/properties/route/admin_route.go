// file: internals/features/properties/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "hostelku_backend/internals/features/properties/controller"
)

// PropertyAdminRoutes mounts property + room management under the admin group.
func PropertyAdminRoutes(r fiber.Router, db *gorm.DB) {
	ph := controller.NewPropertyHandler(db)
	rh := controller.NewRoomHandler(db)

	props := r.Group("/properties")
	props.Get("/", ph.List)
	props.Post("/", ph.Create)
	props.Get("/:id", ph.GetByID)
	props.Patch("/:id", ph.Update)
	props.Delete("/:id", ph.Delete)

	rooms := r.Group("/rooms")
	rooms.Get("/", rh.List)
	rooms.Post("/", rh.Create)
	rooms.Patch("/:id", rh.Update)
	rooms.Patch("/:id/status", rh.SetStatus)
	rooms.Delete("/:id", rh.Delete)
}
