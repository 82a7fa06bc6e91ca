// file: internals/features/notices/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "hostelku_backend/internals/features/notices/controller"
)

func NoticeAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewNoticeController(db)

	notices := r.Group("/notices")
	notices.Get("/", h.List)
	notices.Post("/", h.Create)
	notices.Patch("/:id", h.Update)
	notices.Delete("/:id", h.Delete)
}
