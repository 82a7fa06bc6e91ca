// file: internals/features/reports/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "hostelku_backend/internals/features/reports/controller"
)

func ReportAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewDashboardController(db)

	reports := r.Group("/reports")
	reports.Get("/summary", h.Summary)
	reports.Get("/collections", h.MonthlyCollections)
	reports.Get("/occupancy", h.Occupancy)
	reports.Get("/outstanding", h.OutstandingDues)
}
