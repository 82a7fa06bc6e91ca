// file: internals/features/finance/clearance/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "hostelku_backend/internals/features/finance/clearance/controller"
)

func ClearanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewExitClearanceController(db)

	clearances := r.Group("/clearances")
	clearances.Get("/", h.List)
	clearances.Post("/", h.Initiate)
	clearances.Get("/:id", h.GetByID)
	clearances.Patch("/:id/checklist", h.UpdateChecklist)
	clearances.Post("/:id/deductions", h.AddDeduction)
	clearances.Delete("/:id/deductions/:index", h.RemoveDeduction)
	clearances.Patch("/:id/pending-payment", h.MarkPendingPayment)
	clearances.Post("/:id/complete", h.Complete)
}
