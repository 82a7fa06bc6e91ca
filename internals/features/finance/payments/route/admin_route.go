// file: internals/features/finance/payments/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "hostelku_backend/internals/features/finance/payments/controller"
)

func PaymentAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewPaymentController(db)

	payments := r.Group("/payments")
	payments.Get("/", h.List)
	payments.Post("/", h.Create)
	payments.Post("/online", h.CreateOnline)
}

// PaymentPublicRoutes carries the gateway webhook, which must stay outside
// the authenticated groups.
func PaymentPublicRoutes(r fiber.Router, db *gorm.DB) {
	h := controller.NewPaymentController(db)

	payments := r.Group("/payments")
	payments.Post("/webhook", h.Webhook)
}
