// file: internals/route/index.go
package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostelku_backend/internals/configs"
	"hostelku_backend/internals/constants"
	complaintRoute "hostelku_backend/internals/features/complaints/route"
	billingRoute "hostelku_backend/internals/features/finance/billings/route"
	clearanceRoute "hostelku_backend/internals/features/finance/clearance/route"
	paymentRoute "hostelku_backend/internals/features/finance/payments/route"
	noticeRoute "hostelku_backend/internals/features/notices/route"
	propertyRoute "hostelku_backend/internals/features/properties/route"
	reportRoute "hostelku_backend/internals/features/reports/route"
	tenantRoute "hostelku_backend/internals/features/tenants/route"
	userRoute "hostelku_backend/internals/features/users/route"
	visitorRoute "hostelku_backend/internals/features/visitors/route"
	"hostelku_backend/internals/middlewares/auth"
)

// SetupRoutes wires the three surface groups:
//
//	/api/public — no token (auth, gateway webhook)
//	/api/u      — any signed-in account
//	/api/a      — owner/manager management surface, owner-scoped
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	userRoute.AuthPublicRoutes(public, db)
	paymentRoute.PaymentPublicRoutes(public, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u",
		auth.AuthJWT(auth.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)
	userRoute.AuthUserRoutes(private, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		auth.AuthJWT(auth.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		auth.RequireRoles(constants.RoleOwner, constants.RoleManager),
	)
	userRoute.AuthAdminRoutes(admin, db)
	propertyRoute.PropertyAdminRoutes(admin, db)
	tenantRoute.TenantAdminRoutes(admin, db)
	billingRoute.BillingAdminRoutes(admin, db)
	paymentRoute.PaymentAdminRoutes(admin, db)
	complaintRoute.ComplaintAdminRoutes(admin, db)
	visitorRoute.VisitorAdminRoutes(admin, db)
	noticeRoute.NoticeAdminRoutes(admin, db)
	clearanceRoute.ClearanceAdminRoutes(admin, db)
	reportRoute.ReportAdminRoutes(admin, db)
}
