// file: internals/features/reports/controller/dashboard_controller.go
package controller

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	billingModel "hostelku_backend/internals/features/finance/billings/model"
	paymentModel "hostelku_backend/internals/features/finance/payments/model"
	propertyModel "hostelku_backend/internals/features/properties/model"
	tenantModel "hostelku_backend/internals/features/tenants/model"
	helper "hostelku_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

type monthlyCollectionRow struct {
	Month     string          `json:"month"`
	Collected decimal.Decimal `json:"collected"`
	Payments  int64           `json:"payments"`
}

type occupancyRow struct {
	PropertyID   uuid.UUID `json:"property_id"`
	PropertyName string    `json:"property_name"`
	TotalRooms   int64     `json:"total_rooms"`
	Occupied     int64     `json:"occupied"`
	Available    int64     `json:"available"`
	Maintenance  int64     `json:"maintenance"`
}

// =============================
// 📊 Monthly collections
// GET /api/a/reports/collections?months=6
// Settled payments bucketed by calendar month, newest first.
// =============================
func (ctl *DashboardController) MonthlyCollections(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}

	months := 6
	if raw := c.Query("months"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 36 {
			return helper.JsonError(c, fiber.StatusBadRequest, "months must be between 1 and 36")
		}
		months = n
	}

	since := time.Now().AddDate(0, -months, 0)

	var rows []monthlyCollectionRow
	if err := ctl.DB.Model(&paymentModel.Payment{}).
		Select("to_char(payment_date, 'YYYY-MM') AS month, COALESCE(SUM(payment_amount), 0) AS collected, COUNT(*) AS payments").
		Where("payment_owner_user_id = ? AND payment_status = ? AND payment_date >= ?",
			ownerID, paymentModel.PaymentStatusSettled, since).
		Group("to_char(payment_date, 'YYYY-MM')").
		Order("month DESC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to aggregate collections")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"months":      months,
		"collections": rows,
	})
}

// =============================
// 🏠 Occupancy snapshot
// GET /api/a/reports/occupancy
// =============================
func (ctl *DashboardController) Occupancy(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}

	var rows []occupancyRow
	if err := ctl.DB.Model(&propertyModel.Room{}).
		Select(`rooms.room_property_id AS property_id,
			properties.property_name AS property_name,
			COUNT(*) AS total_rooms,
			COUNT(*) FILTER (WHERE rooms.room_status = 'occupied') AS occupied,
			COUNT(*) FILTER (WHERE rooms.room_status = 'available') AS available,
			COUNT(*) FILTER (WHERE rooms.room_status = 'maintenance') AS maintenance`).
		Joins("JOIN properties ON properties.property_id = rooms.room_property_id").
		Where("rooms.room_owner_user_id = ?", ownerID).
		Group("rooms.room_property_id, properties.property_name").
		Order("properties.property_name").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to aggregate occupancy")
	}

	var totalRooms, occupied int64
	for _, r := range rows {
		totalRooms += r.TotalRooms
		occupied += r.Occupied
	}
	rate := 0.0
	if totalRooms > 0 {
		rate = float64(occupied) / float64(totalRooms) * 100
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"properties":     rows,
		"total_rooms":    totalRooms,
		"occupied":       occupied,
		"occupancy_rate": rate,
	})
}

// =============================
// 💸 Outstanding dues
// GET /api/a/reports/outstanding
// Tenants carrying unpaid charge balances, largest first.
// =============================
func (ctl *DashboardController) OutstandingDues(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}

	type outstandingRow struct {
		TenantID       uuid.UUID       `json:"tenant_id"`
		TenantFullName string          `json:"tenant_full_name"`
		TenantPhone    string          `json:"tenant_phone"`
		Outstanding    decimal.Decimal `json:"outstanding"`
		OpenCharges    int64           `json:"open_charges"`
	}

	var rows []outstandingRow
	if err := ctl.DB.Model(&billingModel.Charge{}).
		Select(`charges.charge_tenant_id AS tenant_id,
			tenants.tenant_full_name AS tenant_full_name,
			tenants.tenant_phone AS tenant_phone,
			COALESCE(SUM(charges.charge_amount), 0) AS outstanding,
			COUNT(*) AS open_charges`).
		Joins("JOIN tenants ON tenants.tenant_id = charges.charge_tenant_id").
		Where("charges.charge_owner_user_id = ? AND charges.charge_status <> ?",
			ownerID, billingModel.ChargeStatusPaid).
		Group("charges.charge_tenant_id, tenants.tenant_full_name, tenants.tenant_phone").
		Order("outstanding DESC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to aggregate outstanding dues")
	}

	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Outstanding)
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"tenants":           rows,
		"total_outstanding": total,
	})
}

// =============================
// 📈 Summary header
// GET /api/a/reports/summary
// Headline counters for the dashboard landing card.
// =============================
func (ctl *DashboardController) Summary(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}

	var properties, rooms, activeTenants, noticePeriod int64
	if err := ctl.DB.Model(&propertyModel.Property{}).
		Where("property_owner_user_id = ?", ownerID).
		Count(&properties).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count properties")
	}
	if err := ctl.DB.Model(&propertyModel.Room{}).
		Where("room_owner_user_id = ?", ownerID).
		Count(&rooms).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count rooms")
	}
	if err := ctl.DB.Model(&tenantModel.Tenant{}).
		Where("tenant_owner_user_id = ? AND tenant_status = ?", ownerID, tenantModel.TenantStatusActive).
		Count(&activeTenants).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count tenants")
	}
	if err := ctl.DB.Model(&tenantModel.Tenant{}).
		Where("tenant_owner_user_id = ? AND tenant_status = ?", ownerID, tenantModel.TenantStatusNoticePeriod).
		Count(&noticePeriod).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count tenants")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"properties":     properties,
		"rooms":          rooms,
		"active_tenants": activeTenants,
		"notice_period":  noticePeriod,
	})
}
