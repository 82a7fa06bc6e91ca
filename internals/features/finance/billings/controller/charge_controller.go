// file: internals/features/finance/billings/controller/charge_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostelku_backend/internals/features/finance/billings/dto"
	model "hostelku_backend/internals/features/finance/billings/model"
	helper "hostelku_backend/internals/helpers"
)

type ChargeHandler struct {
	DB *gorm.DB
}

func NewChargeHandler(db *gorm.DB) *ChargeHandler {
	return &ChargeHandler{DB: db}
}

var chargeSortable = map[string]string{
	"created_at": "charge_created_at",
	"due_date":   "charge_due_date",
	"amount":     "charge_amount",
	"status":     "charge_status",
	"paid_at":    "charge_paid_at",
}

// -----------------------------------------
// List (GET /charges)
// Query filters: tenant_id, property_id, status, type,
// due_from, due_to (RFC3339), outstanding=true
// -----------------------------------------
func (h *ChargeHandler) List(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}
	p := helper.ParseFiber(c, "due_date", "desc", helper.DefaultOpts)

	q := h.DB.Model(&model.Charge{}).
		Where("charge_owner_user_id = ?", ownerID)

	if v := c.Query("tenant_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("charge_tenant_id = ?", id)
		}
	}
	if v := c.Query("property_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("charge_property_id = ?", id)
		}
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("charge_status = ?", v)
	}
	if v := c.Query("type"); v != "" {
		q = q.Where("LOWER(charge_type) = ?", strings.ToLower(v))
	}
	if v := c.Query("due_from"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			q = q.Where("charge_due_date >= ?", t)
		}
	}
	if v := c.Query("due_to"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			q = q.Where("charge_due_date <= ?", t)
		}
	}
	if strings.EqualFold(c.Query("outstanding"), "true") {
		q = q.Where("charge_status <> ?", model.ChargeStatusPaid)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	order, _ := p.SafeOrderClause(chargeSortable, "due_date")
	var list []model.Charge
	if err := q.
		Order(strings.TrimPrefix(order, "ORDER BY ")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToChargeResponses(list), helper.BuildMeta(total, p))
}

// -----------------------------------------
// Create (POST /charges)
// -----------------------------------------
func (h *ChargeHandler) Create(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}

	var in dto.ChargeCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}
	if in.ChargeAmount.IsNegative() {
		return helper.JsonValidationError(c, map[string][]string{
			"charge_amount": {"must not be negative"},
		})
	}

	m := dto.ChargeCreateDTOToModel(in, ownerID)
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "charge created", dto.ToChargeResponse(m))
}

// -----------------------------------------
// Update (PATCH /charges/:id) — amount and status are untouchable here
// -----------------------------------------
func (h *ChargeHandler) Update(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid charge id")
	}

	var in dto.ChargeUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	var m model.Charge
	if err := h.DB.
		Where("charge_id = ? AND charge_owner_user_id = ?", id, ownerID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "charge not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if m.ChargeStatus == model.ChargeStatusPaid {
		return helper.JsonError(c, fiber.StatusConflict, "paid charge is immutable")
	}

	dto.ApplyChargeUpdate(&m, in)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "charge updated", dto.ToChargeResponse(m))
}

// -----------------------------------------
// MarkStatus (PATCH /charges/:id/status)
// Forward-only; paid stamps paid_at.
// -----------------------------------------
func (h *ChargeHandler) MarkStatus(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid charge id")
	}

	var in dto.ChargeMarkStatusDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	var m model.Charge
	if err := h.DB.
		Where("charge_id = ? AND charge_owner_user_id = ?", id, ownerID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "charge not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	to := model.ChargeStatus(in.ChargeStatus)
	if !m.ChargeStatus.CanTransition(to) {
		return helper.JsonError(c, fiber.StatusConflict,
			"invalid status transition "+string(m.ChargeStatus)+" -> "+string(to))
	}

	updates := map[string]any{"charge_status": to}
	if to == model.ChargeStatusPaid {
		paidAt := time.Now()
		if in.PaidAt != nil {
			paidAt = *in.PaidAt
		}
		updates["charge_paid_at"] = paidAt
	}
	if err := h.DB.Model(&m).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "charge status updated", dto.ToChargeResponse(m))
}
