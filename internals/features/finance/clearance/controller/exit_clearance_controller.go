// file: internals/features/finance/clearance/controller/exit_clearance_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	clearanceDto "hostelku_backend/internals/features/finance/clearance/dto"
	model "hostelku_backend/internals/features/finance/clearance/model"
	clearanceService "hostelku_backend/internals/features/finance/clearance/service"
	"hostelku_backend/internals/features/finance/clearance/settlement"
	paymentService "hostelku_backend/internals/features/finance/payments/service"
	tenantModel "hostelku_backend/internals/features/tenants/model"
	helper "hostelku_backend/internals/helpers"
)

type ExitClearanceController struct {
	DB *gorm.DB
}

func NewExitClearanceController(db *gorm.DB) *ExitClearanceController {
	return &ExitClearanceController{DB: db}
}

var clearanceSortable = map[string]string{
	"created_at": "exit_clearance_created_at",
	"status":     "exit_clearance_status",
}

// =============================
// 🚪 Initiate clearance
// POST /api/a/clearances
// Dues default from outstanding charge balances, refundable from the
// security deposit; the notice date is copied off the tenant.
// =============================
func (ctl *ExitClearanceController) Initiate(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}

	var body clearanceDto.ExitClearanceInitiateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	var tenant tenantModel.Tenant
	if err := ctl.DB.
		Where("tenant_id = ? AND tenant_owner_user_id = ?", body.ExitClearanceTenantID, ownerID).
		First(&tenant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tenant not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch tenant")
	}
	if tenant.TenantStatus == tenantModel.TenantStatusCheckedOut {
		return helper.JsonError(c, fiber.StatusConflict, "Tenant is already checked out")
	}

	var existing int64
	if err := ctl.DB.Model(&model.ExitClearance{}).
		Where("exit_clearance_tenant_id = ?", tenant.TenantID).
		Count(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check existing clearance")
	}
	if existing > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Clearance already exists for this tenant")
	}

	totalDues, err := paymentService.OutstandingForTenant(ctl.DB, ownerID, tenant.TenantID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute outstanding dues")
	}
	if body.ExitClearanceTotalDues != nil {
		totalDues = *body.ExitClearanceTotalDues
	}
	totalRefundable := tenant.TenantSecurityDeposit
	if body.ExitClearanceTotalRefundable != nil {
		totalRefundable = *body.ExitClearanceTotalRefundable
	}
	if totalDues.IsNegative() || totalRefundable.IsNegative() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Dues and refundable amounts cannot be negative")
	}

	clearance := model.ExitClearance{
		ExitClearanceOwnerUserID:      ownerID,
		ExitClearanceTenantID:         tenant.TenantID,
		ExitClearancePropertyID:       tenant.TenantPropertyID,
		ExitClearanceRoomID:           tenant.TenantRoomID,
		ExitClearanceStatus:           settlement.StatusInitiated,
		ExitClearanceTotalDues:        totalDues,
		ExitClearanceTotalRefundable:  totalRefundable,
		ExitClearanceNoticeGivenDate:  tenant.TenantNoticeGivenDate,
		ExitClearanceExpectedExitDate: body.ExitClearanceExpectedExitDate,
	}
	if err := clearance.SetDeductions(nil); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to encode deductions")
	}

	if err := ctl.DB.Create(&clearance).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create clearance")
	}

	return helper.JsonCreated(c, "Clearance initiated",
		clearanceDto.ToExitClearanceResponse(clearance, &tenant.TenantJoinDate))
}

// =============================
// 📄 List clearances (owner scope)
// GET /api/a/clearances?status=&tenant_id=
// =============================
func (ctl *ExitClearanceController) List(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := ctl.DB.Model(&model.ExitClearance{}).
		Where("exit_clearance_owner_user_id = ?", ownerID)

	if status := c.Query("status"); status != "" {
		q = q.Where("exit_clearance_status = ?", status)
	}
	if raw := c.Query("tenant_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "tenant_id is not a valid UUID")
		}
		q = q.Where("exit_clearance_tenant_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count clearances")
	}

	order, _ := p.SafeOrderClause(clearanceSortable, "created_at")

	var list []model.ExitClearance
	if err := q.
		Order(strings.TrimPrefix(order, "ORDER BY ")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch clearances")
	}

	out := make([]clearanceDto.ExitClearanceResponse, 0, len(list))
	for _, m := range list {
		out = append(out, clearanceDto.ToExitClearanceResponse(m, nil))
	}

	return helper.JsonList(c, "", out, helper.BuildMeta(total, p))
}

// =============================
// 📄 Get clearance
// GET /api/a/clearances/:id
// =============================
func (ctl *ExitClearanceController) GetByID(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}

	clearance, lerr := ctl.load(c, ownerID)
	if clearance == nil {
		return lerr
	}

	return helper.JsonOK(c, "OK", ctl.toResponse(*clearance))
}

// =============================
// ☑️ Update checklist
// PATCH /api/a/clearances/:id/checklist
// =============================
func (ctl *ExitClearanceController) UpdateChecklist(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}

	var body clearanceDto.ExitClearanceChecklistDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	clearance, lerr := ctl.load(c, ownerID)
	if clearance == nil {
		return lerr
	}
	if clearance.ExitClearanceStatus == settlement.StatusCleared {
		return helper.JsonError(c, fiber.StatusConflict, "Cleared clearance is immutable")
	}

	if body.ExitClearanceRoomInspectionDone != nil {
		clearance.ExitClearanceRoomInspectionDone = *body.ExitClearanceRoomInspectionDone
	}
	if body.ExitClearanceKeyReturned != nil {
		clearance.ExitClearanceKeyReturned = *body.ExitClearanceKeyReturned
	}

	if err := ctl.DB.Save(clearance).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update checklist")
	}

	return helper.JsonUpdated(c, "Checklist updated", ctl.toResponse(*clearance))
}

// =============================
// ➕ Add deduction
// POST /api/a/clearances/:id/deductions
// Recomputes the final amount from the parts.
// =============================
func (ctl *ExitClearanceController) AddDeduction(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}

	var body clearanceDto.ExitClearanceDeductionDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	d := settlement.Deduction{Reason: body.Reason, Amount: body.Amount}
	if err := settlement.ValidateDeduction(d); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	clearance, lerr := ctl.load(c, ownerID)
	if clearance == nil {
		return lerr
	}
	if clearance.ExitClearanceStatus == settlement.StatusCleared {
		return helper.JsonError(c, fiber.StatusConflict, "Cleared clearance is immutable")
	}

	list, err := clearance.Deductions()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to decode deductions")
	}
	list = append(list, d)
	if err := clearance.SetDeductions(list); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to encode deductions")
	}

	if err := ctl.DB.Save(clearance).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save deduction")
	}

	return helper.JsonUpdated(c, "Deduction added", ctl.toResponse(*clearance))
}

// =============================
// ➖ Remove deduction by position
// DELETE /api/a/clearances/:id/deductions/:index
// =============================
func (ctl *ExitClearanceController) RemoveDeduction(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}

	idx, err := strconv.Atoi(c.Params("index"))
	if err != nil || idx < 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid deduction index")
	}

	clearance, lerr := ctl.load(c, ownerID)
	if clearance == nil {
		return lerr
	}
	if clearance.ExitClearanceStatus == settlement.StatusCleared {
		return helper.JsonError(c, fiber.StatusConflict, "Cleared clearance is immutable")
	}

	list, err := clearance.Deductions()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to decode deductions")
	}
	if idx >= len(list) {
		return helper.JsonError(c, fiber.StatusNotFound, "Deduction index out of range")
	}
	list = append(list[:idx], list[idx+1:]...)
	if err := clearance.SetDeductions(list); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to encode deductions")
	}

	if err := ctl.DB.Save(clearance).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to remove deduction")
	}

	return helper.JsonUpdated(c, "Deduction removed", ctl.toResponse(*clearance))
}

// =============================
// 💳 Mark pending payment
// PATCH /api/a/clearances/:id/pending-payment
// =============================
func (ctl *ExitClearanceController) MarkPendingPayment(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}

	clearance, lerr := ctl.load(c, ownerID)
	if clearance == nil {
		return lerr
	}

	if !settlement.CanTransition(clearance.ExitClearanceStatus, settlement.StatusPendingPayment) {
		return helper.JsonError(c, fiber.StatusConflict, "Invalid status transition")
	}

	clearance.ExitClearanceStatus = settlement.StatusPendingPayment
	if err := ctl.DB.Save(clearance).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update status")
	}

	return helper.JsonUpdated(c, "Clearance awaiting payment", ctl.toResponse(*clearance))
}

// =============================
// ✅ Complete clearance
// POST /api/a/clearances/:id/complete
// Gated on the checklist; writes clearance + tenant + stay + room atomically.
// =============================
func (ctl *ExitClearanceController) Complete(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid clearance id")
	}

	// empty body is fine, the exit date defaults to now
	var body clearanceDto.ExitClearanceCompleteDTO
	_ = c.BodyParser(&body)

	actualExit := time.Now()
	if body.ExitClearanceActualExitDate != nil {
		actualExit = *body.ExitClearanceActualExitDate
	}

	clearance, err := clearanceService.CompleteClearance(ctl.DB, ownerID, id, actualExit)
	if err != nil {
		switch {
		case errors.Is(err, clearanceService.ErrAlreadyCleared):
			return helper.JsonError(c, fiber.StatusConflict, "Clearance is already cleared")
		case errors.Is(err, clearanceService.ErrChecklistIncomplete):
			return helper.JsonError(c, fiber.StatusConflict, "Room inspection and key return must both be done")
		case errors.Is(err, gorm.ErrRecordNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Clearance not found")
		}
		var pw *clearanceService.PartialWriteError
		if errors.As(err, &pw) {
			return helper.JsonErrorWithDetail(c, fiber.StatusInternalServerError,
				"Failed to complete clearance", fiber.Map{"step": pw.Step})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to complete clearance")
	}

	return helper.JsonUpdated(c, "Clearance completed", ctl.toResponse(clearance))
}

/* =========================================================
   internals
========================================================= */

// load fetches the :id clearance under the owner scope. A nil clearance
// means the JSON error response has already been written.
func (ctl *ExitClearanceController) load(c *fiber.Ctx, ownerID uuid.UUID) (*model.ExitClearance, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid clearance id")
	}

	var clearance model.ExitClearance
	if err := ctl.DB.
		Where("exit_clearance_id = ? AND exit_clearance_owner_user_id = ?", id, ownerID).
		First(&clearance).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Clearance not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch clearance")
	}
	return &clearance, nil
}

func (ctl *ExitClearanceController) toResponse(m model.ExitClearance) clearanceDto.ExitClearanceResponse {
	var joinDate *time.Time
	var tenant tenantModel.Tenant
	if err := ctl.DB.
		Select("tenant_join_date").
		Where("tenant_id = ?", m.ExitClearanceTenantID).
		First(&tenant).Error; err == nil {
		joinDate = helper.PtrTo(tenant.TenantJoinDate)
	}
	return clearanceDto.ToExitClearanceResponse(m, joinDate)
}
