// file: internals/features/complaints/controller/complaint_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "hostelku_backend/internals/features/complaints/dto"
	model "hostelku_backend/internals/features/complaints/model"
	helper "hostelku_backend/internals/helpers"
)

type ComplaintController struct {
	DB *gorm.DB
}

func NewComplaintController(db *gorm.DB) *ComplaintController {
	return &ComplaintController{DB: db}
}

var complaintSortable = map[string]string{
	"raised_at":  "complaint_raised_at",
	"created_at": "complaint_created_at",
	"status":     "complaint_status",
}

// =============================
// 📄 List complaints (owner scope)
// GET /api/a/complaints?tenant_id=&property_id=&status=&category=
// =============================
func (ctl *ComplaintController) List(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}

	p := helper.ParseFiber(c, "raised_at", "desc", helper.DefaultOpts)

	q := ctl.DB.Model(&model.Complaint{}).
		Where("complaint_owner_user_id = ?", ownerID)

	if raw := c.Query("tenant_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "tenant_id is not a valid UUID")
		}
		q = q.Where("complaint_tenant_id = ?", id)
	}
	if raw := c.Query("property_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "property_id is not a valid UUID")
		}
		q = q.Where("complaint_property_id = ?", id)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("complaint_status = ?", status)
	}
	if category := c.Query("category"); category != "" {
		q = q.Where("complaint_category = ?", category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count complaints")
	}

	order, _ := p.SafeOrderClause(complaintSortable, "raised_at")

	var list []model.Complaint
	if err := q.
		Order(strings.TrimPrefix(order, "ORDER BY ")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch complaints")
	}

	return helper.JsonList(c, "", dto.ToComplaintResponses(list), helper.BuildMeta(total, p))
}

// =============================
// ➕ Raise complaint
// POST /api/a/complaints
// =============================
func (ctl *ComplaintController) Create(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}

	var body dto.ComplaintCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	complaint := dto.ComplaintCreateDTOToModel(body, ownerID)
	if err := ctl.DB.Create(&complaint).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create complaint")
	}

	return helper.JsonCreated(c, "Complaint raised", dto.ToComplaintResponse(complaint))
}

// =============================
// ✏️ Update complaint (not past resolved)
// PATCH /api/a/complaints/:id
// =============================
func (ctl *ComplaintController) Update(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid complaint id")
	}

	var body dto.ComplaintUpdateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	var complaint model.Complaint
	if err := ctl.DB.
		Where("complaint_id = ? AND complaint_owner_user_id = ?", id, ownerID).
		First(&complaint).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Complaint not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch complaint")
	}

	if complaint.ComplaintStatus == model.ComplaintStatusResolved {
		return helper.JsonError(c, fiber.StatusConflict, "Resolved complaint cannot be edited")
	}

	dto.ApplyComplaintUpdate(&complaint, body)
	if err := ctl.DB.Save(&complaint).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update complaint")
	}

	return helper.JsonUpdated(c, "Complaint updated", dto.ToComplaintResponse(complaint))
}

// =============================
// ✅ Resolve complaint
// PATCH /api/a/complaints/:id/resolve
// Stamps resolved_at; resolving twice is a conflict.
// =============================
func (ctl *ComplaintController) Resolve(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid complaint id")
	}

	var body dto.ComplaintResolveDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var complaint model.Complaint
	if err := ctl.DB.
		Where("complaint_id = ? AND complaint_owner_user_id = ?", id, ownerID).
		First(&complaint).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Complaint not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch complaint")
	}

	if complaint.ComplaintStatus == model.ComplaintStatusResolved {
		return helper.JsonError(c, fiber.StatusConflict, "Complaint is already resolved")
	}

	resolvedAt := time.Now()
	if body.ComplaintResolvedAt != nil {
		resolvedAt = *body.ComplaintResolvedAt
	}
	complaint.ComplaintStatus = model.ComplaintStatusResolved
	complaint.ComplaintResolvedAt = &resolvedAt
	complaint.ComplaintResolutionNote = body.ComplaintResolutionNote

	if err := ctl.DB.Save(&complaint).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve complaint")
	}

	return helper.JsonUpdated(c, "Complaint resolved", dto.ToComplaintResponse(complaint))
}
