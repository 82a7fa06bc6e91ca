// file: internals/features/visitors/controller/visitor_log_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "hostelku_backend/internals/features/visitors/dto"
	model "hostelku_backend/internals/features/visitors/model"
	helper "hostelku_backend/internals/helpers"
)

type VisitorLogController struct {
	DB *gorm.DB
}

func NewVisitorLogController(db *gorm.DB) *VisitorLogController {
	return &VisitorLogController{DB: db}
}

var visitorSortable = map[string]string{
	"check_in_at": "visitor_log_check_in_at",
	"created_at":  "visitor_log_created_at",
	"name":        "visitor_log_name",
}

// =============================
// 📄 List visitor logs (owner scope)
// GET /api/a/visitors?property_id=&phone=&purpose=&open=true
// =============================
func (ctl *VisitorLogController) List(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}

	p := helper.ParseFiber(c, "check_in_at", "desc", helper.DefaultOpts)

	q := ctl.DB.Model(&model.VisitorLog{}).
		Where("visitor_log_owner_user_id = ?", ownerID)

	if raw := c.Query("property_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "property_id is not a valid UUID")
		}
		q = q.Where("visitor_log_property_id = ?", id)
	}
	if phone := c.Query("phone"); phone != "" {
		q = q.Where("visitor_log_phone = ?", phone)
	}
	if purpose := c.Query("purpose"); purpose != "" {
		q = q.Where("visitor_log_purpose = ?", purpose)
	}
	// open=true → still checked in
	if c.Query("open") == "true" {
		q = q.Where("visitor_log_check_out_at IS NULL")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count visitor logs")
	}

	order, _ := p.SafeOrderClause(visitorSortable, "check_in_at")

	var list []model.VisitorLog
	if err := q.
		Order(strings.TrimPrefix(order, "ORDER BY ")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch visitor logs")
	}

	return helper.JsonList(c, "", dto.ToVisitorLogResponses(list), helper.BuildMeta(total, p))
}

// =============================
// ➕ Check in a visitor
// POST /api/a/visitors
// =============================
func (ctl *VisitorLogController) Create(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}

	var body dto.VisitorLogCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	visit := dto.VisitorLogCreateDTOToModel(body, ownerID)
	if err := ctl.DB.Create(&visit).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create visitor log")
	}

	return helper.JsonCreated(c, "Visitor checked in", dto.ToVisitorLogResponse(visit))
}

// =============================
// 🚪 Check out a visitor
// PATCH /api/a/visitors/:id/checkout
// =============================
func (ctl *VisitorLogController) CheckOut(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid visitor log id")
	}

	var visit model.VisitorLog
	if err := ctl.DB.
		Where("visitor_log_id = ? AND visitor_log_owner_user_id = ?", id, ownerID).
		First(&visit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Visitor log not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch visitor log")
	}

	if visit.VisitorLogCheckOutAt != nil {
		return helper.JsonError(c, fiber.StatusConflict, "Visitor is already checked out")
	}

	now := time.Now()
	visit.VisitorLogCheckOutAt = &now
	if err := ctl.DB.Save(&visit).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check out visitor")
	}

	return helper.JsonUpdated(c, "Visitor checked out", dto.ToVisitorLogResponse(visit))
}
