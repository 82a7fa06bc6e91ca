// file: internals/features/notices/controller/notice_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "hostelku_backend/internals/features/notices/dto"
	model "hostelku_backend/internals/features/notices/model"
	helper "hostelku_backend/internals/helpers"
)

type NoticeController struct {
	DB *gorm.DB
}

func NewNoticeController(db *gorm.DB) *NoticeController {
	return &NoticeController{DB: db}
}

var noticeSortable = map[string]string{
	"publish_at": "notice_publish_at",
	"created_at": "notice_created_at",
	"title":      "notice_title",
}

// =============================
// 📄 List notices (owner scope)
// GET /api/a/notices?property_id=&active=true
// =============================
func (ctl *NoticeController) List(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}

	p := helper.ParseFiber(c, "publish_at", "desc", helper.DefaultOpts)

	q := ctl.DB.Model(&model.Notice{}).
		Where("notice_owner_user_id = ?", ownerID)

	if raw := c.Query("property_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "property_id is not a valid UUID")
		}
		// property-specific plus owner-wide
		q = q.Where("(notice_property_id = ? OR notice_property_id IS NULL)", id)
	}
	if c.Query("active") == "true" {
		now := time.Now()
		q = q.Where("notice_publish_at <= ? AND (notice_expire_at IS NULL OR notice_expire_at >= ?)", now, now)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count notices")
	}

	order, _ := p.SafeOrderClause(noticeSortable, "publish_at")

	var list []model.Notice
	if err := q.
		Order(strings.TrimPrefix(order, "ORDER BY ")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notices")
	}

	return helper.JsonList(c, "", dto.ToNoticeResponses(list), helper.BuildMeta(total, p))
}

// =============================
// ➕ Publish notice
// POST /api/a/notices
// =============================
func (ctl *NoticeController) Create(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}

	var body dto.NoticeCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}
	if body.NoticeExpireAt != nil && body.NoticePublishAt != nil && body.NoticeExpireAt.Before(*body.NoticePublishAt) {
		return helper.JsonError(c, fiber.StatusBadRequest, "notice_expire_at must be after notice_publish_at")
	}

	notice := dto.NoticeCreateDTOToModel(body, ownerID)
	if err := ctl.DB.Create(&notice).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create notice")
	}

	return helper.JsonCreated(c, "Notice published", dto.ToNoticeResponse(notice))
}

// =============================
// ✏️ Update notice
// PATCH /api/a/notices/:id
// =============================
func (ctl *NoticeController) Update(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notice id")
	}

	var body dto.NoticeUpdateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	var notice model.Notice
	if err := ctl.DB.
		Where("notice_id = ? AND notice_owner_user_id = ?", id, ownerID).
		First(&notice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Notice not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notice")
	}

	dto.ApplyNoticeUpdate(&notice, body)
	if err := ctl.DB.Save(&notice).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update notice")
	}

	return helper.JsonUpdated(c, "Notice updated", dto.ToNoticeResponse(notice))
}

// =============================
// 🗑️ Delete notice (soft)
// DELETE /api/a/notices/:id
// =============================
func (ctl *NoticeController) Delete(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notice id")
	}

	res := ctl.DB.
		Where("notice_id = ? AND notice_owner_user_id = ?", id, ownerID).
		Delete(&model.Notice{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete notice")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notice not found")
	}

	return helper.JsonDeleted(c, "Notice deleted", fiber.Map{"notice_id": id})
}
