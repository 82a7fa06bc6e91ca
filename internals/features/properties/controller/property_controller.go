// file: internals/features/properties/controller/property_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostelku_backend/internals/features/properties/dto"
	model "hostelku_backend/internals/features/properties/model"
	helper "hostelku_backend/internals/helpers"
)

type PropertyHandler struct {
	DB *gorm.DB
}

func NewPropertyHandler(db *gorm.DB) *PropertyHandler {
	return &PropertyHandler{DB: db}
}

var propertySortable = map[string]string{
	"created_at": "property_created_at",
	"updated_at": "property_updated_at",
	"name":       "property_name",
	"city":       "property_city",
}

// -----------------------------------------
// List (GET /properties)
// Query filters: city, type, q (name search)
// -----------------------------------------
func (h *PropertyHandler) List(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := h.DB.Model(&model.Property{}).
		Where("property_owner_user_id = ?", ownerID)

	if v := c.Query("city"); v != "" {
		q = q.Where("LOWER(property_city) = ?", strings.ToLower(v))
	}
	if v := c.Query("type"); v != "" {
		q = q.Where("property_type = ?", v)
	}
	if v := c.Query("q"); v != "" {
		q = q.Where("property_name ILIKE ?", "%"+v+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	order, _ := p.SafeOrderClause(propertySortable, "created_at")
	var list []model.Property
	if err := q.
		Order(strings.TrimPrefix(order, "ORDER BY ")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToPropertyResponses(list), helper.BuildMeta(total, p))
}

// -----------------------------------------
// Get (GET /properties/:id)
// -----------------------------------------
func (h *PropertyHandler) GetByID(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid property id")
	}

	var m model.Property
	if err := h.DB.
		Where("property_id = ? AND property_owner_user_id = ?", id, ownerID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "property not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.ToPropertyResponse(m))
}

// -----------------------------------------
// Create (POST /properties)
// -----------------------------------------
func (h *PropertyHandler) Create(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}

	var in dto.PropertyCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	m := dto.PropertyCreateDTOToModel(in, ownerID)
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "property created", dto.ToPropertyResponse(m))
}

// -----------------------------------------
// Update (PATCH /properties/:id)
// -----------------------------------------
func (h *PropertyHandler) Update(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid property id")
	}

	var in dto.PropertyUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	var m model.Property
	if err := h.DB.
		Where("property_id = ? AND property_owner_user_id = ?", id, ownerID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "property not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	dto.ApplyPropertyUpdate(&m, in)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "property updated", dto.ToPropertyResponse(m))
}

// -----------------------------------------
// Delete (DELETE /properties/:id) — soft delete
// -----------------------------------------
func (h *PropertyHandler) Delete(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid property id")
	}

	res := h.DB.
		Where("property_id = ? AND property_owner_user_id = ?", id, ownerID).
		Delete(&model.Property{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "property not found")
	}
	return helper.JsonDeleted(c, "property deleted", fiber.Map{"property_id": id})
}
