// file: internals/features/properties/controller/room_controller.go
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

type RoomHandler struct {
	DB *gorm.DB
}

func NewRoomHandler(db *gorm.DB) *RoomHandler {
	return &RoomHandler{DB: db}
}

var roomSortable = map[string]string{
	"created_at": "room_created_at",
	"number":     "room_number",
	"rent":       "room_monthly_rent",
	"status":     "room_status",
	"floor":      "room_floor",
}

// -----------------------------------------
// List (GET /rooms)
// Query filters: property_id, status, floor, sharing
// -----------------------------------------
func (h *RoomHandler) List(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}
	p := helper.ParseFiber(c, "number", "asc", helper.DefaultOpts)

	q := h.DB.Model(&model.Room{}).
		Where("room_owner_user_id = ?", ownerID)

	if v := c.Query("property_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("room_property_id = ?", id)
		}
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("room_status = ?", v)
	}
	if v := c.QueryInt("floor", -1); v >= 0 {
		q = q.Where("room_floor = ?", v)
	}
	if v := c.QueryInt("sharing"); v > 0 {
		q = q.Where("room_sharing = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	order, _ := p.SafeOrderClause(roomSortable, "number")
	var list []model.Room
	if err := q.
		Order(strings.TrimPrefix(order, "ORDER BY ")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToRoomResponses(list), helper.BuildMeta(total, p))
}

// -----------------------------------------
// Create (POST /rooms)
// -----------------------------------------
func (h *RoomHandler) Create(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}

	var in dto.RoomCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	// the property must belong to the caller
	var prop model.Property
	if err := h.DB.
		Where("property_id = ? AND property_owner_user_id = ?", in.RoomPropertyID, ownerID).
		First(&prop).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "property not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	m := dto.RoomCreateDTOToModel(in, ownerID)
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		return tx.Model(&model.Property{}).
			Where("property_id = ?", prop.PropertyID).
			UpdateColumn("property_total_rooms", gorm.Expr("property_total_rooms + 1")).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "room created", dto.ToRoomResponse(m))
}

// -----------------------------------------
// Update (PATCH /rooms/:id)
// -----------------------------------------
func (h *RoomHandler) Update(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid room id")
	}

	var in dto.RoomUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	var m model.Room
	if err := h.DB.
		Where("room_id = ? AND room_owner_user_id = ?", id, ownerID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "room not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	dto.ApplyRoomUpdate(&m, in)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "room updated", dto.ToRoomResponse(m))
}

// -----------------------------------------
// SetStatus (PATCH /rooms/:id/status)
// -----------------------------------------
func (h *RoomHandler) SetStatus(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid room id")
	}

	var in dto.RoomStatusDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	res := h.DB.Model(&model.Room{}).
		Where("room_id = ? AND room_owner_user_id = ?", id, ownerID).
		Update("room_status", in.RoomStatus)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "room not found")
	}
	return helper.JsonUpdated(c, "room status updated", fiber.Map{
		"room_id":     id,
		"room_status": in.RoomStatus,
	})
}

// -----------------------------------------
// Delete (DELETE /rooms/:id) — soft delete
// -----------------------------------------
func (h *RoomHandler) Delete(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid room id")
	}

	var m model.Room
	if err := h.DB.
		Where("room_id = ? AND room_owner_user_id = ?", id, ownerID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "room not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if m.RoomStatus == model.RoomStatusOccupied {
		return helper.JsonError(c, fiber.StatusConflict, "room is occupied")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&m).Error; err != nil {
			return err
		}
		return tx.Model(&model.Property{}).
			Where("property_id = ? AND property_total_rooms > 0", m.RoomPropertyID).
			UpdateColumn("property_total_rooms", gorm.Expr("property_total_rooms - 1")).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "room deleted", fiber.Map{"room_id": id})
}
