// file: internals/features/tenants/controller/tenant_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	propertyModel "hostelku_backend/internals/features/properties/model"
	"hostelku_backend/internals/features/tenants/dto"
	model "hostelku_backend/internals/features/tenants/model"
	helper "hostelku_backend/internals/helpers"
)

type TenantHandler struct {
	DB *gorm.DB
}

func NewTenantHandler(db *gorm.DB) *TenantHandler {
	return &TenantHandler{DB: db}
}

var tenantSortable = map[string]string{
	"created_at": "tenant_created_at",
	"join_date":  "tenant_join_date",
	"name":       "tenant_full_name",
	"status":     "tenant_status",
	"rent":       "tenant_monthly_rent",
}

// -----------------------------------------
// List (GET /tenants)
// Query filters: property_id, room_id, status, phone, q (name search)
// -----------------------------------------
func (h *TenantHandler) List(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := h.DB.Model(&model.Tenant{}).
		Where("tenant_owner_user_id = ?", ownerID)

	if v := c.Query("property_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("tenant_property_id = ?", id)
		}
	}
	if v := c.Query("room_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("tenant_room_id = ?", id)
		}
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("tenant_status = ?", v)
	}
	if v := c.Query("phone"); v != "" {
		q = q.Where("tenant_phone = ?", v)
	}
	if v := c.Query("q"); v != "" {
		q = q.Where("tenant_full_name ILIKE ?", "%"+v+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	order, _ := p.SafeOrderClause(tenantSortable, "created_at")
	var list []model.Tenant
	if err := q.
		Order(strings.TrimPrefix(order, "ORDER BY ")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToTenantResponses(list), helper.BuildMeta(total, p))
}

// -----------------------------------------
// Get (GET /tenants/:id) — tenant + stay history
// -----------------------------------------
func (h *TenantHandler) GetByID(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid tenant id")
	}

	var m model.Tenant
	if err := h.DB.
		Where("tenant_id = ? AND tenant_owner_user_id = ?", id, ownerID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "tenant not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var stays []model.TenantStay
	if err := h.DB.
		Where("tenant_stay_tenant_id = ?", m.TenantID).
		Order("tenant_stay_number ASC").
		Find(&stays).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// flatten the active-stay join to a single object
	var active []model.TenantStay
	for _, st := range stays {
		if st.TenantStayStatus == model.StayStatusActive {
			active = append(active, st)
		}
	}
	var currentStay *dto.TenantStayResponse
	if st := helper.FirstOrNil(active); st != nil {
		currentStay = helper.PtrTo(dto.ToTenantStayResponse(*st))
	}

	return helper.JsonOK(c, "", fiber.Map{
		"tenant":       dto.ToTenantResponse(m),
		"stays":        dto.ToTenantStayResponses(stays),
		"current_stay": currentStay,
	})
}

// -----------------------------------------
// Create (POST /tenants)
// Opens stay #1 and marks the room occupied, in one transaction.
// -----------------------------------------
func (h *TenantHandler) Create(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}

	var in dto.TenantCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	var room propertyModel.Room
	if err := h.DB.
		Where("room_id = ? AND room_owner_user_id = ?", in.TenantRoomID, ownerID).
		First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "room not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if room.RoomStatus != propertyModel.RoomStatusAvailable {
		return helper.JsonError(c, fiber.StatusConflict, "room is not available")
	}

	m := dto.TenantCreateDTOToModel(in, ownerID)
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		stay := model.TenantStay{
			TenantStayTenantID:    m.TenantID,
			TenantStayOwnerUserID: ownerID,
			TenantStayPropertyID:  m.TenantPropertyID,
			TenantStayRoomID:      in.TenantRoomID,
			TenantStayNumber:      1,
			TenantStayJoinDate:    m.TenantJoinDate,
			TenantStayMonthlyRent: m.TenantMonthlyRent,
			TenantStayStatus:      model.StayStatusActive,
		}
		if err := tx.Create(&stay).Error; err != nil {
			return err
		}
		return tx.Model(&propertyModel.Room{}).
			Where("room_id = ?", room.RoomID).
			Update("room_status", propertyModel.RoomStatusOccupied).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "tenant created", dto.ToTenantResponse(m))
}

// -----------------------------------------
// Update (PATCH /tenants/:id)
// -----------------------------------------
func (h *TenantHandler) Update(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid tenant id")
	}

	var in dto.TenantUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	var m model.Tenant
	if err := h.DB.
		Where("tenant_id = ? AND tenant_owner_user_id = ?", id, ownerID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "tenant not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if m.TenantStatus == model.TenantStatusCheckedOut {
		return helper.JsonError(c, fiber.StatusConflict, "tenant already checked out")
	}

	dto.ApplyTenantUpdate(&m, in)
	// giving notice moves the lifecycle forward
	if in.TenantNoticeGiven != nil && m.TenantStatus == model.TenantStatusActive {
		m.TenantStatus = model.TenantStatusNoticePeriod
	}
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "tenant updated", dto.ToTenantResponse(m))
}

// -----------------------------------------
// Verify (POST /tenants/:id/verify)
// -----------------------------------------
func (h *TenantHandler) Verify(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid tenant id")
	}

	now := time.Now()
	res := h.DB.Model(&model.Tenant{}).
		Where("tenant_id = ? AND tenant_owner_user_id = ? AND tenant_verified_at IS NULL", id, ownerID).
		Update("tenant_verified_at", now)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusConflict, "tenant not found or already verified")
	}
	return helper.JsonUpdated(c, "tenant verified", fiber.Map{
		"tenant_id":          id,
		"tenant_verified_at": now,
	})
}

// -----------------------------------------
// Block (POST /tenants/:id/block)
// -----------------------------------------
func (h *TenantHandler) Block(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid tenant id")
	}

	var in dto.TenantBlockDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	now := time.Now()
	res := h.DB.Model(&model.Tenant{}).
		Where("tenant_id = ? AND tenant_owner_user_id = ?", id, ownerID).
		Updates(map[string]any{
			"tenant_status":         model.TenantStatusBlocked,
			"tenant_blocked_at":     now,
			"tenant_blocked_reason": in.Reason,
		})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "tenant not found")
	}
	return helper.JsonUpdated(c, "tenant blocked", fiber.Map{
		"tenant_id":         id,
		"tenant_blocked_at": now,
	})
}

// -----------------------------------------
// Transfer (POST /tenants/:id/transfer)
// Closes the active stay (transferred), opens stay N+1 on the new room and
// swaps room statuses, in one transaction.
// -----------------------------------------
func (h *TenantHandler) Transfer(c *fiber.Ctx) error {
	ownerID, err := helper.GetOwnerIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing owner scope")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid tenant id")
	}

	var in dto.TenantTransferDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	var m model.Tenant
	if err := h.DB.
		Where("tenant_id = ? AND tenant_owner_user_id = ?", id, ownerID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "tenant not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if m.TenantStatus != model.TenantStatusActive {
		return helper.JsonError(c, fiber.StatusConflict, "only active tenants can transfer")
	}

	var toRoom propertyModel.Room
	if err := h.DB.
		Where("room_id = ? AND room_owner_user_id = ?", in.ToRoomID, ownerID).
		First(&toRoom).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "target room not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if toRoom.RoomStatus != propertyModel.RoomStatusAvailable {
		return helper.JsonError(c, fiber.StatusConflict, "target room is not available")
	}

	at := time.Now()
	if in.TransferAt != nil {
		at = *in.TransferAt
	}
	rent := m.TenantMonthlyRent
	if in.MonthlyRent != nil {
		rent = *in.MonthlyRent
	}

	var newStay model.TenantStay
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var active model.TenantStay
		if err := tx.
			Where("tenant_stay_tenant_id = ? AND tenant_stay_status = ?", m.TenantID, model.StayStatusActive).
			First(&active).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.TenantStay{}).
			Where("tenant_stay_id = ?", active.TenantStayID).
			Updates(map[string]any{
				"tenant_stay_status":    model.StayStatusTransferred,
				"tenant_stay_exit_date": at,
			}).Error; err != nil {
			return err
		}
		newStay = model.TenantStay{
			TenantStayTenantID:    m.TenantID,
			TenantStayOwnerUserID: ownerID,
			TenantStayPropertyID:  toRoom.RoomPropertyID,
			TenantStayRoomID:      toRoom.RoomID,
			TenantStayNumber:      active.TenantStayNumber + 1,
			TenantStayJoinDate:    at,
			TenantStayMonthlyRent: rent,
			TenantStayStatus:      model.StayStatusActive,
		}
		if err := tx.Create(&newStay).Error; err != nil {
			return err
		}
		if err := tx.Model(&propertyModel.Room{}).
			Where("room_id = ?", active.TenantStayRoomID).
			Update("room_status", propertyModel.RoomStatusAvailable).Error; err != nil {
			return err
		}
		if err := tx.Model(&propertyModel.Room{}).
			Where("room_id = ?", toRoom.RoomID).
			Update("room_status", propertyModel.RoomStatusOccupied).Error; err != nil {
			return err
		}
		roomID := toRoom.RoomID
		return tx.Model(&model.Tenant{}).
			Where("tenant_id = ?", m.TenantID).
			Updates(map[string]any{
				"tenant_room_id":      roomID,
				"tenant_property_id":  toRoom.RoomPropertyID,
				"tenant_monthly_rent": rent,
			}).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "tenant transferred", dto.ToTenantStayResponse(newStay))
}
