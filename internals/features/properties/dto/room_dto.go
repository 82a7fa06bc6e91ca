// file: internals/features/properties/dto/room_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "hostelku_backend/internals/features/properties/model"
)

////////////////////////////////////////////////////////////////////////////////
// ROOMS — DTO
////////////////////////////////////////////////////////////////////////////////

type RoomCreateDTO struct {
	RoomPropertyID  uuid.UUID       `json:"room_property_id" validate:"required"`
	RoomNumber      string          `json:"room_number" validate:"required,max=20"`
	RoomFloor       int             `json:"room_floor"`
	RoomSharing     int             `json:"room_sharing" validate:"omitempty,min=1"`
	RoomMonthlyRent decimal.Decimal `json:"room_monthly_rent" validate:"required"`
	RoomFeatures    []string        `json:"room_features,omitempty"`
}

// Update (partial) — status has its own DTO below
type RoomUpdateDTO struct {
	RoomNumber      *string          `json:"room_number,omitempty" validate:"omitempty,max=20"`
	RoomFloor       *int             `json:"room_floor,omitempty"`
	RoomSharing     *int             `json:"room_sharing,omitempty" validate:"omitempty,min=1"`
	RoomMonthlyRent *decimal.Decimal `json:"room_monthly_rent,omitempty"`
	RoomFeatures    *[]string        `json:"room_features,omitempty"`
}

type RoomStatusDTO struct {
	RoomStatus string `json:"room_status" validate:"required,oneof=available occupied maintenance"`
}

type RoomResponse struct {
	RoomID          uuid.UUID       `json:"room_id"`
	RoomPropertyID  uuid.UUID       `json:"room_property_id"`
	RoomNumber      string          `json:"room_number"`
	RoomFloor       int             `json:"room_floor"`
	RoomSharing     int             `json:"room_sharing"`
	RoomMonthlyRent decimal.Decimal `json:"room_monthly_rent"`
	RoomStatus      string          `json:"room_status"`
	RoomFeatures    []string        `json:"room_features,omitempty"`
	RoomCreatedAt   time.Time       `json:"room_created_at"`
	RoomUpdatedAt   time.Time       `json:"room_updated_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func ToRoomResponse(m model.Room) RoomResponse {
	return RoomResponse{
		RoomID:          m.RoomID,
		RoomPropertyID:  m.RoomPropertyID,
		RoomNumber:      m.RoomNumber,
		RoomFloor:       m.RoomFloor,
		RoomSharing:     m.RoomSharing,
		RoomMonthlyRent: m.RoomMonthlyRent,
		RoomStatus:      string(m.RoomStatus),
		RoomFeatures:    m.RoomFeatures,
		RoomCreatedAt:   m.RoomCreatedAt,
		RoomUpdatedAt:   m.RoomUpdatedAt,
	}
}

func ToRoomResponses(ms []model.Room) []RoomResponse {
	out := make([]RoomResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToRoomResponse(m))
	}
	return out
}

func RoomCreateDTOToModel(d RoomCreateDTO, ownerID uuid.UUID) model.Room {
	sharing := d.RoomSharing
	if sharing < 1 {
		sharing = 1
	}
	return model.Room{
		RoomPropertyID:  d.RoomPropertyID,
		RoomOwnerUserID: ownerID,
		RoomNumber:      d.RoomNumber,
		RoomFloor:       d.RoomFloor,
		RoomSharing:     sharing,
		RoomMonthlyRent: d.RoomMonthlyRent,
		RoomStatus:      model.RoomStatusAvailable,
		RoomFeatures:    d.RoomFeatures,
	}
}

func ApplyRoomUpdate(m *model.Room, d RoomUpdateDTO) {
	if d.RoomNumber != nil {
		m.RoomNumber = *d.RoomNumber
	}
	if d.RoomFloor != nil {
		m.RoomFloor = *d.RoomFloor
	}
	if d.RoomSharing != nil {
		m.RoomSharing = *d.RoomSharing
	}
	if d.RoomMonthlyRent != nil {
		m.RoomMonthlyRent = *d.RoomMonthlyRent
	}
	if d.RoomFeatures != nil {
		m.RoomFeatures = *d.RoomFeatures
	}
}
