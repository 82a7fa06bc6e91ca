// file: internals/features/properties/dto/property_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "hostelku_backend/internals/features/properties/model"
)

////////////////////////////////////////////////////////////////////////////////
// PROPERTIES — DTO
////////////////////////////////////////////////////////////////////////////////

type PropertyCreateDTO struct {
	PropertyName      string   `json:"property_name" validate:"required,min=2,max=120"`
	PropertyType      string   `json:"property_type" validate:"omitempty,oneof=pg hostel"`
	PropertyAddress   string   `json:"property_address,omitempty"`
	PropertyCity      string   `json:"property_city,omitempty" validate:"omitempty,max=80"`
	PropertyAmenities []string `json:"property_amenities,omitempty"`
}

// Update (partial)
type PropertyUpdateDTO struct {
	PropertyName      *string   `json:"property_name,omitempty" validate:"omitempty,min=2,max=120"`
	PropertyType      *string   `json:"property_type,omitempty" validate:"omitempty,oneof=pg hostel"`
	PropertyAddress   *string   `json:"property_address,omitempty"`
	PropertyCity      *string   `json:"property_city,omitempty" validate:"omitempty,max=80"`
	PropertyAmenities *[]string `json:"property_amenities,omitempty"`
}

type PropertyResponse struct {
	PropertyID          uuid.UUID `json:"property_id"`
	PropertyOwnerUserID uuid.UUID `json:"property_owner_user_id"`
	PropertyName        string    `json:"property_name"`
	PropertyType        string    `json:"property_type"`
	PropertyAddress     string    `json:"property_address,omitempty"`
	PropertyCity        string    `json:"property_city,omitempty"`
	PropertyAmenities   []string  `json:"property_amenities,omitempty"`
	PropertyTotalRooms  int       `json:"property_total_rooms"`
	PropertyCreatedAt   time.Time  `json:"property_created_at"`
	PropertyUpdatedAt   time.Time  `json:"property_updated_at"`
	PropertyDeletedAt   *time.Time `json:"property_deleted_at,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS — Model <-> DTO
////////////////////////////////////////////////////////////////////////////////

func ToPropertyResponse(m model.Property) PropertyResponse {
	return PropertyResponse{
		PropertyID:          m.PropertyID,
		PropertyOwnerUserID: m.PropertyOwnerUserID,
		PropertyName:        m.PropertyName,
		PropertyType:        string(m.PropertyType),
		PropertyAddress:     m.PropertyAddress,
		PropertyCity:        m.PropertyCity,
		PropertyAmenities:   m.PropertyAmenities,
		PropertyTotalRooms:  m.PropertyTotalRooms,
		PropertyCreatedAt:   m.PropertyCreatedAt,
		PropertyUpdatedAt:   m.PropertyUpdatedAt,
		PropertyDeletedAt:   toPtrTimeFromDeletedAt(m.PropertyDeletedAt),
	}
}

func ToPropertyResponses(ms []model.Property) []PropertyResponse {
	out := make([]PropertyResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToPropertyResponse(m))
	}
	return out
}

func PropertyCreateDTOToModel(d PropertyCreateDTO, ownerID uuid.UUID) model.Property {
	pt := model.PropertyTypePG
	if d.PropertyType != "" {
		pt = model.PropertyType(d.PropertyType)
	}
	return model.Property{
		PropertyOwnerUserID: ownerID,
		PropertyName:        d.PropertyName,
		PropertyType:        pt,
		PropertyAddress:     d.PropertyAddress,
		PropertyCity:        d.PropertyCity,
		PropertyAmenities:   d.PropertyAmenities,
	}
}

// ApplyPropertyUpdate patches only the fields present.
func ApplyPropertyUpdate(m *model.Property, d PropertyUpdateDTO) {
	if d.PropertyName != nil {
		m.PropertyName = *d.PropertyName
	}
	if d.PropertyType != nil {
		m.PropertyType = model.PropertyType(*d.PropertyType)
	}
	if d.PropertyAddress != nil {
		m.PropertyAddress = *d.PropertyAddress
	}
	if d.PropertyCity != nil {
		m.PropertyCity = *d.PropertyCity
	}
	if d.PropertyAmenities != nil {
		m.PropertyAmenities = *d.PropertyAmenities
	}
}

func toPtrTimeFromDeletedAt(v gorm.DeletedAt) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}
