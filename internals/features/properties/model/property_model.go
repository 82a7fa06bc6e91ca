// file: internals/features/properties/model/property_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — property type
// =========================================================

type PropertyType string

const (
	PropertyTypePG     PropertyType = "pg"
	PropertyTypeHostel PropertyType = "hostel"
)

// =========================================================
// MODEL
// =========================================================

type Property struct {
	// PK
	PropertyID uuid.UUID `gorm:"column:property_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"property_id"`

	// FK → users(id), the owning account; every query is scoped by this
	PropertyOwnerUserID uuid.UUID `gorm:"column:property_owner_user_id;type:uuid;not null;index:ix_property_owner" json:"property_owner_user_id"`

	PropertyName string       `gorm:"column:property_name;type:varchar(120);not null" json:"property_name"`
	PropertyType PropertyType `gorm:"column:property_type;type:varchar(20);not null;default:'pg'" json:"property_type"`

	PropertyAddress string `gorm:"column:property_address;type:text" json:"property_address"`
	PropertyCity    string `gorm:"column:property_city;type:varchar(80);index" json:"property_city"`

	PropertyAmenities pq.StringArray `gorm:"column:property_amenities;type:text[]" json:"property_amenities"`

	PropertyTotalRooms int `gorm:"column:property_total_rooms;not null;default:0;check:property_total_rooms>=0" json:"property_total_rooms"`

	// Timestamps (explicit)
	PropertyCreatedAt time.Time      `gorm:"column:property_created_at;not null;default:now();index:ix_property_created_at" json:"property_created_at"`
	PropertyUpdatedAt time.Time      `gorm:"column:property_updated_at;not null;default:now()" json:"property_updated_at"`
	PropertyDeletedAt gorm.DeletedAt `gorm:"column:property_deleted_at;index" json:"-"`
}

func (Property) TableName() string {
	return "properties"
}

// =========================================================
// HOOKS — explicit timestamps
// =========================================================

func (m *Property) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.PropertyCreatedAt.IsZero() {
		m.PropertyCreatedAt = now
	}
	m.PropertyUpdatedAt = now
	return nil
}

func (m *Property) BeforeUpdate(tx *gorm.DB) (err error) {
	m.PropertyUpdatedAt = time.Now()
	return nil
}
