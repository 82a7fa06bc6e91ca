// file: internals/features/properties/model/room_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — room status
// =========================================================

type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusMaintenance RoomStatus = "maintenance"
)

// =========================================================
// MODEL
// =========================================================

type Room struct {
	// PK
	RoomID uuid.UUID `gorm:"column:room_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"room_id"`

	// FK → properties(property_id)
	RoomPropertyID uuid.UUID `gorm:"column:room_property_id;type:uuid;not null;index;index:uniq_property_room_number,unique,priority:1" json:"room_property_id"`

	// denormalized owner scope, kept in sync with the property
	RoomOwnerUserID uuid.UUID `gorm:"column:room_owner_user_id;type:uuid;not null;index:ix_room_owner" json:"room_owner_user_id"`

	RoomNumber string `gorm:"column:room_number;type:varchar(20);not null;index:uniq_property_room_number,unique,priority:2" json:"room_number"`
	RoomFloor  int    `gorm:"column:room_floor;not null;default:0" json:"room_floor"`

	// sharing: 1 = single, 2 = double, ...
	RoomSharing int `gorm:"column:room_sharing;not null;default:1;check:room_sharing>=1" json:"room_sharing"`

	RoomMonthlyRent decimal.Decimal `gorm:"column:room_monthly_rent;type:decimal(12,2);not null" json:"room_monthly_rent"`

	RoomStatus   RoomStatus     `gorm:"column:room_status;type:varchar(20);not null;default:'available';index:ix_room_status" json:"room_status"`
	RoomFeatures pq.StringArray `gorm:"column:room_features;type:text[]" json:"room_features"`

	// Timestamps (explicit)
	RoomCreatedAt time.Time      `gorm:"column:room_created_at;not null;default:now()" json:"room_created_at"`
	RoomUpdatedAt time.Time      `gorm:"column:room_updated_at;not null;default:now()" json:"room_updated_at"`
	RoomDeletedAt gorm.DeletedAt `gorm:"column:room_deleted_at;index" json:"-"`
}

func (Room) TableName() string {
	return "rooms"
}

func (m *Room) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.RoomCreatedAt.IsZero() {
		m.RoomCreatedAt = now
	}
	m.RoomUpdatedAt = now
	return nil
}

func (m *Room) BeforeUpdate(tx *gorm.DB) (err error) {
	m.RoomUpdatedAt = time.Now()
	return nil
}
