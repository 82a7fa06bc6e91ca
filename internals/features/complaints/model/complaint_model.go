// file: internals/features/complaints/model/complaint_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — complaint status
// =========================================================

type ComplaintStatus string

const (
	ComplaintStatusOpen       ComplaintStatus = "open"
	ComplaintStatusInProgress ComplaintStatus = "in_progress"
	ComplaintStatusResolved   ComplaintStatus = "resolved"
)

func (s ComplaintStatus) Valid() bool {
	switch s {
	case ComplaintStatusOpen, ComplaintStatusInProgress, ComplaintStatusResolved:
		return true
	}
	return false
}

// =========================================================
// MODEL
// =========================================================

type Complaint struct {
	// PK
	ComplaintID uuid.UUID `gorm:"column:complaint_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"complaint_id"`

	// owner scope
	ComplaintOwnerUserID uuid.UUID `gorm:"column:complaint_owner_user_id;type:uuid;not null;index:ix_complaint_owner" json:"complaint_owner_user_id"`

	// FK → tenants / properties
	ComplaintTenantID   uuid.UUID  `gorm:"column:complaint_tenant_id;type:uuid;not null;index" json:"complaint_tenant_id"`
	ComplaintPropertyID uuid.UUID  `gorm:"column:complaint_property_id;type:uuid;not null;index" json:"complaint_property_id"`
	ComplaintRoomID     *uuid.UUID `gorm:"column:complaint_room_id;type:uuid" json:"complaint_room_id,omitempty"`

	ComplaintCategory    string `gorm:"column:complaint_category;type:varchar(40);not null" json:"complaint_category"`
	ComplaintDescription string `gorm:"column:complaint_description;type:text;not null" json:"complaint_description"`

	ComplaintStatus ComplaintStatus `gorm:"column:complaint_status;type:varchar(20);not null;default:'open';index:ix_complaint_status" json:"complaint_status"`

	ComplaintRaisedAt   time.Time  `gorm:"column:complaint_raised_at;not null;index:ix_complaint_raised_at" json:"complaint_raised_at"`
	ComplaintResolvedAt *time.Time `gorm:"column:complaint_resolved_at" json:"complaint_resolved_at,omitempty"`

	ComplaintResolutionNote *string `gorm:"column:complaint_resolution_note;type:text" json:"complaint_resolution_note,omitempty"`

	// Timestamps (explicit)
	ComplaintCreatedAt time.Time      `gorm:"column:complaint_created_at;not null;default:now()" json:"complaint_created_at"`
	ComplaintUpdatedAt time.Time      `gorm:"column:complaint_updated_at;not null;default:now()" json:"complaint_updated_at"`
	ComplaintDeletedAt gorm.DeletedAt `gorm:"column:complaint_deleted_at;index" json:"-"`
}

func (Complaint) TableName() string {
	return "complaints"
}

func (m *Complaint) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.ComplaintCreatedAt.IsZero() {
		m.ComplaintCreatedAt = now
	}
	if m.ComplaintRaisedAt.IsZero() {
		m.ComplaintRaisedAt = now
	}
	m.ComplaintUpdatedAt = now
	return nil
}

func (m *Complaint) BeforeUpdate(tx *gorm.DB) (err error) {
	m.ComplaintUpdatedAt = time.Now()
	return nil
}
