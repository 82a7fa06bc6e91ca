// file: internals/features/visitors/model/visitor_log_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// MODEL
// Walk-in and guest visits. Phone is the identity key that later links
// a visit back to a tenant who converted.
// =========================================================

type VisitorLog struct {
	// PK
	VisitorLogID uuid.UUID `gorm:"column:visitor_log_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"visitor_log_id"`

	// owner scope
	VisitorLogOwnerUserID uuid.UUID `gorm:"column:visitor_log_owner_user_id;type:uuid;not null;index:ix_visitor_log_owner" json:"visitor_log_owner_user_id"`

	// FK → properties, optionally the tenant being visited
	VisitorLogPropertyID uuid.UUID  `gorm:"column:visitor_log_property_id;type:uuid;not null;index" json:"visitor_log_property_id"`
	VisitorLogTenantID   *uuid.UUID `gorm:"column:visitor_log_tenant_id;type:uuid;index" json:"visitor_log_tenant_id,omitempty"`

	VisitorLogName  string `gorm:"column:visitor_log_name;type:varchar(120);not null" json:"visitor_log_name"`
	VisitorLogPhone string `gorm:"column:visitor_log_phone;type:varchar(20);not null;index:ix_visitor_log_phone" json:"visitor_log_phone"`

	// enquiry, guest, delivery, maintenance, ...
	VisitorLogPurpose string `gorm:"column:visitor_log_purpose;type:varchar(60);not null" json:"visitor_log_purpose"`

	VisitorLogCheckInAt  time.Time  `gorm:"column:visitor_log_check_in_at;not null;index:ix_visitor_log_check_in" json:"visitor_log_check_in_at"`
	VisitorLogCheckOutAt *time.Time `gorm:"column:visitor_log_check_out_at" json:"visitor_log_check_out_at,omitempty"`

	VisitorLogNote *string `gorm:"column:visitor_log_note;type:text" json:"visitor_log_note,omitempty"`

	// Timestamps (explicit)
	VisitorLogCreatedAt time.Time      `gorm:"column:visitor_log_created_at;not null;default:now()" json:"visitor_log_created_at"`
	VisitorLogUpdatedAt time.Time      `gorm:"column:visitor_log_updated_at;not null;default:now()" json:"visitor_log_updated_at"`
	VisitorLogDeletedAt gorm.DeletedAt `gorm:"column:visitor_log_deleted_at;index" json:"-"`
}

func (VisitorLog) TableName() string {
	return "visitor_logs"
}

func (m *VisitorLog) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.VisitorLogCreatedAt.IsZero() {
		m.VisitorLogCreatedAt = now
	}
	if m.VisitorLogCheckInAt.IsZero() {
		m.VisitorLogCheckInAt = now
	}
	m.VisitorLogUpdatedAt = now
	return nil
}

func (m *VisitorLog) BeforeUpdate(tx *gorm.DB) (err error) {
	m.VisitorLogUpdatedAt = time.Now()
	return nil
}
