// file: internals/features/notices/model/notice_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// =========================================================
// MODEL
// Announcements published by the owner to one property or all of them.
// Audience holds role slices ("tenant", "manager"); metadata is free-form
// (e.g. attachment URLs, severity).
// =========================================================

type Notice struct {
	// PK
	NoticeID uuid.UUID `gorm:"column:notice_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"notice_id"`

	// owner scope
	NoticeOwnerUserID uuid.UUID `gorm:"column:notice_owner_user_id;type:uuid;not null;index:ix_notice_owner" json:"notice_owner_user_id"`

	// nil → every property of the owner
	NoticePropertyID *uuid.UUID `gorm:"column:notice_property_id;type:uuid;index" json:"notice_property_id,omitempty"`

	NoticeTitle string `gorm:"column:notice_title;type:varchar(160);not null" json:"notice_title"`
	NoticeBody  string `gorm:"column:notice_body;type:text;not null" json:"notice_body"`

	NoticeAudience pq.StringArray `gorm:"column:notice_audience;type:text[]" json:"notice_audience,omitempty"`

	NoticePublishAt time.Time  `gorm:"column:notice_publish_at;not null;index:ix_notice_publish_at" json:"notice_publish_at"`
	NoticeExpireAt  *time.Time `gorm:"column:notice_expire_at" json:"notice_expire_at,omitempty"`

	NoticeMetadata datatypes.JSONMap `gorm:"column:notice_metadata" json:"notice_metadata,omitempty"`

	// Timestamps (explicit)
	NoticeCreatedAt time.Time      `gorm:"column:notice_created_at;not null;default:now()" json:"notice_created_at"`
	NoticeUpdatedAt time.Time      `gorm:"column:notice_updated_at;not null;default:now()" json:"notice_updated_at"`
	NoticeDeletedAt gorm.DeletedAt `gorm:"column:notice_deleted_at;index" json:"-"`
}

func (Notice) TableName() string {
	return "notices"
}

func (m *Notice) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.NoticeCreatedAt.IsZero() {
		m.NoticeCreatedAt = now
	}
	if m.NoticePublishAt.IsZero() {
		m.NoticePublishAt = now
	}
	m.NoticeUpdatedAt = now
	return nil
}

func (m *Notice) BeforeUpdate(tx *gorm.DB) (err error) {
	m.NoticeUpdatedAt = time.Now()
	return nil
}

// Active reports whether the notice is currently visible.
func (m Notice) Active(now time.Time) bool {
	if now.Before(m.NoticePublishAt) {
		return false
	}
	if m.NoticeExpireAt != nil && now.After(*m.NoticeExpireAt) {
		return false
	}
	return true
}
