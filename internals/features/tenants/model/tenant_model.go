// file: internals/features/tenants/model/tenant_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — tenant lifecycle status
// =========================================================

type TenantStatus string

const (
	TenantStatusActive       TenantStatus = "active"
	TenantStatusNoticePeriod TenantStatus = "notice_period"
	TenantStatusCheckedOut   TenantStatus = "checked_out"
	TenantStatusBlocked      TenantStatus = "blocked"
)

// =========================================================
// MODEL
// =========================================================

type Tenant struct {
	// PK
	TenantID uuid.UUID `gorm:"column:tenant_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"tenant_id"`

	// owner scope
	TenantOwnerUserID uuid.UUID `gorm:"column:tenant_owner_user_id;type:uuid;not null;index:ix_tenant_owner" json:"tenant_owner_user_id"`

	// FK → properties / rooms (current placement; history lives in tenant_stays)
	TenantPropertyID uuid.UUID  `gorm:"column:tenant_property_id;type:uuid;not null;index" json:"tenant_property_id"`
	TenantRoomID     *uuid.UUID `gorm:"column:tenant_room_id;type:uuid;index" json:"tenant_room_id,omitempty"`

	TenantFullName string  `gorm:"column:tenant_full_name;type:varchar(120);not null" json:"tenant_full_name"`
	TenantPhone    string  `gorm:"column:tenant_phone;type:varchar(20);not null;index:ix_tenant_phone" json:"tenant_phone"`
	TenantEmail    *string `gorm:"column:tenant_email;type:varchar(120)" json:"tenant_email,omitempty"`

	TenantStatus TenantStatus `gorm:"column:tenant_status;type:varchar(20);not null;default:'active';index:ix_tenant_status" json:"tenant_status"`

	TenantJoinDate     time.Time  `gorm:"column:tenant_join_date;not null" json:"tenant_join_date"`
	TenantCheckOutDate *time.Time `gorm:"column:tenant_check_out_date" json:"tenant_check_out_date,omitempty"`

	TenantMonthlyRent     decimal.Decimal `gorm:"column:tenant_monthly_rent;type:decimal(12,2);not null" json:"tenant_monthly_rent"`
	TenantSecurityDeposit decimal.Decimal `gorm:"column:tenant_security_deposit;type:decimal(12,2);not null;default:0" json:"tenant_security_deposit"`

	TenantAgreementEndDate *time.Time `gorm:"column:tenant_agreement_end_date" json:"tenant_agreement_end_date,omitempty"`
	TenantNoticeGivenDate  *time.Time `gorm:"column:tenant_notice_given_date" json:"tenant_notice_given_date,omitempty"`

	// verification / blocking (system actions, surfaced on the journey)
	TenantVerifiedAt    *time.Time `gorm:"column:tenant_verified_at" json:"tenant_verified_at,omitempty"`
	TenantBlockedAt     *time.Time `gorm:"column:tenant_blocked_at" json:"tenant_blocked_at,omitempty"`
	TenantBlockedReason *string    `gorm:"column:tenant_blocked_reason;type:text" json:"tenant_blocked_reason,omitempty"`

	// Timestamps (explicit)
	TenantCreatedAt time.Time      `gorm:"column:tenant_created_at;not null;default:now();index:ix_tenant_created_at" json:"tenant_created_at"`
	TenantUpdatedAt time.Time      `gorm:"column:tenant_updated_at;not null;default:now()" json:"tenant_updated_at"`
	TenantDeletedAt gorm.DeletedAt `gorm:"column:tenant_deleted_at;index" json:"-"`
}

func (Tenant) TableName() string {
	return "tenants"
}

func (m *Tenant) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.TenantCreatedAt.IsZero() {
		m.TenantCreatedAt = now
	}
	m.TenantUpdatedAt = now
	return nil
}

func (m *Tenant) BeforeUpdate(tx *gorm.DB) (err error) {
	m.TenantUpdatedAt = time.Now()
	return nil
}
