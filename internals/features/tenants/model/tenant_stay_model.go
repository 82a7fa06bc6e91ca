// file: internals/features/tenants/model/tenant_stay_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — stay status
// =========================================================

type StayStatus string

const (
	StayStatusActive      StayStatus = "active"
	StayStatusTransferred StayStatus = "transferred"
	StayStatusCompleted   StayStatus = "completed"
)

// =========================================================
// MODEL — one continuous occupancy period.
// A tenant has many stays; at most one may be active at a time
// (enforced by the unique partial-style index on tenant+number and
// by the transfer/checkout flows, not by this model).
// =========================================================

type TenantStay struct {
	// PK
	TenantStayID uuid.UUID `gorm:"column:tenant_stay_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"tenant_stay_id"`

	// FK → tenants(tenant_id)
	TenantStayTenantID uuid.UUID `gorm:"column:tenant_stay_tenant_id;type:uuid;not null;index;index:uniq_tenant_stay_number,unique,priority:1" json:"tenant_stay_tenant_id"`

	// owner scope (denormalized)
	TenantStayOwnerUserID uuid.UUID `gorm:"column:tenant_stay_owner_user_id;type:uuid;not null;index" json:"tenant_stay_owner_user_id"`

	TenantStayPropertyID uuid.UUID `gorm:"column:tenant_stay_property_id;type:uuid;not null;index" json:"tenant_stay_property_id"`
	TenantStayRoomID     uuid.UUID `gorm:"column:tenant_stay_room_id;type:uuid;not null;index" json:"tenant_stay_room_id"`

	// 1-based, monotonic per tenant
	TenantStayNumber int `gorm:"column:tenant_stay_number;not null;check:tenant_stay_number>=1;index:uniq_tenant_stay_number,unique,priority:2" json:"tenant_stay_number"`

	TenantStayJoinDate time.Time  `gorm:"column:tenant_stay_join_date;not null" json:"tenant_stay_join_date"`
	TenantStayExitDate *time.Time `gorm:"column:tenant_stay_exit_date" json:"tenant_stay_exit_date,omitempty"`

	TenantStayMonthlyRent decimal.Decimal `gorm:"column:tenant_stay_monthly_rent;type:decimal(12,2);not null" json:"tenant_stay_monthly_rent"`

	TenantStayStatus StayStatus `gorm:"column:tenant_stay_status;type:varchar(20);not null;default:'active';index:ix_tenant_stay_status" json:"tenant_stay_status"`

	// Timestamps (explicit)
	TenantStayCreatedAt time.Time `gorm:"column:tenant_stay_created_at;not null;default:now()" json:"tenant_stay_created_at"`
	TenantStayUpdatedAt time.Time `gorm:"column:tenant_stay_updated_at;not null;default:now()" json:"tenant_stay_updated_at"`
}

func (TenantStay) TableName() string {
	return "tenant_stays"
}

func (m *TenantStay) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.TenantStayCreatedAt.IsZero() {
		m.TenantStayCreatedAt = now
	}
	m.TenantStayUpdatedAt = now
	return nil
}

func (m *TenantStay) BeforeUpdate(tx *gorm.DB) (err error) {
	m.TenantStayUpdatedAt = time.Now()
	return nil
}
