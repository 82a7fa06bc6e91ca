// file: internals/features/finance/payments/model/payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// =========================================================
// ENUMS
// =========================================================

type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodUPI          PaymentMethod = "upi"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCheque       PaymentMethod = "cheque"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodOnline       PaymentMethod = "online" // gateway collection
)

type PaymentStatus string

const (
	PaymentStatusSettled PaymentStatus = "settled"
	PaymentStatusPending PaymentStatus = "pending" // gateway payment awaiting webhook
	PaymentStatusFailed  PaymentStatus = "failed"
)

// =========================================================
// MODEL
// Payments are immutable once created: corrections are new payments,
// never edits. There is deliberately no update path.
// =========================================================

type Payment struct {
	// PK
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"payment_id"`

	// owner scope
	PaymentOwnerUserID uuid.UUID `gorm:"column:payment_owner_user_id;type:uuid;not null;index:ix_payment_owner" json:"payment_owner_user_id"`

	// FK → tenants, optionally a specific charge
	PaymentTenantID uuid.UUID  `gorm:"column:payment_tenant_id;type:uuid;not null;index" json:"payment_tenant_id"`
	PaymentChargeID *uuid.UUID `gorm:"column:payment_charge_id;type:uuid;index" json:"payment_charge_id,omitempty"`

	PaymentAmount decimal.Decimal `gorm:"column:payment_amount;type:decimal(12,2);not null;check:payment_amount>0" json:"payment_amount"`

	PaymentDate   time.Time     `gorm:"column:payment_date;not null;index:ix_payment_date" json:"payment_date"`
	PaymentMethod PaymentMethod `gorm:"column:payment_method;type:varchar(20);not null" json:"payment_method"`
	PaymentStatus PaymentStatus `gorm:"column:payment_status;type:varchar(20);not null;default:'settled';index" json:"payment_status"`

	PaymentForPeriod  string  `gorm:"column:payment_for_period;type:varchar(40)" json:"payment_for_period,omitempty"`
	PaymentChargeType string  `gorm:"column:payment_charge_type;type:varchar(40)" json:"payment_charge_type,omitempty"`
	PaymentNote       *string `gorm:"column:payment_note;type:text" json:"payment_note,omitempty"`

	// gateway fields (online method only)
	PaymentExternalID *string `gorm:"column:payment_external_id;type:varchar(64);uniqueIndex" json:"payment_external_id,omitempty"`
	PaymentSnapToken  *string `gorm:"column:payment_snap_token;type:varchar(128)" json:"payment_snap_token,omitempty"`

	// Timestamps (explicit)
	PaymentCreatedAt time.Time      `gorm:"column:payment_created_at;not null;default:now()" json:"payment_created_at"`
	PaymentUpdatedAt time.Time      `gorm:"column:payment_updated_at;not null;default:now()" json:"payment_updated_at"`
	PaymentDeletedAt gorm.DeletedAt `gorm:"column:payment_deleted_at;index" json:"-"`
}

func (Payment) TableName() string {
	return "payments"
}

func (m *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.PaymentCreatedAt.IsZero() {
		m.PaymentCreatedAt = now
	}
	m.PaymentUpdatedAt = now
	return nil
}

func (m *Payment) BeforeUpdate(tx *gorm.DB) (err error) {
	m.PaymentUpdatedAt = time.Now()
	return nil
}
