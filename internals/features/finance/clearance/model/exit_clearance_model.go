// file: internals/features/finance/clearance/model/exit_clearance_model.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hostelku_backend/internals/features/finance/clearance/settlement"
)

// =========================================================
// MODEL
// One clearance per checkout. Amounts are denormalized on the row so the
// record stays readable after the tenant is archived; final amount is
// always recomputed from the parts on write, never trusted from input.
// Once cleared the row is immutable.
// =========================================================

type ExitClearance struct {
	// PK
	ExitClearanceID uuid.UUID `gorm:"column:exit_clearance_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"exit_clearance_id"`

	// owner scope
	ExitClearanceOwnerUserID uuid.UUID `gorm:"column:exit_clearance_owner_user_id;type:uuid;not null;index:ix_exit_clearance_owner" json:"exit_clearance_owner_user_id"`

	// FK → tenants (one open clearance per tenant); placement is captured at
	// initiation since the tenant row loses its room on checkout
	ExitClearanceTenantID   uuid.UUID  `gorm:"column:exit_clearance_tenant_id;type:uuid;not null;uniqueIndex:uniq_exit_clearance_tenant" json:"exit_clearance_tenant_id"`
	ExitClearancePropertyID uuid.UUID  `gorm:"column:exit_clearance_property_id;type:uuid;not null;index" json:"exit_clearance_property_id"`
	ExitClearanceRoomID     *uuid.UUID `gorm:"column:exit_clearance_room_id;type:uuid" json:"exit_clearance_room_id,omitempty"`

	ExitClearanceStatus settlement.Status `gorm:"column:exit_clearance_status;type:varchar(20);not null;default:'initiated';index:ix_exit_clearance_status" json:"exit_clearance_status"`

	// checklist
	ExitClearanceRoomInspectionDone bool `gorm:"column:exit_clearance_room_inspection_done;not null;default:false" json:"exit_clearance_room_inspection_done"`
	ExitClearanceKeyReturned        bool `gorm:"column:exit_clearance_key_returned;not null;default:false" json:"exit_clearance_key_returned"`

	// money
	ExitClearanceTotalDues       decimal.Decimal `gorm:"column:exit_clearance_total_dues;type:decimal(12,2);not null;default:0" json:"exit_clearance_total_dues"`
	ExitClearanceTotalRefundable decimal.Decimal `gorm:"column:exit_clearance_total_refundable;type:decimal(12,2);not null;default:0" json:"exit_clearance_total_refundable"`
	ExitClearanceDeductions      datatypes.JSON  `gorm:"column:exit_clearance_deductions" json:"exit_clearance_deductions,omitempty"`
	ExitClearanceFinalAmount     decimal.Decimal `gorm:"column:exit_clearance_final_amount;type:decimal(12,2);not null;default:0" json:"exit_clearance_final_amount"`

	// dates
	ExitClearanceNoticeGivenDate  *time.Time `gorm:"column:exit_clearance_notice_given_date" json:"exit_clearance_notice_given_date,omitempty"`
	ExitClearanceExpectedExitDate *time.Time `gorm:"column:exit_clearance_expected_exit_date" json:"exit_clearance_expected_exit_date,omitempty"`
	ExitClearanceActualExitDate   *time.Time `gorm:"column:exit_clearance_actual_exit_date" json:"exit_clearance_actual_exit_date,omitempty"`
	ExitClearanceCompletedAt      *time.Time `gorm:"column:exit_clearance_completed_at" json:"exit_clearance_completed_at,omitempty"`

	// Timestamps (explicit)
	ExitClearanceCreatedAt time.Time      `gorm:"column:exit_clearance_created_at;not null;default:now()" json:"exit_clearance_created_at"`
	ExitClearanceUpdatedAt time.Time      `gorm:"column:exit_clearance_updated_at;not null;default:now()" json:"exit_clearance_updated_at"`
	ExitClearanceDeletedAt gorm.DeletedAt `gorm:"column:exit_clearance_deleted_at;index" json:"-"`
}

func (ExitClearance) TableName() string {
	return "exit_clearances"
}

func (m *ExitClearance) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.ExitClearanceCreatedAt.IsZero() {
		m.ExitClearanceCreatedAt = now
	}
	m.ExitClearanceUpdatedAt = now
	return nil
}

func (m *ExitClearance) BeforeUpdate(tx *gorm.DB) (err error) {
	m.ExitClearanceUpdatedAt = time.Now()
	return nil
}

// Deductions decodes the stored line items. An empty column is an empty list.
func (m ExitClearance) Deductions() ([]settlement.Deduction, error) {
	if len(m.ExitClearanceDeductions) == 0 {
		return nil, nil
	}
	var out []settlement.Deduction
	if err := json.Unmarshal(m.ExitClearanceDeductions, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SetDeductions stores the list and recomputes the final amount.
func (m *ExitClearance) SetDeductions(list []settlement.Deduction) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return err
	}
	m.ExitClearanceDeductions = datatypes.JSON(raw)
	m.ExitClearanceFinalAmount = settlement.ComputeFinalAmount(
		m.ExitClearanceTotalDues, m.ExitClearanceTotalRefundable, list)
	return nil
}

// Checklist projects the row into the completion gate's view.
func (m ExitClearance) Checklist() settlement.Checklist {
	return settlement.Checklist{
		RoomInspectionDone: m.ExitClearanceRoomInspectionDone,
		KeyReturned:        m.ExitClearanceKeyReturned,
		Status:             m.ExitClearanceStatus,
	}
}
