// file: internals/features/finance/clearance/dto/exit_clearance_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "hostelku_backend/internals/features/finance/clearance/model"
	"hostelku_backend/internals/features/finance/clearance/settlement"
)

/* =========================================================
   REQUEST DTO
========================================================= */

// ExitClearanceInitiateDTO opens a clearance. Dues and refundable default
// from outstanding charges and the security deposit; both can be overridden.
type ExitClearanceInitiateDTO struct {
	ExitClearanceTenantID uuid.UUID `json:"exit_clearance_tenant_id" validate:"required"`

	ExitClearanceExpectedExitDate *time.Time `json:"exit_clearance_expected_exit_date,omitempty"`

	ExitClearanceTotalDues       *decimal.Decimal `json:"exit_clearance_total_dues,omitempty"`
	ExitClearanceTotalRefundable *decimal.Decimal `json:"exit_clearance_total_refundable,omitempty"`
}

type ExitClearanceChecklistDTO struct {
	ExitClearanceRoomInspectionDone *bool `json:"exit_clearance_room_inspection_done,omitempty"`
	ExitClearanceKeyReturned        *bool `json:"exit_clearance_key_returned,omitempty"`
}

type ExitClearanceDeductionDTO struct {
	Reason string          `json:"reason" validate:"required"`
	Amount decimal.Decimal `json:"amount" validate:"required"`
}

type ExitClearanceCompleteDTO struct {
	ExitClearanceActualExitDate *time.Time `json:"exit_clearance_actual_exit_date,omitempty"`
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type ExitClearanceResponse struct {
	ExitClearanceID          uuid.UUID  `json:"exit_clearance_id"`
	ExitClearanceOwnerUserID uuid.UUID  `json:"exit_clearance_owner_user_id"`
	ExitClearanceTenantID    uuid.UUID  `json:"exit_clearance_tenant_id"`
	ExitClearancePropertyID  uuid.UUID  `json:"exit_clearance_property_id"`
	ExitClearanceRoomID      *uuid.UUID `json:"exit_clearance_room_id,omitempty"`

	ExitClearanceStatus string `json:"exit_clearance_status"`

	ExitClearanceRoomInspectionDone bool `json:"exit_clearance_room_inspection_done"`
	ExitClearanceKeyReturned        bool `json:"exit_clearance_key_returned"`
	ExitClearanceCanComplete        bool `json:"exit_clearance_can_complete"`

	ExitClearanceTotalDues       decimal.Decimal        `json:"exit_clearance_total_dues"`
	ExitClearanceTotalRefundable decimal.Decimal        `json:"exit_clearance_total_refundable"`
	ExitClearanceDeductions      []settlement.Deduction `json:"exit_clearance_deductions"`
	ExitClearanceFinalAmount     decimal.Decimal        `json:"exit_clearance_final_amount"`

	ExitClearanceNoticeGivenDate  *time.Time `json:"exit_clearance_notice_given_date,omitempty"`
	ExitClearanceExpectedExitDate *time.Time `json:"exit_clearance_expected_exit_date,omitempty"`
	ExitClearanceActualExitDate   *time.Time `json:"exit_clearance_actual_exit_date,omitempty"`
	ExitClearanceCompletedAt      *time.Time `json:"exit_clearance_completed_at,omitempty"`

	ExitClearanceDaysStayed *int `json:"exit_clearance_days_stayed,omitempty"`

	ExitClearanceCreatedAt time.Time `json:"exit_clearance_created_at"`
}

/* =========================================================
   CONVERTERS
========================================================= */

// ToExitClearanceResponse projects the row; joinDate, when known, yields the
// stay-duration figure once an actual exit date exists.
func ToExitClearanceResponse(m model.ExitClearance, joinDate *time.Time) ExitClearanceResponse {
	deductions, err := m.Deductions()
	if err != nil {
		deductions = nil
	}
	if deductions == nil {
		deductions = []settlement.Deduction{}
	}

	resp := ExitClearanceResponse{
		ExitClearanceID:                 m.ExitClearanceID,
		ExitClearanceOwnerUserID:        m.ExitClearanceOwnerUserID,
		ExitClearanceTenantID:           m.ExitClearanceTenantID,
		ExitClearancePropertyID:         m.ExitClearancePropertyID,
		ExitClearanceRoomID:             m.ExitClearanceRoomID,
		ExitClearanceStatus:             string(m.ExitClearanceStatus),
		ExitClearanceRoomInspectionDone: m.ExitClearanceRoomInspectionDone,
		ExitClearanceKeyReturned:        m.ExitClearanceKeyReturned,
		ExitClearanceCanComplete:        settlement.CanComplete(m.Checklist()),
		ExitClearanceTotalDues:          m.ExitClearanceTotalDues,
		ExitClearanceTotalRefundable:    m.ExitClearanceTotalRefundable,
		ExitClearanceDeductions:         deductions,
		ExitClearanceFinalAmount:        m.ExitClearanceFinalAmount,
		ExitClearanceNoticeGivenDate:    m.ExitClearanceNoticeGivenDate,
		ExitClearanceExpectedExitDate:   m.ExitClearanceExpectedExitDate,
		ExitClearanceActualExitDate:     m.ExitClearanceActualExitDate,
		ExitClearanceCompletedAt:        m.ExitClearanceCompletedAt,
		ExitClearanceCreatedAt:          m.ExitClearanceCreatedAt,
	}

	if joinDate != nil && m.ExitClearanceActualExitDate != nil {
		days := settlement.DaysStayed(*joinDate, *m.ExitClearanceActualExitDate)
		resp.ExitClearanceDaysStayed = &days
	}

	return resp
}
