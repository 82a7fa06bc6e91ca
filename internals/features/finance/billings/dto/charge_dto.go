// file: internals/features/finance/billings/dto/charge_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "hostelku_backend/internals/features/finance/billings/model"
)

////////////////////////////////////////////////////////////////////////////////
// CHARGES — DTO
////////////////////////////////////////////////////////////////////////////////

type ChargeCreateDTO struct {
	ChargeTenantID   uuid.UUID       `json:"charge_tenant_id" validate:"required"`
	ChargePropertyID uuid.UUID       `json:"charge_property_id" validate:"required"`
	ChargeAmount     decimal.Decimal `json:"charge_amount" validate:"required"`
	ChargeDueDate    time.Time       `json:"charge_due_date" validate:"required"`
	ChargeForPeriod  string          `json:"charge_for_period" validate:"required,max=40"` // e.g. "Aug 2026"
	ChargeType       string          `json:"charge_type" validate:"omitempty,max=40"`       // e.g. "Rent"
	ChargeNote       *string         `json:"charge_note,omitempty"`
}

// Update (partial) — amount is immutable by design, so it has no field here;
// status moves through MarkStatus only.
type ChargeUpdateDTO struct {
	ChargeDueDate   *time.Time `json:"charge_due_date,omitempty"`
	ChargeForPeriod *string    `json:"charge_for_period,omitempty" validate:"omitempty,max=40"`
	ChargeNote      *string    `json:"charge_note,omitempty"`
}

type ChargeMarkStatusDTO struct {
	ChargeStatus string     `json:"charge_status" validate:"required,oneof=partial overdue paid"`
	PaidAt       *time.Time `json:"paid_at,omitempty"` // backend uses now() when nil and status=paid
}

type ChargeResponse struct {
	ChargeID         uuid.UUID       `json:"charge_id"`
	ChargeTenantID   uuid.UUID       `json:"charge_tenant_id"`
	ChargePropertyID uuid.UUID       `json:"charge_property_id"`
	ChargeAmount     decimal.Decimal `json:"charge_amount"`
	ChargeDueDate    time.Time       `json:"charge_due_date"`
	ChargeStatus     string          `json:"charge_status"`
	ChargeForPeriod  string          `json:"charge_for_period"`
	ChargeType       string          `json:"charge_type"`
	ChargePaidAt     *time.Time      `json:"charge_paid_at,omitempty"`
	ChargeNote       *string         `json:"charge_note,omitempty"`
	ChargeCreatedAt  time.Time       `json:"charge_created_at"`
	ChargeUpdatedAt  time.Time       `json:"charge_updated_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func ToChargeResponse(m model.Charge) ChargeResponse {
	return ChargeResponse{
		ChargeID:         m.ChargeID,
		ChargeTenantID:   m.ChargeTenantID,
		ChargePropertyID: m.ChargePropertyID,
		ChargeAmount:     m.ChargeAmount,
		ChargeDueDate:    m.ChargeDueDate,
		ChargeStatus:     string(m.ChargeStatus),
		ChargeForPeriod:  m.ChargeForPeriod,
		ChargeType:       m.ChargeType,
		ChargePaidAt:     m.ChargePaidAt,
		ChargeNote:       m.ChargeNote,
		ChargeCreatedAt:  m.ChargeCreatedAt,
		ChargeUpdatedAt:  m.ChargeUpdatedAt,
	}
}

func ToChargeResponses(ms []model.Charge) []ChargeResponse {
	out := make([]ChargeResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToChargeResponse(m))
	}
	return out
}

func ChargeCreateDTOToModel(d ChargeCreateDTO, ownerID uuid.UUID) model.Charge {
	ct := d.ChargeType
	if ct == "" {
		ct = "Rent"
	}
	return model.Charge{
		ChargeOwnerUserID: ownerID,
		ChargeTenantID:    d.ChargeTenantID,
		ChargePropertyID:  d.ChargePropertyID,
		ChargeAmount:      d.ChargeAmount,
		ChargeDueDate:     d.ChargeDueDate,
		ChargeStatus:      model.ChargeStatusPending,
		ChargeForPeriod:   d.ChargeForPeriod,
		ChargeType:        ct,
		ChargeNote:        d.ChargeNote,
	}
}

func ApplyChargeUpdate(m *model.Charge, d ChargeUpdateDTO) {
	if d.ChargeDueDate != nil {
		m.ChargeDueDate = *d.ChargeDueDate
	}
	if d.ChargeForPeriod != nil {
		m.ChargeForPeriod = *d.ChargeForPeriod
	}
	if d.ChargeNote != nil {
		m.ChargeNote = d.ChargeNote
	}
}
