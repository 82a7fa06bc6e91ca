// file: internals/features/finance/payments/dto/payment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "hostelku_backend/internals/features/finance/payments/model"
)

/* =========================================================
   REQUEST DTO
========================================================= */

// PaymentCreateDTO records an offline collection (cash, UPI, transfer, ...).
type PaymentCreateDTO struct {
	PaymentTenantID uuid.UUID  `json:"payment_tenant_id" validate:"required"`
	PaymentChargeID *uuid.UUID `json:"payment_charge_id,omitempty"`

	PaymentAmount decimal.Decimal `json:"payment_amount" validate:"required"`
	PaymentDate   *time.Time      `json:"payment_date,omitempty"`
	PaymentMethod string          `json:"payment_method" validate:"required,oneof=cash upi bank_transfer cheque card"`

	PaymentForPeriod  string  `json:"payment_for_period,omitempty"`
	PaymentChargeType string  `json:"payment_charge_type,omitempty"`
	PaymentNote       *string `json:"payment_note,omitempty"`
}

// PaymentOnlineCreateDTO starts a gateway collection and returns a snap token.
type PaymentOnlineCreateDTO struct {
	PaymentTenantID uuid.UUID  `json:"payment_tenant_id" validate:"required"`
	PaymentChargeID *uuid.UUID `json:"payment_charge_id,omitempty"`

	PaymentAmount decimal.Decimal `json:"payment_amount" validate:"required"`

	PaymentForPeriod  string `json:"payment_for_period,omitempty"`
	PaymentChargeType string `json:"payment_charge_type,omitempty"`

	CustomerFirstName string `json:"customer_first_name" validate:"required"`
	CustomerLastName  string `json:"customer_last_name,omitempty"`
	CustomerEmail     string `json:"customer_email" validate:"required,email"`
	CustomerPhone     string `json:"customer_phone" validate:"required"`
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type PaymentResponse struct {
	PaymentID          uuid.UUID  `json:"payment_id"`
	PaymentOwnerUserID uuid.UUID  `json:"payment_owner_user_id"`
	PaymentTenantID    uuid.UUID  `json:"payment_tenant_id"`
	PaymentChargeID    *uuid.UUID `json:"payment_charge_id,omitempty"`

	PaymentAmount decimal.Decimal `json:"payment_amount"`
	PaymentDate   time.Time       `json:"payment_date"`
	PaymentMethod string          `json:"payment_method"`
	PaymentStatus string          `json:"payment_status"`

	PaymentForPeriod  string  `json:"payment_for_period,omitempty"`
	PaymentChargeType string  `json:"payment_charge_type,omitempty"`
	PaymentNote       *string `json:"payment_note,omitempty"`

	PaymentSnapToken *string `json:"payment_snap_token,omitempty"`

	PaymentCreatedAt time.Time `json:"payment_created_at"`
}

/* =========================================================
   CONVERTERS
========================================================= */

func ToPaymentResponse(m model.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:          m.PaymentID,
		PaymentOwnerUserID: m.PaymentOwnerUserID,
		PaymentTenantID:    m.PaymentTenantID,
		PaymentChargeID:    m.PaymentChargeID,
		PaymentAmount:      m.PaymentAmount,
		PaymentDate:        m.PaymentDate,
		PaymentMethod:      string(m.PaymentMethod),
		PaymentStatus:      string(m.PaymentStatus),
		PaymentForPeriod:   m.PaymentForPeriod,
		PaymentChargeType:  m.PaymentChargeType,
		PaymentNote:        m.PaymentNote,
		PaymentSnapToken:   m.PaymentSnapToken,
		PaymentCreatedAt:   m.PaymentCreatedAt,
	}
}

func PaymentCreateDTOToModel(in PaymentCreateDTO, ownerID uuid.UUID) model.Payment {
	paidAt := time.Now()
	if in.PaymentDate != nil {
		paidAt = *in.PaymentDate
	}
	return model.Payment{
		PaymentOwnerUserID: ownerID,
		PaymentTenantID:    in.PaymentTenantID,
		PaymentChargeID:    in.PaymentChargeID,
		PaymentAmount:      in.PaymentAmount,
		PaymentDate:        paidAt,
		PaymentMethod:      model.PaymentMethod(in.PaymentMethod),
		PaymentStatus:      model.PaymentStatusSettled,
		PaymentForPeriod:   in.PaymentForPeriod,
		PaymentChargeType:  in.PaymentChargeType,
		PaymentNote:        in.PaymentNote,
	}
}
