// file: internals/features/tenants/dto/tenant_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "hostelku_backend/internals/features/tenants/model"
)

////////////////////////////////////////////////////////////////////////////////
// TENANTS — DTO
////////////////////////////////////////////////////////////////////////////////

type TenantCreateDTO struct {
	TenantPropertyID      uuid.UUID       `json:"tenant_property_id" validate:"required"`
	TenantRoomID          uuid.UUID       `json:"tenant_room_id" validate:"required"`
	TenantFullName        string          `json:"tenant_full_name" validate:"required,min=2,max=120"`
	TenantPhone           string          `json:"tenant_phone" validate:"required,min=8,max=20"`
	TenantEmail           *string         `json:"tenant_email,omitempty" validate:"omitempty,email"`
	TenantJoinDate        time.Time       `json:"tenant_join_date" validate:"required"`
	TenantMonthlyRent     decimal.Decimal `json:"tenant_monthly_rent" validate:"required"`
	TenantSecurityDeposit decimal.Decimal `json:"tenant_security_deposit"`
	TenantAgreementEnd    *time.Time      `json:"tenant_agreement_end_date,omitempty"`
}

// Update (partial) — lifecycle status changes use the action endpoints
type TenantUpdateDTO struct {
	TenantFullName     *string          `json:"tenant_full_name,omitempty" validate:"omitempty,min=2,max=120"`
	TenantPhone        *string          `json:"tenant_phone,omitempty" validate:"omitempty,min=8,max=20"`
	TenantEmail        *string          `json:"tenant_email,omitempty" validate:"omitempty,email"`
	TenantMonthlyRent  *decimal.Decimal `json:"tenant_monthly_rent,omitempty"`
	TenantAgreementEnd *time.Time       `json:"tenant_agreement_end_date,omitempty"`
	TenantNoticeGiven  *time.Time       `json:"tenant_notice_given_date,omitempty"`
}

type TenantBlockDTO struct {
	Reason string `json:"reason" validate:"required,min=3"`
}

type TenantTransferDTO struct {
	ToRoomID    uuid.UUID        `json:"to_room_id" validate:"required"`
	TransferAt  *time.Time       `json:"transfer_at,omitempty"` // default now
	MonthlyRent *decimal.Decimal `json:"monthly_rent,omitempty"`
	Reason      string           `json:"reason,omitempty"`
}

type TenantResponse struct {
	TenantID               uuid.UUID       `json:"tenant_id"`
	TenantPropertyID       uuid.UUID       `json:"tenant_property_id"`
	TenantRoomID           *uuid.UUID      `json:"tenant_room_id,omitempty"`
	TenantFullName         string          `json:"tenant_full_name"`
	TenantPhone            string          `json:"tenant_phone"`
	TenantEmail            *string         `json:"tenant_email,omitempty"`
	TenantStatus           string          `json:"tenant_status"`
	TenantJoinDate         time.Time       `json:"tenant_join_date"`
	TenantCheckOutDate     *time.Time      `json:"tenant_check_out_date,omitempty"`
	TenantMonthlyRent      decimal.Decimal `json:"tenant_monthly_rent"`
	TenantSecurityDeposit  decimal.Decimal `json:"tenant_security_deposit"`
	TenantAgreementEndDate *time.Time      `json:"tenant_agreement_end_date,omitempty"`
	TenantNoticeGivenDate  *time.Time      `json:"tenant_notice_given_date,omitempty"`
	TenantVerifiedAt       *time.Time      `json:"tenant_verified_at,omitempty"`
	TenantBlockedAt        *time.Time      `json:"tenant_blocked_at,omitempty"`
	TenantBlockedReason    *string         `json:"tenant_blocked_reason,omitempty"`
	TenantCreatedAt        time.Time       `json:"tenant_created_at"`
	TenantUpdatedAt        time.Time       `json:"tenant_updated_at"`
}

type TenantStayResponse struct {
	TenantStayID          uuid.UUID       `json:"tenant_stay_id"`
	TenantStayNumber      int             `json:"tenant_stay_number"`
	TenantStayPropertyID  uuid.UUID       `json:"tenant_stay_property_id"`
	TenantStayRoomID      uuid.UUID       `json:"tenant_stay_room_id"`
	TenantStayJoinDate    time.Time       `json:"tenant_stay_join_date"`
	TenantStayExitDate    *time.Time      `json:"tenant_stay_exit_date,omitempty"`
	TenantStayMonthlyRent decimal.Decimal `json:"tenant_stay_monthly_rent"`
	TenantStayStatus      string          `json:"tenant_stay_status"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func ToTenantResponse(m model.Tenant) TenantResponse {
	return TenantResponse{
		TenantID:               m.TenantID,
		TenantPropertyID:       m.TenantPropertyID,
		TenantRoomID:           m.TenantRoomID,
		TenantFullName:         m.TenantFullName,
		TenantPhone:            m.TenantPhone,
		TenantEmail:            m.TenantEmail,
		TenantStatus:           string(m.TenantStatus),
		TenantJoinDate:         m.TenantJoinDate,
		TenantCheckOutDate:     m.TenantCheckOutDate,
		TenantMonthlyRent:      m.TenantMonthlyRent,
		TenantSecurityDeposit:  m.TenantSecurityDeposit,
		TenantAgreementEndDate: m.TenantAgreementEndDate,
		TenantNoticeGivenDate:  m.TenantNoticeGivenDate,
		TenantVerifiedAt:       m.TenantVerifiedAt,
		TenantBlockedAt:        m.TenantBlockedAt,
		TenantBlockedReason:    m.TenantBlockedReason,
		TenantCreatedAt:        m.TenantCreatedAt,
		TenantUpdatedAt:        m.TenantUpdatedAt,
	}
}

func ToTenantResponses(ms []model.Tenant) []TenantResponse {
	out := make([]TenantResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToTenantResponse(m))
	}
	return out
}

func ToTenantStayResponse(m model.TenantStay) TenantStayResponse {
	return TenantStayResponse{
		TenantStayID:          m.TenantStayID,
		TenantStayNumber:      m.TenantStayNumber,
		TenantStayPropertyID:  m.TenantStayPropertyID,
		TenantStayRoomID:      m.TenantStayRoomID,
		TenantStayJoinDate:    m.TenantStayJoinDate,
		TenantStayExitDate:    m.TenantStayExitDate,
		TenantStayMonthlyRent: m.TenantStayMonthlyRent,
		TenantStayStatus:      string(m.TenantStayStatus),
	}
}

func ToTenantStayResponses(ms []model.TenantStay) []TenantStayResponse {
	out := make([]TenantStayResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToTenantStayResponse(m))
	}
	return out
}

func TenantCreateDTOToModel(d TenantCreateDTO, ownerID uuid.UUID) model.Tenant {
	roomID := d.TenantRoomID
	return model.Tenant{
		TenantOwnerUserID:      ownerID,
		TenantPropertyID:       d.TenantPropertyID,
		TenantRoomID:           &roomID,
		TenantFullName:         d.TenantFullName,
		TenantPhone:            d.TenantPhone,
		TenantEmail:            d.TenantEmail,
		TenantStatus:           model.TenantStatusActive,
		TenantJoinDate:         d.TenantJoinDate,
		TenantMonthlyRent:      d.TenantMonthlyRent,
		TenantSecurityDeposit:  d.TenantSecurityDeposit,
		TenantAgreementEndDate: d.TenantAgreementEnd,
	}
}

func ApplyTenantUpdate(m *model.Tenant, d TenantUpdateDTO) {
	if d.TenantFullName != nil {
		m.TenantFullName = *d.TenantFullName
	}
	if d.TenantPhone != nil {
		m.TenantPhone = *d.TenantPhone
	}
	if d.TenantEmail != nil {
		m.TenantEmail = d.TenantEmail
	}
	if d.TenantMonthlyRent != nil {
		m.TenantMonthlyRent = *d.TenantMonthlyRent
	}
	if d.TenantAgreementEnd != nil {
		m.TenantAgreementEndDate = d.TenantAgreementEnd
	}
	if d.TenantNoticeGiven != nil {
		m.TenantNoticeGivenDate = d.TenantNoticeGiven
	}
}
