// file: internals/features/visitors/dto/visitor_log_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "hostelku_backend/internals/features/visitors/model"
)

/* =========================================================
   REQUEST DTO
========================================================= */

type VisitorLogCreateDTO struct {
	VisitorLogPropertyID uuid.UUID  `json:"visitor_log_property_id" validate:"required"`
	VisitorLogTenantID   *uuid.UUID `json:"visitor_log_tenant_id,omitempty"`

	VisitorLogName  string `json:"visitor_log_name" validate:"required,max=120"`
	VisitorLogPhone string `json:"visitor_log_phone" validate:"required,max=20"`

	VisitorLogPurpose string `json:"visitor_log_purpose" validate:"required,max=60"`

	VisitorLogCheckInAt *time.Time `json:"visitor_log_check_in_at,omitempty"`
	VisitorLogNote      *string    `json:"visitor_log_note,omitempty"`
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type VisitorLogResponse struct {
	VisitorLogID          uuid.UUID  `json:"visitor_log_id"`
	VisitorLogOwnerUserID uuid.UUID  `json:"visitor_log_owner_user_id"`
	VisitorLogPropertyID  uuid.UUID  `json:"visitor_log_property_id"`
	VisitorLogTenantID    *uuid.UUID `json:"visitor_log_tenant_id,omitempty"`

	VisitorLogName    string `json:"visitor_log_name"`
	VisitorLogPhone   string `json:"visitor_log_phone"`
	VisitorLogPurpose string `json:"visitor_log_purpose"`

	VisitorLogCheckInAt  time.Time  `json:"visitor_log_check_in_at"`
	VisitorLogCheckOutAt *time.Time `json:"visitor_log_check_out_at,omitempty"`
	VisitorLogNote       *string    `json:"visitor_log_note,omitempty"`

	VisitorLogCreatedAt time.Time `json:"visitor_log_created_at"`
}

/* =========================================================
   CONVERTERS
========================================================= */

func ToVisitorLogResponse(m model.VisitorLog) VisitorLogResponse {
	return VisitorLogResponse{
		VisitorLogID:          m.VisitorLogID,
		VisitorLogOwnerUserID: m.VisitorLogOwnerUserID,
		VisitorLogPropertyID:  m.VisitorLogPropertyID,
		VisitorLogTenantID:    m.VisitorLogTenantID,
		VisitorLogName:        m.VisitorLogName,
		VisitorLogPhone:       m.VisitorLogPhone,
		VisitorLogPurpose:     m.VisitorLogPurpose,
		VisitorLogCheckInAt:   m.VisitorLogCheckInAt,
		VisitorLogCheckOutAt:  m.VisitorLogCheckOutAt,
		VisitorLogNote:        m.VisitorLogNote,
		VisitorLogCreatedAt:   m.VisitorLogCreatedAt,
	}
}

func ToVisitorLogResponses(list []model.VisitorLog) []VisitorLogResponse {
	out := make([]VisitorLogResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToVisitorLogResponse(m))
	}
	return out
}

func VisitorLogCreateDTOToModel(in VisitorLogCreateDTO, ownerID uuid.UUID) model.VisitorLog {
	m := model.VisitorLog{
		VisitorLogOwnerUserID: ownerID,
		VisitorLogPropertyID:  in.VisitorLogPropertyID,
		VisitorLogTenantID:    in.VisitorLogTenantID,
		VisitorLogName:        in.VisitorLogName,
		VisitorLogPhone:       in.VisitorLogPhone,
		VisitorLogPurpose:     in.VisitorLogPurpose,
		VisitorLogNote:        in.VisitorLogNote,
	}
	if in.VisitorLogCheckInAt != nil {
		m.VisitorLogCheckInAt = *in.VisitorLogCheckInAt
	}
	return m
}
