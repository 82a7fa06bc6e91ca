// file: internals/features/complaints/dto/complaint_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "hostelku_backend/internals/features/complaints/model"
)

/* =========================================================
   REQUEST DTO
========================================================= */

type ComplaintCreateDTO struct {
	ComplaintTenantID   uuid.UUID  `json:"complaint_tenant_id" validate:"required"`
	ComplaintPropertyID uuid.UUID  `json:"complaint_property_id" validate:"required"`
	ComplaintRoomID     *uuid.UUID `json:"complaint_room_id,omitempty"`

	ComplaintCategory    string `json:"complaint_category" validate:"required,max=40"`
	ComplaintDescription string `json:"complaint_description" validate:"required"`

	ComplaintRaisedAt *time.Time `json:"complaint_raised_at,omitempty"`
}

type ComplaintUpdateDTO struct {
	ComplaintCategory    *string `json:"complaint_category,omitempty" validate:"omitempty,max=40"`
	ComplaintDescription *string `json:"complaint_description,omitempty"`
	ComplaintStatus      *string `json:"complaint_status,omitempty" validate:"omitempty,oneof=open in_progress"`
}

type ComplaintResolveDTO struct {
	ComplaintResolutionNote *string    `json:"complaint_resolution_note,omitempty"`
	ComplaintResolvedAt     *time.Time `json:"complaint_resolved_at,omitempty"`
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type ComplaintResponse struct {
	ComplaintID          uuid.UUID  `json:"complaint_id"`
	ComplaintOwnerUserID uuid.UUID  `json:"complaint_owner_user_id"`
	ComplaintTenantID    uuid.UUID  `json:"complaint_tenant_id"`
	ComplaintPropertyID  uuid.UUID  `json:"complaint_property_id"`
	ComplaintRoomID      *uuid.UUID `json:"complaint_room_id,omitempty"`

	ComplaintCategory    string `json:"complaint_category"`
	ComplaintDescription string `json:"complaint_description"`
	ComplaintStatus      string `json:"complaint_status"`

	ComplaintRaisedAt       time.Time  `json:"complaint_raised_at"`
	ComplaintResolvedAt     *time.Time `json:"complaint_resolved_at,omitempty"`
	ComplaintResolutionNote *string    `json:"complaint_resolution_note,omitempty"`

	ComplaintCreatedAt time.Time `json:"complaint_created_at"`
}

/* =========================================================
   CONVERTERS
========================================================= */

func ToComplaintResponse(m model.Complaint) ComplaintResponse {
	return ComplaintResponse{
		ComplaintID:             m.ComplaintID,
		ComplaintOwnerUserID:    m.ComplaintOwnerUserID,
		ComplaintTenantID:       m.ComplaintTenantID,
		ComplaintPropertyID:     m.ComplaintPropertyID,
		ComplaintRoomID:         m.ComplaintRoomID,
		ComplaintCategory:       m.ComplaintCategory,
		ComplaintDescription:    m.ComplaintDescription,
		ComplaintStatus:         string(m.ComplaintStatus),
		ComplaintRaisedAt:       m.ComplaintRaisedAt,
		ComplaintResolvedAt:     m.ComplaintResolvedAt,
		ComplaintResolutionNote: m.ComplaintResolutionNote,
		ComplaintCreatedAt:      m.ComplaintCreatedAt,
	}
}

func ToComplaintResponses(list []model.Complaint) []ComplaintResponse {
	out := make([]ComplaintResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToComplaintResponse(m))
	}
	return out
}

func ComplaintCreateDTOToModel(in ComplaintCreateDTO, ownerID uuid.UUID) model.Complaint {
	m := model.Complaint{
		ComplaintOwnerUserID: ownerID,
		ComplaintTenantID:    in.ComplaintTenantID,
		ComplaintPropertyID:  in.ComplaintPropertyID,
		ComplaintRoomID:      in.ComplaintRoomID,
		ComplaintCategory:    in.ComplaintCategory,
		ComplaintDescription: in.ComplaintDescription,
		ComplaintStatus:      model.ComplaintStatusOpen,
	}
	if in.ComplaintRaisedAt != nil {
		m.ComplaintRaisedAt = *in.ComplaintRaisedAt
	}
	return m
}

// ApplyComplaintUpdate mutates only provided fields.
func ApplyComplaintUpdate(m *model.Complaint, in ComplaintUpdateDTO) {
	if in.ComplaintCategory != nil {
		m.ComplaintCategory = *in.ComplaintCategory
	}
	if in.ComplaintDescription != nil {
		m.ComplaintDescription = *in.ComplaintDescription
	}
	if in.ComplaintStatus != nil {
		m.ComplaintStatus = model.ComplaintStatus(*in.ComplaintStatus)
	}
}
