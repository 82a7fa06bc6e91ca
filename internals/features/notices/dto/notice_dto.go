// file: internals/features/notices/dto/notice_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	model "hostelku_backend/internals/features/notices/model"
)

/* =========================================================
   REQUEST DTO
========================================================= */

type NoticeCreateDTO struct {
	NoticePropertyID *uuid.UUID `json:"notice_property_id,omitempty"`

	NoticeTitle string `json:"notice_title" validate:"required,max=160"`
	NoticeBody  string `json:"notice_body" validate:"required"`

	NoticeAudience []string `json:"notice_audience,omitempty" validate:"omitempty,dive,oneof=tenant manager"`

	NoticePublishAt *time.Time `json:"notice_publish_at,omitempty"`
	NoticeExpireAt  *time.Time `json:"notice_expire_at,omitempty"`

	NoticeMetadata map[string]interface{} `json:"notice_metadata,omitempty"`
}

type NoticeUpdateDTO struct {
	NoticeTitle *string `json:"notice_title,omitempty" validate:"omitempty,max=160"`
	NoticeBody  *string `json:"notice_body,omitempty"`

	NoticeAudience *[]string `json:"notice_audience,omitempty" validate:"omitempty,dive,oneof=tenant manager"`

	NoticePublishAt *time.Time `json:"notice_publish_at,omitempty"`
	NoticeExpireAt  *time.Time `json:"notice_expire_at,omitempty"`

	NoticeMetadata *map[string]interface{} `json:"notice_metadata,omitempty"`
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type NoticeResponse struct {
	NoticeID          uuid.UUID  `json:"notice_id"`
	NoticeOwnerUserID uuid.UUID  `json:"notice_owner_user_id"`
	NoticePropertyID  *uuid.UUID `json:"notice_property_id,omitempty"`

	NoticeTitle string `json:"notice_title"`
	NoticeBody  string `json:"notice_body"`

	NoticeAudience []string `json:"notice_audience,omitempty"`

	NoticePublishAt time.Time  `json:"notice_publish_at"`
	NoticeExpireAt  *time.Time `json:"notice_expire_at,omitempty"`
	NoticeActive    bool       `json:"notice_active"`

	NoticeMetadata map[string]interface{} `json:"notice_metadata,omitempty"`

	NoticeCreatedAt time.Time `json:"notice_created_at"`
}

/* =========================================================
   CONVERTERS
========================================================= */

func ToNoticeResponse(m model.Notice) NoticeResponse {
	return NoticeResponse{
		NoticeID:          m.NoticeID,
		NoticeOwnerUserID: m.NoticeOwnerUserID,
		NoticePropertyID:  m.NoticePropertyID,
		NoticeTitle:       m.NoticeTitle,
		NoticeBody:        m.NoticeBody,
		NoticeAudience:    []string(m.NoticeAudience),
		NoticePublishAt:   m.NoticePublishAt,
		NoticeExpireAt:    m.NoticeExpireAt,
		NoticeActive:      m.Active(time.Now()),
		NoticeMetadata:    map[string]interface{}(m.NoticeMetadata),
		NoticeCreatedAt:   m.NoticeCreatedAt,
	}
}

func ToNoticeResponses(list []model.Notice) []NoticeResponse {
	out := make([]NoticeResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToNoticeResponse(m))
	}
	return out
}

func NoticeCreateDTOToModel(in NoticeCreateDTO, ownerID uuid.UUID) model.Notice {
	m := model.Notice{
		NoticeOwnerUserID: ownerID,
		NoticePropertyID:  in.NoticePropertyID,
		NoticeTitle:       in.NoticeTitle,
		NoticeBody:        in.NoticeBody,
		NoticeAudience:    pq.StringArray(in.NoticeAudience),
		NoticeExpireAt:    in.NoticeExpireAt,
		NoticeMetadata:    datatypes.JSONMap(in.NoticeMetadata),
	}
	if in.NoticePublishAt != nil {
		m.NoticePublishAt = *in.NoticePublishAt
	}
	return m
}

// ApplyNoticeUpdate mutates only provided fields.
func ApplyNoticeUpdate(m *model.Notice, in NoticeUpdateDTO) {
	if in.NoticeTitle != nil {
		m.NoticeTitle = *in.NoticeTitle
	}
	if in.NoticeBody != nil {
		m.NoticeBody = *in.NoticeBody
	}
	if in.NoticeAudience != nil {
		m.NoticeAudience = pq.StringArray(*in.NoticeAudience)
	}
	if in.NoticePublishAt != nil {
		m.NoticePublishAt = *in.NoticePublishAt
	}
	if in.NoticeExpireAt != nil {
		m.NoticeExpireAt = in.NoticeExpireAt
	}
	if in.NoticeMetadata != nil {
		m.NoticeMetadata = datatypes.JSONMap(*in.NoticeMetadata)
	}
}
