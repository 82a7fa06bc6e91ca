// file: internals/features/users/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "hostelku_backend/internals/features/users/model"
)

/* =========================================================
   REQUEST DTO
========================================================= */

type RegisterDTO struct {
	UserName     string `json:"user_name" validate:"required,max=120"`
	UserEmail    string `json:"user_email" validate:"required,email,max=120"`
	UserPhone    string `json:"user_phone,omitempty" validate:"omitempty,max=20"`
	UserPassword string `json:"user_password" validate:"required,min=8,max=72"`
}

type LoginDTO struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

type RefreshDTO struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// ManagerCreateDTO lets an owner appoint a manager under their scope.
type ManagerCreateDTO struct {
	UserName     string `json:"user_name" validate:"required,max=120"`
	UserEmail    string `json:"user_email" validate:"required,email,max=120"`
	UserPhone    string `json:"user_phone,omitempty" validate:"omitempty,max=20"`
	UserPassword string `json:"user_password" validate:"required,min=8,max=72"`
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type UserResponse struct {
	UserID      uuid.UUID  `json:"user_id"`
	UserOwnerID *uuid.UUID `json:"user_owner_id,omitempty"`

	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	UserPhone string `json:"user_phone,omitempty"`

	UserRole     string `json:"user_role"`
	UserIsActive bool   `json:"user_is_active"`

	UserCreatedAt time.Time `json:"user_created_at"`
}

type AuthResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

/* =========================================================
   CONVERTERS
========================================================= */

func ToUserResponse(m model.UserModel) UserResponse {
	return UserResponse{
		UserID:        m.UserID,
		UserOwnerID:   m.UserOwnerID,
		UserName:      m.UserName,
		UserEmail:     m.UserEmail,
		UserPhone:     m.UserPhone,
		UserRole:      m.UserRole,
		UserIsActive:  m.UserIsActive,
		UserCreatedAt: m.UserCreatedAt,
	}
}
