// file: internals/features/users/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// MODEL
// Owners register themselves; managers are created by an owner and carry
// user_owner_id pointing at them. Tenants with app access get role=tenant.
// =========================================================

type UserModel struct {
	// PK
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`

	// nil for owners (they are their own scope)
	UserOwnerID *uuid.UUID `gorm:"column:user_owner_id;type:uuid;index" json:"user_owner_id,omitempty"`

	UserName  string `gorm:"column:user_name;type:varchar(120);not null" json:"user_name"`
	UserEmail string `gorm:"column:user_email;type:varchar(120);not null;uniqueIndex:uniq_user_email" json:"user_email"`
	UserPhone string `gorm:"column:user_phone;type:varchar(20)" json:"user_phone,omitempty"`

	UserPassword string `gorm:"column:user_password;type:varchar(120);not null" json:"-"`

	UserRole     string `gorm:"column:user_role;type:varchar(20);not null;default:'owner';index:ix_user_role" json:"user_role"`
	UserIsActive bool   `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	// Timestamps (explicit)
	UserCreatedAt time.Time      `gorm:"column:user_created_at;not null;default:now()" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;not null;default:now()" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"-"`
}

func (UserModel) TableName() string {
	return "users"
}

func (m *UserModel) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.UserCreatedAt.IsZero() {
		m.UserCreatedAt = now
	}
	m.UserUpdatedAt = now
	return nil
}

func (m *UserModel) BeforeUpdate(tx *gorm.DB) (err error) {
	m.UserUpdatedAt = time.Now()
	return nil
}

// OwnerScope is the tenant boundary every query is filtered by: owners scope
// to themselves, managers to the owner who appointed them.
func (m UserModel) OwnerScope() uuid.UUID {
	if m.UserOwnerID != nil {
		return *m.UserOwnerID
	}
	return m.UserID
}
