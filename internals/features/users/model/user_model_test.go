// file: internals/features/users/model/user_model_test.go
package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOwnerScope(t *testing.T) {
	ownerID := uuid.New()

	owner := UserModel{UserID: ownerID, UserRole: "owner"}
	assert.Equal(t, ownerID, owner.OwnerScope(), "owners scope to themselves")

	manager := UserModel{UserID: uuid.New(), UserOwnerID: &ownerID, UserRole: "manager"}
	assert.Equal(t, ownerID, manager.OwnerScope(), "managers scope to their owner")
}
