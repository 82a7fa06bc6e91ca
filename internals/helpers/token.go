// file: internals/helpers/token.go
package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys hydrated by the auth middleware.
const (
	LocUserID  = "user_id"
	LocRole    = "role"
	LocOwnerID = "owner_id"
)

var ErrNoTokenContext = errors.New("missing auth context")

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return localsUUID(c, LocUserID)
}

// GetOwnerIDFromToken returns the owner scope every admin query must be
// filtered by. For owners this is their own user id; for managers it is the
// owner they act for. Never read from ambient globals, always from the token.
func GetOwnerIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return localsUUID(c, LocOwnerID)
}

func GetRoleFromToken(c *fiber.Ctx) (string, error) {
	if v, ok := c.Locals(LocRole).(string); ok && v != "" {
		return v, nil
	}
	return "", ErrNoTokenContext
}

func localsUUID(c *fiber.Ctx, key string) (uuid.UUID, error) {
	switch v := c.Locals(key).(type) {
	case uuid.UUID:
		return v, nil
	case string:
		id, err := uuid.Parse(v)
		if err != nil {
			return uuid.Nil, ErrNoTokenContext
		}
		return id, nil
	default:
		return uuid.Nil, ErrNoTokenContext
	}
}
