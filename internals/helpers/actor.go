// file: internals/helpers/actor.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Ambil role dari c.Locals("userRole") (diisi auth middleware).
func GetUserRole(c *fiber.Ctx) string {
	if v := c.Locals("userRole"); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// ParseUUIDParam membaca path param dan parse jadi UUID.
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" tidak valid")
	}
	return id, nil
}
