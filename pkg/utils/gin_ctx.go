package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CurrentAccountID reads the authenticated account id set by the JWT
// middleware. Missing or malformed values mean the route was mounted
// without auth.
func CurrentAccountID(c *gin.Context) (uuid.UUID, error) {
	raw := c.GetString("user_id")
	if raw == "" {
		return uuid.Nil, ErrUnauthorized
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrUnauthorized
	}
	return id, nil
}
