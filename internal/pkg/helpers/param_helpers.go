package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/peerconnect/peerconnect/internal/pkg/apperrors"
)

// ParseIDParam reads a positive integer path parameter. A missing or
// malformed value maps to a validation error.
func ParseIDParam(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("Invalid " + name + " parameter")
	}
	return id, nil
}
