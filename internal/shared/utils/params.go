package utils

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/back-informatica/chamados/internal/shared/errors"
)

// ParseLimitQuery reads the "limit" query parameter. Missing, unparsable or
// non-positive values yield def; values above max are clamped.
func ParseLimitQuery(c *gin.Context, def, max int) int {
	raw := strings.TrimSpace(c.Query("limit"))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	if max > 0 && n > max {
		return max
	}
	return n
}

// ParseIDParam returns a non-blank path parameter.
func ParseIDParam(c *gin.Context, name, entity string) (string, error) {
	v := strings.TrimSpace(c.Param(name))
	if v == "" {
		return "", errors.NewValidationError(entity + " id is required")
	}
	return v, nil
}
