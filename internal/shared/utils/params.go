package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/id"
)

// ParseSIDParam parses and validates a prefixed short ID from a URL path
// parameter. Malformed identifiers are rejected here, before any service
// layer code runs.
// paramName is the Gin route parameter name (e.g., "id", "ticket_id").
// prefix is the expected SID prefix (e.g., id.PrefixTicket).
// entityName is used in error messages (e.g., "ticket", "device").
func ParseSIDParam(c *gin.Context, paramName, prefix, entityName string) (string, error) {
	sid := c.Param(paramName)
	if sid == "" {
		return "", errors.NewValidationError(entityName + " ID is required")
	}

	if err := id.ValidatePrefix(sid, prefix); err != nil {
		return "", errors.NewValidationError(
			fmt.Sprintf("invalid %s ID format, expected %s_xxxxx", entityName, prefix),
		)
	}

	return sid, nil
}
