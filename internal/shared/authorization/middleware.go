package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixdesk/internal/shared/constants"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/utils"
)

// IdentityFromContext rebuilds the caller identity placed on the gin context
// by the authentication middleware.
func IdentityFromContext(c *gin.Context) Identity {
	identity := Identity{
		Username: c.GetString(constants.ContextKeyUsername),
	}
	if groups, ok := c.Get(constants.ContextKeyGroups); ok {
		if gs, ok := groups.([]string); ok {
			identity.Groups = gs
		}
	}
	return identity
}

// RequireAdmin rejects callers whose groups do not include the administrator
// group. Device mutations are guarded here at the routing layer; ticket and
// message rules live in their use cases because they depend on the record.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IdentityFromContext(c).IsAdmin() {
			utils.ErrorResponse(c, http.StatusForbidden, errors.CodeForbidden, "administrator access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
