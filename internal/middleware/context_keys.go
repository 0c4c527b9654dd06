package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/tubeview/tubeview_backend/internal/utils"
)

// contextKey is a private type so context values cannot collide with other packages.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	claimsCtxKey = contextKey("sessionClaims")
)

// GetUserIDFromContext retrieves the authenticated user's ID from the request
// context. It returns false when no auth middleware ran for this request.
func GetUserIDFromContext(c *gin.Context) (int64, bool) {
	claims, ok := GetClaimsFromContext(c)
	if !ok {
		return 0, false
	}
	return claims.UserID, true
}

// GetClaimsFromContext retrieves the verified session claims attached by the
// auth middleware.
func GetClaimsFromContext(c *gin.Context) (*utils.SessionClaims, bool) {
	val := c.Request.Context().Value(claimsCtxKey)
	if val == nil {
		return nil, false
	}
	claims, ok := val.(*utils.SessionClaims)
	return claims, ok
}
