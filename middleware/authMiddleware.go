package middleware

import (
	"strings"

	"golang-sportplans/helpers"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const identityKey = "identity"

// Authentication rejects requests without a valid bearer token and stores
// the caller's identity in the context.
func Authentication(tokens *helpers.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		tokenString = strings.TrimSpace(tokenString)
		if !found || tokenString == "" {
			abort(c, helpers.ErrUnauthenticated)
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			log.Debug().Str("request_id", RequestIDFrom(c)).Err(err).Msg("token rejected")
			abort(c, helpers.ErrInvalidToken)
			return
		}

		if !helpers.ValidRole(claims.Role) {
			abort(c, helpers.ErrForbidden)
			return
		}

		c.Set(identityKey, claims.Identity())
		c.Next()
	}
}

// CurrentIdentity returns the identity stored by Authentication.
func CurrentIdentity(c *gin.Context) (helpers.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return helpers.Identity{}, false
	}
	who, ok := v.(helpers.Identity)
	return who, ok
}

func abort(c *gin.Context, err error) {
	c.AbortWithStatusJSON(helpers.StatusOf(err), gin.H{"message": err.Error()})
}
