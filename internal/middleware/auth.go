package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"brickbase-api-io/api/internal/auth"
	"brickbase-api-io/api/pkg/util"
)

// Auth verifies the bearer ID token on the request and stores the
// asserted identity in the gin context for downstream handlers.
func Auth(verifier auth.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := auth.ExtractToken(c)
		if tokenString == "" {
			util.HandleError(c, http.StatusUnauthorized, errors.New("request does not contain an access token"))
			c.Abort()
			return
		}

		session, err := verifier.Verify(tokenString)
		if err != nil {
			util.HandleError(c, http.StatusUnauthorized, err)
			c.Abort()
			return
		}

		c.Set(auth.ContextEmailKey, session.Email)
		c.Set(auth.ContextNameKey, session.Name)

		c.Next()
	}
}
