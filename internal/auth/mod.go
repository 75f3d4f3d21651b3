package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Context keys populated by the auth middleware after token verification.
const (
	ContextEmailKey = "auth_email"
	ContextNameKey  = "auth_name"
)

// Session carries the identity extracted from a verified bearer token.
type Session struct {
	Email string
	Name  string
}

// ExtractToken pulls the bearer token out of the Authorization header.
func ExtractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}

	return header
}

// GetSession returns the verified identity set by the auth middleware.
func GetSession(c *gin.Context) (Session, error) {
	email := c.GetString(ContextEmailKey)
	if email == "" {
		return Session{}, errors.New("no authenticated identity on this request")
	}

	return Session{
		Email: email,
		Name:  c.GetString(ContextNameKey),
	}, nil
}
