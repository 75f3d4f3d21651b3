package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"brickbase-api-io/api/internal/auth"
	"brickbase-api-io/api/pkg/models"
	"brickbase-api-io/api/pkg/services"
	"brickbase-api-io/api/pkg/util"
)

// roleStubUserService serves fixed roles per email; everything else is
// unused by the role middleware.
type roleStubUserService struct {
	roles map[string]models.UserRole
}

func (s *roleStubUserService) GetUserRole(_ context.Context, email string) (models.UserRole, error) {
	if role, ok := s.roles[email]; ok {
		return role, nil
	}
	return "", services.ErrNotFound
}

func (s *roleStubUserService) CreateUser(context.Context, models.UserRequest) (primitive.ObjectID, bool, error) {
	return primitive.NilObjectID, false, nil
}
func (s *roleStubUserService) GetUserByEmail(context.Context, string) (*models.User, error) {
	return nil, services.ErrNotFound
}
func (s *roleStubUserService) GetUsers(context.Context, util.PaginationArgs) ([]models.User, int64, error) {
	return nil, 0, nil
}
func (s *roleStubUserService) UpdateProfile(context.Context, string, models.UserProfileUpdateRequest) error {
	return nil
}
func (s *roleStubUserService) GetSocialLinks(context.Context, string) (models.SocialLinks, error) {
	return models.SocialLinks{}, nil
}
func (s *roleStubUserService) SetUserRole(context.Context, primitive.ObjectID, models.UserRole) error {
	return nil
}
func (s *roleStubUserService) MarkFraudulent(context.Context, primitive.ObjectID) error { return nil }
func (s *roleStubUserService) DeleteUser(context.Context, primitive.ObjectID) error     { return nil }
func (s *roleStubUserService) DeleteAgentProperties(context.Context, string) (int64, error) {
	return 0, nil
}

func newRoleTestRouter(userService services.UserService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	verifier := &fakeVerifier{sessions: map[string]auth.Session{
		"admin-token": {Email: "admin@example.com"},
		"agent-token": {Email: "agent@example.com"},
		"user-token":  {Email: "user@example.com"},
	}}

	router := gin.New()
	router.GET("/admin", Auth(verifier), AdminOnly(userService), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/agent", Auth(verifier), AgentOnly(userService), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestRoleGates(t *testing.T) {
	userService := &roleStubUserService{roles: map[string]models.UserRole{
		"admin@example.com": models.RoleAdmin,
		"agent@example.com": models.RoleAgent,
		"user@example.com":  models.RoleUser,
	}}
	router := newRoleTestRouter(userService)

	cases := []struct {
		name   string
		path   string
		token  string
		status int
	}{
		{"admin allowed on admin route", "/admin", "admin-token", http.StatusOK},
		{"agent forbidden on admin route", "/admin", "agent-token", http.StatusForbidden},
		{"plain user forbidden on admin route", "/admin", "user-token", http.StatusForbidden},
		{"agent allowed on agent route", "/agent", "agent-token", http.StatusOK},
		{"admin forbidden on agent route", "/agent", "admin-token", http.StatusForbidden},
		{"no token rejected", "/admin", "", http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, tc.path, nil)
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			router.ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestRoleGateUnknownUser(t *testing.T) {
	router := newRoleTestRouter(&roleStubUserService{roles: map[string]models.UserRole{}})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
