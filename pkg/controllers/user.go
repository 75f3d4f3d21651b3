package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"brickbase-api-io/api/internal/auth"
	"brickbase-api-io/api/internal/common"
	"brickbase-api-io/api/internal/helpers"
	"brickbase-api-io/api/internal/middleware"
	"brickbase-api-io/api/pkg/models"
	"brickbase-api-io/api/pkg/services"
	"brickbase-api-io/api/pkg/util"
)

type UserController struct {
	userService services.UserService
}

func InitUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// CreateUser handles POST /users
func (uc *UserController) CreateUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		var req models.UserRequest
		if !BindJSONAndValidate(c, &req) {
			return
		}

		userID, inserted, err := uc.userService.CreateUser(ctx, req)
		if err != nil {
			util.HandleError(c, http.StatusInternalServerError, err)
			return
		}

		if !inserted {
			util.HandleSuccess(c, http.StatusOK, "User already exists", gin.H{
				"inserted": false,
				"userId":   userID.Hex(),
			})
			return
		}

		util.HandleSuccess(c, http.StatusCreated, "User created successfully", gin.H{
			"inserted": true,
			"userId":   userID.Hex(),
		})
	}
}

// GetUserRole handles GET /users/role/:email
func (uc *UserController) GetUserRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		email := c.Param("email")
		if common.IsEmptyString(email) {
			util.HandleError(c, http.StatusBadRequest, errors.New("email is required"))
			return
		}

		role, err := uc.userService.GetUserRole(ctx, email)
		if err != nil {
			util.HandleError(c, http.StatusNotFound, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "success", gin.H{"role": role})
	}
}

// GetProfile handles GET /users/profile/:email
func (uc *UserController) GetProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		email := c.Param("email")
		session, err := auth.GetSession(c)
		if err != nil {
			util.HandleError(c, http.StatusUnauthorized, err)
			return
		}

		if session.Email != email && !middleware.IsAdmin(c, uc.userService) {
			util.HandleError(c, http.StatusForbidden, errors.New("cannot read another user's profile"))
			return
		}

		user, err := uc.userService.GetUserByEmail(ctx, email)
		if err != nil {
			util.HandleError(c, http.StatusNotFound, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "success", user)
	}
}

// UpdateProfile handles PATCH /users
func (uc *UserController) UpdateProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		session, err := auth.GetSession(c)
		if err != nil {
			util.HandleError(c, http.StatusUnauthorized, err)
			return
		}

		var req models.UserProfileUpdateRequest
		if !BindJSONAndValidate(c, &req) {
			return
		}

		if err := uc.userService.UpdateProfile(ctx, session.Email, req); err != nil {
			if err == services.ErrNotFound {
				util.HandleError(c, http.StatusNotFound, err)
				return
			}
			util.HandleError(c, http.StatusInternalServerError, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "Profile updated successfully", gin.H{"email": session.Email})
	}
}

// GetSocialLinks handles GET /users/socials?email=
func (uc *UserController) GetSocialLinks() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		email := c.Query("email")
		if common.IsEmptyString(email) {
			util.HandleError(c, http.StatusBadRequest, errors.New("email is required"))
			return
		}

		socials, err := uc.userService.GetSocialLinks(ctx, email)
		if err != nil {
			util.HandleError(c, http.StatusNotFound, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "success", socials)
	}
}

// GetUsers handles GET /users (admin)
func (uc *UserController) GetUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		paginationArgs := helpers.GetPaginationArgs(c)

		users, count, err := uc.userService.GetUsers(ctx, paginationArgs)
		if err != nil {
			util.HandleError(c, http.StatusInternalServerError, err)
			return
		}

		util.HandleSuccessMeta(c, http.StatusOK, "success", users, gin.H{
			"pagination": util.Pagination{
				Limit: paginationArgs.Limit,
				Skip:  paginationArgs.Skip,
				Count: count,
			},
		})
	}
}

// MakeAdmin handles PATCH /users/admin/:id (admin)
func (uc *UserController) MakeAdmin() gin.HandlerFunc {
	return uc.setRole(models.RoleAdmin)
}

// MakeAgent handles PATCH /users/agent/:id (admin)
func (uc *UserController) MakeAgent() gin.HandlerFunc {
	return uc.setRole(models.RoleAgent)
}

func (uc *UserController) setRole(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		userID, ok := ParseObjectIDParam(c, "id")
		if !ok {
			return
		}

		if err := uc.userService.SetUserRole(ctx, userID, role); err != nil {
			if err == services.ErrNotFound {
				util.HandleError(c, http.StatusNotFound, err)
				return
			}
			util.HandleError(c, http.StatusInternalServerError, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "Role updated successfully", gin.H{
			"userId": userID.Hex(),
			"role":   role,
		})
	}
}

// MarkFraudulent handles PATCH /users/fraud/:id (admin). The flag does
// not cascade; DeleteAgentProperties is the companion operation.
func (uc *UserController) MarkFraudulent() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		userID, ok := ParseObjectIDParam(c, "id")
		if !ok {
			return
		}

		if err := uc.userService.MarkFraudulent(ctx, userID); err != nil {
			if err == services.ErrNotFound {
				util.HandleError(c, http.StatusNotFound, err)
				return
			}
			util.HandleError(c, http.StatusInternalServerError, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "User marked as fraudulent", gin.H{"userId": userID.Hex()})
	}
}

// DeleteAgentProperties handles DELETE /users/agent-listings/:email (admin)
func (uc *UserController) DeleteAgentProperties() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		email := c.Param("email")
		if common.IsEmptyString(email) {
			util.HandleError(c, http.StatusBadRequest, errors.New("email is required"))
			return
		}

		deleted, err := uc.userService.DeleteAgentProperties(ctx, email)
		if err != nil {
			util.HandleError(c, http.StatusInternalServerError, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "Agent properties deleted", gin.H{
			"agentEmail":   email,
			"deletedCount": deleted,
		})
	}
}

// DeleteUser handles DELETE /users/:id (admin)
func (uc *UserController) DeleteUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		userID, ok := ParseObjectIDParam(c, "id")
		if !ok {
			return
		}

		if err := uc.userService.DeleteUser(ctx, userID); err != nil {
			util.HandleError(c, http.StatusNotFound, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "User deleted successfully", gin.H{"userId": userID.Hex()})
	}
}
