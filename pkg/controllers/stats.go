package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brickbase-api-io/api/internal/auth"
	"brickbase-api-io/api/pkg/services"
	"brickbase-api-io/api/pkg/util"
)

type StatsController struct {
	statsService services.StatsService
}

func InitStatsController(statsService services.StatsService) *StatsController {
	return &StatsController{statsService: statsService}
}

// GetAdminStats handles GET /stats/admin (admin)
func (sc *StatsController) GetAdminStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		stats, err := sc.statsService.GetAdminStats(ctx)
		if err != nil {
			util.HandleError(c, http.StatusInternalServerError, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "success", stats)
	}
}

// GetAgentStats handles GET /stats/agent (agent)
func (sc *StatsController) GetAgentStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		session, err := auth.GetSession(c)
		if err != nil {
			util.HandleError(c, http.StatusUnauthorized, err)
			return
		}

		stats, err := sc.statsService.GetAgentStats(ctx, session.Email)
		if err != nil {
			util.HandleError(c, http.StatusInternalServerError, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "success", stats)
	}
}

// GetUserStats handles GET /stats/user
func (sc *StatsController) GetUserStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		session, err := auth.GetSession(c)
		if err != nil {
			util.HandleError(c, http.StatusUnauthorized, err)
			return
		}

		stats, err := sc.statsService.GetUserStats(ctx, session.Email)
		if err != nil {
			util.HandleError(c, http.StatusInternalServerError, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "success", stats)
	}
}
