package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oztrk/teacherhub/internal/app/state"
)

// HealthController serves the health-check endpoint.
type HealthController struct {
	state *state.AppState
}

// NewHealthController creates a new HealthController.
func NewHealthController(appState *state.AppState) *HealthController {
	return &HealthController{
		state: appState,
	}
}

// HealthCheck responds with the banner and the visit count
// @Summary Health check
// @Description Returns the health banner together with how often it has been asked
// @Tags health
// @Produce json
// @Success 200 {string} string "Health response"
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.state.Visit())
}
