package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/z-labo/master-defence-faculty/api/models"
	"github.com/z-labo/master-defence-faculty/scoring"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

func (c *HealthController) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/health", c.health)
	engine.GET("/", c.root)
	engine.POST("/", c.rootPost)
}

// health godoc
// @Summary Health check
// @Tags meta
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (c *HealthController) health(g *gin.Context) {
	g.JSON(http.StatusOK, &models.HealthResponse{
		OK:   true,
		Time: time.Now().UTC().Format(scoring.TimeFormat),
	})
}

// Plain-text liveness probe for load balancers.
func (c *HealthController) root(g *gin.Context) {
	g.String(http.StatusOK, "OK")
}

func (c *HealthController) rootPost(g *gin.Context) {
	g.JSON(http.StatusBadRequest, gin.H{
		"ok":    false,
		"error": "POST / is not supported. Use /submit_vote",
	})
}
