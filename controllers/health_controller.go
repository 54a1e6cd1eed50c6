package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ottshare/ott-share-hub/utils"
)

// HealthController answers the liveness probe.
type HealthController struct {
	version   string
	startedAt time.Time
}

// NewHealthController creates a HealthController anchored at boot time.
func NewHealthController(version string) *HealthController {
	return &HealthController{version: version, startedAt: time.Now()}
}

// Check reports uptime and version.
func (h *HealthController) Check(ctx *gin.Context) {
	utils.Success(ctx, gin.H{
		"status":    "ok",
		"timestamp": time.Now(),
		"uptime":    time.Since(h.startedAt).Seconds(),
		"version":   h.version,
		"service":   "OTT Share Hub API",
	})
}
