package interactions

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	featureservice "github.com/bungee-astro/tracker-api/internal/feature/service"
)

// RegisterRoutes registers the Discord interactions ingress route.
func RegisterRoutes(r *gin.Engine, publicKey string, features featureservice.Service, logger *zap.SugaredLogger) {
	h := New(publicKey, features, logger)

	r.POST("/api/webhooks/discord", h.Receive)
}
