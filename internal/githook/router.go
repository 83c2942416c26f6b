package githook

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	accountrepo "github.com/bungee-astro/tracker-api/internal/account/repository"
	"github.com/bungee-astro/tracker-api/internal/attribution"
	ccservice "github.com/bungee-astro/tracker-api/internal/codechange/service"
)

// RegisterRoutes registers the GitHub webhook ingress route.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	secret string,
	aliases attribution.AliasTable,
	codeChanges ccservice.Service,
	logger *zap.SugaredLogger,
) {
	accounts := accountrepo.New(db, logger)
	h := New(secret, aliases, accounts, codeChanges, logger)

	r.POST("/api/webhooks/github", h.Receive)
}
