package routes

import (
	"github.com/Govind-619/CorpSite/config"
	"github.com/Govind-619/CorpSite/controllers"
	"github.com/Govind-619/CorpSite/middleware"
	"github.com/Govind-619/CorpSite/services"
	"github.com/Govind-619/CorpSite/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MaxBodyBytes caps every request body
const MaxBodyBytes = 10 << 20

// Dependencies are the collaborators the router is built from
type Dependencies struct {
	Config  *config.Config
	DB      *gorm.DB
	Gateway services.Gateway
	// Limiter may be nil, which disables rate limiting
	Limiter middleware.Limiter
}

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter(deps Dependencies) *gin.Engine {
	router := gin.New()

	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware(deps.Config.CORSOrigins))
	router.Use(utils.SecurityHeadersMiddleware())
	router.Use(utils.BodyLimitMiddleware(MaxBodyBytes))

	contents := newContentServices(deps.DB)

	api := router.Group("/api")
	{
		api.GET("/health", controllers.NewHealthController(deps.DB).Health)

		initPaymentRoutes(api, deps, contents)
		initContentRoutes(api, contents)
	}

	return router
}
