package routes

import (
	"net/http"

	_ "agenda_rastreadores/docs" // registers the swagger spec
	"agenda_rastreadores/internal/adapter/http/handlers"
	"agenda_rastreadores/internal/adapter/http/middleware"
	"agenda_rastreadores/internal/usecase/interfaces"
	"agenda_rastreadores/pkg/log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the collaborators the router wires into handlers.
type Dependencies struct {
	Installations  *handlers.InstallationHandler
	Identity       interfaces.IIdentityProvider
	HTTPMetrics    middleware.HTTPObserver
	MetricsHandler http.Handler
	Logger         log.Logger
}

// NewRouter builds the gin engine with every route of the service.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, deps)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if deps.MetricsHandler != nil {
		router.GET("/metrics", gin.WrapH(deps.MetricsHandler))
	}

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Rotas autenticadas
	authed := v1.Group("", middleware.Auth(deps.Identity))
	addInstallationRoutes(authed, deps.Installations)

	return router
}

func setMiddlewares(router *gin.Engine, deps Dependencies) {
	logger := deps.Logger
	if logger == nil {
		logger = log.Std()
	}
	router.Use(middleware.Recovery(logger))
	if deps.HTTPMetrics != nil {
		router.Use(middleware.Metrics(deps.HTTPMetrics))
	}
	router.Use(middleware.RequestLogger(logger))
}
