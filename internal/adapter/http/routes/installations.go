package routes

import (
	"agenda_rastreadores/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathInstallations = "/installations"
)

func addInstallationRoutes(rg *gin.RouterGroup, h *handlers.InstallationHandler) {
	installations := rg.Group(PathInstallations)
	{
		// Mutação única do ciclo de vida (observação, devolução, reagendamento, status, edição).
		installations.POST("/update", h.UpdateInstallation)
		installations.POST("", h.CreateInstallation)

		// Visões de consulta; rotas fixas antes de /:id.
		installations.GET("/agenda", h.Agenda)
		installations.GET("/search", h.Search)
		installations.GET("/dashboard", h.Dashboard)
		installations.GET("/:id", h.GetInstallation)
	}
}
