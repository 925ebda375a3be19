package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "agenda_rastreadores/internal/adapter/http/dto/request"
	response "agenda_rastreadores/internal/adapter/http/dto/response"
	"agenda_rastreadores/internal/adapter/http/middleware"
	"agenda_rastreadores/internal/domain/entities"
	"agenda_rastreadores/internal/domain/lifecycle"
	"agenda_rastreadores/internal/usecase"
	"agenda_rastreadores/pkg"
	"agenda_rastreadores/pkg/log"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Corpo da requisição inválido", http.StatusBadRequest)
	errMissingID      = pkg.NewDomainErrorSimple("INVALID_REQUEST", "O campo id é obrigatório", http.StatusBadRequest)
)

// InstallationHandler serves the installation lifecycle and its query views.
type InstallationHandler struct {
	usecase usecase.IInstallationUseCase
	query   usecase.IInstallationQueryUseCase
}

func NewInstallationHandler(uc usecase.IInstallationUseCase, query usecase.IInstallationQueryUseCase) *InstallationHandler {
	return &InstallationHandler{usecase: uc, query: query}
}

// UpdateInstallation applies one mutation request: observation, return to
// pending, reschedule, status/schedule update or full edit.
//
// @Summary      Update an installation
// @Tags         installations
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      request.UpdateInstallationRequest  true  "Mutation request"
// @Success      200   {object}  response.MutationResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      401   {object}  pkg.HTTPError
// @Failure      403   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /installations/update [post]
func (h *InstallationHandler) UpdateInstallation(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var payload request.UpdateInstallationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	if payload.ResolveID() == "" {
		c.JSON(errMissingID.HTTPStatus, errMissingID.ToHTTPError())
		return
	}

	result, err := h.usecase.Mutate(c.Request.Context(), actor, payload.ToCommand())
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromMutation(result))
}

// CreateInstallation registers a new service request in A agendar.
//
// @Summary      Create an installation request
// @Tags         installations
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      request.CreateInstallationRequest  true  "Client and vehicle record"
// @Success      201   {object}  response.InstallationResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      403   {object}  pkg.HTTPError
// @Router       /installations [post]
func (h *InstallationHandler) CreateInstallation(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var payload request.CreateInstallationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	inst, err := h.usecase.Create(c.Request.Context(), actor, payload.ToRecord())
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromInstallation(inst))
}

// @Summary      Get an installation with its history and observations
// @Tags         installations
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Installation id"
// @Success      200  {object}  response.InstallationResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /installations/{id} [get]
func (h *InstallationHandler) GetInstallation(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	inst, err := h.usecase.GetByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromInstallation(inst))
}

// Agenda lists scheduled jobs. Technicians always get their own; admins may
// pass ?tecnico_id=.
//
// @Summary      Technician agenda
// @Tags         installations
// @Produce      json
// @Security     Bearer
// @Param        tecnico_id  query     string  false  "Technician id (admin only)"
// @Success      200         {array}   response.InstallationResponse
// @Failure      403         {object}  pkg.HTTPError
// @Router       /installations/agenda [get]
func (h *InstallationHandler) Agenda(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	list, err := h.query.Agenda(c.Request.Context(), actor, c.Query("tecnico_id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromInstallations(list))
}

// @Summary      Search installations by name or plate
// @Tags         installations
// @Produce      json
// @Security     Bearer
// @Param        q    query     string  false  "Name or plate fragment"
// @Success      200  {array}   response.InstallationResponse
// @Router       /installations/search [get]
func (h *InstallationHandler) Search(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	list, err := h.query.Search(c.Request.Context(), actor, c.Query("q"))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromInstallations(list))
}

// @Summary      Admin dashboard
// @Tags         installations
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.DashboardResponse
// @Failure      403  {object}  pkg.HTTPError
// @Router       /installations/dashboard [get]
func (h *InstallationHandler) Dashboard(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	d, err := h.query.Dashboard(c.Request.Context(), actor)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromDashboard(d))
}

func (h *InstallationHandler) actor(c *gin.Context) (entities.Actor, bool) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		h.fail(c, usecase.ErrUnauthenticated)
		return entities.Actor{}, false
	}
	return actor, true
}

func (h *InstallationHandler) fail(c *gin.Context, err error) {
	appErr := mapInstallationError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Error(err, "[installation][handler] request failed", "path", c.FullPath())
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapInstallationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInstallationID), errors.Is(err, lifecycle.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Usuário não autenticado", http.StatusUnauthorized)
	case errors.Is(err, lifecycle.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Perfil sem permissão para esta operação", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInstallationNotFound):
		return pkg.NewDomainErrorSimple("INSTALLATION_NOT_FOUND", "Instalação não encontrada", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVersionConflict):
		return pkg.NewDomainErrorSimple("VERSION_CONFLICT", "A instalação foi alterada por outro usuário", http.StatusConflict)
	case errors.Is(err, lifecycle.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", err.Error(), err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro ao atualizar instalação", err, http.StatusInternalServerError)
	}
}
