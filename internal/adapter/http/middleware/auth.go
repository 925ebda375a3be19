package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"agenda_rastreadores/internal/domain/entities"
	"agenda_rastreadores/internal/usecase/interfaces"
	"agenda_rastreadores/pkg"
	"agenda_rastreadores/pkg/log"
)

const actorContextKey = "agenda.actor"

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Token de autenticação ausente", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Token de autenticação inválido ou expirado", http.StatusUnauthorized)
)

// Auth verifies the bearer token with the identity provider and stores the
// resolved actor in the gin context.
func Auth(provider interfaces.IIdentityProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		actor, err := provider.VerifyToken(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, interfaces.ErrInvalidToken) {
				c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
				return
			}
			log.Error(err, "[auth][middleware] identity provider failure")
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "Falha ao validar autenticação", err, http.StatusInternalServerError)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Set(actorContextKey, actor)
		c.Next()
	}
}

// ActorFromContext returns the actor stored by Auth.
func ActorFromContext(c *gin.Context) (entities.Actor, bool) {
	v, ok := c.Get(actorContextKey)
	if !ok {
		return entities.Actor{}, false
	}
	actor, ok := v.(entities.Actor)
	return actor, ok
}

// SetActor stores actor the way Auth does.
func SetActor(c *gin.Context, actor entities.Actor) {
	c.Set(actorContextKey, actor)
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
