package middleware

import (
	"context"
	"errors"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yukikurage/project-admin/internal/constants"
	apierrors "github.com/yukikurage/project-admin/internal/errors"
	"github.com/yukikurage/project-admin/internal/models"
	"github.com/yukikurage/project-admin/internal/services"
)

// UsuarioLoader loads the employee behind a session.
type UsuarioLoader interface {
	ObtenerUsuario(ctx context.Context, id uint64) (*models.Usuario, error)
}

// RequireActiveUser runs after RequireAuth and ends sessions whose employee
// was deactivated or no longer exists.
func RequireActiveUser(loader UsuarioLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := GetUserIDNumber(c)
		if !ok {
			terminarSesion(c)
			return
		}

		usuario, err := loader.ObtenerUsuario(c.Request.Context(), id)
		switch {
		case errors.Is(err, services.ErrNoEncontrado), errors.Is(err, services.ErrUsuarioInactivo):
			zerolog.Ctx(c.Request.Context()).Info().Err(err).
				Str("id_usuario", strconv.FormatUint(id, 10)).
				Msg("session rejected")
			terminarSesion(c)
			return
		case err != nil:
			// transient lookup failures keep the session
			apierrors.DesdeError(c, err)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUsuario, usuario)
		c.Next()
	}
}

// GetUsuario returns the employee stored by RequireActiveUser.
func GetUsuario(c *gin.Context) (*models.Usuario, bool) {
	v, exists := c.Get(constants.ContextKeyUsuario)
	if !exists {
		return nil, false
	}
	usuario, ok := v.(*models.Usuario)
	return usuario, ok
}

func terminarSesion(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	_ = session.Save()
	rechazar(c)
}
