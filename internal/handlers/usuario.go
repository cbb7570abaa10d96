package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-admin/internal/dto"
	apierrors "github.com/yukikurage/project-admin/internal/errors"
	"github.com/yukikurage/project-admin/internal/middleware"
	"github.com/yukikurage/project-admin/internal/services"
)

// UsuarioHandler holds the employee actions beyond the catalog ones.
type UsuarioHandler struct {
	service *services.UsuarioService
}

func NewUsuarioHandler(service *services.UsuarioService) *UsuarioHandler {
	return &UsuarioHandler{service: service}
}

// CambiarContrasena changes the password of the signed-in employee.
func (h *UsuarioHandler) CambiarContrasena(c *gin.Context) {
	var req dto.CambiarContrasenaInput
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.Binding(c, err)
		return
	}

	id, ok := middleware.GetUserIDNumber(c)
	if !ok {
		apierrors.NoAutenticado(c, "")
		return
	}
	actor, _ := middleware.GetUserID(c)

	if err := h.service.CambiarContrasena(c.Request.Context(), id, req, actor); err != nil {
		apierrors.DesdeError(c, err)
		return
	}
	apierrors.Exito(c, "Contraseña actualizada correctamente.", nil)
}
