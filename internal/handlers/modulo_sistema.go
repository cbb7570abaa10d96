package handlers

import (
	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/project-admin/internal/errors"
	"github.com/yukikurage/project-admin/internal/middleware"
	"github.com/yukikurage/project-admin/internal/services"
)

type ModuloSistemaHandler struct {
	service *services.ModuloSistemaService
}

func NewModuloSistemaHandler(service *services.ModuloSistemaService) *ModuloSistemaHandler {
	return &ModuloSistemaHandler{service: service}
}

// Sugerir proposes modules for the system :id. Nothing is stored; the
// client adds the ones it wants through Agregar.
func (h *ModuloSistemaHandler) Sugerir(c *gin.Context) {
	sugeridos, err := h.service.SugerirModulos(c.Request.Context(), middleware.GetID(c))
	if err != nil {
		apierrors.DesdeError(c, err)
		return
	}
	if len(sugeridos) == 0 {
		apierrors.Exito(c, "No hay módulos nuevos que sugerir.", sugeridos)
		return
	}
	apierrors.Exito(c, "Módulos sugeridos.", sugeridos)
}
