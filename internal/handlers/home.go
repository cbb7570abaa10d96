package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/project-admin/internal/errors"
	"github.com/yukikurage/project-admin/internal/middleware"
)

// ResumenCatalogo is one row of the dashboard.
type ResumenCatalogo struct {
	Catalogo string
	Titulo   string
	Activos  int64
	Total    int64
}

// Resumible is implemented by every CatalogoHandler.
type Resumible interface {
	Resumen(ctx context.Context) (ResumenCatalogo, error)
}

type HomeHandler struct {
	catalogos []Resumible
}

func NewHomeHandler(catalogos ...Resumible) *HomeHandler {
	return &HomeHandler{catalogos: catalogos}
}

// Index renders the dashboard with the size of each catalog.
func (h *HomeHandler) Index(c *gin.Context) {
	resumen := make([]ResumenCatalogo, 0, len(h.catalogos))
	for _, cat := range h.catalogos {
		r, err := cat.Resumen(c.Request.Context())
		if err != nil {
			apierrors.DesdeError(c, err)
			return
		}
		resumen = append(resumen, r)
	}

	usuario, _ := middleware.GetUsuario(c)
	c.HTML(http.StatusOK, "home.html", gin.H{
		"Titulo":  "Inicio",
		"Usuario": usuario,
		"Resumen": resumen,
	})
}
