package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-admin/internal/dto"
	apierrors "github.com/yukikurage/project-admin/internal/errors"
	"github.com/yukikurage/project-admin/internal/middleware"
	"github.com/yukikurage/project-admin/internal/models"
	"github.com/yukikurage/project-admin/internal/repository"
	"github.com/yukikurage/project-admin/internal/utils"
)

// CatalogoService is what CatalogoHandler needs from a catalog service.
// I is the body of Agregar and Editar.
type CatalogoService[T any, I any] interface {
	Nombre() string
	Listar(ctx context.Context, f repository.Filtro) ([]T, int64, error)
	Obtener(ctx context.Context, id uint64) (*T, error)
	Agregar(ctx context.Context, in I, actor string) (*T, error)
	Editar(ctx context.Context, id uint64, in I, actor string) (*T, error)
	Desactivar(ctx context.Context, id uint64, actor string) error
	Activar(ctx context.Context, id uint64, actor string) error
	Contar(ctx context.Context, activos *bool) (int64, error)
}

// Columna is one column of the catalog's list page.
type Columna[T any] struct {
	Titulo string
	Valor  func(*T) string
}

// Vista describes how a catalog is shown to users.
type Vista[T any] struct {
	// Titulo is the page title, plural
	Titulo string
	// Singular names one row in messages, e.g. "cliente"
	Singular string
	Columnas []Columna[T]
	// Fila returns the key and audit block of a row
	Fila func(*T) (uint64, models.Auditoria)
}

// CatalogoHandler serves the uniform actions of one catalog.
type CatalogoHandler[T any, I any] struct {
	service CatalogoService[T, I]
	vista   Vista[T]
}

// NewCatalogoHandler creates a new CatalogoHandler.
func NewCatalogoHandler[T any, I any](service CatalogoService[T, I], vista Vista[T]) *CatalogoHandler[T, I] {
	return &CatalogoHandler[T, I]{service: service, vista: vista}
}

// Register mounts the catalog under /{Catalogo} and returns the group so
// callers can add catalog-specific actions.
func (h *CatalogoHandler[T, I]) Register(r gin.IRouter) *gin.RouterGroup {
	g := r.Group("/" + h.service.Nombre())
	g.GET("", h.Index)
	g.GET("/Index", h.Index)
	g.GET("/Listar", h.Listar)
	g.GET("/Obtener/:id", middleware.RequireID(), h.Obtener)
	g.POST("/Agregar", h.Agregar)
	g.POST("/Editar/:id", middleware.RequireID(), h.Editar)
	g.POST("/Desactivar/:id", middleware.RequireID(), h.Desactivar)
	g.POST("/Activar/:id", middleware.RequireID(), h.Activar)
	return g
}

type filaVista struct {
	ID     uint64
	Activo bool
	Celdas []string
}

// Index renders the list page.
func (h *CatalogoHandler[T, I]) Index(c *gin.Context) {
	f := utils.GetFiltro(c)
	rows, total, err := h.service.Listar(c.Request.Context(), f)
	if err != nil {
		apierrors.DesdeError(c, err)
		return
	}

	columnas := make([]string, len(h.vista.Columnas))
	for i, col := range h.vista.Columnas {
		columnas[i] = col.Titulo
	}

	filas := make([]filaVista, len(rows))
	for i := range rows {
		id, auditoria := h.vista.Fila(&rows[i])
		celdas := make([]string, len(h.vista.Columnas))
		for j, col := range h.vista.Columnas {
			celdas[j] = col.Valor(&rows[i])
		}
		filas[i] = filaVista{ID: id, Activo: auditoria.FlgActivo, Celdas: celdas}
	}

	usuario, _ := middleware.GetUsuario(c)
	c.HTML(http.StatusOK, "catalogo.html", gin.H{
		"Titulo":   h.vista.Titulo,
		"Catalogo": h.service.Nombre(),
		"Usuario":  usuario,
		"Columnas": columnas,
		"Filas":    filas,
		"Busqueda": f.Busqueda,
		"Activos":  c.Query("activos"),
		"Pagina":   dto.NuevaPagina(nil, f.Pagina, f.Tamano, total),
	})
}

// Listar returns one page of rows.
func (h *CatalogoHandler[T, I]) Listar(c *gin.Context) {
	f := utils.GetFiltro(c)
	rows, total, err := h.service.Listar(c.Request.Context(), f)
	if err != nil {
		apierrors.DesdeError(c, err)
		return
	}
	apierrors.Exito(c, "", dto.NuevaPagina(rows, f.Pagina, f.Tamano, total))
}

// Obtener returns one row.
func (h *CatalogoHandler[T, I]) Obtener(c *gin.Context) {
	row, err := h.service.Obtener(c.Request.Context(), middleware.GetID(c))
	if err != nil {
		apierrors.DesdeError(c, err)
		return
	}
	apierrors.Exito(c, "", row)
}

// Agregar validates the body and creates a row.
func (h *CatalogoHandler[T, I]) Agregar(c *gin.Context) {
	var in I
	if err := c.ShouldBindJSON(&in); err != nil {
		apierrors.Binding(c, err)
		return
	}

	actor, _ := middleware.GetUserID(c)
	row, err := h.service.Agregar(c.Request.Context(), in, actor)
	if err != nil {
		apierrors.DesdeError(c, err)
		return
	}
	apierrors.Exito(c, h.mensaje("agregado"), row)
}

// Editar validates the body and updates the row.
func (h *CatalogoHandler[T, I]) Editar(c *gin.Context) {
	var in I
	if err := c.ShouldBindJSON(&in); err != nil {
		apierrors.Binding(c, err)
		return
	}

	actor, _ := middleware.GetUserID(c)
	row, err := h.service.Editar(c.Request.Context(), middleware.GetID(c), in, actor)
	if err != nil {
		apierrors.DesdeError(c, err)
		return
	}
	apierrors.Exito(c, h.mensaje("actualizado"), row)
}

// Desactivar soft-deletes the row.
func (h *CatalogoHandler[T, I]) Desactivar(c *gin.Context) {
	actor, _ := middleware.GetUserID(c)
	if err := h.service.Desactivar(c.Request.Context(), middleware.GetID(c), actor); err != nil {
		apierrors.DesdeError(c, err)
		return
	}
	apierrors.Exito(c, h.mensaje("desactivado"), nil)
}

// Activar reactivates the row.
func (h *CatalogoHandler[T, I]) Activar(c *gin.Context) {
	actor, _ := middleware.GetUserID(c)
	if err := h.service.Activar(c.Request.Context(), middleware.GetID(c), actor); err != nil {
		apierrors.DesdeError(c, err)
		return
	}
	apierrors.Exito(c, h.mensaje("activado"), nil)
}

// Resumen counts active and total rows for the dashboard.
func (h *CatalogoHandler[T, I]) Resumen(ctx context.Context) (ResumenCatalogo, error) {
	activos := true
	nActivos, err := h.service.Contar(ctx, &activos)
	if err != nil {
		return ResumenCatalogo{}, err
	}
	total, err := h.service.Contar(ctx, nil)
	if err != nil {
		return ResumenCatalogo{}, err
	}
	return ResumenCatalogo{
		Catalogo: h.service.Nombre(),
		Titulo:   h.vista.Titulo,
		Activos:  nActivos,
		Total:    total,
	}, nil
}

func (h *CatalogoHandler[T, I]) mensaje(accion string) string {
	singular := h.vista.Singular
	if singular == "" {
		return fmt.Sprintf("Registro %s correctamente.", accion)
	}
	return strings.ToUpper(singular[:1]) + singular[1:] + " " + accion + " correctamente."
}
