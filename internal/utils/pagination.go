package utils

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-admin/internal/constants"
	"github.com/yukikurage/project-admin/internal/repository"
)

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// GetPaginationParams extracts and validates pagination parameters from the request
func GetPaginationParams(c *gin.Context) PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(constants.MinPageSize)))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(constants.DefaultPageSize)))

	if page < constants.MinPageSize {
		page = constants.MinPageSize
	}
	if limit < constants.MinPageSize || limit > constants.MaxPageSize {
		limit = constants.DefaultPageSize
	}

	offset := (page - 1) * limit

	return PaginationParams{
		Page:   page,
		Limit:  limit,
		Offset: offset,
	}
}

// GetFiltro reads the list query of a catalog: activos (true/false, absent
// for both), busqueda, idPadre and the pagination parameters.
func GetFiltro(c *gin.Context) repository.Filtro {
	p := GetPaginationParams(c)
	f := repository.Filtro{
		Busqueda: strings.TrimSpace(c.Query("busqueda")),
		Pagina:   p.Page,
		Tamano:   p.Limit,
	}

	if activos, err := strconv.ParseBool(c.Query("activos")); err == nil {
		f.Activos = &activos
	}
	if idPadre, err := strconv.ParseUint(c.Query("idPadre"), 10, 64); err == nil {
		f.IdPadre = idPadre
	}
	return f
}
