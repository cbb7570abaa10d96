package repository

import (
	"context"

	"github.com/yukikurage/project-admin/internal/database"
	"github.com/yukikurage/project-admin/internal/models"
)

// Filtro holds the list options shared by every catalog.
type Filtro struct {
	// Activos restricts the list to active (true) or inactive (false) rows; nil lists both
	Activos *bool
	// Busqueda is matched with LIKE against the catalog's descriptive columns
	Busqueda string
	// IdPadre narrows to children of a parent row: the client for systems and
	// client users, the system for modules, the position for employees
	IdPadre uint64
	Pagina  int
	Tamano  int
}

// Catalogo covers the lifecycle operations every catalog table supports.
type Catalogo interface {
	// Existe reports whether a row other than excluirID matches all campos
	Existe(ctx context.Context, excluirID uint64, campos ...database.Campo) (bool, error)

	// EstaActivo returns the row's active flag
	EstaActivo(ctx context.Context, id uint64) (bool, error)

	// Desactivar soft-deletes a row
	Desactivar(ctx context.Context, id uint64, actor string) error

	// Activar reactivates a soft-deleted row
	Activar(ctx context.Context, id uint64, actor string) error
}

// Repository is the data access contract of one catalog.
type Repository[T any] interface {
	Catalogo

	// Listar returns one page of rows and the total matching the filter
	Listar(ctx context.Context, f Filtro) ([]T, int64, error)

	// Obtener returns a single row including binary columns
	Obtener(ctx context.Context, id uint64) (*T, error)

	// Insertar stamps the creation pair and persists a new active row
	Insertar(ctx context.Context, e *T, actor string) error

	// Actualizar writes the editable columns and stamps the modification pair
	Actualizar(ctx context.Context, e *T, actor string) error
}

type (
	ClienteRepository         = Repository[models.Cliente]
	PuestoRepository          = Repository[models.Puesto]
	ClienteUsuarioRepository  = Repository[models.ClienteUsuario]
	SistemaRepository         = Repository[models.Sistema]
	ModuloSistemaRepository   = Repository[models.ModuloSistema]
	EstatusProyectoRepository = Repository[models.EstatusProyecto]
	EstatusTareaRepository    = Repository[models.EstatusTarea]
)

// UsuarioRepository adds the credential lookups used by sign-in.
type UsuarioRepository interface {
	Repository[models.Usuario]

	// ObtenerPorUsuario finds an employee by login name, password hash included
	ObtenerPorUsuario(ctx context.Context, usuario string) (*models.Usuario, error)

	// ActualizarContrasena replaces the password hash
	ActualizarContrasena(ctx context.Context, id uint64, hash string, actor string) error
}
