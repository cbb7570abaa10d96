package repository

import (
	"context"
	"fmt"

	"github.com/yukikurage/project-admin/internal/database"
	"github.com/yukikurage/project-admin/internal/models"
)

var (
	TablaEstatusProyectos = database.Tabla{Nombre: "estatus_proyectos", Llave: "id_estatus_proyecto"}
	TablaEstatusTareas    = database.Tabla{Nombre: "estatus_tareas", Llave: "id_estatus_tarea"}
)

// SQLEstatusProyectoRepository runs the project status statements.
type SQLEstatusProyectoRepository struct {
	catalogo
}

// NewEstatusProyectoRepository creates a new EstatusProyectoRepository
func NewEstatusProyectoRepository(dc *database.DataContext) EstatusProyectoRepository {
	return &SQLEstatusProyectoRepository{catalogo{dc: dc, tabla: TablaEstatusProyectos}}
}

const columnasEstatusProyecto = "e.id_estatus_proyecto, e.nombre, e.descripcion, e.color, "

func (r *SQLEstatusProyectoRepository) Listar(ctx context.Context, f Filtro) ([]models.EstatusProyecto, int64, error) {
	q := filtrar(f, "e", "", "nombre", "descripcion")
	estatus, total, err := listar[models.EstatusProyecto](ctx, r.dc, "estatus_proyectos e",
		columnasEstatusProyecto+columnasAuditoria("e"), "e.nombre", f, q)
	if err != nil {
		return nil, 0, fmt.Errorf("listar estatus de proyecto: %w", err)
	}
	return estatus, total, nil
}

func (r *SQLEstatusProyectoRepository) Obtener(ctx context.Context, id uint64) (*models.EstatusProyecto, error) {
	sql := "SELECT " + columnasEstatusProyecto + columnasAuditoria("e") + " FROM estatus_proyectos e WHERE e.id_estatus_proyecto = ?"
	return obtener[models.EstatusProyecto](ctx, r.dc, sql, id)
}

func (r *SQLEstatusProyectoRepository) Insertar(ctx context.Context, e *models.EstatusProyecto, actor string) error {
	e.Auditoria = r.alta(actor)
	if err := r.dc.Insert(ctx, e); err != nil {
		return fmt.Errorf("insertar estatus de proyecto: %w", err)
	}
	return nil
}

func (r *SQLEstatusProyectoRepository) Actualizar(ctx context.Context, e *models.EstatusProyecto, actor string) error {
	return r.actualizar(ctx, e.IdEstatusProyecto, actor,
		[]string{"nombre = ?", "descripcion = ?", "color = ?"},
		[]interface{}{e.Nombre, e.Descripcion, e.Color})
}

// SQLEstatusTareaRepository runs the task status statements.
type SQLEstatusTareaRepository struct {
	catalogo
}

// NewEstatusTareaRepository creates a new EstatusTareaRepository
func NewEstatusTareaRepository(dc *database.DataContext) EstatusTareaRepository {
	return &SQLEstatusTareaRepository{catalogo{dc: dc, tabla: TablaEstatusTareas}}
}

const columnasEstatusTarea = "e.id_estatus_tarea, e.nombre, e.descripcion, e.color, "

func (r *SQLEstatusTareaRepository) Listar(ctx context.Context, f Filtro) ([]models.EstatusTarea, int64, error) {
	q := filtrar(f, "e", "", "nombre", "descripcion")
	estatus, total, err := listar[models.EstatusTarea](ctx, r.dc, "estatus_tareas e",
		columnasEstatusTarea+columnasAuditoria("e"), "e.nombre", f, q)
	if err != nil {
		return nil, 0, fmt.Errorf("listar estatus de tarea: %w", err)
	}
	return estatus, total, nil
}

func (r *SQLEstatusTareaRepository) Obtener(ctx context.Context, id uint64) (*models.EstatusTarea, error) {
	sql := "SELECT " + columnasEstatusTarea + columnasAuditoria("e") + " FROM estatus_tareas e WHERE e.id_estatus_tarea = ?"
	return obtener[models.EstatusTarea](ctx, r.dc, sql, id)
}

func (r *SQLEstatusTareaRepository) Insertar(ctx context.Context, e *models.EstatusTarea, actor string) error {
	e.Auditoria = r.alta(actor)
	if err := r.dc.Insert(ctx, e); err != nil {
		return fmt.Errorf("insertar estatus de tarea: %w", err)
	}
	return nil
}

func (r *SQLEstatusTareaRepository) Actualizar(ctx context.Context, e *models.EstatusTarea, actor string) error {
	return r.actualizar(ctx, e.IdEstatusTarea, actor,
		[]string{"nombre = ?", "descripcion = ?", "color = ?"},
		[]interface{}{e.Nombre, e.Descripcion, e.Color})
}
