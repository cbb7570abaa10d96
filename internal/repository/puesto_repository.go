package repository

import (
	"context"
	"fmt"

	"github.com/yukikurage/project-admin/internal/database"
	"github.com/yukikurage/project-admin/internal/models"
)

var TablaPuestos = database.Tabla{Nombre: "puestos", Llave: "id_puesto"}

// SQLPuestoRepository runs the job position catalog statements.
type SQLPuestoRepository struct {
	catalogo
}

// NewPuestoRepository creates a new PuestoRepository
func NewPuestoRepository(dc *database.DataContext) PuestoRepository {
	return &SQLPuestoRepository{catalogo{dc: dc, tabla: TablaPuestos}}
}

const columnasPuesto = "p.id_puesto, p.nombre, p.descripcion, "

func (r *SQLPuestoRepository) Listar(ctx context.Context, f Filtro) ([]models.Puesto, int64, error) {
	q := filtrar(f, "p", "", "nombre", "descripcion")
	puestos, total, err := listar[models.Puesto](ctx, r.dc, "puestos p", columnasPuesto+columnasAuditoria("p"), "p.nombre", f, q)
	if err != nil {
		return nil, 0, fmt.Errorf("listar puestos: %w", err)
	}
	return puestos, total, nil
}

func (r *SQLPuestoRepository) Obtener(ctx context.Context, id uint64) (*models.Puesto, error) {
	sql := "SELECT " + columnasPuesto + columnasAuditoria("p") + " FROM puestos p WHERE p.id_puesto = ?"
	return obtener[models.Puesto](ctx, r.dc, sql, id)
}

func (r *SQLPuestoRepository) Insertar(ctx context.Context, p *models.Puesto, actor string) error {
	p.Auditoria = r.alta(actor)
	if err := r.dc.Insert(ctx, p); err != nil {
		return fmt.Errorf("insertar puesto: %w", err)
	}
	return nil
}

func (r *SQLPuestoRepository) Actualizar(ctx context.Context, p *models.Puesto, actor string) error {
	return r.actualizar(ctx, p.IdPuesto, actor,
		[]string{"nombre = ?", "descripcion = ?"},
		[]interface{}{p.Nombre, p.Descripcion})
}
