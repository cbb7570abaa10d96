package repository

import (
	"context"
	"fmt"

	"github.com/yukikurage/project-admin/internal/database"
	"github.com/yukikurage/project-admin/internal/models"
)

var (
	TablaSistemas       = database.Tabla{Nombre: "sistemas", Llave: "id_sistema"}
	TablaModuloSistemas = database.Tabla{Nombre: "modulo_sistemas", Llave: "id_modulo_sistema"}
)

// SQLSistemaRepository runs the system catalog statements.
type SQLSistemaRepository struct {
	catalogo
}

// NewSistemaRepository creates a new SistemaRepository
func NewSistemaRepository(dc *database.DataContext) SistemaRepository {
	return &SQLSistemaRepository{catalogo{dc: dc, tabla: TablaSistemas}}
}

const (
	columnasSistema = "s.id_sistema, s.id_cliente, s.nombre, s.descripcion, c.nombre AS nombre_cliente, "
	fromSistemas    = "sistemas s LEFT JOIN clientes c ON c.id_cliente = s.id_cliente"
)

func (r *SQLSistemaRepository) Listar(ctx context.Context, f Filtro) ([]models.Sistema, int64, error) {
	q := filtrar(f, "s", "id_cliente", "nombre", "descripcion")
	sistemas, total, err := listar[models.Sistema](ctx, r.dc, fromSistemas, columnasSistema+columnasAuditoria("s"), "s.nombre", f, q)
	if err != nil {
		return nil, 0, fmt.Errorf("listar sistemas: %w", err)
	}
	return sistemas, total, nil
}

func (r *SQLSistemaRepository) Obtener(ctx context.Context, id uint64) (*models.Sistema, error) {
	sql := "SELECT " + columnasSistema + columnasAuditoria("s") + " FROM " + fromSistemas + " WHERE s.id_sistema = ?"
	return obtener[models.Sistema](ctx, r.dc, sql, id)
}

func (r *SQLSistemaRepository) Insertar(ctx context.Context, s *models.Sistema, actor string) error {
	s.Auditoria = r.alta(actor)
	if err := r.dc.Insert(ctx, s); err != nil {
		return fmt.Errorf("insertar sistema: %w", err)
	}
	return nil
}

func (r *SQLSistemaRepository) Actualizar(ctx context.Context, s *models.Sistema, actor string) error {
	return r.actualizar(ctx, s.IdSistema, actor,
		[]string{"id_cliente = ?", "nombre = ?", "descripcion = ?"},
		[]interface{}{s.IdCliente, s.Nombre, s.Descripcion})
}

// SQLModuloSistemaRepository runs the system module statements.
type SQLModuloSistemaRepository struct {
	catalogo
}

// NewModuloSistemaRepository creates a new ModuloSistemaRepository
func NewModuloSistemaRepository(dc *database.DataContext) ModuloSistemaRepository {
	return &SQLModuloSistemaRepository{catalogo{dc: dc, tabla: TablaModuloSistemas}}
}

const (
	columnasModulo = "m.id_modulo_sistema, m.id_sistema, m.nombre, m.descripcion, s.nombre AS nombre_sistema, "
	fromModulos    = "modulo_sistemas m LEFT JOIN sistemas s ON s.id_sistema = m.id_sistema"
)

func (r *SQLModuloSistemaRepository) Listar(ctx context.Context, f Filtro) ([]models.ModuloSistema, int64, error) {
	q := filtrar(f, "m", "id_sistema", "nombre", "descripcion")
	modulos, total, err := listar[models.ModuloSistema](ctx, r.dc, fromModulos, columnasModulo+columnasAuditoria("m"),
		"s.nombre, m.nombre", f, q)
	if err != nil {
		return nil, 0, fmt.Errorf("listar modulos: %w", err)
	}
	return modulos, total, nil
}

func (r *SQLModuloSistemaRepository) Obtener(ctx context.Context, id uint64) (*models.ModuloSistema, error) {
	sql := "SELECT " + columnasModulo + columnasAuditoria("m") + " FROM " + fromModulos + " WHERE m.id_modulo_sistema = ?"
	return obtener[models.ModuloSistema](ctx, r.dc, sql, id)
}

func (r *SQLModuloSistemaRepository) Insertar(ctx context.Context, m *models.ModuloSistema, actor string) error {
	m.Auditoria = r.alta(actor)
	if err := r.dc.Insert(ctx, m); err != nil {
		return fmt.Errorf("insertar modulo: %w", err)
	}
	return nil
}

func (r *SQLModuloSistemaRepository) Actualizar(ctx context.Context, m *models.ModuloSistema, actor string) error {
	return r.actualizar(ctx, m.IdModuloSistema, actor,
		[]string{"id_sistema = ?", "nombre = ?", "descripcion = ?"},
		[]interface{}{m.IdSistema, m.Nombre, m.Descripcion})
}
