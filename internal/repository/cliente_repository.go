package repository

import (
	"context"
	"fmt"

	"github.com/yukikurage/project-admin/internal/database"
	"github.com/yukikurage/project-admin/internal/models"
)

var TablaClientes = database.Tabla{Nombre: "clientes", Llave: "id_cliente"}

// SQLClienteRepository runs the client catalog statements.
type SQLClienteRepository struct {
	catalogo
}

// NewClienteRepository creates a new ClienteRepository
func NewClienteRepository(dc *database.DataContext) ClienteRepository {
	return &SQLClienteRepository{catalogo{dc: dc, tabla: TablaClientes}}
}

func (r *SQLClienteRepository) Listar(ctx context.Context, f Filtro) ([]models.Cliente, int64, error) {
	q := filtrar(f, "c", "", "nombre", "rfc", "razon_social")
	cols := "c.id_cliente, c.nombre, c.razon_social, c.rfc, c.telefono, c.correo, c.direccion, " + columnasAuditoria("c")
	clientes, total, err := listar[models.Cliente](ctx, r.dc, "clientes c", cols, "c.nombre", f, q)
	if err != nil {
		return nil, 0, fmt.Errorf("listar clientes: %w", err)
	}
	return clientes, total, nil
}

func (r *SQLClienteRepository) Obtener(ctx context.Context, id uint64) (*models.Cliente, error) {
	sql := "SELECT c.id_cliente, c.nombre, c.razon_social, c.rfc, c.telefono, c.correo, c.direccion, c.logo, " +
		columnasAuditoria("c") + " FROM clientes c WHERE c.id_cliente = ?"
	return obtener[models.Cliente](ctx, r.dc, sql, id)
}

func (r *SQLClienteRepository) Insertar(ctx context.Context, c *models.Cliente, actor string) error {
	c.Auditoria = r.alta(actor)
	if err := r.dc.Insert(ctx, c); err != nil {
		return fmt.Errorf("insertar cliente: %w", err)
	}
	return nil
}

func (r *SQLClienteRepository) Actualizar(ctx context.Context, c *models.Cliente, actor string) error {
	sets := []string{"nombre = ?", "razon_social = ?", "rfc = ?", "telefono = ?", "correo = ?", "direccion = ?"}
	args := []interface{}{c.Nombre, c.RazonSocial, c.RFC, c.Telefono, c.Correo, c.Direccion}
	if c.Logo != nil {
		sets = append(sets, "logo = ?")
		args = append(args, c.Logo)
	}
	return r.actualizar(ctx, c.IdCliente, actor, sets, args)
}
