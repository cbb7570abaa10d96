package repository

import (
	"context"
	"fmt"

	"github.com/yukikurage/project-admin/internal/database"
	"github.com/yukikurage/project-admin/internal/models"
)

var TablaClientesUsuarios = database.Tabla{Nombre: "clientes_usuarios", Llave: "id_cliente_usuario"}

// SQLClienteUsuarioRepository runs the client contact statements.
type SQLClienteUsuarioRepository struct {
	catalogo
}

// NewClienteUsuarioRepository creates a new ClienteUsuarioRepository
func NewClienteUsuarioRepository(dc *database.DataContext) ClienteUsuarioRepository {
	return &SQLClienteUsuarioRepository{catalogo{dc: dc, tabla: TablaClientesUsuarios}}
}

const (
	columnasClienteUsuario = "cu.id_cliente_usuario, cu.id_cliente, cu.nombre, cu.puesto, cu.correo, cu.telefono, " +
		"c.nombre AS nombre_cliente, "
	fromClientesUsuarios = "clientes_usuarios cu LEFT JOIN clientes c ON c.id_cliente = cu.id_cliente"
)

func (r *SQLClienteUsuarioRepository) Listar(ctx context.Context, f Filtro) ([]models.ClienteUsuario, int64, error) {
	q := filtrar(f, "cu", "id_cliente", "nombre", "correo", "puesto")
	contactos, total, err := listar[models.ClienteUsuario](ctx, r.dc, fromClientesUsuarios,
		columnasClienteUsuario+columnasAuditoria("cu"), "cu.nombre", f, q)
	if err != nil {
		return nil, 0, fmt.Errorf("listar usuarios de cliente: %w", err)
	}
	return contactos, total, nil
}

func (r *SQLClienteUsuarioRepository) Obtener(ctx context.Context, id uint64) (*models.ClienteUsuario, error) {
	sql := "SELECT " + columnasClienteUsuario + "cu.foto, " + columnasAuditoria("cu") +
		" FROM " + fromClientesUsuarios + " WHERE cu.id_cliente_usuario = ?"
	return obtener[models.ClienteUsuario](ctx, r.dc, sql, id)
}

func (r *SQLClienteUsuarioRepository) Insertar(ctx context.Context, cu *models.ClienteUsuario, actor string) error {
	cu.Auditoria = r.alta(actor)
	if err := r.dc.Insert(ctx, cu); err != nil {
		return fmt.Errorf("insertar usuario de cliente: %w", err)
	}
	return nil
}

func (r *SQLClienteUsuarioRepository) Actualizar(ctx context.Context, cu *models.ClienteUsuario, actor string) error {
	sets := []string{"id_cliente = ?", "nombre = ?", "puesto = ?", "correo = ?", "telefono = ?"}
	args := []interface{}{cu.IdCliente, cu.Nombre, cu.Puesto, cu.Correo, cu.Telefono}
	if cu.Foto != nil {
		sets = append(sets, "foto = ?")
		args = append(args, cu.Foto)
	}
	return r.actualizar(ctx, cu.IdClienteUsuario, actor, sets, args)
}
