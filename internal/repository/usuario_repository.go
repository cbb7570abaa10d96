package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/project-admin/internal/database"
	"github.com/yukikurage/project-admin/internal/models"
)

var TablaUsuarios = database.Tabla{Nombre: "usuarios", Llave: "id_usuario"}

// SQLUsuarioRepository runs the employee catalog statements.
type SQLUsuarioRepository struct {
	catalogo
}

// NewUsuarioRepository creates a new UsuarioRepository
func NewUsuarioRepository(dc *database.DataContext) UsuarioRepository {
	return &SQLUsuarioRepository{catalogo{dc: dc, tabla: TablaUsuarios}}
}

const (
	columnasUsuario = "u.id_usuario, u.nombre, u.apellido_paterno, u.apellido_materno, u.usuario, " +
		"u.correo, u.telefono, u.id_puesto, p.nombre AS nombre_puesto, "
	fromUsuarios = "usuarios u LEFT JOIN puestos p ON p.id_puesto = u.id_puesto"
)

func (r *SQLUsuarioRepository) Listar(ctx context.Context, f Filtro) ([]models.Usuario, int64, error) {
	q := filtrar(f, "u", "id_puesto", "nombre", "apellido_paterno", "apellido_materno", "usuario", "correo")
	usuarios, total, err := listar[models.Usuario](ctx, r.dc, fromUsuarios, columnasUsuario+columnasAuditoria("u"),
		"u.apellido_paterno, u.nombre", f, q)
	if err != nil {
		return nil, 0, fmt.Errorf("listar usuarios: %w", err)
	}
	return usuarios, total, nil
}

func (r *SQLUsuarioRepository) Obtener(ctx context.Context, id uint64) (*models.Usuario, error) {
	sql := "SELECT " + columnasUsuario + "u.foto, " + columnasAuditoria("u") + " FROM " + fromUsuarios + " WHERE u.id_usuario = ?"
	return obtener[models.Usuario](ctx, r.dc, sql, id)
}

func (r *SQLUsuarioRepository) ObtenerPorUsuario(ctx context.Context, usuario string) (*models.Usuario, error) {
	sql := "SELECT " + columnasUsuario + "u.contrasena, " + columnasAuditoria("u") + " FROM " + fromUsuarios +
		" WHERE LOWER(u.usuario) = LOWER(?)"
	var u models.Usuario
	if err := r.dc.QueryRow(ctx, &u, sql, usuario); err != nil {
		if errors.Is(err, database.ErrRegistroNoEncontrado) {
			return nil, err
		}
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	return &u, nil
}

func (r *SQLUsuarioRepository) Insertar(ctx context.Context, u *models.Usuario, actor string) error {
	u.Auditoria = r.alta(actor)
	if err := r.dc.Insert(ctx, u); err != nil {
		return fmt.Errorf("insertar usuario: %w", err)
	}
	return nil
}

func (r *SQLUsuarioRepository) Actualizar(ctx context.Context, u *models.Usuario, actor string) error {
	sets := []string{
		"nombre = ?", "apellido_paterno = ?", "apellido_materno = ?", "usuario = ?",
		"correo = ?", "telefono = ?", "id_puesto = ?",
	}
	args := []interface{}{u.Nombre, u.ApellidoPaterno, u.ApellidoMaterno, u.Usuario, u.Correo, u.Telefono, u.IdPuesto}
	if u.Foto != nil {
		sets = append(sets, "foto = ?")
		args = append(args, u.Foto)
	}
	return r.actualizar(ctx, u.IdUsuario, actor, sets, args)
}

func (r *SQLUsuarioRepository) ActualizarContrasena(ctx context.Context, id uint64, hash string, actor string) error {
	return r.actualizar(ctx, id, actor, []string{"contrasena = ?"}, []interface{}{hash})
}
