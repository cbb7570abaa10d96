package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/yukikurage/project-admin/internal/database"
	"github.com/yukikurage/project-admin/internal/models"
)

// columnasAuditoria lists the audit columns, prefixed with a table alias.
func columnasAuditoria(alias string) string {
	cols := []string{
		"flg_activo", "id_usuario_creacion", "fecha_creacion",
		"id_usuario_modificacion", "fecha_modificacion",
		"id_usuario_baja", "fecha_baja",
	}
	for i, c := range cols {
		cols[i] = alias + "." + c
	}
	return strings.Join(cols, ", ")
}

// consulta accumulates WHERE conditions and their arguments.
type consulta struct {
	conds []string
	args  []interface{}
}

func (q *consulta) and(cond string, args ...interface{}) {
	q.conds = append(q.conds, cond)
	q.args = append(q.args, args...)
}

func (q *consulta) where() string {
	if len(q.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(q.conds, " AND ")
}

// filtrar translates f into conditions over alias. padre is the column that
// IdPadre applies to and may be empty; busqueda lists the LIKE columns.
func filtrar(f Filtro, alias, padre string, busqueda ...string) *consulta {
	q := &consulta{}
	if f.Activos != nil {
		q.and(alias+".flg_activo = ?", *f.Activos)
	}
	if padre != "" && f.IdPadre != 0 {
		q.and(alias+"."+padre+" = ?", f.IdPadre)
	}
	if term := strings.TrimSpace(f.Busqueda); term != "" && len(busqueda) > 0 {
		like := "%" + strings.ToLower(term) + "%"
		ors := make([]string, len(busqueda))
		args := make([]interface{}, len(busqueda))
		for i, col := range busqueda {
			ors[i] = fmt.Sprintf("LOWER(%s.%s) LIKE ?", alias, col)
			args[i] = like
		}
		q.and("("+strings.Join(ors, " OR ")+")", args...)
	}
	return q
}

// paginar returns the LIMIT/OFFSET suffix for f, empty when unpaged.
func paginar(f Filtro) (string, []interface{}) {
	if f.Tamano <= 0 {
		return "", nil
	}
	pagina := f.Pagina
	if pagina < 1 {
		pagina = 1
	}
	return " LIMIT ? OFFSET ?", []interface{}{f.Tamano, (pagina - 1) * f.Tamano}
}

// listar runs the count and the paged select sharing one filter.
func listar[T any](ctx context.Context, dc *database.DataContext, from, selectCols, orden string, f Filtro, q *consulta) ([]T, int64, error) {
	total, err := dc.Count(ctx, "SELECT COUNT(*) FROM "+from+q.where(), q.args...)
	if err != nil {
		return nil, 0, err
	}

	limit, limitArgs := paginar(f)
	sql := "SELECT " + selectCols + " FROM " + from + q.where() + " ORDER BY " + orden + limit
	args := append(append([]interface{}{}, q.args...), limitArgs...)

	rows := []T{}
	if err := dc.Query(ctx, &rows, sql, args...); err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// catalogo implements Catalogo for one table.
type catalogo struct {
	dc    *database.DataContext
	tabla database.Tabla
}

func (c catalogo) Existe(ctx context.Context, excluirID uint64, campos ...database.Campo) (bool, error) {
	return c.dc.Existe(ctx, c.tabla, excluirID, campos...)
}

func (c catalogo) EstaActivo(ctx context.Context, id uint64) (bool, error) {
	return c.dc.EstaActivo(ctx, c.tabla, id)
}

func (c catalogo) Desactivar(ctx context.Context, id uint64, actor string) error {
	return c.dc.Desactivar(ctx, c.tabla, id, actor)
}

func (c catalogo) Activar(ctx context.Context, id uint64, actor string) error {
	return c.dc.Activar(ctx, c.tabla, id, actor)
}

// alta returns the audit block of a freshly inserted row.
func (c catalogo) alta(actor string) models.Auditoria {
	return models.Auditoria{
		FlgActivo:         true,
		IdUsuarioCreacion: actor,
		FechaCreacion:     c.dc.Now(),
	}
}

// actualizar runs an UPDATE of sets for id, appending the modification pair.
// It reports ErrRegistroNoEncontrado when the row does not exist.
func (c catalogo) actualizar(ctx context.Context, id uint64, actor string, sets []string, args []interface{}) error {
	sets = append(sets, "id_usuario_modificacion = ?", "fecha_modificacion = ?")
	args = append(args, actor, c.dc.Now(), id)

	sql := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?", c.tabla.Nombre, strings.Join(sets, ", "), c.tabla.Llave)
	n, err := c.dc.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", c.tabla.Nombre, err)
	}
	if n == 0 {
		if _, err := c.EstaActivo(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// obtener loads a single row with the given select over from.
func obtener[T any](ctx context.Context, dc *database.DataContext, sql string, id uint64) (*T, error) {
	var row T
	if err := dc.QueryRow(ctx, &row, sql, id); err != nil {
		return nil, err
	}
	return &row, nil
}
