package database

import (
	"context"
	"fmt"
	"strings"
)

// Tabla names a catalog table and its identity column. Values are fixed in
// code and are interpolated into SQL text, never taken from requests.
type Tabla struct {
	Nombre string
	Llave  string
}

// Campo is one column/value pair of a duplicate check.
type Campo struct {
	Columna string
	Valor   interface{}
}

// Existe reports whether a row other than excluirID matches every campo.
// String values are compared case-insensitively.
func (dc *DataContext) Existe(ctx context.Context, t Tabla, excluirID uint64, campos ...Campo) (bool, error) {
	if len(campos) == 0 {
		return false, fmt.Errorf("existe %s: sin campos", t.Nombre)
	}

	conds := make([]string, 0, len(campos)+1)
	args := make([]interface{}, 0, len(campos)+1)
	for _, c := range campos {
		if s, ok := c.Valor.(string); ok {
			conds = append(conds, fmt.Sprintf("LOWER(%s) = ?", c.Columna))
			args = append(args, strings.ToLower(strings.TrimSpace(s)))
			continue
		}
		conds = append(conds, fmt.Sprintf("%s = ?", c.Columna))
		args = append(args, c.Valor)
	}
	if excluirID != 0 {
		conds = append(conds, fmt.Sprintf("%s <> ?", t.Llave))
		args = append(args, excluirID)
	}

	sql := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", t.Nombre, strings.Join(conds, " AND "))
	n, err := dc.Count(ctx, sql, args...)
	if err != nil {
		return false, fmt.Errorf("existe %s: %w", t.Nombre, err)
	}
	return n > 0, nil
}

type estadoFila struct {
	FlgActivo bool
}

// EstaActivo returns the active flag of a row, or ErrRegistroNoEncontrado.
func (dc *DataContext) EstaActivo(ctx context.Context, t Tabla, id uint64) (bool, error) {
	var filas []estadoFila
	sql := fmt.Sprintf("SELECT flg_activo FROM %s WHERE %s = ?", t.Nombre, t.Llave)
	if err := dc.Query(ctx, &filas, sql, id); err != nil {
		return false, fmt.Errorf("estado %s: %w", t.Nombre, err)
	}
	if len(filas) == 0 {
		return false, ErrRegistroNoEncontrado
	}
	return filas[0].FlgActivo, nil
}

// Desactivar clears the active flag and stamps the deactivation pair.
func (dc *DataContext) Desactivar(ctx context.Context, t Tabla, id uint64, actor string) error {
	sql := fmt.Sprintf(
		"UPDATE %s SET flg_activo = ?, id_usuario_baja = ?, fecha_baja = ? WHERE %s = ? AND flg_activo = ?",
		t.Nombre, t.Llave)
	n, err := dc.Exec(ctx, sql, false, actor, dc.Now(), id, true)
	if err != nil {
		return fmt.Errorf("desactivar %s: %w", t.Nombre, err)
	}
	if n > 0 {
		return nil
	}
	return dc.transicionFallida(ctx, t, id, ErrRegistroInactivo)
}

// Activar sets the active flag back and stamps the modification pair.
// The deactivation pair is left as history.
func (dc *DataContext) Activar(ctx context.Context, t Tabla, id uint64, actor string) error {
	sql := fmt.Sprintf(
		"UPDATE %s SET flg_activo = ?, id_usuario_modificacion = ?, fecha_modificacion = ? WHERE %s = ? AND flg_activo = ?",
		t.Nombre, t.Llave)
	n, err := dc.Exec(ctx, sql, true, actor, dc.Now(), id, false)
	if err != nil {
		return fmt.Errorf("activar %s: %w", t.Nombre, err)
	}
	if n > 0 {
		return nil
	}
	return dc.transicionFallida(ctx, t, id, ErrRegistroActivo)
}

// transicionFallida tells a missing row apart from one already in the target state.
func (dc *DataContext) transicionFallida(ctx context.Context, t Tabla, id uint64, yaEnEstado error) error {
	if _, err := dc.EstaActivo(ctx, t, id); err != nil {
		return err
	}
	return yaEnEstado
}
