package database

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var tablaPuestos = Tabla{Nombre: "puestos", Llave: "id_puesto"}

func newMockContext(t *testing.T) (*DataContext, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return NewDataContext(db).WithClock(func() time.Time { return now }), mock
}

func TestDataContext_Count(t *testing.T) {
	dc, mock := newMockContext(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM puestos WHERE flg_activo = ?")).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	n, err := dc.Count(context.Background(), "SELECT COUNT(*) FROM puestos WHERE flg_activo = ?", true)
	require.NoError(t, err)
	require.Equal(t, int64(4), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDataContext_ExisteExcludesOwnRow(t *testing.T) {
	dc, mock := newMockContext(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM puestos WHERE LOWER(nombre) = ? AND id_puesto <> ?")).
		WithArgs("gerente", 9).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	existe, err := dc.Existe(context.Background(), tablaPuestos, 9, Campo{Columna: "nombre", Valor: "  Gerente "})
	require.NoError(t, err)
	require.False(t, existe)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDataContext_ExisteRequiresCampos(t *testing.T) {
	dc, _ := newMockContext(t)

	_, err := dc.Existe(context.Background(), tablaPuestos, 0)
	require.Error(t, err)
}

func TestDataContext_DesactivarStampsBaja(t *testing.T) {
	dc, mock := newMockContext(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE puestos SET flg_activo = ?, id_usuario_baja = ?, fecha_baja = ? WHERE id_puesto = ? AND flg_activo = ?")).
		WithArgs(false, "7", dc.Now(), 3, true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, dc.Desactivar(context.Background(), tablaPuestos, 3, "7"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDataContext_DesactivarAlreadyInactive(t *testing.T) {
	dc, mock := newMockContext(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE puestos SET flg_activo = ?")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT flg_activo FROM puestos WHERE id_puesto = ?")).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"flg_activo"}).AddRow(false))

	err := dc.Desactivar(context.Background(), tablaPuestos, 3, "7")
	require.ErrorIs(t, err, ErrRegistroInactivo)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDataContext_ActivarMissingRow(t *testing.T) {
	dc, mock := newMockContext(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE puestos SET flg_activo = ?, id_usuario_modificacion = ?, fecha_modificacion = ? WHERE id_puesto = ? AND flg_activo = ?")).
		WithArgs(true, "7", dc.Now(), 42, false).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT flg_activo FROM puestos WHERE id_puesto = ?")).
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"flg_activo"}))

	err := dc.Activar(context.Background(), tablaPuestos, 42, "7")
	require.ErrorIs(t, err, ErrRegistroNoEncontrado)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDataContext_WithTransactionRollsBack(t *testing.T) {
	dc, mock := newMockContext(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE puestos SET nombre = ?")).
		WithArgs("x").
		WillReturnError(gorm.ErrInvalidData)
	mock.ExpectRollback()

	err := dc.WithTransaction(context.Background(), func(tx *DataContext) error {
		_, err := tx.Exec(context.Background(), "UPDATE puestos SET nombre = ?", "x")
		return err
	})
	require.ErrorIs(t, err, gorm.ErrInvalidData)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDataContext_QueryRow(t *testing.T) {
	dc, mock := newMockContext(t)

	type puesto struct {
		IdPuesto uint64
		Nombre   string
	}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id_puesto, nombre FROM puestos WHERE id_puesto = ?")).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id_puesto", "nombre"}).AddRow(3, "Analista"))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id_puesto, nombre FROM puestos WHERE id_puesto = ?")).
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows([]string{"id_puesto", "nombre"}))

	var p puesto
	require.NoError(t, dc.QueryRow(context.Background(), &p, "SELECT id_puesto, nombre FROM puestos WHERE id_puesto = ?", 3))
	require.Equal(t, "Analista", p.Nombre)

	var missing puesto
	err := dc.QueryRow(context.Background(), &missing, "SELECT id_puesto, nombre FROM puestos WHERE id_puesto = ?", 4)
	require.ErrorIs(t, err, ErrRegistroNoEncontrado)
	require.NoError(t, mock.ExpectationsWereMet())
}
