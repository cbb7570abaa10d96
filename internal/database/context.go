package database

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrRegistroNoEncontrado = errors.New("registro no encontrado")
	ErrRegistroInactivo     = errors.New("el registro ya se encuentra inactivo")
	ErrRegistroActivo       = errors.New("el registro ya se encuentra activo")
)

// DataContext is the thin holder every repository runs its SQL through.
// It wraps either the connection or an open transaction.
type DataContext struct {
	db  *gorm.DB
	now func() time.Time
}

// NewDataContext wraps db.
func NewDataContext(db *gorm.DB) *DataContext {
	return &DataContext{db: db, now: time.Now}
}

// WithClock returns a copy that stamps audit columns with now.
func (dc *DataContext) WithClock(now func() time.Time) *DataContext {
	clone := *dc
	clone.now = now
	return &clone
}

// Now is the timestamp written into audit columns.
func (dc *DataContext) Now() time.Time {
	return dc.now()
}

// DB exposes the GORM handle bound to ctx.
func (dc *DataContext) DB(ctx context.Context) *gorm.DB {
	return dc.db.WithContext(ctx)
}

// Query scans every row of sql into dest (a pointer to a slice).
func (dc *DataContext) Query(ctx context.Context, dest interface{}, sql string, args ...interface{}) error {
	return dc.DB(ctx).Raw(sql, args...).Scan(dest).Error
}

// QueryRow scans the first row of sql into dest and reports
// ErrRegistroNoEncontrado when the statement yields nothing.
func (dc *DataContext) QueryRow(ctx context.Context, dest interface{}, sql string, args ...interface{}) error {
	res := dc.DB(ctx).Raw(sql, args...).Scan(dest)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRegistroNoEncontrado
	}
	return nil
}

// Count runs a SELECT COUNT(*) statement.
func (dc *DataContext) Count(ctx context.Context, sql string, args ...interface{}) (int64, error) {
	var n int64
	if err := dc.DB(ctx).Raw(sql, args...).Scan(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// Exec runs a statement and returns the affected row count.
func (dc *DataContext) Exec(ctx context.Context, sql string, args ...interface{}) (int64, error) {
	res := dc.DB(ctx).Exec(sql, args...)
	return res.RowsAffected, res.Error
}

// Insert persists a new row and fills its generated key.
func (dc *DataContext) Insert(ctx context.Context, value interface{}) error {
	return dc.DB(ctx).Create(value).Error
}

// WithTransaction runs fn inside a transaction; fn receives a DataContext
// bound to it. Returning an error rolls back.
func (dc *DataContext) WithTransaction(ctx context.Context, fn func(tx *DataContext) error) error {
	return dc.DB(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&DataContext{db: tx, now: dc.now})
	})
}
