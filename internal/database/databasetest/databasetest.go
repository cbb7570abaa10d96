// Package databasetest opens migrated in-memory SQLite databases for tests.
package databasetest

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-admin/internal/database"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var seq atomic.Int64

// Open returns a fresh, migrated database private to t.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	// a named shared-cache memory db keeps every pooled connection on the same data
	dsn := fmt.Sprintf("file:pmadmin_test_%d?mode=memory&cache=shared", seq.Add(1))
	dialector, err := database.Open("sqlite", dsn)
	require.NoError(t, err)
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db, zerolog.Nop()))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

// FixedClock returns a clock frozen at the given instant.
func FixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

// DataContext returns a DataContext over a fresh database with a frozen clock.
func DataContext(t *testing.T, at time.Time) *database.DataContext {
	t.Helper()
	return database.NewDataContext(Open(t)).WithClock(FixedClock(at))
}
