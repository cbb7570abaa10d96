package database

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yukikurage/project-admin/internal/models"
	"gorm.io/gorm"
)

// Models lists every catalog table in creation order.
func Models() []interface{} {
	return []interface{}{
		&models.Puesto{},
		&models.Usuario{},
		&models.Cliente{},
		&models.ClienteUsuario{},
		&models.Sistema{},
		&models.ModuloSistema{},
		&models.EstatusProyecto{},
		&models.EstatusTarea{},
	}
}

// Migrate creates or updates the catalog tables and their lookup indexes.
func Migrate(db *gorm.DB, log zerolog.Logger) error {
	log.Info().Msg("running database migrations")
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	if err := AddIndexes(db, log); err != nil {
		return err
	}
	log.Info().Msg("database migrations completed")
	return nil
}

// AddIndexes adds the indexes used by duplicate checks and list filters.
func AddIndexes(db *gorm.DB, log zerolog.Logger) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		{"clientes", "idx_clientes_rfc", "rfc"},
		{"clientes", "idx_clientes_nombre", "nombre"},
		{"clientes", "idx_clientes_flg_activo", "flg_activo"},
		{"puestos", "idx_puestos_nombre", "nombre"},
		{"usuarios", "idx_usuarios_usuario", "usuario"},
		{"usuarios", "idx_usuarios_correo", "correo"},
		{"usuarios", "idx_usuarios_id_puesto", "id_puesto"},
		{"clientes_usuarios", "idx_clientes_usuarios_correo", "correo"},
		{"sistemas", "idx_sistemas_nombre", "nombre"},
		{"modulo_sistemas", "idx_modulo_sistemas_sistema_nombre", "id_sistema, nombre"},
		{"estatus_proyectos", "idx_estatus_proyectos_nombre", "nombre"},
		{"estatus_tareas", "idx_estatus_tareas_nombre", "nombre"},
	}

	migrator := db.Migrator()
	for _, idx := range indexes {
		if migrator.HasIndex(idx.table, idx.name) {
			log.Debug().Str("index", idx.name).Msg("index already exists, skipping")
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
		log.Debug().Str("index", idx.name).Str("table", idx.table).Msg("created index")
	}

	return nil
}
