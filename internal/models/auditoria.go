package models

import "time"

// Auditoria is the audit column set shared by every catalog table.
// Rows are never deleted: FlgActivo gates deactivation and reactivation.
type Auditoria struct {
	FlgActivo             bool       `gorm:"column:flg_activo;not null" json:"FlgActivo"`
	IdUsuarioCreacion     string     `gorm:"column:id_usuario_creacion;type:varchar(50);not null" json:"IdUsuarioCreacion"`
	FechaCreacion         time.Time  `gorm:"column:fecha_creacion;not null" json:"FechaCreacion"`
	IdUsuarioModificacion *string    `gorm:"column:id_usuario_modificacion;type:varchar(50)" json:"IdUsuarioModificacion"`
	FechaModificacion     *time.Time `gorm:"column:fecha_modificacion" json:"FechaModificacion"`
	IdUsuarioBaja         *string    `gorm:"column:id_usuario_baja;type:varchar(50)" json:"IdUsuarioBaja"`
	FechaBaja             *time.Time `gorm:"column:fecha_baja" json:"FechaBaja"`
}
