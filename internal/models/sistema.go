package models

type Sistema struct {
	IdSistema   uint64 `gorm:"column:id_sistema;primarykey" json:"IdSistema"`
	IdCliente   uint64 `gorm:"column:id_cliente;not null;index" json:"IdCliente"`
	Nombre      string `gorm:"column:nombre;type:varchar(150);not null" json:"Nombre"`
	Descripcion string `gorm:"column:descripcion;type:varchar(500)" json:"Descripcion"`
	Auditoria   `gorm:"embedded"`

	NombreCliente string `gorm:"->;column:nombre_cliente;-:migration" json:"NombreCliente,omitempty"`
}

func (Sistema) TableName() string { return "sistemas" }

type ModuloSistema struct {
	IdModuloSistema uint64 `gorm:"column:id_modulo_sistema;primarykey" json:"IdModuloSistema"`
	IdSistema       uint64 `gorm:"column:id_sistema;not null;index" json:"IdSistema"`
	Nombre          string `gorm:"column:nombre;type:varchar(150);not null" json:"Nombre"`
	Descripcion     string `gorm:"column:descripcion;type:varchar(500)" json:"Descripcion"`
	Auditoria       `gorm:"embedded"`

	NombreSistema string `gorm:"->;column:nombre_sistema;-:migration" json:"NombreSistema,omitempty"`
}

func (ModuloSistema) TableName() string { return "modulo_sistemas" }
