package models

type Puesto struct {
	IdPuesto    uint64 `gorm:"column:id_puesto;primarykey" json:"IdPuesto"`
	Nombre      string `gorm:"column:nombre;type:varchar(100);not null" json:"Nombre"`
	Descripcion string `gorm:"column:descripcion;type:varchar(300)" json:"Descripcion"`
	Auditoria   `gorm:"embedded"`
}

func (Puesto) TableName() string { return "puestos" }
