package models

type EstatusProyecto struct {
	IdEstatusProyecto uint64 `gorm:"column:id_estatus_proyecto;primarykey" json:"IdEstatusProyecto"`
	Nombre            string `gorm:"column:nombre;type:varchar(100);not null" json:"Nombre"`
	Descripcion       string `gorm:"column:descripcion;type:varchar(300)" json:"Descripcion"`
	Color             string `gorm:"column:color;type:varchar(7)" json:"Color"`
	Auditoria         `gorm:"embedded"`
}

func (EstatusProyecto) TableName() string { return "estatus_proyectos" }

type EstatusTarea struct {
	IdEstatusTarea uint64 `gorm:"column:id_estatus_tarea;primarykey" json:"IdEstatusTarea"`
	Nombre         string `gorm:"column:nombre;type:varchar(100);not null" json:"Nombre"`
	Descripcion    string `gorm:"column:descripcion;type:varchar(300)" json:"Descripcion"`
	Color          string `gorm:"column:color;type:varchar(7)" json:"Color"`
	Auditoria      `gorm:"embedded"`
}

func (EstatusTarea) TableName() string { return "estatus_tareas" }
