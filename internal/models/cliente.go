package models

type Cliente struct {
	IdCliente   uint64 `gorm:"column:id_cliente;primarykey" json:"IdCliente"`
	Nombre      string `gorm:"column:nombre;type:varchar(150);not null" json:"Nombre"`
	RazonSocial string `gorm:"column:razon_social;type:varchar(250)" json:"RazonSocial"`
	RFC         string `gorm:"column:rfc;type:varchar(13);not null" json:"RFC"`
	Telefono    string `gorm:"column:telefono;type:varchar(20)" json:"Telefono"`
	Correo      string `gorm:"column:correo;type:varchar(150)" json:"Correo"`
	Direccion   string `gorm:"column:direccion;type:varchar(300)" json:"Direccion"`
	Logo        []byte `gorm:"column:logo" json:"Logo,omitempty"`
	Auditoria   `gorm:"embedded"`
}

func (Cliente) TableName() string { return "clientes" }
