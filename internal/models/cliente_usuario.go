package models

// ClienteUsuario is a contact person on the client side.
type ClienteUsuario struct {
	IdClienteUsuario uint64 `gorm:"column:id_cliente_usuario;primarykey" json:"IdClienteUsuario"`
	IdCliente        uint64 `gorm:"column:id_cliente;not null;index" json:"IdCliente"`
	Nombre           string `gorm:"column:nombre;type:varchar(200);not null" json:"Nombre"`
	Puesto           string `gorm:"column:puesto;type:varchar(100)" json:"Puesto"`
	Correo           string `gorm:"column:correo;type:varchar(150)" json:"Correo"`
	Telefono         string `gorm:"column:telefono;type:varchar(20)" json:"Telefono"`
	Foto             []byte `gorm:"column:foto" json:"Foto,omitempty"`
	Auditoria        `gorm:"embedded"`

	NombreCliente string `gorm:"->;column:nombre_cliente;-:migration" json:"NombreCliente,omitempty"`
}

func (ClienteUsuario) TableName() string { return "clientes_usuarios" }
