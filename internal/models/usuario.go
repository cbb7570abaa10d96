package models

// Usuario is an employee able to sign in to the administration site.
type Usuario struct {
	IdUsuario       uint64 `gorm:"column:id_usuario;primarykey" json:"IdUsuario"`
	Nombre          string `gorm:"column:nombre;type:varchar(100);not null" json:"Nombre"`
	ApellidoPaterno string `gorm:"column:apellido_paterno;type:varchar(100);not null" json:"ApellidoPaterno"`
	ApellidoMaterno string `gorm:"column:apellido_materno;type:varchar(100)" json:"ApellidoMaterno"`
	Usuario         string `gorm:"column:usuario;type:varchar(50);not null" json:"Usuario"`
	Contrasena      string `gorm:"column:contrasena;type:varchar(255);not null" json:"-"`
	Correo          string `gorm:"column:correo;type:varchar(150)" json:"Correo"`
	Telefono        string `gorm:"column:telefono;type:varchar(20)" json:"Telefono"`
	IdPuesto        uint64 `gorm:"column:id_puesto;not null" json:"IdPuesto"`
	Foto            []byte `gorm:"column:foto" json:"Foto,omitempty"`
	Auditoria       `gorm:"embedded"`

	// filled by list queries that join puestos
	NombrePuesto string `gorm:"->;column:nombre_puesto;-:migration" json:"NombrePuesto,omitempty"`

	// set only in the response that created the account without a password
	ContrasenaTemporal string `gorm:"-" json:"ContrasenaTemporal,omitempty"`
}

func (Usuario) TableName() string { return "usuarios" }

// NombreCompleto joins the name parts the way they are shown in lists.
func (u Usuario) NombreCompleto() string {
	nombre := u.Nombre + " " + u.ApellidoPaterno
	if u.ApellidoMaterno != "" {
		nombre += " " + u.ApellidoMaterno
	}
	return nombre
}
