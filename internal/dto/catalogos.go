package dto

// Request bodies of the Agregar and Editar actions. Binary fields travel as base64.

type ClienteInput struct {
	Nombre      string `json:"Nombre" binding:"required,max=150"`
	RazonSocial string `json:"RazonSocial" binding:"max=250"`
	RFC         string `json:"RFC" binding:"required,min=12,max=13"`
	Telefono    string `json:"Telefono" binding:"omitempty,max=20"`
	Correo      string `json:"Correo" binding:"omitempty,email,max=150"`
	Direccion   string `json:"Direccion" binding:"max=300"`
	Logo        []byte `json:"Logo"`
}

type PuestoInput struct {
	Nombre      string `json:"Nombre" binding:"required,max=100"`
	Descripcion string `json:"Descripcion" binding:"max=300"`
}

type UsuarioInput struct {
	Nombre          string `json:"Nombre" binding:"required,max=100"`
	ApellidoPaterno string `json:"ApellidoPaterno" binding:"required,max=100"`
	ApellidoMaterno string `json:"ApellidoMaterno" binding:"max=100"`
	Usuario         string `json:"Usuario" binding:"required,min=3,max=50"`
	// optional on add: a temporary password is generated when empty; ignored on edit
	Contrasena string `json:"Contrasena" binding:"omitempty,max=72"`
	Correo     string `json:"Correo" binding:"omitempty,email,max=150"`
	Telefono   string `json:"Telefono" binding:"omitempty,max=20"`
	IdPuesto   uint64 `json:"IdPuesto" binding:"required"`
	Foto       []byte `json:"Foto"`
}

type ClienteUsuarioInput struct {
	IdCliente uint64 `json:"IdCliente" binding:"required"`
	Nombre    string `json:"Nombre" binding:"required,max=200"`
	Puesto    string `json:"Puesto" binding:"max=100"`
	Correo    string `json:"Correo" binding:"omitempty,email,max=150"`
	Telefono  string `json:"Telefono" binding:"omitempty,max=20"`
	Foto      []byte `json:"Foto"`
}

type SistemaInput struct {
	IdCliente   uint64 `json:"IdCliente" binding:"required"`
	Nombre      string `json:"Nombre" binding:"required,max=150"`
	Descripcion string `json:"Descripcion" binding:"max=500"`
}

type ModuloSistemaInput struct {
	IdSistema   uint64 `json:"IdSistema" binding:"required"`
	Nombre      string `json:"Nombre" binding:"required,max=150"`
	Descripcion string `json:"Descripcion" binding:"max=500"`
}

// EstatusInput serves both project and task statuses.
type EstatusInput struct {
	Nombre      string `json:"Nombre" binding:"required,max=100"`
	Descripcion string `json:"Descripcion" binding:"max=300"`
	Color       string `json:"Color" binding:"omitempty,hexcolor,len=7"`
}

type LoginInput struct {
	Usuario    string `json:"Usuario" form:"Usuario" binding:"required"`
	Contrasena string `json:"Contrasena" form:"Contrasena" binding:"required"`
}

type CambiarContrasenaInput struct {
	Actual string `json:"Actual" binding:"required"`
	Nueva  string `json:"Nueva" binding:"required,max=72"`
}

// AdministradorCreado is printed by the crear-admin command.
type AdministradorCreado struct {
	IdUsuario          uint64 `json:"IdUsuario"`
	Usuario            string `json:"Usuario"`
	ContrasenaTemporal string `json:"ContrasenaTemporal,omitempty"`
}
