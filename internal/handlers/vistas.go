package handlers

import "github.com/yukikurage/project-admin/internal/models"

var vistaClientes = Vista[models.Cliente]{
	Titulo:   "Clientes",
	Singular: "cliente",
	Columnas: []Columna[models.Cliente]{
		{"Nombre", func(c *models.Cliente) string { return c.Nombre }},
		{"RFC", func(c *models.Cliente) string { return c.RFC }},
		{"Teléfono", func(c *models.Cliente) string { return c.Telefono }},
		{"Correo", func(c *models.Cliente) string { return c.Correo }},
	},
	Fila: func(c *models.Cliente) (uint64, models.Auditoria) { return c.IdCliente, c.Auditoria },
}

var vistaPuestos = Vista[models.Puesto]{
	Titulo:   "Puestos",
	Singular: "puesto",
	Columnas: []Columna[models.Puesto]{
		{"Nombre", func(p *models.Puesto) string { return p.Nombre }},
		{"Descripción", func(p *models.Puesto) string { return p.Descripcion }},
	},
	Fila: func(p *models.Puesto) (uint64, models.Auditoria) { return p.IdPuesto, p.Auditoria },
}

var vistaUsuarios = Vista[models.Usuario]{
	Titulo:   "Empleados",
	Singular: "usuario",
	Columnas: []Columna[models.Usuario]{
		{"Nombre", func(u *models.Usuario) string { return u.NombreCompleto() }},
		{"Usuario", func(u *models.Usuario) string { return u.Usuario }},
		{"Puesto", func(u *models.Usuario) string { return u.NombrePuesto }},
		{"Correo", func(u *models.Usuario) string { return u.Correo }},
	},
	Fila: func(u *models.Usuario) (uint64, models.Auditoria) { return u.IdUsuario, u.Auditoria },
}

var vistaClientesUsuarios = Vista[models.ClienteUsuario]{
	Titulo:   "Usuarios de cliente",
	Singular: "usuario de cliente",
	Columnas: []Columna[models.ClienteUsuario]{
		{"Nombre", func(cu *models.ClienteUsuario) string { return cu.Nombre }},
		{"Cliente", func(cu *models.ClienteUsuario) string { return cu.NombreCliente }},
		{"Puesto", func(cu *models.ClienteUsuario) string { return cu.Puesto }},
		{"Correo", func(cu *models.ClienteUsuario) string { return cu.Correo }},
		{"Teléfono", func(cu *models.ClienteUsuario) string { return cu.Telefono }},
	},
	Fila: func(cu *models.ClienteUsuario) (uint64, models.Auditoria) { return cu.IdClienteUsuario, cu.Auditoria },
}

var vistaSistemas = Vista[models.Sistema]{
	Titulo:   "Sistemas",
	Singular: "sistema",
	Columnas: []Columna[models.Sistema]{
		{"Nombre", func(s *models.Sistema) string { return s.Nombre }},
		{"Cliente", func(s *models.Sistema) string { return s.NombreCliente }},
		{"Descripción", func(s *models.Sistema) string { return s.Descripcion }},
	},
	Fila: func(s *models.Sistema) (uint64, models.Auditoria) { return s.IdSistema, s.Auditoria },
}

var vistaModulosSistema = Vista[models.ModuloSistema]{
	Titulo:   "Módulos de sistema",
	Singular: "módulo",
	Columnas: []Columna[models.ModuloSistema]{
		{"Nombre", func(m *models.ModuloSistema) string { return m.Nombre }},
		{"Sistema", func(m *models.ModuloSistema) string { return m.NombreSistema }},
		{"Descripción", func(m *models.ModuloSistema) string { return m.Descripcion }},
	},
	Fila: func(m *models.ModuloSistema) (uint64, models.Auditoria) { return m.IdModuloSistema, m.Auditoria },
}

var vistaEstatusProyectos = Vista[models.EstatusProyecto]{
	Titulo:   "Estatus de proyecto",
	Singular: "estatus de proyecto",
	Columnas: []Columna[models.EstatusProyecto]{
		{"Nombre", func(e *models.EstatusProyecto) string { return e.Nombre }},
		{"Descripción", func(e *models.EstatusProyecto) string { return e.Descripcion }},
		{"Color", func(e *models.EstatusProyecto) string { return e.Color }},
	},
	Fila: func(e *models.EstatusProyecto) (uint64, models.Auditoria) { return e.IdEstatusProyecto, e.Auditoria },
}

var vistaEstatusTareas = Vista[models.EstatusTarea]{
	Titulo:   "Estatus de tarea",
	Singular: "estatus de tarea",
	Columnas: []Columna[models.EstatusTarea]{
		{"Nombre", func(e *models.EstatusTarea) string { return e.Nombre }},
		{"Descripción", func(e *models.EstatusTarea) string { return e.Descripcion }},
		{"Color", func(e *models.EstatusTarea) string { return e.Color }},
	},
	Fila: func(e *models.EstatusTarea) (uint64, models.Auditoria) { return e.IdEstatusTarea, e.Auditoria },
}
