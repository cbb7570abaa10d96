package services

import (
	"github.com/yukikurage/project-admin/internal/database"
	"github.com/yukikurage/project-admin/internal/events"
	"github.com/yukikurage/project-admin/internal/repository"
)

// Servicios groups every service the web layer and the CLI use.
type Servicios struct {
	Clientes         *ClienteService
	Puestos          *PuestoService
	Usuarios         *UsuarioService
	ClientesUsuarios *ClienteUsuarioService
	Sistemas         *SistemaService
	ModulosSistema   *ModuloSistemaService
	EstatusProyectos *EstatusProyectoService
	EstatusTareas    *EstatusTareaService
	Auth             *AuthService
}

// NewServicios builds the repositories over dc and the services on top.
// sugeridor may be nil.
func NewServicios(dc *database.DataContext, publisher events.Publisher, sugeridor Sugeridor) *Servicios {
	clientes := repository.NewClienteRepository(dc)
	puestos := repository.NewPuestoRepository(dc)
	usuarios := repository.NewUsuarioRepository(dc)
	sistemas := repository.NewSistemaRepository(dc)

	return &Servicios{
		Clientes:         NewClienteService(clientes, publisher),
		Puestos:          NewPuestoService(puestos, publisher),
		Usuarios:         NewUsuarioService(usuarios, puestos, publisher),
		ClientesUsuarios: NewClienteUsuarioService(repository.NewClienteUsuarioRepository(dc), clientes, publisher),
		Sistemas:         NewSistemaService(sistemas, clientes, publisher),
		ModulosSistema:   NewModuloSistemaService(repository.NewModuloSistemaRepository(dc), sistemas, sugeridor, publisher),
		EstatusProyectos: NewEstatusProyectoService(repository.NewEstatusProyectoRepository(dc), publisher),
		EstatusTareas:    NewEstatusTareaService(repository.NewEstatusTareaRepository(dc), publisher),
		Auth:             NewAuthService(usuarios),
	}
}
