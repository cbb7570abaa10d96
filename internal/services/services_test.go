package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-admin/internal/database"
	"github.com/yukikurage/project-admin/internal/database/databasetest"
	"github.com/yukikurage/project-admin/internal/dto"
	"github.com/yukikurage/project-admin/internal/events"
	"github.com/yukikurage/project-admin/internal/models"
	"github.com/yukikurage/project-admin/internal/repository"
)

var ahora = time.Date(2024, 5, 6, 9, 30, 0, 0, time.UTC)

type recordingPublisher struct {
	mu      sync.Mutex
	eventos []events.Evento
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Evento) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.eventos = append(p.eventos, e)
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) tipos() []events.Tipo {
	p.mu.Lock()
	defer p.mu.Unlock()
	tipos := make([]events.Tipo, len(p.eventos))
	for i, e := range p.eventos {
		tipos[i] = e.Tipo
	}
	return tipos
}

type fixture struct {
	dc        *database.DataContext
	publisher *recordingPublisher
	clientes  *ClienteService
	puestos   *PuestoService
	usuarios  *UsuarioService
	contactos *ClienteUsuarioService
	sistemas  *SistemaService
	modulos   *ModuloSistemaService
	proyectos *EstatusProyectoService
	tareas    *EstatusTareaService
	auth      *AuthService
}

func newFixture(t *testing.T, sugeridor Sugeridor) *fixture {
	t.Helper()
	dc := databasetest.DataContext(t, ahora)
	pub := &recordingPublisher{}

	clienteRepo := repository.NewClienteRepository(dc)
	puestoRepo := repository.NewPuestoRepository(dc)
	usuarioRepo := repository.NewUsuarioRepository(dc)
	sistemaRepo := repository.NewSistemaRepository(dc)

	return &fixture{
		dc:        dc,
		publisher: pub,
		clientes:  NewClienteService(clienteRepo, pub),
		puestos:   NewPuestoService(puestoRepo, pub),
		usuarios:  NewUsuarioService(usuarioRepo, puestoRepo, pub),
		contactos: NewClienteUsuarioService(repository.NewClienteUsuarioRepository(dc), clienteRepo, pub),
		sistemas:  NewSistemaService(sistemaRepo, clienteRepo, pub),
		modulos:   NewModuloSistemaService(repository.NewModuloSistemaRepository(dc), sistemaRepo, sugeridor, pub),
		proyectos: NewEstatusProyectoService(repository.NewEstatusProyectoRepository(dc), pub),
		tareas:    NewEstatusTareaService(repository.NewEstatusTareaRepository(dc), pub),
		auth:      NewAuthService(usuarioRepo),
	}
}

func acme() dto.ClienteInput {
	return dto.ClienteInput{
		Nombre:   "Acme",
		RFC:      "ACM010101AB1",
		Telefono: "5551234567",
		Correo:   "contacto@acme.mx",
	}
}

func requireValidation(t *testing.T, err error) *ValidationError {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	return verr
}

func TestClienteService_DuplicateRFC(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.clientes.Agregar(ctx, acme(), "1")
	require.NoError(t, err)

	otro := dto.ClienteInput{Nombre: "Otra empresa", RFC: "acm010101ab1"}
	_, err = f.clientes.Agregar(ctx, otro, "1")
	verr := requireValidation(t, err)
	require.Contains(t, verr.Mensaje, "RFC")
	require.Equal(t, []string{"Ya existe un cliente con el mismo RFC."}, verr.Errores)
}

func TestClienteService_ReportsEveryDuplicate(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.clientes.Agregar(ctx, acme(), "1")
	require.NoError(t, err)

	in := acme()
	in.Nombre = "ACME"
	_, err = f.clientes.Agregar(ctx, in, "1")
	verr := requireValidation(t, err)
	require.Len(t, verr.Errores, 4)
	require.Contains(t, verr.Mensaje, "Nombre")
	require.Contains(t, verr.Mensaje, "RFC")
	require.Contains(t, verr.Mensaje, "Teléfono")
	require.Contains(t, verr.Mensaje, "Correo")
}

func TestClienteService_DuplicateAgainstInactiveRow(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	c, err := f.clientes.Agregar(ctx, acme(), "1")
	require.NoError(t, err)
	require.NoError(t, f.clientes.Desactivar(ctx, c.IdCliente, "1"))

	_, err = f.clientes.Agregar(ctx, acme(), "1")
	requireValidation(t, err)
}

func TestPuestoService_DuplicateNameBeyondASCII(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.puestos.Agregar(ctx, dto.PuestoInput{Nombre: "DISEÑADOR"}, "1")
	require.NoError(t, err)

	_, err = f.puestos.Agregar(ctx, dto.PuestoInput{Nombre: "diseñador"}, "1")
	verr := requireValidation(t, err)
	require.Equal(t, []string{"Ya existe un puesto con el mismo Nombre."}, verr.Errores)
}

func TestClienteService_InvalidRFC(t *testing.T) {
	f := newFixture(t, nil)

	in := acme()
	in.RFC = "12345"
	_, err := f.clientes.Agregar(context.Background(), in, "1")
	verr := requireValidation(t, err)
	require.Contains(t, verr.Mensaje, "formato")
}

func TestClienteService_EditKeepsOwnValues(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	c, err := f.clientes.Agregar(ctx, acme(), "1")
	require.NoError(t, err)

	in := acme()
	in.Direccion = "Av. Reforma 1"
	editado, err := f.clientes.Editar(ctx, c.IdCliente, in, "2")
	require.NoError(t, err)
	require.Equal(t, "Av. Reforma 1", editado.Direccion)
	require.Equal(t, "2", *editado.IdUsuarioModificacion)
	require.True(t, editado.FechaModificacion.Equal(ahora))
}

func TestClienteService_EditUnknown(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.clientes.Editar(context.Background(), 404, acme(), "1")
	require.ErrorIs(t, err, ErrNoEncontrado)
}

func TestCatalogo_DeactivateAndReactivate(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	p, err := f.puestos.Agregar(ctx, dto.PuestoInput{Nombre: "Tester"}, "1")
	require.NoError(t, err)

	require.NoError(t, f.puestos.Desactivar(ctx, p.IdPuesto, "7"))
	baja, err := f.puestos.Obtener(ctx, p.IdPuesto)
	require.NoError(t, err)
	require.False(t, baja.FlgActivo)
	require.Equal(t, "7", *baja.IdUsuarioBaja)
	require.True(t, baja.FechaBaja.Equal(ahora))

	require.ErrorIs(t, f.puestos.Desactivar(ctx, p.IdPuesto, "7"), ErrYaInactivo)

	require.NoError(t, f.puestos.Activar(ctx, p.IdPuesto, "8"))
	alta, err := f.puestos.Obtener(ctx, p.IdPuesto)
	require.NoError(t, err)
	require.True(t, alta.FlgActivo)
	require.Equal(t, "8", *alta.IdUsuarioModificacion)
	require.Equal(t, "7", *alta.IdUsuarioBaja)

	require.ErrorIs(t, f.puestos.Activar(ctx, p.IdPuesto, "8"), ErrYaActivo)
	require.ErrorIs(t, f.puestos.Activar(ctx, 999, "8"), ErrNoEncontrado)

	require.Equal(t, []events.Tipo{events.Agregado, events.Desactivado, events.Activado}, f.publisher.tipos())
}

func TestUsuarioService_TemporaryPassword(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	p, err := f.puestos.Agregar(ctx, dto.PuestoInput{Nombre: "Desarrollador"}, "1")
	require.NoError(t, err)

	u, err := f.usuarios.Agregar(ctx, dto.UsuarioInput{
		Nombre:          "Ana",
		ApellidoPaterno: "López",
		Usuario:         "ALopez",
		IdPuesto:        p.IdPuesto,
	}, "1")
	require.NoError(t, err)
	require.Equal(t, "alopez", u.Usuario)
	require.NotEmpty(t, u.ContrasenaTemporal)
	require.Empty(t, u.Contrasena)

	login, err := f.auth.Login(ctx, "alopez", u.ContrasenaTemporal)
	require.NoError(t, err)
	require.Equal(t, u.IdUsuario, login.IdUsuario)

	_, err = f.auth.Login(ctx, "alopez", "incorrecta")
	require.ErrorIs(t, err, ErrCredencialesInvalidas)
	_, err = f.auth.Login(ctx, "nadie", "incorrecta")
	require.ErrorIs(t, err, ErrCredencialesInvalidas)

	require.NoError(t, f.usuarios.Desactivar(ctx, u.IdUsuario, "1"))
	_, err = f.auth.Login(ctx, "alopez", u.ContrasenaTemporal)
	require.ErrorIs(t, err, ErrUsuarioInactivo)
}

func TestUsuarioService_Validation(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	p, err := f.puestos.Agregar(ctx, dto.PuestoInput{Nombre: "Analista"}, "1")
	require.NoError(t, err)
	require.NoError(t, f.puestos.Desactivar(ctx, p.IdPuesto, "1"))

	_, err = f.usuarios.Agregar(ctx, dto.UsuarioInput{
		Nombre:          "Luis",
		ApellidoPaterno: "Pérez",
		Usuario:         "lperez",
		Contrasena:      "corta",
		IdPuesto:        p.IdPuesto,
	}, "1")
	verr := requireValidation(t, err)
	require.Contains(t, verr.Errores, "La contraseña debe tener al menos 8 caracteres.")
	require.Contains(t, verr.Errores, "El puesto seleccionado está inactivo.")
}

func TestUsuarioService_CambiarContrasena(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	p, err := f.puestos.Agregar(ctx, dto.PuestoInput{Nombre: "Lider"}, "1")
	require.NoError(t, err)
	u, err := f.usuarios.Agregar(ctx, dto.UsuarioInput{
		Nombre: "Eva", ApellidoPaterno: "Ruiz", Usuario: "eruiz",
		Contrasena: "secreta123", IdPuesto: p.IdPuesto,
	}, "1")
	require.NoError(t, err)
	require.Empty(t, u.ContrasenaTemporal)

	err = f.usuarios.CambiarContrasena(ctx, u.IdUsuario, dto.CambiarContrasenaInput{Actual: "otra", Nueva: "nueva12345"}, "1")
	require.ErrorIs(t, err, ErrCredencialesInvalidas)

	err = f.usuarios.CambiarContrasena(ctx, u.IdUsuario, dto.CambiarContrasenaInput{Actual: "secreta123", Nueva: "x"}, "1")
	require.ErrorIs(t, err, ErrContrasenaCorta)

	err = f.usuarios.CambiarContrasena(ctx, u.IdUsuario, dto.CambiarContrasenaInput{Actual: "secreta123", Nueva: "nueva12345"}, "1")
	require.NoError(t, err)

	_, err = f.auth.Login(ctx, "eruiz", "nueva12345")
	require.NoError(t, err)
}

func TestUsuarioService_PasswordOverBcryptLimit(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	p, err := f.puestos.Agregar(ctx, dto.PuestoInput{Nombre: "Soporte"}, "1")
	require.NoError(t, err)

	// 40 characters but 80 bytes
	larga := strings.Repeat("ñ", 40)

	_, err = f.usuarios.Agregar(ctx, dto.UsuarioInput{
		Nombre: "Raúl", ApellidoPaterno: "Díaz", Usuario: "rdiaz",
		Contrasena: larga, IdPuesto: p.IdPuesto,
	}, "1")
	verr := requireValidation(t, err)
	require.Contains(t, verr.Errores, "La contraseña no puede exceder 72 bytes.")

	u, err := f.usuarios.Agregar(ctx, dto.UsuarioInput{
		Nombre: "Raúl", ApellidoPaterno: "Díaz", Usuario: "rdiaz",
		Contrasena: strings.Repeat("a", 72), IdPuesto: p.IdPuesto,
	}, "1")
	require.NoError(t, err)

	err = f.usuarios.CambiarContrasena(ctx, u.IdUsuario, dto.CambiarContrasenaInput{Actual: strings.Repeat("a", 72), Nueva: larga}, "1")
	require.ErrorIs(t, err, ErrContrasenaLarga)

	_, err = f.auth.Login(ctx, "rdiaz", strings.Repeat("a", 72))
	require.NoError(t, err)
}

func TestClienteUsuarioService_RequiresActiveClient(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.contactos.Agregar(ctx, dto.ClienteUsuarioInput{IdCliente: 50, Nombre: "Juan"}, "1")
	verr := requireValidation(t, err)
	require.Equal(t, "El cliente seleccionado no existe.", verr.Mensaje)

	c, err := f.clientes.Agregar(ctx, acme(), "1")
	require.NoError(t, err)
	_, err = f.contactos.Agregar(ctx, dto.ClienteUsuarioInput{IdCliente: c.IdCliente, Nombre: "Juan", Correo: "juan@acme.mx"}, "1")
	require.NoError(t, err)

	_, err = f.contactos.Agregar(ctx, dto.ClienteUsuarioInput{IdCliente: c.IdCliente, Nombre: "Pedro", Correo: "JUAN@acme.mx"}, "1")
	verr = requireValidation(t, err)
	require.Contains(t, verr.Mensaje, "Correo")
}

func TestClienteUsuarioService_RejectsLargePhoto(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	c, err := f.clientes.Agregar(ctx, acme(), "1")
	require.NoError(t, err)

	_, err = f.contactos.Agregar(ctx, dto.ClienteUsuarioInput{
		IdCliente: c.IdCliente,
		Nombre:    "Juan",
		Foto:      make([]byte, 3<<20),
	}, "1")
	verr := requireValidation(t, err)
	require.Contains(t, verr.Mensaje, "tamaño máximo")
}

func TestModuloSistemaService_NameScopedBySystem(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	c, err := f.clientes.Agregar(ctx, acme(), "1")
	require.NoError(t, err)
	erp, err := f.sistemas.Agregar(ctx, dto.SistemaInput{IdCliente: c.IdCliente, Nombre: "ERP"}, "1")
	require.NoError(t, err)
	crm, err := f.sistemas.Agregar(ctx, dto.SistemaInput{IdCliente: c.IdCliente, Nombre: "CRM"}, "1")
	require.NoError(t, err)

	_, err = f.modulos.Agregar(ctx, dto.ModuloSistemaInput{IdSistema: erp.IdSistema, Nombre: "Reportes"}, "1")
	require.NoError(t, err)
	_, err = f.modulos.Agregar(ctx, dto.ModuloSistemaInput{IdSistema: crm.IdSistema, Nombre: "Reportes"}, "1")
	require.NoError(t, err)

	_, err = f.modulos.Agregar(ctx, dto.ModuloSistemaInput{IdSistema: erp.IdSistema, Nombre: "reportes"}, "1")
	verr := requireValidation(t, err)
	require.Equal(t, "Ya existe un módulo con el mismo Nombre.", verr.Mensaje)
}

type fakeSugeridor struct {
	modulos    []ModuloSugerido
	existentes []string
}

func (f *fakeSugeridor) SugerirModulos(_ context.Context, _ models.Sistema, existentes []string) ([]ModuloSugerido, error) {
	f.existentes = existentes
	return f.modulos, nil
}

func TestModuloSistemaService_SugerirModulos(t *testing.T) {
	sugeridor := &fakeSugeridor{modulos: []ModuloSugerido{
		{Nombre: "Inventario"},
		{Nombre: "compras"},
		{Nombre: "Facturación"},
		{Nombre: "facturación"},
		{Nombre: " "},
	}}
	f := newFixture(t, sugeridor)
	ctx := context.Background()

	c, err := f.clientes.Agregar(ctx, acme(), "1")
	require.NoError(t, err)
	erp, err := f.sistemas.Agregar(ctx, dto.SistemaInput{IdCliente: c.IdCliente, Nombre: "ERP"}, "1")
	require.NoError(t, err)
	_, err = f.modulos.Agregar(ctx, dto.ModuloSistemaInput{IdSistema: erp.IdSistema, Nombre: "Compras"}, "1")
	require.NoError(t, err)

	sugeridos, err := f.modulos.SugerirModulos(ctx, erp.IdSistema)
	require.NoError(t, err)
	require.Equal(t, []string{"Compras"}, sugeridor.existentes)
	require.Len(t, sugeridos, 2)
	require.Equal(t, "Inventario", sugeridos[0].Nombre)
	require.Equal(t, "Facturación", sugeridos[1].Nombre)

	_, err = f.modulos.SugerirModulos(ctx, 999)
	require.ErrorIs(t, err, ErrNoEncontrado)
}

func TestModuloSistemaService_SugerirWithoutProvider(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.modulos.SugerirModulos(context.Background(), 1)
	require.ErrorIs(t, err, ErrSugerenciasNoDisponibles)
}

func TestEstatusService_Color(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	e, err := f.proyectos.Agregar(ctx, dto.EstatusInput{Nombre: "En curso", Color: "#00ff00"}, "1")
	require.NoError(t, err)
	require.Equal(t, "#00FF00", e.Color)

	_, err = f.tareas.Agregar(ctx, dto.EstatusInput{Nombre: "En curso"}, "1")
	require.NoError(t, err)

	_, err = f.proyectos.Agregar(ctx, dto.EstatusInput{Nombre: "en curso"}, "1")
	verr := requireValidation(t, err)
	require.Contains(t, verr.Mensaje, "Nombre")
}

func TestCrearAdministrador(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	admin, err := CrearAdministrador(ctx, f.puestos, f.usuarios, "admin", "")
	require.NoError(t, err)
	require.NotEmpty(t, admin.ContrasenaTemporal)

	_, err = f.auth.Login(ctx, "admin", admin.ContrasenaTemporal)
	require.NoError(t, err)

	// a second run reuses the position and rejects the duplicated login
	_, err = CrearAdministrador(ctx, f.puestos, f.usuarios, "admin", "")
	require.Error(t, err)
	puestos, total, err := f.puestos.Listar(ctx, repository.Filtro{})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Equal(t, "Administrador", puestos[0].Nombre)
}
