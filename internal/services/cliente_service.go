package services

import (
	"context"
	"regexp"
	"strings"

	"github.com/yukikurage/project-admin/internal/dto"
	"github.com/yukikurage/project-admin/internal/events"
	"github.com/yukikurage/project-admin/internal/models"
	"github.com/yukikurage/project-admin/internal/repository"
)

// personas morales have 12 characters, personas físicas 13
var rfcPattern = regexp.MustCompile(`^[A-ZÑ&]{3,4}[0-9]{6}[A-Z0-9]{3}$`)

// ClienteService manages the client catalog.
type ClienteService struct {
	*Catalogo[models.Cliente]
}

// NewClienteService creates a new ClienteService.
func NewClienteService(repo repository.ClienteRepository, publisher events.Publisher) *ClienteService {
	return &ClienteService{
		Catalogo: nuevoCatalogo("Clientes", "cliente", repo, publisher,
			func(c *models.Cliente) uint64 { return c.IdCliente }),
	}
}

// Agregar validates and inserts a new client.
func (s *ClienteService) Agregar(ctx context.Context, in dto.ClienteInput, actor string) (*models.Cliente, error) {
	cliente := clienteDesdeInput(in)
	if err := s.validar(ctx, cliente, 0); err != nil {
		return nil, err
	}
	return s.insertar(ctx, cliente, actor)
}

// Editar validates and updates an existing client.
func (s *ClienteService) Editar(ctx context.Context, id uint64, in dto.ClienteInput, actor string) (*models.Cliente, error) {
	if _, err := s.Obtener(ctx, id); err != nil {
		return nil, err
	}
	cliente := clienteDesdeInput(in)
	cliente.IdCliente = id
	if err := s.validar(ctx, cliente, id); err != nil {
		return nil, err
	}
	return s.actualizar(ctx, cliente, actor)
}

func (s *ClienteService) validar(ctx context.Context, c *models.Cliente, excluirID uint64) error {
	v := &validacion{}
	v.requerido(c.Nombre, "Nombre")
	v.requerido(c.RFC, "RFC")
	if c.RFC != "" && !rfcPattern.MatchString(c.RFC) {
		v.agregar("El RFC %s no tiene un formato válido.", c.RFC)
	}
	validarArchivo(v, c.Logo, "logo")

	if err := s.validarUnicos(ctx, v, excluirID,
		campoUnico("Nombre", "nombre", c.Nombre),
		campoUnico("RFC", "rfc", c.RFC),
		campoUnico("Teléfono", "telefono", c.Telefono),
		campoUnico("Correo", "correo", c.Correo),
	); err != nil {
		return err
	}
	return v.err()
}

func clienteDesdeInput(in dto.ClienteInput) *models.Cliente {
	return &models.Cliente{
		Nombre:      strings.TrimSpace(in.Nombre),
		RazonSocial: strings.TrimSpace(in.RazonSocial),
		RFC:         strings.ToUpper(strings.TrimSpace(in.RFC)),
		Telefono:    strings.TrimSpace(in.Telefono),
		Correo:      strings.ToLower(strings.TrimSpace(in.Correo)),
		Direccion:   strings.TrimSpace(in.Direccion),
		Logo:        in.Logo,
	}
}
