package services

import (
	"context"
	"strings"

	"github.com/yukikurage/project-admin/internal/dto"
	"github.com/yukikurage/project-admin/internal/events"
	"github.com/yukikurage/project-admin/internal/models"
	"github.com/yukikurage/project-admin/internal/repository"
)

// ClienteUsuarioService manages the contact people of each client.
type ClienteUsuarioService struct {
	*Catalogo[models.ClienteUsuario]
	clientes repository.Catalogo
}

func NewClienteUsuarioService(repo repository.ClienteUsuarioRepository, clientes repository.Catalogo, publisher events.Publisher) *ClienteUsuarioService {
	return &ClienteUsuarioService{
		Catalogo: nuevoCatalogo("ClientesUsuarios", "usuario de cliente", repo, publisher,
			func(cu *models.ClienteUsuario) uint64 { return cu.IdClienteUsuario }),
		clientes: clientes,
	}
}

func (s *ClienteUsuarioService) Agregar(ctx context.Context, in dto.ClienteUsuarioInput, actor string) (*models.ClienteUsuario, error) {
	contacto := clienteUsuarioDesdeInput(in)
	if err := s.validar(ctx, contacto, 0); err != nil {
		return nil, err
	}
	return s.insertar(ctx, contacto, actor)
}

func (s *ClienteUsuarioService) Editar(ctx context.Context, id uint64, in dto.ClienteUsuarioInput, actor string) (*models.ClienteUsuario, error) {
	if _, err := s.Obtener(ctx, id); err != nil {
		return nil, err
	}
	contacto := clienteUsuarioDesdeInput(in)
	contacto.IdClienteUsuario = id
	if err := s.validar(ctx, contacto, id); err != nil {
		return nil, err
	}
	return s.actualizar(ctx, contacto, actor)
}

func (s *ClienteUsuarioService) validar(ctx context.Context, cu *models.ClienteUsuario, excluirID uint64) error {
	v := &validacion{}
	v.requerido(cu.Nombre, "Nombre")
	validarArchivo(v, cu.Foto, "foto")
	if cu.IdCliente == 0 {
		v.agregar("El campo Cliente es obligatorio.")
	} else if err := validarPadre(ctx, v, s.clientes, cu.IdCliente, "cliente"); err != nil {
		return err
	}

	if err := s.validarUnicos(ctx, v, excluirID,
		campoUnico("Teléfono", "telefono", cu.Telefono),
		campoUnico("Correo", "correo", cu.Correo),
	); err != nil {
		return err
	}
	return v.err()
}

func clienteUsuarioDesdeInput(in dto.ClienteUsuarioInput) *models.ClienteUsuario {
	return &models.ClienteUsuario{
		IdCliente: in.IdCliente,
		Nombre:    strings.TrimSpace(in.Nombre),
		Puesto:    strings.TrimSpace(in.Puesto),
		Correo:    strings.ToLower(strings.TrimSpace(in.Correo)),
		Telefono:  strings.TrimSpace(in.Telefono),
		Foto:      in.Foto,
	}
}
