package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/project-admin/internal/dto"
	"github.com/yukikurage/project-admin/internal/repository"
)

// ActorSistema stamps rows created by the command line rather than by a session.
const ActorSistema = "0"

const puestoAdministrador = "Administrador"

// CrearAdministrador creates the first employee together with the
// Administrador position when it is missing. An empty contrasena gets a
// temporary one, returned in the result.
func CrearAdministrador(ctx context.Context, puestos *PuestoService, usuarios *UsuarioService, usuario, contrasena string) (*dto.AdministradorCreado, error) {
	idPuesto, err := puestoAdmin(ctx, puestos)
	if err != nil {
		return nil, err
	}

	admin, err := usuarios.Agregar(ctx, dto.UsuarioInput{
		Nombre:          "Administrador",
		ApellidoPaterno: "Sistema",
		Usuario:         usuario,
		Contrasena:      contrasena,
		IdPuesto:        idPuesto,
	}, ActorSistema)
	if err != nil {
		return nil, fmt.Errorf("failed to create administrator: %w", err)
	}

	return &dto.AdministradorCreado{
		IdUsuario:          admin.IdUsuario,
		Usuario:            admin.Usuario,
		ContrasenaTemporal: admin.ContrasenaTemporal,
	}, nil
}

func puestoAdmin(ctx context.Context, puestos *PuestoService) (uint64, error) {
	activos := true
	existentes, _, err := puestos.Listar(ctx, repository.Filtro{Busqueda: puestoAdministrador, Activos: &activos})
	if err != nil {
		return 0, err
	}
	for _, p := range existentes {
		if p.Nombre == puestoAdministrador {
			return p.IdPuesto, nil
		}
	}

	puesto, err := puestos.Agregar(ctx, dto.PuestoInput{Nombre: puestoAdministrador, Descripcion: "Acceso total al sitio"}, ActorSistema)
	var verr *ValidationError
	if errors.As(err, &verr) {
		// same name exists but is inactive
		return 0, fmt.Errorf("position %s cannot be used: %w", puestoAdministrador, err)
	}
	if err != nil {
		return 0, err
	}
	return puesto.IdPuesto, nil
}
