package services

import (
	"context"
	"strings"

	"github.com/yukikurage/project-admin/internal/dto"
	"github.com/yukikurage/project-admin/internal/events"
	"github.com/yukikurage/project-admin/internal/models"
	"github.com/yukikurage/project-admin/internal/repository"
)

// PuestoService manages the job position catalog.
type PuestoService struct {
	*Catalogo[models.Puesto]
}

// NewPuestoService creates a new PuestoService.
func NewPuestoService(repo repository.PuestoRepository, publisher events.Publisher) *PuestoService {
	return &PuestoService{
		Catalogo: nuevoCatalogo("Puestos", "puesto", repo, publisher,
			func(p *models.Puesto) uint64 { return p.IdPuesto }),
	}
}

func (s *PuestoService) Agregar(ctx context.Context, in dto.PuestoInput, actor string) (*models.Puesto, error) {
	puesto := &models.Puesto{
		Nombre:      strings.TrimSpace(in.Nombre),
		Descripcion: strings.TrimSpace(in.Descripcion),
	}
	if err := s.validar(ctx, puesto, 0); err != nil {
		return nil, err
	}
	return s.insertar(ctx, puesto, actor)
}

func (s *PuestoService) Editar(ctx context.Context, id uint64, in dto.PuestoInput, actor string) (*models.Puesto, error) {
	if _, err := s.Obtener(ctx, id); err != nil {
		return nil, err
	}
	puesto := &models.Puesto{
		IdPuesto:    id,
		Nombre:      strings.TrimSpace(in.Nombre),
		Descripcion: strings.TrimSpace(in.Descripcion),
	}
	if err := s.validar(ctx, puesto, id); err != nil {
		return nil, err
	}
	return s.actualizar(ctx, puesto, actor)
}

func (s *PuestoService) validar(ctx context.Context, p *models.Puesto, excluirID uint64) error {
	v := &validacion{}
	v.requerido(p.Nombre, "Nombre")
	if err := s.validarUnicos(ctx, v, excluirID, campoUnico("Nombre", "nombre", p.Nombre)); err != nil {
		return err
	}
	return v.err()
}
