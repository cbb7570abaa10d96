package services

import (
	"context"
	"strings"

	"github.com/yukikurage/project-admin/internal/dto"
	"github.com/yukikurage/project-admin/internal/events"
	"github.com/yukikurage/project-admin/internal/models"
	"github.com/yukikurage/project-admin/internal/repository"
)

// EstatusProyectoService manages the project status catalog.
type EstatusProyectoService struct {
	*Catalogo[models.EstatusProyecto]
}

func NewEstatusProyectoService(repo repository.EstatusProyectoRepository, publisher events.Publisher) *EstatusProyectoService {
	return &EstatusProyectoService{
		Catalogo: nuevoCatalogo("EstatusProyectos", "estatus de proyecto", repo, publisher,
			func(e *models.EstatusProyecto) uint64 { return e.IdEstatusProyecto }),
	}
}

func (s *EstatusProyectoService) Agregar(ctx context.Context, in dto.EstatusInput, actor string) (*models.EstatusProyecto, error) {
	nombre, descripcion, color := normalizarEstatus(in)
	estatus := &models.EstatusProyecto{Nombre: nombre, Descripcion: descripcion, Color: color}
	if err := validarEstatus(ctx, s.Catalogo, nombre, 0); err != nil {
		return nil, err
	}
	return s.insertar(ctx, estatus, actor)
}

func (s *EstatusProyectoService) Editar(ctx context.Context, id uint64, in dto.EstatusInput, actor string) (*models.EstatusProyecto, error) {
	if _, err := s.Obtener(ctx, id); err != nil {
		return nil, err
	}
	nombre, descripcion, color := normalizarEstatus(in)
	estatus := &models.EstatusProyecto{IdEstatusProyecto: id, Nombre: nombre, Descripcion: descripcion, Color: color}
	if err := validarEstatus(ctx, s.Catalogo, nombre, id); err != nil {
		return nil, err
	}
	return s.actualizar(ctx, estatus, actor)
}

// EstatusTareaService manages the task status catalog.
type EstatusTareaService struct {
	*Catalogo[models.EstatusTarea]
}

func NewEstatusTareaService(repo repository.EstatusTareaRepository, publisher events.Publisher) *EstatusTareaService {
	return &EstatusTareaService{
		Catalogo: nuevoCatalogo("EstatusTareas", "estatus de tarea", repo, publisher,
			func(e *models.EstatusTarea) uint64 { return e.IdEstatusTarea }),
	}
}

func (s *EstatusTareaService) Agregar(ctx context.Context, in dto.EstatusInput, actor string) (*models.EstatusTarea, error) {
	nombre, descripcion, color := normalizarEstatus(in)
	estatus := &models.EstatusTarea{Nombre: nombre, Descripcion: descripcion, Color: color}
	if err := validarEstatus(ctx, s.Catalogo, nombre, 0); err != nil {
		return nil, err
	}
	return s.insertar(ctx, estatus, actor)
}

func (s *EstatusTareaService) Editar(ctx context.Context, id uint64, in dto.EstatusInput, actor string) (*models.EstatusTarea, error) {
	if _, err := s.Obtener(ctx, id); err != nil {
		return nil, err
	}
	nombre, descripcion, color := normalizarEstatus(in)
	estatus := &models.EstatusTarea{IdEstatusTarea: id, Nombre: nombre, Descripcion: descripcion, Color: color}
	if err := validarEstatus(ctx, s.Catalogo, nombre, id); err != nil {
		return nil, err
	}
	return s.actualizar(ctx, estatus, actor)
}

func normalizarEstatus(in dto.EstatusInput) (nombre, descripcion, color string) {
	return strings.TrimSpace(in.Nombre), strings.TrimSpace(in.Descripcion), strings.ToUpper(strings.TrimSpace(in.Color))
}

func validarEstatus[T any](ctx context.Context, s *Catalogo[T], nombre string, excluirID uint64) error {
	v := &validacion{}
	v.requerido(nombre, "Nombre")
	if err := s.validarUnicos(ctx, v, excluirID, campoUnico("Nombre", "nombre", nombre)); err != nil {
		return err
	}
	return v.err()
}
