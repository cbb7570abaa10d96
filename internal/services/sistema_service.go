package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/project-admin/internal/database"
	"github.com/yukikurage/project-admin/internal/dto"
	"github.com/yukikurage/project-admin/internal/events"
	"github.com/yukikurage/project-admin/internal/models"
	"github.com/yukikurage/project-admin/internal/repository"
)

// SistemaService manages the systems built for each client.
type SistemaService struct {
	*Catalogo[models.Sistema]
	clientes repository.Catalogo
}

func NewSistemaService(repo repository.SistemaRepository, clientes repository.Catalogo, publisher events.Publisher) *SistemaService {
	return &SistemaService{
		Catalogo: nuevoCatalogo("Sistemas", "sistema", repo, publisher,
			func(s *models.Sistema) uint64 { return s.IdSistema }),
		clientes: clientes,
	}
}

func (s *SistemaService) Agregar(ctx context.Context, in dto.SistemaInput, actor string) (*models.Sistema, error) {
	sistema := &models.Sistema{
		IdCliente:   in.IdCliente,
		Nombre:      strings.TrimSpace(in.Nombre),
		Descripcion: strings.TrimSpace(in.Descripcion),
	}
	if err := s.validar(ctx, sistema, 0); err != nil {
		return nil, err
	}
	return s.insertar(ctx, sistema, actor)
}

func (s *SistemaService) Editar(ctx context.Context, id uint64, in dto.SistemaInput, actor string) (*models.Sistema, error) {
	if _, err := s.Obtener(ctx, id); err != nil {
		return nil, err
	}
	sistema := &models.Sistema{
		IdSistema:   id,
		IdCliente:   in.IdCliente,
		Nombre:      strings.TrimSpace(in.Nombre),
		Descripcion: strings.TrimSpace(in.Descripcion),
	}
	if err := s.validar(ctx, sistema, id); err != nil {
		return nil, err
	}
	return s.actualizar(ctx, sistema, actor)
}

func (s *SistemaService) validar(ctx context.Context, sis *models.Sistema, excluirID uint64) error {
	v := &validacion{}
	v.requerido(sis.Nombre, "Nombre")
	if sis.IdCliente == 0 {
		v.agregar("El campo Cliente es obligatorio.")
	} else if err := validarPadre(ctx, v, s.clientes, sis.IdCliente, "cliente"); err != nil {
		return err
	}
	if err := s.validarUnicos(ctx, v, excluirID, campoUnico("Nombre", "nombre", sis.Nombre)); err != nil {
		return err
	}
	return v.err()
}

// ModuloSistemaService manages the modules of each system.
type ModuloSistemaService struct {
	*Catalogo[models.ModuloSistema]
	sistemas  repository.SistemaRepository
	sugeridor Sugeridor
}

// NewModuloSistemaService creates the service. sugeridor may be nil, which
// disables SugerirModulos.
func NewModuloSistemaService(repo repository.ModuloSistemaRepository, sistemas repository.SistemaRepository, sugeridor Sugeridor, publisher events.Publisher) *ModuloSistemaService {
	return &ModuloSistemaService{
		Catalogo: nuevoCatalogo("ModulosSistema", "módulo", repo, publisher,
			func(m *models.ModuloSistema) uint64 { return m.IdModuloSistema }),
		sistemas:  sistemas,
		sugeridor: sugeridor,
	}
}

func (s *ModuloSistemaService) Agregar(ctx context.Context, in dto.ModuloSistemaInput, actor string) (*models.ModuloSistema, error) {
	modulo := &models.ModuloSistema{
		IdSistema:   in.IdSistema,
		Nombre:      strings.TrimSpace(in.Nombre),
		Descripcion: strings.TrimSpace(in.Descripcion),
	}
	if err := s.validar(ctx, modulo, 0); err != nil {
		return nil, err
	}
	return s.insertar(ctx, modulo, actor)
}

func (s *ModuloSistemaService) Editar(ctx context.Context, id uint64, in dto.ModuloSistemaInput, actor string) (*models.ModuloSistema, error) {
	if _, err := s.Obtener(ctx, id); err != nil {
		return nil, err
	}
	modulo := &models.ModuloSistema{
		IdModuloSistema: id,
		IdSistema:       in.IdSistema,
		Nombre:          strings.TrimSpace(in.Nombre),
		Descripcion:     strings.TrimSpace(in.Descripcion),
	}
	if err := s.validar(ctx, modulo, id); err != nil {
		return nil, err
	}
	return s.actualizar(ctx, modulo, actor)
}

func (s *ModuloSistemaService) validar(ctx context.Context, m *models.ModuloSistema, excluirID uint64) error {
	v := &validacion{}
	v.requerido(m.Nombre, "Nombre")
	if m.IdSistema == 0 {
		v.agregar("El campo Sistema es obligatorio.")
	} else if err := validarPadre(ctx, v, s.sistemas, m.IdSistema, "sistema"); err != nil {
		return err
	}

	// module names repeat freely across systems
	alcance := database.Campo{Columna: "id_sistema", Valor: m.IdSistema}
	if err := s.validarUnicos(ctx, v, excluirID, campoUnico("Nombre", "nombre", m.Nombre, alcance)); err != nil {
		return err
	}
	return v.err()
}

// SugerirModulos asks the suggestion service for modules the system may
// need, skipping names it already has. Nothing is persisted.
func (s *ModuloSistemaService) SugerirModulos(ctx context.Context, idSistema uint64) ([]ModuloSugerido, error) {
	if s.sugeridor == nil {
		return nil, ErrSugerenciasNoDisponibles
	}

	sistema, err := s.sistemas.Obtener(ctx, idSistema)
	if err != nil {
		if errors.Is(err, database.ErrRegistroNoEncontrado) {
			return nil, ErrNoEncontrado
		}
		return nil, fmt.Errorf("failed to find sistema: %w", err)
	}

	activos := true
	existentes, _, err := s.Listar(ctx, repository.Filtro{IdPadre: idSistema, Activos: &activos})
	if err != nil {
		return nil, err
	}
	nombres := make([]string, len(existentes))
	vistos := make(map[string]bool, len(existentes))
	for i, m := range existentes {
		nombres[i] = m.Nombre
		vistos[strings.ToLower(m.Nombre)] = true
	}

	sugeridos, err := s.sugeridor.SugerirModulos(ctx, *sistema, nombres)
	if err != nil {
		return nil, fmt.Errorf("failed to get module suggestions: %w", err)
	}

	nuevos := make([]ModuloSugerido, 0, len(sugeridos))
	for _, m := range sugeridos {
		clave := strings.ToLower(strings.TrimSpace(m.Nombre))
		if clave == "" || vistos[clave] {
			continue
		}
		vistos[clave] = true
		nuevos = append(nuevos, m)
	}
	return nuevos, nil
}
