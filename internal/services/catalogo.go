package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yukikurage/project-admin/internal/constants"
	"github.com/yukikurage/project-admin/internal/database"
	"github.com/yukikurage/project-admin/internal/events"
	"github.com/yukikurage/project-admin/internal/repository"
)

var nowFunc = time.Now

// Catalogo implements the operations every catalog shares: list, fetch,
// deactivate, reactivate, and the insert/update tail of add and edit.
type Catalogo[T any] struct {
	nombre    string
	entidad   string
	repo      repository.Repository[T]
	publisher events.Publisher
	llave     func(*T) uint64
}

func nuevoCatalogo[T any](nombre, entidad string, repo repository.Repository[T], publisher events.Publisher, llave func(*T) uint64) *Catalogo[T] {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &Catalogo[T]{
		nombre:    nombre,
		entidad:   entidad,
		repo:      repo,
		publisher: publisher,
		llave:     llave,
	}
}

// Nombre is the catalog name used in routes and events.
func (s *Catalogo[T]) Nombre() string {
	return s.nombre
}

// Listar returns one page of rows and the total count.
func (s *Catalogo[T]) Listar(ctx context.Context, f repository.Filtro) ([]T, int64, error) {
	rows, total, err := s.repo.Listar(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list %s: %w", s.nombre, err)
	}
	return rows, total, nil
}

// Obtener returns one row or ErrNoEncontrado.
func (s *Catalogo[T]) Obtener(ctx context.Context, id uint64) (*T, error) {
	row, err := s.repo.Obtener(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrRegistroNoEncontrado) {
			return nil, ErrNoEncontrado
		}
		return nil, fmt.Errorf("failed to find %s: %w", s.entidad, err)
	}
	return row, nil
}

// Desactivar soft-deletes a row, stamping the deactivation pair.
func (s *Catalogo[T]) Desactivar(ctx context.Context, id uint64, actor string) error {
	if err := s.repo.Desactivar(ctx, id, actor); err != nil {
		return s.falloTransicion("deactivate", err)
	}
	s.publicar(ctx, events.Desactivado, id, actor)
	return nil
}

// Activar reactivates a row, stamping the modification pair.
func (s *Catalogo[T]) Activar(ctx context.Context, id uint64, actor string) error {
	if err := s.repo.Activar(ctx, id, actor); err != nil {
		return s.falloTransicion("reactivate", err)
	}
	s.publicar(ctx, events.Activado, id, actor)
	return nil
}

func (s *Catalogo[T]) falloTransicion(op string, err error) error {
	if mapped := traducir(err); mapped != err {
		return mapped
	}
	return fmt.Errorf("failed to %s %s: %w", op, s.entidad, err)
}

func (s *Catalogo[T]) insertar(ctx context.Context, e *T, actor string) (*T, error) {
	if err := s.repo.Insertar(ctx, e, actor); err != nil {
		return nil, fmt.Errorf("failed to add %s: %w", s.entidad, err)
	}
	id := s.llave(e)
	s.publicar(ctx, events.Agregado, id, actor)
	return s.Obtener(ctx, id)
}

func (s *Catalogo[T]) actualizar(ctx context.Context, e *T, actor string) (*T, error) {
	id := s.llave(e)
	if err := s.repo.Actualizar(ctx, e, actor); err != nil {
		if errors.Is(err, database.ErrRegistroNoEncontrado) {
			return nil, ErrNoEncontrado
		}
		return nil, fmt.Errorf("failed to update %s: %w", s.entidad, err)
	}
	s.publicar(ctx, events.Editado, id, actor)
	return s.Obtener(ctx, id)
}

func (s *Catalogo[T]) publicar(ctx context.Context, tipo events.Tipo, id uint64, actor string) {
	s.publisher.Publish(ctx, events.Evento{
		Tipo:      tipo,
		Catalogo:  s.nombre,
		ID:        id,
		IdUsuario: actor,
		Fecha:     nowFunc(),
	})
}

// unico is one application-level uniqueness rule: the last campo is the
// checked value, earlier ones narrow the scope.
type unico struct {
	etiqueta string
	campos   []database.Campo
}

func campoUnico(etiqueta, columna string, valor interface{}, alcance ...database.Campo) unico {
	return unico{
		etiqueta: etiqueta,
		campos:   append(alcance, database.Campo{Columna: columna, Valor: valor}),
	}
}

func (u unico) vacio() bool {
	s, ok := u.campos[len(u.campos)-1].Valor.(string)
	return ok && strings.TrimSpace(s) == ""
}

// validarUnicos runs one count query per rule and records every duplicate.
func (s *Catalogo[T]) validarUnicos(ctx context.Context, v *validacion, excluirID uint64, unicos ...unico) error {
	for _, u := range unicos {
		if u.vacio() {
			continue
		}
		existe, err := s.repo.Existe(ctx, excluirID, u.campos...)
		if err != nil {
			return fmt.Errorf("failed to check %s %s: %w", s.entidad, u.etiqueta, err)
		}
		if existe {
			v.agregar("Ya existe un %s con el mismo %s.", s.entidad, u.etiqueta)
		}
	}
	return nil
}

// validarPadre checks that a referenced row exists and is active.
func validarPadre(ctx context.Context, v *validacion, repo repository.Catalogo, id uint64, etiqueta string) error {
	activo, err := repo.EstaActivo(ctx, id)
	switch {
	case errors.Is(err, database.ErrRegistroNoEncontrado):
		v.agregar("El %s seleccionado no existe.", etiqueta)
	case err != nil:
		return fmt.Errorf("failed to check %s: %w", etiqueta, err)
	case !activo:
		v.agregar("El %s seleccionado está inactivo.", etiqueta)
	}
	return nil
}

func validarArchivo(v *validacion, contenido []byte, etiqueta string) {
	if len(contenido) > constants.MaxBlobSize {
		v.agregar("El archivo de %s excede el tamaño máximo de %d MB.", etiqueta, constants.MaxBlobSize>>20)
	}
}

// Contar returns how many rows match activos; nil counts every row.
func (s *Catalogo[T]) Contar(ctx context.Context, activos *bool) (int64, error) {
	_, total, err := s.repo.Listar(ctx, repository.Filtro{Activos: activos, Pagina: 1, Tamano: 1})
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", s.nombre, err)
	}
	return total, nil
}
