package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/project-admin/internal/constants"
	"github.com/yukikurage/project-admin/internal/dto"
	"github.com/yukikurage/project-admin/internal/events"
	"github.com/yukikurage/project-admin/internal/models"
	"github.com/yukikurage/project-admin/internal/repository"
	"github.com/yukikurage/project-admin/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// UsuarioService manages the employee catalog and their credentials.
type UsuarioService struct {
	*Catalogo[models.Usuario]
	usuarios repository.UsuarioRepository
	puestos  repository.Catalogo
}

// NewUsuarioService creates a new UsuarioService.
func NewUsuarioService(repo repository.UsuarioRepository, puestos repository.Catalogo, publisher events.Publisher) *UsuarioService {
	return &UsuarioService{
		Catalogo: nuevoCatalogo[models.Usuario]("Usuarios", "usuario", repo, publisher,
			func(u *models.Usuario) uint64 { return u.IdUsuario }),
		usuarios: repo,
		puestos:  puestos,
	}
}

// Agregar creates an employee. When no password is given a temporary one is
// generated and returned once in ContrasenaTemporal.
func (s *UsuarioService) Agregar(ctx context.Context, in dto.UsuarioInput, actor string) (*models.Usuario, error) {
	usuario := usuarioDesdeInput(in)

	temporal := ""
	contrasena := in.Contrasena
	if contrasena == "" {
		generated, err := utils.GenerateTempPassword(constants.TempPasswordLength)
		if err != nil {
			return nil, err
		}
		contrasena, temporal = generated, generated
	}

	v := &validacion{}
	if len(contrasena) < constants.MinPasswordLength {
		v.agregar("La contraseña debe tener al menos %d caracteres.", constants.MinPasswordLength)
	}
	if len(contrasena) > constants.MaxPasswordBytes {
		v.agregar("La contraseña no puede exceder %d bytes.", constants.MaxPasswordBytes)
	}
	if err := s.validar(ctx, v, usuario, 0); err != nil {
		return nil, err
	}

	hash, err := hashContrasena(contrasena)
	if err != nil {
		return nil, err
	}
	usuario.Contrasena = hash

	creado, err := s.insertar(ctx, usuario, actor)
	if err != nil {
		return nil, err
	}
	creado.ContrasenaTemporal = temporal
	return creado, nil
}

// Editar updates an employee's data. The password is changed only through
// CambiarContrasena.
func (s *UsuarioService) Editar(ctx context.Context, id uint64, in dto.UsuarioInput, actor string) (*models.Usuario, error) {
	if _, err := s.Obtener(ctx, id); err != nil {
		return nil, err
	}
	usuario := usuarioDesdeInput(in)
	usuario.IdUsuario = id
	if err := s.validar(ctx, &validacion{}, usuario, id); err != nil {
		return nil, err
	}
	return s.actualizar(ctx, usuario, actor)
}

// CambiarContrasena replaces the password of id after checking the current one.
func (s *UsuarioService) CambiarContrasena(ctx context.Context, id uint64, in dto.CambiarContrasenaInput, actor string) error {
	actual, err := s.Obtener(ctx, id)
	if err != nil {
		return err
	}
	conHash, err := s.usuarios.ObtenerPorUsuario(ctx, actual.Usuario)
	if err != nil {
		return fmt.Errorf("failed to load credentials: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(conHash.Contrasena), []byte(in.Actual)); err != nil {
		return ErrCredencialesInvalidas
	}
	if len(in.Nueva) < constants.MinPasswordLength {
		return ErrContrasenaCorta
	}
	if len(in.Nueva) > constants.MaxPasswordBytes {
		return ErrContrasenaLarga
	}

	hash, err := hashContrasena(in.Nueva)
	if err != nil {
		return err
	}
	if err := s.usuarios.ActualizarContrasena(ctx, id, hash, actor); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	s.publicar(ctx, events.Editado, id, actor)
	return nil
}

func (s *UsuarioService) validar(ctx context.Context, v *validacion, u *models.Usuario, excluirID uint64) error {
	v.requerido(u.Nombre, "Nombre")
	v.requerido(u.ApellidoPaterno, "Apellido paterno")
	v.requerido(u.Usuario, "Usuario")
	if strings.ContainsAny(u.Usuario, " \t") {
		v.agregar("El usuario no puede contener espacios.")
	}
	validarArchivo(v, u.Foto, "foto")

	if u.IdPuesto == 0 {
		v.agregar("El campo Puesto es obligatorio.")
	} else if err := validarPadre(ctx, v, s.puestos, u.IdPuesto, "puesto"); err != nil {
		return err
	}

	if err := s.validarUnicos(ctx, v, excluirID,
		campoUnico("Usuario", "usuario", u.Usuario),
		campoUnico("Teléfono", "telefono", u.Telefono),
		campoUnico("Correo", "correo", u.Correo),
	); err != nil {
		return err
	}
	return v.err()
}

func usuarioDesdeInput(in dto.UsuarioInput) *models.Usuario {
	return &models.Usuario{
		Nombre:          strings.TrimSpace(in.Nombre),
		ApellidoPaterno: strings.TrimSpace(in.ApellidoPaterno),
		ApellidoMaterno: strings.TrimSpace(in.ApellidoMaterno),
		Usuario:         strings.ToLower(strings.TrimSpace(in.Usuario)),
		Correo:          strings.ToLower(strings.TrimSpace(in.Correo)),
		Telefono:        strings.TrimSpace(in.Telefono),
		IdPuesto:        in.IdPuesto,
		Foto:            in.Foto,
	}
}

var errHashContrasena = errors.New("failed to hash password")

func hashContrasena(contrasena string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(contrasena), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errHashContrasena, err)
	}
	return string(hash), nil
}
