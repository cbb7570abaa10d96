package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/project-admin/internal/database"
	"github.com/yukikurage/project-admin/internal/models"
	"github.com/yukikurage/project-admin/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles sign-in of employees.
type AuthService struct {
	usuarios repository.UsuarioRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(usuarios repository.UsuarioRepository) *AuthService {
	return &AuthService{usuarios: usuarios}
}

// Login checks the credentials and returns the employee. Unknown users and
// wrong passwords produce the same error.
func (s *AuthService) Login(ctx context.Context, usuario, contrasena string) (*models.Usuario, error) {
	u, err := s.usuarios.ObtenerPorUsuario(ctx, strings.TrimSpace(usuario))
	if err != nil {
		if errors.Is(err, database.ErrRegistroNoEncontrado) {
			return nil, ErrCredencialesInvalidas
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Contrasena), []byte(contrasena)); err != nil {
		return nil, ErrCredencialesInvalidas
	}

	if !u.FlgActivo {
		return nil, ErrUsuarioInactivo
	}

	u.Contrasena = ""
	return u, nil
}

// ObtenerUsuario returns the employee behind a session, rejecting inactive ones.
func (s *AuthService) ObtenerUsuario(ctx context.Context, id uint64) (*models.Usuario, error) {
	u, err := s.usuarios.Obtener(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrRegistroNoEncontrado) {
			return nil, ErrNoEncontrado
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if !u.FlgActivo {
		return nil, ErrUsuarioInactivo
	}
	return u, nil
}
