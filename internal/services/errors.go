package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/project-admin/internal/database"
)

var (
	ErrNoEncontrado             = errors.New("el registro no existe")
	ErrYaInactivo               = errors.New("el registro ya se encuentra inactivo")
	ErrYaActivo                 = errors.New("el registro ya se encuentra activo")
	ErrCredencialesInvalidas    = errors.New("usuario o contraseña incorrectos")
	ErrUsuarioInactivo          = errors.New("el usuario se encuentra inactivo")
	ErrContrasenaCorta          = errors.New("la contraseña es demasiado corta")
	ErrContrasenaLarga          = errors.New("la contraseña es demasiado larga")
	ErrSugerenciasNoDisponibles = errors.New("el servicio de sugerencias no está configurado")
)

// ValidationError carries every business rule a request broke. Mensaje is
// the summary shown to the user, Errores the individual findings.
type ValidationError struct {
	Mensaje string
	Errores []string
}

func (e *ValidationError) Error() string {
	return e.Mensaje
}

// validacion accumulates findings before deciding whether a request may proceed.
type validacion struct {
	errores []string
}

func (v *validacion) agregar(format string, args ...interface{}) {
	v.errores = append(v.errores, fmt.Sprintf(format, args...))
}

func (v *validacion) requerido(valor, etiqueta string) {
	if strings.TrimSpace(valor) == "" {
		v.agregar("El campo %s es obligatorio.", etiqueta)
	}
}

func (v *validacion) err() error {
	switch len(v.errores) {
	case 0:
		return nil
	case 1:
		return &ValidationError{Mensaje: v.errores[0], Errores: v.errores}
	default:
		return &ValidationError{Mensaje: strings.Join(v.errores, " "), Errores: v.errores}
	}
}

// traducir maps data-context errors onto the service sentinels.
func traducir(err error) error {
	switch {
	case errors.Is(err, database.ErrRegistroNoEncontrado):
		return ErrNoEncontrado
	case errors.Is(err, database.ErrRegistroInactivo):
		return ErrYaInactivo
	case errors.Is(err, database.ErrRegistroActivo):
		return ErrYaActivo
	default:
		return err
	}
}
