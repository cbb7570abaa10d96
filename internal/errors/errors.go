package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/yukikurage/project-admin/internal/dto"
	"github.com/yukikurage/project-admin/internal/services"
)

// Messages shown to users when a failure has no more specific text.
const (
	MsgNoAutenticado     = "Es necesario iniciar sesión."
	MsgSolicitudInvalida = "La solicitud no es válida."
	MsgIdInvalido        = "El identificador no es válido."
	MsgErrorInterno      = "Ocurrió un error al procesar la solicitud."
)

// Respond writes an envelope with the given status.
func Respond(c *gin.Context, statusCode int, r dto.Respuesta) {
	c.JSON(statusCode, r)
}

// Exito sends a successful envelope.
func Exito(c *gin.Context, mensaje string, data interface{}) {
	Respond(c, http.StatusOK, dto.Exito(mensaje, data))
}

// Fallo sends a failed envelope. Catalog actions answer 200 even on failure.
func Fallo(c *gin.Context, mensaje string, errores ...string) {
	Respond(c, http.StatusOK, dto.Fallo(mensaje, errores...))
}

// NoAutenticado sends a 401 envelope.
func NoAutenticado(c *gin.Context, mensaje string) {
	if mensaje == "" {
		mensaje = MsgNoAutenticado
	}
	Respond(c, http.StatusUnauthorized, dto.Fallo(mensaje))
}

// DesdeError turns a service error into a failed envelope. Unexpected errors
// are logged and hidden behind a generic message.
func DesdeError(c *gin.Context, err error) {
	var verr *services.ValidationError
	if stderrors.As(err, &verr) {
		Fallo(c, verr.Mensaje, verr.Errores...)
		return
	}

	// the message comes from the sentinel so wrapping context stays out of it
	for _, sentinel := range sentinelasServicio {
		if stderrors.Is(err, sentinel) {
			Fallo(c, capitalizar(sentinel.Error())+".")
			return
		}
	}

	zerolog.Ctx(c.Request.Context()).Error().Err(err).
		Str("path", c.FullPath()).
		Msg("request failed")
	Fallo(c, MsgErrorInterno)
}

// sentinelasServicio are the service errors whose text is shown to users.
var sentinelasServicio = []error{
	services.ErrNoEncontrado,
	services.ErrYaInactivo,
	services.ErrYaActivo,
	services.ErrCredencialesInvalidas,
	services.ErrUsuarioInactivo,
	services.ErrContrasenaCorta,
	services.ErrContrasenaLarga,
	services.ErrSugerenciasNoDisponibles,
}

// Binding sends the failed envelope of a body or query that could not be bound.
func Binding(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		Fallo(c, MsgSolicitudInvalida)
		return
	}

	errores := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		errores = append(errores, mensajeCampo(fe))
	}
	Fallo(c, strings.Join(errores, " "), errores...)
}

func mensajeCampo(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("El campo %s es obligatorio.", fe.Field())
	case "email":
		return fmt.Sprintf("El campo %s no es un correo válido.", fe.Field())
	case "max":
		return fmt.Sprintf("El campo %s admite como máximo %s caracteres.", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("El campo %s requiere al menos %s caracteres.", fe.Field(), fe.Param())
	case "len":
		return fmt.Sprintf("El campo %s debe tener %s caracteres.", fe.Field(), fe.Param())
	case "hexcolor":
		return fmt.Sprintf("El campo %s debe ser un color hexadecimal.", fe.Field())
	default:
		return fmt.Sprintf("El campo %s no es válido.", fe.Field())
	}
}

func capitalizar(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
