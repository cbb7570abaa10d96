package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yukikurage/project-admin/internal/constants"
	"github.com/yukikurage/project-admin/internal/dto"
	apierrors "github.com/yukikurage/project-admin/internal/errors"
	"github.com/yukikurage/project-admin/internal/middleware"
	"github.com/yukikurage/project-admin/internal/services"
)

// CuentaHandler coordinates sign-in and the session of the current employee.
type CuentaHandler struct {
	authService *services.AuthService
}

// NewCuentaHandler creates a new CuentaHandler.
func NewCuentaHandler(authService *services.AuthService) *CuentaHandler {
	return &CuentaHandler{
		authService: authService,
	}
}

// LoginView renders the sign-in page.
func (h *CuentaHandler) LoginView(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"Titulo": "Iniciar sesión", "Login": "", "Error": ""})
}

// Login authenticates an employee and initializes the session. The browser
// form is redirected; JSON callers get the envelope.
func (h *CuentaHandler) Login(c *gin.Context) {
	form := c.ContentType() == gin.MIMEPOSTForm

	var req dto.LoginInput
	if err := c.ShouldBind(&req); err != nil {
		if form {
			h.loginFallido(c, req.Usuario, "Captura usuario y contraseña.")
			return
		}
		apierrors.Binding(c, err)
		return
	}

	usuario, err := h.authService.Login(c.Request.Context(), req.Usuario, req.Contrasena)
	if err != nil {
		zerolog.Ctx(c.Request.Context()).Info().Str("usuario", req.Usuario).Err(err).Msg("login rejected")
		if form && (errors.Is(err, services.ErrCredencialesInvalidas) || errors.Is(err, services.ErrUsuarioInactivo)) {
			h.loginFallido(c, req.Usuario, err.Error())
			return
		}
		apierrors.DesdeError(c, err)
		return
	}

	session := sessions.Default(c)
	session.Set(constants.ContextKeyUserID, strconv.FormatUint(usuario.IdUsuario, 10))
	if err := session.Save(); err != nil {
		apierrors.DesdeError(c, err)
		return
	}

	if form {
		c.Redirect(http.StatusFound, "/")
		return
	}
	apierrors.Exito(c, "Bienvenido, "+usuario.Nombre+".", usuario)
}

func (h *CuentaHandler) loginFallido(c *gin.Context, usuario, mensaje string) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Titulo": "Iniciar sesión",
		"Login":  usuario,
		"Error":  mensaje,
	})
}

// Logout removes the authentication session.
func (h *CuentaHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		apierrors.DesdeError(c, err)
		return
	}

	if c.ContentType() == gin.MIMEPOSTForm {
		c.Redirect(http.StatusFound, constants.LoginPath)
		return
	}
	apierrors.Exito(c, "Sesión cerrada correctamente.", nil)
}

// Actual returns the authenticated employee.
func (h *CuentaHandler) Actual(c *gin.Context) {
	usuario, ok := middleware.GetUsuario(c)
	if !ok {
		apierrors.NoAutenticado(c, "")
		return
	}
	apierrors.Exito(c, "", usuario)
}
