package handlers

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/yukikurage/project-admin/internal/constants"
	"github.com/yukikurage/project-admin/internal/dto"
	"github.com/yukikurage/project-admin/internal/middleware"
	"github.com/yukikurage/project-admin/internal/models"
	"github.com/yukikurage/project-admin/internal/services"
	"github.com/yukikurage/project-admin/internal/views"
)

// RouterConfig carries what NewRouter wires together.
type RouterConfig struct {
	Logger    zerolog.Logger
	Store     sessions.Store
	Servicios *services.Servicios
	Ping      Pinger
}

// NewRouter builds the gin engine with every route of the site.
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(cfg.Logger),
		middleware.Recovery(),
		middleware.Metrics(),
		sessions.Sessions(constants.SessionCookieName, cfg.Store),
	)
	r.SetHTMLTemplate(views.Templates())

	s := cfg.Servicios

	r.GET("/health", Health(cfg.Ping))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	cuenta := NewCuentaHandler(s.Auth)
	r.GET("/Cuenta/Login", cuenta.LoginView)
	r.POST("/Cuenta/Login", cuenta.Login)
	r.POST("/Cuenta/Logout", cuenta.Logout)

	app := r.Group("")
	app.Use(middleware.RequireAuth(), middleware.RequireActiveUser(s.Auth))

	app.GET("/Cuenta/Actual", cuenta.Actual)

	clientes := NewCatalogoHandler[models.Cliente, dto.ClienteInput](s.Clientes, vistaClientes)
	puestos := NewCatalogoHandler[models.Puesto, dto.PuestoInput](s.Puestos, vistaPuestos)
	usuarios := NewCatalogoHandler[models.Usuario, dto.UsuarioInput](s.Usuarios, vistaUsuarios)
	clientesUsuarios := NewCatalogoHandler[models.ClienteUsuario, dto.ClienteUsuarioInput](s.ClientesUsuarios, vistaClientesUsuarios)
	sistemas := NewCatalogoHandler[models.Sistema, dto.SistemaInput](s.Sistemas, vistaSistemas)
	modulos := NewCatalogoHandler[models.ModuloSistema, dto.ModuloSistemaInput](s.ModulosSistema, vistaModulosSistema)
	estatusProyectos := NewCatalogoHandler[models.EstatusProyecto, dto.EstatusInput](s.EstatusProyectos, vistaEstatusProyectos)
	estatusTareas := NewCatalogoHandler[models.EstatusTarea, dto.EstatusInput](s.EstatusTareas, vistaEstatusTareas)

	clientes.Register(app)
	puestos.Register(app)
	clientesUsuarios.Register(app)
	sistemas.Register(app)
	estatusProyectos.Register(app)
	estatusTareas.Register(app)

	usuarioHandler := NewUsuarioHandler(s.Usuarios)
	usuarios.Register(app).POST("/CambiarContrasena", usuarioHandler.CambiarContrasena)

	moduloHandler := NewModuloSistemaHandler(s.ModulosSistema)
	modulos.Register(app).POST("/Sugerir/:id", middleware.RequireID(), moduloHandler.Sugerir)

	home := NewHomeHandler(clientes, clientesUsuarios, sistemas, modulos, usuarios, puestos, estatusProyectos, estatusTareas)
	app.GET("/", home.Index)
	app.GET("/Home/Index", home.Index)

	return r
}
