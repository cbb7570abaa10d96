package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/project-admin/internal/database/databasetest"
	"github.com/yukikurage/project-admin/internal/dto"
	"github.com/yukikurage/project-admin/internal/events"
	"github.com/yukikurage/project-admin/internal/services"
)

// HandlerTestSuite drives the full router against an in-memory database.
type HandlerTestSuite struct {
	suite.Suite
	servicios *services.Servicios
	router    *gin.Engine
	cookies   []*http.Cookie
}

// SetupTest runs before each test
func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	dc := databasetest.DataContext(suite.T(), time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC))
	suite.servicios = services.NewServicios(dc, events.NoopPublisher{}, nil)
	suite.router = NewRouter(RouterConfig{
		Logger:    zerolog.Nop(),
		Store:     cookie.NewStore([]byte("secret")),
		Servicios: suite.servicios,
		Ping:      func(context.Context) error { return nil },
	})

	admin, err := services.CrearAdministrador(context.Background(), suite.servicios.Puestos, suite.servicios.Usuarios, "admin", "admin12345")
	suite.Require().NoError(err)
	suite.Require().NotZero(admin.IdUsuario)

	suite.cookies = nil
	resp := suite.do(http.MethodPost, "/Cuenta/Login", dto.LoginInput{Usuario: "admin", Contrasena: "admin12345"})
	suite.Require().True(resp.Resultado, resp.Mensaje)
}

func (suite *HandlerTestSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range suite.cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	if cookies := w.Result().Cookies(); len(cookies) > 0 {
		suite.cookies = cookies
	}
	return w
}

func (suite *HandlerTestSuite) do(method, path string, body interface{}) dto.Respuesta {
	w := suite.request(method, path, body)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var resp dto.Respuesta
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().NotNil(resp.Errores)
	return resp
}

func (suite *HandlerTestSuite) data(resp dto.Respuesta, dest interface{}) {
	b, err := json.Marshal(resp.Data)
	suite.Require().NoError(err)
	suite.Require().NoError(json.Unmarshal(b, dest))
}

func (suite *HandlerTestSuite) TestUnauthenticated() {
	suite.cookies = nil

	w := suite.request(http.MethodGet, "/Clientes/Listar", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)

	var resp dto.Respuesta
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.Resultado)

	w = suite.request(http.MethodPost, "/Clientes/Agregar", dto.ClienteInput{Nombre: "X", RFC: "XXX010101XX1"})
	suite.Equal(http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/Clientes", nil)
	req.Header.Set("Accept", "text/html")
	w = httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusFound, w.Code)
	suite.Equal("/Cuenta/Login", w.Header().Get("Location"))
}

func (suite *HandlerTestSuite) TestLoginFailures() {
	suite.cookies = nil

	resp := suite.do(http.MethodPost, "/Cuenta/Login", dto.LoginInput{Usuario: "admin", Contrasena: "incorrecta"})
	suite.False(resp.Resultado)
	suite.Equal("Usuario o contraseña incorrectos.", resp.Mensaje)

	resp = suite.do(http.MethodPost, "/Cuenta/Login", map[string]string{"Usuario": "admin"})
	suite.False(resp.Resultado)
	suite.Contains(resp.Mensaje, "Contrasena")
}

func (suite *HandlerTestSuite) TestLoginForm() {
	suite.cookies = nil

	form := url.Values{"Usuario": {"admin"}, "Contrasena": {"admin12345"}}
	req := httptest.NewRequest(http.MethodPost, "/Cuenta/Login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusFound, w.Code)
	suite.Equal("/", w.Header().Get("Location"))

	form.Set("Contrasena", "mala")
	req = httptest.NewRequest(http.MethodPost, "/Cuenta/Login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "usuario o contraseña incorrectos")
}

func (suite *HandlerTestSuite) TestCuentaActualAndLogout() {
	resp := suite.do(http.MethodGet, "/Cuenta/Actual", nil)
	suite.True(resp.Resultado)
	var usuario map[string]interface{}
	suite.data(resp, &usuario)
	suite.Equal("admin", usuario["Usuario"])
	suite.NotContains(usuario, "Contrasena")

	resp = suite.do(http.MethodPost, "/Cuenta/Logout", nil)
	suite.True(resp.Resultado)

	w := suite.request(http.MethodGet, "/Cuenta/Actual", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestClienteLifecycle() {
	in := dto.ClienteInput{Nombre: "Acme", RFC: "ACM010101AB1", Correo: "hola@acme.mx", Logo: []byte("png")}

	resp := suite.do(http.MethodPost, "/Clientes/Agregar", in)
	suite.Require().True(resp.Resultado, resp.Mensaje)
	suite.Equal("Cliente agregado correctamente.", resp.Mensaje)
	var cliente struct {
		IdCliente         uint64
		IdUsuarioCreacion string
		Logo              []byte
	}
	suite.data(resp, &cliente)
	suite.NotZero(cliente.IdCliente)
	suite.Equal("1", cliente.IdUsuarioCreacion)
	suite.Equal([]byte("png"), cliente.Logo)

	dup := dto.ClienteInput{Nombre: "Otra", RFC: "ACM010101AB1"}
	resp = suite.do(http.MethodPost, "/Clientes/Agregar", dup)
	suite.False(resp.Resultado)
	suite.Contains(resp.Mensaje, "RFC")
	suite.Nil(resp.Data)

	id := "/" + itoa(cliente.IdCliente)
	resp = suite.do(http.MethodPost, "/Clientes/Editar"+id, dto.ClienteInput{Nombre: "Acme SA", RFC: "ACM010101AB1"})
	suite.True(resp.Resultado, resp.Mensaje)

	resp = suite.do(http.MethodPost, "/Clientes/Desactivar"+id, nil)
	suite.True(resp.Resultado)
	resp = suite.do(http.MethodPost, "/Clientes/Desactivar"+id, nil)
	suite.False(resp.Resultado)
	suite.Equal("El registro ya se encuentra inactivo.", resp.Mensaje)

	resp = suite.do(http.MethodGet, "/Clientes/Listar?activos=true", nil)
	var pagina struct {
		Registros []map[string]interface{}
		Total     int64
	}
	suite.data(resp, &pagina)
	suite.Zero(pagina.Total)
	suite.NotNil(pagina.Registros)

	resp = suite.do(http.MethodPost, "/Clientes/Activar"+id, nil)
	suite.True(resp.Resultado)

	resp = suite.do(http.MethodGet, "/Clientes/Obtener"+id, nil)
	suite.True(resp.Resultado)
	var obtenido map[string]interface{}
	suite.data(resp, &obtenido)
	suite.Equal("Acme SA", obtenido["Nombre"])
	suite.Equal(true, obtenido["FlgActivo"])
	suite.Equal("1", obtenido["IdUsuarioBaja"])

	resp = suite.do(http.MethodGet, "/Clientes/Obtener/999", nil)
	suite.False(resp.Resultado)
	resp = suite.do(http.MethodGet, "/Clientes/Obtener/abc", nil)
	suite.False(resp.Resultado)
}

func (suite *HandlerTestSuite) TestBindingErrors() {
	resp := suite.do(http.MethodPost, "/EstatusTareas/Agregar", map[string]string{"Color": "rojo"})
	suite.False(resp.Resultado)
	suite.Len(resp.Errores, 2)

	resp = suite.do(http.MethodPost, "/EstatusTareas/Agregar", dto.EstatusInput{Nombre: "Hecho", Color: "#00AA00"})
	suite.True(resp.Resultado, resp.Mensaje)
	suite.Equal("Estatus de tarea agregado correctamente.", resp.Mensaje)
}

func (suite *HandlerTestSuite) TestUsuarioTemporaryPasswordAndChange() {
	var puestos struct{ Registros []struct{ IdPuesto uint64 } }
	suite.data(suite.do(http.MethodGet, "/Puestos/Listar", nil), &puestos)
	suite.Require().Len(puestos.Registros, 1)

	resp := suite.do(http.MethodPost, "/Usuarios/Agregar", dto.UsuarioInput{
		Nombre: "Ana", ApellidoPaterno: "López", Usuario: "alopez", IdPuesto: puestos.Registros[0].IdPuesto,
	})
	suite.Require().True(resp.Resultado, resp.Mensaje)
	var creado struct{ ContrasenaTemporal string }
	suite.data(resp, &creado)
	suite.Len(creado.ContrasenaTemporal, 12)

	resp = suite.do(http.MethodPost, "/Usuarios/CambiarContrasena", dto.CambiarContrasenaInput{Actual: "admin12345", Nueva: "otra123456"})
	suite.True(resp.Resultado, resp.Mensaje)

	suite.cookies = nil
	resp = suite.do(http.MethodPost, "/Cuenta/Login", dto.LoginInput{Usuario: "admin", Contrasena: "otra123456"})
	suite.True(resp.Resultado)
}

func (suite *HandlerTestSuite) TestDeactivatedUserLosesSession() {
	resp := suite.do(http.MethodGet, "/Cuenta/Actual", nil)
	var actual struct{ IdUsuario uint64 }
	suite.data(resp, &actual)

	suite.Require().NoError(suite.servicios.Usuarios.Desactivar(context.Background(), actual.IdUsuario, "1"))

	w := suite.request(http.MethodGet, "/Puestos/Listar", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestSugerirWithoutProvider() {
	resp := suite.do(http.MethodPost, "/ModulosSistema/Sugerir/1", nil)
	suite.False(resp.Resultado)
	suite.Equal("El servicio de sugerencias no está configurado.", resp.Mensaje)
}

func (suite *HandlerTestSuite) TestPages() {
	suite.do(http.MethodPost, "/Puestos/Agregar", dto.PuestoInput{Nombre: "Tester"})

	for _, path := range []string{"/", "/Home/Index", "/Puestos", "/Puestos/Index?busqueda=test"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Accept", "text/html")
		for _, c := range suite.cookies {
			req.AddCookie(c)
		}
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)
		suite.Equal(http.StatusOK, w.Code, path)
		suite.Contains(w.Header().Get("Content-Type"), "text/html")
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/Cuenta/Login", nil))
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Iniciar sesión")
}

func (suite *HandlerTestSuite) TestHealthAndMetrics() {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	suite.Equal(http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "http_requests_total")
}

func itoa(n uint64) string {
	return strconv.FormatUint(n, 10)
}

// TestHandlerTestSuite runs the test suite
func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
