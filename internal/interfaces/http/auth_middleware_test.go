package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/storefront-backend/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/storefront-backend/pkg/jwt"
)

// buildProtectedApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT o la cookie y cargar locals
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildProtectedApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, testCookieSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"subject": apphttp.GetSubject(c),
				"role":    apphttp.GetRole(c),
			})
		},
	)
	return app
}

func signed(t *testing.T, secret, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(secret, testAdminEmail, role, testIssuer, 60)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return tok
}

// getProtected lanza GET /protected con header y/o cookie opcionales.
func getProtected(t *testing.T, app *fiber.App, authHeader, cookie string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: apphttp.SessionCookieName, Value: cookie})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware_BearerCargaClaims(t *testing.T) {
	app := buildProtectedApp("admin")
	resp := getProtected(t, app, "Bearer "+signed(t, testJWTSecret, "admin"), "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testAdminEmail, body["subject"])
	assert.Equal(t, "admin", body["role"])
}

// El esquema se compara sin distinguir mayúsculas.
func TestAuthMiddleware_BearerMinusculas(t *testing.T) {
	app := buildProtectedApp("admin")
	resp := getProtected(t, app, "bearer "+signed(t, testJWTSecret, "admin"), "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildProtectedApp("admin")
	resp := getProtected(t, app, "Token abc", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// La cookie se valida con su propio secreto: un token firmado con el secreto JWT no sirve como cookie.
func TestAuthMiddleware_CookieUsaSuSecreto(t *testing.T) {
	app := buildProtectedApp("admin")

	resp := getProtected(t, app, "", signed(t, testCookieSecret, "admin"))
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = getProtected(t, app, "", signed(t, testJWTSecret, "admin"))
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Si hay header, la cookie se ignora.
func TestAuthMiddleware_HeaderTienePrioridad(t *testing.T) {
	app := buildProtectedApp("admin")
	resp := getProtected(t, app, "Bearer token.invalido.aqui", signed(t, testCookieSecret, "admin"))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRole_MultiRol(t *testing.T) {
	app := buildProtectedApp("admin", "operator")
	resp := getProtected(t, app, "Bearer "+signed(t, testJWTSecret, "operator"), "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_RolNoPermitido_Retorna403(t *testing.T) {
	app := buildProtectedApp("admin")
	resp := getProtected(t, app, "Bearer "+signed(t, testJWTSecret, "operator"), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRequireRole_TokenSinRol_Retorna401(t *testing.T) {
	app := buildProtectedApp("admin")
	resp := getProtected(t, app, "Bearer "+signed(t, testJWTSecret, ""), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE")
}
