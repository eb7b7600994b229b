package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sidsmartz/SkillTag/internal/authctx"
)

const testSecret = "test-secret"

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Use(JWTAuth(testSecret))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		email, _ := authctx.EmailFrom(c)
		return c.JSON(fiber.Map{"email": email, "role": authctx.RoleFrom(c)})
	})
	app.Get("/student-only", RequireRole(authctx.RoleStudent), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func whoami(t *testing.T, app *fiber.App, token string) (int, map[string]string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]string
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	}
	return resp.StatusCode, body
}

func TestJWTAuthAnonymousPassesThrough(t *testing.T) {
	status, body := whoami(t, newTestApp(), "")
	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["email"])
}

func TestJWTAuthValidToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":   "6123456789abcdef01234567",
		"email": "asha@uni.edu",
		"role":  authctx.RoleStudent,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	status, body := whoami(t, newTestApp(), token)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "asha@uni.edu", body["email"])
	assert.Equal(t, authctx.RoleStudent, body["role"])
}

func TestJWTAuthFallsBackToSubject(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "asha@uni.edu",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	status, body := whoami(t, newTestApp(), token)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "asha@uni.edu", body["email"])
}

func TestJWTAuthRejectsBadSignature(t *testing.T) {
	token := signToken(t, "other-secret", jwt.MapClaims{
		"email": "asha@uni.edu",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	status, _ := whoami(t, newTestApp(), token)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestJWTAuthRejectsExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"email": "asha@uni.edu",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	})
	status, _ := whoami(t, newTestApp(), token)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestRequireRole(t *testing.T) {
	app := newTestApp()

	// anonymous
	req := httptest.NewRequest(http.MethodGet, "/student-only", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// wrong role
	companyToken := signToken(t, testSecret, jwt.MapClaims{
		"email": "hr@acme.test",
		"role":  authctx.RoleCompany,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	req = httptest.NewRequest(http.MethodGet, "/student-only", nil)
	req.Header.Set("Authorization", "Bearer "+companyToken)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// right role
	studentToken := signToken(t, testSecret, jwt.MapClaims{
		"email": "asha@uni.edu",
		"role":  authctx.RoleStudent,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	req = httptest.NewRequest(http.MethodGet, "/student-only", nil)
	req.Header.Set("Authorization", "Bearer "+studentToken)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
