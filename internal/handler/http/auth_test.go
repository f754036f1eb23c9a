package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sistema-turnos/turnos-backend-go/internal/domain/auth"
	"github.com/sistema-turnos/turnos-backend-go/internal/pkg/jwt"
)

type fakeAuthService struct {
	identify func(ctx context.Context, req auth.IdentifyRequest) (auth.IdentifyResponse, error)
	login    func(ctx context.Context, req auth.LoginRequest, clientIP string) (auth.LoginResponse, error)
}

func (f *fakeAuthService) Identify(ctx context.Context, req auth.IdentifyRequest) (auth.IdentifyResponse, error) {
	return f.identify(ctx, req)
}

func (f *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest, clientIP string) (auth.LoginResponse, error) {
	return f.login(ctx, req, clientIP)
}

func (f *fakeAuthService) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	return auth.AccessTokenResponse{AccessToken: "new-access", AccessTokenExpiresIn: 3600}, nil
}

func (f *fakeAuthService) Logout(ctx context.Context, refreshToken string) error {
	return nil
}

func newAuthTestHandler(svc auth.AuthService) AuthHandler {
	jwtService := jwt.NewJWTService("test-secret", "1h", "24h")
	return NewAuthHandler(svc, jwtService)
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestIdentifyHandler(t *testing.T) {
	svc := &fakeAuthService{
		identify: func(ctx context.Context, req auth.IdentifyRequest) (auth.IdentifyResponse, error) {
			assert.Equal(t, "ana@empresa.com", req.Email)
			return auth.IdentifyResponse{Tipo: auth.TypeEmpleado}, nil
		},
	}
	handler := newAuthTestHandler(svc)

	rr := postJSON(t, handler.Identify, "/api/v1/auth/identifica-usuario",
		map[string]string{"email": "ana@empresa.com"})

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Tipo string `json:"tipo"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "empleado", resp.Data.Tipo)
}

func TestIdentifyHandler_InvalidEmail(t *testing.T) {
	handler := newAuthTestHandler(&fakeAuthService{})

	rr := postJSON(t, handler.Identify, "/api/v1/auth/identifica-usuario",
		map[string]string{"email": "no-es-un-correo"})

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestLoginHandler_SetsRefreshCookie(t *testing.T) {
	svc := &fakeAuthService{
		login: func(ctx context.Context, req auth.LoginRequest, clientIP string) (auth.LoginResponse, error) {
			assert.Equal(t, "203.0.113.9", clientIP)
			return auth.LoginResponse{
				User: auth.Identity{
					Tipo:          auth.TypeAdministrador,
					Administrator: &auth.AdministratorInfo{ID: "adm-1", Nombre: "Marta", Correo: req.Email},
				},
				Tokens: auth.TokenResponse{
					AccessToken:  "access",
					RefreshToken: "refresh",
				},
			}, nil
		},
	}
	handler := newAuthTestHandler(svc)

	payload, _ := json.Marshal(map[string]string{
		"email":    "admin@empresa.com",
		"password": "clave-segura",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(payload))
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	rr := httptest.NewRecorder()
	handler.Login(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	cookies := rr.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "refresh_token", cookies[0].Name)
	assert.Equal(t, "refresh", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestLoginHandler_SiteMismatch(t *testing.T) {
	svc := &fakeAuthService{
		login: func(ctx context.Context, req auth.LoginRequest, clientIP string) (auth.LoginResponse, error) {
			return auth.LoginResponse{}, &auth.SiteMismatchError{Expected: "190.85.10.20", Observed: "10.0.0.99"}
		},
	}
	handler := newAuthTestHandler(svc)

	rr := postJSON(t, handler.Login, "/api/v1/auth/login",
		map[string]string{"email": "ana@empresa.com", "sede_id": "sede-1"})

	assert.Equal(t, http.StatusForbidden, rr.Code)

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "FORBIDDEN", resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "10.0.0.99")
}

func TestRefreshHandler_FromCookie(t *testing.T) {
	handler := newAuthTestHandler(&fakeAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", bytes.NewReader(nil))
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "stored-refresh"})
	rr := httptest.NewRecorder()
	handler.RefreshToken(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
