package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sistema-turnos/turnos-backend-go/internal/domain/administrator"
	"github.com/sistema-turnos/turnos-backend-go/internal/domain/auth"
	"github.com/sistema-turnos/turnos-backend-go/internal/domain/employee"
	"github.com/sistema-turnos/turnos-backend-go/internal/domain/site"
	"github.com/sistema-turnos/turnos-backend-go/internal/pkg/jwt"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

type fakeAdminRepo struct {
	byEmail map[string]administrator.Administrator
}

func (f *fakeAdminRepo) GetByEmail(ctx context.Context, correo string) (administrator.Administrator, error) {
	adm, ok := f.byEmail[correo]
	if !ok {
		return administrator.Administrator{}, administrator.ErrAdministratorNotFound
	}
	return adm, nil
}

type fakeEmployeeRepo struct {
	byEmail map[string]employee.Employee
	lastIP  map[string]string
}

func (f *fakeEmployeeRepo) GetByEmpleadoID(ctx context.Context, empleadoID int) (employee.Employee, error) {
	for _, emp := range f.byEmail {
		if emp.EmpleadoID == empleadoID {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, correo string) (employee.Employee, error) {
	emp, ok := f.byEmail[correo]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) UpdateIP(ctx context.Context, id string, ip string) error {
	if f.lastIP == nil {
		f.lastIP = make(map[string]string)
	}
	f.lastIP[id] = ip
	return nil
}

type fakeSiteRepo struct {
	byID map[string]site.Site
}

func (f *fakeSiteRepo) List(ctx context.Context) ([]site.Site, error) {
	var out []site.Site
	for _, st := range f.byID {
		out = append(out, st)
	}
	return out, nil
}

func (f *fakeSiteRepo) GetByID(ctx context.Context, id string) (site.Site, error) {
	st, ok := f.byID[id]
	if !ok {
		return site.Site{}, site.ErrSiteNotFound
	}
	return st, nil
}

func strPtr(v string) *string { return &v }

func newTestAuthService(t *testing.T, development bool) (auth.AuthService, *fakeEmployeeRepo) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("clave-segura"), bcrypt.DefaultCost)
	require.NoError(t, err)

	admins := &fakeAdminRepo{byEmail: map[string]administrator.Administrator{
		"admin@empresa.com":  {ID: "adm-1", Nombre: "Marta Ruiz", Correo: "admin@empresa.com", Clave: string(hash)},
		"legacy@empresa.com": {ID: "adm-2", Nombre: "Luis Soto", Correo: "legacy@empresa.com", Clave: "texto-plano"},
	}}
	employees := &fakeEmployeeRepo{byEmail: map[string]employee.Employee{
		"ana@empresa.com": {
			ID: "emp-1", EmpleadoID: 1001, Nombre: "Ana Torres",
			Correo: "ana@empresa.com", SedeID: strPtr("sede-1"),
		},
	}}
	sites := &fakeSiteRepo{byID: map[string]site.Site{
		"sede-1": {ID: "sede-1", Nombre: "Sede Norte", DireccionIP: "190.85.10.20"},
	}}

	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewAuthService(admins, employees, sites, jwtService, nil, development), employees
}

func TestIdentify(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService(t, false)

	resp, err := svc.Identify(ctx, auth.IdentifyRequest{Email: "ana@empresa.com"})
	require.NoError(t, err)
	assert.Equal(t, auth.TypeEmpleado, resp.Tipo)

	resp, err = svc.Identify(ctx, auth.IdentifyRequest{Email: "admin@empresa.com"})
	require.NoError(t, err)
	assert.Equal(t, auth.TypeAdministrador, resp.Tipo)

	resp, err = svc.Identify(ctx, auth.IdentifyRequest{Email: "nadie@empresa.com"})
	require.NoError(t, err)
	assert.Equal(t, auth.TypeNinguno, resp.Tipo)
}

func TestLoginAdministrator_Success(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService(t, false)

	resp, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "admin@empresa.com",
		Password: strPtr("clave-segura"),
	}, "200.1.2.3")
	require.NoError(t, err)

	assert.Equal(t, auth.TypeAdministrador, resp.User.Tipo)
	require.NotNil(t, resp.User.Administrator)
	assert.Equal(t, "Marta Ruiz", resp.User.Administrator.Nombre)
	assert.NotEmpty(t, resp.Tokens.AccessToken)
	assert.NotEmpty(t, resp.Tokens.RefreshToken)
}

func TestLoginAdministrator_LegacyPlaintext(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService(t, false)

	resp, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "legacy@empresa.com",
		Password: strPtr("texto-plano"),
	}, "200.1.2.3")
	require.NoError(t, err)
	assert.Equal(t, auth.TypeAdministrador, resp.User.Tipo)
}

func TestLoginAdministrator_MissingPassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService(t, false)

	_, err := svc.Login(ctx, auth.LoginRequest{Email: "admin@empresa.com"}, "200.1.2.3")
	assert.ErrorIs(t, err, auth.ErrMissingPassword)
}

func TestLoginAdministrator_WrongPassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService(t, false)

	_, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "admin@empresa.com",
		Password: strPtr("incorrecta"),
	}, "200.1.2.3")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginEmployee_Success(t *testing.T) {
	ctx := context.Background()
	svc, employees := newTestAuthService(t, false)

	resp, err := svc.Login(ctx, auth.LoginRequest{
		Email:  "ana@empresa.com",
		SedeID: strPtr("sede-1"),
	}, "190.85.10.20")
	require.NoError(t, err)

	assert.Equal(t, auth.TypeEmpleado, resp.User.Tipo)
	require.NotNil(t, resp.User.Employee)
	assert.Equal(t, 1001, resp.User.Employee.EmpleadoID)
	assert.Equal(t, "190.85.10.20", employees.lastIP["emp-1"])
}

func TestLoginEmployee_MappedIPv4Normalized(t *testing.T) {
	ctx := context.Background()
	svc, employees := newTestAuthService(t, false)

	_, err := svc.Login(ctx, auth.LoginRequest{
		Email:  "ana@empresa.com",
		SedeID: strPtr("sede-1"),
	}, "::ffff:190.85.10.20")
	require.NoError(t, err)
	assert.Equal(t, "190.85.10.20", employees.lastIP["emp-1"])
}

func TestLoginEmployee_IPMismatch(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService(t, false)

	_, err := svc.Login(ctx, auth.LoginRequest{
		Email:  "ana@empresa.com",
		SedeID: strPtr("sede-1"),
	}, "10.0.0.99")

	var mismatch *auth.SiteMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "190.85.10.20", mismatch.Expected)
	assert.Equal(t, "10.0.0.99", mismatch.Observed)
}

func TestLoginEmployee_LoopbackBypassInDevelopment(t *testing.T) {
	ctx := context.Background()

	svc, _ := newTestAuthService(t, true)
	_, err := svc.Login(ctx, auth.LoginRequest{
		Email:  "ana@empresa.com",
		SedeID: strPtr("sede-1"),
	}, "::1")
	require.NoError(t, err)

	// Same login is rejected outside development
	svc, _ = newTestAuthService(t, false)
	_, err = svc.Login(ctx, auth.LoginRequest{
		Email:  "ana@empresa.com",
		SedeID: strPtr("sede-1"),
	}, "::1")
	var mismatch *auth.SiteMismatchError
	assert.ErrorAs(t, err, &mismatch)
}

func TestLoginEmployee_MissingSede(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService(t, false)

	_, err := svc.Login(ctx, auth.LoginRequest{Email: "ana@empresa.com"}, "190.85.10.20")
	assert.ErrorIs(t, err, auth.ErrMissingSede)
}

func TestLoginEmployee_WrongSede(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService(t, false)

	_, err := svc.Login(ctx, auth.LoginRequest{
		Email:  "ana@empresa.com",
		SedeID: strPtr("sede-2"),
	}, "190.85.10.20")
	assert.ErrorIs(t, err, auth.ErrWrongSede)
}

func TestLogin_UnknownUser(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService(t, false)

	_, err := svc.Login(ctx, auth.LoginRequest{Email: "nadie@empresa.com"}, "190.85.10.20")
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}

func TestRefreshToken_Roundtrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService(t, false)

	login, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "admin@empresa.com",
		Password: strPtr("clave-segura"),
	}, "200.1.2.3")
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.Tokens.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestRefreshToken_RevokedAfterLogout(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService(t, false)

	login, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "admin@empresa.com",
		Password: strPtr("clave-segura"),
	}, "200.1.2.3")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, login.Tokens.RefreshToken))

	_, err = svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.Tokens.RefreshToken})
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestRefreshToken_AccessTokenRejected(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService(t, false)

	login, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "admin@empresa.com",
		Password: strPtr("clave-segura"),
	}, "200.1.2.3")
	require.NoError(t, err)

	_, err = svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.Tokens.AccessToken})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
