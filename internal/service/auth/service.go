package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/sistema-turnos/turnos-backend-go/internal/domain/administrator"
	"github.com/sistema-turnos/turnos-backend-go/internal/domain/auth"
	"github.com/sistema-turnos/turnos-backend-go/internal/domain/employee"
	"github.com/sistema-turnos/turnos-backend-go/internal/domain/site"
	"github.com/sistema-turnos/turnos-backend-go/internal/pkg/geoip"
	"github.com/sistema-turnos/turnos-backend-go/internal/pkg/jwt"
	"github.com/sistema-turnos/turnos-backend-go/internal/pkg/validator"
)

type AuthServiceImpl struct {
	adminRepo    administrator.Repository
	employeeRepo employee.Repository
	siteRepo     site.Repository
	jwt.Service
	geoClient   *geoip.Client
	development bool
}

// NewAuthService wires the login flow. geoClient may be nil when geoip
// enrichment is disabled.
func NewAuthService(
	adminRepository administrator.Repository,
	employeeRepository employee.Repository,
	siteRepository site.Repository,
	jwtService jwt.Service,
	geoClient *geoip.Client,
	development bool,
) auth.AuthService {
	return &AuthServiceImpl{
		adminRepo:    adminRepository,
		employeeRepo: employeeRepository,
		siteRepo:     siteRepository,
		Service:      jwtService,
		geoClient:    geoClient,
		development:  development,
	}
}

// Identify implements auth.AuthService. Employees are checked before
// administrators, matching the order the login form expects.
func (a *AuthServiceImpl) Identify(ctx context.Context, req auth.IdentifyRequest) (auth.IdentifyResponse, error) {
	_, err := a.employeeRepo.GetByEmail(ctx, req.Email)
	if err == nil {
		return auth.IdentifyResponse{Tipo: auth.TypeEmpleado}, nil
	}
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return auth.IdentifyResponse{}, err
	}

	_, err = a.adminRepo.GetByEmail(ctx, req.Email)
	if err == nil {
		return auth.IdentifyResponse{Tipo: auth.TypeAdministrador}, nil
	}
	if !errors.Is(err, administrator.ErrAdministratorNotFound) {
		return auth.IdentifyResponse{}, err
	}

	return auth.IdentifyResponse{Tipo: auth.TypeNinguno}, nil
}

// Login implements auth.AuthService. The administrator table is
// consulted first; anyone not in it logs in as an employee.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest, clientIP string) (auth.LoginResponse, error) {
	adm, err := a.adminRepo.GetByEmail(ctx, req.Email)
	if err == nil {
		return a.loginAdministrator(ctx, adm, req, clientIP)
	}
	if !errors.Is(err, administrator.ErrAdministratorNotFound) {
		return auth.LoginResponse{}, err
	}

	return a.loginEmployee(ctx, req, clientIP)
}

func (a *AuthServiceImpl) loginAdministrator(ctx context.Context, adm administrator.Administrator, req auth.LoginRequest, clientIP string) (auth.LoginResponse, error) {
	if req.Password == nil || *req.Password == "" {
		return auth.LoginResponse{}, auth.ErrMissingPassword
	}

	if !credentialMatches(adm.Clave, *req.Password) {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	identity := auth.Identity{
		Tipo: auth.TypeAdministrador,
		Administrator: &auth.AdministratorInfo{
			ID:     adm.ID,
			Nombre: adm.Nombre,
			Correo: adm.Correo,
		},
	}

	tokens, err := a.issueTokens(adm.ID, adm.Correo, string(auth.TypeAdministrador), nil)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	a.lookupGeo(clientIP, adm.Correo)

	return auth.LoginResponse{User: identity, Tokens: tokens}, nil
}

func (a *AuthServiceImpl) loginEmployee(ctx context.Context, req auth.LoginRequest, clientIP string) (auth.LoginResponse, error) {
	emp, err := a.employeeRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrUserNotFound
		}
		return auth.LoginResponse{}, err
	}

	if req.SedeID == nil || *req.SedeID == "" {
		return auth.LoginResponse{}, auth.ErrMissingSede
	}
	if emp.SedeID == nil || *emp.SedeID != *req.SedeID {
		return auth.LoginResponse{}, auth.ErrWrongSede
	}

	sede, err := a.siteRepo.GetByID(ctx, *req.SedeID)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	observed := validator.NormalizeIP(clientIP)
	if observed != sede.DireccionIP {
		// Local development runs behind no proxy, so loopback never
		// matches a real site address.
		if !(a.development && validator.IsLoopback(observed)) {
			return auth.LoginResponse{}, &auth.SiteMismatchError{
				Expected: sede.DireccionIP,
				Observed: observed,
			}
		}
	}

	// The stored IP always reflects the latest successful login.
	if err := a.employeeRepo.UpdateIP(ctx, emp.ID, observed); err != nil {
		return auth.LoginResponse{}, err
	}

	identity := auth.Identity{
		Tipo: auth.TypeEmpleado,
		Employee: &auth.EmployeeInfo{
			ID:           emp.ID,
			EmpleadoID:   emp.EmpleadoID,
			Nombre:       emp.Nombre,
			Correo:       emp.Correo,
			SedeID:       emp.SedeID,
			TurnoEntrada: emp.TurnoEntrada,
			TurnoSalida:  emp.TurnoSalida,
		},
	}

	tokens, err := a.issueTokens(emp.ID, emp.Correo, string(auth.TypeEmpleado), emp.SedeID)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	a.lookupGeo(observed, emp.Correo)

	return auth.LoginResponse{User: identity, Tokens: tokens}, nil
}

// credentialMatches accepts both bcrypt hashes and plaintext rows
// migrated from the legacy system.
func credentialMatches(stored, password string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}

func (a *AuthServiceImpl) issueTokens(userID, email, tipo string, sedeID *string) (auth.TokenResponse, error) {
	var tokens auth.TokenResponse
	var err error

	tokens.AccessToken, tokens.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(userID, email, tipo, sedeID)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	tokens.RefreshToken, tokens.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(userID, email, tipo, sedeID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokens, nil
}

// lookupGeo resolves the login IP in the background. Failures are
// logged and never surface to the caller.
func (a *AuthServiceImpl) lookupGeo(ip, email string) {
	if a.geoClient == nil {
		return
	}
	go func() {
		loc, err := a.geoClient.Lookup(context.Background(), ip)
		if err != nil {
			slog.Debug("geoip lookup failed", "ip", ip, "error", err)
			return
		}
		slog.Info("login location resolved",
			"email", email,
			"ip", ip,
			"country", loc.Country,
			"city", loc.City,
			"isp", loc.ISP,
		)
	}()
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if a.Service.IsTokenRevoked(req.RefreshToken) {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	userID, email, tipo, sedeID, err := a.Service.DecodeRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	accessToken, expiresIn, err := a.Service.GenerateAccessToken(userID, email, tipo, sedeID)
	if err != nil {
		return auth.AccessTokenResponse{}, err
	}

	return auth.AccessTokenResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresIn: expiresIn,
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken != "" {
		a.Service.RevokeToken(refreshToken)
	}
	return nil
}
