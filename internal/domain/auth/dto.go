package auth

import "github.com/sistema-turnos/turnos-backend-go/internal/pkg/validator"

type IdentifyRequest struct {
	Email string `json:"email"`
}

func (r *IdentifyRequest) Validate() error {
	var errs validator.ValidationErrors

	// Email
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UserType classifies an email for the login form.
type UserType string

const (
	TypeEmpleado      UserType = "empleado"
	TypeAdministrador UserType = "administrador"
	TypeNinguno       UserType = "ninguno"
)

type IdentifyResponse struct {
	Tipo UserType `json:"tipo"`
}

// LoginRequest covers both roles: administrators send a password,
// employees send the sede they are clocking in from.
type LoginRequest struct {
	Email    string  `json:"email"`
	Password *string `json:"password,omitempty"`
	SedeID   *string `json:"sede_id,omitempty"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	// Email
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if r.Password != nil && len(*r.Password) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Identity is the logged-in principal. Exactly one of Administrator or
// Employee is set according to Tipo.
type Identity struct {
	Tipo          UserType           `json:"tipo"`
	Administrator *AdministratorInfo `json:"administrador,omitempty"`
	Employee      *EmployeeInfo      `json:"empleado,omitempty"`
}

type AdministratorInfo struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Correo string `json:"correo"`
}

type EmployeeInfo struct {
	ID           string  `json:"id"`
	EmpleadoID   int     `json:"empleado_id"`
	Nombre       string  `json:"nombre"`
	Correo       string  `json:"correo"`
	SedeID       *string `json:"sede_id,omitempty"`
	TurnoEntrada *string `json:"turno_entrada,omitempty"`
	TurnoSalida  *string `json:"turno_salida,omitempty"`
}

type LoginResponse struct {
	User   Identity      `json:"user"`
	Tokens TokenResponse `json:"tokens"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r *RefreshTokenRequest) Validate() error {
	var errs validator.ValidationErrors

	// Refresh Token
	if validator.IsEmpty(r.RefreshToken) {
		errs = append(errs, validator.ValidationError{
			Field:   "refresh_token",
			Message: "refresh_token is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TokenResponse struct {
	AccessToken           string `json:"access_token"`
	AccessTokenExpiresIn  int64  `json:"access_token_expires_in"`
	RefreshToken          string `json:"refresh_token"`
	RefreshTokenExpiresIn int64  `json:"refresh_token_expires_in"`
}

type AccessTokenResponse struct {
	AccessToken          string `json:"access_token"`
	AccessTokenExpiresIn int64  `json:"access_token_expires_in"`
}
