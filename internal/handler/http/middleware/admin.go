package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/sistema-turnos/turnos-backend-go/internal/domain/auth"
	"github.com/sistema-turnos/turnos-backend-go/internal/handler/http/response"
)

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		tipo, ok := claims["tipo"].(string)
		if !ok || tipo != string(auth.TypeAdministrador) {
			response.Forbidden(w, "Se requieren permisos de administrador")
			return
		}

		next.ServeHTTP(w, r)
	})
}
