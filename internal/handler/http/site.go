package http

import (
	"net/http"

	"github.com/sistema-turnos/turnos-backend-go/internal/domain/site"
	"github.com/sistema-turnos/turnos-backend-go/internal/handler/http/response"
)

type SiteHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type siteHandlerImpl struct {
	siteRepository site.Repository
}

func NewSiteHandler(siteRepository site.Repository) SiteHandler {
	return &siteHandlerImpl{
		siteRepository: siteRepository,
	}
}

type siteResponse struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	DireccionIP string `json:"direccion_ip"`
}

// List implements SiteHandler.
func (h *siteHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	sites, err := h.siteRepository.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]siteResponse, 0, len(sites))
	for _, st := range sites {
		out = append(out, siteResponse{
			ID:          st.ID,
			Nombre:      st.Nombre,
			DireccionIP: st.DireccionIP,
		})
	}

	response.Success(w, map[string]interface{}{"sedes": out})
}
