package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sistema-turnos/turnos-backend-go/internal/domain/shift"
	"github.com/sistema-turnos/turnos-backend-go/internal/handler/http/response"
	"github.com/sistema-turnos/turnos-backend-go/internal/pkg/validator"
)

type ShiftHandler interface {
	RegisterEvent(w http.ResponseWriter, r *http.Request)
	GetRecords(w http.ResponseWriter, r *http.Request)
	CheckWindow(w http.ResponseWriter, r *http.Request)
	SaveDay(w http.ResponseWriter, r *http.Request)
	Cleanup(w http.ResponseWriter, r *http.Request)
	SearchHistory(w http.ResponseWriter, r *http.Request)
}

type shiftHandlerImpl struct {
	shiftService shift.Service
}

func NewShiftHandler(shiftService shift.Service) ShiftHandler {
	return &shiftHandlerImpl{
		shiftService: shiftService,
	}
}

// RegisterEvent implements ShiftHandler.
func (h *shiftHandlerImpl) RegisterEvent(w http.ResponseWriter, r *http.Request) {
	var req shift.RegisterEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.shiftService.RegisterEvent(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Registro guardado", result)
}

// GetRecords implements ShiftHandler.
func (h *shiftHandlerImpl) GetRecords(w http.ResponseWriter, r *http.Request) {
	empleadoID, err := strconv.Atoi(r.URL.Query().Get("empleado_id"))
	if err != nil || empleadoID <= 0 {
		response.BadRequest(w, "empleado_id is required and must be numeric", nil)
		return
	}

	fecha := r.URL.Query().Get("fecha")
	if _, ok := validator.IsValidDate(fecha); !ok {
		response.BadRequest(w, "fecha is required in YYYY-MM-DD format", nil)
		return
	}

	records, err := h.shiftService.Records(r.Context(), empleadoID, fecha)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{"registros": records})
}

// CheckWindow implements ShiftHandler.
func (h *shiftHandlerImpl) CheckWindow(w http.ResponseWriter, r *http.Request) {
	tipo := r.URL.Query().Get("tipo")
	if validator.IsEmpty(tipo) {
		response.BadRequest(w, "tipo is required", nil)
		return
	}

	result, err := h.shiftService.CheckWindow(tipo)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SaveDay implements ShiftHandler.
func (h *shiftHandlerImpl) SaveDay(w http.ResponseWriter, r *http.Request) {
	var req shift.SaveDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.shiftService.SaveDay(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Historial guardado", result)
}

// Cleanup implements ShiftHandler.
func (h *shiftHandlerImpl) Cleanup(w http.ResponseWriter, r *http.Request) {
	var req shift.CleanupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	deleted, err := h.shiftService.CleanupToday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Registros de hoy eliminados", map[string]interface{}{"eliminados": deleted})
}

// SearchHistory implements ShiftHandler.
func (h *shiftHandlerImpl) SearchHistory(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if !validator.IsValidEmail(email) {
		response.BadRequest(w, "email is required and must be valid", nil)
		return
	}

	entries, err := h.shiftService.History(r.Context(), email)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{"historial": entries})
}
