package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/sistema-turnos/turnos-backend-go/internal/domain/report"
	"github.com/sistema-turnos/turnos-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	ExportHistory(w http.ResponseWriter, r *http.Request)
	EmailReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// ExportHistory implements ReportHandler.
func (h *reportHandlerImpl) ExportHistory(w http.ResponseWriter, r *http.Request) {
	req := report.ExportRequest{Email: r.URL.Query().Get("email")}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.ExportHistoryXLSX(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Content)
}

// EmailReport implements ReportHandler.
func (h *reportHandlerImpl) EmailReport(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	req := report.EmailReportRequest{
		Email:   r.FormValue("email"),
		Message: r.FormValue("message"),
	}

	file, fileHeader, err := r.FormFile("pdf")
	if err == nil {
		defer file.Close()
		pdf, readErr := io.ReadAll(file)
		if readErr != nil {
			response.BadRequest(w, "Invalid file upload", nil)
			return
		}
		req.PDF = pdf
		req.Filename = fileHeader.Filename
	} else if err != http.ErrMissingFile {
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}

	if req.Email == "" || len(req.PDF) == 0 {
		response.BadRequest(w, "email and pdf are required", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.reportService.EmailReport(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Reporte enviado", nil)
}
