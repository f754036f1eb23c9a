package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/sistema-turnos/turnos-backend-go/internal/domain/report"
	"github.com/sistema-turnos/turnos-backend-go/internal/domain/shift"
	"github.com/sistema-turnos/turnos-backend-go/internal/pkg/email"
)

type ReportServiceImpl struct {
	shiftService shift.Service
	emailService email.EmailService
}

func NewReportService(shiftService shift.Service, emailService email.EmailService) report.Service {
	return &ReportServiceImpl{
		shiftService: shiftService,
		emailService: emailService,
	}
}

var exportHeaders = []string{
	"Fecha", "Entrada", "Break 1", "Almuerzo", "Break 2", "Salida", "Total Horas",
}

// ExportHistoryXLSX implements report.Service.
func (s *ReportServiceImpl) ExportHistoryXLSX(ctx context.Context, req report.ExportRequest) (report.ExportResponse, error) {
	entries, err := s.shiftService.History(ctx, req.Email)
	if err != nil {
		return report.ExportResponse{}, err
	}
	if len(entries) == 0 {
		return report.ExportResponse{}, report.ErrEmptyHistory
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Historial"
	f.SetSheetName(f.GetSheetName(0), sheet)

	for col, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for i, entry := range entries {
		row := i + 2
		values := []interface{}{
			entry.Fecha,
			clockOrDash(entry.HoraEntrada),
			pairLabel(entry.Break1Salida, entry.Break1Entrada),
			pairLabel(entry.AlmuerzoSalida, entry.AlmuerzoEntrada),
			pairLabel(entry.Break2Salida, entry.Break2Entrada),
			clockOrDash(entry.HoraSalida),
			entry.TotalHoras,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheet, cell, value)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return report.ExportResponse{}, fmt.Errorf("failed to write workbook: %w", err)
	}

	return report.ExportResponse{
		Filename: fmt.Sprintf("historial_%s.xlsx", req.Email),
		Content:  buf.Bytes(),
	}, nil
}

// EmailReport implements report.Service.
func (s *ReportServiceImpl) EmailReport(ctx context.Context, req report.EmailReportRequest) error {
	return s.emailService.SendReport(req.Email, req.Message, req.PDF, req.Filename)
}

func clockOrDash(v *string) string {
	if v == nil {
		return "-"
	}
	return *v
}

// pairLabel renders a break as "salida / entrada", dashes for missing
// halves.
func pairLabel(out, in *string) string {
	return fmt.Sprintf("%s / %s", clockOrDash(out), clockOrDash(in))
}
