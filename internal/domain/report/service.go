package report

import (
	"context"
)

type Service interface {
	// ExportHistoryXLSX builds a workbook with the full shift history
	// of an email, one row per day plus worked hours.
	ExportHistoryXLSX(ctx context.Context, req ExportRequest) (ExportResponse, error)

	// EmailReport mails a caller-supplied PDF report.
	EmailReport(ctx context.Context, req EmailReportRequest) error
}
