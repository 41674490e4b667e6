package http

import (
	"log/slog"
	"net/http"

	"github.com/msnglobalit/attendance-backend-go/internal/domain/report"
	"github.com/msnglobalit/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Daily(w http.ResponseWriter, r *http.Request)
	Monthly(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// Daily implements ReportHandler.
func (h *ReportHandlerImpl) Daily(w http.ResponseWriter, r *http.Request) {
	date, err := dateParam(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	summary, err := h.reportService.DailySummary(r.Context(), date)
	if err != nil {
		slog.Error("Daily service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// Monthly implements ReportHandler.
func (h *ReportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	monthlyReport, err := h.reportService.MonthlyEmployeeSummary(r.Context())
	if err != nil {
		slog.Error("Monthly service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, monthlyReport)
}
