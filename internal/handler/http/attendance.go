package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/msnglobalit/attendance-backend-go/internal/domain/attendance"
	"github.com/msnglobalit/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	ListByDate(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	Clear(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	ledgerService attendance.LedgerService
}

func NewAttendanceHandler(ledgerService attendance.LedgerService) AttendanceHandler {
	return &AttendanceHandlerImpl{ledgerService: ledgerService}
}

// dateParam reads the optional ?date=DD/MM/YYYY query, defaulting to today.
func dateParam(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return time.Now(), nil
	}
	date, err := time.Parse(attendance.DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be in DD/MM/YYYY format")
	}
	return date, nil
}

// Mark implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	var markReq attendance.MarkRequest

	if err := json.NewDecoder(r.Body).Decode(&markReq); err != nil {
		slog.Error("Mark decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.ledgerService.Mark(r.Context(), markReq)
	if err != nil {
		slog.Error("Mark service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance marked", record)
}

// ListByDate implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListByDate(w http.ResponseWriter, r *http.Request) {
	date, err := dateParam(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	records, err := h.ledgerService.ListForDate(r.Context(), date)
	if err != nil {
		slog.Error("ListByDate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// ListAll implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	records, err := h.ledgerService.ListAll(r.Context())
	if err != nil {
		slog.Error("ListAll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Clear implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Clear(w http.ResponseWriter, r *http.Request) {
	date, err := dateParam(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	cleared, err := h.ledgerService.Clear(r.Context(), date)
	if err != nil {
		slog.Error("Clear service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, fmt.Sprintf("Removed %d entries", cleared.Removed), cleared)
}

// Export implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	date, err := dateParam(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	csvData, err := h.ledgerService.ExportDate(r.Context(), date)
	if err != nil {
		slog.Error("Export service error", "error", err)
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("attendance_%s.csv", date.Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(csvData)
}
