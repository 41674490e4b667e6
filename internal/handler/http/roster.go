package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/msnglobalit/attendance-backend-go/internal/domain/roster"
	"github.com/msnglobalit/attendance-backend-go/internal/handler/http/response"
)

// Uploaded roster files beyond this size are rejected outright.
const maxRosterUploadSize = 2 << 20

type RosterHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Upload(w http.ResponseWriter, r *http.Request)
}

type RosterHandlerImpl struct {
	rosterService roster.RosterService
}

func NewRosterHandler(rosterService roster.RosterService) RosterHandler {
	return &RosterHandlerImpl{rosterService: rosterService}
}

// List implements RosterHandler.
func (h *RosterHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.rosterService.List(r.Context())
	if err != nil {
		slog.Error("List service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// Upload implements RosterHandler.
func (h *RosterHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxRosterUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Missing file field", nil)
		return
	}
	defer file.Close()

	count, err := h.rosterService.ReplaceFromCSV(r.Context(), file)
	if err != nil {
		slog.Error("Upload service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, fmt.Sprintf("Roster replaced with %d employees", count), nil)
}
