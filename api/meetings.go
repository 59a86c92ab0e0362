package api

import (
	"encoding/json"
	"net/http"

	"github.com/garnizeh/attendify/internal/models"
	"github.com/garnizeh/attendify/pkg/repository"
	"github.com/go-playground/validator/v10"
)

type MeetingsHandler struct {
	meetingRepo repository.MeetingRepo
	validate    *validator.Validate
}

func NewMeetingsHandler(mr repository.MeetingRepo) *MeetingsHandler {
	return &MeetingsHandler{meetingRepo: mr, validate: validator.New()}
}

func (h *MeetingsHandler) SaveMeeting(w http.ResponseWriter, r *http.Request) {
	var req models.Meeting
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing required fields"})
		return
	}

	if _, err := h.meetingRepo.CreateMeeting(r.Context(), &req); err != nil {
		writeDBError(w, "create meeting", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "Meeting added successfully"})
}
