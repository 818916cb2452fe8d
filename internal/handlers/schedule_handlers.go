package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/slotline/interview-api/internal/domain"
)

// ListTimeSlots handles listing an employee's availability
func (h *Handlers) ListTimeSlots(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employeeId")
	if employeeID == "" {
		writeError(w, http.StatusBadRequest, "Employee ID is required", "INVALID_INPUT")
		return
	}

	slots, err := h.schedulingService.ListTimeSlots(r.Context(), employeeID)
	if err != nil {
		writeServiceError(w, r, err, "Failed to fetch time slots")
		return
	}
	if slots == nil {
		slots = []domain.TimeSlot{}
	}

	writeJSON(w, http.StatusOK, slots)
}

// CreateTimeSlot handles an employee offering availability
func (h *Handlers) CreateTimeSlot(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateTimeSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format", "INVALID_INPUT")
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_INPUT")
		return
	}

	slot, err := h.schedulingService.CreateTimeSlot(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err, "Failed to create time slot")
		return
	}

	writeJSON(w, http.StatusCreated, slot)
}

// ListInterviews handles the dashboard listing for either role. An employee
// ID takes precedence when both query parameters are supplied.
func (h *Handlers) ListInterviews(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employeeId")
	candidateID := r.URL.Query().Get("candidateId")

	var (
		interviews []domain.Interview
		err        error
	)
	switch {
	case employeeID != "":
		interviews, err = h.schedulingService.ListInterviewsByEmployee(r.Context(), employeeID)
	case candidateID != "":
		interviews, err = h.schedulingService.ListInterviewsByCandidate(r.Context(), candidateID)
	default:
		writeError(w, http.StatusBadRequest, "Employee ID or Candidate ID is required", "INVALID_INPUT")
		return
	}
	if err != nil {
		writeServiceError(w, r, err, "Failed to fetch interviews")
		return
	}
	if interviews == nil {
		interviews = []domain.Interview{}
	}

	writeJSON(w, http.StatusOK, interviews)
}

// ScheduleInterview handles booking a slot into an interview
func (h *Handlers) ScheduleInterview(w http.ResponseWriter, r *http.Request) {
	var req domain.ScheduleInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format", "INVALID_INPUT")
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_INPUT")
		return
	}

	interview, err := h.schedulingService.ScheduleInterview(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err, "Failed to create interview")
		return
	}

	writeJSON(w, http.StatusCreated, interview)
}
