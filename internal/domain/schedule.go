package domain

import (
	"fmt"
	"time"
)

// TimeSlot is an offer of employee availability. The booked flag flips when
// a booking consumes the slot; slots are never deleted.
type TimeSlot struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsAvailable bool   `json:"is_available"`
	IsBooked    bool   `json:"is_booked"`
}

type InterviewStatus string

const (
	InterviewScheduled InterviewStatus = "scheduled"
	InterviewCompleted InterviewStatus = "completed"
	InterviewCancelled InterviewStatus = "cancelled"
)

func ParseInterviewStatus(s string) (InterviewStatus, bool) {
	switch InterviewStatus(s) {
	case InterviewScheduled, InterviewCompleted, InterviewCancelled:
		return InterviewStatus(s), true
	default:
		return "", false
	}
}

// Interview is a confirmed booking. The name and email fields are immutable
// snapshots of identity at booking time, not live joins.
type Interview struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employee_id"`
	CandidateID    string          `json:"candidate_id"`
	CompanyName    string          `json:"company_name"`
	Date           string          `json:"date"`
	StartTime      string          `json:"start_time"`
	EndTime        string          `json:"end_time"`
	MeetingLink    string          `json:"meeting_link"`
	Status         InterviewStatus `json:"status"`
	EmployeeName   string          `json:"employee_name"`
	CandidateName  string          `json:"candidate_name"`
	CandidateEmail string          `json:"candidate_email"`
	EmployeeEmail  string          `json:"employee_email"`
	CreatedAt      time.Time       `json:"created_at"`
}

type CreateTimeSlotRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

func (r *CreateTimeSlotRequest) Validate() error {
	if r.EmployeeID == "" || r.Date == "" || r.StartTime == "" || r.EndTime == "" {
		return fmt.Errorf("All fields are required")
	}
	return nil
}

// ScheduleInterviewRequest carries the booking input. SlotID is optional:
// when present the slot's booked flag is flipped as part of the booking.
type ScheduleInterviewRequest struct {
	EmployeeID     string `json:"employee_id"`
	CandidateID    string `json:"candidate_id"`
	CompanyName    string `json:"company_name"`
	Date           string `json:"date"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	EmployeeName   string `json:"employee_name,omitempty"`
	CandidateName  string `json:"candidate_name,omitempty"`
	CandidateEmail string `json:"candidate_email,omitempty"`
	EmployeeEmail  string `json:"employee_email,omitempty"`
	SlotID         string `json:"slot_id,omitempty"`
}

func (r *ScheduleInterviewRequest) Validate() error {
	if r.EmployeeID == "" || r.CandidateID == "" || r.CompanyName == "" ||
		r.Date == "" || r.StartTime == "" || r.EndTime == "" {
		return fmt.Errorf("All fields are required")
	}
	return nil
}
