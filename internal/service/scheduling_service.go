package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/slotline/interview-api/internal/domain"
	"github.com/slotline/interview-api/internal/mailer"
	"github.com/slotline/interview-api/internal/store"
	"github.com/slotline/interview-api/pkg/config"
	"github.com/slotline/interview-api/pkg/events"
	"github.com/slotline/interview-api/pkg/logger"
)

type SchedulingService interface {
	CreateTimeSlot(ctx context.Context, req *domain.CreateTimeSlotRequest) (*domain.TimeSlot, error)
	ListTimeSlots(ctx context.Context, employeeID string) ([]domain.TimeSlot, error)
	ScheduleInterview(ctx context.Context, req *domain.ScheduleInterviewRequest) (*domain.Interview, error)
	ListInterviewsByEmployee(ctx context.Context, employeeID string) ([]domain.Interview, error)
	ListInterviewsByCandidate(ctx context.Context, candidateID string) ([]domain.Interview, error)
}

type schedulingService struct {
	slots      store.TimeSlotRepository
	interviews store.InterviewRepository
	eventBus   events.EventBus
	mailer     mailer.Service
	config     *config.Config
}

func NewSchedulingService(
	slots store.TimeSlotRepository,
	interviews store.InterviewRepository,
	eventBus events.EventBus,
	mailer mailer.Service,
	config *config.Config,
) SchedulingService {
	return &schedulingService{
		slots:      slots,
		interviews: interviews,
		eventBus:   eventBus,
		mailer:     mailer,
		config:     config,
	}
}

func (s *schedulingService) CreateTimeSlot(ctx context.Context, req *domain.CreateTimeSlotRequest) (*domain.TimeSlot, error) {
	slot := &domain.TimeSlot{
		EmployeeID:  req.EmployeeID,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsAvailable: true,
		IsBooked:    false,
	}
	if err := s.slots.Create(ctx, slot); err != nil {
		return nil, fmt.Errorf("failed to create time slot: %w", err)
	}

	event := events.SlotCreatedEvent{
		SlotID:     slot.ID,
		EmployeeID: slot.EmployeeID,
		Date:       slot.Date,
		StartTime:  slot.StartTime,
		EndTime:    slot.EndTime,
	}
	if err := s.eventBus.Publish(ctx, events.SlotCreated, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish slot created event", "error", err, "slot_id", slot.ID)
	}

	return slot, nil
}

func (s *schedulingService) ListTimeSlots(ctx context.Context, employeeID string) ([]domain.TimeSlot, error) {
	slots, err := s.slots.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list time slots: %w", err)
	}
	return slots, nil
}

// ScheduleInterview converts a booking request into an Interview with a
// generated meeting reference. When the request names a slot, the slot's
// booked flag is flipped via compare-and-set; a lost race only rejects the
// booking in strict mode, otherwise both bookings go through (the original
// behavior).
func (s *schedulingService) ScheduleInterview(ctx context.Context, req *domain.ScheduleInterviewRequest) (*domain.Interview, error) {
	if req.SlotID != "" {
		booked, err := s.slots.MarkBooked(ctx, req.SlotID)
		if err != nil {
			return nil, fmt.Errorf("failed to book time slot: %w", err)
		}
		if !booked {
			if s.config.Booking.Strict {
				return nil, domain.ErrSlotUnavailable
			}
			logger.WarnContext(ctx, "Booking proceeds against unavailable slot",
				"slot_id", req.SlotID,
				"employee_id", req.EmployeeID,
				"candidate_id", req.CandidateID,
			)
		}
	}

	interview := &domain.Interview{
		EmployeeID:     req.EmployeeID,
		CandidateID:    req.CandidateID,
		CompanyName:    req.CompanyName,
		Date:           req.Date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		MeetingLink:    newMeetingLink(),
		Status:         domain.InterviewScheduled,
		EmployeeName:   req.EmployeeName,
		CandidateName:  req.CandidateName,
		CandidateEmail: req.CandidateEmail,
		EmployeeEmail:  req.EmployeeEmail,
	}
	if err := s.interviews.Create(ctx, interview); err != nil {
		return nil, fmt.Errorf("failed to create interview: %w", err)
	}

	event := events.InterviewScheduledEvent{
		InterviewID: interview.ID,
		EmployeeID:  interview.EmployeeID,
		CandidateID: interview.CandidateID,
		CompanyName: interview.CompanyName,
		Date:        interview.Date,
		StartTime:   interview.StartTime,
		EndTime:     interview.EndTime,
		MeetingLink: interview.MeetingLink,
		CreatedAt:   interview.CreatedAt,
	}
	if err := s.eventBus.Publish(ctx, events.InterviewScheduled, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish interview scheduled event", "error", err, "interview_id", interview.ID)
	}

	s.sendConfirmations(ctx, interview)

	return interview, nil
}

func (s *schedulingService) ListInterviewsByEmployee(ctx context.Context, employeeID string) ([]domain.Interview, error) {
	interviews, err := s.interviews.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	return interviews, nil
}

func (s *schedulingService) ListInterviewsByCandidate(ctx context.Context, candidateID string) ([]domain.Interview, error) {
	interviews, err := s.interviews.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	return interviews, nil
}

// sendConfirmations emails both participants. Mail failures never fail the
// booking.
func (s *schedulingService) sendConfirmations(ctx context.Context, interview *domain.Interview) {
	details := mailer.InterviewDetails{
		CompanyName: interview.CompanyName,
		Date:        interview.Date,
		StartTime:   interview.StartTime,
		EndTime:     interview.EndTime,
		MeetingLink: interview.MeetingLink,
	}

	if interview.CandidateEmail != "" {
		d := details
		d.WithName = interview.EmployeeName
		if err := s.mailer.SendInterviewScheduled(interview.CandidateEmail, interview.CandidateName, d); err != nil {
			logger.ErrorContext(ctx, "Failed to send candidate confirmation", "error", err, "interview_id", interview.ID)
		}
	}
	if interview.EmployeeEmail != "" {
		d := details
		d.WithName = interview.CandidateName
		if err := s.mailer.SendInterviewScheduled(interview.EmployeeEmail, interview.EmployeeName, d); err != nil {
			logger.ErrorContext(ctx, "Failed to send employee confirmation", "error", err, "interview_id", interview.ID)
		}
	}
}

// newMeetingLink builds an opaque per-booking video-call locator. A
// millisecond timestamp plus a random suffix keeps references unique even
// for bookings landing in the same millisecond.
func newMeetingLink() string {
	meetingID := fmt.Sprintf("interview-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
	return "https://meet.jit.si/" + meetingID
}
