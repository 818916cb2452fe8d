package store

import (
	"context"

	"github.com/slotline/interview-api/internal/domain"
)

// UserRepository owns the user collection and the email uniqueness index.
// Lookups that find nothing return (nil, nil); uniqueness of email is the
// caller's responsibility to check before Create.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	ListEmployeesByCompany(ctx context.Context, companyName string) ([]domain.User, error)
}

type CompanyRepository interface {
	List(ctx context.Context) ([]domain.Company, error)
}

type TimeSlotRepository interface {
	Create(ctx context.Context, slot *domain.TimeSlot) error
	FindByID(ctx context.Context, id string) (*domain.TimeSlot, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]domain.TimeSlot, error)
	// MarkBooked atomically flips the booked flag. It returns false when the
	// slot does not exist or was already booked.
	MarkBooked(ctx context.Context, id string) (bool, error)
}

type InterviewRepository interface {
	Create(ctx context.Context, interview *domain.Interview) error
	ListByEmployee(ctx context.Context, employeeID string) ([]domain.Interview, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]domain.Interview, error)
}

// Store bundles the per-entity repositories. It is constructed once per
// process (or per test) and passed by handle to the services.
type Store struct {
	Users      UserRepository
	Companies  CompanyRepository
	TimeSlots  TimeSlotRepository
	Interviews InterviewRepository
}
