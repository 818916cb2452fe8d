package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/google/uuid"

	"github.com/slotline/interview-api/internal/domain"
	"github.com/slotline/interview-api/internal/store"
	"github.com/slotline/interview-api/pkg/logger"
)

// SeedPassword is the password assigned to the seeded demo employees.
const SeedPassword = "password123"

// db holds every in-memory collection behind one lock. Requests are served
// in parallel, so even the single-writer booking path needs the mutex to
// keep map access defined.
type db struct {
	mu         sync.RWMutex
	users      map[string]*domain.User
	emailIndex map[string]string // normalized email -> user ID
	companies  map[string]*domain.Company
	slots      map[string]*domain.TimeSlot
	interviews map[string]*domain.Interview
}

// New builds a fresh seeded store. Each call returns an isolated instance,
// so tests get their own state.
func New() *store.Store {
	d := &db{
		users:      make(map[string]*domain.User),
		emailIndex: make(map[string]string),
		companies:  make(map[string]*domain.Company),
		slots:      make(map[string]*domain.TimeSlot),
		interviews: make(map[string]*domain.Interview),
	}
	d.seed()

	return &store.Store{
		Users:      &userRepo{d},
		Companies:  &companyRepo{d},
		TimeSlots:  &timeSlotRepo{d},
		Interviews: &interviewRepo{d},
	}
}

func (d *db) seed() {
	companies := []domain.Company{
		{ID: "1", Name: "Google", Description: "Search engine giant and tech innovator"},
		{ID: "2", Name: "Meta", Description: "Social media and virtual reality company"},
		{ID: "3", Name: "Apple", Description: "Consumer electronics and software company"},
		{ID: "4", Name: "Amazon", Description: "E-commerce and cloud computing leader"},
		{ID: "5", Name: "Netflix", Description: "Streaming entertainment platform"},
		{ID: "6", Name: "Microsoft", Description: "Software and cloud services company"},
	}
	for i := range companies {
		c := companies[i]
		d.companies[c.ID] = &c
	}

	passwordHash, err := argon2id.CreateHash(SeedPassword, argon2id.DefaultParams)
	if err != nil {
		logger.Error("Failed to hash seed password", "error", err)
	}

	employees := []domain.User{
		{
			ID:      "1",
			Email:   "sarah.chen@google.com",
			Name:    "Sarah Chen",
			Role:    domain.RoleEmployee,
			Company: "Google",
			Title:   "Senior Software Engineer",
		},
		{
			ID:      "2",
			Email:   "mike.johnson@meta.com",
			Name:    "Mike Johnson",
			Role:    domain.RoleEmployee,
			Company: "Meta",
			Title:   "Product Manager",
		},
	}
	for i := range employees {
		u := employees[i]
		u.PasswordHash = passwordHash
		u.CreatedAt = time.Now().UTC()
		d.users[u.ID] = &u
		d.emailIndex[u.Email] = u.ID
	}
}

// ---------- users ----------

type userRepo struct {
	db *db
}

func (r *userRepo) Create(_ context.Context, user *domain.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()

	stored := *user
	r.db.users[stored.ID] = &stored
	r.db.emailIndex[stored.Email] = stored.ID
	return nil
}

func (r *userRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	id, ok := r.db.emailIndex[email]
	if !ok {
		return nil, nil
	}
	user, ok := r.db.users[id]
	if !ok {
		return nil, nil
	}
	u := *user
	return &u, nil
}

func (r *userRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	user, ok := r.db.users[id]
	if !ok {
		return nil, nil
	}
	u := *user
	return &u, nil
}

func (r *userRepo) ListEmployeesByCompany(_ context.Context, companyName string) ([]domain.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var out []domain.User
	for _, user := range r.db.users {
		if user.Role == domain.RoleEmployee && user.Company == companyName {
			out = append(out, *user)
		}
	}
	return out, nil
}

// ---------- companies ----------

type companyRepo struct {
	db *db
}

func (r *companyRepo) List(_ context.Context) ([]domain.Company, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]domain.Company, 0, len(r.db.companies))
	for _, c := range r.db.companies {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ---------- time slots ----------

type timeSlotRepo struct {
	db *db
}

func (r *timeSlotRepo) Create(_ context.Context, slot *domain.TimeSlot) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	slot.ID = uuid.NewString()

	stored := *slot
	r.db.slots[stored.ID] = &stored
	return nil
}

func (r *timeSlotRepo) FindByID(_ context.Context, id string) (*domain.TimeSlot, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	slot, ok := r.db.slots[id]
	if !ok {
		return nil, nil
	}
	s := *slot
	return &s, nil
}

func (r *timeSlotRepo) ListByEmployee(_ context.Context, employeeID string) ([]domain.TimeSlot, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var out []domain.TimeSlot
	for _, slot := range r.db.slots {
		if slot.EmployeeID == employeeID {
			out = append(out, *slot)
		}
	}
	return out, nil
}

func (r *timeSlotRepo) MarkBooked(_ context.Context, id string) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	slot, ok := r.db.slots[id]
	if !ok || slot.IsBooked {
		return false, nil
	}
	slot.IsBooked = true
	slot.IsAvailable = false
	return true, nil
}

// ---------- interviews ----------

type interviewRepo struct {
	db *db
}

func (r *interviewRepo) Create(_ context.Context, interview *domain.Interview) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	interview.ID = uuid.NewString()
	interview.CreatedAt = time.Now().UTC()

	stored := *interview
	r.db.interviews[stored.ID] = &stored
	return nil
}

func (r *interviewRepo) ListByEmployee(_ context.Context, employeeID string) ([]domain.Interview, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var out []domain.Interview
	for _, iv := range r.db.interviews {
		if iv.EmployeeID == employeeID {
			out = append(out, *iv)
		}
	}
	return out, nil
}

func (r *interviewRepo) ListByCandidate(_ context.Context, candidateID string) ([]domain.Interview, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var out []domain.Interview
	for _, iv := range r.db.interviews {
		if iv.CandidateID == candidateID {
			out = append(out, *iv)
		}
	}
	return out, nil
}
