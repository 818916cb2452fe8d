package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/slotline/interview-api/internal/domain"
	"github.com/slotline/interview-api/internal/handlers"
	"github.com/slotline/interview-api/internal/mailer"
	"github.com/slotline/interview-api/internal/service"
	"github.com/slotline/interview-api/internal/store/memory"
	"github.com/slotline/interview-api/pkg/config"
	"github.com/slotline/interview-api/pkg/events"
)

// ---------- Mocks ----------

type silentMailer struct{}

func (silentMailer) SendInterviewScheduled(string, string, mailer.InterviewDetails) error { return nil }

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret",
			AccessTokenTTL: time.Hour,
		},
	}

	st := memory.New()
	bus := events.NewNoopEventBus()

	authService := service.NewAuthService(st.Users, bus, cfg)
	directoryService := service.NewDirectoryService(st.Companies, st.Users)
	schedulingService := service.NewSchedulingService(st.TimeSlots, st.Interviews, bus, silentMailer{}, cfg)

	return handlers.New(authService, directoryService, schedulingService, cfg).Routes()
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

func registerUser(t *testing.T, router http.Handler, req map[string]any) domain.AuthResponse {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/auth/register", req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register %v: status = %d, body = %s", req["email"], rec.Code, rec.Body.String())
	}
	return decode[domain.AuthResponse](t, rec)
}

// ---------- Auth ----------

func TestRegisterValidation(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/auth/register", map[string]any{
		"email": "bob@x.com", "password": "pw123456",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	body := decode[map[string]string](t, rec)
	if body["error"] != "Email, password, name, and role are required" {
		t.Errorf("error = %q", body["error"])
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	router := newTestRouter(t)

	req := map[string]any{"email": "bob@x.com", "password": "pw123456", "name": "Bob", "role": "candidate"}
	registerUser(t, router, req)

	rec := doJSON(t, router, http.MethodPost, "/auth/register", req)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestLoginFlow(t *testing.T) {
	router := newTestRouter(t)
	registerUser(t, router, map[string]any{
		"email": "bob@x.com", "password": "pw123456", "name": "Bob", "role": "candidate",
	})

	tests := []struct {
		name     string
		body     map[string]any
		wantCode int
	}{
		{"ok", map[string]any{"email": "bob@x.com", "password": "pw123456", "role": "candidate"}, http.StatusOK},
		{"missing fields", map[string]any{"email": "bob@x.com"}, http.StatusBadRequest},
		{"unknown email", map[string]any{"email": "nobody@x.com", "password": "pw123456", "role": "candidate"}, http.StatusUnauthorized},
		{"wrong password", map[string]any{"email": "bob@x.com", "password": "nope", "role": "candidate"}, http.StatusUnauthorized},
		{"role mismatch", map[string]any{"email": "bob@x.com", "password": "pw123456", "role": "employee"}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, "/auth/login", tt.body)
			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantCode, rec.Body.String())
			}
			if tt.wantCode == http.StatusOK {
				resp := decode[domain.AuthResponse](t, rec)
				if resp.Token == "" || resp.User == nil || resp.User.Email != "bob@x.com" {
					t.Errorf("login response = %s", rec.Body.String())
				}
			}
		})
	}
}

func TestSeededEmployeeCanLogIn(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/auth/login", map[string]any{
		"email": "sarah.chen@google.com", "password": memory.SeedPassword, "role": "employee",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestAuthMe(t *testing.T) {
	router := newTestRouter(t)
	resp := registerUser(t, router, map[string]any{
		"email": "bob@x.com", "password": "pw123456", "name": "Bob", "role": "candidate",
	})

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	user := decode[domain.User](t, rec)
	if user.ID != resp.User.ID {
		t.Errorf("me returned user %s, want %s", user.ID, resp.User.ID)
	}

	// No token and a garbage token are both rejected.
	for _, header := range []string{"", "Bearer not-a-token"} {
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, rec.Code)
		}
	}
}

// ---------- Directory ----------

func TestListCompanies(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/companies", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	companies := decode[[]domain.Company](t, rec)
	if len(companies) != 6 {
		t.Errorf("got %d companies, want 6", len(companies))
	}
}

func TestListCompanyEmployees(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/companies/Google/employees", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	employees := decode[[]domain.User](t, rec)
	if len(employees) != 1 || employees[0].Email != "sarah.chen@google.com" {
		t.Errorf("Google employees = %s", rec.Body.String())
	}
}

func TestListCompanyEmployeesDecodesName(t *testing.T) {
	router := newTestRouter(t)
	registerUser(t, router, map[string]any{
		"email": "eve@initech.com", "password": "pw123456", "name": "Eve", "role": "employee",
		"company": "Initech Labs", "title": "Engineer",
	})

	rec := doJSON(t, router, http.MethodGet, "/companies/Initech%20Labs/employees", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	employees := decode[[]domain.User](t, rec)
	if len(employees) != 1 || employees[0].Email != "eve@initech.com" {
		t.Errorf("employees = %s", rec.Body.String())
	}
}

// ---------- Time slots ----------

func TestTimeSlotEndpoints(t *testing.T) {
	router := newTestRouter(t)

	// Missing employeeId on GET.
	rec := doJSON(t, router, http.MethodGet, "/time-slots", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("GET without employeeId: status = %d, want 400", rec.Code)
	}
	if body := decode[map[string]string](t, rec); body["error"] != "Employee ID is required" {
		t.Errorf("error = %q", body["error"])
	}

	// Missing fields on POST.
	rec = doJSON(t, router, http.MethodPost, "/time-slots", map[string]any{"employee_id": "e1"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("POST missing fields: status = %d, want 400", rec.Code)
	}
	if body := decode[map[string]string](t, rec); body["error"] != "All fields are required" {
		t.Errorf("error = %q", body["error"])
	}

	// Create and list.
	var created []string
	for _, date := range []string{"2025-01-10", "2025-01-11"} {
		rec = doJSON(t, router, http.MethodPost, "/time-slots", map[string]any{
			"employee_id": "e1", "date": date, "start_time": "09:00", "end_time": "10:00",
		})
		if rec.Code != http.StatusCreated {
			t.Fatalf("POST: status = %d, body = %s", rec.Code, rec.Body.String())
		}
		slot := decode[domain.TimeSlot](t, rec)
		if !slot.IsAvailable || slot.IsBooked {
			t.Errorf("new slot: is_available=%v is_booked=%v", slot.IsAvailable, slot.IsBooked)
		}
		created = append(created, slot.ID)
	}

	rec = doJSON(t, router, http.MethodGet, "/time-slots?employeeId=e1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET: status = %d", rec.Code)
	}
	slots := decode[[]domain.TimeSlot](t, rec)
	if len(slots) != len(created) {
		t.Fatalf("got %d slots, want %d", len(slots), len(created))
	}

	// Another employee's listing stays empty.
	rec = doJSON(t, router, http.MethodGet, "/time-slots?employeeId=e2", nil)
	if other := decode[[]domain.TimeSlot](t, rec); len(other) != 0 {
		t.Errorf("e2 has %d slots, want 0", len(other))
	}
}

// ---------- Interviews ----------

func TestListInterviewsRequiresIdentity(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/interviews", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if body := decode[map[string]string](t, rec); body["error"] != "Employee ID or Candidate ID is required" {
		t.Errorf("error = %q", body["error"])
	}
}

func TestScheduleInterviewValidation(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/interviews", map[string]any{
		"employee_id": "e1", "candidate_id": "c1",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if body := decode[map[string]string](t, rec); body["error"] != "All fields are required" {
		t.Errorf("error = %q", body["error"])
	}
}

func TestDoubleBookingProducesDistinctInterviews(t *testing.T) {
	router := newTestRouter(t)

	body := map[string]any{
		"employee_id": "e1", "candidate_id": "c1", "company_name": "Acme",
		"date": "2025-01-10", "start_time": "09:00", "end_time": "10:00",
	}

	first := doJSON(t, router, http.MethodPost, "/interviews", body)
	second := doJSON(t, router, http.MethodPost, "/interviews", body)
	if first.Code != http.StatusCreated || second.Code != http.StatusCreated {
		t.Fatalf("statuses = %d, %d, want 201 both", first.Code, second.Code)
	}

	a := decode[domain.Interview](t, first)
	b := decode[domain.Interview](t, second)
	if a.ID == b.ID {
		t.Error("both bookings share an interview ID")
	}
	if a.MeetingLink == b.MeetingLink {
		t.Error("both bookings share a meeting reference")
	}
}

// ---------- End to end ----------

func TestEndToEndBookingScenario(t *testing.T) {
	router := newTestRouter(t)

	alice := registerUser(t, router, map[string]any{
		"email": "alice@co.com", "password": "pw123456", "name": "Alice",
		"role": "employee", "company": "Acme", "title": "Engineer",
	})
	bob := registerUser(t, router, map[string]any{
		"email": "bob@x.com", "password": "pw123456", "name": "Bob", "role": "candidate",
	})

	// Employee offers a slot.
	rec := doJSON(t, router, http.MethodPost, "/time-slots", map[string]any{
		"employee_id": alice.User.ID, "date": "2025-01-10", "start_time": "09:00", "end_time": "10:00",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create slot: status = %d", rec.Code)
	}
	slot := decode[domain.TimeSlot](t, rec)

	// Candidate books it.
	rec = doJSON(t, router, http.MethodPost, "/interviews", map[string]any{
		"employee_id": alice.User.ID, "candidate_id": bob.User.ID,
		"company_name": "Acme", "date": "2025-01-10", "start_time": "09:00", "end_time": "10:00",
		"employee_name": "Alice", "candidate_name": "Bob",
		"employee_email": "alice@co.com", "candidate_email": "bob@x.com",
		"slot_id": slot.ID,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("book: status = %d, body = %s", rec.Code, rec.Body.String())
	}

	// Candidate's dashboard shows one scheduled interview with a link.
	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/interviews?candidateId=%s", bob.User.ID), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list: status = %d", rec.Code)
	}
	interviews := decode[[]domain.Interview](t, rec)
	if len(interviews) != 1 {
		t.Fatalf("candidate has %d interviews, want 1", len(interviews))
	}
	iv := interviews[0]
	if iv.Status != domain.InterviewScheduled {
		t.Errorf("status = %q, want scheduled", iv.Status)
	}
	if !strings.HasPrefix(iv.MeetingLink, "https://meet.jit.si/") {
		t.Errorf("meeting link = %q", iv.MeetingLink)
	}

	// The employee sees it too, and the slot is consumed.
	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/interviews?employeeId=%s", alice.User.ID), nil)
	if got := decode[[]domain.Interview](t, rec); len(got) != 1 {
		t.Errorf("employee has %d interviews, want 1", len(got))
	}

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/time-slots?employeeId=%s", alice.User.ID), nil)
	slots := decode[[]domain.TimeSlot](t, rec)
	if len(slots) != 1 || !slots[0].IsBooked {
		t.Errorf("slot after booking = %s", rec.Body.String())
	}
}
