package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/slotline/interview-api/internal/domain"
)

// ListCompanies handles listing the seeded companies
func (h *Handlers) ListCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.directoryService.ListCompanies(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Failed to fetch companies")
		return
	}
	if companies == nil {
		companies = []domain.Company{}
	}

	writeJSON(w, http.StatusOK, companies)
}

// ListCompanyEmployees handles listing employees of one company. The path
// segment arrives URL-decoded.
func (h *Handlers) ListCompanyEmployees(w http.ResponseWriter, r *http.Request) {
	companyName := chi.URLParam(r, "name")

	employees, err := h.directoryService.ListEmployees(r.Context(), companyName)
	if err != nil {
		writeServiceError(w, r, err, "Failed to fetch employees")
		return
	}
	if employees == nil {
		employees = []domain.User{}
	}

	writeJSON(w, http.StatusOK, employees)
}
