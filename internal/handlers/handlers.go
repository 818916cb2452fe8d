package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/slotline/interview-api/internal/domain"
	"github.com/slotline/interview-api/internal/service"
	"github.com/slotline/interview-api/pkg/auth"
	"github.com/slotline/interview-api/pkg/config"
	"github.com/slotline/interview-api/pkg/logger"
)

type Handlers struct {
	authService       service.AuthService
	directoryService  service.DirectoryService
	schedulingService service.SchedulingService
	config            *config.Config
}

func New(
	authService service.AuthService,
	directoryService service.DirectoryService,
	schedulingService service.SchedulingService,
	config *config.Config,
) *Handlers {
	return &Handlers{
		authService:       authService,
		directoryService:  directoryService,
		schedulingService: schedulingService,
		config:            config,
	}
}

// Routes builds the API route table. Global middleware is mounted by the
// caller.
func (h *Handlers) Routes() chi.Router {
	r := chi.NewRouter()

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.With(h.RequireJWT("")).Get("/me", h.Me)
	})

	r.Get("/companies", h.ListCompanies)
	r.Get("/companies/{name}/employees", h.ListCompanyEmployees)

	r.Route("/interviews", func(r chi.Router) {
		r.Get("/", h.ListInterviews)
		r.Post("/", h.ScheduleInterview)
	})

	r.Route("/time-slots", func(r chi.Router) {
		r.Get("/", h.ListTimeSlots)
		r.Post("/", h.CreateTimeSlot)
	})

	return r
}

type claimsKeyType struct{}

var claimsKey claimsKeyType

// RequireJWT verifies the Bearer token and, when requiredRole is non-empty,
// the role claim.
func (h *Handlers) RequireJWT(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				writeError(w, http.StatusUnauthorized, "Missing or invalid authorization header", "UNAUTHORIZED")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := auth.Parse(token, h.config.Auth.JWTSecret)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "Invalid token", "INVALID_TOKEN")
				return
			}

			if requiredRole != "" && claims.Role != requiredRole {
				writeError(w, http.StatusForbidden, "Insufficient permissions", "FORBIDDEN")
				return
			}

			ctx := context.WithValue(r.Context(), logger.UserIDKey, claims.Sub)
			ctx = context.WithValue(ctx, claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Helper functions
func getClaims(r *http.Request) *auth.Claims {
	if claims, ok := r.Context().Value(claimsKey).(*auth.Claims); ok {
		return claims
	}
	return nil
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, statusCode int, message, code string) {
	response := map[string]string{
		"error": message,
		"code":  code,
	}
	writeJSON(w, statusCode, response)
}

// writeServiceError maps the domain sentinels to status codes; anything else
// collapses to a generic server error with no detail leaked.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrEmailExists):
		writeError(w, http.StatusConflict, "User already exists with this email", "EMAIL_EXISTS")
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid credentials", "UNAUTHORIZED")
	case errors.Is(err, domain.ErrRoleMismatch):
		writeError(w, http.StatusUnauthorized, "Invalid role for this account", "UNAUTHORIZED")
	case errors.Is(err, domain.ErrSlotUnavailable):
		writeError(w, http.StatusConflict, "Time slot is no longer available", "CONFLICT")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found", "NOT_FOUND")
	default:
		logger.ErrorContext(r.Context(), "Request failed", "error", err, "path", r.URL.Path)
		writeError(w, http.StatusInternalServerError, fallback, "INTERNAL_ERROR")
	}
}
