package service

import (
	"context"
	"fmt"

	"github.com/slotline/interview-api/internal/domain"
	"github.com/slotline/interview-api/internal/store"
)

// DirectoryService serves the read-only company browsing path.
type DirectoryService interface {
	ListCompanies(ctx context.Context) ([]domain.Company, error)
	ListEmployees(ctx context.Context, companyName string) ([]domain.User, error)
}

type directoryService struct {
	companies store.CompanyRepository
	users     store.UserRepository
}

func NewDirectoryService(companies store.CompanyRepository, users store.UserRepository) DirectoryService {
	return &directoryService{
		companies: companies,
		users:     users,
	}
}

func (s *directoryService) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	companies, err := s.companies.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}

// ListEmployees matches the company by exact, case-sensitive name; company
// membership on a user is a denormalized string, not a foreign key.
func (s *directoryService) ListEmployees(ctx context.Context, companyName string) ([]domain.User, error) {
	employees, err := s.users.ListEmployeesByCompany(ctx, companyName)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}
