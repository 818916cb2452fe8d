package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/slotline/interview-api/internal/domain"
)

type interviewRepo struct {
	pool *pgxpool.Pool
}

const interviewCols = `id, employee_id, candidate_id, company_name,
date, start_time, end_time, meeting_link, status,
employee_name, candidate_name, candidate_email, employee_email, created_at`

func (r *interviewRepo) Create(ctx context.Context, interview *domain.Interview) error {
	const q = `INSERT INTO interviews (
		id, employee_id, candidate_id, company_name,
		date, start_time, end_time, meeting_link, status,
		employee_name, candidate_name, candidate_email, employee_email, created_at
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`

	interview.ID = uuid.NewString()
	interview.CreatedAt = time.Now().UTC()

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.pool.Exec(ctx, q,
		interview.ID, interview.EmployeeID, interview.CandidateID, interview.CompanyName,
		interview.Date, interview.StartTime, interview.EndTime, interview.MeetingLink, interview.Status,
		interview.EmployeeName, interview.CandidateName, interview.CandidateEmail, interview.EmployeeEmail,
		interview.CreatedAt,
	)
	return err
}

func (r *interviewRepo) ListByEmployee(ctx context.Context, employeeID string) ([]domain.Interview, error) {
	const q = `SELECT ` + interviewCols + ` FROM interviews WHERE employee_id=$1`
	return r.list(ctx, q, employeeID)
}

func (r *interviewRepo) ListByCandidate(ctx context.Context, candidateID string) ([]domain.Interview, error) {
	const q = `SELECT ` + interviewCols + ` FROM interviews WHERE candidate_id=$1`
	return r.list(ctx, q, candidateID)
}

func (r *interviewRepo) list(ctx context.Context, q string, arg any) ([]domain.Interview, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Interview
	for rows.Next() {
		var iv domain.Interview
		if err := rows.Scan(
			&iv.ID, &iv.EmployeeID, &iv.CandidateID, &iv.CompanyName,
			&iv.Date, &iv.StartTime, &iv.EndTime, &iv.MeetingLink, &iv.Status,
			&iv.EmployeeName, &iv.CandidateName, &iv.CandidateEmail, &iv.EmployeeEmail,
			&iv.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, iv)
	}
	return out, rows.Err()
}
