package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/slotline/interview-api/internal/domain"
)

type timeSlotRepo struct {
	pool *pgxpool.Pool
}

const slotCols = `id, employee_id, date, start_time, end_time, is_available, is_booked`

func (r *timeSlotRepo) Create(ctx context.Context, slot *domain.TimeSlot) error {
	const q = `INSERT INTO time_slots (id, employee_id, date, start_time, end_time, is_available, is_booked)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`

	slot.ID = uuid.NewString()

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.pool.Exec(ctx, q,
		slot.ID, slot.EmployeeID, slot.Date,
		slot.StartTime, slot.EndTime, slot.IsAvailable, slot.IsBooked,
	)
	return err
}

func (r *timeSlotRepo) FindByID(ctx context.Context, id string) (*domain.TimeSlot, error) {
	const q = `SELECT ` + slotCols + ` FROM time_slots WHERE id=$1`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var s domain.TimeSlot
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&s.ID, &s.EmployeeID, &s.Date,
		&s.StartTime, &s.EndTime, &s.IsAvailable, &s.IsBooked,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *timeSlotRepo) ListByEmployee(ctx context.Context, employeeID string) ([]domain.TimeSlot, error) {
	const q = `SELECT ` + slotCols + ` FROM time_slots WHERE employee_id=$1`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.TimeSlot
	for rows.Next() {
		var s domain.TimeSlot
		if err := rows.Scan(
			&s.ID, &s.EmployeeID, &s.Date,
			&s.StartTime, &s.EndTime, &s.IsAvailable, &s.IsBooked,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// MarkBooked relies on the conditional UPDATE for the compare-and-set: zero
// rows affected means the slot was missing or already booked.
func (r *timeSlotRepo) MarkBooked(ctx context.Context, id string) (bool, error) {
	const q = `UPDATE time_slots SET is_booked=true, is_available=false
		WHERE id=$1 AND is_booked=false`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	tag, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
