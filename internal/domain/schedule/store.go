package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) ListShifts(ctx context.Context, employeeID string, from, to time.Time) ([]ShiftEntry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, date, kind, start_time, end_time, created_at
    FROM shifts
    WHERE employee_id = $1 AND date >= $2 AND date <= $3
    ORDER BY date
  `, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []ShiftEntry
	for rows.Next() {
		var shift ShiftEntry
		if err := rows.Scan(&shift.ID, &shift.EmployeeID, &shift.Date, &shift.Kind, &shift.StartTime, &shift.EndTime, &shift.CreatedAt); err != nil {
			return nil, err
		}
		shifts = append(shifts, shift)
	}
	return shifts, rows.Err()
}

func (s *Store) ListShiftsForRange(ctx context.Context, from, to time.Time) ([]ShiftEntry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, date, kind, start_time, end_time, created_at
    FROM shifts
    WHERE date >= $1 AND date <= $2
    ORDER BY date, employee_id
  `, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []ShiftEntry
	for rows.Next() {
		var shift ShiftEntry
		if err := rows.Scan(&shift.ID, &shift.EmployeeID, &shift.Date, &shift.Kind, &shift.StartTime, &shift.EndTime, &shift.CreatedAt); err != nil {
			return nil, err
		}
		shifts = append(shifts, shift)
	}
	return shifts, rows.Err()
}

func (s *Store) GetShift(ctx context.Context, date time.Time, employeeID string) (ShiftEntry, error) {
	var shift ShiftEntry
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, date, kind, start_time, end_time, created_at
    FROM shifts
    WHERE date = $1 AND employee_id = $2
  `, date, employeeID).Scan(&shift.ID, &shift.EmployeeID, &shift.Date, &shift.Kind, &shift.StartTime, &shift.EndTime, &shift.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return shift, ErrShiftNotFound
	}
	return shift, err
}

// UpsertShift replaces whatever entry exists for the (employee, date) pair.
// Entries are never partially patched.
func (s *Store) UpsertShift(ctx context.Context, entry ShiftEntry) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO shifts (employee_id, date, kind, start_time, end_time)
    VALUES ($1,$2,$3,$4,$5)
    ON CONFLICT (employee_id, date)
    DO UPDATE SET kind = EXCLUDED.kind, start_time = EXCLUDED.start_time, end_time = EXCLUDED.end_time
    RETURNING id
  `, entry.EmployeeID, entry.Date, entry.Kind, entry.StartTime, entry.EndTime).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) DeleteShift(ctx context.Context, date time.Time, employeeID string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM shifts WHERE date = $1 AND employee_id = $2", date, employeeID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrShiftNotFound
	}
	return nil
}
