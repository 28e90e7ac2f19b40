package schedule

import (
	"context"
	"time"
)

func (s *Store) ListOvertimes(ctx context.Context, employeeID string, from, to time.Time) ([]OvertimeEntry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, date, kind, start_time, end_time, COALESCE(comment, ''), created_at
    FROM overtimes
    WHERE employee_id = $1 AND date >= $2 AND date <= $3
    ORDER BY date, start_time
  `, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []OvertimeEntry
	for rows.Next() {
		var entry OvertimeEntry
		if err := rows.Scan(&entry.ID, &entry.EmployeeID, &entry.Date, &entry.Kind, &entry.StartTime, &entry.EndTime, &entry.Comment, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *Store) CreateOvertime(ctx context.Context, entry OvertimeEntry) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO overtimes (employee_id, date, kind, start_time, end_time, comment)
    VALUES ($1,$2,$3,$4,$5,$6)
    RETURNING id
  `, entry.EmployeeID, entry.Date, entry.Kind, entry.StartTime, entry.EndTime, entry.Comment).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

// ReplaceOvertimes swaps the full overtime set for one (date, employee) key in a
// single transaction. The old entries are discarded even when the new set is empty.
func (s *Store) ReplaceOvertimes(ctx context.Context, date time.Time, employeeID string, entries []OvertimeEntry) error {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, "DELETE FROM overtimes WHERE date = $1 AND employee_id = $2", date, employeeID); err != nil {
		return err
	}
	for _, entry := range entries {
		_, err := tx.Exec(ctx, `
      INSERT INTO overtimes (employee_id, date, kind, start_time, end_time, comment)
      VALUES ($1,$2,$3,$4,$5,$6)
    `, employeeID, date, entry.Kind, entry.StartTime, entry.EndTime, entry.Comment)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (s *Store) DeleteOvertime(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM overtimes WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrOvertimeNotFound
	}
	return nil
}
