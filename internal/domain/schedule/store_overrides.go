package schedule

import (
	"context"
	"time"
)

func (s *Store) ListOverrides(ctx context.Context) ([]CalendarOverride, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT date, kind, COALESCE(comment, '')
    FROM calendar_overrides
    ORDER BY date
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var overrides []CalendarOverride
	for rows.Next() {
		var override CalendarOverride
		if err := rows.Scan(&override.Date, &override.Kind, &override.Comment); err != nil {
			return nil, err
		}
		overrides = append(overrides, override)
	}
	return overrides, rows.Err()
}

func (s *Store) UpsertOverride(ctx context.Context, override CalendarOverride) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO calendar_overrides (date, kind, comment)
    VALUES ($1,$2,$3)
    ON CONFLICT (date)
    DO UPDATE SET kind = EXCLUDED.kind, comment = EXCLUDED.comment
  `, override.Date, override.Kind, override.Comment)
	return err
}

func (s *Store) DeleteOverride(ctx context.Context, date time.Time) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM calendar_overrides WHERE date = $1", date)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrOverrideNotFound
	}
	return nil
}
