package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/attendo-app/attendo-backend-go/internal/domain/timetable"
	"github.com/attendo-app/attendo-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type timetableRepositoryImpl struct {
	db *database.DB
}

func NewTimetableRepository(db *database.DB) timetable.TimetableRepository {
	return &timetableRepositoryImpl{db: db}
}

// shiftPayload is the jsonb column shape. Only the active variant is stored,
// so a kind switch physically replaces the old variant's fields.
type shiftPayload struct {
	Single *timetable.SingleShift `json:"single,omitempty"`
	Split  *timetable.SplitShift  `json:"split,omitempty"`
	Weekly *timetable.WeeklyShift `json:"weekly,omitempty"`
}

func marshalShift(t timetable.Timetable) ([]byte, error) {
	payload := shiftPayload{
		Single: t.Single,
		Split:  t.Split,
		Weekly: t.Weekly,
	}
	return json.Marshal(payload)
}

func unmarshalShift(t *timetable.Timetable, data []byte) error {
	var payload shiftPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("decode shift payload: %w", err)
	}
	t.Single = payload.Single
	t.Split = payload.Split
	t.Weekly = payload.Weekly
	return nil
}

// List implements timetable.TimetableRepository.
func (r *timetableRepositoryImpl) List(ctx context.Context) ([]timetable.Timetable, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, shift_type, shift, created_at, updated_at
		FROM timetables
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var timetables []timetable.Timetable
	for rows.Next() {
		var t timetable.Timetable
		var shift []byte
		if err := rows.Scan(&t.ID, &t.Name, &t.Kind, &shift, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		if err := unmarshalShift(&t, shift); err != nil {
			return nil, err
		}
		timetables = append(timetables, t)
	}

	return timetables, rows.Err()
}

// GetByID implements timetable.TimetableRepository.
func (r *timetableRepositoryImpl) GetByID(ctx context.Context, id string) (timetable.Timetable, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, shift_type, shift, created_at, updated_at
		FROM timetables
		WHERE id = $1
	`

	var t timetable.Timetable
	var shift []byte
	err := q.QueryRow(ctx, query, id).Scan(&t.ID, &t.Name, &t.Kind, &shift, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timetable.Timetable{}, timetable.ErrTimetableNotFound
		}
		return timetable.Timetable{}, err
	}
	if err := unmarshalShift(&t, shift); err != nil {
		return timetable.Timetable{}, err
	}

	return t, nil
}

// Create implements timetable.TimetableRepository.
func (r *timetableRepositoryImpl) Create(ctx context.Context, t timetable.Timetable) (timetable.Timetable, error) {
	q := GetQuerier(ctx, r.db)

	shift, err := marshalShift(t)
	if err != nil {
		return timetable.Timetable{}, err
	}

	query := `
		INSERT INTO timetables (name, shift_type, shift)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err = q.QueryRow(ctx, query, t.Name, t.Kind, shift).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return timetable.Timetable{}, err
	}

	return t, nil
}

// Update implements timetable.TimetableRepository.
func (r *timetableRepositoryImpl) Update(ctx context.Context, t timetable.Timetable) error {
	q := GetQuerier(ctx, r.db)

	shift, err := marshalShift(t)
	if err != nil {
		return err
	}

	query := `
		UPDATE timetables
		SET name = $1, shift_type = $2, shift = $3, updated_at = NOW()
		WHERE id = $4
	`

	tag, err := q.Exec(ctx, query, t.Name, t.Kind, shift, t.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return timetable.ErrTimetableNotFound
	}

	return nil
}

// Delete implements timetable.TimetableRepository.
func (r *timetableRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM timetables WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return timetable.ErrTimetableNotFound
	}

	return nil
}
