package postgresql

import (
	"context"
	"errors"

	"github.com/attendo-app/attendo-backend-go/internal/domain/announcement"
	"github.com/attendo-app/attendo-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type announcementRepositoryImpl struct {
	db *database.DB
}

func NewAnnouncementRepository(db *database.DB) announcement.AnnouncementRepository {
	return &announcementRepositoryImpl{db: db}
}

// Create implements announcement.AnnouncementRepository.
func (r *announcementRepositoryImpl) Create(ctx context.Context, a announcement.Announcement) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO announcements (title, description, date)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, a.Title, a.Description, a.Date).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return announcement.Announcement{}, err
	}

	return a, nil
}

// GetByID implements announcement.AnnouncementRepository.
func (r *announcementRepositoryImpl) GetByID(ctx context.Context, id string) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, title, description, date, created_at, updated_at
		FROM announcements
		WHERE id = $1
	`

	var a announcement.Announcement
	err := q.QueryRow(ctx, query, id).
		Scan(&a.ID, &a.Title, &a.Description, &a.Date, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return announcement.Announcement{}, announcement.ErrAnnouncementNotFound
		}
		return announcement.Announcement{}, err
	}

	return a, nil
}

// List implements announcement.AnnouncementRepository.
func (r *announcementRepositoryImpl) List(ctx context.Context) ([]announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, title, description, date, created_at, updated_at
		FROM announcements
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var announcements []announcement.Announcement
	for rows.Next() {
		var a announcement.Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.Date, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		announcements = append(announcements, a)
	}

	return announcements, rows.Err()
}

// Update implements announcement.AnnouncementRepository.
func (r *announcementRepositoryImpl) Update(ctx context.Context, a announcement.Announcement) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE announcements
		SET title = $1, description = $2, date = $3, updated_at = NOW()
		WHERE id = $4
	`

	tag, err := q.Exec(ctx, query, a.Title, a.Description, a.Date, a.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return announcement.ErrAnnouncementNotFound
	}

	return nil
}

// Delete implements announcement.AnnouncementRepository.
func (r *announcementRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return announcement.ErrAnnouncementNotFound
	}

	return nil
}
