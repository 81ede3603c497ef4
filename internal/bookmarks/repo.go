package bookmarks

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"newshub/pkg/models"
)

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

// Upsert saves a bookmark, keyed by (user, article URL). Re-bookmarking the
// same article refreshes the stored snapshot rather than duplicating it.
func (r *Repo) Upsert(ctx context.Context, b models.Bookmark) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO bookmarks (id, user_id, url, title, description, url_to_image, source_name, published_at, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id, url) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			url_to_image = excluded.url_to_image,
			source_name = excluded.source_name,
			published_at = excluded.published_at,
			saved_at = CURRENT_TIMESTAMP
	`, b.ID, b.UserID, b.URL, b.Title, b.Description, b.URLToImage, b.SourceName, b.PublishedAt)
	if err != nil {
		return fmt.Errorf("upsert bookmark: %w", err)
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, userID, id string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		DELETE FROM bookmarks
		WHERE user_id = ? AND id = ?
	`, userID, id)
	if err != nil {
		return false, fmt.Errorf("delete bookmark: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *Repo) List(ctx context.Context, userID string, limit, offset int) ([]models.Bookmark, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM bookmarks WHERE user_id = ?
	`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count bookmarks: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, user_id, url, title, description, url_to_image, source_name, published_at, saved_at
		FROM bookmarks
		WHERE user_id = ?
		ORDER BY saved_at DESC
		LIMIT ? OFFSET ?
	`, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookmarks: %w", err)
	}
	defer rows.Close()

	out := make([]models.Bookmark, 0, limit)
	for rows.Next() {
		b, err := scanBookmark(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows err: %w", err)
	}

	return out, total, nil
}

func (r *Repo) Get(ctx context.Context, userID, id string) (*models.Bookmark, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, user_id, url, title, description, url_to_image, source_name, published_at, saved_at
		FROM bookmarks
		WHERE user_id = ? AND id = ?
	`, userID, id)

	var (
		b           models.Bookmark
		description sql.NullString
		image       sql.NullString
		sourceName  sql.NullString
		publishedAt sql.NullString
		saved       time.Time
	)
	if err := row.Scan(&b.ID, &b.UserID, &b.URL, &b.Title, &description, &image, &sourceName, &publishedAt, &saved); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get bookmark: %w", err)
	}
	b.Description = description.String
	b.URLToImage = image.String
	b.SourceName = sourceName.String
	b.PublishedAt = publishedAt.String
	b.SavedAt = saved
	return &b, nil
}

// GetByURL resolves the stored row for a user's bookmark of the given
// article URL, including the server-assigned id and saved_at.
func (r *Repo) GetByURL(ctx context.Context, userID, url string) (*models.Bookmark, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, user_id, url, title, description, url_to_image, source_name, published_at, saved_at
		FROM bookmarks
		WHERE user_id = ? AND url = ?
	`, userID, url)

	var (
		b           models.Bookmark
		description sql.NullString
		image       sql.NullString
		sourceName  sql.NullString
		publishedAt sql.NullString
		saved       time.Time
	)
	if err := row.Scan(&b.ID, &b.UserID, &b.URL, &b.Title, &description, &image, &sourceName, &publishedAt, &saved); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get bookmark by url: %w", err)
	}
	b.Description = description.String
	b.URLToImage = image.String
	b.SourceName = sourceName.String
	b.PublishedAt = publishedAt.String
	b.SavedAt = saved
	return &b, nil
}

func scanBookmark(rows *sql.Rows) (models.Bookmark, error) {
	var (
		b           models.Bookmark
		description sql.NullString
		image       sql.NullString
		sourceName  sql.NullString
		publishedAt sql.NullString
		saved       time.Time
	)
	if err := rows.Scan(&b.ID, &b.UserID, &b.URL, &b.Title, &description, &image, &sourceName, &publishedAt, &saved); err != nil {
		return models.Bookmark{}, fmt.Errorf("scan bookmark: %w", err)
	}
	b.Description = description.String
	b.URLToImage = image.String
	b.SourceName = sourceName.String
	b.PublishedAt = publishedAt.String
	b.SavedAt = saved
	return b, nil
}
