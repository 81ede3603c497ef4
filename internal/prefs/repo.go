package prefs

import (
	"context"
	"database/sql"
	"encoding/json"
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

// Get returns the user's preferences, or nil if they never saved any.
func (r *Repo) Get(ctx context.Context, userID string) (*models.Preference, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT user_id, country, language, categories, updated_at
		FROM preferences
		WHERE user_id = ?
	`, userID)

	var (
		p              models.Preference
		categoriesJSON string
		updated        time.Time
	)
	if err := row.Scan(&p.UserID, &p.Country, &p.Language, &categoriesJSON, &updated); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get preferences: %w", err)
	}
	p.UpdatedAt = updated

	_ = json.Unmarshal([]byte(categoriesJSON), &p.Categories)
	if p.Categories == nil {
		p.Categories = []string{}
	}
	return &p, nil
}

func (r *Repo) Upsert(ctx context.Context, p models.Preference) error {
	categoriesJSON, err := json.Marshal(p.Categories)
	if err != nil {
		return fmt.Errorf("marshal categories: %w", err)
	}

	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO preferences (user_id, country, language, categories, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id) DO UPDATE SET
			country = excluded.country,
			language = excluded.language,
			categories = excluded.categories,
			updated_at = CURRENT_TIMESTAMP
	`, p.UserID, p.Country, p.Language, string(categoriesJSON))
	if err != nil {
		return fmt.Errorf("upsert preferences: %w", err)
	}
	return nil
}
