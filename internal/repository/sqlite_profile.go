package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ysaeki/karada/internal/db"
	"github.com/ysaeki/karada/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context) (*domain.Profile, error) {
	query := `SELECT sex, age, weight, height, units, activity, formula, body_fat_pct
		FROM profile WHERE id = 'default'`
	row := r.db.QueryRowContext(ctx, query)

	var p domain.Profile
	err := row.Scan(
		&p.Sex,
		&p.Age,
		&p.Weight,
		&p.Height,
		&p.Units,
		&p.Activity,
		&p.Formula,
		&p.BodyFatPct,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning profile: %w", err)
	}
	return &p, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.Profile) error {
	query := `INSERT OR REPLACE INTO profile
		(id, sex, age, weight, height, units, activity, formula, body_fat_pct, updated_at)
		VALUES ('default', ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.Sex,
		p.Age,
		p.Weight,
		p.Height,
		p.Units,
		p.Activity,
		p.Formula,
		p.BodyFatPct,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}
	return nil
}
