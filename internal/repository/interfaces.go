package repository

import (
	"context"
	"errors"

	"github.com/ysaeki/karada/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// ProfileRepo persists the body composition inputs from the most recent
// energy calculation so the next run can pre-fill the form. Calculated
// results are never stored.
type ProfileRepo interface {
	Get(ctx context.Context) (*domain.Profile, error)
	Upsert(ctx context.Context, p *domain.Profile) error
}
