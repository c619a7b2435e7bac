package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ysaeki/karada/internal/domain"
	"github.com/ysaeki/karada/internal/testutil"
)

func TestProfileRepo_Get_NotFoundOnFreshDatabase(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(db)

	_, err := repo.Get(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfileRepo_Upsert_RoundTrips(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(db)
	ctx := context.Background()

	saved := &domain.Profile{
		Sex:        domain.SexFemale,
		Age:        28,
		Weight:     58,
		Height:     163,
		Units:      domain.UnitMetric,
		Activity:   domain.ActivityLight,
		Formula:    domain.FormulaMifflinStJeor,
		BodyFatPct: 0,
	}
	require.NoError(t, repo.Upsert(ctx, saved))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved.Sex, got.Sex)
	assert.Equal(t, saved.Age, got.Age)
	assert.Equal(t, saved.Weight, got.Weight)
	assert.Equal(t, saved.Height, got.Height)
	assert.Equal(t, saved.Units, got.Units)
	assert.Equal(t, saved.Activity, got.Activity)
	assert.Equal(t, saved.Formula, got.Formula)
}

func TestProfileRepo_Upsert_ReplacesPreviousInputs(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(db)
	ctx := context.Background()

	first := &domain.Profile{
		Sex:      domain.SexMale,
		Age:      35,
		Weight:   80,
		Height:   178,
		Units:    domain.UnitMetric,
		Activity: domain.ActivityModerate,
		Formula:  domain.FormulaMifflinStJeor,
	}
	require.NoError(t, repo.Upsert(ctx, first))

	second := &domain.Profile{
		Sex:        domain.SexMale,
		Age:        36,
		Weight:     176,
		Height:     70,
		Units:      domain.UnitImperial,
		Activity:   domain.ActivityActive,
		Formula:    domain.FormulaKatchMcArdle,
		BodyFatPct: 18,
	}
	require.NoError(t, repo.Upsert(ctx, second))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 36, got.Age)
	assert.Equal(t, domain.UnitImperial, got.Units)
	assert.Equal(t, domain.FormulaKatchMcArdle, got.Formula)
	assert.Equal(t, 18.0, got.BodyFatPct)

	// Still a single row.
	var count int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM profile`).Scan(&count))
	assert.Equal(t, 1, count)
}
