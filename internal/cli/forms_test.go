package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ysaeki/karada/internal/domain"
)

func TestValidatePositiveFloat(t *testing.T) {
	assert.NoError(t, validatePositiveFloat("70"))
	assert.NoError(t, validatePositiveFloat("70.5"))
	assert.NoError(t, validatePositiveFloat(" 70 "))
	assert.Error(t, validatePositiveFloat(""))
	assert.Error(t, validatePositiveFloat("0"))
	assert.Error(t, validatePositiveFloat("-3"))
	assert.Error(t, validatePositiveFloat("abc"))
}

func TestValidatePositiveInt(t *testing.T) {
	assert.NoError(t, validatePositiveInt("30"))
	assert.Error(t, validatePositiveInt("30.5"))
	assert.Error(t, validatePositiveInt("0"))
	assert.Error(t, validatePositiveInt(""))
}

func TestValidateBodyFat(t *testing.T) {
	assert.NoError(t, validateBodyFat("20"))
	assert.NoError(t, validateBodyFat("0.5"))
	assert.Error(t, validateBodyFat("0"))
	assert.Error(t, validateBodyFat("100"))
	assert.Error(t, validateBodyFat("-1"))
	assert.Error(t, validateBodyFat("x"))
}

func TestSplitFoods(t *testing.T) {
	assert.Equal(t,
		[]string{"rice", "chicken breast", "broccoli"},
		splitFoods("rice, chicken breast ,broccoli"))
	assert.Empty(t, splitFoods(" , ,"))
	assert.Empty(t, splitFoods(""))
}

func TestProfileFormData_SeedsFromSavedProfile(t *testing.T) {
	prev := &domain.Profile{
		Sex:        domain.SexFemale,
		Age:        28,
		Weight:     58.5,
		Height:     163,
		Units:      domain.UnitMetric,
		Activity:   domain.ActivityLight,
		Formula:    domain.FormulaKatchMcArdle,
		BodyFatPct: 22,
	}

	d := newProfileFormData(prev)
	assert.Equal(t, domain.SexFemale, d.Sex)
	assert.Equal(t, "28", d.Age)
	assert.Equal(t, "58.5", d.Weight)
	assert.Equal(t, "22", d.BodyFat)

	got := d.Profile()
	assert.Equal(t, prev.Sex, got.Sex)
	assert.Equal(t, prev.Age, got.Age)
	assert.Equal(t, prev.Weight, got.Weight)
	assert.Equal(t, prev.BodyFatPct, got.BodyFatPct)
	require.NoError(t, got.Validate())
}

func TestProfileFormData_DefaultsWithoutSavedProfile(t *testing.T) {
	d := newProfileFormData(nil)
	assert.Equal(t, domain.SexMale, d.Sex)
	assert.Equal(t, domain.UnitMetric, d.Units)
	assert.Equal(t, domain.FormulaMifflinStJeor, d.Formula)
	assert.Equal(t, domain.ActivityModerate, d.Activity)
	assert.Empty(t, d.Age)
}

func TestTargetFormData_SeedsKcalFromEnergy(t *testing.T) {
	d := newTargetFormData(2250.4)
	assert.Equal(t, "2250", d.Kcal)

	target := d.Target()
	assert.Equal(t, 30.0, target.ProteinPct)
	assert.Equal(t, 20.0, target.FatPct)
	assert.Equal(t, 50.0, target.CarbPct)
	require.NoError(t, target.Validate())
}

func TestTargetFormData_NoSeedLeavesKcalBlank(t *testing.T) {
	d := newTargetFormData(0)
	assert.Empty(t, d.Kcal)
}
