package energy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ysaeki/karada/internal/domain"
)

// Worked example: male, 70kg, 175cm, 30y
// 10*70 + 6.25*175 - 5*30 + 5 = 700 + 1093.75 - 150 + 5 = 1648.75
func TestMifflinStJeor_KnownValue(t *testing.T) {
	bmr := MifflinStJeor(domain.SexMale, 70, 175, 30)
	assert.InDelta(t, 1648.75, bmr, 1e-9)
}

// The male and female formulas differ only by the +5 / -161 constant, so the
// gap is exactly 166 for any shared inputs.
func TestMifflinStJeor_SexOffset(t *testing.T) {
	cases := []struct {
		w, h float64
		age  int
	}{
		{70, 175, 30},
		{55, 160, 22},
		{95.5, 188.2, 47},
	}

	for _, tc := range cases {
		male := MifflinStJeor(domain.SexMale, tc.w, tc.h, tc.age)
		female := MifflinStJeor(domain.SexFemale, tc.w, tc.h, tc.age)
		assert.InDelta(t, 166.0, male-female, 1e-9)
	}
}

func TestKatchMcArdle_KnownValue(t *testing.T) {
	// 70kg at 20% body fat: lbm = 56, bmr = 370 + 21.6*56 = 1579.6
	bmr := KatchMcArdle(70, 20)
	assert.InDelta(t, 1579.6, bmr, 1e-9)
}
