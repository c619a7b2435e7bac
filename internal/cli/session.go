package cli

import (
	"time"

	"github.com/google/uuid"

	"github.com/ysaeki/karada/internal/domain"
)

// Session carries results across flows within a single run. The energy
// estimate feeds the planner's default calorie target, and the last plan
// survives a failed replan. Nothing here is persisted.
type Session struct {
	ID        string
	StartedAt time.Time

	LastProfile *domain.Profile
	LastEnergy  *domain.EnergyEstimate
	LastPlan    *domain.MacroPlan
}

// NewSession creates a fresh session with a unique ID.
func NewSession() *Session {
	return &Session{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
	}
}

// SetEnergy records a completed energy calculation.
func (s *Session) SetEnergy(p *domain.Profile, e *domain.EnergyEstimate) {
	s.LastProfile = p
	s.LastEnergy = e
}

// DefaultPlanKcal returns the calorie target the planner form should
// suggest: the maintenance figure from the last energy calculation, or
// zero when none has been run yet.
func (s *Session) DefaultPlanKcal() float64 {
	if s.LastEnergy == nil {
		return 0
	}
	return s.LastEnergy.TDEE
}
