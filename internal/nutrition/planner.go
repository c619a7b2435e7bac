// Package nutrition holds the AI-assisted flows: the macro gram planner, the
// ad-hoc calorie estimator, and the conversational advisor. Each builds a
// prompt, delegates to the completion service, and validates the result at
// the boundary.
package nutrition

import (
	"context"
	"fmt"
	"strings"

	"github.com/ysaeki/karada/internal/domain"
	"github.com/ysaeki/karada/internal/llm"
)

// Planner allocates grams across a food list to hit a macro target.
type Planner interface {
	// Plan validates the request and produces a macro plan. Identical
	// requests reuse a memoized result instead of re-invoking the service.
	Plan(ctx context.Context, req domain.PlanRequest) (*domain.MacroPlan, error)

	// Invalidate clears the memoized results.
	Invalidate()
}

type planner struct {
	client llm.Client
	cache  *planCache
}

// NewPlanner creates a Planner backed by a completion-service client.
func NewPlanner(client llm.Client) Planner {
	return &planner{client: client, cache: newPlanCache()}
}

// planResponse is the JSON structure expected from the service.
type planResponse struct {
	Grams     map[string]float64 `json:"grams"`
	TotalKcal float64            `json:"total_kcal"`
	PFC       *pfcSplit          `json:"pfc"`
}

type pfcSplit struct {
	ProteinPct float64 `json:"protein_pct"`
	FatPct     float64 `json:"fat_pct"`
	CarbPct    float64 `json:"carb_pct"`
}

func (p *planner) Plan(ctx context.Context, req domain.PlanRequest) (*domain.MacroPlan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.MinGrams == 0 {
		req.MinGrams = domain.DefaultMinGrams
	}

	key := cacheKey(req)
	if plan, ok := p.cache.get(key); ok {
		return plan, nil
	}

	resp, err := p.client.Complete(ctx, llm.CompleteRequest{
		Task: llm.TaskPlan,
		Messages: []llm.Message{
			{Role: string(domain.RoleSystem), Content: plannerSystemPrompt},
			{Role: string(domain.RoleUser), Content: buildPlanUserPrompt(req)},
		},
		JSONOnly: true,
	})
	if err != nil {
		return nil, err
	}

	parsed, err := llm.ExtractJSON[planResponse](resp.Text, planValidator(req))
	if err != nil {
		return nil, err
	}

	plan := assemblePlan(req, parsed)
	p.cache.put(key, plan)
	return plan, nil
}

func (p *planner) Invalidate() {
	p.cache.clear()
}

// buildPlanUserPrompt renders the request as the planner's instruction,
// labeling each food with its position-derived priority.
func buildPlanUserPrompt(req domain.PlanRequest) string {
	var b strings.Builder

	b.WriteString("Foods (in priority order):\n")
	for i, food := range req.Foods {
		fmt.Fprintf(&b, "- %s (%s)\n", food, domain.PriorityForIndex(i))
	}
	fmt.Fprintf(&b, "\nMinimum grams per food: %.0f g\n", req.MinGrams)
	fmt.Fprintf(&b, "Target total calories: %.1f kcal\n", req.Target.TotalKcal)
	fmt.Fprintf(&b, "Target PFC split: P %.1f%% / F %.1f%% / C %.1f%%\n",
		req.Target.ProteinPct, req.Target.FatPct, req.Target.CarbPct)

	return b.String()
}

// planValidator rejects responses missing any required key: per-food grams,
// total calories, or the macro percentages.
func planValidator(req domain.PlanRequest) llm.SchemaValidator[planResponse] {
	return func(resp planResponse) error {
		if len(resp.Grams) == 0 {
			return fmt.Errorf("missing required key \"grams\"")
		}
		for _, food := range req.Foods {
			if _, ok := resp.Grams[food]; !ok {
				return fmt.Errorf("grams missing requested food %q", food)
			}
		}
		if resp.TotalKcal <= 0 {
			return fmt.Errorf("missing or non-positive \"total_kcal\"")
		}
		if resp.PFC == nil {
			return fmt.Errorf("missing required key \"pfc\"")
		}
		return nil
	}
}

// assemblePlan converts a validated response into a MacroPlan, applying the
// gram-floor repair: any food below the minimum is clamped up to it. The
// repair does not rebalance total_kcal or the PFC split, so a repaired plan's
// totals may drift slightly from its parts; Repaired flags this for display.
func assemblePlan(req domain.PlanRequest, resp planResponse) *domain.MacroPlan {
	grams := make(map[string]float64, len(resp.Grams))
	repaired := false
	for food, g := range resp.Grams {
		if g < req.MinGrams {
			g = req.MinGrams
			repaired = true
		}
		grams[food] = g
	}

	var totalGrams float64
	for _, g := range grams {
		totalGrams += g
	}

	// Preserve request order and apportion total kcal by gram share.
	foods := make([]domain.FoodAllocation, 0, len(req.Foods))
	for _, name := range req.Foods {
		g := grams[name]
		var kcal float64
		if totalGrams > 0 {
			kcal = resp.TotalKcal * (g / totalGrams)
		}
		foods = append(foods, domain.FoodAllocation{Name: name, Grams: g, Kcal: kcal})
	}

	return &domain.MacroPlan{
		Foods:     foods,
		TotalKcal: resp.TotalKcal,
		Split: domain.MacroSplit{
			ProteinPct: resp.PFC.ProteinPct,
			FatPct:     resp.PFC.FatPct,
			CarbPct:    resp.PFC.CarbPct,
		},
		Repaired: repaired,
	}
}
