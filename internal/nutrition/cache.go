package nutrition

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/ysaeki/karada/internal/domain"
)

// planCache memoizes planner results by their exact input tuple, so
// resubmitting unchanged inputs does not re-invoke the external service.
type planCache struct {
	mu    sync.Mutex
	plans map[string]*domain.MacroPlan
}

func newPlanCache() *planCache {
	return &planCache{plans: make(map[string]*domain.MacroPlan)}
}

// cacheKey normalizes a request into a string key: sorted food list, total
// kcal, the three ratios, and the minimum grams. Foods are sorted so two
// orderings of the same food set share a key.
func cacheKey(req domain.PlanRequest) string {
	foods := make([]string, len(req.Foods))
	copy(foods, req.Foods)
	sort.Strings(foods)

	return fmt.Sprintf("%s|%g|%g|%g|%g|%g",
		strings.Join(foods, ","),
		req.Target.TotalKcal,
		req.Target.ProteinPct,
		req.Target.FatPct,
		req.Target.CarbPct,
		req.MinGrams,
	)
}

func (c *planCache) get(key string) (*domain.MacroPlan, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	plan, ok := c.plans[key]
	return plan, ok
}

func (c *planCache) put(key string, plan *domain.MacroPlan) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.plans[key] = plan
}

func (c *planCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.plans = make(map[string]*domain.MacroPlan)
}
