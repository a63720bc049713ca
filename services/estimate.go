package services

import (
	"math"

	"github.com/mohitkushwaha4020/zaika/repository"
)

const (
	defaultEstimate = 30 // minutes, for an empty line list
	baseTime        = 10 // fixed kitchen overhead per order
	fallbackPrep    = 10 // per-unit minutes when the menu item is gone
	minEstimate     = 15
	maxEstimate     = 60
)

// EstimatePrepTime maps an order's lines to an estimated preparation time
// in minutes. The aggregation is a sum: base overhead plus, per line,
// quantity times the referenced menu item's preparation time (fallback
// when the id no longer resolves), each contribution rounded up. The
// result is clamped to [15, 60].
func EstimatePrepTime(catalog repository.MenuCatalog, lines []OrderLineIn) int {
	if len(lines) == 0 {
		return defaultEstimate
	}

	total := baseTime
	for _, line := range lines {
		prep := fallbackPrep
		if item, err := catalog.Get(line.ItemID); err == nil {
			prep = item.PreparationTime
		}
		total += int(math.Ceil(line.Quantity * float64(prep)))
	}

	if total < minEstimate {
		return minEstimate
	}
	if total > maxEstimate {
		return maxEstimate
	}
	return total
}
