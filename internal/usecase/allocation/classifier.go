package allocation

import "github.com/coownly/coownly-backend/internal/domain"

// CostClassifier decides whether a cost behaves as variable (usage-driven)
// or fixed under a MIXED policy. Callers supply their own implementation when
// the default heuristic does not fit their asset class.
type CostClassifier interface {
	IsVariable(cost domain.CostItem) bool
}

// DefaultClassifier reproduces the platform's original heuristic: fuel
// purchases and unscheduled maintenance vary with usage, everything else
// (insurance, mooring, scheduled service) is a fixed cost of ownership.
type DefaultClassifier struct{}

// IsVariable reports whether the cost should be split by usage
func (DefaultClassifier) IsVariable(cost domain.CostItem) bool {
	return cost.Category == "fuel" || cost.Type == "unscheduled"
}

// CategoryClassifier treats costs as variable when their category or type
// appears in a configured set, so new variable-cost categories are a
// configuration change rather than a code change.
type CategoryClassifier struct {
	variableCategories map[string]struct{}
	variableTypes      map[string]struct{}
}

// NewCategoryClassifier creates a classifier from explicit category and type lists
func NewCategoryClassifier(variableCategories, variableTypes []string) *CategoryClassifier {
	c := &CategoryClassifier{
		variableCategories: make(map[string]struct{}, len(variableCategories)),
		variableTypes:      make(map[string]struct{}, len(variableTypes)),
	}
	for _, category := range variableCategories {
		c.variableCategories[category] = struct{}{}
	}
	for _, costType := range variableTypes {
		c.variableTypes[costType] = struct{}{}
	}
	return c
}

// IsVariable reports whether the cost should be split by usage
func (c *CategoryClassifier) IsVariable(cost domain.CostItem) bool {
	if _, ok := c.variableCategories[cost.Category]; ok {
		return true
	}
	_, ok := c.variableTypes[cost.Type]
	return ok
}
