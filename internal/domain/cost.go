package domain

import "github.com/shopspring/decimal"

// CostItem is the engine's read-only view of an externally owned cost record
// (an expense or a maintenance event). Expenses carry their total in Amount;
// maintenance events carry it in TotalCost. Total resolves whichever is set.
type CostItem struct {
	ID           string
	AssetID      string
	Amount       *decimal.Decimal // Set for expenses
	TotalCost    *decimal.Decimal // Set for maintenance events
	Category     string           // e.g. "fuel", "insurance"
	Type         string           // e.g. "scheduled", "unscheduled"
	EvidenceRefs []string

	// Optional linkage to the usage records this cost should be split by.
	// UsageEventID is the single-link form; UsageEventIDs the list form.
	UsageEventID  string
	UsageEventIDs []string
}

// Total returns the monetary total of the cost item and whether one was
// present at all. Amount wins when both fields are set.
func (c *CostItem) Total() (decimal.Decimal, bool) {
	if c.Amount != nil {
		return *c.Amount, true
	}
	if c.TotalCost != nil {
		return *c.TotalCost, true
	}
	return decimal.Zero, false
}

// LinkedUsageEventIDs returns the usage events this cost is explicitly linked
// to, in declaration order, and whether any linkage exists at all. A cost
// with no linkage cannot be allocated by usage.
func (c *CostItem) LinkedUsageEventIDs() ([]string, bool) {
	if c.UsageEventID != "" {
		return []string{c.UsageEventID}, true
	}
	if len(c.UsageEventIDs) > 0 {
		return c.UsageEventIDs, true
	}
	return nil, false
}
