package allocation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/coownly/coownly-backend/internal/domain"
)

// Rationale strings for entries the engine could not allocate with confidence
const (
	rationaleMissingUsage = "Missing usage data for distribution"
	rationaleZeroUsage    = "Total usage metric value is 0 or no owners found"
)

// Result carries everything one calculation call produced: the full audit
// ledger plus the alerts explaining every allocation that could not be
// computed with full confidence. Data-quality problems never surface as
// errors - they surface here.
type Result struct {
	Ledger []domain.LedgerEntry
	Alerts []domain.Alert
}

// CompatibilityCheck decides whether a cost can be allocated under a policy
// at all. A mismatch flags the cost with SHARED_COST_MISSING_POLICY and
// skips it.
type CompatibilityCheck func(policy domain.AllocationPolicy, cost domain.CostItem) bool

// DefaultCompatibilityCheck requires a present policy (ID and type set) and a
// cost that carries a monetary total
func DefaultCompatibilityCheck(policy domain.AllocationPolicy, cost domain.CostItem) bool {
	if policy.ID == "" || policy.Type == "" {
		return false
	}
	_, ok := cost.Total()
	return ok
}

// Engine computes shared-ownership cost allocations. It is a pure function
// over its inputs: no I/O, no state between calls, safe for concurrent use.
type Engine struct {
	classifier CostClassifier
	compatible CompatibilityCheck
}

// NewEngine creates an allocation engine
// A nil classifier falls back to DefaultClassifier; a nil compatibility
// check falls back to DefaultCompatibilityCheck.
func NewEngine(classifier CostClassifier, compatible CompatibilityCheck) *Engine {
	if classifier == nil {
		classifier = DefaultClassifier{}
	}
	if compatible == nil {
		compatible = DefaultCompatibilityCheck
	}
	return &Engine{classifier: classifier, compatible: compatible}
}

// CalculateAllocation computes who owes what for the given costs
// Logic, per cost:
//  1. Skip costs belonging to a different asset (no entries, no alert)
//  2. Check policy/cost compatibility; on mismatch emit
//     SHARED_COST_MISSING_POLICY and skip the cost
//  3. Dispatch on policy type: PRO_RATA splits by ownership share, BY_USAGE
//     splits by attributed usage metrics, MIXED classifies the cost and
//     delegates to one of the two
//  4. An unsupported policy type produces flagged zero entries plus an
//     UNSUPPORTED_POLICY_TYPE alert, never a silent drop
//
// Every processed cost yields exactly one entry per owner, even when the
// data is incomplete (amount zero, status INCOMPLETE_WITH_FLAG, companion
// alert). The only hard error is a structurally invalid agreement.
func (e *Engine) CalculateAllocation(
	agreement domain.SharedOwnershipAgreement,
	policy domain.AllocationPolicy,
	costs []domain.CostItem,
	usageEvents []domain.UsageEvent,
	period domain.Period,
) (*Result, error) {
	if err := agreement.Validate(); err != nil {
		return nil, err
	}

	usageByID := make(map[string]domain.UsageEvent, len(usageEvents))
	for _, event := range usageEvents {
		usageByID[event.ID] = event
	}

	result := &Result{}

	for _, cost := range costs {
		// A cost for a different asset is simply irrelevant to this agreement
		if cost.AssetID != agreement.AssetID {
			continue
		}

		if !e.compatible(policy, cost) {
			result.Alerts = append(result.Alerts, domain.NewAlert(
				domain.AlertSharedCostMissingPolicy,
				fmt.Sprintf("cost %s cannot be matched to a usable allocation policy", cost.ID),
				cost.EvidenceRefs,
				[]string{agreement.AssetID, cost.ID, policy.ID},
			))
			continue
		}

		total, _ := cost.Total()

		switch policy.Type {
		case domain.PolicyTypeProRata:
			result.Ledger = append(result.Ledger, e.allocateProRata(agreement, cost, total, period)...)

		case domain.PolicyTypeByUsage:
			entries, alerts := e.allocateByUsage(agreement, cost, total, usageByID, period)
			result.Ledger = append(result.Ledger, entries...)
			result.Alerts = append(result.Alerts, alerts...)

		case domain.PolicyTypeMixed:
			if e.classifier.IsVariable(cost) {
				entries, alerts := e.allocateByUsage(agreement, cost, total, usageByID, period)
				result.Ledger = append(result.Ledger, entries...)
				result.Alerts = append(result.Alerts, alerts...)
			} else {
				result.Ledger = append(result.Ledger, e.allocateProRata(agreement, cost, total, period)...)
			}

		default:
			result.Alerts = append(result.Alerts, domain.NewAlert(
				domain.AlertUnsupportedPolicyType,
				fmt.Sprintf("policy %s declares unsupported type %s; cost flagged for manual allocation", policy.ID, policy.Type),
				cost.EvidenceRefs,
				[]string{agreement.AssetID, cost.ID, policy.ID},
			))
			rationale := fmt.Sprintf("Unsupported policy type %s", policy.Type)
			result.Ledger = append(result.Ledger, flaggedEntries(agreement, cost, period, rationale)...)
		}
	}

	return result, nil
}

// allocateProRata splits the cost by ownership share: each owner receives
// total x (share / 100). Depends only on the agreement, so it has no
// missing-data failure mode and always produces OK entries.
func (e *Engine) allocateProRata(
	agreement domain.SharedOwnershipAgreement,
	cost domain.CostItem,
	total decimal.Decimal,
	period domain.Period,
) []domain.LedgerEntry {
	entries := make([]domain.LedgerEntry, 0, len(agreement.Owners))

	for _, owner := range agreement.Owners {
		amount := total.Mul(owner.SharePercentage).Div(decimal.NewFromInt(100))
		entries = append(entries, domain.LedgerEntry{
			Period:          period,
			OwnerID:         owner.OwnerID,
			CostID:          cost.ID,
			AllocatedAmount: amount,
			Rationale: fmt.Sprintf("Pro-rata share of %s%% applied to total %s",
				owner.SharePercentage.String(), total.StringFixed(2)),
			EvidenceRefs: cost.EvidenceRefs,
			Status:       domain.EntryStatusOK,
		})
	}

	return entries
}

// allocateByUsage splits the cost by each owner's share of the attributed
// usage metric. Fail-soft contract: when the cost has no usage linkage, or
// the linked usage sums to zero, every owner gets a zero-amount flagged entry
// plus a companion alert, so the gap is surfaced for manual reconciliation
// instead of blocking the calculation.
func (e *Engine) allocateByUsage(
	agreement domain.SharedOwnershipAgreement,
	cost domain.CostItem,
	total decimal.Decimal,
	usageByID map[string]domain.UsageEvent,
	period domain.Period,
) ([]domain.LedgerEntry, []domain.Alert) {
	linkedIDs, hasLinkage := cost.LinkedUsageEventIDs()
	if !hasLinkage {
		alert := domain.NewAlert(
			domain.AlertOwnerChargeMismatchUsage,
			fmt.Sprintf("usage-based cost %s has no linked usage events", cost.ID),
			cost.EvidenceRefs,
			[]string{agreement.AssetID, cost.ID},
		)
		return flaggedEntries(agreement, cost, period, rationaleMissingUsage), []domain.Alert{alert}
	}

	var linked []domain.UsageEvent
	for _, id := range linkedIDs {
		if event, ok := usageByID[id]; ok {
			linked = append(linked, event)
		}
	}

	attributed, unattributed := domain.ResolveAttributions(linked)

	var alerts []domain.Alert
	totalMetric := decimal.Zero
	ownerMetrics := make(map[string]decimal.Decimal, len(agreement.Owners))

	for _, attribution := range attributed {
		totalMetric = totalMetric.Add(attribution.MetricValue)
		ownerMetrics[attribution.OwnerID] = ownerMetrics[attribution.OwnerID].Add(attribution.MetricValue)
	}

	// An unattributed event still counts in the denominator but feeds no
	// owner's numerator; each one is surfaced individually.
	for _, event := range unattributed {
		totalMetric = totalMetric.Add(event.MetricValue)
		alerts = append(alerts, domain.NewAlert(
			domain.AlertOwnerChargeMismatchUsage,
			fmt.Sprintf("usage event %s has no owner attribution tag", event.ID),
			cost.EvidenceRefs,
			[]string{agreement.AssetID, cost.ID, event.ID},
		))
	}

	// No usable denominator, or usage that names no owner at all: flag every
	// owner rather than emitting zero OK entries nobody would question.
	if totalMetric.IsZero() || len(ownerMetrics) == 0 {
		return flaggedEntries(agreement, cost, period, rationaleZeroUsage), alerts
	}

	entries := make([]domain.LedgerEntry, 0, len(agreement.Owners))
	for _, owner := range agreement.Owners {
		ownerMetric := ownerMetrics[owner.OwnerID]
		amount := total.Mul(ownerMetric).Div(totalMetric)
		ratioPct := ownerMetric.Div(totalMetric).Mul(decimal.NewFromInt(100))
		entries = append(entries, domain.LedgerEntry{
			Period:          period,
			OwnerID:         owner.OwnerID,
			CostID:          cost.ID,
			AllocatedAmount: amount,
			Rationale: fmt.Sprintf("Usage-based share of %s%% (%s of %s metric units)",
				ratioPct.StringFixed(2), ownerMetric.String(), totalMetric.String()),
			EvidenceRefs: cost.EvidenceRefs,
			Status:       domain.EntryStatusOK,
		})
	}

	return entries, alerts
}

// flaggedEntries produces the zero-amount, flagged entry per owner that the
// ledger invariant requires when a cost cannot be allocated: incompleteness
// is represented, never omitted.
func flaggedEntries(
	agreement domain.SharedOwnershipAgreement,
	cost domain.CostItem,
	period domain.Period,
	rationale string,
) []domain.LedgerEntry {
	entries := make([]domain.LedgerEntry, 0, len(agreement.Owners))
	for _, owner := range agreement.Owners {
		entries = append(entries, domain.LedgerEntry{
			Period:          period,
			OwnerID:         owner.OwnerID,
			CostID:          cost.ID,
			AllocatedAmount: decimal.Zero,
			Rationale:       rationale,
			EvidenceRefs:    cost.EvidenceRefs,
			Status:          domain.EntryStatusIncomplete,
		})
	}
	return entries
}
