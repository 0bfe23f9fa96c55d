package domain

// Severity grades how urgently an alert needs human attention
type Severity string

const (
	SeverityGreen  Severity = "green"  // Informational
	SeverityYellow Severity = "yellow" // Needs review
	SeverityRed    Severity = "red"    // Blocking-quality concern
)

// AlertType enumerates the closed catalog of allocation alert kinds
type AlertType string

const (
	// AlertSharedCostMissingPolicy fires when a cost cannot be matched to a
	// usable allocation policy
	AlertSharedCostMissingPolicy AlertType = "SHARED_COST_MISSING_POLICY"
	// AlertOwnerChargeMismatchUsage fires when a usage-based cost lacks
	// explicit usage linkage, or an individual usage event lacks owner
	// attribution
	AlertOwnerChargeMismatchUsage AlertType = "OWNER_CHARGE_MISMATCH_USAGE"
	// AlertUnsupportedPolicyType fires when an agreement's policy declares a
	// type the engine does not implement, so the affected costs are flagged
	// instead of silently dropped
	AlertUnsupportedPolicyType AlertType = "UNSUPPORTED_POLICY_TYPE"
	// AlertFixedCostSpikeWithoutEvidence is reserved for anomaly detection on
	// fixed costs; not emitted by the engine yet
	AlertFixedCostSpikeWithoutEvidence AlertType = "FIXED_COST_SPIKE_WITHOUT_EVIDENCE"
	// AlertScopeDriftOwnerImpact is reserved for detecting maintenance-scope
	// changes that shift owner cost exposure; not emitted by the engine yet
	AlertScopeDriftOwnerImpact AlertType = "SCOPE_DRIFT_OWNER_IMPACT"
)

// alertSeverities maps each catalog entry to its fixed severity
var alertSeverities = map[AlertType]Severity{
	AlertSharedCostMissingPolicy:       SeverityRed,
	AlertOwnerChargeMismatchUsage:      SeverityYellow,
	AlertUnsupportedPolicyType:         SeverityRed,
	AlertFixedCostSpikeWithoutEvidence: SeverityYellow,
	AlertScopeDriftOwnerImpact:         SeverityYellow,
}

// Alert is a structured, severity-tagged note that a given allocation could
// not be computed with full confidence. DrilldownIDs point back at the
// asset/cost/owner/agreement records a UI needs for navigation.
type Alert struct {
	Type             AlertType `json:"type"`
	Severity         Severity  `json:"severity"`
	ShortExplanation string    `json:"short_explanation"`
	EvidenceRefs     []string  `json:"evidence_refs"`
	DrilldownIDs     []string  `json:"drilldown_ids"`
}

// NewAlert builds an alert of the given type with its catalog severity
func NewAlert(alertType AlertType, explanation string, evidenceRefs, drilldownIDs []string) Alert {
	return Alert{
		Type:             alertType,
		Severity:         alertSeverities[alertType],
		ShortExplanation: explanation,
		EvidenceRefs:     evidenceRefs,
		DrilldownIDs:     drilldownIDs,
	}
}
