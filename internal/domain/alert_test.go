package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAlert_SeverityFromCatalog(t *testing.T) {
	tests := []struct {
		alertType AlertType
		severity  Severity
	}{
		{AlertSharedCostMissingPolicy, SeverityRed},
		{AlertOwnerChargeMismatchUsage, SeverityYellow},
		{AlertUnsupportedPolicyType, SeverityRed},
		{AlertFixedCostSpikeWithoutEvidence, SeverityYellow},
		{AlertScopeDriftOwnerImpact, SeverityYellow},
	}

	for _, tt := range tests {
		alert := NewAlert(tt.alertType, "explanation", nil, nil)
		assert.Equal(t, tt.alertType, alert.Type)
		assert.Equal(t, tt.severity, alert.Severity, "severity for %s", tt.alertType)
	}
}

func TestNewAlert_CarriesEvidenceAndDrilldown(t *testing.T) {
	alert := NewAlert(
		AlertOwnerChargeMismatchUsage,
		"usage event has no owner attribution tag",
		[]string{"receipt-42"},
		[]string{"asset-1", "cost-1"},
	)

	assert.Equal(t, "usage event has no owner attribution tag", alert.ShortExplanation)
	assert.Equal(t, []string{"receipt-42"}, alert.EvidenceRefs)
	assert.Equal(t, []string{"asset-1", "cost-1"}, alert.DrilldownIDs)
}
