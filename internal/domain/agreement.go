package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// BillingCycle represents how often an agreement is settled
type BillingCycle string

const (
	BillingCycleMonthly   BillingCycle = "MONTHLY"
	BillingCycleQuarterly BillingCycle = "QUARTERLY"
	BillingCycleAnnual    BillingCycle = "ANNUAL"
)

// OwnerParty identifies a co-owner of a shared asset.
// Identity only; it owns no other entities.
type OwnerParty struct {
	ID      string
	Name    string
	Private bool // Hide the owner's name in exported reports
}

// OwnerShare is one owner's stake in a shared ownership agreement
type OwnerShare struct {
	OwnerID         string
	SharePercentage decimal.Decimal // 0-100; expected (not enforced) to sum to 100 across owners
}

// SharedOwnershipAgreement records which owners share an asset and in what
// proportions. Created by an external configuration process; read-only to the
// allocation engine and never mutated during a calculation.
type SharedOwnershipAgreement struct {
	AssetID      string
	Owners       []OwnerShare // Order is significant: ledger entries follow it
	PolicyID     string
	BillingCycle BillingCycle
}

// Validate ensures the agreement adheres to domain rules
// Returns an error if validation fails
// CRITICAL: An agreement with no owner shares is structurally broken and can
// never be allocated against. Share percentages are deliberately NOT checked
// to sum to 100 (that reconciliation belongs to the configuration process).
func (a *SharedOwnershipAgreement) Validate() error {
	if a.AssetID == "" {
		return errors.New("agreement asset ID cannot be empty")
	}

	if len(a.Owners) == 0 {
		return errors.New("agreement must have at least one owner share")
	}

	for _, owner := range a.Owners {
		if owner.OwnerID == "" {
			return errors.New("owner share must reference an owner ID")
		}
		if owner.SharePercentage.IsNegative() {
			return errors.New("owner share percentage cannot be negative")
		}
	}

	return nil
}
