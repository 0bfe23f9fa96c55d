package domain

import (
	"context"

	"github.com/google/uuid"
)

// AgreementRepository defines the interface for agreement persistence operations
type AgreementRepository interface {
	// GetByAssetID retrieves the shared ownership agreement covering an asset
	GetByAssetID(ctx context.Context, assetID string) (*SharedOwnershipAgreement, error)

	// Create creates a new agreement together with its owner shares
	Create(ctx context.Context, agreement *SharedOwnershipAgreement) error
}

// PolicyRepository defines the interface for allocation policy persistence operations
type PolicyRepository interface {
	// GetByID retrieves an allocation policy by its ID
	GetByID(ctx context.Context, id string) (*AllocationPolicy, error)

	// Create creates a new allocation policy
	Create(ctx context.Context, policy *AllocationPolicy) error
}

// LedgerRepository defines the interface for allocation ledger persistence operations
// The ledger is append-only: computed entries are immutable audit records,
// so there is no update or delete operation.
type LedgerRepository interface {
	// SaveEntries appends a batch of ledger entries under a single run ID
	SaveEntries(ctx context.Context, runID uuid.UUID, entries []LedgerEntry) error

	// ListByPeriodLabel retrieves all entries recorded for a period label
	ListByPeriodLabel(ctx context.Context, label string) ([]LedgerEntry, error)
}
