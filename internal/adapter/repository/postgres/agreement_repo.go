package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/coownly/coownly-backend/internal/domain"
)

// agreementRepository implements domain.AgreementRepository
type agreementRepository struct {
	db *DB
}

// NewAgreementRepository creates a new agreement repository
func NewAgreementRepository(db *DB) domain.AgreementRepository {
	return &agreementRepository{db: db}
}

// GetByAssetID retrieves the shared ownership agreement covering an asset
// This method joins shared_ownership_agreements and agreement_owner_shares
func (r *agreementRepository) GetByAssetID(ctx context.Context, assetID string) (*domain.SharedOwnershipAgreement, error) {
	agreementQuery := `
		SELECT asset_id, policy_id, billing_cycle
		FROM shared_ownership_agreements
		WHERE asset_id = $1
	`

	var agreement domain.SharedOwnershipAgreement
	err := r.db.QueryRowContext(ctx, agreementQuery, assetID).Scan(
		&agreement.AssetID,
		&agreement.PolicyID,
		&agreement.BillingCycle,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("agreement not found for asset ID %s: %w", assetID, err)
		}
		return nil, fmt.Errorf("failed to get agreement: %w", err)
	}

	// Owner shares in position order: the engine emits ledger entries in this
	// order and identical inputs must produce identical output
	sharesQuery := `
		SELECT owner_id, share_percentage
		FROM agreement_owner_shares
		WHERE asset_id = $1
		ORDER BY position ASC
	`

	rows, err := r.db.QueryContext(ctx, sharesQuery, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to query owner shares: %w", err)
	}
	defer rows.Close()

	var owners []domain.OwnerShare
	for rows.Next() {
		var share domain.OwnerShare
		var percentageStr string

		if err := rows.Scan(&share.OwnerID, &percentageStr); err != nil {
			return nil, fmt.Errorf("failed to scan owner share: %w", err)
		}

		percentage, err := decimal.NewFromString(percentageStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse owner share percentage: %w", err)
		}
		share.SharePercentage = percentage

		owners = append(owners, share)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating owner shares: %w", err)
	}

	if len(owners) == 0 {
		return nil, fmt.Errorf("agreement for asset %s has no owner shares", assetID)
	}

	agreement.Owners = owners

	return &agreement, nil
}

// Create creates a new agreement together with its owner shares
func (r *agreementRepository) Create(ctx context.Context, agreement *domain.SharedOwnershipAgreement) error {
	if err := agreement.Validate(); err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	agreementQuery := `
		INSERT INTO shared_ownership_agreements (asset_id, policy_id, billing_cycle)
		VALUES ($1, $2, $3)
	`
	if _, err := tx.ExecContext(ctx, agreementQuery,
		agreement.AssetID, agreement.PolicyID, agreement.BillingCycle); err != nil {
		return fmt.Errorf("failed to insert agreement: %w", err)
	}

	shareQuery := `
		INSERT INTO agreement_owner_shares (asset_id, owner_id, share_percentage, position)
		VALUES ($1, $2, $3, $4)
	`
	for i, share := range agreement.Owners {
		if _, err := tx.ExecContext(ctx, shareQuery,
			agreement.AssetID, share.OwnerID, share.SharePercentage.String(), i); err != nil {
			return fmt.Errorf("failed to insert owner share: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit agreement: %w", err)
	}

	return nil
}
