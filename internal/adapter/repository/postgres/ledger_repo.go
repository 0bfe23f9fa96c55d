package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/coownly/coownly-backend/internal/domain"
)

// ledgerRepository implements domain.LedgerRepository
type ledgerRepository struct {
	db *DB
}

// NewLedgerRepository creates a new allocation ledger repository
func NewLedgerRepository(db *DB) domain.LedgerRepository {
	return &ledgerRepository{db: db}
}

// SaveEntries appends a batch of ledger entries under a single run ID
// Entries are immutable audit records: insert only, inside one transaction
// so a run is persisted completely or not at all.
func (r *ledgerRepository) SaveEntries(ctx context.Context, runID uuid.UUID, entries []domain.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO allocation_ledger_entries
			(id, run_id, period_label, period_start, period_end,
			 owner_id, cost_id, allocated_amount, rationale, evidence_refs, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	for _, entry := range entries {
		_, err := tx.ExecContext(ctx, query,
			uuid.New(),
			runID,
			entry.Period.Label,
			entry.Period.Start,
			entry.Period.End,
			entry.OwnerID,
			entry.CostID,
			entry.AllocatedAmount.String(),
			entry.Rationale,
			pq.Array(entry.EvidenceRefs),
			entry.Status,
		)
		if err != nil {
			return fmt.Errorf("failed to insert ledger entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit ledger entries: %w", err)
	}

	return nil
}

// ListByPeriodLabel retrieves all entries recorded for a period label
func (r *ledgerRepository) ListByPeriodLabel(ctx context.Context, label string) ([]domain.LedgerEntry, error) {
	query := `
		SELECT period_label, period_start, period_end,
		       owner_id, cost_id, allocated_amount, rationale, evidence_refs, status
		FROM allocation_ledger_entries
		WHERE period_label = $1
		ORDER BY cost_id, owner_id
	`

	rows, err := r.db.QueryContext(ctx, query, label)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var entry domain.LedgerEntry
		var amountStr string
		var evidenceRefs pq.StringArray

		err := rows.Scan(
			&entry.Period.Label,
			&entry.Period.Start,
			&entry.Period.End,
			&entry.OwnerID,
			&entry.CostID,
			&amountStr,
			&entry.Rationale,
			&evidenceRefs,
			&entry.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}

		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse allocated amount: %w", err)
		}
		entry.AllocatedAmount = amount
		entry.EvidenceRefs = []string(evidenceRefs)

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger entries: %w", err)
	}

	return entries, nil
}
