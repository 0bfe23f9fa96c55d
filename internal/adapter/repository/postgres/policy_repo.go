package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/coownly/coownly-backend/internal/domain"
)

// policyRepository implements domain.PolicyRepository
type policyRepository struct {
	db *DB
}

// NewPolicyRepository creates a new allocation policy repository
func NewPolicyRepository(db *DB) domain.PolicyRepository {
	return &policyRepository{db: db}
}

// GetByID retrieves an allocation policy by its ID
// The free-form params bag is stored as a JSONB column.
func (r *policyRepository) GetByID(ctx context.Context, id string) (*domain.AllocationPolicy, error) {
	query := `
		SELECT id, policy_type, params
		FROM allocation_policies
		WHERE id = $1
	`

	var policy domain.AllocationPolicy
	var paramsJSON []byte

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&policy.ID,
		&policy.Type,
		&paramsJSON,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("allocation policy not found for ID %s: %w", id, err)
		}
		return nil, fmt.Errorf("failed to get allocation policy: %w", err)
	}

	if len(paramsJSON) > 0 {
		if err := json.Unmarshal(paramsJSON, &policy.Params); err != nil {
			return nil, fmt.Errorf("failed to parse policy params: %w", err)
		}
	}

	return &policy, nil
}

// Create creates a new allocation policy
func (r *policyRepository) Create(ctx context.Context, policy *domain.AllocationPolicy) error {
	params := policy.Params
	if params == nil {
		params = map[string]string{}
	}
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to serialize policy params: %w", err)
	}

	query := `
		INSERT INTO allocation_policies (id, policy_type, params)
		VALUES ($1, $2, $3)
	`
	if _, err := r.db.ExecContext(ctx, query, policy.ID, policy.Type, paramsJSON); err != nil {
		return fmt.Errorf("failed to insert allocation policy: %w", err)
	}

	return nil
}
