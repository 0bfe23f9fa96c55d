package reporting

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/coownly/coownly-backend/internal/domain"
	"github.com/coownly/coownly-backend/internal/usecase/allocation"
)

// RunAllocationInput represents the input for one allocation run
// Costs and usage events are supplied by the caller: those records belong to
// external collaborators and are not loaded here.
type RunAllocationInput struct {
	AssetID     string
	Costs       []domain.CostItem
	UsageEvents []domain.UsageEvent
	Period      domain.Period
}

// RunAllocationOutput carries the computed result plus the run ID the ledger
// was persisted under
type RunAllocationOutput struct {
	RunID  uuid.UUID
	Result *allocation.Result
}

// ReportingService orchestrates allocation runs: it loads the agreement and
// policy, invokes the engine, and persists the resulting ledger. The engine
// itself stays pure; all I/O lives here.
type ReportingService struct {
	AgreementRepo domain.AgreementRepository
	PolicyRepo    domain.PolicyRepository
	LedgerRepo    domain.LedgerRepository
	Engine        *allocation.Engine
}

// NewReportingService creates a new ReportingService instance
func NewReportingService(
	agreementRepo domain.AgreementRepository,
	policyRepo domain.PolicyRepository,
	ledgerRepo domain.LedgerRepository,
	engine *allocation.Engine,
) *ReportingService {
	return &ReportingService{
		AgreementRepo: agreementRepo,
		PolicyRepo:    policyRepo,
		LedgerRepo:    ledgerRepo,
		Engine:        engine,
	}
}

// RunAllocation computes and persists the allocation ledger for one asset
// and period
// Logic:
//  1. Fetch the agreement covering the asset
//  2. Fetch the allocation policy the agreement names
//  3. Run the engine over the supplied costs and usage events
//  4. Persist the ledger entries under a fresh run ID
//
// Data-quality problems come back as alerts inside the result; only
// structural or repository failures return an error.
func (s *ReportingService) RunAllocation(ctx context.Context, input RunAllocationInput) (*RunAllocationOutput, error) {
	if input.AssetID == "" {
		return nil, errors.New("asset ID cannot be empty")
	}

	// 1. Fetch the agreement
	agreement, err := s.AgreementRepo.GetByAssetID(ctx, input.AssetID)
	if err != nil {
		return nil, err
	}

	// 2. Fetch the policy it names
	policy, err := s.PolicyRepo.GetByID(ctx, agreement.PolicyID)
	if err != nil {
		return nil, err
	}

	// 3. Run the engine
	result, err := s.Engine.CalculateAllocation(*agreement, *policy, input.Costs, input.UsageEvents, input.Period)
	if err != nil {
		return nil, err
	}

	// 4. Persist the ledger under a fresh run ID
	runID := uuid.New()
	if len(result.Ledger) > 0 {
		if err := s.LedgerRepo.SaveEntries(ctx, runID, result.Ledger); err != nil {
			return nil, err
		}
	}

	return &RunAllocationOutput{RunID: runID, Result: result}, nil
}
