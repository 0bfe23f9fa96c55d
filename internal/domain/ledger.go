package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus represents the confidence of a ledger entry
type EntryStatus string

const (
	// EntryStatusOK marks a fully allocated entry
	EntryStatusOK EntryStatus = "OK"
	// EntryStatusIncomplete marks an entry the engine could not allocate with
	// confidence: amount is zero and a companion alert explains why
	EntryStatusIncomplete EntryStatus = "INCOMPLETE_WITH_FLAG"
)

// Period is the reporting window a ledger is computed for
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

// LedgerEntry is one owner's computed share of one cost for one reporting
// period - the atomic unit of the audit trail. Entries are created fresh on
// every calculation call and never mutated afterward.
//
// The JSON shape is a stable wire surface for downstream report consumers.
type LedgerEntry struct {
	Period          Period          `json:"period"`
	OwnerID         string          `json:"owner_id"`
	CostID          string          `json:"cost_id"`
	AllocatedAmount decimal.Decimal `json:"allocated_amount"`
	Rationale       string          `json:"rationale"`
	EvidenceRefs    []string        `json:"evidence_refs"`
	Status          EntryStatus     `json:"status"`
}
