package export

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/coownly/coownly-backend/internal/domain"
)

// csvHeader is the fixed column order downstream report consumers parse.
// Treated as a stable wire surface; do not reorder.
const csvHeader = "Period Label,Period Start,Period End,Owner ID,Cost ID,Allocated Amount,Rationale,Status,Evidence"

// LedgerToCSV serializes a computed ledger to CSV
// Dates are ISO-8601, amounts carry exactly two decimal places, string
// fields are always double-quoted with embedded quotes doubled, and evidence
// refs are joined with ";" inside one quoted field.
//
// encoding/csv is deliberately not used here: it only quotes fields that
// need it, while this format requires every string field quoted.
func LedgerToCSV(entries []domain.LedgerEntry) string {
	var sb strings.Builder
	sb.WriteString(csvHeader)
	sb.WriteString("\n")

	for _, entry := range entries {
		fields := []string{
			quote(entry.Period.Label),
			quote(entry.Period.Start.Format(time.RFC3339)),
			quote(entry.Period.End.Format(time.RFC3339)),
			quote(entry.OwnerID),
			quote(entry.CostID),
			entry.AllocatedAmount.StringFixed(2),
			quote(entry.Rationale),
			quote(string(entry.Status)),
			quote(strings.Join(entry.EvidenceRefs, ";")),
		}
		sb.WriteString(strings.Join(fields, ","))
		sb.WriteString("\n")
	}

	return sb.String()
}

// LedgerToJSON serializes a computed ledger to pretty-printed JSON
// Byte-deterministic: identical ledgers always produce identical output.
func LedgerToJSON(entries []domain.LedgerEntry) ([]byte, error) {
	if entries == nil {
		entries = []domain.LedgerEntry{}
	}
	return json.MarshalIndent(entries, "", "  ")
}

// quote wraps a string field in double quotes, doubling embedded quotes
func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
