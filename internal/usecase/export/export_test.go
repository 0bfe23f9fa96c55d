package export

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coownly/coownly-backend/internal/domain"
)

func sampleLedger() []domain.LedgerEntry {
	period := domain.Period{
		Start: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC),
		Label: "2026-01",
	}
	return []domain.LedgerEntry{
		{
			Period:          period,
			OwnerID:         "owner_A",
			CostID:          "cost-1",
			AllocatedAmount: decimal.RequireFromString("666.666"),
			Rationale:       `Usage-based share of 66.67% (2 of 3 metric units)`,
			EvidenceRefs:    []string{"receipt-1", "logbook-9"},
			Status:          domain.EntryStatusOK,
		},
		{
			Period:          period,
			OwnerID:         "owner_B",
			CostID:          "cost-1",
			AllocatedAmount: decimal.Zero,
			Rationale:       "Missing usage data for distribution",
			EvidenceRefs:    nil,
			Status:          domain.EntryStatusIncomplete,
		},
	}
}

func TestLedgerToCSV_Header(t *testing.T) {
	out := LedgerToCSV(nil)
	assert.Equal(t, "Period Label,Period Start,Period End,Owner ID,Cost ID,Allocated Amount,Rationale,Status,Evidence\n", out)
}

func TestLedgerToCSV_RowFormat(t *testing.T) {
	out := LedgerToCSV(sampleLedger())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)

	// String fields are always quoted; the amount is a bare number with
	// exactly two decimal places; dates are ISO-8601
	assert.Equal(t,
		`"2026-01","2026-01-01T00:00:00Z","2026-01-31T23:59:59Z","owner_A","cost-1",666.67,"Usage-based share of 66.67% (2 of 3 metric units)","OK","receipt-1;logbook-9"`,
		lines[1])
	assert.Equal(t,
		`"2026-01","2026-01-01T00:00:00Z","2026-01-31T23:59:59Z","owner_B","cost-1",0.00,"Missing usage data for distribution","INCOMPLETE_WITH_FLAG",""`,
		lines[2])
}

func TestLedgerToCSV_EmbeddedQuotesDoubled(t *testing.T) {
	ledger := sampleLedger()[:1]
	ledger[0].Rationale = `Pro-rata share of 50% applied to "disputed" total 100.00`

	out := LedgerToCSV(ledger)
	assert.Contains(t, out, `"Pro-rata share of 50% applied to ""disputed"" total 100.00"`)
}

func TestLedgerToCSV_ParseBackFidelity(t *testing.T) {
	// Exporting then parsing recovers owner, cost and amount (to two
	// decimals) exactly
	ledger := sampleLedger()
	ledger[0].Rationale = `includes a comma, and a "quote"`

	reader := csv.NewReader(strings.NewReader(LedgerToCSV(ledger)))
	records, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	header := records[0]
	assert.Equal(t, []string{
		"Period Label", "Period Start", "Period End", "Owner ID", "Cost ID",
		"Allocated Amount", "Rationale", "Status", "Evidence",
	}, header)

	for i, entry := range ledger {
		row := records[i+1]
		assert.Equal(t, entry.OwnerID, row[3])
		assert.Equal(t, entry.CostID, row[4])
		assert.Equal(t, entry.AllocatedAmount.StringFixed(2), row[5])
		assert.Equal(t, entry.Rationale, row[6])
		assert.Equal(t, string(entry.Status), row[7])
		assert.Equal(t, strings.Join(entry.EvidenceRefs, ";"), row[8])

		start, err := time.Parse(time.RFC3339, row[1])
		require.NoError(t, err)
		assert.True(t, start.Equal(entry.Period.Start))
	}
}

func TestLedgerToJSON_RoundTrip(t *testing.T) {
	data, err := LedgerToJSON(sampleLedger())
	require.NoError(t, err)

	var decoded []domain.LedgerEntry
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "owner_A", decoded[0].OwnerID)
	assert.Equal(t, "cost-1", decoded[0].CostID)
	assert.True(t, decoded[0].AllocatedAmount.Equal(decimal.RequireFromString("666.666")))
	assert.Equal(t, domain.EntryStatusIncomplete, decoded[1].Status)
}

func TestLedgerToJSON_Deterministic(t *testing.T) {
	first, err := LedgerToJSON(sampleLedger())
	require.NoError(t, err)
	second, err := LedgerToJSON(sampleLedger())
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical ledgers must export byte-identically")
}

func TestLedgerToJSON_EmptyLedger(t *testing.T) {
	data, err := LedgerToJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
