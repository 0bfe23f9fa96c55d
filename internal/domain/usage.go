package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// OwnerTagPrefix is the tag convention external usage trackers use to mark
// which owner generated a usage event: "owner_id:<id>".
const OwnerTagPrefix = "owner_id:"

// UsageRefs carries the free-form reference tags attached to a usage event
type UsageRefs struct {
	Tags []string
}

// UsageEvent is the engine's read-only view of an externally owned usage
// record (e.g. engine hours, charge cycles). Owner attribution travels only
// through Refs.Tags, by the OwnerTagPrefix convention.
type UsageEvent struct {
	ID          string
	AssetID     string
	MetricValue decimal.Decimal
	Refs        UsageRefs
}

// OwnerID extracts the attributed owner from the event's tags
// Returns the owner ID and true, or "" and false when no owner tag is present
// The first matching tag wins; trackers are expected to write at most one.
func (u *UsageEvent) OwnerID() (string, bool) {
	for _, tag := range u.Refs.Tags {
		if rest, ok := strings.CutPrefix(tag, OwnerTagPrefix); ok && rest != "" {
			return rest, true
		}
	}
	return "", false
}

// UsageAttribution is the explicit usage-event-to-owner relation recovered
// from the tag convention. The allocation engine consumes this relation
// rather than re-parsing tags, so mis-attribution is visible in one place.
type UsageAttribution struct {
	UsageEventID string
	OwnerID      string
	MetricValue  decimal.Decimal
}

// ResolveAttributions converts a batch of usage events into explicit
// attributions. Events without an owner tag come back in the second return
// value; they are data-quality gaps the caller must surface, not drop.
func ResolveAttributions(events []UsageEvent) ([]UsageAttribution, []UsageEvent) {
	var attributed []UsageAttribution
	var unattributed []UsageEvent

	for _, event := range events {
		ownerID, ok := event.OwnerID()
		if !ok {
			unattributed = append(unattributed, event)
			continue
		}
		attributed = append(attributed, UsageAttribution{
			UsageEventID: event.ID,
			OwnerID:      ownerID,
			MetricValue:  event.MetricValue,
		})
	}

	return attributed, unattributed
}
