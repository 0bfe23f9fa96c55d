package domain

// PolicyType represents the allocation strategy applied to a set of costs
type PolicyType string

const (
	PolicyTypeProRata PolicyType = "PRO_RATA"
	PolicyTypeByUsage PolicyType = "BY_USAGE"
	PolicyTypeMixed   PolicyType = "MIXED"
)

// AllocationPolicy describes how costs under an agreement are split between
// owners. Supplied per calculation call; stateless.
type AllocationPolicy struct {
	ID     string
	Type   PolicyType
	Params map[string]string // Free-form thresholds/splits, interpreted by classifiers
}
