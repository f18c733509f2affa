package entity

// StatusFilter selects records by status; StatusFilterAll keeps every record
type StatusFilter string

const (
	StatusFilterAll       StatusFilter = "all"
	StatusFilterActive    StatusFilter = "active"
	StatusFilterCompleted StatusFilter = "completed"
)

// ParseStatusFilter maps a query value to a StatusFilter. An empty value
// means all; unknown values are rejected.
func ParseStatusFilter(value string) (StatusFilter, bool) {
	switch StatusFilter(value) {
	case "", StatusFilterAll:
		return StatusFilterAll, true
	case StatusFilterActive, StatusFilterCompleted:
		return StatusFilter(value), true
	default:
		return "", false
	}
}

// RecordFilter is a domain-level filter for narrowing prescription history.
// It is rebuilt from request state each time and never persisted.
type RecordFilter struct {
	Status     StatusFilter
	SearchTerm string // case-insensitive; matches counterparty, condition or any medicine
}
