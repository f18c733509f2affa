package service

import (
	"strings"

	"go-prescription-portal/internal/domain/entity"
)

// EmptyStateMessage is shown when a filter leaves nothing to display
const EmptyStateMessage = "No prescriptions found matching your filters."

// FilterRecords derives the visible records from the full corpus. It always
// starts from corpus, never from an earlier result, keeps corpus order and
// leaves corpus untouched. Both the status and the text predicate must pass.
func FilterRecords(corpus []entity.PrescriptionRecord, filter entity.RecordFilter) []entity.PrescriptionRecord {
	term := strings.ToLower(filter.SearchTerm)

	visible := make([]entity.PrescriptionRecord, 0, len(corpus))
	for _, record := range corpus {
		if !matchesStatus(record, filter.Status) {
			continue
		}
		if !matchesTerm(record, term) {
			continue
		}
		visible = append(visible, record)
	}
	return visible
}

func matchesStatus(record entity.PrescriptionRecord, status entity.StatusFilter) bool {
	if status == "" || status == entity.StatusFilterAll {
		return true
	}
	return string(record.Status) == string(status)
}

// matchesTerm expects term already lower-cased
func matchesTerm(record entity.PrescriptionRecord, term string) bool {
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(record.CounterpartyName), term) {
		return true
	}
	if strings.Contains(strings.ToLower(record.Condition), term) {
		return true
	}
	for _, medicine := range record.Medicines {
		if strings.Contains(strings.ToLower(medicine), term) {
			return true
		}
	}
	return false
}
