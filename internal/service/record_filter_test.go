package service

import (
	"testing"
	"time"

	"go-prescription-portal/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func historyFixture() []entity.PrescriptionRecord {
	day := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}
	return []entity.PrescriptionRecord{
		{ID: "1", CounterpartyName: "Dr. Sarah Williams", CounterpartySpecialization: "Cardiologist", Date: day("2023-04-18"), Condition: "Hypertension", Status: entity.PrescriptionStatusActive, Medicines: []string{"Lisinopril 10mg", "Hydrochlorothiazide 12.5mg"}},
		{ID: "2", CounterpartyName: "Dr. Michael Chen", CounterpartySpecialization: "General Practitioner", Date: day("2023-03-10"), Condition: "Upper Respiratory Infection", Status: entity.PrescriptionStatusCompleted, Medicines: []string{"Amoxicillin 500mg", "Guaifenesin 400mg"}},
		{ID: "3", CounterpartyName: "Dr. Elizabeth Taylor", CounterpartySpecialization: "Endocrinologist", Date: day("2023-02-25"), Condition: "Hypothyroidism", Status: entity.PrescriptionStatusActive, Medicines: []string{"Levothyroxine 50mcg"}},
		{ID: "4", CounterpartyName: "Dr. Robert Johnson", CounterpartySpecialization: "Pulmonologist", Date: day("2023-01-15"), Condition: "Bronchitis", Status: entity.PrescriptionStatusCompleted, Medicines: []string{"Azithromycin 250mg", "Albuterol Inhaler"}},
		{ID: "5", CounterpartyName: "Dr. Jennifer Lopez", CounterpartySpecialization: "Dermatologist", Date: day("2022-12-05"), Condition: "Eczema", Status: entity.PrescriptionStatusCompleted, Medicines: []string{"Hydrocortisone 1% Cream", "Cetirizine 10mg"}},
	}
}

func ids(records []entity.PrescriptionRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestFilterRecords_ActiveOnly(t *testing.T) {
	got := FilterRecords(historyFixture(), entity.RecordFilter{Status: entity.StatusFilterActive})
	assert.Equal(t, []string{"1", "3"}, ids(got))
}

func TestFilterRecords_CompletedOnly(t *testing.T) {
	got := FilterRecords(historyFixture(), entity.RecordFilter{Status: entity.StatusFilterCompleted})
	assert.Equal(t, []string{"2", "4", "5"}, ids(got))
}

func TestFilterRecords_AllWithEmptyTermKeepsEverything(t *testing.T) {
	corpus := historyFixture()
	got := FilterRecords(corpus, entity.RecordFilter{Status: entity.StatusFilterAll})
	assert.Equal(t, corpus, got)

	got = FilterRecords(corpus, entity.RecordFilter{})
	assert.Equal(t, corpus, got)
}

func TestFilterRecords_TermMatchesCondition(t *testing.T) {
	got := FilterRecords(historyFixture(), entity.RecordFilter{Status: entity.StatusFilterAll, SearchTerm: "hypertension"})
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestFilterRecords_TermMatchesCounterparty(t *testing.T) {
	got := FilterRecords(historyFixture(), entity.RecordFilter{SearchTerm: "CHEN"})
	assert.Equal(t, []string{"2"}, ids(got))
}

func TestFilterRecords_TermMatchesAnyMedicine(t *testing.T) {
	got := FilterRecords(historyFixture(), entity.RecordFilter{SearchTerm: "10mg"})
	assert.Equal(t, []string{"1", "5"}, ids(got))

	got = FilterRecords(historyFixture(), entity.RecordFilter{SearchTerm: "inhaler"})
	assert.Equal(t, []string{"4"}, ids(got))
}

func TestFilterRecords_StatusAndTermBothApply(t *testing.T) {
	got := FilterRecords(historyFixture(), entity.RecordFilter{Status: entity.StatusFilterActive, SearchTerm: "dr."})
	assert.Equal(t, []string{"1", "3"}, ids(got))

	got = FilterRecords(historyFixture(), entity.RecordFilter{Status: entity.StatusFilterCompleted, SearchTerm: "hypertension"})
	assert.Empty(t, got)
}

func TestFilterRecords_SpecializationIsNotSearched(t *testing.T) {
	got := FilterRecords(historyFixture(), entity.RecordFilter{SearchTerm: "cardiologist"})
	assert.Empty(t, got)
}

func TestFilterRecords_EmptyCorpus(t *testing.T) {
	got := FilterRecords(nil, entity.RecordFilter{Status: entity.StatusFilterActive, SearchTerm: "x"})
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterRecords_RecomputesFromSource(t *testing.T) {
	corpus := historyFixture()

	narrowed := FilterRecords(corpus, entity.RecordFilter{SearchTerm: "hypo"})
	require.Equal(t, []string{"3"}, ids(narrowed))

	widened := FilterRecords(corpus, entity.RecordFilter{SearchTerm: "hyp"})
	assert.Equal(t, []string{"1", "3"}, ids(widened))
}

func TestFilterRecords_DoesNotMutateCorpus(t *testing.T) {
	corpus := historyFixture()
	snapshot := historyFixture()

	for i := 0; i < 3; i++ {
		out := FilterRecords(corpus, entity.RecordFilter{Status: entity.StatusFilterActive, SearchTerm: "lisinopril"})
		if len(out) > 0 {
			out[0].Condition = "changed"
		}
	}

	assert.Equal(t, snapshot[0].ID, corpus[0].ID)
	assert.Equal(t, len(snapshot), len(corpus))
	assert.Equal(t, "Hypertension", corpus[0].Condition)
	assert.Equal(t, snapshot, corpus)
}
