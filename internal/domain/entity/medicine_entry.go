package entity

import (
	"fmt"
	"strings"
)

// DosageFrequency is how often a medicine is taken
type DosageFrequency string

const (
	DosageOnceDaily       DosageFrequency = "once_daily"
	DosageTwiceDaily      DosageFrequency = "twice_daily"
	DosageThreeTimesDaily DosageFrequency = "three_times_daily"
	DosageFourTimesDaily  DosageFrequency = "four_times_daily"
	DosageAsNeeded        DosageFrequency = "as_needed"
)

var dosageLabels = map[DosageFrequency]string{
	DosageOnceDaily:       "Once daily",
	DosageTwiceDaily:      "Twice daily",
	DosageThreeTimesDaily: "Three times daily",
	DosageFourTimesDaily:  "Four times daily",
	DosageAsNeeded:        "When required (SOS)",
}

// IsValid checks the value is one of the known frequencies
func (f DosageFrequency) IsValid() bool {
	_, ok := dosageLabels[f]
	return ok
}

// Label returns the human readable form, or "" when unset/unknown
func (f DosageFrequency) Label() string {
	return dosageLabels[f]
}

// MedicineTiming is when a medicine is taken relative to meals
type MedicineTiming string

const (
	TimingBeforeMeal   MedicineTiming = "before_meal"
	TimingAfterMeal    MedicineTiming = "after_meal"
	TimingWithMeal     MedicineTiming = "with_meal"
	TimingEmptyStomach MedicineTiming = "empty_stomach"
	TimingBedtime      MedicineTiming = "bedtime"
)

var timingLabels = map[MedicineTiming]string{
	TimingBeforeMeal:   "Before meals",
	TimingAfterMeal:    "After meals",
	TimingWithMeal:     "With meals",
	TimingEmptyStomach: "On empty stomach",
	TimingBedtime:      "At bedtime",
}

// IsValid checks the value is one of the known timings
func (t MedicineTiming) IsValid() bool {
	_, ok := timingLabels[t]
	return ok
}

// Label returns the human readable form, or "" when unset/unknown
func (t MedicineTiming) Label() string {
	return timingLabels[t]
}

// MedicineField names one editable field of a MedicineEntry
type MedicineField string

const (
	FieldMedicineName        MedicineField = "medicine_name"
	FieldDosageFrequency     MedicineField = "dosage_frequency"
	FieldTiming              MedicineField = "timing"
	FieldSpecialInstructions MedicineField = "special_instructions"
)

// IsValid checks the field is editable
func (f MedicineField) IsValid() bool {
	switch f {
	case FieldMedicineName, FieldDosageFrequency, FieldTiming, FieldSpecialInstructions:
		return true
	default:
		return false
	}
}

// MedicineEntry is one medicine line of a prescription draft.
// DosageFrequency and Timing stay empty until the author picks them.
type MedicineEntry struct {
	MedicineName        string          `json:"medicine_name"`
	DosageFrequency     DosageFrequency `json:"dosage_frequency"`
	Timing              MedicineTiming  `json:"timing"`
	SpecialInstructions string          `json:"special_instructions,omitempty"`
}

// IsComplete reports whether every required field is populated
func (e MedicineEntry) IsComplete() bool {
	return strings.TrimSpace(e.MedicineName) != "" &&
		e.DosageFrequency != "" &&
		e.Timing != ""
}

// WithField returns a copy of e with one field replaced.
// Unknown fields are a caller bug and panic.
func (e MedicineEntry) WithField(field MedicineField, value string) MedicineEntry {
	switch field {
	case FieldMedicineName:
		e.MedicineName = value
	case FieldDosageFrequency:
		e.DosageFrequency = DosageFrequency(value)
	case FieldTiming:
		e.Timing = MedicineTiming(value)
	case FieldSpecialInstructions:
		e.SpecialInstructions = value
	default:
		panic(fmt.Sprintf("entity: unknown medicine field %q", field))
	}
	return e
}

// DosageFrequencies lists the frequencies in the order a form offers them
func DosageFrequencies() []DosageFrequency {
	return []DosageFrequency{DosageOnceDaily, DosageTwiceDaily, DosageThreeTimesDaily, DosageFourTimesDaily, DosageAsNeeded}
}

// MedicineTimings lists the timings in the order a form offers them
func MedicineTimings() []MedicineTiming {
	return []MedicineTiming{TimingBeforeMeal, TimingAfterMeal, TimingWithMeal, TimingEmptyStomach, TimingBedtime}
}
