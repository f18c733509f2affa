package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PrescriptionDraft is an in-progress, unsaved prescription.
// FocusedRowIndex and Query are the editor's autocomplete session; they are
// stored with the draft so a session survives between requests.
type PrescriptionDraft struct {
	ID            uuid.UUID       `json:"id"`
	DoctorID      uuid.UUID       `json:"doctor_id"`
	PatientID     *uuid.UUID      `json:"patient_id,omitempty"`
	DiagnosisText string          `json:"diagnosis_text"`
	Medicines     []MedicineEntry `json:"medicines"`
	FollowUpDate  *time.Time      `json:"follow_up_date,omitempty"`
	Advice        string          `json:"advice,omitempty"`

	FocusedRowIndex *int   `json:"focused_row_index,omitempty"`
	Query           string `json:"query,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPrescriptionDraft opens a draft with a single empty medicine row
func NewPrescriptionDraft(doctorID uuid.UUID, now time.Time) *PrescriptionDraft {
	return &PrescriptionDraft{
		ID:        uuid.New(),
		DoctorID:  doctorID,
		Medicines: []MedicineEntry{{}},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ValidationRule identifies which submission rule a draft violated
type ValidationRule string

const (
	RulePatientRequired    ValidationRule = "patient_required"
	RuleDiagnosisRequired  ValidationRule = "diagnosis_required"
	RuleMedicineIncomplete ValidationRule = "medicine_incomplete"
	RuleFollowUpInPast     ValidationRule = "follow_up_in_past"
)

// DraftValidationError is the single, user-facing reason a draft cannot be submitted
type DraftValidationError struct {
	Rule    ValidationRule `json:"rule"`
	Message string         `json:"message"`
}

func (e *DraftValidationError) Error() string {
	return e.Message
}

// Validate checks the submission rules in order and stops at the first one
// violated: patient, diagnosis, medicine entries, follow-up date.
func (d *PrescriptionDraft) Validate(now time.Time) error {
	if d.PatientID == nil || *d.PatientID == uuid.Nil {
		return &DraftValidationError{Rule: RulePatientRequired, Message: "Please select a patient."}
	}

	if strings.TrimSpace(d.DiagnosisText) == "" {
		return &DraftValidationError{Rule: RuleDiagnosisRequired, Message: "Please enter a disease description."}
	}

	if len(d.Medicines) == 0 {
		return &DraftValidationError{Rule: RuleMedicineIncomplete, Message: "Please complete all medicine fields."}
	}
	for _, m := range d.Medicines {
		if !m.IsComplete() {
			return &DraftValidationError{Rule: RuleMedicineIncomplete, Message: "Please complete all medicine fields."}
		}
	}

	if d.FollowUpDate != nil && DateOnly(*d.FollowUpDate).Before(DateOnly(now)) {
		return &DraftValidationError{Rule: RuleFollowUpInPast, Message: "Follow-up date cannot be in the past."}
	}

	return nil
}

// DateOnly returns midnight UTC of t's calendar day, read in t's own location.
// Follow-up dates are zone-less, so "today" is the day on the caller's clock.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
