package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// UpdateDraftDetailsRequest replaces the non-medicine fields of a draft.
// Empty values clear the field.
type UpdateDraftDetailsRequest struct {
	PatientID     string `json:"patient_id" validate:"omitempty,uuid"`
	DiagnosisText string `json:"diagnosis_text" validate:"max=2000"`
	FollowUpDate  string `json:"follow_up_date" validate:"omitempty,datetime=2006-01-02"`
	Advice        string `json:"advice" validate:"max=2000"`
}

type UpdateMedicineFieldRequest struct {
	Field string `json:"field" validate:"required,oneof=medicine_name dosage_frequency timing special_instructions"`
	Value string `json:"value" validate:"max=500"`
}

type SelectSuggestionRequest struct {
	MedicineName string `json:"medicine_name" validate:"required"`
}

// Response DTOs

type MedicineEntryResponse struct {
	Index                int    `json:"index"`
	MedicineName         string `json:"medicine_name"`
	DosageFrequency      string `json:"dosage_frequency"`
	DosageFrequencyLabel string `json:"dosage_frequency_label,omitempty"`
	Timing               string `json:"timing"`
	TimingLabel          string `json:"timing_label,omitempty"`
	SpecialInstructions  string `json:"special_instructions,omitempty"`
	Complete             bool   `json:"complete"`
	Removable            bool   `json:"removable"`
}

// AutocompleteResponse is the suggestion panel state of a draft
type AutocompleteResponse struct {
	FocusedRow  *int     `json:"focused_row"`
	Query       string   `json:"query"`
	PanelOpen   bool     `json:"panel_open"`
	Suggestions []string `json:"suggestions"`
}

type DraftResponse struct {
	ID            uuid.UUID               `json:"id"`
	PatientID     *uuid.UUID              `json:"patient_id"`
	DiagnosisText string                  `json:"diagnosis_text"`
	FollowUpDate  *string                 `json:"follow_up_date"`
	Advice        string                  `json:"advice"`
	Medicines     []MedicineEntryResponse `json:"medicines"`
	Autocomplete  AutocompleteResponse    `json:"autocomplete"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}
