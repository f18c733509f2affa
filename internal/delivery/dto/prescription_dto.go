package dto

import (
	"time"

	"github.com/google/uuid"
)

type PrescriptionMedicineResponse struct {
	Position             int    `json:"position"`
	MedicineName         string `json:"medicine_name"`
	DosageFrequency      string `json:"dosage_frequency"`
	DosageFrequencyLabel string `json:"dosage_frequency_label"`
	Timing               string `json:"timing"`
	TimingLabel          string `json:"timing_label"`
	SpecialInstructions  string `json:"special_instructions,omitempty"`
}

type PrescriptionResponse struct {
	ID                   uuid.UUID                      `json:"id"`
	Code                 string                         `json:"code"`
	DoctorID             uuid.UUID                      `json:"doctor_id"`
	DoctorName           string                         `json:"doctor_name,omitempty"`
	DoctorSpecialization string                         `json:"doctor_specialization,omitempty"`
	PatientID            uuid.UUID                      `json:"patient_id"`
	PatientName          string                         `json:"patient_name,omitempty"`
	Diagnosis            string                         `json:"diagnosis"`
	FollowUpDate         *string                        `json:"follow_up_date,omitempty"`
	Advice               string                         `json:"advice,omitempty"`
	Status               string                         `json:"status"`
	Medicines            []PrescriptionMedicineResponse `json:"medicines"`
	CreatedAt            time.Time                      `json:"created_at"`
	UpdatedAt            time.Time                      `json:"updated_at"`
}

// PrescriptionRecordResponse is one row of a history table
type PrescriptionRecordResponse struct {
	ID                         string   `json:"id"`
	CounterpartyName           string   `json:"counterparty_name"`
	CounterpartySpecialization string   `json:"counterparty_specialization,omitempty"`
	Date                       string   `json:"date"`
	Condition                  string   `json:"condition"`
	Status                     string   `json:"status"`
	Medicines                  []string `json:"medicines"`
	MedicinePreview            []string `json:"medicine_preview"`
	MoreMedicines              int      `json:"more_medicines"`
}

type PrescriptionFilterResponse struct {
	Status string `json:"status"`
	Search string `json:"search"`
}

type PrescriptionListResponse struct {
	Prescriptions []PrescriptionRecordResponse `json:"prescriptions"`
	Total         int                          `json:"total"`
	Filter        PrescriptionFilterResponse   `json:"filter"`
	EmptyState    string                       `json:"empty_state,omitempty"`
}
