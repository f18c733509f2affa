package entity

import (
	"time"

	"github.com/google/uuid"
)

// PrescriptionStatus represents the status of a submitted prescription
type PrescriptionStatus string

const (
	PrescriptionStatusActive    PrescriptionStatus = "active"
	PrescriptionStatusCompleted PrescriptionStatus = "completed"
)

// Prescription is a submitted prescription
type Prescription struct {
	ID           uuid.UUID          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Code         string             `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"`
	DoctorID     uuid.UUID          `gorm:"type:uuid;not null;index" json:"doctor_id"`
	PatientID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"patient_id"`
	Diagnosis    string             `gorm:"type:text;not null" json:"diagnosis"`
	FollowUpDate *time.Time         `gorm:"type:date" json:"follow_up_date,omitempty"`
	Advice       string             `gorm:"type:text" json:"advice,omitempty"`
	Status       PrescriptionStatus `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	CreatedAt    time.Time          `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt    time.Time          `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor    DoctorProfile          `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient   PatientProfile         `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Medicines []PrescriptionMedicine `gorm:"foreignKey:PrescriptionID" json:"medicines,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}

// IsActive checks if prescription is still being taken
func (p *Prescription) IsActive() bool {
	return p.Status == PrescriptionStatusActive
}

// IsCompleted checks if prescription course has ended
func (p *Prescription) IsCompleted() bool {
	return p.Status == PrescriptionStatusCompleted
}

// Complete changes prescription status to completed
func (p *Prescription) Complete() {
	p.Status = PrescriptionStatusCompleted
}

// PrescriptionMedicine is a persisted medicine line, ordered by Position
type PrescriptionMedicine struct {
	ID                  int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	PrescriptionID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"prescription_id"`
	Position            int             `gorm:"not null" json:"position"`
	MedicineName        string          `gorm:"type:varchar(255);not null" json:"medicine_name"`
	DosageFrequency     DosageFrequency `gorm:"type:varchar(30);not null" json:"dosage_frequency"`
	Timing              MedicineTiming  `gorm:"type:varchar(30);not null" json:"timing"`
	SpecialInstructions string          `gorm:"type:text" json:"special_instructions,omitempty"`
}

func (PrescriptionMedicine) TableName() string {
	return "prescription_medicines"
}

// NewPrescriptionFromDraft builds the persisted form of a validated draft.
// The caller assigns Code.
func NewPrescriptionFromDraft(draft *PrescriptionDraft) *Prescription {
	p := &Prescription{
		DoctorID:     draft.DoctorID,
		Diagnosis:    draft.DiagnosisText,
		FollowUpDate: draft.FollowUpDate,
		Advice:       draft.Advice,
		Status:       PrescriptionStatusActive,
		Medicines:    make([]PrescriptionMedicine, len(draft.Medicines)),
	}
	if draft.PatientID != nil {
		p.PatientID = *draft.PatientID
	}
	for i, m := range draft.Medicines {
		p.Medicines[i] = PrescriptionMedicine{
			Position:            i,
			MedicineName:        m.MedicineName,
			DosageFrequency:     m.DosageFrequency,
			Timing:              m.Timing,
			SpecialInstructions: m.SpecialInstructions,
		}
	}
	return p
}

// MedicineNames returns the medicine names in display order
func (p *Prescription) MedicineNames() []string {
	names := make([]string, len(p.Medicines))
	for i, m := range p.Medicines {
		names[i] = m.MedicineName
	}
	return names
}
