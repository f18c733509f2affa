package entity

import "time"

// PrescriptionRecord is the read-only history row shown to one side of a
// prescription. The counterparty is the doctor when a patient browses, and
// the patient when a doctor browses.
type PrescriptionRecord struct {
	ID                         string             `json:"id"`
	CounterpartyName           string             `json:"counterparty_name"`
	CounterpartySpecialization string             `json:"counterparty_specialization,omitempty"`
	Date                       time.Time          `json:"date"`
	Condition                  string             `json:"condition"`
	Status                     PrescriptionStatus `json:"status"`
	Medicines                  []string           `json:"medicines"`
}

// RecordForPatient projects a prescription as seen by its patient.
// Doctor.User must be preloaded.
func RecordForPatient(p *Prescription) PrescriptionRecord {
	return PrescriptionRecord{
		ID:                         p.ID.String(),
		CounterpartyName:           p.Doctor.User.FullName,
		CounterpartySpecialization: p.Doctor.Specialization,
		Date:                       p.CreatedAt,
		Condition:                  p.Diagnosis,
		Status:                     p.Status,
		Medicines:                  p.MedicineNames(),
	}
}

// RecordForDoctor projects a prescription as seen by its author.
// Patient.User must be preloaded.
func RecordForDoctor(p *Prescription) PrescriptionRecord {
	return PrescriptionRecord{
		ID:               p.ID.String(),
		CounterpartyName: p.Patient.User.FullName,
		Date:             p.CreatedAt,
		Condition:        p.Diagnosis,
		Status:           p.Status,
		Medicines:        p.MedicineNames(),
	}
}
