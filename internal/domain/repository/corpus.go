package repository

import (
	"context"

	"go-prescription-portal/internal/domain/entity"

	"github.com/google/uuid"
)

// MedicineCorpus supplies the canonical drug names used for autocomplete.
// The returned slice is shared reference data and must not be modified.
type MedicineCorpus interface {
	Medicines(ctx context.Context) ([]string, error)
}

// RecordCorpus supplies the prescription history a caller may browse.
// The returned slice must not be modified; filters derive new slices from it.
// The PrescriptionFor* lookups resolve a record ID from that history to its
// full prescription, or nil when the ID is unknown. Ownership is checked by
// the caller.
type RecordCorpus interface {
	ForPatient(ctx context.Context, patientID uuid.UUID) ([]entity.PrescriptionRecord, error)
	ForDoctor(ctx context.Context, doctorID uuid.UUID) ([]entity.PrescriptionRecord, error)
	PrescriptionForPatient(ctx context.Context, patientID, id uuid.UUID) (*entity.Prescription, error)
	PrescriptionForDoctor(ctx context.Context, doctorID, id uuid.UUID) (*entity.Prescription, error)
}
