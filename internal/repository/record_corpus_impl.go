package repository

import (
	"context"

	"go-prescription-portal/internal/domain/entity"
	domainRepo "go-prescription-portal/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type databaseRecordCorpus struct {
	db               *gorm.DB
	prescriptionRepo domainRepo.PrescriptionRepository
}

// NewDatabaseRecordCorpus projects stored prescriptions into history records
func NewDatabaseRecordCorpus(db *gorm.DB, prescriptionRepo domainRepo.PrescriptionRepository) domainRepo.RecordCorpus {
	return &databaseRecordCorpus{
		db:               db,
		prescriptionRepo: prescriptionRepo,
	}
}

func (c *databaseRecordCorpus) ForPatient(ctx context.Context, patientID uuid.UUID) ([]entity.PrescriptionRecord, error) {
	prescriptions, err := c.prescriptionRepo.FindByPatientID(ctx, c.db, patientID)
	if err != nil {
		return nil, err
	}

	records := make([]entity.PrescriptionRecord, len(prescriptions))
	for i := range prescriptions {
		records[i] = entity.RecordForPatient(&prescriptions[i])
	}
	return records, nil
}

func (c *databaseRecordCorpus) ForDoctor(ctx context.Context, doctorID uuid.UUID) ([]entity.PrescriptionRecord, error) {
	prescriptions, err := c.prescriptionRepo.FindByDoctorID(ctx, c.db, doctorID)
	if err != nil {
		return nil, err
	}

	records := make([]entity.PrescriptionRecord, len(prescriptions))
	for i := range prescriptions {
		records[i] = entity.RecordForDoctor(&prescriptions[i])
	}
	return records, nil
}

func (c *databaseRecordCorpus) PrescriptionForPatient(ctx context.Context, patientID, id uuid.UUID) (*entity.Prescription, error) {
	return c.prescriptionRepo.FindByID(ctx, c.db, id)
}

func (c *databaseRecordCorpus) PrescriptionForDoctor(ctx context.Context, doctorID, id uuid.UUID) (*entity.Prescription, error) {
	return c.prescriptionRepo.FindByID(ctx, c.db, id)
}
