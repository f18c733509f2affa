package repository

import (
	"context"
	"errors"

	"go-prescription-portal/internal/domain/entity"
	domainRepo "go-prescription-portal/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type prescriptionRepository struct{}

func NewPrescriptionRepository() domainRepo.PrescriptionRepository {
	return &prescriptionRepository{}
}

// Create inserts the prescription and its medicine rows
func (r *prescriptionRepository) Create(ctx context.Context, db *gorm.DB, prescription *entity.Prescription) error {
	return db.WithContext(ctx).Omit("Doctor", "Patient").Create(prescription).Error
}

func (r *prescriptionRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Prescription, error) {
	var prescription entity.Prescription
	err := withHistoryPreloads(db.WithContext(ctx)).Where("id = ?", id).First(&prescription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prescription, nil
}

func (r *prescriptionRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.Prescription, error) {
	var prescriptions []entity.Prescription
	err := withHistoryPreloads(db.WithContext(ctx)).
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) ([]entity.Prescription, error) {
	var prescriptions []entity.Prescription
	err := withHistoryPreloads(db.WithContext(ctx)).
		Where("doctor_id = ?", doctorID).
		Order("created_at DESC").
		Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

// Complete atomically marks an active prescription completed.
// Returns affected rows: 1 = success, 0 = not active anymore (prevents double-complete race).
func (r *prescriptionRepository) Complete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.Prescription{}).
		Where("id = ? AND status = ?", id, entity.PrescriptionStatusActive).
		Update("status", entity.PrescriptionStatusCompleted)
	return result.RowsAffected, result.Error
}

func withHistoryPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Doctor.User").
		Preload("Patient.User").
		Preload("Medicines", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		})
}
