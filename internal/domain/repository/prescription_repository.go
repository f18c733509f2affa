package repository

import (
	"context"

	"go-prescription-portal/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PrescriptionRepository interface {
	Create(ctx context.Context, db *gorm.DB, prescription *entity.Prescription) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Prescription, error)
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.Prescription, error)
	FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) ([]entity.Prescription, error)
	Complete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
}

// PrescriptionSubmitter persists a validated draft. It is the boundary the
// authoring form hands its completed payload to.
type PrescriptionSubmitter interface {
	Submit(ctx context.Context, draft *entity.PrescriptionDraft) (*entity.Prescription, error)
}
