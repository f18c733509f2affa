package repository

import (
	"context"

	"go-prescription-portal/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientProfileRepository interface {
	Create(ctx context.Context, db *gorm.DB, profile *entity.PatientProfile) error
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.PatientProfile, error)
	FindAllActive(ctx context.Context, db *gorm.DB) ([]entity.PatientProfile, error)
}
