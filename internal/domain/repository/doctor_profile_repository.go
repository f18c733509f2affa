package repository

import (
	"context"

	"go-prescription-portal/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorProfileRepository interface {
	Create(ctx context.Context, db *gorm.DB, profile *entity.DoctorProfile) error
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error)
}
