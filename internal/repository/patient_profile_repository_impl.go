package repository

import (
	"context"
	"errors"

	"go-prescription-portal/internal/domain/entity"
	domainRepo "go-prescription-portal/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientProfileRepository struct{}

func NewPatientProfileRepository() domainRepo.PatientProfileRepository {
	return &patientProfileRepository{}
}

func (r *patientProfileRepository) Create(ctx context.Context, db *gorm.DB, profile *entity.PatientProfile) error {
	return db.WithContext(ctx).Omit("User").Create(profile).Error
}

func (r *patientProfileRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.PatientProfile, error) {
	var profile entity.PatientProfile
	err := db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// FindAllActive lists patients whose account is active, ordered by name
func (r *patientProfileRepository) FindAllActive(ctx context.Context, db *gorm.DB) ([]entity.PatientProfile, error) {
	var profiles []entity.PatientProfile
	err := db.WithContext(ctx).
		Joins("User").
		Where(`"User".is_active = ?`, true).
		Order(`"User".full_name ASC`).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}
