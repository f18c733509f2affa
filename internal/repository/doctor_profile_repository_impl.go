package repository

import (
	"context"
	"errors"

	"go-prescription-portal/internal/domain/entity"
	domainRepo "go-prescription-portal/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorProfileRepository struct{}

func NewDoctorProfileRepository() domainRepo.DoctorProfileRepository {
	return &doctorProfileRepository{}
}

func (r *doctorProfileRepository) Create(ctx context.Context, db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.WithContext(ctx).Omit("User").Create(profile).Error
}

func (r *doctorProfileRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	var profile entity.DoctorProfile
	err := db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}
