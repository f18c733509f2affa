package usecase

import (
	"context"

	"go-prescription-portal/internal/converter"
	"go-prescription-portal/internal/delivery/dto"
	"go-prescription-portal/internal/domain/entity"
	"go-prescription-portal/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PatientDirectoryUsecase interface {
	ListPatients(ctx context.Context, auth entity.AuthContext) (*dto.PatientListResponse, error)
}

type patientDirectoryUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientProfileRepository
}

func NewPatientDirectoryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientProfileRepository,
) PatientDirectoryUsecase {
	return &patientDirectoryUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
	}
}

// ListPatients feeds the patient selector of the prescription form
func (u *patientDirectoryUsecase) ListPatients(ctx context.Context, auth entity.AuthContext) (*dto.PatientListResponse, error) {
	if err := requireRole(auth, entity.RoleDoctor); err != nil {
		return nil, err
	}

	profiles, err := u.patientRepo.FindAllActive(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientProfilesToResponses(profiles),
		Total:    len(profiles),
	}, nil
}
