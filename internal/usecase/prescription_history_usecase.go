package usecase

import (
	"context"
	"errors"

	"go-prescription-portal/internal/converter"
	"go-prescription-portal/internal/delivery/dto"
	"go-prescription-portal/internal/domain/entity"
	"go-prescription-portal/internal/domain/repository"
	"go-prescription-portal/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPrescriptionNotFound         = errors.New("prescription not found")
	ErrPrescriptionNotOwned         = errors.New("prescription does not belong to you")
	ErrPrescriptionAlreadyCompleted = errors.New("prescription is already completed")
	ErrInvalidStatusFilter          = errors.New("status must be one of: all, active, completed")
)

type PrescriptionHistoryUsecase interface {
	ListForPatient(ctx context.Context, auth entity.AuthContext, status, search string) (*dto.PrescriptionListResponse, error)
	ListForDoctor(ctx context.Context, auth entity.AuthContext, status, search string) (*dto.PrescriptionListResponse, error)
	GetForPatient(ctx context.Context, auth entity.AuthContext, id uuid.UUID) (*dto.PrescriptionResponse, error)
	GetForDoctor(ctx context.Context, auth entity.AuthContext, id uuid.UUID) (*dto.PrescriptionResponse, error)
	Complete(ctx context.Context, auth entity.AuthContext, id uuid.UUID) (*dto.PrescriptionResponse, error)
}

type prescriptionHistoryUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	prescriptionRepo repository.PrescriptionRepository
	recordCorpus     repository.RecordCorpus
	auditService     service.AuditService
}

func NewPrescriptionHistoryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	prescriptionRepo repository.PrescriptionRepository,
	recordCorpus repository.RecordCorpus,
	auditService service.AuditService,
) PrescriptionHistoryUsecase {
	return &prescriptionHistoryUsecase{
		db:               db,
		log:              log,
		prescriptionRepo: prescriptionRepo,
		recordCorpus:     recordCorpus,
		auditService:     auditService,
	}
}

// ListForPatient filters the caller's own prescriptions
func (u *prescriptionHistoryUsecase) ListForPatient(ctx context.Context, auth entity.AuthContext, status, search string) (*dto.PrescriptionListResponse, error) {
	if err := requireRole(auth, entity.RolePatient); err != nil {
		return nil, err
	}

	filter, err := buildFilter(status, search)
	if err != nil {
		return nil, err
	}

	corpus, err := u.recordCorpus.ForPatient(ctx, auth.UserID)
	if err != nil {
		u.log.Warnf("Failed to load prescriptions for patient %s: %+v", auth.UserID, err)
		return nil, err
	}

	visible := service.FilterRecords(corpus, filter)
	return converter.RecordsToListResponse(visible, filter, service.EmptyStateMessage), nil
}

// ListForDoctor filters the prescriptions the caller wrote
func (u *prescriptionHistoryUsecase) ListForDoctor(ctx context.Context, auth entity.AuthContext, status, search string) (*dto.PrescriptionListResponse, error) {
	if err := requireRole(auth, entity.RoleDoctor); err != nil {
		return nil, err
	}

	filter, err := buildFilter(status, search)
	if err != nil {
		return nil, err
	}

	corpus, err := u.recordCorpus.ForDoctor(ctx, auth.UserID)
	if err != nil {
		u.log.Warnf("Failed to load prescriptions for doctor %s: %+v", auth.UserID, err)
		return nil, err
	}

	visible := service.FilterRecords(corpus, filter)
	return converter.RecordsToListResponse(visible, filter, service.EmptyStateMessage), nil
}

func (u *prescriptionHistoryUsecase) GetForPatient(ctx context.Context, auth entity.AuthContext, id uuid.UUID) (*dto.PrescriptionResponse, error) {
	if err := requireRole(auth, entity.RolePatient); err != nil {
		return nil, err
	}

	prescription, err := u.recordCorpus.PrescriptionForPatient(ctx, auth.UserID, id)
	if err != nil {
		u.log.Warnf("Failed to find prescription %s: %+v", id, err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}
	if prescription.PatientID != auth.UserID {
		return nil, ErrPrescriptionNotOwned
	}

	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionHistoryUsecase) GetForDoctor(ctx context.Context, auth entity.AuthContext, id uuid.UUID) (*dto.PrescriptionResponse, error) {
	if err := requireRole(auth, entity.RoleDoctor); err != nil {
		return nil, err
	}

	prescription, err := u.recordCorpus.PrescriptionForDoctor(ctx, auth.UserID, id)
	if err != nil {
		u.log.Warnf("Failed to find prescription %s: %+v", id, err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}
	if prescription.DoctorID != auth.UserID {
		return nil, ErrPrescriptionNotOwned
	}

	return converter.PrescriptionToResponse(prescription), nil
}

// Complete marks one of the caller's active prescriptions as completed.
// It always works on stored prescriptions, whatever the record corpus.
func (u *prescriptionHistoryUsecase) Complete(ctx context.Context, auth entity.AuthContext, id uuid.UUID) (*dto.PrescriptionResponse, error) {
	if err := requireRole(auth, entity.RoleDoctor); err != nil {
		return nil, err
	}

	prescription, err := u.findPrescription(ctx, id)
	if err != nil {
		return nil, err
	}
	if prescription.DoctorID != auth.UserID {
		return nil, ErrPrescriptionNotOwned
	}
	if prescription.IsCompleted() {
		return nil, ErrPrescriptionAlreadyCompleted
	}

	affected, err := u.prescriptionRepo.Complete(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to complete prescription %s: %+v", id, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrPrescriptionAlreadyCompleted
	}

	oldStatus := prescription.Status
	prescription.Complete()

	doctorID := auth.UserID
	if err := u.auditService.LogUpdate(ctx, u.db, &doctorID, entity.AuditActionPrescriptionComplete, "prescription", id.String(),
		map[string]interface{}{"status": oldStatus},
		map[string]interface{}{"status": prescription.Status},
	); err != nil {
		u.log.Warnf("Failed to audit completion of %s (non-fatal): %+v", id, err)
	}

	u.log.Infof("Prescription completed: id=%s", id)

	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionHistoryUsecase) findPrescription(ctx context.Context, id uuid.UUID) (*entity.Prescription, error) {
	prescription, err := u.prescriptionRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find prescription %s: %+v", id, err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}
	return prescription, nil
}

func buildFilter(status, search string) (entity.RecordFilter, error) {
	statusFilter, ok := entity.ParseStatusFilter(status)
	if !ok {
		return entity.RecordFilter{}, ErrInvalidStatusFilter
	}
	return entity.RecordFilter{Status: statusFilter, SearchTerm: search}, nil
}
