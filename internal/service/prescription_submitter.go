package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"time"

	"go-prescription-portal/internal/domain/entity"
	"go-prescription-portal/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrPrescriptionCodeExhausted is returned when every generated code collided
var ErrPrescriptionCodeExhausted = errors.New("could not allocate a unique prescription code")

const maxCodeAttempts = 5

type prescriptionSubmitter struct {
	db               *gorm.DB
	log              *logrus.Logger
	prescriptionRepo repository.PrescriptionRepository
	auditService     AuditService
	now              func() time.Time
	random           io.Reader
}

func NewPrescriptionSubmitter(
	db *gorm.DB,
	log *logrus.Logger,
	prescriptionRepo repository.PrescriptionRepository,
	auditService AuditService,
) repository.PrescriptionSubmitter {
	return &prescriptionSubmitter{
		db:               db,
		log:              log,
		prescriptionRepo: prescriptionRepo,
		auditService:     auditService,
		now:              time.Now,
		random:           rand.Reader,
	}
}

// Submit stores a validated draft as an active prescription.
//
// Flow:
// 1. Build prescription + medicine rows from the draft
// 2. Insert under a savepoint; on a code collision roll back to it and retry with a new code
// 3. Write the audit entry in the same transaction
// 4. Commit
func (s *prescriptionSubmitter) Submit(ctx context.Context, draft *entity.PrescriptionDraft) (*entity.Prescription, error) {
	tx := s.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	prescription := entity.NewPrescriptionFromDraft(draft)
	prescription.ID = uuid.New()

	inserted := false
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := generatePrescriptionCode(s.now(), s.random)
		if err != nil {
			s.log.Warnf("Failed to generate prescription code: %+v", err)
			return nil, err
		}
		prescription.Code = code

		if err := tx.SavePoint("prescription_code").Error; err != nil {
			s.log.Warnf("Failed to create savepoint: %+v", err)
			return nil, err
		}

		err = s.prescriptionRepo.Create(ctx, tx, prescription)
		if err == nil {
			inserted = true
			break
		}
		if !isDuplicateKeyError(err, "code") {
			s.log.Warnf("Failed to insert prescription: %+v", err)
			return nil, err
		}

		s.log.Infof("Prescription code %s collided, retrying", prescription.Code)
		if err := tx.RollbackTo("prescription_code").Error; err != nil {
			s.log.Warnf("Failed to roll back to savepoint: %+v", err)
			return nil, err
		}
	}
	if !inserted {
		return nil, ErrPrescriptionCodeExhausted
	}

	doctorID := draft.DoctorID
	newValue := map[string]interface{}{
		"code":       prescription.Code,
		"patient_id": prescription.PatientID.String(),
		"draft_id":   draft.ID.String(),
		"medicines":  prescription.MedicineNames(),
	}
	if err := s.auditService.LogCreate(ctx, tx, &doctorID, entity.AuditActionPrescriptionCreate, "prescription", prescription.ID.String(), newValue); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		s.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return prescription, nil
}

// generatePrescriptionCode generates a prescription code: RX-YYYYMMDD-XXXXXX
func generatePrescriptionCode(now time.Time, random io.Reader) (string, error) {
	dateStr := now.Format("20060102")
	randomBytes := make([]byte, 3)
	if _, err := io.ReadFull(random, randomBytes); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return fmt.Sprintf("RX-%s-%06X", dateStr, randomBytes), nil
}
