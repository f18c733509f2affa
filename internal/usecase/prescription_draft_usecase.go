package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

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
	ErrDraftNotFound          = errors.New("prescription draft not found or expired")
	ErrMedicineEntryNotFound  = errors.New("medicine row not found")
	ErrSuggestionNotAvailable = errors.New("medicine is not among the current suggestions")
	ErrPatientNotFound        = errors.New("patient not found")
	ErrInvalidMedicineField   = errors.New("unknown medicine field")
	ErrInvalidFieldValue      = errors.New("invalid value for medicine field")
	ErrInvalidDateFormat      = errors.New("invalid date format, use YYYY-MM-DD")
)

type PrescriptionDraftUsecase interface {
	OpenDraft(ctx context.Context, auth entity.AuthContext) (*dto.DraftResponse, error)
	GetDraft(ctx context.Context, auth entity.AuthContext, draftID uuid.UUID) (*dto.DraftResponse, error)
	UpdateDetails(ctx context.Context, auth entity.AuthContext, draftID uuid.UUID, req *dto.UpdateDraftDetailsRequest) (*dto.DraftResponse, error)
	AddMedicine(ctx context.Context, auth entity.AuthContext, draftID uuid.UUID) (*dto.DraftResponse, error)
	RemoveMedicine(ctx context.Context, auth entity.AuthContext, draftID uuid.UUID, index int) (*dto.DraftResponse, error)
	UpdateMedicineField(ctx context.Context, auth entity.AuthContext, draftID uuid.UUID, index int, req *dto.UpdateMedicineFieldRequest) (*dto.DraftResponse, error)
	FocusMedicine(ctx context.Context, auth entity.AuthContext, draftID uuid.UUID, index int) (*dto.DraftResponse, error)
	BlurMedicine(ctx context.Context, auth entity.AuthContext, draftID uuid.UUID) (*dto.DraftResponse, error)
	SelectSuggestion(ctx context.Context, auth entity.AuthContext, draftID uuid.UUID, index int, req *dto.SelectSuggestionRequest) (*dto.DraftResponse, error)
	Submit(ctx context.Context, auth entity.AuthContext, draftID uuid.UUID) (*dto.PrescriptionResponse, error)
	Cancel(ctx context.Context, auth entity.AuthContext, draftID uuid.UUID) error
}

type prescriptionDraftUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	draftRepo      repository.DraftRepository
	patientRepo    repository.PatientProfileRepository
	medicineCorpus repository.MedicineCorpus
	submitter      repository.PrescriptionSubmitter
	auditService   service.AuditService
	now            func() time.Time
}

func NewPrescriptionDraftUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	draftRepo repository.DraftRepository,
	patientRepo repository.PatientProfileRepository,
	medicineCorpus repository.MedicineCorpus,
	submitter repository.PrescriptionSubmitter,
	auditService service.AuditService,
) PrescriptionDraftUsecase {
	return &prescriptionDraftUsecase{
		db:             db,
		log:            log,
		draftRepo:      draftRepo,
		patientRepo:    patientRepo,
		medicineCorpus: medicineCorpus,
		submitter:      submitter,
		auditService:   auditService,
		now:            time.Now,
	}
}

// OpenDraft starts a new draft with one empty medicine row
func (u *prescriptionDraftUsecase) OpenDraft(ctx context.Context, auth entity.AuthContext) (*dto.DraftResponse, error) {
	if err := requireRole(auth, entity.RoleDoctor); err != nil {
		return nil, err
	}

	draft := entity.NewPrescriptionDraft(auth.UserID, u.now())
	if err := u.draftRepo.Save(ctx, draft); err != nil {
		u.log.Warnf("Failed to save draft: %+v", err)
		return nil, err
	}

	u.log.Infof("Prescription draft opened: id=%s, doctor=%s", draft.ID, auth.UserID)

	return converter.DraftToResponse(draft, nil), nil
}

func (u *prescriptionDraftUsecase) GetDraft(ctx context.Context, auth entity.AuthContext, draftID uuid.UUID) (*dto.DraftResponse, error) {
	if err := requireRole(auth, entity.RoleDoctor); err != nil {
		return nil, err
	}

	draft, err := u.loadDraft(ctx, auth, draftID)
	if err != nil {
		return nil, err
	}

	editor, err := u.newEditor(ctx, draft)
	if err != nil {
		return nil, err
	}
	return converter.DraftToResponse(draft, editor.Suggestions()), nil
}

// UpdateDetails replaces patient, diagnosis, follow-up date and advice
func (u *prescriptionDraftUsecase) UpdateDetails(ctx context.Context, auth entity.AuthContext, draftID uuid.UUID, req *dto.UpdateDraftDetailsRequest) (*dto.DraftResponse, error) {
	if err := requireRole(auth, entity.RoleDoctor); err != nil {
		return nil, err
	}

	var patientID *uuid.UUID
	if req.PatientID != "" {
		id, err := uuid.Parse(req.PatientID)
		if err != nil {
			return nil, ErrPatientNotFound
		}
		patient, err := u.patientRepo.FindByUserID(ctx, u.db, id)
		if err != nil {
			u.log.Warnf("Failed to find patient %s: %+v", id, err)
			return nil, err
		}
		if patient == nil || !patient.User.IsActive {
			return nil, ErrPatientNotFound
		}
		patientID = &id
	}

	var followUp *time.Time
	if req.FollowUpDate != "" {
		date, err := time.Parse("2006-01-02", req.FollowUpDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		followUp = &date
	}

	return u.edit(ctx, auth, draftID, func(draft *entity.PrescriptionDraft, _ *service.MedicineListEditor) error {
		draft.PatientID = patientID
		draft.DiagnosisText = req.DiagnosisText
		draft.FollowUpDate = followUp
		draft.Advice = req.Advice
		return nil
	})
}

func (u *prescriptionDraftUsecase) AddMedicine(ctx context.Context, auth entity.AuthContext, draftID uuid.UUID) (*dto.DraftResponse, error) {
	return u.edit(ctx, auth, draftID, func(_ *entity.PrescriptionDraft, editor *service.MedicineListEditor) error {
		editor.AddEntry()
		return nil
	})
}

// RemoveMedicine deletes one row. Removing the only row leaves the draft as is.
func (u *prescriptionDraftUsecase) RemoveMedicine(ctx context.Context, auth entity.AuthContext, draftID uuid.UUID, index int) (*dto.DraftResponse, error) {
	return u.edit(ctx, auth, draftID, func(_ *entity.PrescriptionDraft, editor *service.MedicineListEditor) error {
		if !editor.HasIndex(index) {
			return ErrMedicineEntryNotFound
		}
		editor.RemoveEntry(index)
		return nil
	})
}

func (u *prescriptionDraftUsecase) UpdateMedicineField(ctx context.Context, auth entity.AuthContext, draftID uuid.UUID, index int, req *dto.UpdateMedicineFieldRequest) (*dto.DraftResponse, error) {
	field := entity.MedicineField(req.Field)
	if !field.IsValid() {
		return nil, ErrInvalidMedicineField
	}
	if err := validateFieldValue(field, req.Value); err != nil {
		return nil, err
	}

	return u.edit(ctx, auth, draftID, func(_ *entity.PrescriptionDraft, editor *service.MedicineListEditor) error {
		if !editor.HasIndex(index) {
			return ErrMedicineEntryNotFound
		}
		editor.UpdateField(index, field, req.Value)
		return nil
	})
}

func (u *prescriptionDraftUsecase) FocusMedicine(ctx context.Context, auth entity.AuthContext, draftID uuid.UUID, index int) (*dto.DraftResponse, error) {
	return u.edit(ctx, auth, draftID, func(_ *entity.PrescriptionDraft, editor *service.MedicineListEditor) error {
		if !editor.HasIndex(index) {
			return ErrMedicineEntryNotFound
		}
		editor.Focus(index)
		return nil
	})
}

func (u *prescriptionDraftUsecase) BlurMedicine(ctx context.Context, auth entity.AuthContext, draftID uuid.UUID) (*dto.DraftResponse, error) {
	return u.edit(ctx, auth, draftID, func(_ *entity.PrescriptionDraft, editor *service.MedicineListEditor) error {
		editor.Blur()
		return nil
	})
}

// SelectSuggestion commits a suggested name. Only a name the panel is
// currently offering for that row is accepted.
func (u *prescriptionDraftUsecase) SelectSuggestion(ctx context.Context, auth entity.AuthContext, draftID uuid.UUID, index int, req *dto.SelectSuggestionRequest) (*dto.DraftResponse, error) {
	return u.edit(ctx, auth, draftID, func(_ *entity.PrescriptionDraft, editor *service.MedicineListEditor) error {
		if !editor.HasIndex(index) {
			return ErrMedicineEntryNotFound
		}
		if !editor.IsSuggested(index, req.MedicineName) {
			return ErrSuggestionNotAvailable
		}
		editor.SelectSuggestion(index, req.MedicineName)
		return nil
	})
}

// Submit validates the draft and hands it to the submitter.
//
// Flow:
// 1. Validate in rule order; the first violation is returned as *entity.DraftValidationError
// 2. Persist through the submitter (prescription + medicines + audit in one transaction)
// 3. Drop the draft
func (u *prescriptionDraftUsecase) Submit(ctx context.Context, auth entity.AuthContext, draftID uuid.UUID) (*dto.PrescriptionResponse, error) {
	if err := requireRole(auth, entity.RoleDoctor); err != nil {
		return nil, err
	}

	draft, err := u.loadDraft(ctx, auth, draftID)
	if err != nil {
		return nil, err
	}

	if err := draft.Validate(u.now()); err != nil {
		return nil, err
	}

	prescription, err := u.submitter.Submit(ctx, draft)
	if err != nil {
		u.log.Warnf("Failed to submit draft %s: %+v", draftID, err)
		return nil, err
	}

	if err := u.draftRepo.Delete(ctx, auth.UserID, draftID); err != nil {
		// The draft expires on its own
		u.log.Warnf("Failed to delete submitted draft %s (non-fatal): %+v", draftID, err)
	}

	u.log.Infof("Prescription created: id=%s, code=%s, doctor=%s", prescription.ID, prescription.Code, auth.UserID)

	return converter.PrescriptionToResponse(prescription), nil
}

// Cancel discards the draft; nothing is persisted
func (u *prescriptionDraftUsecase) Cancel(ctx context.Context, auth entity.AuthContext, draftID uuid.UUID) error {
	if err := requireRole(auth, entity.RoleDoctor); err != nil {
		return err
	}

	draft, err := u.loadDraft(ctx, auth, draftID)
	if err != nil {
		return err
	}

	if err := u.draftRepo.Delete(ctx, auth.UserID, draftID); err != nil {
		u.log.Warnf("Failed to delete draft %s: %+v", draftID, err)
		return err
	}

	doctorID := auth.UserID
	if err := u.auditService.LogDelete(ctx, u.db, &doctorID, entity.AuditActionDraftCancel, "prescription_draft", draftID.String(), map[string]interface{}{
		"medicines": len(draft.Medicines),
	}); err != nil {
		u.log.Warnf("Failed to audit draft cancel %s (non-fatal): %+v", draftID, err)
	}

	u.log.Infof("Prescription draft cancelled: id=%s", draftID)
	return nil
}

// edit runs one editor operation against a stored draft and saves it back.
// A failing op leaves the stored draft untouched.
func (u *prescriptionDraftUsecase) edit(
	ctx context.Context,
	auth entity.AuthContext,
	draftID uuid.UUID,
	op func(draft *entity.PrescriptionDraft, editor *service.MedicineListEditor) error,
) (*dto.DraftResponse, error) {
	if err := requireRole(auth, entity.RoleDoctor); err != nil {
		return nil, err
	}

	draft, err := u.loadDraft(ctx, auth, draftID)
	if err != nil {
		return nil, err
	}

	editor, err := u.newEditor(ctx, draft)
	if err != nil {
		return nil, err
	}

	if err := op(draft, editor); err != nil {
		return nil, err
	}

	draft.UpdatedAt = u.now()
	if err := u.draftRepo.Save(ctx, draft); err != nil {
		u.log.Warnf("Failed to save draft %s: %+v", draftID, err)
		return nil, err
	}

	return converter.DraftToResponse(draft, editor.Suggestions()), nil
}

func (u *prescriptionDraftUsecase) loadDraft(ctx context.Context, auth entity.AuthContext, draftID uuid.UUID) (*entity.PrescriptionDraft, error) {
	draft, err := u.draftRepo.FindByID(ctx, auth.UserID, draftID)
	if err != nil {
		u.log.Warnf("Failed to load draft %s: %+v", draftID, err)
		return nil, err
	}
	if draft == nil {
		return nil, ErrDraftNotFound
	}
	return draft, nil
}

func (u *prescriptionDraftUsecase) newEditor(ctx context.Context, draft *entity.PrescriptionDraft) (*service.MedicineListEditor, error) {
	corpus, err := u.medicineCorpus.Medicines(ctx)
	if err != nil {
		u.log.Warnf("Failed to load medicine corpus: %+v", err)
		return nil, err
	}
	return service.NewMedicineListEditor(draft, corpus), nil
}

// validateFieldValue accepts an empty value for every field so a select can be reset
func validateFieldValue(field entity.MedicineField, value string) error {
	if value == "" {
		return nil
	}
	switch field {
	case entity.FieldDosageFrequency:
		if !entity.DosageFrequency(value).IsValid() {
			return ErrInvalidFieldValue
		}
	case entity.FieldTiming:
		if !entity.MedicineTiming(value).IsValid() {
			return ErrInvalidFieldValue
		}
	case entity.FieldMedicineName:
		if strings.ContainsAny(value, "\n\r") {
			return ErrInvalidFieldValue
		}
	}
	return nil
}
