package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"go-prescription-portal/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func doctorAuth() entity.AuthContext {
	return entity.AuthContext{UserID: uuid.New(), Email: "doctor@example.com", Role: entity.RoleDoctor}
}

func patientAuth() entity.AuthContext {
	return entity.AuthContext{UserID: uuid.New(), Email: "patient@example.com", Role: entity.RolePatient}
}

// fakeDraftRepo stores drafts as JSON, the way the Redis store does, so a
// loaded draft never aliases the saved one.
type fakeDraftRepo struct {
	drafts  map[string][]byte
	saves   int
	saveErr error
}

func newFakeDraftRepo() *fakeDraftRepo {
	return &fakeDraftRepo{drafts: map[string][]byte{}}
}

func (r *fakeDraftRepo) key(doctorID, draftID uuid.UUID) string {
	return doctorID.String() + ":" + draftID.String()
}

func (r *fakeDraftRepo) Save(ctx context.Context, draft *entity.PrescriptionDraft) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	payload, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	r.drafts[r.key(draft.DoctorID, draft.ID)] = payload
	r.saves++
	return nil
}

func (r *fakeDraftRepo) FindByID(ctx context.Context, doctorID, draftID uuid.UUID) (*entity.PrescriptionDraft, error) {
	payload, ok := r.drafts[r.key(doctorID, draftID)]
	if !ok {
		return nil, nil
	}
	var draft entity.PrescriptionDraft
	if err := json.Unmarshal(payload, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (r *fakeDraftRepo) Delete(ctx context.Context, doctorID, draftID uuid.UUID) error {
	delete(r.drafts, r.key(doctorID, draftID))
	return nil
}

type fakePatientRepo struct {
	profiles map[uuid.UUID]*entity.PatientProfile
}

func newFakePatientRepo(profiles ...*entity.PatientProfile) *fakePatientRepo {
	r := &fakePatientRepo{profiles: map[uuid.UUID]*entity.PatientProfile{}}
	for _, p := range profiles {
		r.profiles[p.UserID] = p
	}
	return r
}

func (r *fakePatientRepo) Create(ctx context.Context, db *gorm.DB, profile *entity.PatientProfile) error {
	r.profiles[profile.UserID] = profile
	return nil
}

func (r *fakePatientRepo) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.PatientProfile, error) {
	return r.profiles[userID], nil
}

func (r *fakePatientRepo) FindAllActive(ctx context.Context, db *gorm.DB) ([]entity.PatientProfile, error) {
	var out []entity.PatientProfile
	for _, p := range r.profiles {
		if p.User.IsActive {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fakeMedicineCorpus struct {
	medicines []string
}

func (c *fakeMedicineCorpus) Medicines(ctx context.Context) ([]string, error) {
	return c.medicines, nil
}

type fakeSubmitter struct {
	calls     int
	submitted *entity.PrescriptionDraft
	err       error
}

func (s *fakeSubmitter) Submit(ctx context.Context, draft *entity.PrescriptionDraft) (*entity.Prescription, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	s.submitted = draft
	p := entity.NewPrescriptionFromDraft(draft)
	p.ID = uuid.New()
	p.Code = "RX-20261017-ABC123"
	return p, nil
}

type auditEntry struct {
	action   string
	entityID string
}

type fakeAuditService struct {
	entries []auditEntry
	err     error
}

func (s *fakeAuditService) record(action, entityID string) error {
	if s.err != nil {
		return s.err
	}
	s.entries = append(s.entries, auditEntry{action: action, entityID: entityID})
	return nil
}

func (s *fakeAuditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action, entityName, entityID string, newValue interface{}) error {
	return s.record(action, entityID)
}

func (s *fakeAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action, entityName, entityID string, oldValue, newValue interface{}) error {
	return s.record(action, entityID)
}

func (s *fakeAuditService) LogDelete(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action, entityName, entityID string, oldValue interface{}) error {
	return s.record(action, entityID)
}

func (s *fakeAuditService) actions() []string {
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.action
	}
	return out
}

type fakePrescriptionRepo struct {
	prescriptions map[uuid.UUID]*entity.Prescription
	completeCalls int
}

func newFakePrescriptionRepo(prescriptions ...*entity.Prescription) *fakePrescriptionRepo {
	r := &fakePrescriptionRepo{prescriptions: map[uuid.UUID]*entity.Prescription{}}
	for _, p := range prescriptions {
		r.prescriptions[p.ID] = p
	}
	return r
}

func (r *fakePrescriptionRepo) Create(ctx context.Context, db *gorm.DB, prescription *entity.Prescription) error {
	r.prescriptions[prescription.ID] = prescription
	return nil
}

func (r *fakePrescriptionRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Prescription, error) {
	p, ok := r.prescriptions[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (r *fakePrescriptionRepo) FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.Prescription, error) {
	var out []entity.Prescription
	for _, p := range r.prescriptions {
		if p.PatientID == patientID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePrescriptionRepo) FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) ([]entity.Prescription, error) {
	var out []entity.Prescription
	for _, p := range r.prescriptions {
		if p.DoctorID == doctorID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePrescriptionRepo) Complete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	r.completeCalls++
	p, ok := r.prescriptions[id]
	if !ok || !p.IsActive() {
		return 0, nil
	}
	p.Complete()
	return 1, nil
}

type fakeRecordCorpus struct {
	patient map[uuid.UUID][]entity.PrescriptionRecord
	doctor  map[uuid.UUID][]entity.PrescriptionRecord
	details *fakePrescriptionRepo
}

func (c *fakeRecordCorpus) ForPatient(ctx context.Context, patientID uuid.UUID) ([]entity.PrescriptionRecord, error) {
	return c.patient[patientID], nil
}

func (c *fakeRecordCorpus) ForDoctor(ctx context.Context, doctorID uuid.UUID) ([]entity.PrescriptionRecord, error) {
	return c.doctor[doctorID], nil
}

func (c *fakeRecordCorpus) PrescriptionForPatient(ctx context.Context, patientID, id uuid.UUID) (*entity.Prescription, error) {
	return c.details.FindByID(ctx, nil, id)
}

func (c *fakeRecordCorpus) PrescriptionForDoctor(ctx context.Context, doctorID, id uuid.UUID) (*entity.Prescription, error) {
	return c.details.FindByID(ctx, nil, id)
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(ctx context.Context, db *gorm.DB, user *entity.User) error {
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.User, error) {
	return r.users[email], nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

type fakeRoleRepo struct{}

func (r *fakeRoleRepo) FindByName(ctx context.Context, db *gorm.DB, name string) (*entity.Role, error) {
	id, ok := entity.RoleIDByName(name)
	if !ok {
		return nil, nil
	}
	return &entity.Role{ID: id, RoleName: name}, nil
}

type fakeTokenRepo struct {
	tokens map[string]time.Duration
	err    error
}

func (r *fakeTokenRepo) Store(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	if r.err != nil {
		return r.err
	}
	r.tokens[userID.String()+":"+tokenID] = ttl
	return nil
}

func (r *fakeTokenRepo) Exists(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	_, ok := r.tokens[userID.String()+":"+tokenID]
	return ok, nil
}

func (r *fakeTokenRepo) Revoke(ctx context.Context, userID uuid.UUID, tokenID string) error {
	delete(r.tokens, userID.String()+":"+tokenID)
	return nil
}

var errBoom = errors.New("boom")
