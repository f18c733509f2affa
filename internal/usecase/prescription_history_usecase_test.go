package usecase

import (
	"context"
	"testing"
	"time"

	"go-prescription-portal/internal/domain/entity"
	"go-prescription-portal/internal/repository"
	"go-prescription-portal/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func patientRecords() []entity.PrescriptionRecord {
	day := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}
	return []entity.PrescriptionRecord{
		{ID: "1", CounterpartyName: "Dr. Sarah Williams", CounterpartySpecialization: "Cardiologist", Date: day("2023-04-18"), Condition: "Hypertension", Status: entity.PrescriptionStatusActive, Medicines: []string{"Lisinopril 10mg", "Hydrochlorothiazide 12.5mg", "Aspirin 81mg"}},
		{ID: "2", CounterpartyName: "Dr. Michael Chen", CounterpartySpecialization: "General Practitioner", Date: day("2023-03-10"), Condition: "Upper Respiratory Infection", Status: entity.PrescriptionStatusCompleted, Medicines: []string{"Amoxicillin 500mg"}},
		{ID: "3", CounterpartyName: "Dr. Elizabeth Taylor", CounterpartySpecialization: "Endocrinologist", Date: day("2023-02-25"), Condition: "Hypothyroidism", Status: entity.PrescriptionStatusActive, Medicines: []string{"Levothyroxine 50mcg"}},
	}
}

// newHistoryUsecase resolves corpus details from prescriptions unless the corpus brings its own
func newHistoryUsecase(prescriptions *fakePrescriptionRepo, corpus *fakeRecordCorpus, audit *fakeAuditService) *prescriptionHistoryUsecase {
	if corpus.details == nil {
		corpus.details = prescriptions
	}
	return NewPrescriptionHistoryUsecase(nil, quietLogger(), prescriptions, corpus, audit).(*prescriptionHistoryUsecase)
}

func TestListForPatient_FiltersOwnHistory(t *testing.T) {
	auth := patientAuth()
	corpus := &fakeRecordCorpus{patient: map[uuid.UUID][]entity.PrescriptionRecord{auth.UserID: patientRecords()}}
	uc := newHistoryUsecase(newFakePrescriptionRepo(), corpus, &fakeAuditService{})

	resp, err := uc.ListForPatient(context.Background(), auth, "active", "")
	require.NoError(t, err)
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, "1", resp.Prescriptions[0].ID)
	assert.Equal(t, "3", resp.Prescriptions[1].ID)
	assert.Equal(t, []string{"Lisinopril 10mg", "Hydrochlorothiazide 12.5mg"}, resp.Prescriptions[0].MedicinePreview)
	assert.Equal(t, 1, resp.Prescriptions[0].MoreMedicines)
	assert.Equal(t, "active", resp.Filter.Status)
	assert.Empty(t, resp.EmptyState)

	resp, err = uc.ListForPatient(context.Background(), auth, "", "CHEN")
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "all", resp.Filter.Status)
	assert.Equal(t, "Dr. Michael Chen", resp.Prescriptions[0].CounterpartyName)
}

func TestListForPatient_EmptyResultCarriesMessage(t *testing.T) {
	auth := patientAuth()
	corpus := &fakeRecordCorpus{patient: map[uuid.UUID][]entity.PrescriptionRecord{auth.UserID: patientRecords()}}
	uc := newHistoryUsecase(newFakePrescriptionRepo(), corpus, &fakeAuditService{})

	resp, err := uc.ListForPatient(context.Background(), auth, "completed", "hypertension")
	require.NoError(t, err)
	assert.Zero(t, resp.Total)
	assert.NotNil(t, resp.Prescriptions)
	assert.Equal(t, service.EmptyStateMessage, resp.EmptyState)
}

func TestListForPatient_RejectsUnknownStatus(t *testing.T) {
	uc := newHistoryUsecase(newFakePrescriptionRepo(), &fakeRecordCorpus{}, &fakeAuditService{})

	_, err := uc.ListForPatient(context.Background(), patientAuth(), "pending", "")
	assert.ErrorIs(t, err, ErrInvalidStatusFilter)
}

func TestListHistory_RoleGate(t *testing.T) {
	uc := newHistoryUsecase(newFakePrescriptionRepo(), &fakeRecordCorpus{}, &fakeAuditService{})

	_, err := uc.ListForPatient(context.Background(), doctorAuth(), "", "")
	assert.ErrorIs(t, err, ErrRoleMismatch)

	_, err = uc.ListForDoctor(context.Background(), patientAuth(), "", "")
	assert.ErrorIs(t, err, ErrRoleMismatch)
}

func TestListForDoctor_SearchesPatientNames(t *testing.T) {
	auth := doctorAuth()
	records := []entity.PrescriptionRecord{
		{ID: "a", CounterpartyName: "John Smith", Condition: "Hypertension", Status: entity.PrescriptionStatusActive},
		{ID: "b", CounterpartyName: "Emma Wilson", Condition: "Diabetes Type 2", Status: entity.PrescriptionStatusActive},
	}
	corpus := &fakeRecordCorpus{doctor: map[uuid.UUID][]entity.PrescriptionRecord{auth.UserID: records}}
	uc := newHistoryUsecase(newFakePrescriptionRepo(), corpus, &fakeAuditService{})

	resp, err := uc.ListForDoctor(context.Background(), auth, "all", "emma")
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "b", resp.Prescriptions[0].ID)
	assert.Equal(t, []string{}, resp.Prescriptions[0].Medicines)
}

func newStoredPrescription(doctorID, patientID uuid.UUID, status entity.PrescriptionStatus) *entity.Prescription {
	return &entity.Prescription{
		ID:        uuid.New(),
		Code:      "RX-20261017-0000AA",
		DoctorID:  doctorID,
		PatientID: patientID,
		Diagnosis: "Hypertension",
		Status:    status,
		Medicines: []entity.PrescriptionMedicine{
			{Position: 0, MedicineName: "Lisinopril 10mg", DosageFrequency: entity.DosageOnceDaily, Timing: entity.TimingBeforeMeal},
		},
	}
}

func TestGetPrescription_Ownership(t *testing.T) {
	doctor, patient := doctorAuth(), patientAuth()
	p := newStoredPrescription(doctor.UserID, patient.UserID, entity.PrescriptionStatusActive)
	uc := newHistoryUsecase(newFakePrescriptionRepo(p), &fakeRecordCorpus{}, &fakeAuditService{})
	ctx := context.Background()

	resp, err := uc.GetForPatient(ctx, patient, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Code, resp.Code)

	resp, err = uc.GetForDoctor(ctx, doctor, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Once daily", resp.Medicines[0].DosageFrequencyLabel)

	_, err = uc.GetForPatient(ctx, patientAuth(), p.ID)
	assert.ErrorIs(t, err, ErrPrescriptionNotOwned)

	_, err = uc.GetForDoctor(ctx, doctorAuth(), p.ID)
	assert.ErrorIs(t, err, ErrPrescriptionNotOwned)

	_, err = uc.GetForPatient(ctx, patient, uuid.New())
	assert.ErrorIs(t, err, ErrPrescriptionNotFound)
}

func TestGetPrescription_StaticCorpusDetailFollowsList(t *testing.T) {
	patient, doctor := patientAuth(), doctorAuth()
	uc := NewPrescriptionHistoryUsecase(nil, quietLogger(), newFakePrescriptionRepo(), repository.NewStaticRecordCorpus(), &fakeAuditService{})
	ctx := context.Background()

	list, err := uc.ListForPatient(ctx, patient, "active", "")
	require.NoError(t, err)
	require.NotEmpty(t, list.Prescriptions)

	id, err := uuid.Parse(list.Prescriptions[0].ID)
	require.NoError(t, err)
	detail, err := uc.GetForPatient(ctx, patient, id)
	require.NoError(t, err)
	assert.Equal(t, list.Prescriptions[0].Condition, detail.Diagnosis)
	assert.Equal(t, patient.UserID, detail.PatientID)

	doctorList, err := uc.ListForDoctor(ctx, doctor, "", "")
	require.NoError(t, err)
	require.NotEmpty(t, doctorList.Prescriptions)
	detail, err = uc.GetForDoctor(ctx, doctor, uuid.MustParse(doctorList.Prescriptions[0].ID))
	require.NoError(t, err)
	assert.Equal(t, doctorList.Prescriptions[0].CounterpartyName, detail.PatientName)

	_, err = uc.GetForPatient(ctx, patient, uuid.New())
	assert.ErrorIs(t, err, ErrPrescriptionNotFound)
}

func TestComplete(t *testing.T) {
	doctor := doctorAuth()
	p := newStoredPrescription(doctor.UserID, uuid.New(), entity.PrescriptionStatusActive)
	repo := newFakePrescriptionRepo(p)
	audit := &fakeAuditService{}
	uc := newHistoryUsecase(repo, &fakeRecordCorpus{}, audit)
	ctx := context.Background()

	resp, err := uc.Complete(ctx, doctor, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, []string{entity.AuditActionPrescriptionComplete}, audit.actions())

	_, err = uc.Complete(ctx, doctor, p.ID)
	assert.ErrorIs(t, err, ErrPrescriptionAlreadyCompleted)
	assert.Equal(t, 1, repo.completeCalls)
}

func TestComplete_RejectsOtherDoctor(t *testing.T) {
	p := newStoredPrescription(uuid.New(), uuid.New(), entity.PrescriptionStatusActive)
	repo := newFakePrescriptionRepo(p)
	uc := newHistoryUsecase(repo, &fakeRecordCorpus{}, &fakeAuditService{})

	_, err := uc.Complete(context.Background(), doctorAuth(), p.ID)
	assert.ErrorIs(t, err, ErrPrescriptionNotOwned)
	assert.Zero(t, repo.completeCalls)
	assert.True(t, repo.prescriptions[p.ID].IsActive())
}

func TestComplete_AuditFailureIsNotFatal(t *testing.T) {
	doctor := doctorAuth()
	p := newStoredPrescription(doctor.UserID, uuid.New(), entity.PrescriptionStatusActive)
	uc := newHistoryUsecase(newFakePrescriptionRepo(p), &fakeRecordCorpus{}, &fakeAuditService{err: errBoom})

	resp, err := uc.Complete(context.Background(), doctor, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)
}
