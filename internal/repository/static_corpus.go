package repository

import (
	"context"
	"time"

	"go-prescription-portal/internal/domain/entity"
	domainRepo "go-prescription-portal/internal/domain/repository"

	"github.com/google/uuid"
)

// medicineCatalog is the reference list of canonical drug names, in display order
var medicineCatalog = []string{
	"Amoxicillin 250mg", "Amoxicillin 500mg", "Aspirin 81mg", "Aspirin 325mg",
	"Atorvastatin 10mg", "Atorvastatin 20mg", "Atorvastatin 40mg", "Atorvastatin 80mg",
	"Lisinopril 5mg", "Lisinopril 10mg", "Lisinopril 20mg",
	"Metformin 500mg", "Metformin 850mg", "Metformin 1000mg",
	"Simvastatin 10mg", "Simvastatin 20mg", "Simvastatin 40mg",
	"Levothyroxine 25mcg", "Levothyroxine 50mcg", "Levothyroxine 75mcg",
	"Levothyroxine 100mcg", "Levothyroxine 125mcg",
	"Amlodipine 5mg", "Amlodipine 10mg",
	"Omeprazole 20mg", "Omeprazole 40mg",
	"Albuterol Inhaler 90mcg",
	"Gabapentin 100mg", "Gabapentin 300mg", "Gabapentin 600mg",
	"Hydrochlorothiazide 12.5mg", "Hydrochlorothiazide 25mg",
	"Metoprolol 25mg", "Metoprolol 50mg", "Metoprolol 100mg",
	"Losartan 25mg", "Losartan 50mg", "Losartan 100mg",
	"Sertraline 25mg", "Sertraline 50mg", "Sertraline 100mg",
	"Fluoxetine 10mg", "Fluoxetine 20mg", "Fluoxetine 40mg",
	"Escitalopram 5mg", "Escitalopram 10mg", "Escitalopram 20mg",
}

type staticMedicineCorpus struct {
	medicines []string
}

// NewStaticMedicineCorpus serves the built-in drug catalog
func NewStaticMedicineCorpus() domainRepo.MedicineCorpus {
	return &staticMedicineCorpus{medicines: medicineCatalog}
}

func (c *staticMedicineCorpus) Medicines(ctx context.Context) ([]string, error) {
	return c.medicines, nil
}

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func demoDoctor(name, specialization string) entity.DoctorProfile {
	return entity.DoctorProfile{Specialization: specialization, User: entity.User{FullName: name}}
}

func demoPatient(name string) entity.PatientProfile {
	return entity.PatientProfile{User: entity.User{FullName: name}}
}

func demoMedicine(position int, name string, frequency entity.DosageFrequency, timing entity.MedicineTiming) entity.PrescriptionMedicine {
	return entity.PrescriptionMedicine{Position: position, MedicineName: name, DosageFrequency: frequency, Timing: timing}
}

// demoPatientPrescriptions is the history every patient browses in static mode
var demoPatientPrescriptions = []entity.Prescription{
	{
		ID:        uuid.MustParse("6d2f3c1a-8b4e-4f0a-9c11-0a0000000001"),
		Code:      "RX-20230418-000001",
		Diagnosis: "Hypertension",
		Status:    entity.PrescriptionStatusActive,
		CreatedAt: day("2023-04-18"),
		Doctor:    demoDoctor("Dr. Sarah Williams", "Cardiologist"),
		Medicines: []entity.PrescriptionMedicine{
			demoMedicine(0, "Lisinopril 10mg", entity.DosageOnceDaily, entity.TimingBeforeMeal),
			demoMedicine(1, "Hydrochlorothiazide 12.5mg", entity.DosageOnceDaily, entity.TimingAfterMeal),
		},
	},
	{
		ID:        uuid.MustParse("6d2f3c1a-8b4e-4f0a-9c11-0a0000000002"),
		Code:      "RX-20230310-000002",
		Diagnosis: "Upper Respiratory Infection",
		Status:    entity.PrescriptionStatusCompleted,
		CreatedAt: day("2023-03-10"),
		Doctor:    demoDoctor("Dr. Michael Chen", "General Practitioner"),
		Medicines: []entity.PrescriptionMedicine{
			demoMedicine(0, "Amoxicillin 500mg", entity.DosageThreeTimesDaily, entity.TimingAfterMeal),
			demoMedicine(1, "Guaifenesin 400mg", entity.DosageTwiceDaily, entity.TimingWithMeal),
		},
	},
	{
		ID:        uuid.MustParse("6d2f3c1a-8b4e-4f0a-9c11-0a0000000003"),
		Code:      "RX-20230225-000003",
		Diagnosis: "Hypothyroidism",
		Status:    entity.PrescriptionStatusActive,
		CreatedAt: day("2023-02-25"),
		Doctor:    demoDoctor("Dr. Elizabeth Taylor", "Endocrinologist"),
		Medicines: []entity.PrescriptionMedicine{
			demoMedicine(0, "Levothyroxine 50mcg", entity.DosageOnceDaily, entity.TimingEmptyStomach),
		},
	},
	{
		ID:        uuid.MustParse("6d2f3c1a-8b4e-4f0a-9c11-0a0000000004"),
		Code:      "RX-20230115-000004",
		Diagnosis: "Bronchitis",
		Status:    entity.PrescriptionStatusCompleted,
		CreatedAt: day("2023-01-15"),
		Doctor:    demoDoctor("Dr. Robert Johnson", "Pulmonologist"),
		Medicines: []entity.PrescriptionMedicine{
			demoMedicine(0, "Azithromycin 250mg", entity.DosageOnceDaily, entity.TimingEmptyStomach),
			demoMedicine(1, "Albuterol Inhaler", entity.DosageAsNeeded, entity.TimingWithMeal),
		},
	},
	{
		ID:        uuid.MustParse("6d2f3c1a-8b4e-4f0a-9c11-0a0000000005"),
		Code:      "RX-20221205-000005",
		Diagnosis: "Eczema",
		Status:    entity.PrescriptionStatusCompleted,
		CreatedAt: day("2022-12-05"),
		Doctor:    demoDoctor("Dr. Jennifer Lopez", "Dermatologist"),
		Medicines: []entity.PrescriptionMedicine{
			demoMedicine(0, "Hydrocortisone 1% Cream", entity.DosageTwiceDaily, entity.TimingBedtime),
			demoMedicine(1, "Cetirizine 10mg", entity.DosageOnceDaily, entity.TimingBedtime),
		},
	},
}

// demoDoctorPrescriptions is the history every doctor browses in static mode
var demoDoctorPrescriptions = []entity.Prescription{
	{
		ID:        uuid.MustParse("6d2f3c1a-8b4e-4f0a-9c11-0b0000000001"),
		Code:      "RX-20230421-000101",
		Diagnosis: "Bronchitis",
		Status:    entity.PrescriptionStatusActive,
		CreatedAt: day("2023-04-21"),
		Patient:   demoPatient("John Smith"),
		Medicines: []entity.PrescriptionMedicine{},
	},
	{
		ID:        uuid.MustParse("6d2f3c1a-8b4e-4f0a-9c11-0b0000000002"),
		Code:      "RX-20230420-000102",
		Diagnosis: "Hypertension",
		Status:    entity.PrescriptionStatusActive,
		CreatedAt: day("2023-04-20"),
		Patient:   demoPatient("Emma Wilson"),
		Medicines: []entity.PrescriptionMedicine{},
	},
	{
		ID:        uuid.MustParse("6d2f3c1a-8b4e-4f0a-9c11-0b0000000003"),
		Code:      "RX-20230419-000103",
		Diagnosis: "Diabetes Type 2",
		Status:    entity.PrescriptionStatusActive,
		CreatedAt: day("2023-04-19"),
		Patient:   demoPatient("Robert Johnson"),
		Medicines: []entity.PrescriptionMedicine{},
	},
}

type staticRecordCorpus struct {
	patientHistory []entity.PrescriptionRecord
	doctorHistory  []entity.PrescriptionRecord
}

// NewStaticRecordCorpus serves fixed demo history. Every patient sees the same
// five records and every doctor the same three. It is read-only: the demo
// prescriptions are not in the database and cannot be completed.
func NewStaticRecordCorpus() domainRepo.RecordCorpus {
	c := &staticRecordCorpus{
		patientHistory: make([]entity.PrescriptionRecord, len(demoPatientPrescriptions)),
		doctorHistory:  make([]entity.PrescriptionRecord, len(demoDoctorPrescriptions)),
	}
	for i := range demoPatientPrescriptions {
		c.patientHistory[i] = entity.RecordForPatient(&demoPatientPrescriptions[i])
	}
	for i := range demoDoctorPrescriptions {
		c.doctorHistory[i] = entity.RecordForDoctor(&demoDoctorPrescriptions[i])
	}
	return c
}

func (c *staticRecordCorpus) ForPatient(ctx context.Context, patientID uuid.UUID) ([]entity.PrescriptionRecord, error) {
	return c.patientHistory, nil
}

func (c *staticRecordCorpus) ForDoctor(ctx context.Context, doctorID uuid.UUID) ([]entity.PrescriptionRecord, error) {
	return c.doctorHistory, nil
}

// PrescriptionForPatient returns a copy of the demo prescription attributed to patientID
func (c *staticRecordCorpus) PrescriptionForPatient(ctx context.Context, patientID, id uuid.UUID) (*entity.Prescription, error) {
	p := findDemoPrescription(demoPatientPrescriptions, id)
	if p != nil {
		p.PatientID = patientID
	}
	return p, nil
}

// PrescriptionForDoctor returns a copy of the demo prescription attributed to doctorID
func (c *staticRecordCorpus) PrescriptionForDoctor(ctx context.Context, doctorID, id uuid.UUID) (*entity.Prescription, error) {
	p := findDemoPrescription(demoDoctorPrescriptions, id)
	if p != nil {
		p.DoctorID = doctorID
	}
	return p, nil
}

func findDemoPrescription(demo []entity.Prescription, id uuid.UUID) *entity.Prescription {
	for i := range demo {
		if demo[i].ID != id {
			continue
		}
		p := demo[i]
		p.Medicines = append([]entity.PrescriptionMedicine{}, demo[i].Medicines...)
		return &p
	}
	return nil
}
