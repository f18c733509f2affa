package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-prescription-portal/internal/domain/entity"
	"go-prescription-portal/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type seedDoctor struct {
	name           string
	license        string
	specialization string
}

type seedPrescription struct {
	doctor    string
	patient   string
	date      string
	diagnosis string
	status    entity.PrescriptionStatus
	medicines []entity.PrescriptionMedicine
}

var seedDoctors = []seedDoctor{
	{"Dr. Sarah Williams", "LIC-100001", "Cardiologist"},
	{"Dr. Michael Chen", "LIC-100002", "General Practitioner"},
	{"Dr. Elizabeth Taylor", "LIC-100003", "Endocrinologist"},
	{"Dr. Robert Johnson", "LIC-100004", "Pulmonologist"},
	{"Dr. Jennifer Lopez", "LIC-100005", "Dermatologist"},
}

var seedPatients = []string{
	"John Smith", "Emma Wilson", "Michael Johnson", "Sarah Thompson", "Robert Davis",
	"Jennifer Garcia", "David Martinez", "Lisa Rodriguez", "James Anderson", "Patricia Thomas",
}

func med(name string, frequency entity.DosageFrequency, timing entity.MedicineTiming) entity.PrescriptionMedicine {
	return entity.PrescriptionMedicine{MedicineName: name, DosageFrequency: frequency, Timing: timing}
}

var seedPrescriptions = []seedPrescription{
	{"Dr. Sarah Williams", "John Smith", "2023-04-18", "Hypertension", entity.PrescriptionStatusActive, []entity.PrescriptionMedicine{
		med("Lisinopril 10mg", entity.DosageOnceDaily, entity.TimingBeforeMeal),
		med("Hydrochlorothiazide 12.5mg", entity.DosageOnceDaily, entity.TimingAfterMeal),
	}},
	{"Dr. Michael Chen", "John Smith", "2023-03-10", "Upper Respiratory Infection", entity.PrescriptionStatusCompleted, []entity.PrescriptionMedicine{
		med("Amoxicillin 500mg", entity.DosageThreeTimesDaily, entity.TimingAfterMeal),
		med("Guaifenesin 400mg", entity.DosageAsNeeded, entity.TimingWithMeal),
	}},
	{"Dr. Elizabeth Taylor", "John Smith", "2023-02-25", "Hypothyroidism", entity.PrescriptionStatusActive, []entity.PrescriptionMedicine{
		med("Levothyroxine 50mcg", entity.DosageOnceDaily, entity.TimingEmptyStomach),
	}},
	{"Dr. Robert Johnson", "John Smith", "2023-01-15", "Bronchitis", entity.PrescriptionStatusCompleted, []entity.PrescriptionMedicine{
		med("Azithromycin 250mg", entity.DosageOnceDaily, entity.TimingAfterMeal),
		med("Albuterol Inhaler", entity.DosageAsNeeded, entity.TimingWithMeal),
	}},
	{"Dr. Jennifer Lopez", "John Smith", "2022-12-05", "Eczema", entity.PrescriptionStatusCompleted, []entity.PrescriptionMedicine{
		med("Hydrocortisone 1% Cream", entity.DosageTwiceDaily, entity.TimingAfterMeal),
		med("Cetirizine 10mg", entity.DosageOnceDaily, entity.TimingBedtime),
	}},
	{"Dr. Sarah Williams", "Emma Wilson", "2023-04-20", "Hypertension", entity.PrescriptionStatusActive, []entity.PrescriptionMedicine{
		med("Amlodipine 5mg", entity.DosageOnceDaily, entity.TimingAfterMeal),
	}},
	{"Dr. Sarah Williams", "Michael Johnson", "2023-04-19", "Diabetes Type 2", entity.PrescriptionStatusActive, []entity.PrescriptionMedicine{
		med("Metformin 500mg", entity.DosageTwiceDaily, entity.TimingWithMeal),
	}},
}

// seedEmail derives a login email from a display name: "Dr. Sarah Williams" -> sarah.williams@example.com
func seedEmail(name string) string {
	name = strings.TrimPrefix(name, "Dr. ")
	return strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com"
}

// Seed inserts demo doctors, patients and prescriptions. Users that already
// exist are reused and missing profiles are filled in; prescriptions are only
// written on a fresh database.
func Seed(ctx context.Context, db *gorm.DB, log *logrus.Logger) error {
	userRepo := repository.NewUserRepository()
	doctorRepo := repository.NewDoctorProfileRepository()
	patientRepo := repository.NewPatientProfileRepository()
	prescriptionRepo := repository.NewPrescriptionRepository()

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		created := 0
		ids := make(map[string]uuid.UUID)

		ensureUser := func(name string, roleID int) (uuid.UUID, error) {
			email := seedEmail(name)
			existing, err := userRepo.FindByEmail(ctx, tx, email)
			if err != nil {
				return uuid.Nil, err
			}
			if existing != nil {
				return existing.ID, nil
			}
			user := &entity.User{ID: uuid.New(), RoleID: roleID, Email: email, FullName: name, IsActive: true}
			if err := userRepo.Create(ctx, tx, user); err != nil {
				return uuid.Nil, fmt.Errorf("create user %s: %w", email, err)
			}
			created++
			return user.ID, nil
		}

		for _, d := range seedDoctors {
			id, err := ensureUser(d.name, entity.RoleIDDoctor)
			if err != nil {
				return err
			}
			ids[d.name] = id
			profile, err := doctorRepo.FindByUserID(ctx, tx, id)
			if err != nil {
				return err
			}
			if profile == nil {
				if err := doctorRepo.Create(ctx, tx, &entity.DoctorProfile{UserID: id, LicenseNumber: d.license, Specialization: d.specialization}); err != nil {
					return fmt.Errorf("create doctor profile %s: %w", d.name, err)
				}
			}
		}

		for _, name := range seedPatients {
			id, err := ensureUser(name, entity.RoleIDPatient)
			if err != nil {
				return err
			}
			ids[name] = id
			profile, err := patientRepo.FindByUserID(ctx, tx, id)
			if err != nil {
				return err
			}
			if profile == nil {
				if err := patientRepo.Create(ctx, tx, &entity.PatientProfile{UserID: id}); err != nil {
					return fmt.Errorf("create patient profile %s: %w", name, err)
				}
			}
		}

		if created < len(seedDoctors)+len(seedPatients) {
			log.Infof("Demo users already present (%d new), skipping prescriptions", created)
			return nil
		}

		for i, p := range seedPrescriptions {
			date, err := time.Parse("2006-01-02", p.date)
			if err != nil {
				return err
			}
			medicines := make([]entity.PrescriptionMedicine, len(p.medicines))
			for pos, m := range p.medicines {
				m.Position = pos
				medicines[pos] = m
			}
			prescription := &entity.Prescription{
				ID:        uuid.New(),
				Code:      fmt.Sprintf("RX-%s-%06X", date.Format("20060102"), i+1),
				DoctorID:  ids[p.doctor],
				PatientID: ids[p.patient],
				Diagnosis: p.diagnosis,
				Status:    p.status,
				Medicines: medicines,
				CreatedAt: date,
				UpdatedAt: date,
			}
			if err := prescriptionRepo.Create(ctx, tx, prescription); err != nil {
				return fmt.Errorf("create prescription %s: %w", prescription.Code, err)
			}
		}

		log.Infof("Seeded %d users and %d prescriptions", created, len(seedPrescriptions))
		return nil
	})
}
