package converter

import (
	"go-prescription-portal/internal/delivery/dto"
	"go-prescription-portal/internal/domain/entity"
)

// previewSize is how many medicines a history row shows before "+N more"
const previewSize = 2

// PrescriptionToResponse converts a Prescription entity to PrescriptionResponse DTO.
// Doctor and patient names are included when their users are preloaded.
func PrescriptionToResponse(p *entity.Prescription) *dto.PrescriptionResponse {
	if p == nil {
		return nil
	}

	response := &dto.PrescriptionResponse{
		ID:                   p.ID,
		Code:                 p.Code,
		DoctorID:             p.DoctorID,
		DoctorName:           p.Doctor.User.FullName,
		DoctorSpecialization: p.Doctor.Specialization,
		PatientID:            p.PatientID,
		PatientName:          p.Patient.User.FullName,
		Diagnosis:            p.Diagnosis,
		FollowUpDate:         formatDatePtr(p.FollowUpDate),
		Advice:               p.Advice,
		Status:               string(p.Status),
		Medicines:            make([]dto.PrescriptionMedicineResponse, len(p.Medicines)),
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}

	for i, m := range p.Medicines {
		response.Medicines[i] = dto.PrescriptionMedicineResponse{
			Position:             m.Position,
			MedicineName:         m.MedicineName,
			DosageFrequency:      string(m.DosageFrequency),
			DosageFrequencyLabel: m.DosageFrequency.Label(),
			Timing:               string(m.Timing),
			TimingLabel:          m.Timing.Label(),
			SpecialInstructions:  m.SpecialInstructions,
		}
	}

	return response
}

// RecordToResponse converts one history record
func RecordToResponse(record entity.PrescriptionRecord) dto.PrescriptionRecordResponse {
	medicines := record.Medicines
	if medicines == nil {
		medicines = []string{}
	}

	preview := medicines
	if len(preview) > previewSize {
		preview = preview[:previewSize]
	}

	return dto.PrescriptionRecordResponse{
		ID:                         record.ID,
		CounterpartyName:           record.CounterpartyName,
		CounterpartySpecialization: record.CounterpartySpecialization,
		Date:                       record.Date.Format(dateLayout),
		Condition:                  record.Condition,
		Status:                     string(record.Status),
		Medicines:                  medicines,
		MedicinePreview:            preview,
		MoreMedicines:              len(medicines) - len(preview),
	}
}

// RecordsToListResponse wraps visible records with the filter that produced
// them. emptyState is only set when nothing is visible.
func RecordsToListResponse(records []entity.PrescriptionRecord, filter entity.RecordFilter, emptyState string) *dto.PrescriptionListResponse {
	response := &dto.PrescriptionListResponse{
		Prescriptions: make([]dto.PrescriptionRecordResponse, len(records)),
		Total:         len(records),
		Filter: dto.PrescriptionFilterResponse{
			Status: string(filter.Status),
			Search: filter.SearchTerm,
		},
	}
	for i, r := range records {
		response.Prescriptions[i] = RecordToResponse(r)
	}
	if len(records) == 0 {
		response.EmptyState = emptyState
	}
	return response
}
