package converter

import (
	"go-prescription-portal/internal/delivery/dto"
	"go-prescription-portal/internal/domain/entity"
)

// MedicineOptions lists the choices of the dosage and timing selects
func MedicineOptions() *dto.MedicineOptionsResponse {
	frequencies := entity.DosageFrequencies()
	timings := entity.MedicineTimings()

	response := &dto.MedicineOptionsResponse{
		DosageFrequencies: make([]dto.OptionResponse, len(frequencies)),
		Timings:           make([]dto.OptionResponse, len(timings)),
	}
	for i, f := range frequencies {
		response.DosageFrequencies[i] = dto.OptionResponse{Value: string(f), Label: f.Label()}
	}
	for i, t := range timings {
		response.Timings[i] = dto.OptionResponse{Value: string(t), Label: t.Label()}
	}
	return response
}
