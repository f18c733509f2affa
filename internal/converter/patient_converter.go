package converter

import (
	"go-prescription-portal/internal/delivery/dto"
	"go-prescription-portal/internal/domain/entity"
)

// PatientProfileToResponse converts a PatientProfile with its preloaded User
func PatientProfileToResponse(profile *entity.PatientProfile) *dto.PatientResponse {
	if profile == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:          profile.UserID,
		FullName:    profile.User.FullName,
		Email:       profile.User.Email,
		PhoneNumber: profile.PhoneNumber,
		DateOfBirth: formatDate(profile.DateOfBirth),
		Gender:      profile.Gender,
	}
}

func PatientProfilesToResponses(profiles []entity.PatientProfile) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(profiles))
	for i := range profiles {
		responses[i] = *PatientProfileToResponse(&profiles[i])
	}
	return responses
}
