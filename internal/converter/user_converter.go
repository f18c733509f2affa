package converter

import (
	"go-prescription-portal/internal/delivery/dto"
	"go-prescription-portal/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
// Includes DoctorProfile and PatientProfile if they are loaded
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	role := user.Role.RoleName
	if role == "" {
		role = entity.RoleNameByID(user.RoleID)
	}

	response := &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if user.DoctorProfile != nil {
		response.DoctorProfile = &dto.DoctorProfileResponse{
			LicenseNumber:  user.DoctorProfile.LicenseNumber,
			Specialization: user.DoctorProfile.Specialization,
		}
	}

	if user.PatientProfile != nil {
		response.PatientProfile = &dto.PatientProfileResponse{
			UserID:      user.PatientProfile.UserID,
			PhoneNumber: user.PatientProfile.PhoneNumber,
			DateOfBirth: formatDate(user.PatientProfile.DateOfBirth),
			Gender:      user.PatientProfile.Gender,
		}
	}

	return response
}
