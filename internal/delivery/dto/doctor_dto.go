package dto

// DoctorProfileResponse represents doctor profile data in responses
type DoctorProfileResponse struct {
	LicenseNumber  string `json:"license_number"`
	Specialization string `json:"specialization"`
}
