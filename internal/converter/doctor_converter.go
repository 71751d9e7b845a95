package converter

import (
	"github.com/DeepGajjar31/HealthNest/internal/delivery/dto"
	"github.com/DeepGajjar31/HealthNest/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	resp := &dto.DoctorResponse{
		DoctorID:       doctor.DoctorID,
		LoginID:        doctor.LoginID,
		Name:           doctor.Name,
		Email:          doctor.Email,
		Age:            doctor.Age,
		Gender:         doctor.Gender,
		Hospital:       doctor.Hospital,
		HospitalLoc:    doctor.HospitalLoc,
		Specialization: doctor.Specialization,
		Experience:     doctor.Experience,
		Fees:           doctor.Fees,
		Education:      doctor.Education,
		Number:         doctor.Number,
		DocPic:         doctor.DocPic,
	}
	if !doctor.Dob.IsZero() {
		resp.Dob = doctor.Dob.Format("2006-01-02")
	}
	return resp
}

// DoctorsToResponses converts a slice of Doctor entities to DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}
