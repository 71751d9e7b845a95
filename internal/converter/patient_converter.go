package converter

import (
	"github.com/DeepGajjar31/HealthNest/internal/delivery/dto"
	"github.com/DeepGajjar31/HealthNest/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	resp := &dto.PatientResponse{
		PatientID:  patient.PatientID,
		LoginID:    patient.LoginID,
		Name:       patient.Name,
		Email:      patient.Email,
		Age:        patient.Age,
		Gender:     patient.Gender,
		Number:     patient.Number,
		Address:    patient.Address,
		BloodGroup: patient.BloodGroup,
	}
	if !patient.Dob.IsZero() {
		resp.Dob = patient.Dob.Format("2006-01-02")
	}
	return resp
}

// PatientsToResponses converts a slice of Patient entities to PatientResponse DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}
