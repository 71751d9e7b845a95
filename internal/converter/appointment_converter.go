package converter

import (
	"github.com/DeepGajjar31/HealthNest/internal/delivery/dto"
	"github.com/DeepGajjar31/HealthNest/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		AppointmentID:   appointment.AppointmentID,
		DoctorID:        appointment.DoctorID,
		DoctorName:      appointment.Doctor.Name,
		PatientID:       appointment.PatientID,
		PatientName:     appointment.Patient.Name,
		AppointmentDate: appointment.AppointmentDate.Format("2006-01-02"),
		TimeSlot:        appointment.TimeSlot,
		Status:          appointment.Status,
		Reason:          appointment.Reason,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
