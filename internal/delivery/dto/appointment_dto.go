package dto

import "time"

// Request DTOs

type CreateAppointmentRequest struct {
	DoctorID        uint   `json:"doctor_id" validate:"required"`
	PatientID       uint   `json:"patient_id" validate:"required"`
	AppointmentDate string `json:"appointment_date" validate:"required"`
	TimeSlot        string `json:"time_slot" validate:"required"`
	Reason          string `json:"reason" validate:"omitempty"`
}

type UpdateAppointmentRequest struct {
	DoctorID        uint   `json:"doctor_id" validate:"required"`
	PatientID       uint   `json:"patient_id" validate:"required"`
	AppointmentDate string `json:"appointment_date" validate:"required"`
	TimeSlot        string `json:"time_slot" validate:"required"`
	Status          string `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
	Reason          string `json:"reason" validate:"omitempty"`
}

// Response DTOs

type AppointmentResponse struct {
	AppointmentID   uint      `json:"appointment_id"`
	DoctorID        uint      `json:"doctor_id"`
	DoctorName      string    `json:"doctor_name,omitempty"`
	PatientID       uint      `json:"patient_id"`
	PatientName     string    `json:"patient_name,omitempty"`
	AppointmentDate string    `json:"appointment_date"`
	TimeSlot        string    `json:"time_slot"`
	Status          string    `json:"status"`
	Reason          string    `json:"reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
