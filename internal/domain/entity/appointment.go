package entity

import "time"

// Appointment links a patient to a doctor for a dated time slot.
type Appointment struct {
	AppointmentID   uint      `gorm:"column:appointment_id;primaryKey;autoIncrement" json:"appointment_id"`
	DoctorID        uint      `gorm:"column:doctor_id;not null;index" json:"doctor_id"`
	PatientID       uint      `gorm:"column:patient_id;not null;index" json:"patient_id"`
	AppointmentDate time.Time `gorm:"column:appointment_date;type:date;not null" json:"appointment_date"`
	TimeSlot        string    `gorm:"column:time_slot;type:varchar(20);not null" json:"time_slot"`
	Status          string    `gorm:"type:varchar(20);not null;default:pending;index" json:"status"`
	Reason          string    `gorm:"type:text" json:"reason,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor  Doctor  `gorm:"foreignKey:DoctorID;references:DoctorID" json:"doctor,omitempty"`
	Patient Patient `gorm:"foreignKey:PatientID;references:PatientID" json:"patient,omitempty"`
}

func (Appointment) TableName() string {
	return "appointment"
}

// Appointment status constants
const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCancelled = "cancelled"
	AppointmentStatusCompleted = "completed"
)
