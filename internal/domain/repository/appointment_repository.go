package repository

import (
	"github.com/DeepGajjar31/HealthNest/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindAll(db *gorm.DB) ([]entity.Appointment, error)
	FindByID(db *gorm.DB, id uint) (*entity.Appointment, error)
	FindByDoctorID(db *gorm.DB, doctorID uint) ([]entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uint) ([]entity.Appointment, error)
	UpdateByID(db *gorm.DB, id uint, appointment *entity.Appointment) (int64, error)
	Delete(db *gorm.DB, id uint) (int64, error)
}
