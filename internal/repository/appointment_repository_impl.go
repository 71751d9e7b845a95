package repository

import (
	"errors"

	"github.com/DeepGajjar31/HealthNest/internal/domain/entity"
	domainRepo "github.com/DeepGajjar31/HealthNest/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindAll(db *gorm.DB) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Doctor").Preload("Patient").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uint) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Doctor").Preload("Patient").Where("appointment_id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByDoctorID(db *gorm.DB, doctorID uint) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Patient").Where("doctor_id = ?", doctorID).Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID uint) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Doctor").Where("patient_id = ?", patientID).Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) UpdateByID(db *gorm.DB, id uint, appointment *entity.Appointment) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("appointment_id = ?", id).
		Select("*").
		Omit("appointment_id", "created_at").
		Updates(appointment)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("appointment_id = ?", id).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}
