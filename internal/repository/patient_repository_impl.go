package repository

import (
	"errors"

	"github.com/DeepGajjar31/HealthNest/internal/domain/entity"
	domainRepo "github.com/DeepGajjar31/HealthNest/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Create(patient).Error
}

func (r *patientRepository) FindAll(db *gorm.DB) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindByID(db *gorm.DB, id uint) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("patient_id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByLoginID(db *gorm.DB, loginID uint) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("login_id = ?", loginID).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) Update(db *gorm.DB, patient *entity.Patient) error {
	return db.Save(patient).Error
}

func (r *patientRepository) UpdateByID(db *gorm.DB, id uint, patient *entity.Patient) (int64, error) {
	result := db.Model(&entity.Patient{}).
		Where("patient_id = ?", id).
		Select("*").
		Omit("patient_id", "login_id").
		Updates(patient)
	return result.RowsAffected, result.Error
}

func (r *patientRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("patient_id = ?", id).Delete(&entity.Patient{})
	return result.RowsAffected, result.Error
}
