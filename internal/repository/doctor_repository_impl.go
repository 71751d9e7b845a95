package repository

import (
	"errors"

	"github.com/DeepGajjar31/HealthNest/internal/domain/entity"
	domainRepo "github.com/DeepGajjar31/HealthNest/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Create(doctor).Error
}

func (r *doctorRepository) FindAll(db *gorm.DB) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindByID(db *gorm.DB, id uint) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Where("doctor_id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByLoginID(db *gorm.DB, loginID uint) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Where("login_id = ?", loginID).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Save(doctor).Error
}

// UpdateByID overwrites every mutable column of the matching row, zero values
// included. Existence is decided by the affected-row count, not a lookup.
func (r *doctorRepository) UpdateByID(db *gorm.DB, id uint, doctor *entity.Doctor) (int64, error) {
	result := db.Model(&entity.Doctor{}).
		Where("doctor_id = ?", id).
		Select("*").
		Omit("doctor_id", "login_id").
		Updates(doctor)
	return result.RowsAffected, result.Error
}

func (r *doctorRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("doctor_id = ?", id).Delete(&entity.Doctor{})
	return result.RowsAffected, result.Error
}
