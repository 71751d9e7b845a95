package repository

import (
	"github.com/DeepGajjar31/HealthNest/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindAll(db *gorm.DB) ([]entity.Patient, error)
	FindByID(db *gorm.DB, id uint) (*entity.Patient, error)
	FindByLoginID(db *gorm.DB, loginID uint) (*entity.Patient, error)
	Update(db *gorm.DB, patient *entity.Patient) error
	UpdateByID(db *gorm.DB, id uint, patient *entity.Patient) (int64, error)
	Delete(db *gorm.DB, id uint) (int64, error)
}
