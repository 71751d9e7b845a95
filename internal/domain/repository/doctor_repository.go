package repository

import (
	"github.com/DeepGajjar31/HealthNest/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindAll(db *gorm.DB) ([]entity.Doctor, error)
	FindByID(db *gorm.DB, id uint) (*entity.Doctor, error)
	FindByLoginID(db *gorm.DB, loginID uint) (*entity.Doctor, error)
	Update(db *gorm.DB, doctor *entity.Doctor) error
	UpdateByID(db *gorm.DB, id uint, doctor *entity.Doctor) (int64, error)
	Delete(db *gorm.DB, id uint) (int64, error)
}
