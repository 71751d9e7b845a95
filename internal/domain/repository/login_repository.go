package repository

import (
	"github.com/DeepGajjar31/HealthNest/internal/domain/entity"

	"gorm.io/gorm"
)

type LoginRepository interface {
	Create(db *gorm.DB, login *entity.Login) error
	FindAll(db *gorm.DB) ([]entity.Login, error)
	FindByID(db *gorm.DB, id uint) (*entity.Login, error)
	FindByEmail(db *gorm.DB, email string) (*entity.Login, error)
	Update(db *gorm.DB, login *entity.Login) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
