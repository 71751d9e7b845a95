package repository

import (
	"errors"

	"github.com/DeepGajjar31/HealthNest/internal/domain/entity"
	domainRepo "github.com/DeepGajjar31/HealthNest/internal/domain/repository"

	"gorm.io/gorm"
)

type loginRepository struct{}

func NewLoginRepository() domainRepo.LoginRepository {
	return &loginRepository{}
}

func (r *loginRepository) Create(db *gorm.DB, login *entity.Login) error {
	return db.Create(login).Error
}

func (r *loginRepository) FindAll(db *gorm.DB) ([]entity.Login, error) {
	var logins []entity.Login
	err := db.Find(&logins).Error
	if err != nil {
		return nil, err
	}
	return logins, nil
}

func (r *loginRepository) FindByID(db *gorm.DB, id uint) (*entity.Login, error) {
	var login entity.Login
	err := db.Where("login_id = ?", id).First(&login).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &login, nil
}

func (r *loginRepository) FindByEmail(db *gorm.DB, email string) (*entity.Login, error) {
	var login entity.Login
	err := db.Where("email = ?", email).First(&login).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &login, nil
}

func (r *loginRepository) Update(db *gorm.DB, login *entity.Login) error {
	return db.Save(login).Error
}

func (r *loginRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("login_id = ?", id).Delete(&entity.Login{})
	return result.RowsAffected, result.Error
}
