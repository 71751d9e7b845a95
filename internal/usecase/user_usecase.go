package usecase

import (
	"context"
	"fmt"

	"github.com/DeepGajjar31/HealthNest/internal/converter"
	"github.com/DeepGajjar31/HealthNest/internal/delivery/dto"
	"github.com/DeepGajjar31/HealthNest/internal/domain/entity"
	"github.com/DeepGajjar31/HealthNest/internal/domain/repository"
	"github.com/DeepGajjar31/HealthNest/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// UserUsecase is the admin-facing management surface over the login table.
type UserUsecase interface {
	GetAllUsers(ctx context.Context) (*dto.UserListResponse, error)
	GetUser(ctx context.Context, loginID uint) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, loginID uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, loginID uint) error
}

type userUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	loginRepo     repository.LoginRepository
	auditRecorder service.AuditRecorder
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	loginRepo repository.LoginRepository,
	auditRecorder service.AuditRecorder,
) UserUsecase {
	return &userUsecase{
		db:            db,
		log:           log,
		loginRepo:     loginRepo,
		auditRecorder: auditRecorder,
	}
}

func (u *userUsecase) GetAllUsers(ctx context.Context) (*dto.UserListResponse, error) {
	logins, err := u.loginRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all logins: %+v", err)
		return nil, err
	}

	users := converter.LoginsToUserResponses(logins)

	return &dto.UserListResponse{
		Users: users,
		Total: len(users),
	}, nil
}

func (u *userUsecase) GetUser(ctx context.Context, loginID uint) (*dto.UserResponse, error) {
	login, err := u.loginRepo.FindByID(u.db.WithContext(ctx), loginID)
	if err != nil {
		u.log.Warnf("Failed to find login: %+v", err)
		return nil, err
	}
	if login == nil {
		return nil, ErrUserNotFound
	}

	return converter.LoginToUserResponse(login), nil
}

// UpdateUser changes name and role only; email and password stay under the
// account owner's control through the auth flows.
func (u *userUsecase) UpdateUser(ctx context.Context, loginID uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	db := u.db.WithContext(ctx)

	login, err := u.loginRepo.FindByID(db, loginID)
	if err != nil {
		u.log.Warnf("Failed to find login: %+v", err)
		return nil, err
	}
	if login == nil {
		return nil, ErrUserNotFound
	}

	if req.Name != "" {
		login.Name = req.Name
	}
	if req.Role != "" {
		login.Role = req.Role
	}

	if err := u.loginRepo.Update(db, login); err != nil {
		u.log.Warnf("Failed to update login: %+v", err)
		return nil, err
	}

	actorID := actorFromContext(ctx)
	if err := u.auditRecorder.Record(ctx, db, actorID, entity.AuditActionUserUpdate, "login", fmt.Sprint(loginID), entity.JSON{
		"name": login.Name,
		"role": login.Role,
	}); err != nil {
		u.log.Warnf("Failed to record audit entry: %+v", err)
	}

	return converter.LoginToUserResponse(login), nil
}

func (u *userUsecase) DeleteUser(ctx context.Context, loginID uint) error {
	db := u.db.WithContext(ctx)

	affectedRows, err := u.loginRepo.Delete(db, loginID)
	if err != nil {
		u.log.Warnf("Failed to delete login: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrUserNotFound
	}

	actorID := actorFromContext(ctx)
	if err := u.auditRecorder.Record(ctx, db, actorID, entity.AuditActionUserDelete, "login", fmt.Sprint(loginID), nil); err != nil {
		u.log.Warnf("Failed to record audit entry: %+v", err)
	}

	return nil
}
