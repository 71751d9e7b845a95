package usecase

import (
	"context"
	"testing"

	"github.com/DeepGajjar31/HealthNest/internal/delivery/dto"
	"github.com/DeepGajjar31/HealthNest/internal/domain/entity"
	repoimpl "github.com/DeepGajjar31/HealthNest/internal/repository"
	"github.com/DeepGajjar31/HealthNest/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserUsecaseForTest(t *testing.T) (UserUsecase, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	log := testLogger()
	auditRecorder := service.NewAuditRecorder(log, repoimpl.NewAuditLogRepository())
	uc := NewUserUsecase(db, log, repoimpl.NewLoginRepository(), auditRecorder)
	return uc, db
}

func TestUserUsecase_GetAllUsers(t *testing.T) {
	uc, db := newUserUsecaseForTest(t)
	createLogin(t, db, "one@example.com", entity.RolePatient)
	createLogin(t, db, "two@example.com", entity.RoleDoctor)

	resp, err := uc.GetAllUsers(context.Background())

	require.NoError(t, err, "failed to list users")
	assert.Equal(t, 2, resp.Total, "total does not match")
}

func TestUserUsecase_UpdateUser(t *testing.T) {
	t.Run("rename and promote", func(t *testing.T) {
		uc, db := newUserUsecaseForTest(t)
		login := createLogin(t, db, "one@example.com", entity.RolePatient)

		resp, err := uc.UpdateUser(context.Background(), login.LoginID, &dto.UpdateUserRequest{
			Name: "Renamed User",
			Role: entity.RoleAdmin,
		})

		require.NoError(t, err, "failed to update user")
		assert.Equal(t, "Renamed User", resp.Name, "name not updated")
		assert.Equal(t, entity.RoleAdmin, resp.Role, "role not updated")
	})

	t.Run("missing user", func(t *testing.T) {
		uc, _ := newUserUsecaseForTest(t)

		_, err := uc.UpdateUser(context.Background(), 999, &dto.UpdateUserRequest{Name: "Nobody"})

		assert.ErrorIs(t, err, ErrUserNotFound, "should return ErrUserNotFound")
	})
}

func TestUserUsecase_DeleteUser(t *testing.T) {
	uc, db := newUserUsecaseForTest(t)
	login := createLogin(t, db, "one@example.com", entity.RolePatient)

	err := uc.DeleteUser(context.Background(), login.LoginID)
	assert.NoError(t, err, "failed to delete user")

	err = uc.DeleteUser(context.Background(), login.LoginID)
	assert.ErrorIs(t, err, ErrUserNotFound, "repeat delete should return ErrUserNotFound")
}
