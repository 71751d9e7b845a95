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

func newPatientUsecaseForTest(t *testing.T) (PatientUsecase, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	log := testLogger()
	auditRecorder := service.NewAuditRecorder(log, repoimpl.NewAuditLogRepository())
	uc := NewPatientUsecase(db, log, repoimpl.NewLoginRepository(), repoimpl.NewPatientRepository(), auditRecorder)
	return uc, db
}

func TestPatientUsecase_SaveProfile(t *testing.T) {
	t.Run("unknown email is rejected before any write", func(t *testing.T) {
		uc, db := newPatientUsecaseForTest(t)

		resp, created, err := uc.SaveProfile(context.Background(), &dto.SavePatientProfileRequest{
			Email:  "missing@example.com",
			Mobile: "555",
		})

		assert.ErrorIs(t, err, ErrUserNotFound, "should return ErrUserNotFound")
		assert.Nil(t, resp, "response should be nil")
		assert.False(t, created, "created flag should be false")

		var count int64
		require.NoError(t, db.Model(&entity.Patient{}).Count(&count).Error)
		assert.Zero(t, count, "no patient row may be written")
	})

	t.Run("first save inserts, second save updates the same row", func(t *testing.T) {
		uc, db := newPatientUsecaseForTest(t)
		login := createLogin(t, db, "pat@example.com", entity.RolePatient)

		resp, created, err := uc.SaveProfile(context.Background(), &dto.SavePatientProfileRequest{
			Email:      "pat@example.com",
			Mobile:     "555",
			Gender:     entity.GenderMale,
			Address:    "12 Main St",
			BloodGroup: "O+",
		})
		require.NoError(t, err, "first save failed")
		assert.True(t, created, "first save must insert")
		require.NotNil(t, resp)
		assert.Equal(t, login.LoginID, resp.LoginID, "login_id does not match")
		assert.Equal(t, "O+", resp.BloodGroup, "blood group does not match")

		firstID := resp.PatientID

		resp, created, err = uc.SaveProfile(context.Background(), &dto.SavePatientProfileRequest{
			Email:      "pat@example.com",
			Mobile:     "999",
			Gender:     entity.GenderMale,
			Address:    "34 Side St",
			BloodGroup: "O+",
		})
		require.NoError(t, err, "second save failed")
		assert.False(t, created, "second save must update")
		require.NotNil(t, resp)
		assert.Equal(t, firstID, resp.PatientID, "second save must reuse the row")
		assert.Equal(t, "999", resp.Number, "mobile not updated")
		assert.Equal(t, "34 Side St", resp.Address, "address not updated")

		var count int64
		require.NoError(t, db.Model(&entity.Patient{}).Count(&count).Error)
		assert.Equal(t, int64(1), count, "saves must converge on one row")
	})

	t.Run("invalid dob is rejected", func(t *testing.T) {
		uc, db := newPatientUsecaseForTest(t)
		createLogin(t, db, "pat@example.com", entity.RolePatient)

		_, _, err := uc.SaveProfile(context.Background(), &dto.SavePatientProfileRequest{
			Email: "pat@example.com",
			Dob:   "not-a-date",
		})

		assert.ErrorIs(t, err, ErrInvalidDateFormat, "should return ErrInvalidDateFormat")
	})
}

func TestPatientUsecase_DeletePatient(t *testing.T) {
	uc, db := newPatientUsecaseForTest(t)
	login := createLogin(t, db, "pat@example.com", entity.RolePatient)

	patient := &entity.Patient{LoginID: login.LoginID, Name: "John Doe"}
	require.NoError(t, db.Create(patient).Error)

	err := uc.DeletePatient(context.Background(), patient.PatientID)
	assert.NoError(t, err, "failed to delete patient")

	err = uc.DeletePatient(context.Background(), patient.PatientID)
	assert.ErrorIs(t, err, ErrPatientNotFound, "repeat delete should return ErrPatientNotFound")
}
