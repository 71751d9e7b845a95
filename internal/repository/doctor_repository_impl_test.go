package repository

import (
	"testing"

	"github.com/DeepGajjar31/HealthNest/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Login{}, &entity.Doctor{}, &entity.Patient{}, &entity.Appointment{}, &entity.AuditLog{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func createTestLogin(t *testing.T, db *gorm.DB, email string) *entity.Login {
	t.Helper()

	login := &entity.Login{
		Name:     "Test User",
		Email:    email,
		Password: "hashed_password",
		Role:     entity.RoleDoctor,
	}
	require.NoError(t, db.Create(login).Error, "failed to create test login")
	return login
}

func TestDoctorRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDoctorRepository()
	login := createTestLogin(t, db, "doc@example.com")

	doctor := &entity.Doctor{
		LoginID:        login.LoginID,
		Name:           "Dr. Smith",
		Email:          "doc@example.com",
		Specialization: "Cardiology",
	}

	err := repo.Create(db, doctor)

	assert.NoError(t, err, "failed to create doctor")
	assert.NotZero(t, doctor.DoctorID, "doctor ID is not set")
}

func TestDoctorRepository_FindByID(t *testing.T) {
	t.Run("find doctor by ID successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewDoctorRepository()
		login := createTestLogin(t, db, "doc@example.com")

		expected := &entity.Doctor{LoginID: login.LoginID, Name: "Dr. Smith"}
		require.NoError(t, repo.Create(db, expected))

		found, err := repo.FindByID(db, expected.DoctorID)

		assert.NoError(t, err, "failed to find doctor")
		require.NotNil(t, found, "doctor is nil")
		assert.Equal(t, expected.DoctorID, found.DoctorID, "ID does not match")
		assert.Equal(t, "Dr. Smith", found.Name, "name does not match")
	})

	t.Run("missing row returns nil without error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewDoctorRepository()

		found, err := repo.FindByID(db, 999)

		assert.NoError(t, err, "missing row must not be an error")
		assert.Nil(t, found, "doctor should be nil")
	})
}

func TestDoctorRepository_FindByLoginID(t *testing.T) {
	t.Run("find doctor by login ID successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewDoctorRepository()
		login := createTestLogin(t, db, "doc@example.com")

		expected := &entity.Doctor{LoginID: login.LoginID, Name: "Dr. Smith"}
		require.NoError(t, repo.Create(db, expected))

		found, err := repo.FindByLoginID(db, login.LoginID)

		assert.NoError(t, err, "failed to find doctor")
		require.NotNil(t, found, "doctor is nil")
		assert.Equal(t, expected.DoctorID, found.DoctorID, "ID does not match")
	})

	t.Run("missing row returns nil without error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewDoctorRepository()

		found, err := repo.FindByLoginID(db, 999)

		assert.NoError(t, err, "missing row must not be an error")
		assert.Nil(t, found, "doctor should be nil")
	})
}

func TestDoctorRepository_UpdateByID(t *testing.T) {
	t.Run("overwrites every mutable column including zero values", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewDoctorRepository()
		login := createTestLogin(t, db, "doc@example.com")

		doctor := &entity.Doctor{
			LoginID:        login.LoginID,
			Name:           "Dr. Smith",
			Specialization: "Cardiology",
			Fees:           500,
		}
		require.NoError(t, repo.Create(db, doctor))

		affected, err := repo.UpdateByID(db, doctor.DoctorID, &entity.Doctor{
			Name:  "Dr. Jones",
			Email: "jones@example.com",
		})

		assert.NoError(t, err, "failed to update doctor")
		assert.Equal(t, int64(1), affected, "affected rows does not match")

		found, err := repo.FindByID(db, doctor.DoctorID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Dr. Jones", found.Name, "name not updated")
		assert.Empty(t, found.Specialization, "zero-valued column was not overwritten")
		assert.Zero(t, found.Fees, "zero-valued column was not overwritten")
		assert.Equal(t, login.LoginID, found.LoginID, "login_id must not change")
	})

	t.Run("missing row reports zero affected rows", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewDoctorRepository()

		affected, err := repo.UpdateByID(db, 999, &entity.Doctor{Name: "Dr. Nobody"})

		assert.NoError(t, err, "missing row must not be an error")
		assert.Zero(t, affected, "affected rows should be zero")
	})
}

func TestDoctorRepository_Delete(t *testing.T) {
	t.Run("delete existing doctor", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewDoctorRepository()
		login := createTestLogin(t, db, "doc@example.com")

		doctor := &entity.Doctor{LoginID: login.LoginID, Name: "Dr. Smith"}
		require.NoError(t, repo.Create(db, doctor))

		affected, err := repo.Delete(db, doctor.DoctorID)

		assert.NoError(t, err, "failed to delete doctor")
		assert.Equal(t, int64(1), affected, "affected rows does not match")

		found, err := repo.FindByID(db, doctor.DoctorID)
		assert.NoError(t, err)
		assert.Nil(t, found, "doctor should be gone")
	})

	t.Run("missing row reports zero affected rows", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewDoctorRepository()

		affected, err := repo.Delete(db, 999)

		assert.NoError(t, err, "missing row must not be an error")
		assert.Zero(t, affected, "affected rows should be zero")
	})
}
