package repository

import (
	"testing"

	"github.com/DeepGajjar31/HealthNest/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginRepository_Create(t *testing.T) {
	t.Run("successful login creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewLoginRepository()

		login := &entity.Login{
			Name:     "Test User",
			Email:    "test@example.com",
			Password: "hashed_password",
			Role:     entity.RolePatient,
		}

		err := repo.Create(db, login)

		assert.NoError(t, err, "failed to create login")
		assert.NotZero(t, login.LoginID, "login ID is not set")
		assert.False(t, login.CreatedAt.IsZero(), "CreatedAt is not set")
	})

	t.Run("duplicate email error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewLoginRepository()

		first := &entity.Login{Name: "A", Email: "dup@example.com", Password: "p1", Role: entity.RolePatient}
		require.NoError(t, repo.Create(db, first))

		second := &entity.Login{Name: "B", Email: "dup@example.com", Password: "p2", Role: entity.RoleDoctor}
		err := repo.Create(db, second)

		assert.Error(t, err, "should return duplicate error")
	})
}

func TestLoginRepository_FindByEmail(t *testing.T) {
	t.Run("find login by email successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewLoginRepository()

		expected := &entity.Login{Name: "Test User", Email: "find@example.com", Password: "p", Role: entity.RoleDoctor}
		require.NoError(t, repo.Create(db, expected))

		found, err := repo.FindByEmail(db, "find@example.com")

		assert.NoError(t, err, "failed to find login")
		require.NotNil(t, found, "login is nil")
		assert.Equal(t, expected.LoginID, found.LoginID, "ID does not match")
		assert.Equal(t, entity.RoleDoctor, found.Role, "role does not match")
	})

	t.Run("missing email returns nil without error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewLoginRepository()

		found, err := repo.FindByEmail(db, "notfound@example.com")

		assert.NoError(t, err, "missing row must not be an error")
		assert.Nil(t, found, "login should be nil")
	})
}

func TestLoginRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLoginRepository()

	login := &entity.Login{Name: "Test User", Email: "gone@example.com", Password: "p", Role: entity.RolePatient}
	require.NoError(t, repo.Create(db, login))

	affected, err := repo.Delete(db, login.LoginID)
	assert.NoError(t, err, "failed to delete login")
	assert.Equal(t, int64(1), affected, "affected rows does not match")

	affected, err = repo.Delete(db, login.LoginID)
	assert.NoError(t, err, "repeat delete must not be an error")
	assert.Zero(t, affected, "affected rows should be zero")
}
