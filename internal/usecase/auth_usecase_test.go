package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/DeepGajjar31/HealthNest/config"
	"github.com/DeepGajjar31/HealthNest/internal/delivery/dto"
	"github.com/DeepGajjar31/HealthNest/internal/domain/entity"
	repoimpl "github.com/DeepGajjar31/HealthNest/internal/repository"
	"github.com/DeepGajjar31/HealthNest/internal/service"
	"github.com/DeepGajjar31/HealthNest/pkg/jwt"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthUsecaseForTest(t *testing.T) (AuthUsecase, *gorm.DB, redismock.ClientMock) {
	t.Helper()

	db := setupTestDB(t)
	log := testLogger()
	redisClient, redisMock := redismock.NewClientMock()
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
	auditRecorder := service.NewAuditRecorder(log, repoimpl.NewAuditLogRepository())
	uc := NewAuthUsecase(db, log, repoimpl.NewLoginRepository(), auditRecorder, jwtService, redisClient)
	return uc, db, redisMock
}

func TestAuthUsecase_Register(t *testing.T) {
	t.Run("registration creates a login row only", func(t *testing.T) {
		uc, db, _ := newAuthUsecaseForTest(t)

		resp, err := uc.Register(context.Background(), &dto.RegisterRequest{
			Name:     "Dr. Smith",
			Email:    "doc@example.com",
			Password: "secret123",
			Role:     entity.RoleDoctor,
		})

		require.NoError(t, err, "failed to register")
		require.NotNil(t, resp)
		assert.NotZero(t, resp.LoginID, "login ID is not set")
		assert.Equal(t, entity.RoleDoctor, resp.Role, "role does not match")

		var login entity.Login
		require.NoError(t, db.First(&login, "email = ?", "doc@example.com").Error)
		assert.NotEqual(t, "secret123", login.Password, "password must be stored hashed")
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(login.Password), []byte("secret123")),
			"stored hash does not verify")

		var doctorCount int64
		require.NoError(t, db.Model(&entity.Doctor{}).Count(&doctorCount).Error)
		assert.Zero(t, doctorCount, "registration must not create a doctor row")
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	registerLogin := func(t *testing.T, uc AuthUsecase) {
		t.Helper()
		_, err := uc.Register(context.Background(), &dto.RegisterRequest{
			Name:     "Dr. Smith",
			Email:    "doc@example.com",
			Password: "secret123",
			Role:     entity.RoleDoctor,
		})
		require.NoError(t, err)
	}

	t.Run("valid credentials issue a token pair", func(t *testing.T) {
		uc, _, redisMock := newAuthUsecaseForTest(t)
		registerLogin(t, uc)

		redisMock.Regexp().ExpectSet(`access_token:\d+:.+`, "valid", 15*time.Minute).SetVal("OK")
		redisMock.Regexp().ExpectSet(`refresh_token:\d+:.+`, "valid", 7*24*time.Hour).SetVal("OK")

		resp, err := uc.Login(context.Background(), &dto.LoginRequest{
			Email:    "doc@example.com",
			Password: "secret123",
		})

		require.NoError(t, err, "failed to login")
		require.NotNil(t, resp)
		assert.NotEmpty(t, resp.AccessToken, "access token is empty")
		assert.NotEmpty(t, resp.RefreshToken, "refresh token is empty")
		assert.Equal(t, int64((15 * time.Minute).Seconds()), resp.ExpiresIn, "expiry does not match")
		assert.NoError(t, redisMock.ExpectationsWereMet(), "unexpected redis traffic")
	})

	t.Run("wrong password", func(t *testing.T) {
		uc, _, _ := newAuthUsecaseForTest(t)
		registerLogin(t, uc)

		_, err := uc.Login(context.Background(), &dto.LoginRequest{
			Email:    "doc@example.com",
			Password: "wrong",
		})

		assert.ErrorIs(t, err, ErrInvalidCredentials, "should return ErrInvalidCredentials")
	})

	t.Run("unknown email", func(t *testing.T) {
		uc, _, _ := newAuthUsecaseForTest(t)

		_, err := uc.Login(context.Background(), &dto.LoginRequest{
			Email:    "nobody@example.com",
			Password: "secret123",
		})

		assert.ErrorIs(t, err, ErrInvalidCredentials, "should return ErrInvalidCredentials")
	})
}

func TestAuthUsecase_RefreshToken(t *testing.T) {
	t.Run("access token cannot be used as refresh token", func(t *testing.T) {
		uc, _, _ := newAuthUsecaseForTest(t)
		jwtService := jwt.NewJWTService(config.JWTConfig{
			Secret:       "test-secret",
			AccessExpiry: 15 * time.Minute,
		})
		accessToken, _, err := jwtService.GenerateAccessToken(1, "doc@example.com", entity.RoleDoctor)
		require.NoError(t, err)

		_, err = uc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: accessToken})

		assert.ErrorIs(t, err, ErrInvalidToken, "should return ErrInvalidToken")
	})

	t.Run("revoked refresh token", func(t *testing.T) {
		uc, _, redisMock := newAuthUsecaseForTest(t)
		jwtService := jwt.NewJWTService(config.JWTConfig{
			Secret:        "test-secret",
			RefreshExpiry: 7 * 24 * time.Hour,
		})
		refreshToken, tokenID, err := jwtService.GenerateRefreshToken(1, "doc@example.com", entity.RoleDoctor)
		require.NoError(t, err)

		redisMock.ExpectExists("refresh_token:1:" + tokenID).SetVal(0)

		_, err = uc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: refreshToken})

		assert.ErrorIs(t, err, ErrTokenRevoked, "should return ErrTokenRevoked")
	})

	t.Run("garbage token", func(t *testing.T) {
		uc, _, _ := newAuthUsecaseForTest(t)

		_, err := uc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: "not.a.token"})

		assert.ErrorIs(t, err, ErrInvalidToken, "should return ErrInvalidToken")
	})
}

func TestAuthUsecase_GetCurrentUser(t *testing.T) {
	uc, db, _ := newAuthUsecaseForTest(t)
	login := createLogin(t, db, "doc@example.com", entity.RoleDoctor)

	resp, err := uc.GetCurrentUser(context.Background(), login.LoginID)
	require.NoError(t, err, "failed to get current user")
	assert.Equal(t, login.Email, resp.Email, "email does not match")

	_, err = uc.GetCurrentUser(context.Background(), 999)
	assert.ErrorIs(t, err, ErrUserNotFound, "should return ErrUserNotFound")
}
