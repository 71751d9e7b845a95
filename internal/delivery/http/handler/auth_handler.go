package handler

import (
	"encoding/json"
	"net/http"

	"github.com/DeepGajjar31/HealthNest/internal/delivery/dto"
	"github.com/DeepGajjar31/HealthNest/internal/delivery/http/middleware"
	"github.com/DeepGajjar31/HealthNest/internal/usecase"
	"github.com/DeepGajjar31/HealthNest/pkg/jwt"
	"github.com/DeepGajjar31/HealthNest/pkg/response"
	"github.com/DeepGajjar31/HealthNest/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
	jwtService  *jwt.JWTService
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator, jwtService *jwt.JWTService) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
		jwtService:  jwtService,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.authUsecase.Register(r.Context(), &req)
	if err != nil {
		if err == usecase.ErrEmailAlreadyExists {
			response.Error(w, http.StatusConflict, "Email already exists", nil)
			return
		}
		response.InternalServerError(w, "Failed to register user")
		return
	}

	response.Success(w, http.StatusCreated, "User registered successfully", user)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	tokens, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		if err == usecase.ErrInvalidCredentials {
			response.Unauthorized(w, "Invalid email or password")
			return
		}
		response.InternalServerError(w, "Failed to login")
		return
	}

	response.Success(w, http.StatusOK, "Login successful", tokens)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	accessTokenID, ok := middleware.GetTokenIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	// The refresh token is revoked too when the client supplies it
	var req dto.RefreshTokenRequest
	refreshTokenID := ""
	if err := json.NewDecoder(r.Body).Decode(&req); err == nil && req.RefreshToken != "" {
		if claims, err := h.jwtService.ValidateToken(req.RefreshToken); err == nil {
			refreshTokenID = claims.TokenID
		}
	}

	if err := h.authUsecase.Logout(r.Context(), accessTokenID, refreshTokenID); err != nil {
		response.InternalServerError(w, "Failed to logout")
		return
	}

	response.Success(w, http.StatusOK, "Logged out successfully", nil)
}

func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	tokens, err := h.authUsecase.RefreshToken(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidToken, usecase.ErrTokenRevoked:
			response.Unauthorized(w, "Invalid or expired refresh token")
		default:
			response.InternalServerError(w, "Failed to refresh token")
		}
		return
	}

	response.Success(w, http.StatusOK, "Token refreshed successfully", tokens)
}

func (h *AuthHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	loginID, ok := middleware.GetLoginIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	user, err := h.authUsecase.GetCurrentUser(r.Context(), loginID)
	if err != nil {
		if err == usecase.ErrUserNotFound {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalServerError(w, "Failed to get user")
		return
	}

	response.Success(w, http.StatusOK, "User retrieved successfully", user)
}
