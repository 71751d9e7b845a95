package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/DeepGajjar31/HealthNest/internal/delivery/dto"
	"github.com/DeepGajjar31/HealthNest/internal/usecase"
	"github.com/DeepGajjar31/HealthNest/pkg/response"
	"github.com/DeepGajjar31/HealthNest/pkg/validator"

	"github.com/gorilla/mux"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
	validator   *validator.CustomValidator
}

func NewUserHandler(userUsecase usecase.UserUsecase, validator *validator.CustomValidator) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		validator:   validator,
	}
}

func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUsecase.GetAllUsers(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get users")
		return
	}

	response.Success(w, http.StatusOK, "Users retrieved successfully", users)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	loginID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	user, err := h.userUsecase.GetUser(r.Context(), uint(loginID))
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

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	loginID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	var req dto.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.userUsecase.UpdateUser(r.Context(), uint(loginID), &req)
	if err != nil {
		if err == usecase.ErrUserNotFound {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalServerError(w, "Failed to update user")
		return
	}

	response.Success(w, http.StatusOK, "User updated successfully", user)
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	loginID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	err = h.userUsecase.DeleteUser(r.Context(), uint(loginID))
	if err != nil {
		if err == usecase.ErrUserNotFound {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalServerError(w, "Failed to delete user")
		return
	}

	response.Success(w, http.StatusOK, "User deleted successfully", nil)
}
