package converter

import (
	"github.com/DeepGajjar31/HealthNest/internal/delivery/dto"
	"github.com/DeepGajjar31/HealthNest/internal/domain/entity"
)

// LoginToUserResponse converts a Login entity to UserResponse DTO
func LoginToUserResponse(login *entity.Login) *dto.UserResponse {
	if login == nil {
		return nil
	}

	return &dto.UserResponse{
		LoginID:   login.LoginID,
		Name:      login.Name,
		Email:     login.Email,
		Role:      login.Role,
		CreatedAt: login.CreatedAt,
		UpdatedAt: login.UpdatedAt,
	}
}

// LoginsToUserResponses converts a slice of Login entities to UserResponse DTOs
func LoginsToUserResponses(logins []entity.Login) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(logins))
	for i := range logins {
		responses[i] = *LoginToUserResponse(&logins[i])
	}
	return responses
}
