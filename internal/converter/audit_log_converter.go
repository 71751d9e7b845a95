package converter

import (
	"github.com/DeepGajjar31/HealthNest/internal/delivery/dto"
	"github.com/DeepGajjar31/HealthNest/internal/domain/entity"
)

// AuditLogToResponse converts an AuditLog entity to AuditLogResponse DTO
func AuditLogToResponse(log *entity.AuditLog) *dto.AuditLogResponse {
	if log == nil {
		return nil
	}

	resp := &dto.AuditLogResponse{
		ID:        log.ID,
		LoginID:   log.LoginID,
		Action:    log.Action,
		Metadata:  log.Metadata,
		CreatedAt: log.CreatedAt,
	}
	if log.Login != nil {
		resp.ActorName = log.Login.Name
	}
	return resp
}

// AuditLogsToResponses converts a slice of AuditLog entities to AuditLogResponse DTOs
func AuditLogsToResponses(logs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, len(logs))
	for i := range logs {
		responses[i] = *AuditLogToResponse(&logs[i])
	}
	return responses
}
