package dto

import (
	"time"

	"github.com/DeepGajjar31/HealthNest/internal/domain/entity"
)

type AuditLogResponse struct {
	ID        int64       `json:"id"`
	LoginID   *uint       `json:"login_id,omitempty"`
	ActorName string      `json:"actor_name,omitempty"`
	Action    string      `json:"action"`
	Metadata  entity.JSON `json:"metadata,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int                `json:"total"`
}
