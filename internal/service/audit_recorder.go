package service

import (
	"context"

	"github.com/DeepGajjar31/HealthNest/internal/domain/entity"
	"github.com/DeepGajjar31/HealthNest/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditRecorder writes audit trail entries. Callers must never let a failed
// audit write fail the operation being audited.
type AuditRecorder interface {
	Record(ctx context.Context, db *gorm.DB, loginID *uint, action, entityName, entityID string, details entity.JSON) error
}

type auditRecorder struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditRecorder(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditRecorder {
	return &auditRecorder{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditRecorder) Record(ctx context.Context, db *gorm.DB, loginID *uint, action, entityName, entityID string, details entity.JSON) error {
	metadata := entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
	}
	for k, v := range details {
		metadata[k] = v
	}

	auditLog := &entity.AuditLog{
		LoginID:  loginID,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(db.WithContext(ctx), auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
