package service

import (
	"fmt"

	"vidaplus-api/internal/domain/entity"
	"vidaplus-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService is the single write path for the audit trail. Every mutating
// usecase calls Record with the transaction of its primary mutation, so the
// audit entry commits or rolls back together with the change it describes.
type AuditService interface {
	Record(tx *gorm.DB, actorID uuid.UUID, action string, details string) error
	Recordf(tx *gorm.DB, actorID uuid.UUID, action string, format string, args ...interface{}) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) Record(tx *gorm.DB, actorID uuid.UUID, action string, details string) error {
	auditLog := &entity.AuditLog{
		ActorID: actorID,
		Action:  action,
		Details: details,
	}

	if err := s.auditRepo.Create(tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log for action %s: %+v", action, err)
		return err
	}

	return nil
}

func (s *auditService) Recordf(tx *gorm.DB, actorID uuid.UUID, action string, format string, args ...interface{}) error {
	return s.Record(tx, actorID, action, fmt.Sprintf(format, args...))
}
