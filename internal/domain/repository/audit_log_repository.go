package repository

import (
	"vidaplus-api/internal/domain/entity"

	"gorm.io/gorm"
)

// AuditLogRepository is append-and-read only. There is deliberately no update
// or delete operation on audit entries.
type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	FindAll(db *gorm.DB) ([]entity.AuditLog, error)
}
