package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog represents a system audit trail entry.
// Rows are append-only: nothing in the codebase updates or deletes them, and the
// actor reference carries no cascade so entries outlive the users they mention.
type AuditLog struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ActorID   uuid.UUID `gorm:"type:uuid;not null;index" json:"actor_id"`
	Action    string    `gorm:"type:varchar(100);not null;index" json:"action"`
	Details   string    `gorm:"type:text" json:"details,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// Audit action codes
const (
	AuditActionNewPatient          = "NOVO_PACIENTE"
	AuditActionNewProfessional     = "NOVO_PROFISSIONAL"
	AuditActionNewAdministrator    = "NOVO_ADMINISTRADOR"
	AuditActionUpdatePatient       = "PACIENTE_ATUALIZADO"
	AuditActionUpdateProfessional  = "ATUALIZAR_PROFISSIONAL"
	AuditActionUpdateAdministrator = "ATUALIZAR_ADMINISTRADOR"
	AuditActionNewAppointment      = "NOVA_CONSULTA"
	AuditActionUpdateAppointment   = "ATUALIZAR_CONSULTA"
	AuditActionCreateMedicalRecord = "CRIAR_PRONTUARIO"
	AuditActionStartTelemedicine   = "INICIAR_TELEMEDICINA"
	AuditActionEndTelemedicine     = "ENCERRAR_TELEMEDICINA"
)
