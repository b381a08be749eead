package repository

import (
	"go-consult-intake/internal/domain/entity"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	FindAll(db *gorm.DB) ([]entity.AuditLog, error)
	FindByUserID(db *gorm.DB, userID uint) ([]entity.AuditLog, error)
}
