package usecase

import (
	"context"

	"go-consult-intake/internal/converter"
	"go-consult-intake/internal/delivery/dto"
	"go-consult-intake/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuditLogUsecase interface {
	List(ctx context.Context) ([]dto.AuditLogResponse, error)
	ListByUser(ctx context.Context, userID uint) ([]dto.AuditLogResponse, error)
}

type auditLogUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(db *gorm.DB, log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditLogUsecase {
	return &auditLogUsecase{
		db:        db,
		log:       log,
		auditRepo: auditRepo,
	}
}

func (u *auditLogUsecase) List(ctx context.Context) ([]dto.AuditLogResponse, error) {
	logs, err := u.auditRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list audit logs: %+v", err)
		return nil, err
	}

	responses := make([]dto.AuditLogResponse, 0, len(logs))
	for i := range logs {
		responses = append(responses, *converter.AuditLogToResponse(&logs[i]))
	}
	return responses, nil
}

func (u *auditLogUsecase) ListByUser(ctx context.Context, userID uint) ([]dto.AuditLogResponse, error) {
	logs, err := u.auditRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list audit logs for user: %+v", err)
		return nil, err
	}

	responses := make([]dto.AuditLogResponse, 0, len(logs))
	for i := range logs {
		responses = append(responses, *converter.AuditLogToResponse(&logs[i]))
	}
	return responses, nil
}
