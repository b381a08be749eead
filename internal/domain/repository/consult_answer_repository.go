package repository

import (
	"go-consult-intake/internal/domain/entity"

	"gorm.io/gorm"
)

type ConsultAnswerRepository interface {
	Create(db *gorm.DB, answer *entity.ConsultAnswer) error
	FindByConsultationID(db *gorm.DB, consultationID uint) ([]entity.ConsultAnswer, error)
}
