package repository

import (
	"go-consult-intake/internal/domain/entity"

	"gorm.io/gorm"
)

type FollowupAnswerRepository interface {
	Create(db *gorm.DB, answer *entity.FollowupAnswer) error
	FindByConsultationID(db *gorm.DB, consultationID uint) ([]entity.FollowupAnswer, error)
}
