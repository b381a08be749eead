package repository

import (
	"go-consult-intake/internal/domain/entity"

	"gorm.io/gorm"
)

type FollowupQuestionRepository interface {
	Create(db *gorm.DB, followup *entity.FollowupQuestion) error
	FindByID(db *gorm.DB, id uint) (*entity.FollowupQuestion, error)
	FindByParentID(db *gorm.DB, parentQuestionID uint) ([]entity.FollowupQuestion, error)
}
