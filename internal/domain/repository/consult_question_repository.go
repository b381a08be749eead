package repository

import (
	"go-consult-intake/internal/domain/entity"

	"gorm.io/gorm"
)

type ConsultQuestionRepository interface {
	Create(db *gorm.DB, question *entity.ConsultQuestion) error
	FindByID(db *gorm.DB, id uint) (*entity.ConsultQuestion, error)
	FindByFormID(db *gorm.DB, formID uint) ([]entity.ConsultQuestion, error)
	Delete(db *gorm.DB, id uint) (int64, error)
}
