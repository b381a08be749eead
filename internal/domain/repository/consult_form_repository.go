package repository

import (
	"go-consult-intake/internal/domain/entity"

	"gorm.io/gorm"
)

type ConsultFormRepository interface {
	Create(db *gorm.DB, form *entity.ConsultForm) error
	FindByID(db *gorm.DB, id uint) (*entity.ConsultForm, error)
	FindByName(db *gorm.DB, name string) (*entity.ConsultForm, error)
	FindAll(db *gorm.DB) ([]entity.ConsultForm, error)
	// DeleteWithQuestions removes the form and all of its questions in the
	// supplied transaction. Followups and answers are left untouched.
	DeleteWithQuestions(db *gorm.DB, id uint) (int64, error)
}
