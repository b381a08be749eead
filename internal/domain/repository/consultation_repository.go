package repository

import (
	"go-consult-intake/internal/domain/entity"

	"gorm.io/gorm"
)

type ConsultationRepository interface {
	Create(db *gorm.DB, consultation *entity.Consultation) error
	FindByID(db *gorm.DB, id uint) (*entity.Consultation, error)
	FindByUserID(db *gorm.DB, userID uint) ([]entity.Consultation, error)
	Update(db *gorm.DB, consultation *entity.Consultation) error
}
