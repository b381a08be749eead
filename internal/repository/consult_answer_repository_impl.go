package repository

import (
	"go-consult-intake/internal/domain/entity"
	domainRepo "go-consult-intake/internal/domain/repository"

	"gorm.io/gorm"
)

type consultAnswerRepository struct{}

func NewConsultAnswerRepository() domainRepo.ConsultAnswerRepository {
	return &consultAnswerRepository{}
}

func (r *consultAnswerRepository) Create(db *gorm.DB, answer *entity.ConsultAnswer) error {
	return db.Create(answer).Error
}

func (r *consultAnswerRepository) FindByConsultationID(db *gorm.DB, consultationID uint) ([]entity.ConsultAnswer, error) {
	var answers []entity.ConsultAnswer
	err := db.Where("consultation_id = ?", consultationID).Order("id ASC").Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}
