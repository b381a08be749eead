package repository

import (
	"go-consult-intake/internal/domain/entity"
	domainRepo "go-consult-intake/internal/domain/repository"

	"gorm.io/gorm"
)

type followupAnswerRepository struct{}

func NewFollowupAnswerRepository() domainRepo.FollowupAnswerRepository {
	return &followupAnswerRepository{}
}

func (r *followupAnswerRepository) Create(db *gorm.DB, answer *entity.FollowupAnswer) error {
	return db.Create(answer).Error
}

func (r *followupAnswerRepository) FindByConsultationID(db *gorm.DB, consultationID uint) ([]entity.FollowupAnswer, error) {
	var answers []entity.FollowupAnswer
	err := db.Where("consultation_id = ?", consultationID).Order("id ASC").Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}
