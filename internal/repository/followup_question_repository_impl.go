package repository

import (
	"errors"

	"go-consult-intake/internal/domain/entity"
	domainRepo "go-consult-intake/internal/domain/repository"

	"gorm.io/gorm"
)

type followupQuestionRepository struct{}

func NewFollowupQuestionRepository() domainRepo.FollowupQuestionRepository {
	return &followupQuestionRepository{}
}

func (r *followupQuestionRepository) Create(db *gorm.DB, followup *entity.FollowupQuestion) error {
	return db.Create(followup).Error
}

func (r *followupQuestionRepository) FindByID(db *gorm.DB, id uint) (*entity.FollowupQuestion, error) {
	var followup entity.FollowupQuestion
	err := db.Where("id = ?", id).First(&followup).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &followup, nil
}

func (r *followupQuestionRepository) FindByParentID(db *gorm.DB, parentQuestionID uint) ([]entity.FollowupQuestion, error) {
	var followups []entity.FollowupQuestion
	err := db.Where("parent_question_id = ?", parentQuestionID).Order("id ASC").Find(&followups).Error
	if err != nil {
		return nil, err
	}
	return followups, nil
}
