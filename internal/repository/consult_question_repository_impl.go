package repository

import (
	"errors"

	"go-consult-intake/internal/domain/entity"
	domainRepo "go-consult-intake/internal/domain/repository"

	"gorm.io/gorm"
)

type consultQuestionRepository struct{}

func NewConsultQuestionRepository() domainRepo.ConsultQuestionRepository {
	return &consultQuestionRepository{}
}

func (r *consultQuestionRepository) Create(db *gorm.DB, question *entity.ConsultQuestion) error {
	return db.Create(question).Error
}

func (r *consultQuestionRepository) FindByID(db *gorm.DB, id uint) (*entity.ConsultQuestion, error) {
	var question entity.ConsultQuestion
	err := db.Where("id = ?", id).First(&question).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}

func (r *consultQuestionRepository) FindByFormID(db *gorm.DB, formID uint) ([]entity.ConsultQuestion, error) {
	var questions []entity.ConsultQuestion
	err := db.Where("form_id = ?", formID).Order("id ASC").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *consultQuestionRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.ConsultQuestion{})
	return affected.RowsAffected, affected.Error
}
