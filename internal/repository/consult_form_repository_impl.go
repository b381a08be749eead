package repository

import (
	"errors"

	"go-consult-intake/internal/domain/entity"
	domainRepo "go-consult-intake/internal/domain/repository"

	"gorm.io/gorm"
)

type consultFormRepository struct{}

func NewConsultFormRepository() domainRepo.ConsultFormRepository {
	return &consultFormRepository{}
}

func (r *consultFormRepository) Create(db *gorm.DB, form *entity.ConsultForm) error {
	return db.Create(form).Error
}

func (r *consultFormRepository) FindByID(db *gorm.DB, id uint) (*entity.ConsultForm, error) {
	var form entity.ConsultForm
	err := db.Where("id = ?", id).First(&form).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &form, nil
}

func (r *consultFormRepository) FindByName(db *gorm.DB, name string) (*entity.ConsultForm, error) {
	var form entity.ConsultForm
	err := db.Where("name = ?", name).First(&form).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &form, nil
}

func (r *consultFormRepository) FindAll(db *gorm.DB) ([]entity.ConsultForm, error) {
	var forms []entity.ConsultForm
	err := db.Order("name ASC").Find(&forms).Error
	if err != nil {
		return nil, err
	}
	return forms, nil
}

// DeleteWithQuestions deletes the questions first so the cascade holds on
// stores without foreign-key enforcement. Followups of the removed questions
// are intentionally left in place.
func (r *consultFormRepository) DeleteWithQuestions(db *gorm.DB, id uint) (int64, error) {
	if err := db.Where("form_id = ?", id).Delete(&entity.ConsultQuestion{}).Error; err != nil {
		return 0, err
	}
	affected := db.Where("id = ?", id).Delete(&entity.ConsultForm{})
	return affected.RowsAffected, affected.Error
}
