package repository

import (
	"errors"

	"go-consult-intake/internal/domain/entity"
	domainRepo "go-consult-intake/internal/domain/repository"

	"gorm.io/gorm"
)

type consultationRepository struct{}

func NewConsultationRepository() domainRepo.ConsultationRepository {
	return &consultationRepository{}
}

func (r *consultationRepository) Create(db *gorm.DB, consultation *entity.Consultation) error {
	return db.Create(consultation).Error
}

func (r *consultationRepository) FindByID(db *gorm.DB, id uint) (*entity.Consultation, error) {
	var consultation entity.Consultation
	err := db.Where("id = ?", id).First(&consultation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &consultation, nil
}

func (r *consultationRepository) FindByUserID(db *gorm.DB, userID uint) ([]entity.Consultation, error) {
	var consultations []entity.Consultation
	err := db.Where("user_id = ?", userID).Order("id DESC").Find(&consultations).Error
	if err != nil {
		return nil, err
	}
	return consultations, nil
}

func (r *consultationRepository) Update(db *gorm.DB, consultation *entity.Consultation) error {
	return db.Omit("User", "Form", "PrimaryQuestion").Save(consultation).Error
}
