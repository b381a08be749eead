package usecase

import (
	"context"
	"errors"

	"go-consult-intake/internal/converter"
	"go-consult-intake/internal/delivery/dto"
	"go-consult-intake/internal/domain/entity"
	"go-consult-intake/internal/domain/repository"
	"go-consult-intake/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrConsultationNotFound = errors.New("consultation not found")
	ErrConsultationClosed   = errors.New("consultation is no longer editable")
	ErrQuestionNotInForm    = errors.New("question does not belong to the consultation form")
	ErrConsultationNotOwned = errors.New("consultation does not belong to you")
)

type ConsultationUsecase interface {
	// StartConsultation accepts a nil userID: anonymous consultations are
	// allowed and simply have no owning account.
	StartConsultation(ctx context.Context, userID *uint, req *dto.StartConsultationRequest) (*dto.ConsultationResponse, error)
	SubmitAnswer(ctx context.Context, userID *uint, consultationID uint, req *dto.SubmitAnswerRequest) (*dto.AnswerResponse, error)
	SubmitFollowupAnswer(ctx context.Context, userID *uint, consultationID uint, req *dto.SubmitFollowupAnswerRequest) (*dto.FollowupAnswerResponse, error)
	SubmitConsultation(ctx context.Context, userID *uint, consultationID uint) (*dto.ConsultationResponse, error)
	GetConsultation(ctx context.Context, consultationID uint) (*dto.ConsultationResponse, error)
	GetMyConsultations(ctx context.Context, userID uint) ([]dto.ConsultationResponse, error)
}

type consultationUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	consultationRepo repository.ConsultationRepository
	formRepo         repository.ConsultFormRepository
	questionRepo     repository.ConsultQuestionRepository
	followupRepo     repository.FollowupQuestionRepository
	answerRepo       repository.ConsultAnswerRepository
	followupAnsRepo  repository.FollowupAnswerRepository
	auditService     service.AuditService
}

func NewConsultationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	consultationRepo repository.ConsultationRepository,
	formRepo repository.ConsultFormRepository,
	questionRepo repository.ConsultQuestionRepository,
	followupRepo repository.FollowupQuestionRepository,
	answerRepo repository.ConsultAnswerRepository,
	followupAnsRepo repository.FollowupAnswerRepository,
	auditService service.AuditService,
) ConsultationUsecase {
	return &consultationUsecase{
		db:               db,
		log:              log,
		consultationRepo: consultationRepo,
		formRepo:         formRepo,
		questionRepo:     questionRepo,
		followupRepo:     followupRepo,
		answerRepo:       answerRepo,
		followupAnsRepo:  followupAnsRepo,
		auditService:     auditService,
	}
}

func (u *consultationUsecase) StartConsultation(ctx context.Context, userID *uint, req *dto.StartConsultationRequest) (*dto.ConsultationResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	form, err := u.formRepo.FindByID(tx, req.FormID)
	if err != nil {
		u.log.Warnf("Failed to find form: %+v", err)
		return nil, err
	}
	if form == nil {
		return nil, ErrFormNotFound
	}

	question, err := u.questionRepo.FindByID(tx, req.PrimaryQuestionID)
	if err != nil {
		u.log.Warnf("Failed to find question: %+v", err)
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}
	if question.FormID != form.ID {
		return nil, ErrQuestionNotInForm
	}

	consultation := &entity.Consultation{
		UserID:            userID,
		FormID:            form.ID,
		PrimaryQuestionID: question.ID,
		Status:            entity.ConsultationStatusDraft,
	}
	if err := u.consultationRepo.Create(tx, consultation); err != nil {
		u.log.Warnf("Failed to create consultation: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(tx, userID, entity.AuditActionConsultationCreate, "consultation", consultation.ID, string(consultation.Status)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ConsultationToResponse(consultation, nil, nil), nil
}

func (u *consultationUsecase) SubmitAnswer(ctx context.Context, userID *uint, consultationID uint, req *dto.SubmitAnswerRequest) (*dto.AnswerResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	consultation, err := u.loadEditableConsultation(tx, userID, consultationID)
	if err != nil {
		return nil, err
	}

	question, err := u.questionRepo.FindByID(tx, req.QuestionID)
	if err != nil {
		u.log.Warnf("Failed to find question: %+v", err)
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}
	if question.FormID != consultation.FormID {
		return nil, ErrQuestionNotInForm
	}

	answer := &entity.ConsultAnswer{
		ConsultationID: consultation.ID,
		UserID:         consultation.UserID,
		QuestionID:     question.ID,
		AnswerText:     req.AnswerText,
	}
	if err := u.answerRepo.Create(tx, answer); err != nil {
		u.log.Warnf("Failed to create answer: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AnswerToResponse(answer), nil
}

func (u *consultationUsecase) SubmitFollowupAnswer(ctx context.Context, userID *uint, consultationID uint, req *dto.SubmitFollowupAnswerRequest) (*dto.FollowupAnswerResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	consultation, err := u.loadEditableConsultation(tx, userID, consultationID)
	if err != nil {
		return nil, err
	}

	followup, err := u.followupRepo.FindByID(tx, req.QuestionID)
	if err != nil {
		u.log.Warnf("Failed to find followup question: %+v", err)
		return nil, err
	}
	if followup == nil {
		return nil, ErrFollowupNotFound
	}

	answer := &entity.FollowupAnswer{
		ConsultationID: consultation.ID,
		QuestionID:     followup.ID,
		TextAnswer:     req.TextAnswer,
		FilePath:       req.FilePath,
	}
	if err := u.followupAnsRepo.Create(tx, answer); err != nil {
		u.log.Warnf("Failed to create followup answer: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.FollowupAnswerToResponse(answer), nil
}

func (u *consultationUsecase) SubmitConsultation(ctx context.Context, userID *uint, consultationID uint) (*dto.ConsultationResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	consultation, err := u.loadEditableConsultation(tx, userID, consultationID)
	if err != nil {
		return nil, err
	}

	consultation.Submit()
	if err := u.consultationRepo.Update(tx, consultation); err != nil {
		u.log.Warnf("Failed to update consultation: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(tx, userID, entity.AuditActionConsultationSubmit, "consultation", consultation.ID,
		string(entity.ConsultationStatusDraft), string(consultation.Status)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ConsultationToResponse(consultation, nil, nil), nil
}

func (u *consultationUsecase) GetConsultation(ctx context.Context, consultationID uint) (*dto.ConsultationResponse, error) {
	db := u.db.WithContext(ctx)

	consultation, err := u.consultationRepo.FindByID(db, consultationID)
	if err != nil {
		u.log.Warnf("Failed to find consultation: %+v", err)
		return nil, err
	}
	if consultation == nil {
		return nil, ErrConsultationNotFound
	}

	answers, err := u.answerRepo.FindByConsultationID(db, consultation.ID)
	if err != nil {
		u.log.Warnf("Failed to load answers: %+v", err)
		return nil, err
	}

	followupAnswers, err := u.followupAnsRepo.FindByConsultationID(db, consultation.ID)
	if err != nil {
		u.log.Warnf("Failed to load followup answers: %+v", err)
		return nil, err
	}

	return converter.ConsultationToResponse(consultation, answers, followupAnswers), nil
}

func (u *consultationUsecase) GetMyConsultations(ctx context.Context, userID uint) ([]dto.ConsultationResponse, error) {
	consultations, err := u.consultationRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list consultations: %+v", err)
		return nil, err
	}

	responses := make([]dto.ConsultationResponse, 0, len(consultations))
	for i := range consultations {
		responses = append(responses, *converter.ConsultationToResponse(&consultations[i], nil, nil))
	}
	return responses, nil
}

// loadEditableConsultation fetches a draft consultation and enforces
// ownership: an owned consultation can only be modified by its user, an
// anonymous one by anyone holding its id.
func (u *consultationUsecase) loadEditableConsultation(tx *gorm.DB, userID *uint, consultationID uint) (*entity.Consultation, error) {
	consultation, err := u.consultationRepo.FindByID(tx, consultationID)
	if err != nil {
		u.log.Warnf("Failed to find consultation: %+v", err)
		return nil, err
	}
	if consultation == nil {
		return nil, ErrConsultationNotFound
	}
	if consultation.UserID != nil {
		if userID == nil || *userID != *consultation.UserID {
			return nil, ErrConsultationNotOwned
		}
	}
	if !consultation.IsDraft() {
		return nil, ErrConsultationClosed
	}
	return consultation, nil
}
