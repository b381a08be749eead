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
	ErrFormNameAlreadyExists = errors.New("form name already exists")
	ErrFormNotFound          = errors.New("form not found")
	ErrQuestionNotFound      = errors.New("question not found")
	ErrFollowupNotFound      = errors.New("followup question not found")
)

type FormUsecase interface {
	CreateForm(ctx context.Context, actorID *uint, req *dto.CreateFormRequest) (*dto.FormResponse, error)
	ListForms(ctx context.Context) (*dto.FormListResponse, error)
	GetForm(ctx context.Context, formID uint) (*dto.FormResponse, error)
	DeleteForm(ctx context.Context, actorID *uint, formID uint) error
	AddQuestion(ctx context.Context, actorID *uint, formID uint, req *dto.AddQuestionRequest) (*dto.QuestionResponse, error)
	AddFollowup(ctx context.Context, actorID *uint, questionID uint, req *dto.AddFollowupRequest) (*dto.FollowupResponse, error)
	GetQuestion(ctx context.Context, questionID uint) (*dto.QuestionResponse, error)
	DeleteQuestion(ctx context.Context, actorID *uint, questionID uint) error
}

type formUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	formRepo     repository.ConsultFormRepository
	questionRepo repository.ConsultQuestionRepository
	followupRepo repository.FollowupQuestionRepository
	auditService service.AuditService
}

func NewFormUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	formRepo repository.ConsultFormRepository,
	questionRepo repository.ConsultQuestionRepository,
	followupRepo repository.FollowupQuestionRepository,
	auditService service.AuditService,
) FormUsecase {
	return &formUsecase{
		db:           db,
		log:          log,
		formRepo:     formRepo,
		questionRepo: questionRepo,
		followupRepo: followupRepo,
		auditService: auditService,
	}
}

func (u *formUsecase) CreateForm(ctx context.Context, actorID *uint, req *dto.CreateFormRequest) (*dto.FormResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	form := &entity.ConsultForm{Name: req.Name}
	if err := u.formRepo.Create(tx, form); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrFormNameAlreadyExists
		}
		u.log.Warnf("Failed to create form: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(tx, actorID, entity.AuditActionFormCreate, "consult_form", form.ID, form.Name); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrFormNameAlreadyExists
		}
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.FormToResponse(form), nil
}

func (u *formUsecase) ListForms(ctx context.Context) (*dto.FormListResponse, error) {
	forms, err := u.formRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list forms: %+v", err)
		return nil, err
	}

	response := &dto.FormListResponse{Forms: make([]dto.FormResponse, 0, len(forms))}
	for i := range forms {
		response.Forms = append(response.Forms, *converter.FormToResponse(&forms[i]))
	}
	return response, nil
}

// GetForm loads the full question tree with explicit child queries, one level
// at a time, instead of relying on back-references.
func (u *formUsecase) GetForm(ctx context.Context, formID uint) (*dto.FormResponse, error) {
	db := u.db.WithContext(ctx)

	form, err := u.formRepo.FindByID(db, formID)
	if err != nil {
		u.log.Warnf("Failed to find form: %+v", err)
		return nil, err
	}
	if form == nil {
		return nil, ErrFormNotFound
	}

	questions, err := u.questionRepo.FindByFormID(db, form.ID)
	if err != nil {
		u.log.Warnf("Failed to load questions: %+v", err)
		return nil, err
	}

	followupsByQuestion := make(map[uint][]entity.FollowupQuestion, len(questions))
	for i := range questions {
		followups, err := u.followupRepo.FindByParentID(db, questions[i].ID)
		if err != nil {
			u.log.Warnf("Failed to load followups: %+v", err)
			return nil, err
		}
		followupsByQuestion[questions[i].ID] = followups
	}

	return converter.FormToTreeResponse(form, questions, followupsByQuestion), nil
}

// DeleteForm cascades to the form's questions inside one transaction.
// Followups of the removed questions are left orphaned; no cascade is
// declared for them.
func (u *formUsecase) DeleteForm(ctx context.Context, actorID *uint, formID uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	form, err := u.formRepo.FindByID(tx, formID)
	if err != nil {
		u.log.Warnf("Failed to find form: %+v", err)
		return err
	}
	if form == nil {
		return ErrFormNotFound
	}

	if _, err := u.formRepo.DeleteWithQuestions(tx, formID); err != nil {
		u.log.Warnf("Failed to delete form: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(tx, actorID, entity.AuditActionFormDelete, "consult_form", form.ID, form.Name); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *formUsecase) AddQuestion(ctx context.Context, actorID *uint, formID uint, req *dto.AddQuestionRequest) (*dto.QuestionResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	form, err := u.formRepo.FindByID(tx, formID)
	if err != nil {
		u.log.Warnf("Failed to find form: %+v", err)
		return nil, err
	}
	if form == nil {
		return nil, ErrFormNotFound
	}

	question := &entity.ConsultQuestion{
		Prompt: req.Prompt,
		FormID: form.ID,
	}
	if err := u.questionRepo.Create(tx, question); err != nil {
		if isForeignKeyError(err, "form") {
			return nil, ErrFormNotFound
		}
		u.log.Warnf("Failed to create question: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(tx, actorID, entity.AuditActionQuestionCreate, "consult_question", question.ID, question.Prompt); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.QuestionToResponse(question, nil), nil
}

func (u *formUsecase) AddFollowup(ctx context.Context, actorID *uint, questionID uint, req *dto.AddFollowupRequest) (*dto.FollowupResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	question, err := u.questionRepo.FindByID(tx, questionID)
	if err != nil {
		u.log.Warnf("Failed to find question: %+v", err)
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}

	followup := &entity.FollowupQuestion{
		Prompt:           req.Prompt,
		ParentQuestionID: question.ID,
	}
	if err := u.followupRepo.Create(tx, followup); err != nil {
		if isForeignKeyError(err, "question") {
			return nil, ErrQuestionNotFound
		}
		u.log.Warnf("Failed to create followup: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(tx, actorID, entity.AuditActionFollowupCreate, "followup_question", followup.ID, followup.Prompt); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.FollowupToResponse(followup), nil
}

func (u *formUsecase) GetQuestion(ctx context.Context, questionID uint) (*dto.QuestionResponse, error) {
	db := u.db.WithContext(ctx)

	question, err := u.questionRepo.FindByID(db, questionID)
	if err != nil {
		u.log.Warnf("Failed to find question: %+v", err)
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}

	followups, err := u.followupRepo.FindByParentID(db, question.ID)
	if err != nil {
		u.log.Warnf("Failed to load followups: %+v", err)
		return nil, err
	}

	return converter.QuestionToResponse(question, followups), nil
}

func (u *formUsecase) DeleteQuestion(ctx context.Context, actorID *uint, questionID uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	question, err := u.questionRepo.FindByID(tx, questionID)
	if err != nil {
		u.log.Warnf("Failed to find question: %+v", err)
		return err
	}
	if question == nil {
		return ErrQuestionNotFound
	}

	if _, err := u.questionRepo.Delete(tx, questionID); err != nil {
		u.log.Warnf("Failed to delete question: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(tx, actorID, entity.AuditActionQuestionDelete, "consult_question", question.ID, question.Prompt); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
