package usecase

import (
	"context"
	"testing"

	"go-consult-intake/internal/delivery/dto"
	"go-consult-intake/internal/domain/entity"
)

// seedForm creates a form with one primary question and one followup and
// returns their responses.
func seedForm(t *testing.T, formUsecase FormUsecase) (*dto.FormResponse, *dto.QuestionResponse, *dto.FollowupResponse) {
	t.Helper()
	ctx := context.Background()

	form, err := formUsecase.CreateForm(ctx, nil, &dto.CreateFormRequest{Name: "General Intake"})
	if err != nil {
		t.Fatalf("CreateForm() error = %v", err)
	}
	question, err := formUsecase.AddQuestion(ctx, nil, form.ID, &dto.AddQuestionRequest{Prompt: "What brings you in today?"})
	if err != nil {
		t.Fatalf("AddQuestion() error = %v", err)
	}
	followup, err := formUsecase.AddFollowup(ctx, nil, question.ID, &dto.AddFollowupRequest{Prompt: "When did it start?"})
	if err != nil {
		t.Fatalf("AddFollowup() error = %v", err)
	}
	return form, question, followup
}

func TestStartConsultationAnonymous(t *testing.T) {
	uc, formUsecase, _ := newTestConsultationUsecase(t)
	form, question, _ := seedForm(t, formUsecase)
	ctx := context.Background()

	consultation, err := uc.StartConsultation(ctx, nil, &dto.StartConsultationRequest{
		FormID:            form.ID,
		PrimaryQuestionID: question.ID,
	})
	if err != nil {
		t.Fatalf("StartConsultation() error = %v", err)
	}
	if consultation.UserID != nil {
		t.Errorf("anonymous consultation user_id = %v, want nil", *consultation.UserID)
	}
	if consultation.Status != string(entity.ConsultationStatusDraft) {
		t.Errorf("Status = %q, want %q", consultation.Status, entity.ConsultationStatusDraft)
	}
}

func TestStartConsultationValidation(t *testing.T) {
	uc, formUsecase, _ := newTestConsultationUsecase(t)
	form, question, _ := seedForm(t, formUsecase)
	ctx := context.Background()

	if _, err := uc.StartConsultation(ctx, nil, &dto.StartConsultationRequest{FormID: 9999, PrimaryQuestionID: question.ID}); err != ErrFormNotFound {
		t.Fatalf("StartConsultation(missing form) error = %v, want ErrFormNotFound", err)
	}
	if _, err := uc.StartConsultation(ctx, nil, &dto.StartConsultationRequest{FormID: form.ID, PrimaryQuestionID: 9999}); err != ErrQuestionNotFound {
		t.Fatalf("StartConsultation(missing question) error = %v, want ErrQuestionNotFound", err)
	}

	other, err := formUsecase.CreateForm(ctx, nil, &dto.CreateFormRequest{Name: "Other"})
	if err != nil {
		t.Fatalf("CreateForm() error = %v", err)
	}
	if _, err := uc.StartConsultation(ctx, nil, &dto.StartConsultationRequest{FormID: other.ID, PrimaryQuestionID: question.ID}); err != ErrQuestionNotInForm {
		t.Fatalf("StartConsultation(foreign question) error = %v, want ErrQuestionNotInForm", err)
	}
}

func TestSubmitAnswerAndFetch(t *testing.T) {
	uc, formUsecase, _ := newTestConsultationUsecase(t)
	form, question, followup := seedForm(t, formUsecase)
	ctx := context.Background()

	consultation, err := uc.StartConsultation(ctx, nil, &dto.StartConsultationRequest{
		FormID:            form.ID,
		PrimaryQuestionID: question.ID,
	})
	if err != nil {
		t.Fatalf("StartConsultation() error = %v", err)
	}

	answer, err := uc.SubmitAnswer(ctx, nil, consultation.ID, &dto.SubmitAnswerRequest{
		QuestionID: question.ID,
		AnswerText: strPtr("Persistent headache"),
	})
	if err != nil {
		t.Fatalf("SubmitAnswer() error = %v", err)
	}
	if answer.ConsultationID != consultation.ID {
		t.Errorf("answer consultation_id = %d, want %d", answer.ConsultationID, consultation.ID)
	}

	if _, err := uc.SubmitFollowupAnswer(ctx, nil, consultation.ID, &dto.SubmitFollowupAnswerRequest{
		QuestionID: followup.ID,
		TextAnswer: strPtr("Two weeks ago"),
		FilePath:   strPtr("uploads/photo.jpg"),
	}); err != nil {
		t.Fatalf("SubmitFollowupAnswer() error = %v", err)
	}

	got, err := uc.GetConsultation(ctx, consultation.ID)
	if err != nil {
		t.Fatalf("GetConsultation() error = %v", err)
	}
	if len(got.Answers) != 1 {
		t.Fatalf("answers = %d, want 1", len(got.Answers))
	}
	if got.Answers[0].AnswerText == nil || *got.Answers[0].AnswerText != "Persistent headache" {
		t.Errorf("answer text = %v, want Persistent headache", got.Answers[0].AnswerText)
	}
	if len(got.FollowupAnswers) != 1 {
		t.Fatalf("followup answers = %d, want 1", len(got.FollowupAnswers))
	}
	if got.FollowupAnswers[0].FilePath == nil || *got.FollowupAnswers[0].FilePath != "uploads/photo.jpg" {
		t.Errorf("followup file path = %v, want uploads/photo.jpg", got.FollowupAnswers[0].FilePath)
	}
}

func TestSubmitAnswerQuestionFromOtherForm(t *testing.T) {
	uc, formUsecase, _ := newTestConsultationUsecase(t)
	form, question, _ := seedForm(t, formUsecase)
	ctx := context.Background()

	other, err := formUsecase.CreateForm(ctx, nil, &dto.CreateFormRequest{Name: "Other"})
	if err != nil {
		t.Fatalf("CreateForm() error = %v", err)
	}
	foreignQuestion, err := formUsecase.AddQuestion(ctx, nil, other.ID, &dto.AddQuestionRequest{Prompt: "Unrelated?"})
	if err != nil {
		t.Fatalf("AddQuestion() error = %v", err)
	}

	consultation, err := uc.StartConsultation(ctx, nil, &dto.StartConsultationRequest{
		FormID:            form.ID,
		PrimaryQuestionID: question.ID,
	})
	if err != nil {
		t.Fatalf("StartConsultation() error = %v", err)
	}

	if _, err := uc.SubmitAnswer(ctx, nil, consultation.ID, &dto.SubmitAnswerRequest{
		QuestionID: foreignQuestion.ID,
		AnswerText: strPtr("no"),
	}); err != ErrQuestionNotInForm {
		t.Fatalf("SubmitAnswer(foreign question) error = %v, want ErrQuestionNotInForm", err)
	}
}

func TestSubmitConsultationClosesDraft(t *testing.T) {
	uc, formUsecase, _ := newTestConsultationUsecase(t)
	form, question, _ := seedForm(t, formUsecase)
	ctx := context.Background()

	consultation, err := uc.StartConsultation(ctx, nil, &dto.StartConsultationRequest{
		FormID:            form.ID,
		PrimaryQuestionID: question.ID,
	})
	if err != nil {
		t.Fatalf("StartConsultation() error = %v", err)
	}

	submitted, err := uc.SubmitConsultation(ctx, nil, consultation.ID)
	if err != nil {
		t.Fatalf("SubmitConsultation() error = %v", err)
	}
	if submitted.Status != string(entity.ConsultationStatusSubmitted) {
		t.Errorf("Status = %q, want %q", submitted.Status, entity.ConsultationStatusSubmitted)
	}

	if _, err := uc.SubmitAnswer(ctx, nil, consultation.ID, &dto.SubmitAnswerRequest{
		QuestionID: question.ID,
		AnswerText: strPtr("too late"),
	}); err != ErrConsultationClosed {
		t.Fatalf("SubmitAnswer(closed) error = %v, want ErrConsultationClosed", err)
	}
	if _, err := uc.SubmitConsultation(ctx, nil, consultation.ID); err != ErrConsultationClosed {
		t.Fatalf("SubmitConsultation(closed) error = %v, want ErrConsultationClosed", err)
	}
}

func TestConsultationOwnership(t *testing.T) {
	uc, formUsecase, _ := newTestConsultationUsecase(t)
	form, question, _ := seedForm(t, formUsecase)
	ctx := context.Background()

	owner := uintPtr(1)
	consultation, err := uc.StartConsultation(ctx, owner, &dto.StartConsultationRequest{
		FormID:            form.ID,
		PrimaryQuestionID: question.ID,
	})
	if err != nil {
		t.Fatalf("StartConsultation() error = %v", err)
	}

	req := &dto.SubmitAnswerRequest{QuestionID: question.ID, AnswerText: strPtr("mine")}

	if _, err := uc.SubmitAnswer(ctx, uintPtr(2), consultation.ID, req); err != ErrConsultationNotOwned {
		t.Fatalf("SubmitAnswer(other user) error = %v, want ErrConsultationNotOwned", err)
	}
	if _, err := uc.SubmitAnswer(ctx, nil, consultation.ID, req); err != ErrConsultationNotOwned {
		t.Fatalf("SubmitAnswer(anonymous) error = %v, want ErrConsultationNotOwned", err)
	}
	if _, err := uc.SubmitAnswer(ctx, owner, consultation.ID, req); err != nil {
		t.Fatalf("SubmitAnswer(owner) error = %v", err)
	}

	mine, err := uc.GetMyConsultations(ctx, *owner)
	if err != nil {
		t.Fatalf("GetMyConsultations() error = %v", err)
	}
	if len(mine) != 1 || mine[0].ID != consultation.ID {
		t.Fatalf("GetMyConsultations() = %+v, want the one owned consultation", mine)
	}

	theirs, err := uc.GetMyConsultations(ctx, 2)
	if err != nil {
		t.Fatalf("GetMyConsultations() error = %v", err)
	}
	if len(theirs) != 0 {
		t.Errorf("GetMyConsultations(other user) = %d results, want 0", len(theirs))
	}
}
