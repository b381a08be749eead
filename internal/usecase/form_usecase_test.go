package usecase

import (
	"context"
	"testing"

	"go-consult-intake/internal/delivery/dto"
	"go-consult-intake/internal/domain/entity"
)

func TestCreateFormDuplicateName(t *testing.T) {
	uc, _ := newTestFormUsecase(t)
	ctx := context.Background()

	if _, err := uc.CreateForm(ctx, nil, &dto.CreateFormRequest{Name: "General Intake"}); err != nil {
		t.Fatalf("first CreateForm() error = %v", err)
	}

	if _, err := uc.CreateForm(ctx, nil, &dto.CreateFormRequest{Name: "General Intake"}); err != ErrFormNameAlreadyExists {
		t.Fatalf("second CreateForm() error = %v, want ErrFormNameAlreadyExists", err)
	}
}

func TestGetQuestionWithFollowups(t *testing.T) {
	uc, _ := newTestFormUsecase(t)
	ctx := context.Background()

	form, err := uc.CreateForm(ctx, nil, &dto.CreateFormRequest{Name: "Dermatology"})
	if err != nil {
		t.Fatalf("CreateForm() error = %v", err)
	}
	question, err := uc.AddQuestion(ctx, nil, form.ID, &dto.AddQuestionRequest{Prompt: "Do you have a rash?"})
	if err != nil {
		t.Fatalf("AddQuestion() error = %v", err)
	}

	first, err := uc.AddFollowup(ctx, nil, question.ID, &dto.AddFollowupRequest{Prompt: "Where is it located?"})
	if err != nil {
		t.Fatalf("AddFollowup() error = %v", err)
	}
	second, err := uc.AddFollowup(ctx, nil, question.ID, &dto.AddFollowupRequest{Prompt: "How long have you had it?"})
	if err != nil {
		t.Fatalf("AddFollowup() error = %v", err)
	}

	got, err := uc.GetQuestion(ctx, question.ID)
	if err != nil {
		t.Fatalf("GetQuestion() error = %v", err)
	}
	if got.FormID != form.ID {
		t.Errorf("GetQuestion() form_id = %d, want %d", got.FormID, form.ID)
	}
	if len(got.Followups) != 2 {
		t.Fatalf("GetQuestion() followups = %d, want 2", len(got.Followups))
	}
	for i, want := range []*dto.FollowupResponse{first, second} {
		f := got.Followups[i]
		if f.ID != want.ID || f.Prompt != want.Prompt || f.ParentQuestionID != question.ID {
			t.Errorf("followup[%d] = %+v, want %+v", i, f, *want)
		}
	}
}

func TestGetFormReturnsQuestionTree(t *testing.T) {
	uc, _ := newTestFormUsecase(t)
	ctx := context.Background()

	form, err := uc.CreateForm(ctx, nil, &dto.CreateFormRequest{Name: "Cardiology"})
	if err != nil {
		t.Fatalf("CreateForm() error = %v", err)
	}
	q1, err := uc.AddQuestion(ctx, nil, form.ID, &dto.AddQuestionRequest{Prompt: "Chest pain?"})
	if err != nil {
		t.Fatalf("AddQuestion() error = %v", err)
	}
	if _, err := uc.AddQuestion(ctx, nil, form.ID, &dto.AddQuestionRequest{Prompt: "Shortness of breath?"}); err != nil {
		t.Fatalf("AddQuestion() error = %v", err)
	}
	if _, err := uc.AddFollowup(ctx, nil, q1.ID, &dto.AddFollowupRequest{Prompt: "At rest or on exertion?"}); err != nil {
		t.Fatalf("AddFollowup() error = %v", err)
	}

	got, err := uc.GetForm(ctx, form.ID)
	if err != nil {
		t.Fatalf("GetForm() error = %v", err)
	}
	if len(got.Questions) != 2 {
		t.Fatalf("GetForm() questions = %d, want 2", len(got.Questions))
	}
	if len(got.Questions[0].Followups) != 1 {
		t.Errorf("question[0] followups = %d, want 1", len(got.Questions[0].Followups))
	}
	if len(got.Questions[1].Followups) != 0 {
		t.Errorf("question[1] followups = %d, want 0", len(got.Questions[1].Followups))
	}
}

func TestDeleteFormCascadesQuestions(t *testing.T) {
	uc, db := newTestFormUsecase(t)
	ctx := context.Background()

	form, err := uc.CreateForm(ctx, nil, &dto.CreateFormRequest{Name: "Allergy"})
	if err != nil {
		t.Fatalf("CreateForm() error = %v", err)
	}
	if _, err := uc.AddQuestion(ctx, nil, form.ID, &dto.AddQuestionRequest{Prompt: "Known allergies?"}); err != nil {
		t.Fatalf("AddQuestion() error = %v", err)
	}
	if _, err := uc.AddQuestion(ctx, nil, form.ID, &dto.AddQuestionRequest{Prompt: "Any reactions to medication?"}); err != nil {
		t.Fatalf("AddQuestion() error = %v", err)
	}

	if err := uc.DeleteForm(ctx, nil, form.ID); err != nil {
		t.Fatalf("DeleteForm() error = %v", err)
	}

	var questionCount int64
	if err := db.Model(&entity.ConsultQuestion{}).Where("form_id = ?", form.ID).Count(&questionCount).Error; err != nil {
		t.Fatalf("count questions: %v", err)
	}
	if questionCount != 0 {
		t.Errorf("question count after delete = %d, want 0", questionCount)
	}

	if _, err := uc.GetForm(ctx, form.ID); err != ErrFormNotFound {
		t.Fatalf("GetForm(deleted) error = %v, want ErrFormNotFound", err)
	}
}

func TestDeleteQuestionLeavesFollowups(t *testing.T) {
	uc, db := newTestFormUsecase(t)
	ctx := context.Background()

	form, err := uc.CreateForm(ctx, nil, &dto.CreateFormRequest{Name: "Sleep"})
	if err != nil {
		t.Fatalf("CreateForm() error = %v", err)
	}
	question, err := uc.AddQuestion(ctx, nil, form.ID, &dto.AddQuestionRequest{Prompt: "Trouble sleeping?"})
	if err != nil {
		t.Fatalf("AddQuestion() error = %v", err)
	}
	if _, err := uc.AddFollowup(ctx, nil, question.ID, &dto.AddFollowupRequest{Prompt: "How many hours per night?"}); err != nil {
		t.Fatalf("AddFollowup() error = %v", err)
	}

	if err := uc.DeleteQuestion(ctx, nil, question.ID); err != nil {
		t.Fatalf("DeleteQuestion() error = %v", err)
	}

	// No cascade is declared for followups; the rows stay behind.
	var followupCount int64
	if err := db.Model(&entity.FollowupQuestion{}).Where("parent_question_id = ?", question.ID).Count(&followupCount).Error; err != nil {
		t.Fatalf("count followups: %v", err)
	}
	if followupCount != 1 {
		t.Errorf("followup count after question delete = %d, want 1", followupCount)
	}
}

func TestAddQuestionFormNotFound(t *testing.T) {
	uc, _ := newTestFormUsecase(t)

	if _, err := uc.AddQuestion(context.Background(), nil, 9999, &dto.AddQuestionRequest{Prompt: "Anything?"}); err != ErrFormNotFound {
		t.Fatalf("AddQuestion(missing form) error = %v, want ErrFormNotFound", err)
	}
}
