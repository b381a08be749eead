package converter

import (
	"go-consult-intake/internal/delivery/dto"
	"go-consult-intake/internal/domain/entity"
)

// QuestionToResponse converts a question and its followups into the map shape
// consumed by presentation layers: {id, prompt, form_id, followups: [...]}.
// The followups slice is always present, empty when the question has none.
func QuestionToResponse(question *entity.ConsultQuestion, followups []entity.FollowupQuestion) *dto.QuestionResponse {
	if question == nil {
		return nil
	}

	response := &dto.QuestionResponse{
		ID:        question.ID,
		Prompt:    question.Prompt,
		FormID:    question.FormID,
		Followups: make([]dto.FollowupResponse, 0, len(followups)),
	}

	for i := range followups {
		response.Followups = append(response.Followups, *FollowupToResponse(&followups[i]))
	}

	return response
}

// FollowupToResponse converts a followup question into its map shape:
// {id, prompt, parent_question_id}.
func FollowupToResponse(followup *entity.FollowupQuestion) *dto.FollowupResponse {
	if followup == nil {
		return nil
	}

	return &dto.FollowupResponse{
		ID:               followup.ID,
		Prompt:           followup.Prompt,
		ParentQuestionID: followup.ParentQuestionID,
	}
}
