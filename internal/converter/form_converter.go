package converter

import (
	"go-consult-intake/internal/delivery/dto"
	"go-consult-intake/internal/domain/entity"
)

// FormToResponse converts a form without its question tree.
func FormToResponse(form *entity.ConsultForm) *dto.FormResponse {
	if form == nil {
		return nil
	}

	return &dto.FormResponse{
		ID:   form.ID,
		Name: form.Name,
	}
}

// FormToTreeResponse converts a form with its full question tree. Followups
// are passed per question id so the converter stays free of queries.
func FormToTreeResponse(form *entity.ConsultForm, questions []entity.ConsultQuestion, followupsByQuestion map[uint][]entity.FollowupQuestion) *dto.FormResponse {
	if form == nil {
		return nil
	}

	response := &dto.FormResponse{
		ID:        form.ID,
		Name:      form.Name,
		Questions: make([]dto.QuestionResponse, 0, len(questions)),
	}

	for i := range questions {
		question := QuestionToResponse(&questions[i], followupsByQuestion[questions[i].ID])
		response.Questions = append(response.Questions, *question)
	}

	return response
}
