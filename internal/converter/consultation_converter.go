package converter

import (
	"go-consult-intake/internal/delivery/dto"
	"go-consult-intake/internal/domain/entity"
)

// ConsultationToResponse converts a consultation with its answers, loaded by
// the usecase via explicit child queries.
func ConsultationToResponse(consultation *entity.Consultation, answers []entity.ConsultAnswer, followupAnswers []entity.FollowupAnswer) *dto.ConsultationResponse {
	if consultation == nil {
		return nil
	}

	response := &dto.ConsultationResponse{
		ID:                consultation.ID,
		UserID:            consultation.UserID,
		FormID:            consultation.FormID,
		PrimaryQuestionID: consultation.PrimaryQuestionID,
		Status:            string(consultation.Status),
	}

	for i := range answers {
		response.Answers = append(response.Answers, *AnswerToResponse(&answers[i]))
	}
	for i := range followupAnswers {
		response.FollowupAnswers = append(response.FollowupAnswers, *FollowupAnswerToResponse(&followupAnswers[i]))
	}

	return response
}

func AnswerToResponse(answer *entity.ConsultAnswer) *dto.AnswerResponse {
	if answer == nil {
		return nil
	}

	return &dto.AnswerResponse{
		ID:             answer.ID,
		ConsultationID: answer.ConsultationID,
		QuestionID:     answer.QuestionID,
		AnswerText:     answer.AnswerText,
	}
}

func FollowupAnswerToResponse(answer *entity.FollowupAnswer) *dto.FollowupAnswerResponse {
	if answer == nil {
		return nil
	}

	return &dto.FollowupAnswerResponse{
		ID:             answer.ID,
		ConsultationID: answer.ConsultationID,
		QuestionID:     answer.QuestionID,
		TextAnswer:     answer.TextAnswer,
		FilePath:       answer.FilePath,
	}
}
