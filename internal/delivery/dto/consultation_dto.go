package dto

// Request DTOs

type StartConsultationRequest struct {
	FormID            uint `json:"form_id" validate:"required"`
	PrimaryQuestionID uint `json:"primary_question_id" validate:"required"`
}

type SubmitAnswerRequest struct {
	QuestionID uint    `json:"question_id" validate:"required"`
	AnswerText *string `json:"answer_text"`
}

type SubmitFollowupAnswerRequest struct {
	QuestionID uint    `json:"question_id" validate:"required"`
	TextAnswer *string `json:"text_answer"`
	FilePath   *string `json:"file_path" validate:"omitempty,max=500"`
}

// Response DTOs

type AnswerResponse struct {
	ID             uint    `json:"id"`
	ConsultationID uint    `json:"consultation_id"`
	QuestionID     uint    `json:"question_id"`
	AnswerText     *string `json:"answer_text,omitempty"`
}

type FollowupAnswerResponse struct {
	ID             uint    `json:"id"`
	ConsultationID uint    `json:"consultation_id"`
	QuestionID     uint    `json:"question_id"`
	TextAnswer     *string `json:"text_answer,omitempty"`
	FilePath       *string `json:"file_path,omitempty"`
}

type ConsultationResponse struct {
	ID                uint                     `json:"id"`
	UserID            *uint                    `json:"user_id,omitempty"`
	FormID            uint                     `json:"form_id"`
	PrimaryQuestionID uint                     `json:"primary_question_id"`
	Status            string                   `json:"status"`
	Answers           []AnswerResponse         `json:"answers,omitempty"`
	FollowupAnswers   []FollowupAnswerResponse `json:"followup_answers,omitempty"`
}
