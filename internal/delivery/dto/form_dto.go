package dto

// Request DTOs

type CreateFormRequest struct {
	Name string `json:"name" validate:"required,max=80"`
}

type AddQuestionRequest struct {
	Prompt string `json:"prompt" validate:"required,max=255"`
}

type AddFollowupRequest struct {
	Prompt string `json:"prompt" validate:"required,max=255"`
}

// Response DTOs
//
// QuestionResponse and FollowupResponse are the serialization contract used
// by presentation layers to render the questionnaire tree.

type FollowupResponse struct {
	ID               uint   `json:"id"`
	Prompt           string `json:"prompt"`
	ParentQuestionID uint   `json:"parent_question_id"`
}

type QuestionResponse struct {
	ID        uint               `json:"id"`
	Prompt    string             `json:"prompt"`
	FormID    uint               `json:"form_id"`
	Followups []FollowupResponse `json:"followups"`
}

type FormResponse struct {
	ID        uint               `json:"id"`
	Name      string             `json:"name"`
	Questions []QuestionResponse `json:"questions,omitempty"`
}

type FormListResponse struct {
	Forms []FormResponse `json:"forms"`
}
