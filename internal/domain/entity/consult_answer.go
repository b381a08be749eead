package entity

// ConsultAnswer represents an answer to a primary question
type ConsultAnswer struct {
	ID             uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	ConsultationID uint    `gorm:"not null;index" json:"consultation_id"`
	UserID         *uint   `gorm:"index" json:"user_id,omitempty"`
	QuestionID     uint    `gorm:"not null;index" json:"question_id"`
	AnswerText     *string `gorm:"type:text" json:"answer_text,omitempty"`

	// Relationships
	Consultation *Consultation    `gorm:"foreignKey:ConsultationID" json:"consultation,omitempty"`
	Question     *ConsultQuestion `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
}

func (ConsultAnswer) TableName() string {
	return "consult_answers"
}
