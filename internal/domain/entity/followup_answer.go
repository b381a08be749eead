package entity

// FollowupAnswer represents an answer to a followup question. Either the text
// or the stored file path may be set; upload handling lives outside this
// service, only the path is persisted.
type FollowupAnswer struct {
	ID             uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	ConsultationID uint    `gorm:"not null;index" json:"consultation_id"`
	QuestionID     uint    `gorm:"not null;index" json:"question_id"`
	TextAnswer     *string `gorm:"type:text" json:"text_answer,omitempty"`
	FilePath       *string `gorm:"type:varchar(500)" json:"file_path,omitempty"`

	// Relationships
	Consultation *Consultation     `gorm:"foreignKey:ConsultationID" json:"consultation,omitempty"`
	Question     *FollowupQuestion `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
}

func (FollowupAnswer) TableName() string {
	return "followup_answers"
}
