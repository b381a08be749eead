package entity

// ConsultQuestion represents a primary question within a form
type ConsultQuestion struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Prompt string `gorm:"type:varchar(255);not null" json:"prompt"`
	FormID uint   `gorm:"not null;index" json:"form_id"`

	// Relationships
	Form      *ConsultForm       `gorm:"foreignKey:FormID" json:"form,omitempty"`
	Followups []FollowupQuestion `gorm:"foreignKey:ParentQuestionID" json:"followups,omitempty"`
}

func (ConsultQuestion) TableName() string {
	return "consult_questions"
}
