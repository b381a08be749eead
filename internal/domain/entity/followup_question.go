package entity

// FollowupQuestion represents a conditional secondary question attached to a
// primary question. No cascade is declared from the parent question: deleting
// a question leaves its followups orphaned.
type FollowupQuestion struct {
	ID               uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Prompt           string `gorm:"type:varchar(255);not null" json:"prompt"`
	ParentQuestionID uint   `gorm:"not null;index" json:"parent_question_id"`

	// Relationships
	ParentQuestion *ConsultQuestion `gorm:"foreignKey:ParentQuestionID" json:"parent_question,omitempty"`
}

func (FollowupQuestion) TableName() string {
	return "followup_questions"
}
