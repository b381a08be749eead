package entity

// ConsultationStatus represents the status of a consultation
type ConsultationStatus string

const (
	ConsultationStatusDraft     ConsultationStatus = "draft"
	ConsultationStatusSubmitted ConsultationStatus = "submitted"
	ConsultationStatusCompleted ConsultationStatus = "completed"
	ConsultationStatusCancelled ConsultationStatus = "cancelled"
)

// Consultation represents one user's (or anonymous) session answering a form
type Consultation struct {
	ID                uint               `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID            *uint              `gorm:"index" json:"user_id,omitempty"`
	FormID            uint               `gorm:"not null;index" json:"form_id"`
	PrimaryQuestionID uint               `gorm:"not null" json:"primary_question_id"`
	Status            ConsultationStatus `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`

	// Relationships
	User            *User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Form            *ConsultForm     `gorm:"foreignKey:FormID" json:"form,omitempty"`
	PrimaryQuestion *ConsultQuestion `gorm:"foreignKey:PrimaryQuestionID" json:"primary_question,omitempty"`
	Answers         []ConsultAnswer  `gorm:"foreignKey:ConsultationID" json:"answers,omitempty"`
	FollowupAnswers []FollowupAnswer `gorm:"foreignKey:ConsultationID" json:"followup_answers,omitempty"`
}

func (Consultation) TableName() string {
	return "consultations"
}

// IsDraft checks if the consultation is still editable
func (c *Consultation) IsDraft() bool {
	return c.Status == ConsultationStatusDraft
}

// IsAnonymous checks if the consultation has no owning user
func (c *Consultation) IsAnonymous() bool {
	return c.UserID == nil
}

// Submit changes consultation status to submitted
func (c *Consultation) Submit() {
	c.Status = ConsultationStatusSubmitted
}

// Complete changes consultation status to completed
func (c *Consultation) Complete() {
	c.Status = ConsultationStatusCompleted
}

// Cancel changes consultation status to cancelled
func (c *Consultation) Cancel() {
	c.Status = ConsultationStatusCancelled
}
