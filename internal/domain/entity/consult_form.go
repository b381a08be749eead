package entity

// ConsultForm represents a named questionnaire template.
// Deleting a form deletes its questions (handled transactionally in the
// repository; answers and followups are not cascaded).
type ConsultForm struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(80);uniqueIndex;not null" json:"name"`

	// Relationships
	Questions []ConsultQuestion `gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

func (ConsultForm) TableName() string {
	return "consult_forms"
}
