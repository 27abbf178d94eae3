package models

// TaskEvidence is a filename/URL reference attesting progress of a task.
// No binary content is ever stored. CreatedAt is stamped server-side.
type TaskEvidence struct {
	ID        uint64  `gorm:"primarykey" json:"id"`
	TaskID    uint64  `gorm:"not null;index" json:"task_id"`
	Filename  *string `gorm:"type:varchar(255)" json:"filename"`
	URL       *string `gorm:"type:varchar(1024)" json:"url"`
	Notes     *string `gorm:"type:text" json:"notes"`
	CreatedAt string  `gorm:"type:varchar(19);not null" json:"created_at"`

	// Relations
	Task Task `gorm:"foreignKey:TaskID" json:"-"`
}
