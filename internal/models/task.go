package models

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDIENTE"
	TaskStatusInProgress TaskStatus = "EN_PROCESO"
	TaskStatusCompleted  TaskStatus = "COMPLETADA"
)

// IsValid reports whether s is one of the allowed task statuses.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// Task is an actionable work item attached to a case. Priority is 1 (high),
// 2 (medium) or 3 (low). No two tasks in the same case may share title and
// due date. CompletedAt is stamped when the status moves to COMPLETADA and
// is never cleared afterwards.
type Task struct {
	ID           uint64     `gorm:"primarykey" json:"id"`
	CaseID       uint64     `gorm:"not null;uniqueIndex:uq_task_case_title_due" json:"case_id"`
	AssignedToID *uint64    `gorm:"index" json:"assigned_to_id"`
	Title        string     `gorm:"type:varchar(255);not null;uniqueIndex:uq_task_case_title_due" json:"title"`
	Description  *string    `gorm:"type:text" json:"description"`
	Priority     int        `gorm:"not null;default:2" json:"priority"`
	DueDate      string     `gorm:"type:varchar(10);not null;index;uniqueIndex:uq_task_case_title_due" json:"due_date"`
	Status       TaskStatus `gorm:"type:varchar(20);not null;default:'PENDIENTE'" json:"status"`
	CompletedAt  *string    `gorm:"type:varchar(19)" json:"completed_at"`

	// Relations
	Case       Case           `gorm:"foreignKey:CaseID" json:"-"`
	AssignedTo *TeamMember    `gorm:"foreignKey:AssignedToID" json:"-"`
	Evidences  []TaskEvidence `gorm:"foreignKey:TaskID" json:"-"`
}
