package models

type DeadlineStatus string

const (
	DeadlineStatusPending DeadlineStatus = "PENDIENTE"
	DeadlineStatusMet     DeadlineStatus = "CUMPLIDO"
	DeadlineStatusMissed  DeadlineStatus = "VENCIDO"
)

// IsValid reports whether s is one of the allowed deadline statuses.
func (s DeadlineStatus) IsValid() bool {
	switch s {
	case DeadlineStatusPending, DeadlineStatusMet, DeadlineStatusMissed:
		return true
	}
	return false
}

// Deadline is a dated obligation attached to a case, independent of tasks.
// RemindDaysBefore is stored for clients to act on; nothing in the server
// evaluates it.
type Deadline struct {
	ID               uint64         `gorm:"primarykey" json:"id"`
	CaseID           uint64         `gorm:"not null;index" json:"case_id"`
	Title            string         `gorm:"type:varchar(255);not null" json:"title"`
	DueDate          string         `gorm:"type:varchar(10);not null;index" json:"due_date"`
	Kind             string         `gorm:"type:varchar(100);not null" json:"kind"`
	Notes            *string        `gorm:"type:text" json:"notes"`
	RemindDaysBefore int            `gorm:"not null;default:3" json:"remind_days_before"`
	Status           DeadlineStatus `gorm:"type:varchar(20);not null;default:'PENDIENTE'" json:"status"`

	// Relations
	Case Case `gorm:"foreignKey:CaseID" json:"-"`
}
