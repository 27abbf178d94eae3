package models

type CaseStatus string

const (
	CaseStatusOpen       CaseStatus = "ABIERTO"
	CaseStatusInProgress CaseStatus = "EN_PROCESO"
	CaseStatusClosed     CaseStatus = "CERRADO"
)

// IsValid reports whether s is one of the allowed case statuses.
func (s CaseStatus) IsValid() bool {
	switch s {
	case CaseStatusOpen, CaseStatusInProgress, CaseStatusClosed:
		return true
	}
	return false
}

type Case struct {
	ID         uint64     `gorm:"primarykey" json:"id"`
	CaseNumber string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"case_number"`
	ClientID   uint64     `gorm:"not null;index" json:"client_id"`
	CaseType   string     `gorm:"type:varchar(100);not null" json:"case_type"`
	StartDate  string     `gorm:"type:varchar(10);not null" json:"start_date"`
	Details    *string    `gorm:"type:text" json:"details"`
	Status     CaseStatus `gorm:"type:varchar(20);not null;default:'ABIERTO'" json:"status"`

	// Relations
	Client    Client     `gorm:"foreignKey:ClientID" json:"-"`
	Deadlines []Deadline `gorm:"foreignKey:CaseID" json:"-"`
	Tasks     []Task     `gorm:"foreignKey:CaseID" json:"-"`
}
