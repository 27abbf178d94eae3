package models

type TeamMember struct {
	ID       uint64  `gorm:"primarykey" json:"id"`
	FullName string  `gorm:"type:varchar(255);not null" json:"full_name"`
	Role     *string `gorm:"type:varchar(100)" json:"role"`

	// Relations
	Tasks []Task `gorm:"foreignKey:AssignedToID" json:"-"`
}
