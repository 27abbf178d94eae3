package models

type Client struct {
	ID       uint64  `gorm:"primarykey" json:"id"`
	FullName string  `gorm:"type:varchar(255);not null" json:"full_name"`
	Email    *string `gorm:"type:varchar(255)" json:"email"`
	Phone    *string `gorm:"type:varchar(50)" json:"phone"`

	// Relations
	Cases []Case `gorm:"foreignKey:ClientID" json:"-"`
}
