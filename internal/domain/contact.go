package domain

import "time"

type ContactMessage struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(120);not null" json:"name" validate:"required"`
	Email     string    `gorm:"type:varchar(160);not null" json:"email" validate:"required,email"`
	Message   string    `gorm:"type:text;not null" json:"message" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
}

func (ContactMessage) TableName() string { return "contact_messages" }
