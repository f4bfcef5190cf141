package domain

import "time"

type Destination struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Slug        string    `gorm:"type:varchar(120);uniqueIndex;not null" json:"slug"`
	Name        string    `gorm:"type:varchar(120);not null" json:"name" validate:"required"`
	Country     string    `gorm:"type:varchar(120);not null" json:"country" validate:"required"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"not null" json:"price" validate:"required,gt=0"`
	Rating      float64   `json:"rating"`
	Category    string    `gorm:"type:varchar(60);index" json:"category"`
	ImageURL    string    `gorm:"type:text" json:"image_url"`
	Featured    bool      `gorm:"default:false;index" json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Destination) TableName() string { return "destinations" }
