package domain

import "time"

// Review is a storefront testimonial. Submissions start unapproved and stay
// invisible to the public listing until an admin approves them.
type Review struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(120);not null" json:"name" validate:"required"`
	Email       string    `gorm:"type:varchar(160);not null" json:"email" validate:"required,email"`
	Destination string    `gorm:"type:varchar(160);not null;index" json:"destination" validate:"required"`
	ReviewText  string    `gorm:"type:text;not null" json:"review_text" validate:"required"`
	Rating      int       `gorm:"not null" json:"rating" validate:"required,gte=1,lte=5"`
	Approved    bool      `gorm:"default:false;index" json:"approved"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Review) TableName() string { return "reviews" }
