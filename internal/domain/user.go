package domain

import "time"

type UserRole string

const (
	RoleAdmin UserRole = "admin"
)

// User is a dashboard account. The storefront has no end-user accounts;
// every row here is an admin.
type User struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"type:varchar(160);uniqueIndex;not null" json:"email" validate:"required,email"`
	PasswordHash string    `gorm:"type:varchar(120);not null" json:"-"`
	Role         UserRole  `gorm:"type:varchar(20);default:'admin'" json:"role"`
	Name         string    `gorm:"type:varchar(120)" json:"name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
