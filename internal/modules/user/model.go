package user

import (
	"time"
)

// User is the GORM model for the 'users' table. ResetCode and
// ResetCodeExpiry are always set or cleared together.
type User struct {
	UserID          uint       `gorm:"primaryKey;column:user_id;autoIncrement"`
	Username        string     `gorm:"type:varchar(50);unique;not null;column:username"`
	Email           string     `gorm:"type:varchar(100);unique;not null;column:email"`
	HashedPassword  string     `gorm:"type:varchar(255);not null;column:hashed_password"`
	FirstName       *string    `gorm:"type:varchar(100);column:first_name"`
	LastName        *string    `gorm:"type:varchar(100);column:last_name"`
	CreatedAt       time.Time  `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
	LastLogin       *time.Time `gorm:"column:last_login"`
	ResetCode       *string    `gorm:"type:varchar(6);column:reset_code"`
	ResetCodeExpiry *time.Time `gorm:"column:reset_code_expiry"`
}

func (User) TableName() string {
	return "users"
}
