package domain

import "time"

// User is a staff account. The primary login path is the shared hotel
// password, but registered accounts live in the same transactional store as
// the rest of the domain rather than a process-global map.
type User struct {
	ID           int64     `json:"id" gorm:"column:id;primaryKey"`
	Email        string    `json:"email" gorm:"column:email;uniqueIndex;size:200"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;size:100"`
	Role         string    `json:"role" gorm:"column:role;size:30;default:staff"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (User) TableName() string { return "users" }
