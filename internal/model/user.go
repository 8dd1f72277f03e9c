package model

import "time"

// Role distinguishes administrators from base users.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleBase  Role = "base"
)

// User is referenced by trails through OwnerID; its own CRUD lives outside this service.
type User struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Username  string    `gorm:"type:varchar(255)" json:"username"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Role      Role      `gorm:"type:varchar(16);not null;default:'base'" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName sets the table name for User.
func (User) TableName() string {
	return "users"
}
