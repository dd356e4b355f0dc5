package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Group represents a shared expense group. The creator is always a member
// and is the only user allowed to rename, describe, or delete the group.
// Deleting is a soft delete: IsActive flips to false and the group drops
// out of every listing, but its transactions are kept as history.
type Group struct {
	ID          string    `gorm:"primarykey;size:36" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	CreatedByID string    `gorm:"size:36;not null;index" json:"created_by_id"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`

	// Relationships
	CreatedBy User          `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	Members   []GroupMember `gorm:"foreignKey:GroupID" json:"members,omitempty"`
}

// BeforeCreate assigns a UUID primary key
func (g *Group) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

// GroupMember represents the many-to-many relationship between users and groups
type GroupMember struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	GroupID   string    `gorm:"size:36;not null;uniqueIndex:idx_group_user" json:"group_id"`
	UserID    string    `gorm:"size:36;not null;uniqueIndex:idx_group_user" json:"user_id"`

	// Relationships
	User  User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Group Group `gorm:"foreignKey:GroupID" json:"-"`
}
