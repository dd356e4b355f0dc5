package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvitationStatus represents the state of a group invitation
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationRejected InvitationStatus = "rejected"
)

// GroupInvitation represents a pending offer for a user to join a group.
// The composite unique index prevents a second pending invitation for the
// same (receiver, group) pair.
type GroupInvitation struct {
	ID         string           `gorm:"primarykey;size:36" json:"id"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
	SenderID   string           `gorm:"size:36;not null;index" json:"sender_id"`
	ReceiverID string           `gorm:"size:36;not null;uniqueIndex:idx_receiver_group_status" json:"receiver_id"`
	GroupID    string           `gorm:"size:36;not null;uniqueIndex:idx_receiver_group_status" json:"group_id"`
	Status     InvitationStatus `gorm:"type:varchar(20);default:'pending';uniqueIndex:idx_receiver_group_status" json:"status"`

	// Relationships
	Sender   User  `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Receiver User  `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
	Group    Group `gorm:"foreignKey:GroupID" json:"group,omitempty"`
}

// BeforeCreate assigns a UUID primary key
func (i *GroupInvitation) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
