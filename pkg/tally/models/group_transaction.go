package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SplitType represents how a group transaction is divided among participants
type SplitType string

const (
	SplitEqual      SplitType = "equal"
	SplitPercentage SplitType = "percentage"
	SplitCustom     SplitType = "custom"
)

// GroupTransaction represents a shared expense recorded against a group.
// PaidBy must be a group member; participants default to the full member
// set. Only the creating user may delete it.
type GroupTransaction struct {
	ID          string    `gorm:"primarykey;size:36" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	GroupID     string    `gorm:"size:36;not null;index:idx_group_date" json:"group_id"`
	Title       string    `gorm:"not null" json:"title"`
	Amount      float64   `gorm:"not null" json:"amount"`
	PaidByID    string    `gorm:"size:36;not null;index" json:"paid_by_id"`
	SplitType   SplitType `gorm:"type:varchar(20);default:'equal';not null" json:"split_type"`
	Date        time.Time `gorm:"not null;index:idx_group_date" json:"date"`
	Notes       string    `json:"notes,omitempty"`
	Category    string    `json:"category,omitempty"`
	CreatedByID string    `gorm:"size:36;not null" json:"created_by_id"`

	// Relationships
	PaidBy       User          `gorm:"foreignKey:PaidByID" json:"paid_by,omitempty"`
	Participants []User        `gorm:"many2many:group_transaction_participants" json:"participants,omitempty"`
	SplitDetails []SplitDetail `gorm:"foreignKey:TransactionID" json:"split_details,omitempty"`
	CreatedBy    User          `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
}

// BeforeCreate assigns a UUID primary key
func (t *GroupTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// SplitDetail represents one participant's share of a group transaction
type SplitDetail struct {
	ID            uint    `gorm:"primarykey" json:"-"`
	TransactionID string  `gorm:"size:36;not null;index" json:"-"`
	UserID        string  `gorm:"size:36;not null" json:"user_id"`
	Amount        float64 `gorm:"not null" json:"amount"`
	Percentage    float64 `json:"percentage,omitempty"`
}
