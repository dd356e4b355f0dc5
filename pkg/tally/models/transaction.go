package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionType represents the direction of a personal transaction
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Transaction represents a personal income or expense record, visible only
// to its owning user
type Transaction struct {
	ID        string          `gorm:"primarykey;size:36" json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	UserID    string          `gorm:"size:36;not null;index" json:"user_id"`
	Title     string          `gorm:"not null" json:"title"`
	Amount    float64         `gorm:"not null" json:"amount"`
	Type      TransactionType `gorm:"type:varchar(10);not null" json:"type"`
	Category  string          `gorm:"not null" json:"category"`
	Date      time.Time       `gorm:"not null;index" json:"date"`
	Notes     string          `json:"notes,omitempty"`
}

// BeforeCreate assigns a UUID primary key
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
