package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FixedExpense represents a recurring, due-dated personal expense record
// distinct from ad hoc transactions
type FixedExpense struct {
	ID        string    `gorm:"primarykey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    string    `gorm:"size:36;not null;index" json:"user_id"`
	Title     string    `gorm:"not null" json:"title"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Category  string    `gorm:"not null" json:"category"`
	DueDate   time.Time `gorm:"not null" json:"due_date"`
	Notes     string    `json:"notes,omitempty"`
}

// BeforeCreate assigns a UUID primary key
func (f *FixedExpense) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
