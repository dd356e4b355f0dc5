package groups

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tallyhq/tally/pkg/tally/auth"
	"github.com/tallyhq/tally/pkg/tally/models"
	"github.com/tallyhq/tally/pkg/tally/split"
	"gorm.io/gorm"
)

// SplitDetailInput represents one caller-supplied split entry
type SplitDetailInput struct {
	UserID     string  `json:"userId" binding:"required"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// CreateGroupTransactionRequest represents the request to record a shared
// expense. Amount is a pointer so that a zero amount still passes the
// required check.
type CreateGroupTransactionRequest struct {
	Title        string             `json:"title" binding:"required"`
	Amount       *float64           `json:"amount" binding:"required,gte=0"`
	PaidBy       string             `json:"paidBy" binding:"required"`
	Participants []string           `json:"participants"`
	SplitType    string             `json:"splitType" binding:"required,oneof=equal percentage custom"`
	SplitDetails []SplitDetailInput `json:"splitDetails"`
	Date         string             `json:"date"`
	Notes        string             `json:"notes"`
	Category     string             `json:"category"`
}

// BalanceResponse represents one member's net position in a group
type BalanceResponse struct {
	User    models.User `json:"user"`
	Paid    float64     `json:"paid"`
	Owes    float64     `json:"owes"`
	Balance float64     `json:"balance"`
}

// memberGuard loads the group and enforces the shared access rules: 404 if
// the group doesn't exist, 403 if the caller isn't a member. On failure
// the response has already been written.
func (h *Handler) memberGuard(c *gin.Context, userID string) (models.Group, bool) {
	group, err := h.loadGroup(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return group, false
	}
	if !isMember(group, userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not a member of this group"})
		return group, false
	}
	return group, true
}

// CreateTransaction records a shared expense. For equal splits the details
// are derived here and any caller-supplied value is ignored; percentage
// and custom splits must balance against the amount or the request fails.
// @Summary Record a group transaction
// @Description Record a shared expense with equal, percentage or custom split
// @Tags group-transactions
// @Accept json
// @Produce json
// @Param id path string true "Group ID"
// @Param request body CreateGroupTransactionRequest true "Transaction details"
// @Success 201 {object} models.GroupTransaction
// @Failure 400 {object} map[string]string "Validation or split mismatch"
// @Failure 403 {object} map[string]string "Not a member"
// @Failure 404 {object} map[string]string "Group not found"
// @Security BearerAuth
// @Router /groups/{id}/transactions [post]
func (h *Handler) CreateTransaction(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	group, ok := h.memberGuard(c, userID)
	if !ok {
		return
	}

	var req CreateGroupTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !isMember(group, req.PaidBy) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payer must be a group member"})
		return
	}

	// Participants default to the full member set
	participantIDs := req.Participants
	if len(participantIDs) == 0 {
		participantIDs = memberIDs(group)
	}

	var participants []models.User
	if err := h.db.Where("id IN ?", participantIDs).Find(&participants).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve participants"})
		return
	}
	if len(participants) != len(participantIDs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown participant"})
		return
	}

	details := make([]models.SplitDetail, len(req.SplitDetails))
	for i, d := range req.SplitDetails {
		details[i] = models.SplitDetail{
			UserID:     d.UserID,
			Amount:     d.Amount,
			Percentage: d.Percentage,
		}
	}

	switch models.SplitType(req.SplitType) {
	case models.SplitEqual:
		derived, err := split.Equal(*req.Amount, participantIDs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		details = derived
	case models.SplitPercentage:
		if err := split.ValidatePercentage(*req.Amount, details); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	case models.SplitCustom:
		if err := split.ValidateCustom(*req.Amount, details); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			parsed, err = time.Parse("2006-01-02", req.Date)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
				return
			}
		}
		date = parsed
	}

	txn := models.GroupTransaction{
		GroupID:      group.ID,
		Title:        req.Title,
		Amount:       *req.Amount,
		PaidByID:     req.PaidBy,
		SplitType:    models.SplitType(req.SplitType),
		Date:         date,
		Notes:        req.Notes,
		Category:     req.Category,
		CreatedByID:  userID,
		Participants: participants,
		SplitDetails: details,
	}
	if err := h.db.Create(&txn).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
		return
	}

	var populated models.GroupTransaction
	err := h.db.Preload("PaidBy").Preload("Participants").
		Preload("SplitDetails").Preload("CreatedBy").
		First(&populated, "id = ?", txn.ID).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transaction"})
		return
	}

	c.JSON(http.StatusCreated, populated)
}

// ListTransactions returns the group's transactions, newest first
// @Summary List group transactions
// @Description Get all of a group's transactions, date descending
// @Tags group-transactions
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {array} models.GroupTransaction
// @Failure 403 {object} map[string]string "Not a member"
// @Failure 404 {object} map[string]string "Group not found"
// @Security BearerAuth
// @Router /groups/{id}/transactions [get]
func (h *Handler) ListTransactions(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	group, ok := h.memberGuard(c, userID)
	if !ok {
		return
	}

	txns := []models.GroupTransaction{}
	err := h.db.Where("group_id = ?", group.ID).
		Order("date DESC").Order("created_at DESC").
		Preload("PaidBy").Preload("Participants").
		Preload("SplitDetails").Preload("CreatedBy").
		Find(&txns).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
		return
	}

	c.JSON(http.StatusOK, txns)
}

// DeleteTransaction removes a group transaction (creator of the
// transaction only). Split details and participant links go with it.
// @Summary Delete a group transaction
// @Description Delete a group transaction (only its creator may)
// @Tags group-transactions
// @Produce json
// @Param id path string true "Group ID"
// @Param transactionId path string true "Transaction ID"
// @Success 200 {object} map[string]string "Transaction deleted"
// @Failure 403 {object} map[string]string "Not the transaction creator"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /groups/{id}/transactions/{transactionId} [delete]
func (h *Handler) DeleteTransaction(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	var txn models.GroupTransaction
	err := h.db.Where("id = ? AND group_id = ?", c.Param("transactionId"), c.Param("id")).
		First(&txn).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}

	if txn.CreatedByID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only transaction creator can delete it"})
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("transaction_id = ?", txn.ID).Delete(&models.SplitDetail{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&txn).Association("Participants").Clear(); err != nil {
			return err
		}
		return tx.Delete(&txn).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}

// Balances recomputes every member's net position from the full
// transaction history. There is no cached ledger; the result always
// reflects the committed transaction set at call time.
// @Summary Group balances
// @Description Per-member paid, owed and net balance for a group
// @Tags group-transactions
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {array} BalanceResponse
// @Failure 403 {object} map[string]string "Not a member"
// @Failure 404 {object} map[string]string "Group not found"
// @Security BearerAuth
// @Router /groups/{id}/balances [get]
func (h *Handler) Balances(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	group, ok := h.memberGuard(c, userID)
	if !ok {
		return
	}

	var txns []models.GroupTransaction
	err := h.db.Where("group_id = ?", group.ID).
		Preload("SplitDetails").
		Find(&txns).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
		return
	}

	balances := split.ComputeBalances(memberIDs(group), txns)

	usersByID := make(map[string]models.User, len(group.Members))
	for _, m := range group.Members {
		usersByID[m.UserID] = m.User
	}

	responses := make([]BalanceResponse, len(balances))
	for i, b := range balances {
		responses[i] = BalanceResponse{
			User:    usersByID[b.UserID],
			Paid:    b.Paid,
			Owes:    b.Owes,
			Balance: b.Balance,
		}
	}

	c.JSON(http.StatusOK, responses)
}
