package transactions

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tallyhq/tally/pkg/tally/auth"
	"github.com/tallyhq/tally/pkg/tally/models"
	"gorm.io/gorm"
)

// Handler handles personal transaction requests
type Handler struct {
	db *gorm.DB
}

// NewHandler creates a new transactions handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// CreateTransactionRequest represents the request to create a transaction.
// Amount is a pointer so that a zero amount still passes the required check.
type CreateTransactionRequest struct {
	Title    string   `json:"title" binding:"required"`
	Amount   *float64 `json:"amount" binding:"required,gte=0"`
	Type     string   `json:"type" binding:"required,oneof=income expense"`
	Category string   `json:"category" binding:"required"`
	Date     string   `json:"date" binding:"omitempty"`
	Notes    string   `json:"notes"`
}

// UpdateTransactionRequest represents the request to update a transaction
type UpdateTransactionRequest struct {
	Title    string   `json:"title"`
	Amount   *float64 `json:"amount" binding:"omitempty,gte=0"`
	Type     string   `json:"type" binding:"omitempty,oneof=income expense"`
	Category string   `json:"category"`
	Date     string   `json:"date" binding:"omitempty"`
	Notes    *string  `json:"notes"`
}

// parseDate accepts RFC 3339 timestamps or plain dates
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// List returns the caller's transactions, optionally filtered
// @Summary List transactions
// @Description Get the caller's transactions filtered by type, category and date range
// @Tags transactions
// @Produce json
// @Param type query string false "income or expense"
// @Param category query string false "Exact category match"
// @Param startDate query string false "Inclusive lower date bound (ISO-8601)"
// @Param endDate query string false "Inclusive upper date bound (ISO-8601)"
// @Success 200 {array} models.Transaction
// @Security BearerAuth
// @Router /transactions [get]
func (h *Handler) List(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	query := h.db.Where("user_id = ?", userID)

	if t := c.Query("type"); t != "" {
		query = query.Where("type = ?", t)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if start := c.Query("startDate"); start != "" {
		from, err := parseDate(start)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid startDate"})
			return
		}
		query = query.Where("date >= ?", from)
	}
	if end := c.Query("endDate"); end != "" {
		to, err := parseDate(end)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid endDate"})
			return
		}
		query = query.Where("date <= ?", to)
	}

	var txns []models.Transaction
	if err := query.Order("date DESC").Find(&txns).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
		return
	}

	c.JSON(http.StatusOK, txns)
}

// Create records a new transaction for the caller
// @Summary Create a transaction
// @Description Record a new income or expense transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body CreateTransactionRequest true "Transaction details"
// @Success 201 {object} models.Transaction
// @Failure 400 {object} map[string]string "Validation error"
// @Security BearerAuth
// @Router /transactions [post]
func (h *Handler) Create(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := parseDate(req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
			return
		}
		date = parsed
	}

	txn := models.Transaction{
		UserID:   userID,
		Title:    req.Title,
		Amount:   *req.Amount,
		Type:     models.TransactionType(req.Type),
		Category: req.Category,
		Date:     date,
		Notes:    req.Notes,
	}
	if err := h.db.Create(&txn).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
		return
	}

	c.JSON(http.StatusCreated, txn)
}

// Get returns a single transaction owned by the caller.
// Records owned by other users are reported as not found, never forbidden,
// so their existence is not leaked.
// @Summary Get a transaction
// @Description Get one of the caller's transactions by ID
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} models.Transaction
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	var txn models.Transaction
	if err := h.db.Where("id = ? AND user_id = ?", c.Param("id"), userID).First(&txn).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}

	c.JSON(http.StatusOK, txn)
}

// Update updates one of the caller's transactions
// @Summary Update a transaction
// @Description Update fields of one of the caller's transactions
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body UpdateTransactionRequest true "Updated fields"
// @Success 200 {object} models.Transaction
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	var txn models.Transaction
	if err := h.db.Where("id = ? AND user_id = ?", c.Param("id"), userID).First(&txn).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Title != "" {
		txn.Title = req.Title
	}
	if req.Amount != nil {
		txn.Amount = *req.Amount
	}
	if req.Type != "" {
		txn.Type = models.TransactionType(req.Type)
	}
	if req.Category != "" {
		txn.Category = req.Category
	}
	if req.Date != "" {
		parsed, err := parseDate(req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
			return
		}
		txn.Date = parsed
	}
	if req.Notes != nil {
		txn.Notes = *req.Notes
	}

	if err := h.db.Save(&txn).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update transaction"})
		return
	}

	c.JSON(http.StatusOK, txn)
}

// Delete removes one of the caller's transactions
// @Summary Delete a transaction
// @Description Delete one of the caller's transactions
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} map[string]string "Transaction deleted"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	result := h.db.Where("id = ? AND user_id = ?", c.Param("id"), userID).Delete(&models.Transaction{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transaction"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted"})
}

// RegisterRoutes registers transaction routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/transactions", h.List)
	rg.POST("/transactions", h.Create)
	rg.GET("/transactions/export", h.Export)
	rg.POST("/transactions/import", h.Import)
	rg.GET("/transactions/:id", h.Get)
	rg.PUT("/transactions/:id", h.Update)
	rg.DELETE("/transactions/:id", h.Delete)
}
