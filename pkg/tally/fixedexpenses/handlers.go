package fixedexpenses

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tallyhq/tally/pkg/tally/auth"
	"github.com/tallyhq/tally/pkg/tally/models"
	"gorm.io/gorm"
)

// Handler handles fixed expense requests
type Handler struct {
	db *gorm.DB
}

// NewHandler creates a new fixed expenses handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// CreateFixedExpenseRequest represents the request to create a fixed expense.
// Amount is a pointer so that a zero amount still passes the required check.
type CreateFixedExpenseRequest struct {
	Title    string   `json:"title" binding:"required"`
	Amount   *float64 `json:"amount" binding:"required,gte=0"`
	Category string   `json:"category" binding:"required"`
	DueDate  string   `json:"dueDate" binding:"required"`
	Notes    string   `json:"notes"`
}

// UpdateFixedExpenseRequest represents the request to update a fixed expense
type UpdateFixedExpenseRequest struct {
	Title    string   `json:"title"`
	Amount   *float64 `json:"amount" binding:"omitempty,gte=0"`
	Category string   `json:"category"`
	DueDate  string   `json:"dueDate"`
	Notes    *string  `json:"notes"`
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// List returns the caller's fixed expenses
// @Summary List fixed expenses
// @Description Get the caller's recurring fixed expenses, soonest due first
// @Tags fixed-expenses
// @Produce json
// @Success 200 {array} models.FixedExpense
// @Security BearerAuth
// @Router /fixed-expenses [get]
func (h *Handler) List(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	var expenses []models.FixedExpense
	if err := h.db.Where("user_id = ?", userID).
		Order("due_date ASC").Order("created_at DESC").
		Find(&expenses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch fixed expenses"})
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// Create records a new fixed expense for the caller
// @Summary Create a fixed expense
// @Description Record a new recurring fixed expense
// @Tags fixed-expenses
// @Accept json
// @Produce json
// @Param request body CreateFixedExpenseRequest true "Fixed expense details"
// @Success 201 {object} models.FixedExpense
// @Failure 400 {object} map[string]string "Validation error"
// @Security BearerAuth
// @Router /fixed-expenses [post]
func (h *Handler) Create(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	var req CreateFixedExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dueDate"})
		return
	}

	expense := models.FixedExpense{
		UserID:   userID,
		Title:    req.Title,
		Amount:   *req.Amount,
		Category: req.Category,
		DueDate:  dueDate,
		Notes:    req.Notes,
	}
	if err := h.db.Create(&expense).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create fixed expense"})
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// Update updates one of the caller's fixed expenses
// @Summary Update a fixed expense
// @Description Update fields of one of the caller's fixed expenses
// @Tags fixed-expenses
// @Accept json
// @Produce json
// @Param id path string true "Fixed expense ID"
// @Param request body UpdateFixedExpenseRequest true "Updated fields"
// @Success 200 {object} models.FixedExpense
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Fixed expense not found"
// @Security BearerAuth
// @Router /fixed-expenses/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	var expense models.FixedExpense
	if err := h.db.Where("id = ? AND user_id = ?", c.Param("id"), userID).First(&expense).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Fixed expense not found"})
		return
	}

	var req UpdateFixedExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Title != "" {
		expense.Title = req.Title
	}
	if req.Amount != nil {
		expense.Amount = *req.Amount
	}
	if req.Category != "" {
		expense.Category = req.Category
	}
	if req.DueDate != "" {
		dueDate, err := parseDate(req.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dueDate"})
			return
		}
		expense.DueDate = dueDate
	}
	if req.Notes != nil {
		expense.Notes = *req.Notes
	}

	if err := h.db.Save(&expense).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update fixed expense"})
		return
	}

	c.JSON(http.StatusOK, expense)
}

// Delete removes one of the caller's fixed expenses
// @Summary Delete a fixed expense
// @Description Delete one of the caller's fixed expenses
// @Tags fixed-expenses
// @Produce json
// @Param id path string true "Fixed expense ID"
// @Success 200 {object} map[string]string "Fixed expense deleted"
// @Failure 404 {object} map[string]string "Fixed expense not found"
// @Security BearerAuth
// @Router /fixed-expenses/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	result := h.db.Where("id = ? AND user_id = ?", c.Param("id"), userID).Delete(&models.FixedExpense{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete fixed expense"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Fixed expense not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Fixed expense deleted"})
}

// RegisterRoutes registers fixed expense routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/fixed-expenses", h.List)
	rg.POST("/fixed-expenses", h.Create)
	rg.PUT("/fixed-expenses/:id", h.Update)
	rg.DELETE("/fixed-expenses/:id", h.Delete)
}
