package analytics

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tallyhq/tally/pkg/tally/auth"
	"github.com/tallyhq/tally/pkg/tally/models"
	"gorm.io/gorm"
)

// Handler handles analytics requests
type Handler struct {
	db *gorm.DB
}

// NewHandler creates a new analytics handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// DashboardResponse represents the dashboard summary
type DashboardResponse struct {
	TotalIncome  float64              `json:"totalIncome"`
	TotalExpense float64              `json:"totalExpense"`
	Balance      float64              `json:"balance"`
	Recent       []models.Transaction `json:"recent"`
}

// CategoryTotal represents the summed amount for one category
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// MonthlyBucket represents income and expense totals for one calendar month
type MonthlyBucket struct {
	Year    int     `json:"year"`
	Month   int     `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// Dashboard returns the caller's summary totals and recent activity
// @Summary Dashboard summary
// @Description Total income, total expense, balance and the 5 most recent transactions
// @Tags analytics
// @Produce json
// @Success 200 {object} DashboardResponse
// @Security BearerAuth
// @Router /analytics/dashboard [get]
func (h *Handler) Dashboard(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	var sums struct {
		TotalIncome  float64
		TotalExpense float64
	}
	err := h.db.Model(&models.Transaction{}).
		Select(
			"COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) AS total_income, "+
				"COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) AS total_expense",
			models.TypeIncome, models.TypeExpense,
		).
		Where("user_id = ?", userID).
		Scan(&sums).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard"})
		return
	}

	recent := []models.Transaction{}
	if err := h.db.Where("user_id = ?", userID).
		Order("date DESC").Limit(5).
		Find(&recent).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recent transactions"})
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{
		TotalIncome:  sums.TotalIncome,
		TotalExpense: sums.TotalExpense,
		Balance:      sums.TotalIncome - sums.TotalExpense,
		Recent:       recent,
	})
}

// Categories returns per-category totals across both transaction types
// @Summary Category breakdown
// @Description Summed amounts per distinct category, income and expense combined
// @Tags analytics
// @Produce json
// @Success 200 {array} CategoryTotal
// @Security BearerAuth
// @Router /analytics/categories [get]
func (h *Handler) Categories(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	totals := []CategoryTotal{}
	err := h.db.Model(&models.Transaction{}).
		Select("category, SUM(amount) AS total").
		Where("user_id = ?", userID).
		Group("category").
		Scan(&totals).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute category breakdown"})
		return
	}

	c.JSON(http.StatusOK, totals)
}

// Monthly returns per-month income/expense buckets, ascending.
// Months with no transactions are omitted rather than zero-filled.
// @Summary Monthly trends
// @Description Income and expense totals grouped by calendar year and month
// @Tags analytics
// @Produce json
// @Success 200 {array} MonthlyBucket
// @Security BearerAuth
// @Router /analytics/monthly [get]
func (h *Handler) Monthly(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	buckets := []MonthlyBucket{}
	err := h.db.Model(&models.Transaction{}).
		Select(
			"CAST(strftime('%Y', date) AS INTEGER) AS year, "+
				"CAST(strftime('%m', date) AS INTEGER) AS month, "+
				"SUM(CASE WHEN type = ? THEN amount ELSE 0 END) AS income, "+
				"SUM(CASE WHEN type = ? THEN amount ELSE 0 END) AS expense",
			models.TypeIncome, models.TypeExpense,
		).
		Where("user_id = ?", userID).
		Group("year, month").
		Order("year ASC, month ASC").
		Scan(&buckets).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute monthly trends"})
		return
	}

	c.JSON(http.StatusOK, buckets)
}

// RegisterRoutes registers analytics routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/analytics/dashboard", h.Dashboard)
	rg.GET("/analytics/categories", h.Categories)
	rg.GET("/analytics/monthly", h.Monthly)
}
