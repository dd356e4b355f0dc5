package transactions

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tallyhq/tally/pkg/tally/auth"
	"github.com/tallyhq/tally/pkg/tally/models"
)

// csvHeader is the column layout for transaction import and export
var csvHeader = []string{"title", "amount", "type", "category", "date", "notes"}

// ImportResult represents the result of an import operation
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// Export writes the caller's transactions as CSV
// @Summary Export transactions
// @Description Download all of the caller's transactions as CSV
// @Tags transactions
// @Produce text/csv
// @Success 200 {string} string "CSV data"
// @Security BearerAuth
// @Router /transactions/export [get]
func (h *Handler) Export(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	var txns []models.Transaction
	if err := h.db.Where("user_id = ?", userID).Order("date DESC").Find(&txns).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="transactions.csv"`)

	w := csv.NewWriter(c.Writer)
	_ = w.Write(csvHeader)
	for _, t := range txns {
		_ = w.Write([]string{
			t.Title,
			strconv.FormatFloat(t.Amount, 'f', 2, 64),
			string(t.Type),
			t.Category,
			t.Date.Format(time.RFC3339),
			t.Notes,
		})
	}
	w.Flush()
}

// Import creates transactions for the caller from an uploaded CSV body.
// Rows that fail to parse are skipped and reported; valid rows are still
// imported.
// @Summary Import transactions
// @Description Create transactions from CSV rows (title, amount, type, category, date, notes)
// @Tags transactions
// @Accept text/csv
// @Produce json
// @Success 200 {object} ImportResult
// @Failure 400 {object} map[string]string "Malformed CSV"
// @Security BearerAuth
// @Router /transactions/import [post]
func (h *Handler) Import(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	reader := csv.NewReader(c.Request.Body)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed CSV: " + err.Error()})
		return
	}
	if len(records) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Empty CSV"})
		return
	}

	// A header row is optional
	rows := records
	if len(records[0]) > 0 && records[0][0] == csvHeader[0] {
		rows = records[1:]
	}

	result := ImportResult{}
	for i, row := range rows {
		txn, err := parseCSVRow(row)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		txn.UserID = userID
		if err := h.db.Create(&txn).Error; err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: failed to save", i+1))
			continue
		}
		result.Imported++
	}

	c.JSON(http.StatusOK, result)
}

func parseCSVRow(row []string) (models.Transaction, error) {
	if len(row) < 5 {
		return models.Transaction{}, fmt.Errorf("expected at least 5 columns, got %d", len(row))
	}

	amount, err := strconv.ParseFloat(row[1], 64)
	if err != nil || amount < 0 {
		return models.Transaction{}, fmt.Errorf("invalid amount %q", row[1])
	}

	txnType := models.TransactionType(row[2])
	if txnType != models.TypeIncome && txnType != models.TypeExpense {
		return models.Transaction{}, fmt.Errorf("invalid type %q", row[2])
	}

	date, err := parseDate(row[4])
	if err != nil {
		return models.Transaction{}, fmt.Errorf("invalid date %q", row[4])
	}

	txn := models.Transaction{
		Title:    row[0],
		Amount:   amount,
		Type:     txnType,
		Category: row[3],
		Date:     date,
	}
	if len(row) > 5 {
		txn.Notes = row[5]
	}
	return txn, nil
}
