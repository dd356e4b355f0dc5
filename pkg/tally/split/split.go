// Package split holds the pure computation behind group expense sharing:
// deriving equal splits, validating caller-supplied splits, and aggregating
// net balances per member.
package split

import (
	"fmt"
	"math"

	"github.com/tallyhq/tally/pkg/tally/models"
)

// Tolerance absorbs floating-point noise when comparing money sums.
const Tolerance = 0.01

// Equal derives the split details for an equal split: every participant
// owes amount/n at 100/n percent.
func Equal(amount float64, participantIDs []string) ([]models.SplitDetail, error) {
	n := len(participantIDs)
	if n == 0 {
		return nil, fmt.Errorf("equal split requires at least one participant")
	}

	share := amount / float64(n)
	percentage := 100 / float64(n)

	details := make([]models.SplitDetail, n)
	for i, userID := range participantIDs {
		details[i] = models.SplitDetail{
			UserID:     userID,
			Amount:     share,
			Percentage: percentage,
		}
	}
	return details, nil
}

// ValidateCustom checks a caller-supplied custom split: amounts must be
// non-negative, users must not repeat, and the amounts must sum to the
// transaction amount within Tolerance.
func ValidateCustom(amount float64, details []models.SplitDetail) error {
	if len(details) == 0 {
		return fmt.Errorf("custom split requires split details")
	}

	seen := make(map[string]bool, len(details))
	var sum float64
	for _, d := range details {
		if d.Amount < 0 {
			return fmt.Errorf("split amount for user %s is negative", d.UserID)
		}
		if seen[d.UserID] {
			return fmt.Errorf("duplicate split entry for user %s", d.UserID)
		}
		seen[d.UserID] = true
		sum += d.Amount
	}

	if math.Abs(sum-amount) > Tolerance {
		return fmt.Errorf("split amounts sum to %.2f, expected %.2f", sum, amount)
	}
	return nil
}

// ValidatePercentage checks a caller-supplied percentage split: the
// percentages must sum to 100 and each entry's amount must match its
// percentage of the transaction amount, both within Tolerance.
func ValidatePercentage(amount float64, details []models.SplitDetail) error {
	if len(details) == 0 {
		return fmt.Errorf("percentage split requires split details")
	}

	seen := make(map[string]bool, len(details))
	var pctSum float64
	for _, d := range details {
		if d.Percentage < 0 || d.Percentage > 100 {
			return fmt.Errorf("percentage for user %s is out of range", d.UserID)
		}
		if seen[d.UserID] {
			return fmt.Errorf("duplicate split entry for user %s", d.UserID)
		}
		seen[d.UserID] = true
		pctSum += d.Percentage

		expected := amount * d.Percentage / 100
		if math.Abs(d.Amount-expected) > Tolerance {
			return fmt.Errorf("amount for user %s does not match its percentage", d.UserID)
		}
	}

	if math.Abs(pctSum-100) > Tolerance {
		return fmt.Errorf("percentages sum to %.2f, expected 100", pctSum)
	}
	return nil
}
