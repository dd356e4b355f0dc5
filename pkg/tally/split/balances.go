package split

import "github.com/tallyhq/tally/pkg/tally/models"

// MemberBalance represents one member's net position within a group.
// Positive Balance means the group owes them money; negative means they
// owe the group.
type MemberBalance struct {
	UserID  string  `json:"-"`
	Paid    float64 `json:"paid"`
	Owes    float64 `json:"owes"`
	Balance float64 `json:"balance"`
}

// ComputeBalances aggregates the full transaction history into one balance
// record per member. Every member appears, including those with no
// activity. Payers or split entries no longer in the member set (users who
// left the group) are ignored, mirroring how balances are presented per
// current member.
func ComputeBalances(memberIDs []string, txns []models.GroupTransaction) []MemberBalance {
	byUser := make(map[string]*MemberBalance, len(memberIDs))
	ordered := make([]*MemberBalance, 0, len(memberIDs))
	for _, id := range memberIDs {
		b := &MemberBalance{UserID: id}
		byUser[id] = b
		ordered = append(ordered, b)
	}

	for _, txn := range txns {
		if payer, ok := byUser[txn.PaidByID]; ok {
			payer.Paid += txn.Amount
		}
		for _, detail := range txn.SplitDetails {
			if member, ok := byUser[detail.UserID]; ok {
				member.Owes += detail.Amount
			}
		}
	}

	balances := make([]MemberBalance, len(ordered))
	for i, b := range ordered {
		b.Balance = b.Paid - b.Owes
		balances[i] = *b
	}
	return balances
}
