package groups

import (
	"encoding/json"
	"math"
	"net/http"
	"testing"

	"github.com/tallyhq/tally/pkg/tally/models"
)

func TestCreateTransactionEqualSplit(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	group := createTestGroup(t, db, alice, bob)

	body := CreateGroupTransactionRequest{
		Title:        "Hotel",
		Amount:       floatPtr(100),
		PaidBy:       alice.ID,
		Participants: []string{alice.ID, bob.ID},
		SplitType:    "equal",
	}
	resp := doJSON(t, router, "POST", "/groups/"+group.ID+"/transactions", alice, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var txn models.GroupTransaction
	json.Unmarshal(resp.Body.Bytes(), &txn)

	if len(txn.SplitDetails) != 2 {
		t.Fatalf("Expected 2 split details, got %d", len(txn.SplitDetails))
	}
	for _, d := range txn.SplitDetails {
		if d.Amount != 50 || d.Percentage != 50 {
			t.Errorf("Expected amount=50 percentage=50, got %+v", d)
		}
	}
	if txn.PaidBy.ID != alice.ID {
		t.Errorf("Expected payer populated, got %+v", txn.PaidBy)
	}
	if len(txn.Participants) != 2 {
		t.Errorf("Expected 2 participants, got %d", len(txn.Participants))
	}
}

func TestCreateTransactionEqualSplitOverridesCallerDetails(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	group := createTestGroup(t, db, alice, bob)

	// Caller-supplied details are ignored for equal splits
	body := CreateGroupTransactionRequest{
		Title:     "Dinner",
		Amount:    floatPtr(60),
		PaidBy:    alice.ID,
		SplitType: "equal",
		SplitDetails: []SplitDetailInput{
			{UserID: alice.ID, Amount: 59},
			{UserID: bob.ID, Amount: 1},
		},
	}
	resp := doJSON(t, router, "POST", "/groups/"+group.ID+"/transactions", alice, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var txn models.GroupTransaction
	json.Unmarshal(resp.Body.Bytes(), &txn)

	// Participants defaulted to all members, each owing 30
	if len(txn.SplitDetails) != 2 {
		t.Fatalf("Expected 2 split details, got %d", len(txn.SplitDetails))
	}
	for _, d := range txn.SplitDetails {
		if d.Amount != 30 {
			t.Errorf("Expected derived amount 30, got %f", d.Amount)
		}
	}
}

func TestCreateTransactionZeroAmount(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	group := createTestGroup(t, db, alice, bob)

	// Zero is a valid non-negative amount
	body := CreateGroupTransactionRequest{
		Title:     "Comped dinner",
		Amount:    floatPtr(0),
		PaidBy:    alice.ID,
		SplitType: "equal",
	}
	resp := doJSON(t, router, "POST", "/groups/"+group.ID+"/transactions", alice, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("Expected status 201 for zero amount, got %d: %s", resp.Code, resp.Body.String())
	}

	var txn models.GroupTransaction
	json.Unmarshal(resp.Body.Bytes(), &txn)
	for _, d := range txn.SplitDetails {
		if d.Amount != 0 {
			t.Errorf("Expected zero share, got %f", d.Amount)
		}
	}
}

func TestCreateTransactionCustomSplitValidation(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	group := createTestGroup(t, db, alice, bob)

	// Mismatched custom split is rejected
	body := CreateGroupTransactionRequest{
		Title:        "Groceries",
		Amount:       floatPtr(80),
		PaidBy:       alice.ID,
		Participants: []string{alice.ID, bob.ID},
		SplitType:    "custom",
		SplitDetails: []SplitDetailInput{
			{UserID: alice.ID, Amount: 50},
			{UserID: bob.ID, Amount: 50},
		},
	}
	resp := doJSON(t, router, "POST", "/groups/"+group.ID+"/transactions", alice, body)
	if resp.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for mismatched custom split, got %d", resp.Code)
	}

	body.SplitDetails = []SplitDetailInput{
		{UserID: alice.ID, Amount: 30},
		{UserID: bob.ID, Amount: 50},
	}
	resp = doJSON(t, router, "POST", "/groups/"+group.ID+"/transactions", alice, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestCreateTransactionGuards(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	outsider := createTestUser(t, db, "carol")
	group := createTestGroup(t, db, alice)

	body := CreateGroupTransactionRequest{
		Title: "Taxi", Amount: floatPtr(20), PaidBy: alice.ID, SplitType: "equal",
	}

	resp := doJSON(t, router, "POST", "/groups/missing/transactions", alice, body)
	if resp.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 for unknown group, got %d", resp.Code)
	}

	resp = doJSON(t, router, "POST", "/groups/"+group.ID+"/transactions", outsider, body)
	if resp.Code != http.StatusForbidden {
		t.Errorf("Expected status 403 for non-member, got %d", resp.Code)
	}

	// Payer must be a member
	body.PaidBy = bob.ID
	resp = doJSON(t, router, "POST", "/groups/"+group.ID+"/transactions", alice, body)
	if resp.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for non-member payer, got %d", resp.Code)
	}
}

func TestListTransactionsOrder(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	alice := createTestUser(t, db, "alice")
	group := createTestGroup(t, db, alice)

	first := CreateGroupTransactionRequest{
		Title: "Older", Amount: floatPtr(10), PaidBy: alice.ID, SplitType: "equal",
		Date: "2024-01-01",
	}
	second := CreateGroupTransactionRequest{
		Title: "Newer", Amount: floatPtr(20), PaidBy: alice.ID, SplitType: "equal",
		Date: "2024-06-15",
	}
	doJSON(t, router, "POST", "/groups/"+group.ID+"/transactions", alice, first)
	doJSON(t, router, "POST", "/groups/"+group.ID+"/transactions", alice, second)

	resp := doJSON(t, router, "GET", "/groups/"+group.ID+"/transactions", alice, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var txns []models.GroupTransaction
	json.Unmarshal(resp.Body.Bytes(), &txns)
	if len(txns) != 2 {
		t.Fatalf("Expected 2 transactions, got %d", len(txns))
	}
	if txns[0].Title != "Newer" || txns[1].Title != "Older" {
		t.Errorf("Expected date-descending order, got %s then %s", txns[0].Title, txns[1].Title)
	}
}

func TestDeleteTransactionCreatorOnly(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	group := createTestGroup(t, db, alice, bob)

	body := CreateGroupTransactionRequest{
		Title: "Lunch", Amount: floatPtr(30), PaidBy: alice.ID, SplitType: "equal",
	}
	resp := doJSON(t, router, "POST", "/groups/"+group.ID+"/transactions", alice, body)
	var txn models.GroupTransaction
	json.Unmarshal(resp.Body.Bytes(), &txn)

	resp = doJSON(t, router, "DELETE", "/groups/"+group.ID+"/transactions/"+txn.ID, bob, nil)
	if resp.Code != http.StatusForbidden {
		t.Errorf("Expected status 403 for non-creator delete, got %d", resp.Code)
	}

	resp = doJSON(t, router, "DELETE", "/groups/"+group.ID+"/transactions/"+txn.ID, alice, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var details int64
	db.Model(&models.SplitDetail{}).Where("transaction_id = ?", txn.ID).Count(&details)
	if details != 0 {
		t.Errorf("Expected split details removed with transaction, got %d", details)
	}

	resp = doJSON(t, router, "DELETE", "/groups/"+group.ID+"/transactions/"+txn.ID, alice, nil)
	if resp.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 for already-deleted transaction, got %d", resp.Code)
	}
}

func TestBalancesScenario(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	group := createTestGroup(t, db, alice, bob)

	body := CreateGroupTransactionRequest{
		Title:        "Hotel",
		Amount:       floatPtr(100),
		PaidBy:       alice.ID,
		Participants: []string{alice.ID, bob.ID},
		SplitType:    "equal",
	}
	resp := doJSON(t, router, "POST", "/groups/"+group.ID+"/transactions", alice, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	resp = doJSON(t, router, "GET", "/groups/"+group.ID+"/balances", bob, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var balances []BalanceResponse
	json.Unmarshal(resp.Body.Bytes(), &balances)
	if len(balances) != 2 {
		t.Fatalf("Expected 2 balances, got %d", len(balances))
	}

	byUser := map[string]BalanceResponse{}
	var sum float64
	for _, b := range balances {
		byUser[b.User.ID] = b
		sum += b.Balance
	}

	a := byUser[alice.ID]
	if a.Paid != 100 || a.Owes != 50 || a.Balance != 50 {
		t.Errorf("Alice: expected paid=100 owes=50 balance=50, got %+v", a)
	}
	b := byUser[bob.ID]
	if b.Paid != 0 || b.Owes != 50 || b.Balance != -50 {
		t.Errorf("Bob: expected paid=0 owes=50 balance=-50, got %+v", b)
	}

	if math.Abs(sum) > 0.01 {
		t.Errorf("Balances sum to %f, expected 0", sum)
	}
}

func TestBalancesNonMemberForbidden(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	alice := createTestUser(t, db, "alice")
	outsider := createTestUser(t, db, "carol")
	group := createTestGroup(t, db, alice)

	resp := doJSON(t, router, "GET", "/groups/"+group.ID+"/balances", outsider, nil)
	if resp.Code != http.StatusForbidden {
		t.Errorf("Expected status 403, got %d", resp.Code)
	}
}
