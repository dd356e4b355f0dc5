package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/tallyhq/tally/pkg/tally/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	models.AutoMigrate(db)
	return db
}

func setupTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := NewHandler(db)
	handler.RegisterRoutes(r.Group("/auth"))
	return r
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	jsonBody, _ := json.Marshal(body)
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "secret123" {
		t.Error("Hash should not equal the plaintext password")
	}
	if !CheckPassword("secret123", hash) {
		t.Error("Expected matching password to verify")
	}
	if CheckPassword("wrong", hash) {
		t.Error("Expected wrong password to fail")
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken("user-1", "a@x.com")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("Expected user ID 'user-1', got %s", claims.UserID)
	}
	if claims.Email != "a@x.com" {
		t.Errorf("Expected email 'a@x.com', got %s", claims.Email)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, err := ValidateToken("not-a-token"); err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken, got %v", err)
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	claims := &Claims{
		UserID: "user-1",
		Email:  "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, _ := token.SignedString(getJWTSecret())

	if _, err := ValidateToken(signed); err != ErrExpiredToken {
		t.Errorf("Expected ErrExpiredToken, got %v", err)
	}
}

func TestRegister(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)

	resp := postJSON(t, router, "/auth/register", RegisterRequest{
		Name: "Alice", Username: "Alice", Email: "a@x.com", Password: "secret1",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var auth AuthResponse
	json.Unmarshal(resp.Body.Bytes(), &auth)
	if auth.Token == "" {
		t.Error("Expected a token in the response")
	}
	if auth.User.Username != "alice" {
		t.Errorf("Expected username stored lowercase, got %s", auth.User.Username)
	}

	// The hash never leaves the server
	if bytes.Contains(resp.Body.Bytes(), []byte("password")) {
		t.Error("Response should not contain any password field")
	}
}

func TestRegisterConflicts(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)

	postJSON(t, router, "/auth/register", RegisterRequest{
		Name: "Bob", Username: "Bob", Email: "a@x.com", Password: "secret1",
	})

	// Same email
	resp := postJSON(t, router, "/auth/register", RegisterRequest{
		Name: "Other", Username: "other", Email: "a@x.com", Password: "secret1",
	})
	if resp.Code != http.StatusConflict {
		t.Errorf("Expected status 409 for duplicate email, got %d", resp.Code)
	}

	// Username colliding on case
	resp = postJSON(t, router, "/auth/register", RegisterRequest{
		Name: "Other", Username: "bob", Email: "b@x.com", Password: "secret1",
	})
	if resp.Code != http.StatusConflict {
		t.Errorf("Expected status 409 for case-colliding username, got %d", resp.Code)
	}
}

func TestRegisterValidation(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)

	// Password too short
	resp := postJSON(t, router, "/auth/register", RegisterRequest{
		Name: "Alice", Username: "alice", Email: "a@x.com", Password: "short",
	})
	if resp.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for short password, got %d", resp.Code)
	}
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)

	postJSON(t, router, "/auth/register", RegisterRequest{
		Name: "Alice", Username: "alice", Email: "a@x.com", Password: "secret1",
	})

	resp := postJSON(t, router, "/auth/login", LoginRequest{Email: "a@x.com", Password: "secret1"})
	if resp.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var auth AuthResponse
	json.Unmarshal(resp.Body.Bytes(), &auth)
	if auth.Token == "" {
		t.Error("Expected a token in the response")
	}

	// Wrong password
	resp = postJSON(t, router, "/auth/login", LoginRequest{Email: "a@x.com", Password: "wrong12"})
	if resp.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 for wrong password, got %d", resp.Code)
	}

	// Unknown email
	resp = postJSON(t, router, "/auth/login", LoginRequest{Email: "nobody@x.com", Password: "secret1"})
	if resp.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 for unknown email, got %d", resp.Code)
	}
}

func TestProfile(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)

	resp := postJSON(t, router, "/auth/register", RegisterRequest{
		Name: "Alice", Username: "alice", Email: "a@x.com", Password: "secret1",
	})
	var auth AuthResponse
	json.Unmarshal(resp.Body.Bytes(), &auth)

	req, _ := http.NewRequest("GET", "/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+auth.Token)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var body struct {
		User models.User `json:"user"`
	}
	json.Unmarshal(recorder.Body.Bytes(), &body)
	if body.User.Email != "a@x.com" {
		t.Errorf("Expected profile email a@x.com, got %s", body.User.Email)
	}
}

func TestProfileRequiresAuth(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)

	req, _ := http.NewRequest("GET", "/auth/profile", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 without token, got %d", recorder.Code)
	}

	req, _ = http.NewRequest("GET", "/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 with invalid token, got %d", recorder.Code)
	}
}
