package service

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"testing"
	"time"

	"controlling_heating/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

const testSigningKey = "test-signing-key"

// mockAuthRepo is a lightweight in-test mock for repository.Authorization.
type mockAuthRepo struct {
	CreateHouseholdFn func(name string) (int, error)
	CreateFn          func(username, hash string, householdID int) (int, error)
	GetByUsernameFn   func(username string) (*models.User, error)

	households  []string
	createCalls []struct {
		username    string
		hash        string
		householdID int
	}
	getCalls []string
}

func (m *mockAuthRepo) CreateHousehold(name string) (int, error) {
	m.households = append(m.households, name)
	if m.CreateHouseholdFn == nil {
		return 1, nil
	}
	return m.CreateHouseholdFn(name)
}

func (m *mockAuthRepo) Create(username, hash string, householdID int) (int, error) {
	m.createCalls = append(m.createCalls, struct {
		username    string
		hash        string
		householdID int
	}{username: username, hash: hash, householdID: householdID})
	return m.CreateFn(username, hash, householdID)
}

func (m *mockAuthRepo) GetByUsername(username string) (*models.User, error) {
	m.getCalls = append(m.getCalls, username)
	if m.GetByUsernameFn == nil {
		return nil, nil
	}
	return m.GetByUsernameFn(username)
}

func newTestAuth(repo *mockAuthRepo) *AuthService {
	return NewAuthService(repo, testSigningKey, time.Hour)
}

// --- SignUp tests ---

func TestAuthService_SignUp_SuccessHashesPasswordAndCreatesHousehold(t *testing.T) {
	mock := &mockAuthRepo{
		CreateHouseholdFn: func(name string) (int, error) { return 5, nil },
		CreateFn: func(username, hash string, householdID int) (int, error) {
			return 42, nil
		},
	}
	svc := newTestAuth(mock)

	id, err := svc.SignUp("alice", "s3cr3t", "Oak Cottage")
	if err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected id 42, got %d", id)
	}
	if len(mock.households) != 1 || mock.households[0] != "Oak Cottage" {
		t.Fatalf("unexpected households: %v", mock.households)
	}

	if len(mock.createCalls) != 1 {
		t.Fatalf("expected 1 Create call, got %d", len(mock.createCalls))
	}
	call := mock.createCalls[0]
	if call.username != "alice" || call.householdID != 5 {
		t.Errorf("unexpected Create call: %+v", call)
	}
	if call.hash == "s3cr3t" {
		t.Errorf("expected hashed password not equal to raw password")
	}
	if err := verifyPassword(call.hash, "s3cr3t"); err != nil {
		t.Errorf("stored hash does not verify with original password: %v", err)
	}
}

func TestAuthService_SignUp_DefaultHouseholdName(t *testing.T) {
	mock := &mockAuthRepo{
		CreateFn: func(username, hash string, householdID int) (int, error) { return 1, nil },
	}
	svc := newTestAuth(mock)

	if _, err := svc.SignUp("bob", "pw", "  "); err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}
	if len(mock.households) != 1 || mock.households[0] != "bob" {
		t.Fatalf("expected household named after user, got %v", mock.households)
	}
}

func TestAuthService_SignUp_EmptyPassword(t *testing.T) {
	mock := &mockAuthRepo{
		CreateFn: func(username, hash string, householdID int) (int, error) {
			t.Fatal("Create should not be called for empty password")
			return 0, nil
		},
	}
	svc := newTestAuth(mock)

	if _, err := svc.SignUp("bob", "   ", ""); err == nil {
		t.Fatalf("expected error for empty password, got nil")
	}
	if len(mock.households) != 0 {
		t.Fatalf("expected no household to be created")
	}
}

func TestAuthService_SignUp_UsernameTaken(t *testing.T) {
	mock := &mockAuthRepo{
		GetByUsernameFn: func(username string) (*models.User, error) {
			return &models.User{ID: 1, Username: username}, nil
		},
		CreateFn: func(username, hash string, householdID int) (int, error) {
			t.Fatal("Create should not be called for an existing user")
			return 0, nil
		},
	}
	svc := newTestAuth(mock)

	_, err := svc.SignUp("carl", "pass123", "")
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_SignUp_RepoError(t *testing.T) {
	mock := &mockAuthRepo{
		CreateFn: func(username, hash string, householdID int) (int, error) {
			return 0, errors.New("db down")
		},
	}
	svc := newTestAuth(mock)

	if _, err := svc.SignUp("carl", "pass123", ""); err == nil {
		t.Fatalf("expected repo error, got nil")
	}
}

// --- GenerateToken tests ---

func TestAuthService_GenerateToken_Success(t *testing.T) {
	hash, err := hashPassword("letmein")
	if err != nil {
		t.Fatalf("hashPassword failed: %v", err)
	}
	user := &models.User{ID: 7, Username: "diana", PasswordHash: hash, HouseholdID: 3}

	mock := &mockAuthRepo{
		GetByUsernameFn: func(username string) (*models.User, error) {
			if username != "diana" {
				t.Fatalf("expected username 'diana', got %q", username)
			}
			return user, nil
		},
	}
	svc := newTestAuth(mock)

	token, err := svc.GenerateToken("diana", "letmein")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	id, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if id != (Identity{UserID: 7, HouseholdID: 3}) {
		t.Fatalf("unexpected identity from token: %+v", id)
	}
	if len(mock.getCalls) != 1 {
		t.Fatalf("expected 1 GetByUsername call, got %d", len(mock.getCalls))
	}
}

func TestAuthService_GenerateToken_UserNotFound(t *testing.T) {
	svc := newTestAuth(&mockAuthRepo{})

	_, err := svc.GenerateToken("ghost", "pw")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got: %v", err)
	}
}

func TestAuthService_GenerateToken_InvalidPassword(t *testing.T) {
	correctHash, err := hashPassword("correct")
	if err != nil {
		t.Fatalf("hashPassword failed: %v", err)
	}
	mock := &mockAuthRepo{
		GetByUsernameFn: func(username string) (*models.User, error) {
			return &models.User{ID: 1, Username: "eve", PasswordHash: correctHash, HouseholdID: 1}, nil
		},
	}
	svc := newTestAuth(mock)

	_, err = svc.GenerateToken("eve", "wrong")
	if !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword, got: %v", err)
	}
}

func TestAuthService_GenerateToken_RepoError(t *testing.T) {
	mock := &mockAuthRepo{
		GetByUsernameFn: func(username string) (*models.User, error) {
			return nil, errors.New("query failed")
		},
	}
	svc := newTestAuth(mock)

	if _, err := svc.GenerateToken("john", "pw"); err == nil {
		t.Fatalf("expected repo error, got nil")
	}
}

// --- ParseToken tests ---

func signed(t *testing.T, key []byte, claims *Claims) string {
	t.Helper()
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tk.SignedString(key)
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}
	return s
}

func validClaims(userID, householdID int) *Claims {
	now := time.Now()
	return &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:      userID,
		HouseholdID: householdID,
	}
}

func TestAuthService_ParseToken_Success(t *testing.T) {
	svc := newTestAuth(&mockAuthRepo{})
	token, err := svc.issueToken(Identity{UserID: 99, HouseholdID: 4})
	if err != nil {
		t.Fatalf("issueToken failed: %v", err)
	}

	id, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken returned error: %v", err)
	}
	if id.UserID != 99 || id.HouseholdID != 4 {
		t.Fatalf("unexpected identity: %+v", id)
	}
}

func TestAuthService_ParseToken_Malformed(t *testing.T) {
	svc := newTestAuth(&mockAuthRepo{})
	if _, err := svc.ParseToken("not-a-jwt"); err == nil {
		t.Fatalf("expected error for malformed token")
	}
}

func TestAuthService_ParseToken_InvalidSignature(t *testing.T) {
	svc := newTestAuth(&mockAuthRepo{})
	badToken := signed(t, []byte("different-key"), validClaims(5, 1))

	if _, err := svc.ParseToken(badToken); err == nil {
		t.Fatalf("expected signature verification error")
	}
}

func TestAuthService_ParseToken_MissingHousehold(t *testing.T) {
	svc := newTestAuth(&mockAuthRepo{})
	token := signed(t, []byte(testSigningKey), validClaims(5, 0))

	if _, err := svc.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	svc := newTestAuth(&mockAuthRepo{})

	past := time.Now().Add(-2 * time.Hour)
	expired := signed(t, []byte(testSigningKey), &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(past),
			IssuedAt:  jwt.NewNumericDate(past.Add(-time.Minute)),
		},
		UserID:      11,
		HouseholdID: 1,
	})

	if _, err := svc.ParseToken(expired); err == nil {
		t.Fatalf("expected error for expired token")
	}
}

func TestAuthService_ParseToken_UnexpectedAlg(t *testing.T) {
	svc := newTestAuth(&mockAuthRepo{})

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("rsa.GenerateKey failed: %v", err)
	}
	tk := jwt.NewWithClaims(jwt.SigningMethodRS256, validClaims(12, 1))
	tokenStr, err := tk.SignedString(privateKey)
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}

	if _, err := svc.ParseToken(tokenStr); err == nil {
		t.Fatalf("expected error due to unexpected signing method")
	}
}
