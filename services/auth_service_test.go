package services

import "testing"

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, "test-secret")

	token, err := svc.Register(&RegisterRequest{
		Email:    "user@example.com",
		Password: "supersecret1",
		Timezone: "Europe/Berlin",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if token == "" {
		t.Fatal("Register returned empty token")
	}

	userID, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	user, err := svc.GetUserByID(userID)
	if err != nil {
		t.Fatalf("GetUserByID returned error: %v", err)
	}
	if user.Email != "user@example.com" {
		t.Fatalf("user email = %q", user.Email)
	}
	if user.OnboardingCompleted {
		t.Fatal("new user marked as onboarded")
	}

	if _, err := svc.Register(&RegisterRequest{Email: "user@example.com", Password: "supersecret1"}); err == nil {
		t.Fatal("duplicate registration succeeded")
	}

	loginToken, err := svc.Login("user@example.com", "supersecret1")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	loginUserID, err := svc.ValidateToken(loginToken)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if loginUserID != userID {
		t.Fatalf("login token resolves to user %d, want %d", loginUserID, userID)
	}

	if _, err := svc.Login("user@example.com", "wrongpassword"); err == nil {
		t.Fatal("login with wrong password succeeded")
	}
	if _, err := svc.Login("nobody@example.com", "supersecret1"); err == nil {
		t.Fatal("login for unknown email succeeded")
	}
}

func TestValidateTokenRejectsForeignSignature(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, "test-secret")
	other := NewAuthService(db, "other-secret")

	token, err := svc.GenerateToken(42)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	if _, err := other.ValidateToken(token); err == nil {
		t.Fatal("token signed with a different secret validated")
	}
	if _, err := svc.ValidateToken("not-a-token"); err == nil {
		t.Fatal("garbage token validated")
	}
}
