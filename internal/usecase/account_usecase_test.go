package usecase

import (
	"context"
	"testing"

	"go-consult-intake/internal/delivery/dto"
	"go-consult-intake/internal/domain/entity"
)

func TestSignupAndAuthenticate(t *testing.T) {
	uc, db, _ := newTestAccountUsecase(t)
	ctx := context.Background()

	user, err := uc.Signup(ctx, &dto.SignupRequest{
		Username:  "alice",
		Email:     "alice@example.com",
		Password:  "s3cret",
		FirstName: strPtr("Alice"),
	})
	if err != nil {
		t.Fatalf("Signup() error = %v", err)
	}
	if user.ID == 0 {
		t.Fatal("Signup() returned zero ID")
	}
	if user.Username != "alice" {
		t.Errorf("Signup() username = %q, want %q", user.Username, "alice")
	}

	got, ok, err := uc.Authenticate(ctx, "alice", "s3cret")
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if !ok {
		t.Fatal("Authenticate() ok = false, want true")
	}
	if got.PasswordHashed == "s3cret" {
		t.Error("stored password is not hashed")
	}

	var auditCount int64
	if err := db.Model(&entity.AuditLog{}).Where("action = ?", entity.AuditActionUserSignup).Count(&auditCount).Error; err != nil {
		t.Fatalf("count audit logs: %v", err)
	}
	if auditCount != 1 {
		t.Errorf("signup audit log count = %d, want 1", auditCount)
	}
}

func TestSignupDuplicateUsername(t *testing.T) {
	uc, db, _ := newTestAccountUsecase(t)
	ctx := context.Background()

	if _, err := uc.Signup(ctx, &dto.SignupRequest{Username: "bob", Email: "bob@example.com", Password: "pw"}); err != nil {
		t.Fatalf("first Signup() error = %v", err)
	}

	_, err := uc.Signup(ctx, &dto.SignupRequest{Username: "bob", Email: "other@example.com", Password: "pw"})
	if err != ErrUsernameAlreadyExists {
		t.Fatalf("second Signup() error = %v, want ErrUsernameAlreadyExists", err)
	}

	var count int64
	if err := db.Model(&entity.User{}).Count(&count).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 1 {
		t.Errorf("user count = %d, want 1", count)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	uc, _, _ := newTestAccountUsecase(t)
	ctx := context.Background()

	if _, err := uc.Signup(ctx, &dto.SignupRequest{Username: "carol", Email: "carol@example.com", Password: "pw"}); err != nil {
		t.Fatalf("first Signup() error = %v", err)
	}

	_, err := uc.Signup(ctx, &dto.SignupRequest{Username: "carol2", Email: "carol@example.com", Password: "pw"})
	if err != ErrEmailAlreadyExists {
		t.Fatalf("second Signup() error = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestAuthenticateFailures(t *testing.T) {
	uc, _, _ := newTestAccountUsecase(t)
	ctx := context.Background()

	if _, err := uc.Signup(ctx, &dto.SignupRequest{Username: "dave", Email: "dave@example.com", Password: "right"}); err != nil {
		t.Fatalf("Signup() error = %v", err)
	}

	// Unknown username and wrong password must be indistinguishable.
	user, ok, err := uc.Authenticate(ctx, "nobody", "right")
	if err != nil || ok || user != nil {
		t.Errorf("Authenticate(unknown) = (%v, %v, %v), want (nil, false, nil)", user, ok, err)
	}

	user, ok, err = uc.Authenticate(ctx, "dave", "wrong")
	if err != nil || ok || user != nil {
		t.Errorf("Authenticate(wrong password) = (%v, %v, %v), want (nil, false, nil)", user, ok, err)
	}
}

func TestLoginAndRefreshRotation(t *testing.T) {
	uc, _, _ := newTestAccountUsecase(t)
	ctx := context.Background()

	if _, err := uc.Signup(ctx, &dto.SignupRequest{Username: "erin", Email: "erin@example.com", Password: "pw"}); err != nil {
		t.Fatalf("Signup() error = %v", err)
	}

	if _, err := uc.Login(ctx, &dto.LoginRequest{Username: "erin", Password: "bad"}); err != ErrInvalidCredentials {
		t.Fatalf("Login(bad password) error = %v, want ErrInvalidCredentials", err)
	}

	tokens, err := uc.Login(ctx, &dto.LoginRequest{Username: "erin", Password: "pw"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Fatal("Login() returned empty tokens")
	}

	rotated, err := uc.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	if err != nil {
		t.Fatalf("RefreshToken() error = %v", err)
	}
	if rotated.RefreshToken == tokens.RefreshToken {
		t.Error("RefreshToken() did not rotate the refresh token")
	}

	// The old refresh token is single-use.
	if _, err := uc.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken}); err != ErrTokenRevoked {
		t.Fatalf("RefreshToken(reused) error = %v, want ErrTokenRevoked", err)
	}

	if _, err := uc.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: "garbage"}); err != ErrInvalidToken {
		t.Fatalf("RefreshToken(garbage) error = %v, want ErrInvalidToken", err)
	}

	// An access token is not accepted in place of a refresh token.
	if _, err := uc.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: rotated.AccessToken}); err != ErrInvalidToken {
		t.Fatalf("RefreshToken(access token) error = %v, want ErrInvalidToken", err)
	}
}

func TestLogoutRevokesTokens(t *testing.T) {
	uc, _, redisClient := newTestAccountUsecase(t)
	ctx := context.Background()

	if _, err := uc.Signup(ctx, &dto.SignupRequest{Username: "frank", Email: "frank@example.com", Password: "pw"}); err != nil {
		t.Fatalf("Signup() error = %v", err)
	}
	tokens, err := uc.Login(ctx, &dto.LoginRequest{Username: "frank", Password: "pw"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	jwtService := newTestJWTService()
	accessClaims, err := jwtService.ValidateToken(tokens.AccessToken)
	if err != nil {
		t.Fatalf("ValidateToken(access) error = %v", err)
	}
	refreshClaims, err := jwtService.ValidateToken(tokens.RefreshToken)
	if err != nil {
		t.Fatalf("ValidateToken(refresh) error = %v", err)
	}

	if err := uc.Logout(ctx, accessClaims.UserID, accessClaims.TokenID, refreshClaims.TokenID); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}

	keys, err := redisClient.Keys(ctx, "*").Result()
	if err != nil {
		t.Fatalf("redis keys: %v", err)
	}
	if len(keys) != 0 {
		t.Errorf("token keys after logout = %v, want none", keys)
	}

	if _, err := uc.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken}); err != ErrTokenRevoked {
		t.Fatalf("RefreshToken(after logout) error = %v, want ErrTokenRevoked", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	uc, _, _ := newTestAccountUsecase(t)
	ctx := context.Background()

	created, err := uc.Signup(ctx, &dto.SignupRequest{Username: "grace", Email: "grace@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("Signup() error = %v", err)
	}

	hasHistory := true
	updated, err := uc.UpdateProfile(ctx, created.ID, &dto.UpdateProfileRequest{
		FirstName:         strPtr("Grace"),
		LastName:          strPtr("Hopper"),
		HasMedicalHistory: &hasHistory,
	})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	if updated.FirstName == nil || *updated.FirstName != "Grace" {
		t.Errorf("UpdateProfile() first name = %v, want Grace", updated.FirstName)
	}
	if !updated.HasMedicalHistory {
		t.Error("UpdateProfile() has_medical_history = false, want true")
	}

	if _, err := uc.UpdateProfile(ctx, 9999, &dto.UpdateProfileRequest{}); err != ErrUserNotFound {
		t.Fatalf("UpdateProfile(missing user) error = %v, want ErrUserNotFound", err)
	}
}
