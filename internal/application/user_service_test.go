package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rizkypra/recipe-api/internal/testutil"
	"github.com/rizkypra/recipe-api/pkg/helpers"
)

func newUserService() (*UserService, *testutil.FakeUserRepo) {
	users := testutil.NewFakeUserRepo()
	jwt := helpers.NewJWTManager("test-access-secret", "test-refresh-secret", time.Hour, 24*time.Hour)
	svc := NewUserService(users, jwt, nil, nil, nil, false)
	return svc, users
}

func TestRegister(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	u, err := svc.Register(ctx, "Test2@Example.com", "testpass123", "Test")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.Email != "Test2@example.com" {
		t.Errorf("email = %q, want normalized domain", u.Email)
	}
	if u.Password == "testpass123" {
		t.Error("password stored in plain text")
	}
	if !helpers.CompareHashAndPassword(u.Password, "testpass123") {
		t.Error("stored hash does not verify against the original password")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "test@example.com", "testpass123", "Test"); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if _, err := svc.Register(ctx, "test@EXAMPLE.com", "otherpass123", "Other"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("second Register: err = %v, want ErrEmailTaken", err)
	}
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "test@example.com", "testpass123", "Test"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	u, err := svc.Authenticate(ctx, "test@EXAMPLE.COM", "testpass123")
	if err != nil {
		t.Fatalf("Authenticate with uppercase domain: %v", err)
	}
	if u.Email != "test@example.com" {
		t.Errorf("email = %q", u.Email)
	}

	if _, err := svc.Authenticate(ctx, "test@example.com", "wrongpass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Authenticate(ctx, "nobody@example.com", "testpass123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestIssueAndRefreshTokens(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	u, err := svc.Register(ctx, "test@example.com", "testpass123", "Test")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	pair, err := svc.IssueTokens(ctx, u)
	if err != nil {
		t.Fatalf("IssueTokens: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected both tokens")
	}

	claims, err := svc.JWT.ParseAccessToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}
	if claims.UserID != u.ID {
		t.Errorf("claims.UserID = %q, want %q", claims.UserID, u.ID)
	}

	rotated, uid, err := svc.Refresh(ctx, pair.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if uid != u.ID {
		t.Errorf("refresh uid = %q, want %q", uid, u.ID)
	}
	if rotated.AccessToken == "" || rotated.RefreshToken == "" {
		t.Fatal("expected rotated tokens")
	}

	if _, _, err := svc.Refresh(ctx, pair.AccessToken); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("refresh with access token: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestGetProfile(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	u, err := svc.Register(ctx, "test@example.com", "testpass123", "Test")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	got, err := svc.GetProfile(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if got.Email != u.Email || got.Name != u.Name {
		t.Errorf("profile = %+v", got)
	}

	if _, err := svc.GetProfile(ctx, "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("unknown id: err = %v, want ErrUserNotFound", err)
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	u, err := svc.Register(ctx, "test@example.com", "testpass123", "Test")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	got, err := svc.UpdateProfile(ctx, u.ID, UpdateProfileInput{Name: "Renamed"})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if got.Name != "Renamed" {
		t.Errorf("name = %q", got.Name)
	}
	if !helpers.CompareHashAndPassword(got.Password, "testpass123") {
		t.Error("password changed without being supplied")
	}

	got, err = svc.UpdateProfile(ctx, u.ID, UpdateProfileInput{Password: "newpass456"})
	if err != nil {
		t.Fatalf("UpdateProfile password: %v", err)
	}
	if got.Name != "Renamed" {
		t.Errorf("name reset to %q", got.Name)
	}
	if !helpers.CompareHashAndPassword(got.Password, "newpass456") {
		t.Error("new password does not verify")
	}
}
