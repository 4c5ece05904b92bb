package entity

import (
	"errors"
	"testing"
)

func TestNormalizeEmail(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"test1@EXAMPLE.com", "test1@example.com"},
		{"Test2@Example.com", "Test2@example.com"},
		{"TEST3@EXAMPLE.COM", "TEST3@example.com"},
		{"test4@example.COM", "test4@example.com"},
		{"noatsign", "noatsign"},
		{"", ""},
		{"a@b@C.COM", "a@b@c.com"},
	}
	for _, c := range cases {
		if got := NormalizeEmail(c.in); got != c.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNewUserNormalizesEmail(t *testing.T) {
	u, err := NewUser("Test2@Example.com", "hash", "Test")
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	if u.Email != "Test2@example.com" {
		t.Fatalf("email = %q, want %q", u.Email, "Test2@example.com")
	}
	if u.IsStaff || u.IsSuperuser {
		t.Fatal("regular user should not have staff or superuser flags")
	}
}

func TestNewUserRequiresEmail(t *testing.T) {
	if _, err := NewUser("", "hash", "Test"); !errors.Is(err, ErrEmailRequired) {
		t.Fatalf("err = %v, want ErrEmailRequired", err)
	}
	if _, err := NewUser("   ", "hash", "Test"); !errors.Is(err, ErrEmailRequired) {
		t.Fatalf("err = %v, want ErrEmailRequired for blank email", err)
	}
}

func TestNewSuperuser(t *testing.T) {
	u, err := NewSuperuser("admin@EXAMPLE.com", "hash", "Admin")
	if err != nil {
		t.Fatalf("NewSuperuser: %v", err)
	}
	if !u.IsStaff {
		t.Error("superuser should be staff")
	}
	if !u.IsSuperuser {
		t.Error("superuser flag not set")
	}
	if u.Email != "admin@example.com" {
		t.Errorf("email = %q, want normalized domain", u.Email)
	}
}
