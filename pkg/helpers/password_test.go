package helpers

import "testing"

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("testpass123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "testpass123" {
		t.Fatal("hash equals the plain password")
	}
	if !CompareHashAndPassword(hash, "testpass123") {
		t.Fatal("correct password did not verify")
	}
	if CompareHashAndPassword(hash, "wrongpass") {
		t.Fatal("wrong password verified")
	}
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	a, err := HashPassword("testpass123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	b, err := HashPassword("testpass123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if a == b {
		t.Fatal("two hashes of the same password should differ")
	}
}
