package auth

import (
	"strings"
	"testing"
)

func TestHashNeverEqualsPlaintext(t *testing.T) {
	hash, err := Hash("longenough")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}

	if hash == "longenough" {
		t.Fatal("hash igual ao texto claro")
	}
	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Fatalf("formato inesperado: %q", hash)
	}
}

func TestVerify(t *testing.T) {
	hash, err := Hash("longenough")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}

	ok, err := Verify("longenough", hash)
	if err != nil || !ok {
		t.Fatalf("senha correta não verificou (ok=%v err=%v)", ok, err)
	}

	ok, err = Verify("errada12345", hash)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ok {
		t.Fatal("senha errada verificou")
	}
}

func TestHashIsSalted(t *testing.T) {
	a, _ := Hash("longenough")
	b, _ := Hash("longenough")
	if a == b {
		t.Fatal("dois hashes da mesma senha idênticos: sal ausente")
	}
}
