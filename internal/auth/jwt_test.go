package auth

import (
	"testing"
	"time"
)

func TestGenerateAndParseRoundTrip(t *testing.T) {
	manager := NewJWTManager("segredo-de-teste", time.Hour)

	token, err := manager.Generate("id-1", "abc")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	claims, err := manager.ParseAndValidate(token)
	if err != nil {
		t.Fatalf("ParseAndValidate: %v", err)
	}

	if claims.UserID != "id-1" {
		t.Fatalf("UserID = %q", claims.UserID)
	}
	if claims.Username != "abc" {
		t.Fatalf("Username = %q", claims.Username)
	}
	if claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) > time.Hour {
		t.Fatal("expiração fora da janela de 1h")
	}
}

func TestParseExpiredToken(t *testing.T) {
	manager := NewJWTManager("segredo-de-teste", -time.Minute)

	token, err := manager.Generate("id-1", "abc")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := NewJWTManager("segredo-de-teste", time.Hour).ParseAndValidate(token); err == nil {
		t.Fatal("token expirado foi aceito")
	}
}

func TestParseWrongSecret(t *testing.T) {
	token, err := NewJWTManager("segredo-a", time.Hour).Generate("id-1", "abc")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := NewJWTManager("segredo-b", time.Hour).ParseAndValidate(token); err == nil {
		t.Fatal("token com assinatura de outro segredo foi aceito")
	}
}

func TestParseGarbage(t *testing.T) {
	if _, err := NewJWTManager("segredo", time.Hour).ParseAndValidate("nem.um.jwt"); err == nil {
		t.Fatal("lixo foi aceito como token")
	}
}
