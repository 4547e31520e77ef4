package utils

import (
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

func TestNewSessionToken(t *testing.T) {
	tok, err := NewSessionToken()
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}
	if len(tok) != 48 {
		t.Fatalf("token length = %d, want 48 (24 bytes hex)", len(tok))
	}
	if _, err := hex.DecodeString(tok); err != nil {
		t.Fatalf("token is not hex: %v", err)
	}

	other, err := NewSessionToken()
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}
	if tok == other {
		t.Fatal("two tokens are identical")
	}
}

func TestSessionTTL(t *testing.T) {
	t.Setenv("ADMIN_SESSION_TTL_HOURS", "")
	if got := SessionTTL(); got != 8*time.Hour {
		t.Errorf("default TTL = %v, want 8h", got)
	}

	t.Setenv("ADMIN_SESSION_TTL_HOURS", "2")
	if got := SessionTTL(); got != 2*time.Hour {
		t.Errorf("TTL = %v, want 2h", got)
	}

	t.Setenv("ADMIN_SESSION_TTL_HOURS", "garbage")
	if got := SessionTTL(); got != 8*time.Hour {
		t.Errorf("TTL with bad env = %v, want 8h", got)
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("hash equals the plaintext")
	}
	if err := CheckPassword(hash, "correct horse battery staple"); err != nil {
		t.Errorf("CheckPassword with right password: %v", err)
	}
	if err := CheckPassword(hash, "wrong"); err == nil {
		t.Error("CheckPassword accepted a wrong password")
	}
}

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Mugs", "mugs"},
		{"Café au Lait Bowl", "cafe-au-lait-bowl"},
		{"  Hand-Woven   Basket!! ", "hand-woven-basket"},
		{"Épée décorative", "epee-decorative"},
		{"100% Wool", "100-wool"},
	}
	for _, tt := range tests {
		if got := GenerateSlug(tt.name); got != tt.want {
			t.Errorf("GenerateSlug(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestParseIntDefault(t *testing.T) {
	if got := ParseIntDefault("", 12); got != 12 {
		t.Errorf("empty = %d, want 12", got)
	}
	if got := ParseIntDefault("7", 12); got != 7 {
		t.Errorf("7 = %d, want 7", got)
	}
	if got := ParseIntDefault("x", 12); got != 12 {
		t.Errorf("garbage = %d, want 12", got)
	}
}

func TestParseBoolQuery(t *testing.T) {
	b, err := ParseBoolQuery("")
	if b != nil || err != nil {
		t.Errorf("empty = (%v, %v), want (nil, nil)", b, err)
	}
	b, err = ParseBoolQuery("false")
	if err != nil || b == nil || *b {
		t.Errorf("false parsed wrong: (%v, %v)", b, err)
	}
	if _, err := ParseBoolQuery("nope"); err == nil {
		t.Error("garbage did not error")
	}
}

func TestIntersectStrings(t *testing.T) {
	got := IntersectStrings([]string{"a", "b", "c"}, []string{"b", "c", "d"})
	if len(got) != 2 || got[0] != "b" || got[1] != "c" {
		t.Errorf("IntersectStrings = %v, want [b c]", got)
	}
	if got := IntersectStrings(nil, []string{"a"}); len(got) != 0 {
		t.Errorf("nil input = %v, want empty", got)
	}
}

func TestIsDuplicateKey(t *testing.T) {
	we := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}}
	if !IsDuplicateKey(we) {
		t.Error("typed write exception with code 11000 not detected")
	}

	other := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 121}}}
	if IsDuplicateKey(other) {
		t.Error("validation failure misread as duplicate key")
	}

	if !IsDuplicateKey(errors.New(`E11000 duplicate key error collection: shop.categories index: slug_1`)) {
		t.Error("string fallback not detected")
	}

	if IsDuplicateKey(errors.New("connection reset")) {
		t.Error("unrelated error misread as duplicate key")
	}
}

func TestMaxReadLimit(t *testing.T) {
	t.Setenv("READ_QUERY_MAX_LIMIT", "")
	if got := MaxReadLimit(); got != 100 {
		t.Errorf("default = %d, want 100", got)
	}
	t.Setenv("READ_QUERY_MAX_LIMIT", "50")
	if got := MaxReadLimit(); got != 50 {
		t.Errorf("env override = %d, want 50", got)
	}
}
