package crypto

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"
)

func TestHash(t *testing.T) {
	g := NewGenerator(nil)
	hash, err := g.Hash("correct-horse-battery-staple", DefaultHashParams())
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}

	// $argon2id$v=19$m=65536,t=3,p=2$<salt>$<key>
	parts := strings.Split(hash, "$")
	if len(parts) != 6 {
		t.Fatalf("Hash() expected 6 parts, got %d: %q", len(parts), hash)
	}
	if parts[1] != "argon2id" {
		t.Errorf("Hash() algorithm = %q, want %q", parts[1], "argon2id")
	}
	if parts[2] != "v=19" {
		t.Errorf("Hash() version = %q, want %q", parts[2], "v=19")
	}
	if parts[3] != "m=65536,t=3,p=2" {
		t.Errorf("Hash() params = %q, want %q", parts[3], "m=65536,t=3,p=2")
	}
}

func TestVerifyHash(t *testing.T) {
	g := NewGenerator(nil)
	password, err := g.Pronounceable()
	if err != nil {
		t.Fatalf("Pronounceable() unexpected error: %v", err)
	}
	hash, err := g.Hash(password, DefaultHashParams())
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}

	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{name: "correct password", candidate: password, want: true},
		{name: "wrong password", candidate: password + "x", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, err := VerifyHash(tt.candidate, hash)
			if err != nil {
				t.Fatalf("VerifyHash() unexpected error: %v", err)
			}
			if match != tt.want {
				t.Errorf("VerifyHash() = %v, want %v", match, tt.want)
			}
		})
	}
}

func TestHashUsesFreshSalt(t *testing.T) {
	g := NewGenerator(nil)
	first, err := g.Hash("same-password", DefaultHashParams())
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}
	second, err := g.Hash("same-password", DefaultHashParams())
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}
	if first == second {
		t.Error("Hash() produced identical hashes for same password (salt should differ)")
	}
}

func TestHashRandomUnavailable(t *testing.T) {
	g := NewGenerator(iotest.ErrReader(errors.New("entropy pool closed")))
	if _, err := g.Hash("password", DefaultHashParams()); !errors.Is(err, ErrRandomUnavailable) {
		t.Errorf("Hash() error = %v, want %v", err, ErrRandomUnavailable)
	}
}

func TestVerifyHashInvalidFormat(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
		wantErr error
	}{
		{name: "garbage", encoded: "invalid-hash-format", wantErr: ErrInvalidHashFormat},
		{name: "wrong algorithm", encoded: "$argon2i$v=19$m=65536,t=3,p=2$c2FsdA$a2V5", wantErr: ErrInvalidHashFormat},
		{name: "wrong version", encoded: "$argon2id$v=16$m=65536,t=3,p=2$c2FsdA$a2V5", wantErr: ErrIncompatibleVersion},
		{name: "bad salt", encoded: "$argon2id$v=19$m=65536,t=3,p=2$!!!$a2V5", wantErr: ErrInvalidHashFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := VerifyHash("password", tt.encoded); err != tt.wantErr {
				t.Errorf("VerifyHash() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
