package service

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/model"
)

func intPtr(n int) *int { return &n }

func newTestGeneratorService() *GeneratorService {
	return NewGeneratorService(crypto.NewGenerator(nil), 16)
}

func TestGenerate_Defaults(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 16 {
		t.Errorf("expected length 16, got %d", resp.Length)
	}
	if len(resp.Passwords) != 2 {
		t.Fatalf("expected 2 passwords, got %d", len(resp.Passwords))
	}

	standard, pronounceable := resp.Passwords[0], resp.Passwords[1]
	if standard.Style != model.StyleStandard {
		t.Errorf("expected first style %q, got %q", model.StyleStandard, standard.Style)
	}
	if len(standard.Password) != 16 {
		t.Errorf("expected standard password length 16, got %d", len(standard.Password))
	}
	if standard.Description != "16 characters long" {
		t.Errorf("unexpected description %q", standard.Description)
	}
	if pronounceable.Style != model.StylePronounceable {
		t.Errorf("expected second style %q, got %q", model.StylePronounceable, pronounceable.Style)
	}
	if len(pronounceable.Password) != crypto.PronounceableLength {
		t.Errorf("expected pronounceable password length %d, got %d", crypto.PronounceableLength, len(pronounceable.Password))
	}
	if standard.Hash != "" || pronounceable.Hash != "" {
		t.Error("expected no hashes unless requested")
	}
}

func TestGenerate_CustomLength(t *testing.T) {
	tests := []struct {
		name   string
		length int
		want   int
	}{
		{name: "typical", length: 32, want: 32},
		{name: "maximum", length: crypto.MaxLength, want: crypto.MaxLength},
		{name: "zero", length: 0, want: 0},
		{name: "negative", length: -4, want: 0},
	}

	svc := newTestGeneratorService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Generate(model.GenerateRequest{
				Length: intPtr(tt.length),
				Styles: []model.Style{model.StyleStandard},
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.Length != tt.want {
				t.Errorf("expected length %d, got %d", tt.want, resp.Length)
			}
			if len(resp.Passwords) != 1 || len(resp.Passwords[0].Password) != tt.want {
				t.Errorf("expected one password of length %d, got %+v", tt.want, resp.Passwords)
			}
		})
	}
}

func TestGenerate_LengthTooLong(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{Length: intPtr(200)})
	if !errors.Is(err, crypto.ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
	if len(resp.Passwords) != 0 {
		t.Error("expected no passwords on invalid length")
	}
}

func TestGenerate_SingleStyle(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{
		Styles: []model.Style{model.StylePronounceable, model.StylePronounceable},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Passwords) != 1 {
		t.Fatalf("expected 1 password, got %d", len(resp.Passwords))
	}
	if resp.Passwords[0].Style != model.StylePronounceable {
		t.Errorf("expected style %q, got %q", model.StylePronounceable, resp.Passwords[0].Style)
	}
	if !strings.HasSuffix(resp.Passwords[0].Description, "xxxxxx-xxxxxx-xxxxxx") {
		t.Errorf("unexpected description %q", resp.Passwords[0].Description)
	}
}

func TestGenerate_UnknownStyle(t *testing.T) {
	svc := newTestGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{Styles: []model.Style{"diceware"}})
	if !errors.Is(err, ErrUnknownStyle) {
		t.Fatalf("expected ErrUnknownStyle, got %v", err)
	}
}

func TestGenerate_Hash(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{
		Styles: []model.Style{model.StyleStandard},
		Hash:   true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := resp.Passwords[0]
	match, err := crypto.VerifyHash(p.Password, p.Hash)
	if err != nil {
		t.Fatalf("unexpected error verifying hash: %v", err)
	}
	if !match {
		t.Error("expected hash to match generated password")
	}
}

func TestGenerate_RandomUnavailable(t *testing.T) {
	svc := NewGeneratorService(crypto.NewGenerator(iotest.ErrReader(errors.New("no entropy"))), 16)
	_, err := svc.Generate(model.GenerateRequest{})
	if !errors.Is(err, crypto.ErrRandomUnavailable) {
		t.Fatalf("expected ErrRandomUnavailable, got %v", err)
	}
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		raw  string
		want *int
	}{
		{raw: "", want: nil},
		{raw: "   ", want: nil},
		{raw: "24", want: intPtr(24)},
		{raw: "  24 extra words", want: intPtr(24)},
		{raw: "-3", want: intPtr(-3)},
		{raw: "200", want: intPtr(200)},
		{raw: "long", want: nil},
		{raw: "12abc", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := ParseLength(tt.raw)
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("ParseLength(%q) = %d, want nil", tt.raw, *got)
			case tt.want != nil && got == nil:
				t.Errorf("ParseLength(%q) = nil, want %d", tt.raw, *tt.want)
			case tt.want != nil && *got != *tt.want:
				t.Errorf("ParseLength(%q) = %d, want %d", tt.raw, *got, *tt.want)
			}
		})
	}
}
