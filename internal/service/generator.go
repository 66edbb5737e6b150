package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/model"
)

var ErrUnknownStyle = errors.New("unknown password style")

// DefaultStyles are generated when a request names none.
var DefaultStyles = []model.Style{model.StyleStandard, model.StylePronounceable}

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	gen           *crypto.Generator
	defaultLength int
}

// NewGeneratorService creates a new GeneratorService. defaultLength applies
// when a request carries no length.
func NewGeneratorService(gen *crypto.Generator, defaultLength int) *GeneratorService {
	return &GeneratorService{gen: gen, defaultLength: defaultLength}
}

// Generate produces one password per requested style.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	length, err := crypto.ValidateLength(req.Length, s.defaultLength)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	styles, err := resolveStyles(req.Styles)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	resp := model.GenerateResponse{
		Length:    length,
		Passwords: make([]model.Password, 0, len(styles)),
	}

	for _, style := range styles {
		var password string
		switch style {
		case model.StyleStandard:
			password, err = s.gen.Standard(length)
		case model.StylePronounceable:
			password, err = s.gen.Pronounceable()
		}
		if err != nil {
			return model.GenerateResponse{}, fmt.Errorf("generating %s password: %w", style, err)
		}

		p := model.Password{
			Style:       style,
			Password:    password,
			Description: Describe(style, len(password)),
		}
		if req.Hash {
			p.Hash, err = s.gen.Hash(password, crypto.DefaultHashParams())
			if err != nil {
				return model.GenerateResponse{}, fmt.Errorf("hashing %s password: %w", style, err)
			}
		}
		resp.Passwords = append(resp.Passwords, p)
	}

	return resp, nil
}

// Describe returns the human readable subtitle shown next to a password.
func Describe(style model.Style, length int) string {
	if style == model.StylePronounceable {
		return fmt.Sprintf("%d characters long, xxxxxx-xxxxxx-xxxxxx", length)
	}
	return fmt.Sprintf("%d characters long", length)
}

// ParseLength reads a length from the first word of a free-form query.
// Anything that is not an integer is treated as no length at all, so the
// caller falls back to the default instead of failing.
func ParseLength(raw string) *int {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil
	}
	return &n
}

// resolveStyles validates styles, dropping duplicates and keeping order.
func resolveStyles(styles []model.Style) ([]model.Style, error) {
	if len(styles) == 0 {
		return DefaultStyles, nil
	}

	seen := make(map[model.Style]bool, len(styles))
	out := make([]model.Style, 0, len(styles))
	for _, style := range styles {
		switch style {
		case model.StyleStandard, model.StylePronounceable:
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, style)
		}
		if seen[style] {
			continue
		}
		seen[style] = true
		out = append(out, style)
	}
	return out, nil
}
