package model

// Style identifies the shape of a generated password.
type Style string

const (
	StyleStandard      Style = "standard"
	StylePronounceable Style = "pronounceable"
)

// GenerateRequest represents a password generation request.
// A nil Length means no length was given and the configured default applies.
// Empty Styles means every style.
type GenerateRequest struct {
	Length *int    `json:"length"`
	Styles []Style `json:"styles"`
	Hash   bool    `json:"hash"`
}

// Password is a single generated password tagged with its style.
type Password struct {
	Style       Style  `json:"style"`
	Password    string `json:"password"`
	Description string `json:"description"`
	Hash        string `json:"hash,omitempty"`
}

// GenerateResponse represents a password generation response. Length is the
// resolved length used for the standard style.
type GenerateResponse struct {
	Length    int        `json:"length"`
	Passwords []Password `json:"passwords"`
}
