package core

// DefaultLanguage is assumed when a client does not state one.
const DefaultLanguage = "en"

// Profile holds what a client declared about itself when it asked for a
// partner. It is rewritten wholesale on every find-partner request and
// dropped on disconnect.
type Profile struct {
	ID        string
	Interests []string
	Language  string
}
