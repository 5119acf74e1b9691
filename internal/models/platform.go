package models

// Platform is a named publishing destination with a character limit and a
// connection flag. Platforms are seeded from a fixed registry; only the
// Connected flag mutates at runtime.
type Platform struct {
	ID             string `json:"id" yaml:"id"`
	Name           string `json:"name" yaml:"name"`
	Username       string `json:"username" yaml:"username"`
	Icon           string `json:"icon" yaml:"icon"`
	Connected      bool   `json:"connected" yaml:"connected"`
	CharacterLimit int    `json:"characterLimit" yaml:"characterLimit"`
	Color          string `json:"color" yaml:"color"`
}
