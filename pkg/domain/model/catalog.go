package model

// Tool is a calculator listed by /api/tools
type Tool struct {
	ID          int    `json:"id" toml:"id"`
	Name        string `json:"name" toml:"name"`
	Description string `json:"description" toml:"description"`
	Slug        string `json:"slug" toml:"slug"`
}

// Country is a recharge market listed by /api/countries
type Country struct {
	Code     string  `json:"code" toml:"code"`
	Name     string  `json:"name" toml:"name"`
	Currency string  `json:"currency" toml:"currency"`
	Rate     float64 `json:"rate" toml:"rate"`
}

// Catalog holds the fixed data served by the migration API
type Catalog struct {
	Tools     []Tool    `toml:"tools"`
	Countries []Country `toml:"countries"`
}
