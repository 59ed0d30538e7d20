package models

// Layout locates the header row and the first schedule row of a sheet.
type Layout struct {
	// HeaderRow holds the tutorial group labels (1-based).
	HeaderRow int `json:"header_row" yaml:"header_row"`
	// StartRow is the first physical row of Monday's first slot (1-based).
	StartRow int `json:"start_row" yaml:"start_row"`
}
